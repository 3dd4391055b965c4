package domain

import "strings"

// Currency is one of the two currencies the clinic operates in.
type Currency string

const (
	ARS Currency = "ARS"
	USD Currency = "USD"
)

// Currencies lists every supported currency, ARS first.
var Currencies = [...]Currency{ARS, USD}

// MinorUnitPlaces is the number of decimal places kept for both currencies (centavos / cents).
const MinorUnitPlaces int32 = 2

// Valid reports whether c is ARS or USD.
func (c Currency) Valid() bool {
	return c == ARS || c == USD
}

// Other returns the opposite currency. Used as the default secondary leg.
func (c Currency) Other() Currency {
	if c == USD {
		return ARS
	}
	return USD
}

// ParseCurrency accepts a case-insensitive currency code. Anything unknown falls back to ARS,
// matching the register's default selector.
func ParseCurrency(s string) (Currency, bool) {
	switch Currency(strings.ToUpper(strings.TrimSpace(s))) {
	case ARS:
		return ARS, true
	case USD:
		return USD, true
	default:
		return ARS, false
	}
}
