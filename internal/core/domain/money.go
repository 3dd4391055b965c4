package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Bounds on operator input. Anything outside them coerces to zero like other
// unreadable input, so arithmetic never expands a scientific-notation literal.
const (
	maxAmountInputLen = 64
	maxAmountExponent = 15
	minAmountExponent = -10
)

// Money is an amount tagged with its currency.
type Money struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency Currency        `json:"currency"`
}

// NewMoney builds a Money value.
func NewMoney(amount decimal.Decimal, currency Currency) Money {
	return Money{Amount: amount, Currency: currency}
}

// ZeroMoney returns a zero amount in the given currency.
func ZeroMoney(currency Currency) Money {
	return Money{Amount: decimal.Zero, Currency: currency}
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.Amount.IsZero()
}

// Round rounds to the smallest currency unit, half away from zero.
func (m Money) Round() Money {
	return Money{Amount: RoundAmount(m.Amount), Currency: m.Currency}
}

// RoundAmount rounds a bare decimal to MinorUnitPlaces, half away from zero.
func RoundAmount(d decimal.Decimal) decimal.Decimal {
	return d.Round(MinorUnitPlaces)
}

// Percent returns amount * pct / 100 rounded to the minor unit.
func Percent(amount, pct decimal.Decimal) decimal.Decimal {
	return RoundAmount(amount.Mul(pct).Div(hundred))
}

// Amounts holds one running figure per currency.
type Amounts struct {
	ARS decimal.Decimal `json:"ARS"`
	USD decimal.Decimal `json:"USD"`
}

// Get returns the figure for currency c.
func (a Amounts) Get(c Currency) decimal.Decimal {
	if c == USD {
		return a.USD
	}
	return a.ARS
}

// Add returns a copy with m added to its currency bucket.
func (a Amounts) Add(m Money) Amounts {
	if m.Currency == USD {
		a.USD = a.USD.Add(m.Amount)
	} else {
		a.ARS = a.ARS.Add(m.Amount)
	}
	return a
}

// Sub returns a minus b per currency.
func (a Amounts) Sub(b Amounts) Amounts {
	return Amounts{ARS: a.ARS.Sub(b.ARS), USD: a.USD.Sub(b.USD)}
}

// IsZero reports whether both buckets are zero.
func (a Amounts) IsZero() bool {
	return a.ARS.IsZero() && a.USD.IsZero()
}

// ParseAmount coerces operator input into a decimal. Blank or non-numeric input yields zero
// instead of an error. A lone comma is read as the decimal separator ("1500,50"), and
// when both separators are present the last one wins ("1.500,50" and "1,500.50").
// Overlong input and exponents outside [-10, 15] also yield zero.
func ParseAmount(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.TrimPrefix(s, "$")
	if s == "" || len(s) > maxAmountInputLen {
		return decimal.Zero
	}

	lastComma := strings.LastIndex(s, ",")
	lastDot := strings.LastIndex(s, ".")
	switch {
	case lastComma >= 0 && lastDot >= 0 && lastComma > lastDot:
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	case lastComma >= 0 && lastDot >= 0:
		s = strings.ReplaceAll(s, ",", "")
	case lastComma >= 0 && strings.Count(s, ",") == 1:
		s = strings.Replace(s, ",", ".", 1)
	case lastComma >= 0:
		s = strings.ReplaceAll(s, ",", "")
	}

	d, err := decimal.NewFromString(s)
	if err != nil || d.Exponent() > maxAmountExponent || d.Exponent() < minAmountExponent {
		return decimal.Zero
	}
	return d
}
