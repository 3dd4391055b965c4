package utils

import (
	"github.com/SscSPs/clinic_cash_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FormatAmount renders an amount with exactly the currency minor-unit places.
// Example: 1500.5 returns "1500.50", -0.005 returns "-0.01".
func FormatAmount(amount decimal.Decimal) string {
	return domain.RoundAmount(amount).StringFixed(domain.MinorUnitPlaces)
}

// FormatMoney renders m as "<amount> <currency>", e.g. "600.00 ARS".
func FormatMoney(m domain.Money) string {
	return FormatAmount(m.Amount) + " " + string(m.Currency)
}
