package settlement

import (
	"github.com/SscSPs/clinic_cash_app/internal/core/domain"
)

// SumByCurrency totals deduction magnitudes per currency.
func SumByCurrency(deductions []domain.Deduction) domain.Amounts {
	var total domain.Amounts
	for _, d := range deductions {
		total = total.Add(d.Money())
	}
	return total
}

// FilterDeductions keeps the deductions of one professional dated within [from, to].
func FilterDeductions(deductions []domain.Deduction, professional, from, to string) []domain.Deduction {
	out := make([]domain.Deduction, 0, len(deductions))
	for _, d := range deductions {
		if d.ProfessionalName != professional {
			continue
		}
		if d.Date < from || d.Date > to {
			continue
		}
		out = append(out, d)
	}
	return out
}

// NormalizeDeduction stores the amount as a positive magnitude in the minor unit
// and defaults an unknown currency to ARS.
func NormalizeDeduction(d domain.Deduction) domain.Deduction {
	d.Amount = domain.RoundAmount(d.Amount.Abs())
	if !d.Currency.Valid() {
		d.Currency = domain.ARS
	}
	return d
}
