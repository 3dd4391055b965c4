package settlement

import (
	"github.com/SscSPs/clinic_cash_app/internal/core/domain"
)

// SummarizeRegister totals the entries of one cash-register day. Entries dated on
// other days are ignored. Transfer-flagged shares still count towards share totals;
// the flag only affects statements.
func SummarizeRegister(date string, entries []domain.Entry) domain.RegisterSummary {
	summary := domain.RegisterSummary{Date: date}
	for _, entry := range entries {
		if entry.Date != date {
			continue
		}
		summary.EntryCount++
		if entry.IsManualLiquidation {
			summary.ManualCount++
		}
		summary.PaymentTotals = summary.PaymentTotals.
			Add(domain.NewMoney(entry.Payment.ARS, domain.ARS)).
			Add(domain.NewMoney(entry.Payment.USD, domain.USD))
		summary.CoatTotals = summary.CoatTotals.
			Add(domain.NewMoney(entry.CoatARS, domain.ARS)).
			Add(domain.NewMoney(entry.CoatUSD, domain.USD))

		for _, share := range entry.Shares {
			if !share.Active() {
				continue
			}
			if share.IsTransfer {
				summary.TransferCount++
			}
			for _, leg := range share.Legs() {
				if share.Role == domain.SlotAnestesista {
					summary.AnestesiaTotals = summary.AnestesiaTotals.Add(leg)
				} else {
					summary.ShareTotals = summary.ShareTotals.Add(leg)
				}
			}
		}
	}
	return summary
}
