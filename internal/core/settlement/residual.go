package settlement

import (
	"github.com/SscSPs/clinic_cash_app/internal/core/domain"
)

// ComputeResidual derives the clinic's retained balance: each payment leg minus
// every share leg (primary, and secondary when enabled) in that currency, across
// all four slots. A negative residual means shares exceed the payment; that is a
// legitimate outcome, not an error.
func ComputeResidual(entry domain.Entry) domain.Residual {
	var shares domain.Amounts
	for _, share := range entry.Shares {
		if !share.Active() {
			continue
		}
		for _, leg := range share.Legs() {
			shares = shares.Add(leg)
		}
	}
	return domain.Residual{
		CoatARS: entry.Payment.ARS.Sub(shares.ARS),
		CoatUSD: entry.Payment.USD.Sub(shares.USD),
	}
}

// Recompute runs the split over all slots and then the residual over the full
// result. Manual liquidations carry entered amounts on a zero payment, so only
// their amounts' currencies and rounding are normalized before the residual.
func Recompute(entry domain.Entry) domain.Entry {
	if entry.IsManualLiquidation {
		entry.Payment = domain.Payment{}
		for i := range entry.Shares {
			share := entry.Shares[i]
			share = normalizeCurrencies(share)
			if share.Active() {
				entry.Shares[i] = fixedSlot(share)
				continue
			}
			share.PrimaryAmount = domain.ZeroMoney(share.Currency)
			share.SecondaryAmount = domain.ZeroMoney(share.SecondaryCurrency)
			entry.Shares[i] = share
		}
	} else {
		entry.Shares = ComputeShares(entry.Payment, entry.Shares)
	}
	return entry.WithResidual(ComputeResidual(entry))
}
