// Package settlement is the fee-settlement engine: splitting a payment among the
// professionals of an entry, deriving the clinic's retained balance (COAT), and
// aggregating entries and deductions into per-professional statements.
//
// Every function here is pure. Given the same stored fields it returns the same
// result, so callers can recompute from a refreshed snapshot at any time.
package settlement

import (
	"github.com/SscSPs/clinic_cash_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ComputeShares fills in the amounts of every slot of shares from payment.
//
// Percentage slots (prof_1..prof_3) take sharePercent of the payment leg in the
// slot's currency; an enabled secondary leg takes the same percentage of the
// payment leg in the secondary currency. The anesthetist slot keeps its directly
// entered amounts. Slots without a professional carry zero amounts.
// Percentages are applied as given, without clamping.
func ComputeShares(payment domain.Payment, shares domain.Shares) domain.Shares {
	out := shares
	for i := range out {
		out[i] = computeSlot(payment, out[i])
	}
	return out
}

func computeSlot(payment domain.Payment, share domain.ProfessionalShare) domain.ProfessionalShare {
	share = normalizeCurrencies(share)

	if !share.Active() {
		share.PrimaryAmount = domain.ZeroMoney(share.Currency)
		share.SecondaryAmount = domain.ZeroMoney(share.SecondaryCurrency)
		return share
	}

	if !share.Role.IsPercentage() {
		return fixedSlot(share)
	}

	pct := share.SharePercent
	share.PrimaryAmount = domain.NewMoney(domain.Percent(payment.Get(share.Currency), pct), share.Currency)
	if share.SecondaryEnabled {
		share.SecondaryAmount = domain.NewMoney(domain.Percent(payment.Get(share.SecondaryCurrency), pct), share.SecondaryCurrency)
	} else {
		share.SecondaryAmount = domain.ZeroMoney(share.SecondaryCurrency)
	}
	return share
}

// fixedSlot keeps entered amounts, re-tagging them with the selected currencies.
func fixedSlot(share domain.ProfessionalShare) domain.ProfessionalShare {
	share.SharePercent = decimal.Zero
	share.PrimaryAmount = domain.NewMoney(share.PrimaryAmount.Amount, share.Currency).Round()
	if share.SecondaryEnabled {
		share.SecondaryAmount = domain.NewMoney(share.SecondaryAmount.Amount, share.SecondaryCurrency).Round()
	} else {
		share.SecondaryAmount = domain.ZeroMoney(share.SecondaryCurrency)
	}
	return share
}

// normalizeCurrencies defaults the primary currency to ARS. A disabled secondary
// leg always carries the other currency, which is what a stored entry reloads to.
func normalizeCurrencies(share domain.ProfessionalShare) domain.ProfessionalShare {
	share.Currency = normalizeCurrency(share.Currency, domain.ARS)
	if !share.SecondaryEnabled {
		share.SecondaryCurrency = share.Currency.Other()
		return share
	}
	share.SecondaryCurrency = normalizeCurrency(share.SecondaryCurrency, share.Currency.Other())
	return share
}

func normalizeCurrency(c, fallback domain.Currency) domain.Currency {
	if c.Valid() {
		return c
	}
	return fallback
}
