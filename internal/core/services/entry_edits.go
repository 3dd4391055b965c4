package services

import (
	"strings"

	"github.com/SscSPs/clinic_cash_app/internal/core/domain"
	"github.com/SscSPs/clinic_cash_app/internal/core/settlement"
	"github.com/SscSPs/clinic_cash_app/internal/dto"
)

// inputEdits translates a new operation into engine edits. Payment is always set,
// so applying the result always recomputes.
func inputEdits(in dto.EntryInput) []settlement.Edit {
	paymentARS := in.PaymentARS.Decimal()
	paymentUSD := in.PaymentUSD.Decimal()
	patientName := strings.TrimSpace(in.PatientName)
	patientID := strings.TrimSpace(in.PatientID)
	insurer := strings.TrimSpace(in.Insurer)

	edits := []settlement.Edit{
		settlement.SetPatient{Name: &patientName, ID: &patientID, Insurer: &insurer},
		settlement.SetComment{Comment: in.Comment},
		settlement.SetPayment{ARS: &paymentARS, USD: &paymentUSD},
	}
	for _, share := range in.Shares {
		edits = append(edits, shareInputEdits(share)...)
	}
	return edits
}

func shareInputEdits(in dto.ShareInput) []settlement.Edit {
	role := in.Role
	primary := currencyOr(in.Currency, domain.ARS)
	secondary := currencyOr(in.SecondaryCurrency, primary.Other())

	edits := []settlement.Edit{
		settlement.SetProfessional{Role: role, Name: strings.TrimSpace(in.Professional)},
		settlement.SetShareCurrency{Role: role, Currency: primary},
		settlement.SetSecondary{Role: role, Enabled: in.SecondaryEnabled, Currency: secondary},
		settlement.SetTransfer{Role: role, IsTransfer: in.IsTransfer},
	}
	if role.IsPercentage() {
		return append(edits, settlement.SetSharePercent{Role: role, Percent: in.SharePercent.Decimal()})
	}

	var secondaryAmount *domain.Money
	if in.SecondaryEnabled {
		m := domain.NewMoney(in.SecondaryAmount.Decimal(), secondary)
		secondaryAmount = &m
	}
	return append(edits, settlement.SetFixedAmount{
		Role:      role,
		Primary:   domain.NewMoney(in.Amount.Decimal(), primary),
		Secondary: secondaryAmount,
	})
}

// manualEdits fills the single slot of a manual liquidation. The amount is entered
// directly on any slot, so it goes through SetFixedAmount.
func manualEdits(req dto.ManualLiquidationRequest, role domain.SlotRole) []settlement.Edit {
	primary := currencyOr(req.Currency, domain.ARS)

	var secondaryAmount *domain.Money
	if req.SecondaryAmount != nil {
		m := domain.NewMoney(req.SecondaryAmount.Decimal(), currencyOr(req.SecondaryCurrency, primary.Other()))
		secondaryAmount = &m
	}
	return []settlement.Edit{
		settlement.SetComment{Comment: req.Comment},
		settlement.SetProfessional{Role: role, Name: strings.TrimSpace(req.Professional)},
		settlement.SetFixedAmount{
			Role:      role,
			Primary:   domain.NewMoney(req.Amount.Decimal(), primary),
			Secondary: secondaryAmount,
		},
	}
}

// updateEdits translates a partial update into engine edits against the current
// state of the entry. Fields left nil in the request produce no edit.
func updateEdits(current domain.Entry, req dto.UpdateEntryRequest) []settlement.Edit {
	var edits []settlement.Edit
	if req.Date != nil {
		edits = append(edits, settlement.SetDate{Date: *req.Date})
	}
	if req.PatientName != nil || req.PatientID != nil || req.Insurer != nil {
		edits = append(edits, settlement.SetPatient{Name: req.PatientName, ID: req.PatientID, Insurer: req.Insurer})
	}
	if req.Comment != nil {
		edits = append(edits, settlement.SetComment{Comment: *req.Comment})
	}
	if req.PaymentARS != nil || req.PaymentUSD != nil {
		edits = append(edits, settlement.SetPayment{ARS: req.PaymentARS.Ptr(), USD: req.PaymentUSD.Ptr()})
	}
	for _, share := range req.Shares {
		slot := current.Shares.Slot(share.Role)
		if slot == nil {
			continue
		}
		edits = append(edits, shareUpdateEdits(current, *slot, share)...)
	}
	return edits
}

func shareUpdateEdits(current domain.Entry, slot domain.ProfessionalShare, in dto.ShareUpdate) []settlement.Edit {
	role := in.Role
	var edits []settlement.Edit

	if in.Professional != nil {
		edits = append(edits, settlement.SetProfessional{Role: role, Name: strings.TrimSpace(*in.Professional)})
	}
	if c, ok := domain.ParseCurrency(in.Currency); ok {
		edits = append(edits, settlement.SetShareCurrency{Role: role, Currency: c})
	}

	enabled := slot.SecondaryEnabled
	if in.SecondaryEnabled != nil {
		enabled = *in.SecondaryEnabled
	} else if in.SecondaryAmount != nil {
		enabled = true
	}
	var secondaryCurrency domain.Currency
	if c, ok := domain.ParseCurrency(in.SecondaryCurrency); ok {
		secondaryCurrency = c
	}
	if enabled != slot.SecondaryEnabled || secondaryCurrency != "" {
		edits = append(edits, settlement.SetSecondary{Role: role, Enabled: enabled, Currency: secondaryCurrency})
	}

	if in.SharePercent != nil {
		edits = append(edits, settlement.SetSharePercent{Role: role, Percent: in.SharePercent.Decimal()})
	}

	fixed := !role.IsPercentage() || current.IsManualLiquidation
	if fixed && (in.Amount != nil || in.SecondaryAmount != nil) {
		primary := slot.PrimaryAmount.Amount
		if in.Amount != nil {
			primary = in.Amount.Decimal()
		}
		var secondaryAmount *domain.Money
		if enabled {
			amount := slot.SecondaryAmount.Amount
			if in.SecondaryAmount != nil {
				amount = in.SecondaryAmount.Decimal()
			}
			// blank currencies keep whatever the slot holds after the edits above
			m := domain.NewMoney(amount, secondaryCurrency)
			secondaryAmount = &m
		}
		edits = append(edits, settlement.SetFixedAmount{
			Role:      role,
			Primary:   domain.NewMoney(primary, ""),
			Secondary: secondaryAmount,
		})
	}
	return edits
}
