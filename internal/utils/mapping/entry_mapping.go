// Package mapping converts between domain values and their persisted models.
package mapping

import (
	"github.com/SscSPs/clinic_cash_app/internal/core/domain"
	"github.com/SscSPs/clinic_cash_app/internal/models"
	"github.com/shopspring/decimal"
)

// ToModelEntry flattens a domain Entry into its persisted record.
func ToModelEntry(d domain.Entry) models.Entry {
	m := models.Entry{
		EntryID:             d.EntryID,
		OwnerID:             d.OwnerID,
		Fecha:               d.Date,
		Paciente:            d.PatientName,
		DNI:                 d.PatientID,
		ObraSocial:          d.Insurer,
		Pesos:               d.Payment.ARS,
		Dolares:             d.Payment.USD,
		CoatPesos:           d.CoatARS,
		CoatDolares:         d.CoatUSD,
		IsManualLiquidation: d.IsManualLiquidation,
		CreatedAt:           d.CreatedAt,
		Comentario:          d.Comment,
		AuditFields: models.AuditFields{
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}

	for i, cols := range m.Slots() {
		share := d.Shares[i]
		*cols.Professional = share.ProfessionalName
		if cols.Percent != nil {
			*cols.Percent = share.SharePercent
		}
		*cols.Amount = share.PrimaryAmount.Amount
		*cols.Currency = string(share.Currency)
		*cols.SecondaryAmount = decimal.Zero
		*cols.SecondaryCurrency = ""
		if share.SecondaryEnabled {
			*cols.SecondaryAmount = share.SecondaryAmount.Amount
			*cols.SecondaryCurrency = string(share.SecondaryCurrency)
		}
		*cols.IsTransfer = share.IsTransfer
	}
	return m
}

// ToDomainEntry rebuilds a domain Entry from its persisted record. Stored amounts,
// including the COAT figures, are taken verbatim and not recomputed.
func ToDomainEntry(m models.Entry) domain.Entry {
	d := domain.Entry{
		EntryID:             m.EntryID,
		OwnerID:             m.OwnerID,
		Date:                m.Fecha,
		PatientName:         m.Paciente,
		PatientID:           m.DNI,
		Insurer:             m.ObraSocial,
		Payment:             domain.Payment{ARS: m.Pesos, USD: m.Dolares},
		Shares:              domain.NewShares(),
		CoatARS:             m.CoatPesos,
		CoatUSD:             m.CoatDolares,
		Comment:             m.Comentario,
		IsManualLiquidation: m.IsManualLiquidation,
		CreatedAt:           m.CreatedAt,
		LastUpdatedAt:       m.LastUpdatedAt,
		LastUpdatedBy:       m.LastUpdatedBy,
	}

	for i, cols := range m.Slots() {
		share := &d.Shares[i]
		share.ProfessionalName = *cols.Professional
		if cols.Percent != nil {
			share.SharePercent = *cols.Percent
		}
		share.Currency, _ = domain.ParseCurrency(*cols.Currency)
		share.PrimaryAmount = domain.NewMoney(*cols.Amount, share.Currency)
		if c, ok := domain.ParseCurrency(*cols.SecondaryCurrency); ok {
			share.SecondaryEnabled = true
			share.SecondaryCurrency = c
			share.SecondaryAmount = domain.NewMoney(*cols.SecondaryAmount, c)
		} else {
			share.SecondaryCurrency = share.Currency.Other()
			share.SecondaryAmount = domain.ZeroMoney(share.SecondaryCurrency)
		}
		share.IsTransfer = *cols.IsTransfer
	}
	return d
}

// ToDomainEntrySlice converts a slice of model Entries to a slice of domain Entries.
func ToDomainEntrySlice(ms []models.Entry) []domain.Entry {
	if ms == nil {
		return nil
	}
	ds := make([]domain.Entry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainEntry(m)
	}
	return ds
}
