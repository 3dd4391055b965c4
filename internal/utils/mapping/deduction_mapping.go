package mapping

import (
	"github.com/SscSPs/clinic_cash_app/internal/core/domain"
	"github.com/SscSPs/clinic_cash_app/internal/models"
)

// ToModelDeduction converts a domain Deduction to a model Deduction
func ToModelDeduction(d domain.Deduction) models.Deduction {
	return models.Deduction{
		DeductionID: d.DeductionID,
		OwnerID:     d.OwnerID,
		Profesional: d.ProfessionalName,
		Date:        d.Date,
		Desc:        d.Description,
		Amount:      d.Amount,
		Currency:    string(d.Currency),
		InReceipt:   d.IncludeInReceipt,
		CreatedAt:   d.CreatedAt,
		CreatedBy:   d.CreatedBy,
	}
}

// ToDomainDeduction converts a model Deduction to a domain Deduction
func ToDomainDeduction(m models.Deduction) domain.Deduction {
	currency, _ := domain.ParseCurrency(m.Currency)
	return domain.Deduction{
		DeductionID:      m.DeductionID,
		OwnerID:          m.OwnerID,
		ProfessionalName: m.Profesional,
		Date:             m.Date,
		Description:      m.Desc,
		Amount:           m.Amount,
		Currency:         currency,
		IncludeInReceipt: m.InReceipt,
		CreatedAt:        m.CreatedAt,
		CreatedBy:        m.CreatedBy,
	}
}

// ToDomainDeductionSlice converts a slice of model Deductions to a slice of domain Deductions
func ToDomainDeductionSlice(ms []models.Deduction) []domain.Deduction {
	if ms == nil {
		return nil
	}
	ds := make([]domain.Deduction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainDeduction(m)
	}
	return ds
}
