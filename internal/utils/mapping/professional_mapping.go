package mapping

import (
	"github.com/SscSPs/clinic_cash_app/internal/core/domain"
	"github.com/SscSPs/clinic_cash_app/internal/models"
)

// ToModelProfessional converts a domain Professional to a model Professional
func ToModelProfessional(d domain.Professional) models.Professional {
	return models.Professional{
		OwnerID:   d.OwnerID,
		Name:      d.Name,
		Category:  string(d.Category),
		CreatedAt: d.CreatedAt,
		CreatedBy: d.CreatedBy,
		AuditFields: models.AuditFields{
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

// ToDomainProfessional converts a model Professional to a domain Professional
func ToDomainProfessional(m models.Professional) domain.Professional {
	return domain.Professional{
		Name:     m.Name,
		OwnerID:  m.OwnerID,
		Category: domain.ProfessionalCategory(m.Category),
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

// ToDomainProfessionalSlice converts a slice of model Professionals to a slice of domain Professionals
func ToDomainProfessionalSlice(ms []models.Professional) []domain.Professional {
	if ms == nil {
		return nil
	}
	ds := make([]domain.Professional, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainProfessional(m)
	}
	return ds
}
