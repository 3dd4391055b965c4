package dto

import (
	"time"

	"github.com/SscSPs/clinic_cash_app/internal/core/domain"
)

// CreateProfessionalRequest defines the data needed to register a professional.
type CreateProfessionalRequest struct {
	Name     string                      `json:"name" binding:"required"`
	Category domain.ProfessionalCategory `json:"category" binding:"required"`
}

// ProfessionalResponse defines the data returned for a professional.
type ProfessionalResponse struct {
	Name      string                      `json:"name"`
	Category  domain.ProfessionalCategory `json:"category"`
	Layout    domain.StatementLayout      `json:"layout"`
	CreatedAt time.Time                   `json:"createdAt"`
	CreatedBy string                      `json:"createdBy"`
}

// ToProfessionalResponse converts a domain.Professional to ProfessionalResponse DTO.
func ToProfessionalResponse(p *domain.Professional) ProfessionalResponse {
	return ProfessionalResponse{
		Name:      p.Name,
		Category:  p.Category,
		Layout:    p.Category.Layout(),
		CreatedAt: p.CreatedAt,
		CreatedBy: p.CreatedBy,
	}
}

// ToProfessionalResponses converts a slice of domain.Professional to []ProfessionalResponse.
func ToProfessionalResponses(professionals []domain.Professional) []ProfessionalResponse {
	responses := make([]ProfessionalResponse, len(professionals))
	for i := range professionals {
		responses[i] = ToProfessionalResponse(&professionals[i])
	}
	return responses
}
