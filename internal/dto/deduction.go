package dto

import (
	"github.com/SscSPs/clinic_cash_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateDeductionRequest defines the data needed to record a deduction.
// The amount is stored as a magnitude; a negative input is taken as its absolute value.
type CreateDeductionRequest struct {
	Professional     string `json:"professional" binding:"required"`
	Date             string `json:"date" binding:"required,datetime=2006-01-02"`
	Description      string `json:"description"`
	Amount           Amount `json:"amount"`
	Currency         string `json:"currency" binding:"required,currency"`
	IncludeInReceipt bool   `json:"includeInReceipt"`
}

// ListDeductionsParams filters the deduction listing.
type ListDeductionsParams struct {
	Professional string `form:"professional"`
	DateRangeParams
}

// DeductionResponse defines the data returned for a deduction.
type DeductionResponse struct {
	DeductionID      string          `json:"deductionID"`
	Professional     string          `json:"professional"`
	Date             string          `json:"date"`
	Description      string          `json:"description"`
	Amount           decimal.Decimal `json:"amount"`
	Currency         domain.Currency `json:"currency"`
	IncludeInReceipt bool            `json:"includeInReceipt"`
	CreatedAt        string          `json:"createdAt"`
	CreatedBy        string          `json:"createdBy"`
}

// ToDeductionResponse converts a domain.Deduction to DeductionResponse DTO.
func ToDeductionResponse(d *domain.Deduction) DeductionResponse {
	return DeductionResponse{
		DeductionID:      d.DeductionID,
		Professional:     d.ProfessionalName,
		Date:             d.Date,
		Description:      d.Description,
		Amount:           d.Amount,
		Currency:         d.Currency,
		IncludeInReceipt: d.IncludeInReceipt,
		CreatedAt:        d.CreatedAt,
		CreatedBy:        d.CreatedBy,
	}
}

// ToDeductionResponses converts a slice of domain.Deduction to []DeductionResponse.
func ToDeductionResponses(deductions []domain.Deduction) []DeductionResponse {
	responses := make([]DeductionResponse, len(deductions))
	for i := range deductions {
		responses[i] = ToDeductionResponse(&deductions[i])
	}
	return responses
}
