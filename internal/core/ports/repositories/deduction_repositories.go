package repositories

import (
	"context"

	"github.com/SscSPs/clinic_cash_app/internal/core/domain"
)

// DeductionReader defines read operations for deductions
type DeductionReader interface {
	FindDeductionByID(ctx context.Context, ownerID string, deductionID string) (*domain.Deduction, error)

	// ListDeductions returns an owner's deductions dated within [from, to]. An empty
	// professional lists every professional.
	ListDeductions(ctx context.Context, ownerID string, professional string, from string, to string) ([]domain.Deduction, error)
}

// DeductionWriter defines write operations for deductions
type DeductionWriter interface {
	SaveDeduction(ctx context.Context, deduction domain.Deduction) error
	DeleteDeduction(ctx context.Context, ownerID string, deductionID string) error
}

// DeductionRepositoryFacade combines all deduction-related repository interfaces
type DeductionRepositoryFacade interface {
	DeductionReader
	DeductionWriter
}
