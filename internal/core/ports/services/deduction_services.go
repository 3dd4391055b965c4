package services

import (
	"context"

	"github.com/SscSPs/clinic_cash_app/internal/core/domain"
	"github.com/SscSPs/clinic_cash_app/internal/dto"
)

// DeductionSvcFacade defines operations on the deduction ledger
type DeductionSvcFacade interface {
	AddDeduction(ctx context.Context, ownerID string, req dto.CreateDeductionRequest) (*domain.Deduction, error)
	RemoveDeduction(ctx context.Context, ownerID string, deductionID string) error
	ListDeductions(ctx context.Context, ownerID string, params dto.ListDeductionsParams) ([]domain.Deduction, error)
}
