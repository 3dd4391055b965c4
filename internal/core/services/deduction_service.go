package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/clinic_cash_app/internal/apperrors"
	"github.com/SscSPs/clinic_cash_app/internal/core/domain"
	portsrepo "github.com/SscSPs/clinic_cash_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/clinic_cash_app/internal/core/ports/services"
	"github.com/SscSPs/clinic_cash_app/internal/core/settlement"
	"github.com/SscSPs/clinic_cash_app/internal/dto"
	"github.com/SscSPs/clinic_cash_app/internal/utils"
	"github.com/google/uuid"
)

// deductionService manages the deduction ledger.
type deductionService struct {
	BaseService
	deductionRepo portsrepo.DeductionRepositoryFacade
	now           func() time.Time
}

// NewDeductionService creates a new deduction service.
func NewDeductionService(repo portsrepo.DeductionRepositoryFacade) portssvc.DeductionSvcFacade {
	return &deductionService{
		deductionRepo: repo,
		now:           time.Now,
	}
}

var _ portssvc.DeductionSvcFacade = (*deductionService)(nil)

func (s *deductionService) AddDeduction(ctx context.Context, ownerID string, req dto.CreateDeductionRequest) (*domain.Deduction, error) {
	professional := strings.TrimSpace(req.Professional)
	if professional == "" {
		return nil, fmt.Errorf("%w: deduction needs a professional", apperrors.ErrValidation)
	}
	if err := validateDate(req.Date); err != nil {
		return nil, err
	}

	deduction := settlement.NormalizeDeduction(domain.Deduction{
		DeductionID:      uuid.NewString(),
		OwnerID:          ownerID,
		ProfessionalName: professional,
		Date:             req.Date,
		Description:      strings.TrimSpace(req.Description),
		Amount:           req.Amount.Decimal(),
		Currency:         currencyOr(req.Currency, domain.ARS),
		IncludeInReceipt: req.IncludeInReceipt,
		CreatedAt:        domain.FormatTimestamp(s.now()),
		CreatedBy:        ownerID,
	})

	if err := s.deductionRepo.SaveDeduction(ctx, deduction); err != nil {
		s.LogError(ctx, err, "Failed to save deduction", slog.String("professional", professional))
		return nil, fmt.Errorf("failed to save deduction: %w", err)
	}

	s.LogInfo(ctx, "Deduction added",
		slog.String("deduction_id", deduction.DeductionID),
		slog.String("professional", professional),
		slog.String("amount", utils.FormatMoney(deduction.Money())))
	return &deduction, nil
}

func (s *deductionService) RemoveDeduction(ctx context.Context, ownerID string, deductionID string) error {
	if err := s.deductionRepo.DeleteDeduction(ctx, ownerID, deductionID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete deduction", slog.String("deduction_id", deductionID))
		}
		return err
	}
	s.LogInfo(ctx, "Deduction removed", slog.String("deduction_id", deductionID))
	return nil
}

func (s *deductionService) ListDeductions(ctx context.Context, ownerID string, params dto.ListDeductionsParams) ([]domain.Deduction, error) {
	if err := validateDateRange(params.From, params.To); err != nil {
		return nil, err
	}
	deductions, err := s.deductionRepo.ListDeductions(ctx, ownerID, strings.TrimSpace(params.Professional), params.From, params.To)
	if err != nil {
		s.LogError(ctx, err, "Failed to list deductions")
		return nil, fmt.Errorf("failed to list deductions: %w", err)
	}
	if deductions == nil {
		return []domain.Deduction{}, nil
	}
	return deductions, nil
}
