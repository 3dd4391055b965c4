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
	"github.com/SscSPs/clinic_cash_app/internal/dto"
)

// professionalService manages the professionals entries refer to by name.
type professionalService struct {
	BaseService
	professionalRepo portsrepo.ProfessionalRepositoryFacade
}

// NewProfessionalService creates a new professional service.
func NewProfessionalService(repo portsrepo.ProfessionalRepositoryFacade) portssvc.ProfessionalSvcFacade {
	return &professionalService{professionalRepo: repo}
}

var _ portssvc.ProfessionalSvcFacade = (*professionalService)(nil)

func (s *professionalService) CreateProfessional(ctx context.Context, ownerID string, req dto.CreateProfessionalRequest) (*domain.Professional, error) {
	name := strings.TrimSpace(req.Name)
	category := domain.ProfessionalCategory(strings.TrimSpace(string(req.Category)))
	if name == "" {
		return nil, fmt.Errorf("%w: professional name is required", apperrors.ErrValidation)
	}
	if category == "" {
		return nil, fmt.Errorf("%w: professional category is required", apperrors.ErrValidation)
	}

	_, err := s.professionalRepo.FindProfessionalByName(ctx, ownerID, name)
	if err == nil {
		return nil, fmt.Errorf("%w: professional %q already exists", apperrors.ErrDuplicate, name)
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check existing professional", slog.String("name", name))
		return nil, err
	}

	now := time.Now()
	professional := domain.Professional{
		Name:     name,
		OwnerID:  ownerID,
		Category: category,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     ownerID,
			LastUpdatedAt: now,
			LastUpdatedBy: ownerID,
		},
	}
	if err := s.professionalRepo.SaveProfessional(ctx, professional); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save professional", slog.String("name", name))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Professional created", slog.String("name", name), slog.String("category", string(category)))
	return &professional, nil
}

func (s *professionalService) GetProfessional(ctx context.Context, ownerID string, name string) (*domain.Professional, error) {
	professional, err := s.professionalRepo.FindProfessionalByName(ctx, ownerID, name)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find professional", slog.String("name", name))
		}
		return nil, err
	}
	return professional, nil
}

func (s *professionalService) ListProfessionals(ctx context.Context, ownerID string) ([]domain.Professional, error) {
	professionals, err := s.professionalRepo.ListProfessionals(ctx, ownerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list professionals")
		return nil, fmt.Errorf("failed to list professionals: %w", err)
	}
	if professionals == nil {
		return []domain.Professional{}, nil
	}
	return professionals, nil
}
