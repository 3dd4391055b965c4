package services

import (
	"context"

	"github.com/SscSPs/clinic_cash_app/internal/core/domain"
	"github.com/SscSPs/clinic_cash_app/internal/dto"
)

// ProfessionalReaderSvc defines read operations for professionals
type ProfessionalReaderSvc interface {
	GetProfessional(ctx context.Context, ownerID string, name string) (*domain.Professional, error)
	ListProfessionals(ctx context.Context, ownerID string) ([]domain.Professional, error)
}

// ProfessionalWriterSvc defines write operations for professionals
type ProfessionalWriterSvc interface {
	CreateProfessional(ctx context.Context, ownerID string, req dto.CreateProfessionalRequest) (*domain.Professional, error)
}

// ProfessionalSvcFacade combines all professional-related service interfaces
type ProfessionalSvcFacade interface {
	ProfessionalReaderSvc
	ProfessionalWriterSvc
}
