package repositories

import (
	"context"

	"github.com/SscSPs/clinic_cash_app/internal/core/domain"
)

// ProfessionalReader defines read operations for professionals
type ProfessionalReader interface {
	// FindProfessionalByName looks a professional up by exact name, the key entries match on.
	FindProfessionalByName(ctx context.Context, ownerID string, name string) (*domain.Professional, error)

	ListProfessionals(ctx context.Context, ownerID string) ([]domain.Professional, error)
}

// ProfessionalWriter defines write operations for professionals
type ProfessionalWriter interface {
	// SaveProfessional persists a new professional. A name already taken by the owner
	// returns apperrors.ErrDuplicate.
	SaveProfessional(ctx context.Context, professional domain.Professional) error
}

// ProfessionalRepositoryFacade combines all professional-related repository interfaces
type ProfessionalRepositoryFacade interface {
	ProfessionalReader
	ProfessionalWriter
}
