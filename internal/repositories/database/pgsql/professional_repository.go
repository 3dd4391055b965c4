package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/clinic_cash_app/internal/apperrors"
	"github.com/SscSPs/clinic_cash_app/internal/core/domain"
	portsrepo "github.com/SscSPs/clinic_cash_app/internal/core/ports/repositories"
	"github.com/SscSPs/clinic_cash_app/internal/models"
	"github.com/SscSPs/clinic_cash_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const professionalSelectList = `owner_id, name, category, created_at, created_by, last_updated_at, last_updated_by`

type PgxProfessionalRepository struct {
	BaseRepository
}

// newPgxProfessionalRepository creates a new repository for registered professionals.
func newPgxProfessionalRepository(pool *pgxpool.Pool) portsrepo.ProfessionalRepositoryFacade {
	return &PgxProfessionalRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ProfessionalRepositoryFacade = (*PgxProfessionalRepository)(nil)

// SaveProfessional inserts a new professional. The (owner_id, name) key is unique.
func (r *PgxProfessionalRepository) SaveProfessional(ctx context.Context, professional domain.Professional) error {
	m := mapping.ToModelProfessional(professional)
	query := `
		INSERT INTO professionals (owner_id, name, category, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.OwnerID,
		m.Name,
		m.Category,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: professional %q already exists", apperrors.ErrDuplicate, m.Name)
		}
		return apperrors.NewAppError(500, "failed to insert professional "+m.Name, err)
	}
	return nil
}

// FindProfessionalByName looks a professional up by exact name.
func (r *PgxProfessionalRepository) FindProfessionalByName(ctx context.Context, ownerID string, name string) (*domain.Professional, error) {
	query := `SELECT ` + professionalSelectList + ` FROM professionals WHERE owner_id = $1 AND name = $2`

	rows, err := r.Pool.Query(ctx, query, ownerID, name)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query professional "+name, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Professional])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to scan professional "+name, err)
	}
	professional := mapping.ToDomainProfessional(m)
	return &professional, nil
}

// ListProfessionals returns an owner's professionals ordered by name.
func (r *PgxProfessionalRepository) ListProfessionals(ctx context.Context, ownerID string) ([]domain.Professional, error) {
	query := `SELECT ` + professionalSelectList + ` FROM professionals WHERE owner_id = $1 ORDER BY name ASC`

	rows, err := r.Pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query professionals", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Professional])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan professionals", err)
	}
	return mapping.ToDomainProfessionalSlice(ms), nil
}
