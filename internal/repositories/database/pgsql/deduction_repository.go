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

const deductionSelectList = `deduction_id, owner_id, profesional, date, description, amount, currency, in_receipt, created_at, created_by`

type PgxDeductionRepository struct {
	BaseRepository
}

// newPgxDeductionRepository creates a new repository for professional deductions.
func newPgxDeductionRepository(pool *pgxpool.Pool) portsrepo.DeductionRepositoryFacade {
	return &PgxDeductionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.DeductionRepositoryFacade = (*PgxDeductionRepository)(nil)

// SaveDeduction inserts a new deduction.
func (r *PgxDeductionRepository) SaveDeduction(ctx context.Context, deduction domain.Deduction) error {
	m := mapping.ToModelDeduction(deduction)
	query := `
		INSERT INTO deductions (deduction_id, owner_id, profesional, date, description, amount, currency, in_receipt, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.DeductionID,
		m.OwnerID,
		m.Profesional,
		m.Date,
		m.Desc,
		m.Amount,
		m.Currency,
		m.InReceipt,
		m.CreatedAt,
		m.CreatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: deduction with ID %s already exists", apperrors.ErrDuplicate, m.DeductionID)
		}
		return apperrors.NewAppError(500, "failed to insert deduction "+m.DeductionID, err)
	}
	return nil
}

// FindDeductionByID retrieves one deduction of an owner.
func (r *PgxDeductionRepository) FindDeductionByID(ctx context.Context, ownerID string, deductionID string) (*domain.Deduction, error) {
	query := `SELECT ` + deductionSelectList + ` FROM deductions WHERE owner_id = $1 AND deduction_id = $2`

	rows, err := r.Pool.Query(ctx, query, ownerID, deductionID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query deduction "+deductionID, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Deduction])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to scan deduction "+deductionID, err)
	}
	deduction := mapping.ToDomainDeduction(m)
	return &deduction, nil
}

// ListDeductions returns an owner's deductions dated within [from, to], ordered by date.
// An empty professional lists every professional.
func (r *PgxDeductionRepository) ListDeductions(ctx context.Context, ownerID string, professional string, from string, to string) ([]domain.Deduction, error) {
	query := `SELECT ` + deductionSelectList + ` FROM deductions
		WHERE owner_id = $1 AND ($2 = '' OR profesional = $2) AND date >= $3 AND date <= $4
		ORDER BY date ASC, created_at ASC, deduction_id ASC`

	rows, err := r.Pool.Query(ctx, query, ownerID, professional, from, to)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query deductions", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Deduction])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan deductions", err)
	}
	return mapping.ToDomainDeductionSlice(ms), nil
}

// DeleteDeduction removes a deduction.
func (r *PgxDeductionRepository) DeleteDeduction(ctx context.Context, ownerID string, deductionID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM deductions WHERE owner_id = $1 AND deduction_id = $2`, ownerID, deductionID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete deduction "+deductionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
