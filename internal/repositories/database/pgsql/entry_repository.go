package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/clinic_cash_app/internal/apperrors"
	"github.com/SscSPs/clinic_cash_app/internal/core/domain"
	portsrepo "github.com/SscSPs/clinic_cash_app/internal/core/ports/repositories"
	"github.com/SscSPs/clinic_cash_app/internal/models"
	"github.com/SscSPs/clinic_cash_app/internal/utils/mapping"
	"github.com/SscSPs/clinic_cash_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// transferColumns whitelists the flag column touched by UpdateTransferFlag.
var transferColumns = map[domain.SlotRole]string{
	domain.SlotProf1:       "is_transfer_prof_1",
	domain.SlotProf2:       "is_transfer_prof_2",
	domain.SlotProf3:       "is_transfer_prof_3",
	domain.SlotAnestesista: "is_transfer_anestesista",
}

// immutableEntryColumns are written on insert only.
var immutableEntryColumns = map[string]bool{
	"entry_id":   true,
	"owner_id":   true,
	"created_at": true,
}

var (
	entryColumnNames = columnNames(entryColumns(&models.Entry{}))
	entrySelectList  = strings.Join(entryColumnNames, ", ")
	entryInsertSQL   = insertSQL("entries", entryColumnNames)
)

// entryColumns lists every persisted column of an entry with its value.
func entryColumns(m *models.Entry) []column {
	return []column{
		{"entry_id", m.EntryID},
		{"owner_id", m.OwnerID},
		{"fecha", m.Fecha},
		{"paciente", m.Paciente},
		{"dni", m.DNI},
		{"obra_social", m.ObraSocial},
		{"prof_1", m.Prof1},
		{"prof_2", m.Prof2},
		{"prof_3", m.Prof3},
		{"porcentaje_prof_1", m.PorcentajeProf1},
		{"porcentaje_prof_2", m.PorcentajeProf2},
		{"porcentaje_prof_3", m.PorcentajeProf3},
		{"anestesista", m.Anestesista},
		{"pesos", m.Pesos},
		{"dolares", m.Dolares},
		{"liq_prof_1", m.LiqProf1},
		{"liq_prof_1_currency", m.LiqProf1Currency},
		{"liq_prof_1_secondary", m.LiqProf1Secondary},
		{"liq_prof_1_currency_secondary", m.LiqProf1CurrencySecondary},
		{"liq_prof_2", m.LiqProf2},
		{"liq_prof_2_currency", m.LiqProf2Currency},
		{"liq_prof_2_secondary", m.LiqProf2Secondary},
		{"liq_prof_2_currency_secondary", m.LiqProf2CurrencySecondary},
		{"liq_prof_3", m.LiqProf3},
		{"liq_prof_3_currency", m.LiqProf3Currency},
		{"liq_prof_3_secondary", m.LiqProf3Secondary},
		{"liq_prof_3_currency_secondary", m.LiqProf3CurrencySecondary},
		{"liq_anestesista", m.LiqAnestesista},
		{"liq_anestesista_currency", m.LiqAnestesistaCurrency},
		{"liq_anestesista_secondary", m.LiqAnestesistaSecondary},
		{"liq_anestesista_currency_secondary", m.LiqAnestesistaCurrencySecondary},
		{"coat_pesos", m.CoatPesos},
		{"coat_dolares", m.CoatDolares},
		{"is_transfer_prof_1", m.IsTransferProf1},
		{"is_transfer_prof_2", m.IsTransferProf2},
		{"is_transfer_prof_3", m.IsTransferProf3},
		{"is_transfer_anestesista", m.IsTransferAnestesista},
		{"is_manual_liquidation", m.IsManualLiquidation},
		{"created_at", m.CreatedAt},
		{"comentario", m.Comentario},
		{"last_updated_at", m.LastUpdatedAt},
		{"last_updated_by", m.LastUpdatedBy},
	}
}

type PgxEntryRepository struct {
	BaseRepository
}

// newPgxEntryRepository creates a new repository for cash-register entries.
func newPgxEntryRepository(pool *pgxpool.Pool) portsrepo.EntryRepositoryWithTx {
	return &PgxEntryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxEntryRepository implements portsrepo.EntryRepositoryWithTx
var _ portsrepo.EntryRepositoryWithTx = (*PgxEntryRepository)(nil)

// SaveEntry inserts a new entry.
func (r *PgxEntryRepository) SaveEntry(ctx context.Context, entry domain.Entry) error {
	modelEntry := mapping.ToModelEntry(entry)
	if _, err := r.Pool.Exec(ctx, entryInsertSQL, columnValues(entryColumns(&modelEntry))...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: entry with ID %s already exists", apperrors.ErrDuplicate, entry.EntryID)
		}
		return apperrors.NewAppError(500, "failed to insert entry "+entry.EntryID, err)
	}
	return nil
}

// SaveEntriesInTx inserts every entry as one batch within tx.
func (r *PgxEntryRepository) SaveEntriesInTx(ctx context.Context, tx pgx.Tx, entries []domain.Entry) error {
	if len(entries) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, entry := range entries {
		modelEntry := mapping.ToModelEntry(entry)
		batch.Queue(entryInsertSQL, columnValues(entryColumns(&modelEntry))...)
	}

	br := tx.SendBatch(ctx, batch)
	// Close reports the first failed insert of the batch
	if err := br.Close(); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: duplicate entry in register batch", apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(500, "failed to execute entry batch", err)
	}
	return nil
}

// FindEntryByID retrieves one entry of an owner.
func (r *PgxEntryRepository) FindEntryByID(ctx context.Context, ownerID string, entryID string) (*domain.Entry, error) {
	query := `SELECT ` + entrySelectList + ` FROM entries WHERE owner_id = $1 AND entry_id = $2`

	rows, err := r.Pool.Query(ctx, query, ownerID, entryID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query entry "+entryID, err)
	}
	modelEntry, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Entry])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to scan entry "+entryID, err)
	}

	entry := mapping.ToDomainEntry(modelEntry)
	return &entry, nil
}

// ListEntriesByDateRange returns every entry of an owner dated within [from, to].
func (r *PgxEntryRepository) ListEntriesByDateRange(ctx context.Context, ownerID string, from string, to string) ([]domain.Entry, error) {
	query := `SELECT ` + entrySelectList + ` FROM entries
		WHERE owner_id = $1 AND fecha >= $2 AND fecha <= $3
		ORDER BY fecha ASC, created_at ASC, entry_id ASC`

	rows, err := r.Pool.Query(ctx, query, ownerID, from, to)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query entries", err)
	}
	modelEntries, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Entry])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan entries", err)
	}
	return mapping.ToDomainEntrySlice(modelEntries), nil
}

// ListEntries retrieves a page of entries in keyset order. It fetches one row past
// limit to know whether another page exists.
func (r *PgxEntryRepository) ListEntries(ctx context.Context, ownerID string, from string, to string, limit int, nextToken *string) ([]domain.Entry, *string, error) {
	if limit <= 0 {
		limit = 50
	}
	fetchLimit := limit + 1

	args := []any{ownerID, from, to}
	query := `SELECT ` + entrySelectList + ` FROM entries
		WHERE owner_id = $1 AND fecha >= $2 AND fecha <= $3`

	if nextToken != nil && *nextToken != "" {
		cursor, decodeErr := pagination.DecodeEntryCursor(*nextToken)
		if decodeErr != nil {
			return nil, nil, fmt.Errorf("%w: invalid nextToken: %w", apperrors.ErrValidation, decodeErr)
		}
		query += ` AND (fecha, created_at, entry_id) > ($4, $5, $6)`
		args = append(args, cursor.Date, cursor.CreatedAt, cursor.EntryID)
	}
	query += fmt.Sprintf(` ORDER BY fecha ASC, created_at ASC, entry_id ASC LIMIT $%d`, len(args)+1)
	args = append(args, fetchLimit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to list entries", err)
	}
	modelEntries, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Entry])
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to scan entries", err)
	}

	var nextTokenVal *string
	if len(modelEntries) > limit {
		modelEntries = modelEntries[:limit]
		last := modelEntries[limit-1]
		token := pagination.EncodeEntryCursor(pagination.EntryCursor{
			Date:      last.Fecha,
			CreatedAt: last.CreatedAt,
			EntryID:   last.EntryID,
		})
		nextTokenVal = &token
	}

	entries := mapping.ToDomainEntrySlice(modelEntries)
	if entries == nil {
		entries = []domain.Entry{}
	}
	return entries, nextTokenVal, nil
}

// UpdateEntry overwrites every mutable column of an entry.
func (r *PgxEntryRepository) UpdateEntry(ctx context.Context, entry domain.Entry) error {
	modelEntry := mapping.ToModelEntry(entry)

	var names []string
	var values []any
	for _, c := range entryColumns(&modelEntry) {
		if immutableEntryColumns[c.name] {
			continue
		}
		names = append(names, c.name)
		values = append(values, c.value)
	}
	query := fmt.Sprintf(`UPDATE entries SET %s WHERE owner_id = $1 AND entry_id = $2`, setClause(names, 2))
	args := append([]any{modelEntry.OwnerID, modelEntry.EntryID}, values...)

	tag, err := r.Pool.Exec(ctx, query, args...)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update entry "+entry.EntryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateTransferFlag sets the transfer flag of one slot without touching amounts.
func (r *PgxEntryRepository) UpdateTransferFlag(ctx context.Context, ownerID string, entryID string, role domain.SlotRole, isTransfer bool, userID string, now time.Time) error {
	col, ok := transferColumns[role]
	if !ok {
		return fmt.Errorf("%w: unknown slot role %q", apperrors.ErrValidation, role)
	}
	query := fmt.Sprintf(`UPDATE entries SET %s = $1, last_updated_at = $2, last_updated_by = $3
		WHERE owner_id = $4 AND entry_id = $5`, col)

	tag, err := r.Pool.Exec(ctx, query, isTransfer, now, userID, ownerID, entryID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update transfer flag of entry "+entryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteEntry removes an entry.
func (r *PgxEntryRepository) DeleteEntry(ctx context.Context, ownerID string, entryID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM entries WHERE owner_id = $1 AND entry_id = $2`, ownerID, entryID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete entry "+entryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
