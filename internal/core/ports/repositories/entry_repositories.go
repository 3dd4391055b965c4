package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/clinic_cash_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// EntryReader defines read operations for cash-register entries
type EntryReader interface {
	// FindEntryByID retrieves one entry of an owner.
	FindEntryByID(ctx context.Context, ownerID string, entryID string) (*domain.Entry, error)

	// ListEntriesByDateRange returns every entry of an owner dated within [from, to], unpaginated.
	// Used by statement building and register summaries.
	ListEntriesByDateRange(ctx context.Context, ownerID string, from string, to string) ([]domain.Entry, error)

	// ListEntries retrieves a page of entries ordered by date, createdAt and id.
	// It returns the entries, a token for the next page, and an error.
	ListEntries(ctx context.Context, ownerID string, from string, to string, limit int, nextToken *string) ([]domain.Entry, *string, error)
}

// EntryWriter defines write operations for cash-register entries
type EntryWriter interface {
	// SaveEntry persists a new entry.
	SaveEntry(ctx context.Context, entry domain.Entry) error

	// UpdateEntry overwrites every stored field of an entry. Last write wins.
	UpdateEntry(ctx context.Context, entry domain.Entry) error

	// UpdateTransferFlag sets only the transfer flag of one slot.
	UpdateTransferFlag(ctx context.Context, ownerID string, entryID string, role domain.SlotRole, isTransfer bool, userID string, now time.Time) error

	// DeleteEntry removes an entry.
	DeleteEntry(ctx context.Context, ownerID string, entryID string) error
}

// EntryTransactionSupport defines operations that run inside a caller-managed transaction
type EntryTransactionSupport interface {
	// SaveEntriesInTx inserts a batch of entries within tx.
	SaveEntriesInTx(ctx context.Context, tx pgx.Tx, entries []domain.Entry) error
}

// EntryRepositoryFacade combines all entry-related repository interfaces
type EntryRepositoryFacade interface {
	EntryReader
	EntryWriter
	EntryTransactionSupport
}

// EntryRepositoryWithTx extends EntryRepositoryFacade with transaction capabilities
type EntryRepositoryWithTx interface {
	EntryRepositoryFacade
	TransactionManager
}
