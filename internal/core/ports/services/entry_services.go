package services

import (
	"context"

	"github.com/SscSPs/clinic_cash_app/internal/core/domain"
	"github.com/SscSPs/clinic_cash_app/internal/dto"
)

// EntryReaderSvc defines read operations for cash-register entries
type EntryReaderSvc interface {
	GetEntry(ctx context.Context, ownerID string, entryID string) (*domain.Entry, error)

	// ListEntries retrieves a page of entries within an optional date range.
	ListEntries(ctx context.Context, ownerID string, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error)

	// RegisterSummary totals one day of the register.
	RegisterSummary(ctx context.Context, ownerID string, date string) (*domain.RegisterSummary, error)
}

// EntryWriterSvc defines write operations for cash-register entries. Every write
// runs the split and residual computation before persisting.
type EntryWriterSvc interface {
	CreateEntry(ctx context.Context, ownerID string, req dto.CreateEntryRequest) (*domain.Entry, error)

	// CloseRegister saves all operations of a day in one transaction.
	CloseRegister(ctx context.Context, ownerID string, req dto.CloseRegisterRequest) ([]domain.Entry, error)

	CreateManualLiquidation(ctx context.Context, ownerID string, req dto.ManualLiquidationRequest) (*domain.Entry, error)

	// UpdateEntry applies field edits and recomputes amounts. Last write wins.
	UpdateEntry(ctx context.Context, ownerID string, entryID string, req dto.UpdateEntryRequest) (*domain.Entry, error)

	// SetTransfer toggles a slot's transfer flag without touching any amount.
	SetTransfer(ctx context.Context, ownerID string, entryID string, role domain.SlotRole, isTransfer bool) (*domain.Entry, error)

	DeleteEntry(ctx context.Context, ownerID string, entryID string) error
}

// EntryCalculatorSvc computes entries without persisting them
type EntryCalculatorSvc interface {
	// PreviewEntry returns the computed entry the request would save.
	PreviewEntry(ctx context.Context, ownerID string, req dto.CreateEntryRequest) (*domain.Entry, error)
}

// EntrySvcFacade combines all entry-related service interfaces
type EntrySvcFacade interface {
	EntryReaderSvc
	EntryWriterSvc
	EntryCalculatorSvc
}
