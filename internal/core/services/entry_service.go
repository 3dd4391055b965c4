package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/clinic_cash_app/internal/apperrors"
	"github.com/SscSPs/clinic_cash_app/internal/core/domain"
	portsrepo "github.com/SscSPs/clinic_cash_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/clinic_cash_app/internal/core/ports/services"
	"github.com/SscSPs/clinic_cash_app/internal/core/settlement"
	"github.com/SscSPs/clinic_cash_app/internal/dto"
	"github.com/SscSPs/clinic_cash_app/internal/platform/metrics"
	"github.com/SscSPs/clinic_cash_app/internal/utils"
	"github.com/google/uuid"
)

const (
	defaultEntryPageSize = 50
	// open bounds used when a listing omits from or to
	minDate = "0001-01-01"
	maxDate = "9999-12-31"
)

var (
	ErrSlotEmpty       = errors.New("slot has no professional assigned")
	ErrUnknownSlotRole = errors.New("unknown slot role")
)

// entryService implements the EntrySvcFacade interface
type entryService struct {
	BaseService
	entryRepo         portsrepo.EntryRepositoryWithTx
	strictPercentages bool
	now               func() time.Time
}

// EntryServiceOption is a functional option for configuring the entry service
type EntryServiceOption func(*entryService)

// WithStrictPercentages rejects entries whose percentages fall outside [0, 100]
// or add up to more than 100. Off by default.
func WithStrictPercentages(strict bool) EntryServiceOption {
	return func(s *entryService) {
		s.strictPercentages = strict
	}
}

// WithEntryClock overrides time.Now, mainly for tests.
func WithEntryClock(now func() time.Time) EntryServiceOption {
	return func(s *entryService) {
		s.now = now
	}
}

// NewEntryService creates a new entry service with the provided options
func NewEntryService(repo portsrepo.EntryRepositoryWithTx, options ...EntryServiceOption) portssvc.EntrySvcFacade {
	svc := &entryService{
		entryRepo: repo,
		now:       time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.EntrySvcFacade = (*entryService)(nil)

// newEntry builds and computes a fresh entry. createdAt orders entries saved in the same call.
func (s *entryService) newEntry(ownerID, date string, createdAt time.Time, manual bool, edits []settlement.Edit) (domain.Entry, error) {
	if err := validateDate(date); err != nil {
		return domain.Entry{}, err
	}
	entry := domain.Entry{
		EntryID:             uuid.NewString(),
		OwnerID:             ownerID,
		Date:                date,
		Shares:              domain.NewShares(),
		IsManualLiquidation: manual,
		CreatedAt:           domain.FormatTimestamp(createdAt),
		LastUpdatedAt:       createdAt,
		LastUpdatedBy:       ownerID,
	}
	entry = settlement.Apply(entry, edits...)
	if err := s.checkPercentages(entry); err != nil {
		return domain.Entry{}, err
	}
	return entry, nil
}

func (s *entryService) checkPercentages(entry domain.Entry) error {
	if !s.strictPercentages || entry.IsManualLiquidation {
		return nil
	}
	if err := settlement.ValidatePercentages(entry.Shares); err != nil {
		return fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}
	return nil
}

func (s *entryService) CreateEntry(ctx context.Context, ownerID string, req dto.CreateEntryRequest) (*domain.Entry, error) {
	entry, err := s.newEntry(ownerID, req.Date, s.now(), false, inputEdits(req.EntryInput))
	if err != nil {
		s.LogDebug(ctx, "Rejected entry", slog.String("error", err.Error()))
		return nil, err
	}

	if err := s.entryRepo.SaveEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to save entry in repository", slog.String("entry_id", entry.EntryID))
		return nil, fmt.Errorf("failed to save entry: %w", err)
	}
	metrics.EntriesSaved.WithLabelValues(metrics.KindOperation).Inc()

	s.LogInfo(ctx, "Entry created",
		slog.String("entry_id", entry.EntryID),
		slog.String("date", entry.Date),
		slog.String("coat_ars", utils.FormatAmount(entry.CoatARS)),
		slog.String("coat_usd", utils.FormatAmount(entry.CoatUSD)))
	return &entry, nil
}

func (s *entryService) PreviewEntry(ctx context.Context, ownerID string, req dto.CreateEntryRequest) (*domain.Entry, error) {
	entry, err := s.newEntry(ownerID, req.Date, s.now(), false, inputEdits(req.EntryInput))
	if err != nil {
		return nil, err
	}
	entry.EntryID = ""
	return &entry, nil
}

func (s *entryService) CloseRegister(ctx context.Context, ownerID string, req dto.CloseRegisterRequest) ([]domain.Entry, error) {
	if len(req.Entries) == 0 {
		return nil, fmt.Errorf("%w: register has no operations", apperrors.ErrValidation)
	}

	now := s.now()
	entries := make([]domain.Entry, 0, len(req.Entries))
	for i, in := range req.Entries {
		// one millisecond apart so createdAt keeps the operator's order
		createdAt := now.Add(time.Duration(i) * time.Millisecond)
		entry, err := s.newEntry(ownerID, req.Date, createdAt, false, inputEdits(in))
		if err != nil {
			return nil, fmt.Errorf("operation %d: %w", i+1, err)
		}
		entries = append(entries, entry)
	}

	tx, err := s.entryRepo.Begin(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to begin register transaction")
		return nil, err
	}
	defer s.entryRepo.Rollback(ctx, tx) // no-op once committed

	if err := s.entryRepo.SaveEntriesInTx(ctx, tx, entries); err != nil {
		s.LogError(ctx, err, "Failed to save register entries", slog.String("date", req.Date), slog.Int("count", len(entries)))
		return nil, fmt.Errorf("failed to close register: %w", err)
	}
	if err := s.entryRepo.Commit(ctx, tx); err != nil {
		s.LogError(ctx, err, "Failed to commit register", slog.String("date", req.Date))
		return nil, err
	}
	metrics.EntriesSaved.WithLabelValues(metrics.KindRegister).Add(float64(len(entries)))

	s.LogInfo(ctx, "Register closed", slog.String("date", req.Date), slog.Int("count", len(entries)))
	return entries, nil
}

func (s *entryService) CreateManualLiquidation(ctx context.Context, ownerID string, req dto.ManualLiquidationRequest) (*domain.Entry, error) {
	role := req.Role
	if role == "" {
		role = domain.SlotProf1
	}
	if !role.Valid() {
		return nil, fmt.Errorf("%w: %w %q", apperrors.ErrValidation, ErrUnknownSlotRole, role)
	}

	entry, err := s.newEntry(ownerID, req.Date, s.now(), true, manualEdits(req, role))
	if err != nil {
		return nil, err
	}
	if !entry.Shares.Slot(role).Active() {
		return nil, fmt.Errorf("%w: manual liquidation needs a professional", apperrors.ErrValidation)
	}

	if err := s.entryRepo.SaveEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to save manual liquidation", slog.String("entry_id", entry.EntryID))
		return nil, fmt.Errorf("failed to save manual liquidation: %w", err)
	}
	metrics.EntriesSaved.WithLabelValues(metrics.KindManual).Inc()

	s.LogInfo(ctx, "Manual liquidation created",
		slog.String("entry_id", entry.EntryID),
		slog.String("professional", req.Professional))
	return &entry, nil
}

func (s *entryService) GetEntry(ctx context.Context, ownerID string, entryID string) (*domain.Entry, error) {
	entry, err := s.entryRepo.FindEntryByID(ctx, ownerID, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find entry", slog.String("entry_id", entryID))
		}
		return nil, err
	}
	return entry, nil
}

func (s *entryService) ListEntries(ctx context.Context, ownerID string, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error) {
	from, to := params.From, params.To
	if from == "" {
		from = minDate
	}
	if to == "" {
		to = maxDate
	}
	if err := validateDateRange(from, to); err != nil {
		return nil, err
	}
	limit := params.Limit
	if limit <= 0 {
		limit = defaultEntryPageSize
	}

	entries, nextToken, err := s.entryRepo.ListEntries(ctx, ownerID, from, to, limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list entries", slog.String("from", from), slog.String("to", to))
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}

	s.LogDebug(ctx, "Entries listed", slog.Int("count", len(entries)))
	return &dto.ListEntriesResponse{
		Entries:   dto.ToEntryResponses(entries),
		NextToken: nextToken,
	}, nil
}

func (s *entryService) UpdateEntry(ctx context.Context, ownerID string, entryID string, req dto.UpdateEntryRequest) (*domain.Entry, error) {
	if req.Date != nil {
		if err := validateDate(*req.Date); err != nil {
			return nil, err
		}
	}
	for _, share := range req.Shares {
		if !share.Role.Valid() {
			return nil, fmt.Errorf("%w: %w %q", apperrors.ErrValidation, ErrUnknownSlotRole, share.Role)
		}
	}

	current, err := s.GetEntry(ctx, ownerID, entryID)
	if err != nil {
		return nil, err
	}

	updated := settlement.Apply(*current, updateEdits(*current, req)...)
	if err := s.checkPercentages(updated); err != nil {
		return nil, err
	}
	updated.LastUpdatedAt = s.now()
	updated.LastUpdatedBy = ownerID

	if err := s.entryRepo.UpdateEntry(ctx, updated); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update entry", slog.String("entry_id", entryID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Entry updated", slog.String("entry_id", entryID))
	return &updated, nil
}

func (s *entryService) SetTransfer(ctx context.Context, ownerID string, entryID string, role domain.SlotRole, isTransfer bool) (*domain.Entry, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("%w: %w %q", apperrors.ErrValidation, ErrUnknownSlotRole, role)
	}
	current, err := s.GetEntry(ctx, ownerID, entryID)
	if err != nil {
		return nil, err
	}
	if !current.Shares.Slot(role).Active() {
		return nil, fmt.Errorf("%w: %w (%s)", apperrors.ErrValidation, ErrSlotEmpty, role)
	}

	now := s.now()
	if err := s.entryRepo.UpdateTransferFlag(ctx, ownerID, entryID, role, isTransfer, ownerID, now); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update transfer flag", slog.String("entry_id", entryID), slog.String("role", string(role)))
		}
		return nil, err
	}

	updated := settlement.Apply(*current, settlement.SetTransfer{Role: role, IsTransfer: isTransfer})
	updated.LastUpdatedAt = now
	updated.LastUpdatedBy = ownerID

	s.LogInfo(ctx, "Transfer flag updated",
		slog.String("entry_id", entryID),
		slog.String("role", string(role)),
		slog.Bool("is_transfer", isTransfer))
	return &updated, nil
}

func (s *entryService) DeleteEntry(ctx context.Context, ownerID string, entryID string) error {
	if err := s.entryRepo.DeleteEntry(ctx, ownerID, entryID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete entry", slog.String("entry_id", entryID))
		}
		return err
	}
	s.LogInfo(ctx, "Entry deleted", slog.String("entry_id", entryID))
	return nil
}

func (s *entryService) RegisterSummary(ctx context.Context, ownerID string, date string) (*domain.RegisterSummary, error) {
	if err := validateDate(date); err != nil {
		return nil, err
	}
	entries, err := s.entryRepo.ListEntriesByDateRange(ctx, ownerID, date, date)
	if err != nil {
		s.LogError(ctx, err, "Failed to load register day", slog.String("date", date))
		return nil, fmt.Errorf("failed to load register: %w", err)
	}
	summary := settlement.SummarizeRegister(date, entries)
	return &summary, nil
}
