package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/SscSPs/clinic_cash_app/internal/apperrors"
	"github.com/SscSPs/clinic_cash_app/internal/core/domain"
	portsrepo "github.com/SscSPs/clinic_cash_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/clinic_cash_app/internal/core/ports/services"
	"github.com/SscSPs/clinic_cash_app/internal/core/settlement"
	"github.com/SscSPs/clinic_cash_app/internal/platform/metrics"
	"github.com/SscSPs/clinic_cash_app/internal/utils"
)

// liquidationService loads a snapshot of entries and deductions and hands it to
// the settlement engine. Nothing it computes is stored.
type liquidationService struct {
	BaseService
	entryRepo        portsrepo.EntryReader
	deductionRepo    portsrepo.DeductionReader
	professionalRepo portsrepo.ProfessionalReader
}

// NewLiquidationService creates a new liquidation service.
func NewLiquidationService(entryRepo portsrepo.EntryReader, deductionRepo portsrepo.DeductionReader, professionalRepo portsrepo.ProfessionalReader) portssvc.LiquidationSvc {
	return &liquidationService{
		entryRepo:        entryRepo,
		deductionRepo:    deductionRepo,
		professionalRepo: professionalRepo,
	}
}

var _ portssvc.LiquidationSvc = (*liquidationService)(nil)

func (s *liquidationService) BuildStatement(ctx context.Context, ownerID string, name string, from string, to string) (*domain.Statement, error) {
	if err := validateDateRange(from, to); err != nil {
		return nil, err
	}

	// Entries match professionals by name, so an unregistered name still gets a statement.
	professional := domain.Professional{Name: name, OwnerID: ownerID}
	found, err := s.professionalRepo.FindProfessionalByName(ctx, ownerID, name)
	switch {
	case err == nil:
		professional = *found
	case !errors.Is(err, apperrors.ErrNotFound):
		s.LogError(ctx, err, "Failed to load professional", slog.String("professional", name))
		return nil, err
	}

	entries, err := s.entryRepo.ListEntriesByDateRange(ctx, ownerID, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to load entries for statement", slog.String("from", from), slog.String("to", to))
		return nil, fmt.Errorf("failed to load entries: %w", err)
	}
	deductions, err := s.deductionRepo.ListDeductions(ctx, ownerID, name, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to load deductions for statement", slog.String("professional", name))
		return nil, fmt.Errorf("failed to load deductions: %w", err)
	}

	stmt := settlement.BuildStatement(professional, from, to, entries, deductions)
	metrics.StatementsBuilt.Inc()

	s.LogDebug(ctx, "Statement built",
		slog.String("professional", name),
		slog.Int("lines", len(stmt.Lines)),
		slog.String("final_ars", utils.FormatAmount(stmt.FinalTotals.FinalARS)),
		slog.String("final_usd", utils.FormatAmount(stmt.FinalTotals.FinalUSD)))
	return &stmt, nil
}

func (s *liquidationService) BuildAllStatements(ctx context.Context, ownerID string, from string, to string) ([]domain.Statement, error) {
	if err := validateDateRange(from, to); err != nil {
		return nil, err
	}

	professionals, err := s.professionalRepo.ListProfessionals(ctx, ownerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list professionals for statements")
		return nil, fmt.Errorf("failed to list professionals: %w", err)
	}
	entries, err := s.entryRepo.ListEntriesByDateRange(ctx, ownerID, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to load entries for statements", slog.String("from", from), slog.String("to", to))
		return nil, fmt.Errorf("failed to load entries: %w", err)
	}
	deductions, err := s.deductionRepo.ListDeductions(ctx, ownerID, "", from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to load deductions for statements")
		return nil, fmt.Errorf("failed to load deductions: %w", err)
	}

	sort.SliceStable(professionals, func(i, j int) bool {
		return professionals[i].Name < professionals[j].Name
	})

	statements := make([]domain.Statement, 0, len(professionals))
	for _, professional := range professionals {
		statements = append(statements, settlement.BuildStatement(professional, from, to, entries, deductions))
	}
	metrics.StatementsBuilt.Add(float64(len(statements)))

	s.LogDebug(ctx, "Statements built", slog.Int("count", len(statements)))
	return statements, nil
}
