package services

import (
	"context"

	"github.com/SscSPs/clinic_cash_app/internal/core/domain"
)

// LiquidationSvc builds per-professional statements. Statements are derived data,
// recomputed from entries and deductions on every call.
type LiquidationSvc interface {
	BuildStatement(ctx context.Context, ownerID string, professional string, from string, to string) (*domain.Statement, error)

	// BuildAllStatements returns one statement per registered professional, in name order.
	BuildAllStatements(ctx context.Context, ownerID string, from string, to string) ([]domain.Statement, error)
}
