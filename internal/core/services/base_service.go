package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/clinic_cash_app/internal/apperrors"
	"github.com/SscSPs/clinic_cash_app/internal/core/domain"
	"github.com/SscSPs/clinic_cash_app/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct{}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// validateDate rejects anything that is not a YYYY-MM-DD calendar date.
func validateDate(date string) error {
	if !domain.IsValidDate(date) {
		return fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", apperrors.ErrValidation, date)
	}
	return nil
}

// validateDateRange checks both bounds and their order. ISO dates compare as strings.
func validateDateRange(from, to string) error {
	if err := validateDate(from); err != nil {
		return err
	}
	if err := validateDate(to); err != nil {
		return err
	}
	if from > to {
		return fmt.Errorf("%w: date range starts after it ends (%s > %s)", apperrors.ErrValidation, from, to)
	}
	return nil
}

// currencyOr parses a currency code, returning fallback for blank or unknown input.
func currencyOr(code string, fallback domain.Currency) domain.Currency {
	if c, ok := domain.ParseCurrency(code); ok {
		return c
	}
	return fallback
}
