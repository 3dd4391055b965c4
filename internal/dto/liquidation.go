package dto

import "github.com/SscSPs/clinic_cash_app/internal/core/domain"

// ListStatementsResponse holds one statement per registered professional.
type ListStatementsResponse struct {
	DateFrom   string             `json:"dateFrom"`
	DateTo     string             `json:"dateTo"`
	Statements []domain.Statement `json:"statements"`
}
