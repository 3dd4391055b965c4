package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the ISO calendar date used for entry and deduction dates.
// Dates compare correctly as plain strings in this layout.
const DateLayout = "2006-01-02"

// TimestampLayout is the fixed-width UTC timestamp used for CreatedAt, so that
// string order equals chronological order.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// FormatTimestamp renders t in TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// IsValidDate reports whether s is a YYYY-MM-DD calendar date.
func IsValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// Payment is what the patient paid, one figure per currency.
type Payment struct {
	ARS decimal.Decimal `json:"ARS"`
	USD decimal.Decimal `json:"USD"`
}

// Get returns the payment leg for currency c.
func (p Payment) Get(c Currency) decimal.Decimal {
	if c == USD {
		return p.USD
	}
	return p.ARS
}

// Residual is the clinic's retained balance (COAT) after all shares.
type Residual struct {
	CoatARS decimal.Decimal `json:"coatARS"`
	CoatUSD decimal.Decimal `json:"coatUSD"`
}

// Entry is one settled cash-register line.
type Entry struct {
	EntryID             string          `json:"entryID"`
	OwnerID             string          `json:"ownerID"`
	Date                string          `json:"date"`
	PatientName         string          `json:"patientName"`
	PatientID           string          `json:"patientID"`
	Insurer             string          `json:"insurer"`
	Payment             Payment         `json:"payment"`
	Shares              Shares          `json:"shares"`
	CoatARS             decimal.Decimal `json:"coatARS"`
	CoatUSD             decimal.Decimal `json:"coatUSD"`
	Comment             string          `json:"comment"`
	IsManualLiquidation bool            `json:"isManualLiquidation"`
	CreatedAt           string          `json:"createdAt"` // TimestampLayout, sortable as a string
	LastUpdatedAt       time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy       string          `json:"lastUpdatedBy"`
}

// Residual returns the stored COAT figures.
func (e Entry) Residual() Residual {
	return Residual{CoatARS: e.CoatARS, CoatUSD: e.CoatUSD}
}

// WithResidual returns a copy carrying r as its COAT figures.
func (e Entry) WithResidual(r Residual) Entry {
	e.CoatARS = r.CoatARS
	e.CoatUSD = r.CoatUSD
	return e
}

// InRange reports whether the entry date falls in [from, to], inclusive.
func (e Entry) InRange(from, to string) bool {
	return e.Date >= from && e.Date <= to
}
