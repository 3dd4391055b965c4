package models

import "github.com/shopspring/decimal"

// Deduction is the persisted shape of a professional's deduction.
type Deduction struct {
	DeductionID string          `json:"id" db:"deduction_id"`
	OwnerID     string          `json:"ownerId" db:"owner_id"`
	Profesional string          `json:"profesional" db:"profesional"`
	Date        string          `json:"date" db:"date"`
	Desc        string          `json:"desc" db:"description"`
	Amount      decimal.Decimal `json:"amount" db:"amount"`
	Currency    string          `json:"currency" db:"currency"`
	InReceipt   bool            `json:"inReceipt" db:"in_receipt"`
	CreatedAt   string          `json:"createdAt" db:"created_at"`
	CreatedBy   string          `json:"createdBy" db:"created_by"`
}
