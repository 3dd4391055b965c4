package domain

import "github.com/shopspring/decimal"

// Deduction is a manual adjustment subtracted from a professional's statement.
// Amount is stored as a positive magnitude; the subtraction happens at aggregation.
type Deduction struct {
	DeductionID      string          `json:"deductionID"`
	OwnerID          string          `json:"ownerID"`
	ProfessionalName string          `json:"professionalName"`
	Date             string          `json:"date"`
	Description      string          `json:"description"`
	Amount           decimal.Decimal `json:"amount"`
	Currency         Currency        `json:"currency"`
	IncludeInReceipt bool            `json:"includeInReceipt"`
	CreatedAt        string          `json:"createdAt"`
	CreatedBy        string          `json:"createdBy"`
}

// Money returns the deduction as a currency-tagged amount.
func (d Deduction) Money() Money {
	return NewMoney(d.Amount, d.Currency)
}
