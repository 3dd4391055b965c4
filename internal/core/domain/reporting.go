package domain

import "github.com/shopspring/decimal"

// StatementLine is one entry's contribution to a professional's statement.
type StatementLine struct {
	EntryID             string          `json:"entryID"`
	Date                string          `json:"date"`
	CreatedAt           string          `json:"createdAt"`
	PatientName         string          `json:"patientName"`
	PatientID           string          `json:"patientID"`
	Insurer             string          `json:"insurer"`
	Payment             Payment         `json:"payment"`
	Role                SlotRole        `json:"role"`
	SharePercent        decimal.Decimal `json:"sharePercent"`
	Primary             Money           `json:"primary"`
	Secondary           *Money          `json:"secondary,omitempty"`
	IsTransfer          bool            `json:"isTransfer"`
	IsManualLiquidation bool            `json:"isManualLiquidation"`
	Comment             string          `json:"comment"`
}

// Legs returns the line's primary leg and its secondary leg when present.
func (l StatementLine) Legs() []Money {
	if l.Secondary != nil {
		return []Money{l.Primary, *l.Secondary}
	}
	return []Money{l.Primary}
}

// StatementTotals are the summed liquidation legs of non-transfer lines.
type StatementTotals struct {
	LiqPesosTotal   decimal.Decimal `json:"liqPesosTotal"`
	LiqDolaresTotal decimal.Decimal `json:"liqDolaresTotal"`
}

// FinalTotals are the statement totals net of deductions. They may be negative.
type FinalTotals struct {
	FinalARS decimal.Decimal `json:"finalARS"`
	FinalUSD decimal.Decimal `json:"finalUSD"`
}

// Statement is a professional's liquidation over a date range.
// It is derived data and is recomputed on every request.
type Statement struct {
	Professional    string               `json:"professional"`
	Category        ProfessionalCategory `json:"category"`
	Layout          StatementLayout      `json:"layout"`
	DateFrom        string               `json:"dateFrom"`
	DateTo          string               `json:"dateTo"`
	Lines           []StatementLine      `json:"lines"`
	Deductions      []Deduction          `json:"deductions"`
	Totals          StatementTotals      `json:"totals"`
	TransferTotals  Amounts              `json:"transferTotals"`
	DeductionTotals Amounts              `json:"deductionTotals"`
	FinalTotals     FinalTotals          `json:"finalTotals"`
}

// ReceiptDeductions returns the deductions flagged to be shown on the printed receipt.
func (s Statement) ReceiptDeductions() []Deduction {
	out := make([]Deduction, 0, len(s.Deductions))
	for _, d := range s.Deductions {
		if d.IncludeInReceipt {
			out = append(out, d)
		}
	}
	return out
}

// RegisterSummary totals a single day of the cash register.
type RegisterSummary struct {
	Date            string  `json:"date"`
	EntryCount      int     `json:"entryCount"`
	ManualCount     int     `json:"manualCount"`
	TransferCount   int     `json:"transferCount"`
	PaymentTotals   Amounts `json:"paymentTotals"`
	ShareTotals     Amounts `json:"shareTotals"`
	AnestesiaTotals Amounts `json:"anestesiaTotals"`
	CoatTotals      Amounts `json:"coatTotals"`
}
