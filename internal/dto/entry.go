package dto

import (
	"time"

	"github.com/SscSPs/clinic_cash_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ShareInput is one slot of a new entry. Percentage slots read SharePercent; the
// anesthetist slot and manual liquidations read Amount and SecondaryAmount.
type ShareInput struct {
	Role              domain.SlotRole `json:"role" binding:"required,slotrole"`
	Professional      string          `json:"professional"`
	SharePercent      Amount          `json:"sharePercent"`
	Currency          string          `json:"currency" binding:"omitempty,currency"`
	Amount            Amount          `json:"amount"`
	SecondaryEnabled  bool            `json:"secondaryEnabled"`
	SecondaryCurrency string          `json:"secondaryCurrency" binding:"omitempty,currency"`
	SecondaryAmount   Amount          `json:"secondaryAmount"`
	IsTransfer        bool            `json:"isTransfer"`
}

// EntryInput holds the fields of one cash-register operation.
type EntryInput struct {
	PatientName string       `json:"patientName"`
	PatientID   string       `json:"patientID"`
	Insurer     string       `json:"insurer"`
	PaymentARS  Amount       `json:"paymentARS"`
	PaymentUSD  Amount       `json:"paymentUSD"`
	Shares      []ShareInput `json:"shares" binding:"omitempty,max=4,dive"`
	Comment     string       `json:"comment"`
}

// CreateEntryRequest saves a single operation.
type CreateEntryRequest struct {
	Date string `json:"date" binding:"required,datetime=2006-01-02"`
	EntryInput
}

// CloseRegisterRequest saves every operation of a day's register at once.
type CloseRegisterRequest struct {
	Date    string       `json:"date" binding:"required,datetime=2006-01-02"`
	Entries []EntryInput `json:"entries" binding:"required,min=1,dive"`
}

// ManualLiquidationRequest injects a one-off payout for a single professional.
type ManualLiquidationRequest struct {
	Date              string          `json:"date" binding:"required,datetime=2006-01-02"`
	Professional      string          `json:"professional" binding:"required"`
	Role              domain.SlotRole `json:"role" binding:"omitempty,slotrole"` // defaults to prof_1
	Amount            Amount          `json:"amount"`
	Currency          string          `json:"currency" binding:"required,currency"`
	SecondaryAmount   *Amount         `json:"secondaryAmount"`
	SecondaryCurrency string          `json:"secondaryCurrency" binding:"omitempty,currency"`
	Comment           string          `json:"comment"`
}

// ShareUpdate changes one slot. Nil pointers and empty currencies leave a field unchanged.
type ShareUpdate struct {
	Role              domain.SlotRole `json:"role" binding:"required,slotrole"`
	Professional      *string         `json:"professional"`
	SharePercent      *Amount         `json:"sharePercent"`
	Currency          string          `json:"currency" binding:"omitempty,currency"`
	Amount            *Amount         `json:"amount"`
	SecondaryEnabled  *bool           `json:"secondaryEnabled"`
	SecondaryCurrency string          `json:"secondaryCurrency" binding:"omitempty,currency"`
	SecondaryAmount   *Amount         `json:"secondaryAmount"`
}

// UpdateEntryRequest defines the data allowed for editing an entry.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateEntryRequest struct {
	Date        *string       `json:"date" binding:"omitempty,datetime=2006-01-02"`
	PatientName *string       `json:"patientName"`
	PatientID   *string       `json:"patientID"`
	Insurer     *string       `json:"insurer"`
	PaymentARS  *Amount       `json:"paymentARS"`
	PaymentUSD  *Amount       `json:"paymentUSD"`
	Comment     *string       `json:"comment"`
	Shares      []ShareUpdate `json:"shares" binding:"omitempty,max=4,dive"`
}

// SetTransferRequest toggles the transfer flag of one slot.
type SetTransferRequest struct {
	IsTransfer *bool `json:"isTransfer" binding:"required"`
}

// ListEntriesParams are the query parameters of the entry listing.
type ListEntriesParams struct {
	From      string  `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To        string  `form:"to" binding:"omitempty,datetime=2006-01-02"`
	Limit     int     `form:"limit" binding:"omitempty,min=1,max=500"`
	NextToken *string `form:"nextToken"`
}

// DateRangeParams is an inclusive [from, to] range of ISO dates.
type DateRangeParams struct {
	From string `form:"from" binding:"required,datetime=2006-01-02"`
	To   string `form:"to" binding:"required,datetime=2006-01-02"`
}

// ShareResponse is one slot of an entry as returned by the API.
type ShareResponse struct {
	Role              domain.SlotRole `json:"role"`
	Professional      string          `json:"professional"`
	SharePercent      decimal.Decimal `json:"sharePercent"`
	Currency          domain.Currency `json:"currency"`
	Amount            decimal.Decimal `json:"amount"`
	SecondaryEnabled  bool            `json:"secondaryEnabled"`
	SecondaryCurrency domain.Currency `json:"secondaryCurrency"`
	SecondaryAmount   decimal.Decimal `json:"secondaryAmount"`
	IsTransfer        bool            `json:"isTransfer"`
}

// EntryResponse defines the data returned for an entry.
type EntryResponse struct {
	EntryID             string          `json:"entryID"`
	Date                string          `json:"date"`
	PatientName         string          `json:"patientName"`
	PatientID           string          `json:"patientID"`
	Insurer             string          `json:"insurer"`
	PaymentARS          decimal.Decimal `json:"paymentARS"`
	PaymentUSD          decimal.Decimal `json:"paymentUSD"`
	Shares              []ShareResponse `json:"shares"`
	CoatARS             decimal.Decimal `json:"coatARS"`
	CoatUSD             decimal.Decimal `json:"coatUSD"`
	Comment             string          `json:"comment"`
	IsManualLiquidation bool            `json:"isManualLiquidation"`
	CreatedAt           string          `json:"createdAt"`
	LastUpdatedAt       time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy       string          `json:"lastUpdatedBy"`
}

// ListEntriesResponse wraps a page of entries.
type ListEntriesResponse struct {
	Entries   []EntryResponse `json:"entries"`
	NextToken *string         `json:"nextToken,omitempty"`
}

// CloseRegisterResponse returns the saved operations and the day's totals.
type CloseRegisterResponse struct {
	Date    string                 `json:"date"`
	Entries []EntryResponse        `json:"entries"`
	Summary domain.RegisterSummary `json:"summary"`
}

// ToEntryResponse converts a domain.Entry to EntryResponse DTO.
func ToEntryResponse(e *domain.Entry) EntryResponse {
	shares := make([]ShareResponse, 0, len(e.Shares))
	for _, s := range e.Shares {
		shares = append(shares, ShareResponse{
			Role:              s.Role,
			Professional:      s.ProfessionalName,
			SharePercent:      s.SharePercent,
			Currency:          s.Currency,
			Amount:            s.PrimaryAmount.Amount,
			SecondaryEnabled:  s.SecondaryEnabled,
			SecondaryCurrency: s.SecondaryCurrency,
			SecondaryAmount:   s.SecondaryAmount.Amount,
			IsTransfer:        s.IsTransfer,
		})
	}
	return EntryResponse{
		EntryID:             e.EntryID,
		Date:                e.Date,
		PatientName:         e.PatientName,
		PatientID:           e.PatientID,
		Insurer:             e.Insurer,
		PaymentARS:          e.Payment.ARS,
		PaymentUSD:          e.Payment.USD,
		Shares:              shares,
		CoatARS:             e.CoatARS,
		CoatUSD:             e.CoatUSD,
		Comment:             e.Comment,
		IsManualLiquidation: e.IsManualLiquidation,
		CreatedAt:           e.CreatedAt,
		LastUpdatedAt:       e.LastUpdatedAt,
		LastUpdatedBy:       e.LastUpdatedBy,
	}
}

// ToEntryResponses converts a slice of domain.Entry to []EntryResponse.
func ToEntryResponses(entries []domain.Entry) []EntryResponse {
	responses := make([]EntryResponse, len(entries))
	for i := range entries {
		responses[i] = ToEntryResponse(&entries[i])
	}
	return responses
}
