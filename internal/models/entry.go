package models

import "github.com/shopspring/decimal"

// Entry is the flat persisted shape of a cash-register entry. Field names match the
// record format the clinic's exports and imports use, one column per field.
// A blank secondary currency means the slot's secondary leg is disabled.
type Entry struct {
	EntryID    string `json:"id" db:"entry_id"`
	OwnerID    string `json:"ownerId" db:"owner_id"`
	Fecha      string `json:"fecha" db:"fecha"`
	Paciente   string `json:"paciente" db:"paciente"`
	DNI        string `json:"dni" db:"dni"`
	ObraSocial string `json:"obra_social" db:"obra_social"`

	Prof1           string          `json:"prof_1" db:"prof_1"`
	Prof2           string          `json:"prof_2" db:"prof_2"`
	Prof3           string          `json:"prof_3" db:"prof_3"`
	PorcentajeProf1 decimal.Decimal `json:"porcentaje_prof_1" db:"porcentaje_prof_1"`
	PorcentajeProf2 decimal.Decimal `json:"porcentaje_prof_2" db:"porcentaje_prof_2"`
	PorcentajeProf3 decimal.Decimal `json:"porcentaje_prof_3" db:"porcentaje_prof_3"`
	Anestesista     string          `json:"anestesista" db:"anestesista"`
	Pesos           decimal.Decimal `json:"pesos" db:"pesos"`
	Dolares         decimal.Decimal `json:"dolares" db:"dolares"`

	LiqProf1                  decimal.Decimal `json:"liq_prof_1" db:"liq_prof_1"`
	LiqProf1Currency          string          `json:"liq_prof_1_currency" db:"liq_prof_1_currency"`
	LiqProf1Secondary         decimal.Decimal `json:"liq_prof_1_secondary" db:"liq_prof_1_secondary"`
	LiqProf1CurrencySecondary string          `json:"liq_prof_1_currency_secondary" db:"liq_prof_1_currency_secondary"`
	LiqProf2                  decimal.Decimal `json:"liq_prof_2" db:"liq_prof_2"`
	LiqProf2Currency          string          `json:"liq_prof_2_currency" db:"liq_prof_2_currency"`
	LiqProf2Secondary         decimal.Decimal `json:"liq_prof_2_secondary" db:"liq_prof_2_secondary"`
	LiqProf2CurrencySecondary string          `json:"liq_prof_2_currency_secondary" db:"liq_prof_2_currency_secondary"`
	LiqProf3                  decimal.Decimal `json:"liq_prof_3" db:"liq_prof_3"`
	LiqProf3Currency          string          `json:"liq_prof_3_currency" db:"liq_prof_3_currency"`
	LiqProf3Secondary         decimal.Decimal `json:"liq_prof_3_secondary" db:"liq_prof_3_secondary"`
	LiqProf3CurrencySecondary string          `json:"liq_prof_3_currency_secondary" db:"liq_prof_3_currency_secondary"`

	LiqAnestesista                  decimal.Decimal `json:"liq_anestesista" db:"liq_anestesista"`
	LiqAnestesistaCurrency          string          `json:"liq_anestesista_currency" db:"liq_anestesista_currency"`
	LiqAnestesistaSecondary         decimal.Decimal `json:"liq_anestesista_secondary" db:"liq_anestesista_secondary"`
	LiqAnestesistaCurrencySecondary string          `json:"liq_anestesista_currency_secondary" db:"liq_anestesista_currency_secondary"`

	CoatPesos   decimal.Decimal `json:"coat_pesos" db:"coat_pesos"`
	CoatDolares decimal.Decimal `json:"coat_dolares" db:"coat_dolares"`

	IsTransferProf1       bool `json:"isTransfer_prof_1" db:"is_transfer_prof_1"`
	IsTransferProf2       bool `json:"isTransfer_prof_2" db:"is_transfer_prof_2"`
	IsTransferProf3       bool `json:"isTransfer_prof_3" db:"is_transfer_prof_3"`
	IsTransferAnestesista bool `json:"isTransfer_anestesista" db:"is_transfer_anestesista"`

	IsManualLiquidation bool   `json:"isManualLiquidation" db:"is_manual_liquidation"`
	CreatedAt           string `json:"createdAt" db:"created_at"`
	Comentario          string `json:"comentario" db:"comentario"`
	AuditFields
}

// SlotColumns points at the columns of one share slot of an Entry.
// Percent is nil for the anesthetist slot, which has no percentage column.
type SlotColumns struct {
	Professional      *string
	Percent           *decimal.Decimal
	Amount            *decimal.Decimal
	Currency          *string
	SecondaryAmount   *decimal.Decimal
	SecondaryCurrency *string
	IsTransfer        *bool
}

// Slots returns the columns of the four slots in prof_1, prof_2, prof_3, anestesista order.
func (e *Entry) Slots() [4]SlotColumns {
	return [4]SlotColumns{
		{&e.Prof1, &e.PorcentajeProf1, &e.LiqProf1, &e.LiqProf1Currency, &e.LiqProf1Secondary, &e.LiqProf1CurrencySecondary, &e.IsTransferProf1},
		{&e.Prof2, &e.PorcentajeProf2, &e.LiqProf2, &e.LiqProf2Currency, &e.LiqProf2Secondary, &e.LiqProf2CurrencySecondary, &e.IsTransferProf2},
		{&e.Prof3, &e.PorcentajeProf3, &e.LiqProf3, &e.LiqProf3Currency, &e.LiqProf3Secondary, &e.LiqProf3CurrencySecondary, &e.IsTransferProf3},
		{&e.Anestesista, nil, &e.LiqAnestesista, &e.LiqAnestesistaCurrency, &e.LiqAnestesistaSecondary, &e.LiqAnestesistaCurrencySecondary, &e.IsTransferAnestesista},
	}
}
