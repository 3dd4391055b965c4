package settlement

import (
	"github.com/SscSPs/clinic_cash_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Edit is a single field change on an entry. apply mutates the working copy
// and reports whether amounts must be recomputed afterwards.
type Edit interface {
	apply(e *domain.Entry) (recompute bool)
}

// Apply folds edits over a copy of entry and returns the new state. When any
// edit touches a numeric input the whole entry is recomputed once, after all
// edits, so the residual always reflects the complete share set.
func Apply(entry domain.Entry, edits ...Edit) domain.Entry {
	next := entry
	recompute := false
	for _, edit := range edits {
		if edit == nil {
			continue
		}
		if edit.apply(&next) {
			recompute = true
		}
	}
	if recompute {
		next = Recompute(next)
	}
	return next
}

// SetPayment replaces one or both payment legs. Nil leaves a leg unchanged.
type SetPayment struct {
	ARS *decimal.Decimal
	USD *decimal.Decimal
}

func (s SetPayment) apply(e *domain.Entry) bool {
	if s.ARS != nil {
		e.Payment.ARS = *s.ARS
	}
	if s.USD != nil {
		e.Payment.USD = *s.USD
	}
	return true
}

// SetProfessional assigns (or, with an empty name, clears) the professional of a slot.
type SetProfessional struct {
	Role domain.SlotRole
	Name string
}

func (s SetProfessional) apply(e *domain.Entry) bool {
	slot := e.Shares.Slot(s.Role)
	if slot == nil {
		return false
	}
	slot.ProfessionalName = s.Name
	return true
}

// SetSharePercent changes the percentage of a prof_1..prof_3 slot.
type SetSharePercent struct {
	Role    domain.SlotRole
	Percent decimal.Decimal
}

func (s SetSharePercent) apply(e *domain.Entry) bool {
	slot := e.Shares.Slot(s.Role)
	if slot == nil || !s.Role.IsPercentage() {
		return false
	}
	slot.SharePercent = s.Percent
	return true
}

// SetShareCurrency changes the liquidation currency of a slot's primary leg.
type SetShareCurrency struct {
	Role     domain.SlotRole
	Currency domain.Currency
}

func (s SetShareCurrency) apply(e *domain.Entry) bool {
	slot := e.Shares.Slot(s.Role)
	if slot == nil || !s.Currency.Valid() {
		return false
	}
	slot.Currency = s.Currency
	return true
}

// SetSecondary enables or disables a slot's secondary leg and selects its currency.
// An invalid currency keeps the current selection.
type SetSecondary struct {
	Role     domain.SlotRole
	Enabled  bool
	Currency domain.Currency
}

func (s SetSecondary) apply(e *domain.Entry) bool {
	slot := e.Shares.Slot(s.Role)
	if slot == nil {
		return false
	}
	slot.SecondaryEnabled = s.Enabled
	if s.Currency.Valid() {
		slot.SecondaryCurrency = s.Currency
	}
	return true
}

// SetFixedAmount sets directly entered amounts: the anesthetist slot, or any slot
// of a manual liquidation. Secondary nil disables the secondary leg. An invalid
// currency on either leg keeps the slot's current selection.
type SetFixedAmount struct {
	Role      domain.SlotRole
	Primary   domain.Money
	Secondary *domain.Money
}

func (s SetFixedAmount) apply(e *domain.Entry) bool {
	slot := e.Shares.Slot(s.Role)
	if slot == nil || (s.Role.IsPercentage() && !e.IsManualLiquidation) {
		return false
	}
	slot.Currency = normalizeCurrency(s.Primary.Currency, slot.Currency)
	slot.PrimaryAmount = domain.NewMoney(s.Primary.Amount, slot.Currency)
	slot.SecondaryEnabled = s.Secondary != nil
	if s.Secondary != nil {
		current := normalizeCurrency(slot.SecondaryCurrency, slot.Currency.Other())
		slot.SecondaryCurrency = normalizeCurrency(s.Secondary.Currency, current)
		slot.SecondaryAmount = domain.NewMoney(s.Secondary.Amount, slot.SecondaryCurrency)
	}
	return true
}

// SetTransfer marks a slot as already settled by bank transfer. It never changes
// amounts, so it does not trigger a recompute.
type SetTransfer struct {
	Role       domain.SlotRole
	IsTransfer bool
}

func (s SetTransfer) apply(e *domain.Entry) bool {
	if slot := e.Shares.Slot(s.Role); slot != nil {
		slot.IsTransfer = s.IsTransfer
	}
	return false
}

// SetPatient updates the patient fields. Nil leaves a field unchanged.
type SetPatient struct {
	Name    *string
	ID      *string
	Insurer *string
}

func (s SetPatient) apply(e *domain.Entry) bool {
	if s.Name != nil {
		e.PatientName = *s.Name
	}
	if s.ID != nil {
		e.PatientID = *s.ID
	}
	if s.Insurer != nil {
		e.Insurer = *s.Insurer
	}
	return false
}

// SetComment replaces the free-text comment.
type SetComment struct {
	Comment string
}

func (s SetComment) apply(e *domain.Entry) bool {
	e.Comment = s.Comment
	return false
}

// SetDate moves the entry to another day.
type SetDate struct {
	Date string
}

func (s SetDate) apply(e *domain.Entry) bool {
	e.Date = s.Date
	return false
}
