package domain

import "github.com/shopspring/decimal"

// SlotRole names one of the four fixed share slots of an entry.
type SlotRole string

const (
	SlotProf1       SlotRole = "prof_1"
	SlotProf2       SlotRole = "prof_2"
	SlotProf3       SlotRole = "prof_3"
	SlotAnestesista SlotRole = "anestesista"
)

// SlotRoles is the fixed slot order. Lookups by professional name scan in this order.
var SlotRoles = [4]SlotRole{SlotProf1, SlotProf2, SlotProf3, SlotAnestesista}

// Index returns the slot position of r, or -1 for an unknown role.
func (r SlotRole) Index() int {
	for i, role := range SlotRoles {
		if role == r {
			return i
		}
	}
	return -1
}

// Valid reports whether r is one of the four slots.
func (r SlotRole) Valid() bool {
	return r.Index() >= 0
}

// IsPercentage reports whether the slot's amounts derive from a percentage of the payment.
// The anesthetist slot is entered as a fixed amount.
func (r SlotRole) IsPercentage() bool {
	return r == SlotProf1 || r == SlotProf2 || r == SlotProf3
}

// ProfessionalShare is one slot's allocation on an entry.
type ProfessionalShare struct {
	Role             SlotRole        `json:"role"`
	ProfessionalName string          `json:"professionalName"`
	SharePercent     decimal.Decimal `json:"sharePercent"`
	// Currency is the liquidation currency of the primary leg, chosen independently of the payment.
	Currency          Currency `json:"currency"`
	PrimaryAmount     Money    `json:"primaryAmount"`
	SecondaryEnabled  bool     `json:"secondaryEnabled"`
	SecondaryCurrency Currency `json:"secondaryCurrency"`
	SecondaryAmount   Money    `json:"secondaryAmount"`
	IsTransfer        bool     `json:"isTransfer"`
}

// Active reports whether a professional occupies the slot. Empty slots contribute nothing.
func (s ProfessionalShare) Active() bool {
	return s.ProfessionalName != ""
}

// Legs returns the primary leg and, when enabled, the secondary leg.
func (s ProfessionalShare) Legs() []Money {
	if s.SecondaryEnabled {
		return []Money{s.PrimaryAmount, s.SecondaryAmount}
	}
	return []Money{s.PrimaryAmount}
}

// HasLiquidation reports whether any leg carries a non-zero amount.
func (s ProfessionalShare) HasLiquidation() bool {
	for _, leg := range s.Legs() {
		if !leg.IsZero() {
			return true
		}
	}
	return false
}

// Shares is the fixed set of slots of an entry, indexed in SlotRoles order.
type Shares [4]ProfessionalShare

// NewShares returns empty slots with roles assigned and ARS as the default currency.
func NewShares() Shares {
	var s Shares
	for i, role := range SlotRoles {
		s[i] = ProfessionalShare{
			Role:              role,
			Currency:          ARS,
			PrimaryAmount:     ZeroMoney(ARS),
			SecondaryCurrency: USD,
			SecondaryAmount:   ZeroMoney(USD),
		}
	}
	return s
}

// Slot returns the slot for role, or nil for an unknown role.
func (s *Shares) Slot(role SlotRole) *ProfessionalShare {
	i := role.Index()
	if i < 0 {
		return nil
	}
	return &s[i]
}

// FindByProfessional returns the first slot, in SlotRoles order, held by name.
func (s Shares) FindByProfessional(name string) (ProfessionalShare, bool) {
	if name == "" {
		return ProfessionalShare{}, false
	}
	for _, share := range s {
		if share.ProfessionalName == name {
			return share, true
		}
	}
	return ProfessionalShare{}, false
}

// ActiveCount returns the number of occupied slots.
func (s Shares) ActiveCount() int {
	n := 0
	for _, share := range s {
		if share.Active() {
			n++
		}
	}
	return n
}
