package dto

import (
	"bytes"
	"encoding/json"

	"github.com/SscSPs/clinic_cash_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Amount is a lenient monetary or percentage request field. It accepts a JSON
// number or string; blank, null or non-numeric input decodes to zero instead of
// failing the request.
type Amount struct {
	value decimal.Decimal
}

// NewAmount wraps d.
func NewAmount(d decimal.Decimal) Amount {
	return Amount{value: d}
}

// Decimal returns the decoded value.
func (a Amount) Decimal() decimal.Decimal {
	return a.value
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			a.value = decimal.Zero
			return nil
		}
		a.value = domain.ParseAmount(s)
		return nil
	}
	a.value = domain.ParseAmount(string(data))
	return nil
}

// MarshalJSON implements json.Marshaler.
func (a Amount) MarshalJSON() ([]byte, error) {
	return a.value.MarshalJSON()
}

// Ptr exposes an optional Amount as an optional decimal for partial updates.
func (a *Amount) Ptr() *decimal.Decimal {
	if a == nil {
		return nil
	}
	d := a.value
	return &d
}
