package settlement_test

import (
	"testing"

	"github.com/SscSPs/clinic_cash_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func ars(s string) domain.Money {
	return domain.NewMoney(dec(s), domain.ARS)
}

func usd(s string) domain.Money {
	return domain.NewMoney(dec(s), domain.USD)
}

func newEntry(id, date, createdAt string) domain.Entry {
	return domain.Entry{
		EntryID:   id,
		OwnerID:   "owner-1",
		Date:      date,
		Shares:    domain.NewShares(),
		CreatedAt: createdAt,
	}
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), append([]interface{}{"want %s, got %s", want, got.String()}, msgAndArgs...)...)
}

func assertMoney(t *testing.T, want domain.Money, got domain.Money) {
	t.Helper()
	assert.Equal(t, want.Currency, got.Currency)
	assert.True(t, want.Amount.Equal(got.Amount), "want %s %s, got %s %s", want.Amount, want.Currency, got.Amount, got.Currency)
}

// assertSameAmounts compares every numeric field of two entries by value.
func assertSameAmounts(t *testing.T, want, got domain.Entry) {
	t.Helper()
	assert.True(t, want.Payment.ARS.Equal(got.Payment.ARS))
	assert.True(t, want.Payment.USD.Equal(got.Payment.USD))
	assert.True(t, want.CoatARS.Equal(got.CoatARS), "coatARS want %s got %s", want.CoatARS, got.CoatARS)
	assert.True(t, want.CoatUSD.Equal(got.CoatUSD), "coatUSD want %s got %s", want.CoatUSD, got.CoatUSD)
	for i := range want.Shares {
		w, g := want.Shares[i], got.Shares[i]
		assert.Equal(t, w.Role, g.Role)
		assert.Equal(t, w.ProfessionalName, g.ProfessionalName)
		assert.Equal(t, w.SecondaryEnabled, g.SecondaryEnabled)
		assert.Equal(t, w.IsTransfer, g.IsTransfer)
		assertMoney(t, w.PrimaryAmount, g.PrimaryAmount)
		assertMoney(t, w.SecondaryAmount, g.SecondaryAmount)
	}
}
