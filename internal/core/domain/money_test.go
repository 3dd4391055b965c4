package domain_test

import (
	"strings"
	"testing"

	"github.com/SscSPs/clinic_cash_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain integer", input: "1000", want: "1000"},
		{name: "dot decimal", input: "1500.50", want: "1500.5"},
		{name: "comma decimal", input: "1500,50", want: "1500.5"},
		{name: "thousands dot and comma decimal", input: "1.500,50", want: "1500.5"},
		{name: "thousands comma and dot decimal", input: "1,500.50", want: "1500.5"},
		{name: "several comma groups", input: "1,500,000", want: "1500000"},
		{name: "currency sign and spaces", input: " $ 2 500 ", want: "2500"},
		{name: "negative", input: "-20", want: "-20"},
		{name: "blank coerces to zero", input: "   ", want: "0"},
		{name: "garbage coerces to zero", input: "abc", want: "0"},
		{name: "NaN coerces to zero", input: "NaN", want: "0"},
		{name: "scientific notation", input: "1.5e3", want: "1500"},
		{name: "huge exponent coerces to zero", input: "1e200000000", want: "0"},
		{name: "tiny exponent coerces to zero", input: "1e-200000000", want: "0"},
		{name: "overlong input coerces to zero", input: "1" + strings.Repeat("0", 100), want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.ParseAmount(tt.input)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s, want %s", got, tt.want)
		})
	}
}

func TestPercent_RoundsHalfAwayFromZero(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		pct    string
		want   string
	}{
		{name: "exact split", amount: "1000", pct: "60", want: "600"},
		{name: "zero percent", amount: "1000", pct: "0", want: "0"},
		{name: "zero payment", amount: "0", pct: "35", want: "0"},
		{name: "third rounds down", amount: "100", pct: "33.333", want: "33.33"},
		{name: "half cent rounds up", amount: "0.25", pct: "50", want: "0.13"},
		{name: "negative half cent rounds away", amount: "-0.25", pct: "50", want: "-0.13"},
		{name: "over one hundred percent", amount: "200", pct: "150", want: "300"},
		{name: "negative percent applied as-is", amount: "200", pct: "-10", want: "-20"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.Percent(decimal.RequireFromString(tt.amount), decimal.RequireFromString(tt.pct))
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s, want %s", got, tt.want)
		})
	}
}

func TestAmounts_AddAndSub(t *testing.T) {
	a := domain.Amounts{}
	a = a.Add(domain.NewMoney(decimal.NewFromInt(100), domain.ARS))
	a = a.Add(domain.NewMoney(decimal.NewFromInt(40), domain.USD))
	a = a.Add(domain.NewMoney(decimal.NewFromInt(5), domain.ARS))

	assert.True(t, decimal.NewFromInt(105).Equal(a.Get(domain.ARS)))
	assert.True(t, decimal.NewFromInt(40).Equal(a.Get(domain.USD)))

	diff := a.Sub(domain.Amounts{ARS: decimal.NewFromInt(200), USD: decimal.NewFromInt(40)})
	assert.True(t, decimal.NewFromInt(-95).Equal(diff.ARS))
	assert.True(t, diff.USD.IsZero())
	assert.False(t, diff.IsZero())
}

func TestParseCurrency(t *testing.T) {
	c, ok := domain.ParseCurrency(" usd ")
	assert.True(t, ok)
	assert.Equal(t, domain.USD, c)

	c, ok = domain.ParseCurrency("EUR")
	assert.False(t, ok)
	assert.Equal(t, domain.ARS, c)

	assert.Equal(t, domain.USD, domain.ARS.Other())
	assert.Equal(t, domain.ARS, domain.USD.Other())
}
