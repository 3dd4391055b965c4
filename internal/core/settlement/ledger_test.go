package settlement_test

import (
	"errors"
	"testing"

	"github.com/SscSPs/clinic_cash_app/internal/core/domain"
	"github.com/SscSPs/clinic_cash_app/internal/core/settlement"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSumByCurrency(t *testing.T) {
	got := settlement.SumByCurrency([]domain.Deduction{
		deduction("Dr. X", "2024-01-01", ars("10.5"), false),
		deduction("Dr. X", "2024-01-02", usd("3"), false),
		deduction("Dr. X", "2024-01-03", ars("4.5"), false),
	})

	assertDecimal(t, "15", got.ARS)
	assertDecimal(t, "3", got.USD)
	assert.True(t, settlement.SumByCurrency(nil).IsZero())
}

func TestFilterDeductions(t *testing.T) {
	all := []domain.Deduction{
		deduction("Dr. X", "2024-01-01", ars("1"), false),
		deduction("Dr. X", "2024-01-31", ars("1"), false),
		deduction("Dr. X", "2024-02-01", ars("1"), false),
		deduction("dr. x", "2024-01-15", ars("1"), false),
	}

	got := settlement.FilterDeductions(all, "Dr. X", "2024-01-01", "2024-01-31")

	require.Len(t, got, 2)
	assert.Equal(t, "2024-01-01", got[0].Date)
	assert.Equal(t, "2024-01-31", got[1].Date)
}

func TestNormalizeDeduction(t *testing.T) {
	got := settlement.NormalizeDeduction(domain.Deduction{Amount: dec("-20.555"), Currency: "EUR"})

	assertDecimal(t, "20.56", got.Amount)
	assert.Equal(t, domain.ARS, got.Currency)
}

func TestValidatePercentages(t *testing.T) {
	tests := []struct {
		name    string
		pcts    [3]string
		wantErr error
	}{
		{name: "within bounds", pcts: [3]string{"60", "20", "20"}},
		{name: "all zero", pcts: [3]string{"0", "0", "0"}},
		{name: "negative", pcts: [3]string{"-1", "0", "0"}, wantErr: settlement.ErrPercentOutOfRange},
		{name: "above one hundred", pcts: [3]string{"101", "0", "0"}, wantErr: settlement.ErrPercentOutOfRange},
		{name: "sum above one hundred", pcts: [3]string{"60", "30", "20"}, wantErr: settlement.ErrPercentSumExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shares := domain.NewShares()
			for i, pct := range tt.pcts {
				shares[i].ProfessionalName = "Dr"
				shares[i].SharePercent = dec(pct)
			}

			err := settlement.ValidatePercentages(shares)

			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestValidatePercentages_IgnoresEmptySlots(t *testing.T) {
	shares := domain.NewShares()
	shares[0].SharePercent = dec("500")

	assert.NoError(t, settlement.ValidatePercentages(shares))
}
