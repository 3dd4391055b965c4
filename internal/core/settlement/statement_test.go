package settlement_test

import (
	"testing"

	"github.com/SscSPs/clinic_cash_app/internal/core/domain"
	"github.com/SscSPs/clinic_cash_app/internal/core/settlement"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var drX = domain.Professional{Name: "Dr. X", Category: domain.CategoryORL}

func entryFor(id, date, createdAt, name, pct string, edits ...settlement.Edit) domain.Entry {
	base := []settlement.Edit{
		settlement.SetPayment{ARS: decPtr("1000")},
		settlement.SetProfessional{Role: domain.SlotProf1, Name: name},
		settlement.SetSharePercent{Role: domain.SlotProf1, Percent: dec(pct)},
	}
	return settlement.Apply(newEntry(id, date, createdAt), append(base, edits...)...)
}

func manualFor(id, date, name string, amount domain.Money) domain.Entry {
	entry := newEntry(id, date, date+"T23:00:00.000Z")
	entry.IsManualLiquidation = true
	return settlement.Apply(entry,
		settlement.SetProfessional{Role: domain.SlotProf1, Name: name},
		settlement.SetFixedAmount{Role: domain.SlotProf1, Primary: amount},
	)
}

func deduction(name, date string, amount domain.Money, inReceipt bool) domain.Deduction {
	return domain.Deduction{
		DeductionID:      name + date,
		ProfessionalName: name,
		Date:             date,
		Amount:           amount.Amount,
		Currency:         amount.Currency,
		IncludeInReceipt: inReceipt,
	}
}

func TestBuildStatement_TransferExcludedAndDeducted(t *testing.T) {
	entries := []domain.Entry{
		entryFor("e1", "2024-01-05", "2024-01-05T10:00:00.000Z", "Dr. X", "50"),
		entryFor("e2", "2024-01-10", "2024-01-10T10:00:00.000Z", "Dr. X", "30",
			settlement.SetTransfer{Role: domain.SlotProf1, IsTransfer: true}),
	}
	deductions := []domain.Deduction{deduction("Dr. X", "2024-01-06", ars("50"), true)}

	stmt := settlement.BuildStatement(drX, "2024-01-01", "2024-01-31", entries, deductions)

	require.Len(t, stmt.Lines, 2)
	assert.Equal(t, "e1", stmt.Lines[0].EntryID)
	assert.Equal(t, "e2", stmt.Lines[1].EntryID)
	assert.True(t, stmt.Lines[1].IsTransfer)
	assertDecimal(t, "500", stmt.Totals.LiqPesosTotal)
	assertDecimal(t, "0", stmt.Totals.LiqDolaresTotal)
	assertDecimal(t, "300", stmt.TransferTotals.ARS)
	assertDecimal(t, "50", stmt.DeductionTotals.ARS)
	assertDecimal(t, "450", stmt.FinalTotals.FinalARS)
	assertDecimal(t, "0", stmt.FinalTotals.FinalUSD)
	assert.Equal(t, domain.LayoutDetailed, stmt.Layout)
	assert.Len(t, stmt.ReceiptDeductions(), 1)
}

func TestBuildStatement_ManualLiquidationOnlyAffectsItsProfessional(t *testing.T) {
	entries := []domain.Entry{
		manualFor("m1", "2024-01-03", "Dr. Y", usd("1000")),
		entryFor("e1", "2024-01-05", "2024-01-05T10:00:00.000Z", "Dr. X", "50"),
	}
	drY := domain.Professional{Name: "Dr. Y", Category: domain.CategoryAnestesista}

	stmtY := settlement.BuildStatement(drY, "2024-01-01", "2024-01-31", entries, nil)
	stmtX := settlement.BuildStatement(drX, "2024-01-01", "2024-01-31", entries, nil)

	require.Len(t, stmtY.Lines, 1)
	assert.True(t, stmtY.Lines[0].IsManualLiquidation)
	assertDecimal(t, "1000", stmtY.Totals.LiqDolaresTotal)
	assertDecimal(t, "0", stmtY.Totals.LiqPesosTotal)
	assert.Equal(t, domain.LayoutSimplified, stmtY.Layout)

	require.Len(t, stmtX.Lines, 1)
	assertDecimal(t, "500", stmtX.Totals.LiqPesosTotal)
	assertDecimal(t, "0", stmtX.Totals.LiqDolaresTotal)
}

func TestBuildStatement_SortOrder(t *testing.T) {
	entries := []domain.Entry{
		manualFor("manual-early", "2024-01-01", "Dr. X", ars("10")),
		entryFor("late", "2024-01-09", "2024-01-09T08:00:00.000Z", "Dr. X", "10"),
		entryFor("same-day-second", "2024-01-04", "2024-01-04T15:00:00.000Z", "Dr. X", "10"),
		entryFor("same-day-first", "2024-01-04", "2024-01-04T09:00:00.000Z", "Dr. X", "10"),
		entryFor("tie-a", "2024-01-06", "2024-01-06T09:00:00.000Z", "Dr. X", "10"),
		entryFor("tie-b", "2024-01-06", "2024-01-06T09:00:00.000Z", "Dr. X", "10"),
	}

	stmt := settlement.BuildStatement(drX, "2024-01-01", "2024-01-31", entries, nil)

	ids := make([]string, 0, len(stmt.Lines))
	for _, line := range stmt.Lines {
		ids = append(ids, line.EntryID)
	}
	assert.Equal(t, []string{"same-day-first", "same-day-second", "tie-a", "tie-b", "late", "manual-early"}, ids)
}

func TestBuildStatement_Filtering(t *testing.T) {
	entries := []domain.Entry{
		entryFor("before", "2023-12-31", "2023-12-31T10:00:00.000Z", "Dr. X", "10"),
		entryFor("from-bound", "2024-01-01", "2024-01-01T10:00:00.000Z", "Dr. X", "10"),
		entryFor("to-bound", "2024-01-31", "2024-01-31T10:00:00.000Z", "Dr. X", "10"),
		entryFor("after", "2024-02-01", "2024-02-01T10:00:00.000Z", "Dr. X", "10"),
		entryFor("other", "2024-01-15", "2024-01-15T10:00:00.000Z", "Dr. Other", "10"),
		entryFor("zero-share", "2024-01-15", "2024-01-15T11:00:00.000Z", "Dr. X", "0"),
		manualFor("zero-manual", "2024-01-20", "Dr. X", ars("0")),
	}

	stmt := settlement.BuildStatement(drX, "2024-01-01", "2024-01-31", entries, nil)

	ids := make([]string, 0, len(stmt.Lines))
	for _, line := range stmt.Lines {
		ids = append(ids, line.EntryID)
	}
	assert.Equal(t, []string{"from-bound", "to-bound", "zero-manual"}, ids)
	assertDecimal(t, "200", stmt.Totals.LiqPesosTotal)
}

func TestBuildStatement_FirstMatchingSlotWins(t *testing.T) {
	entry := entryFor("e1", "2024-01-05", "2024-01-05T10:00:00.000Z", "Dr. X", "10",
		settlement.SetProfessional{Role: domain.SlotProf3, Name: "Dr. X"},
		settlement.SetSharePercent{Role: domain.SlotProf3, Percent: dec("20")},
	)

	stmt := settlement.BuildStatement(drX, "2024-01-01", "2024-01-31", []domain.Entry{entry}, nil)

	require.Len(t, stmt.Lines, 1)
	assert.Equal(t, domain.SlotProf1, stmt.Lines[0].Role)
	assertDecimal(t, "100", stmt.Totals.LiqPesosTotal)
}

func TestBuildStatement_SecondaryLegsBucketByCurrency(t *testing.T) {
	entry := settlement.Apply(newEntry("e1", "2024-01-05", "2024-01-05T10:00:00.000Z"),
		settlement.SetPayment{ARS: decPtr("1000"), USD: decPtr("200")},
		settlement.SetProfessional{Role: domain.SlotProf2, Name: "Dr. X"},
		settlement.SetSharePercent{Role: domain.SlotProf2, Percent: dec("50")},
		settlement.SetSecondary{Role: domain.SlotProf2, Enabled: true, Currency: domain.USD},
	)

	stmt := settlement.BuildStatement(drX, "2024-01-01", "2024-01-31", []domain.Entry{entry}, nil)

	require.Len(t, stmt.Lines, 1)
	require.NotNil(t, stmt.Lines[0].Secondary)
	assertDecimal(t, "500", stmt.Totals.LiqPesosTotal)
	assertDecimal(t, "100", stmt.Totals.LiqDolaresTotal)
}

func TestBuildStatement_DeductionsMayGoNegative(t *testing.T) {
	entries := []domain.Entry{entryFor("e1", "2024-01-05", "2024-01-05T10:00:00.000Z", "Dr. X", "10")}
	deductions := []domain.Deduction{
		deduction("Dr. X", "2024-01-20", ars("150"), false),
		deduction("Dr. X", "2024-01-07", usd("30"), true),
		deduction("Dr. X", "2024-02-01", ars("1000"), true),
		deduction("Dr. Other", "2024-01-07", ars("1000"), true),
	}

	stmt := settlement.BuildStatement(drX, "2024-01-01", "2024-01-31", entries, deductions)

	require.Len(t, stmt.Deductions, 2)
	assert.Equal(t, "2024-01-07", stmt.Deductions[0].Date)
	assertDecimal(t, "-50", stmt.FinalTotals.FinalARS)
	assertDecimal(t, "-30", stmt.FinalTotals.FinalUSD)
	assert.Len(t, stmt.ReceiptDeductions(), 1)
}

func TestBuildStatement_EmptyAndUnknown(t *testing.T) {
	stmt := settlement.BuildStatement(domain.Professional{Name: "Nobody"}, "2024-01-01", "2024-01-31", nil, nil)

	assert.NotNil(t, stmt.Lines)
	assert.Empty(t, stmt.Lines)
	assert.NotNil(t, stmt.Deductions)
	assert.Empty(t, stmt.Deductions)
	assert.True(t, stmt.Totals.LiqPesosTotal.IsZero())
	assert.True(t, stmt.Totals.LiqDolaresTotal.IsZero())
	assert.True(t, stmt.FinalTotals.FinalARS.IsZero())
	assert.True(t, stmt.FinalTotals.FinalUSD.IsZero())
	assert.Equal(t, "2024-01-01", stmt.DateFrom)
	assert.Equal(t, "2024-01-31", stmt.DateTo)
}
