package settlement

import (
	"sort"

	"github.com/SscSPs/clinic_cash_app/internal/core/domain"
)

// BuildStatement aggregates one professional's liquidation over [from, to].
//
// Algorithm:
//   - keep entries dated within the range (ISO strings compare chronologically)
//   - take the first slot held by the professional; entries without one are skipped
//   - list the line when any leg is non-zero, or always for manual liquidations
//   - lines flagged as transfers are listed but not summed into the totals
//   - sort: manual liquidations last, otherwise by date then createdAt, stable
//   - subtract the professional's deductions in range, per currency
//
// An empty range or an unknown professional yields a zero-filled statement.
func BuildStatement(professional domain.Professional, from, to string, entries []domain.Entry, deductions []domain.Deduction) domain.Statement {
	stmt := domain.Statement{
		Professional: professional.Name,
		Category:     professional.Category,
		Layout:       professional.Category.Layout(),
		DateFrom:     from,
		DateTo:       to,
		Lines:        []domain.StatementLine{},
		Deductions:   []domain.Deduction{},
	}

	var totals, transfers domain.Amounts
	for _, entry := range entries {
		if !entry.InRange(from, to) {
			continue
		}
		share, ok := entry.Shares.FindByProfessional(professional.Name)
		if !ok {
			continue
		}
		if !share.HasLiquidation() && !entry.IsManualLiquidation {
			continue
		}

		line := newLine(entry, share)
		for _, leg := range line.Legs() {
			if line.IsTransfer {
				transfers = transfers.Add(leg)
			} else {
				totals = totals.Add(leg)
			}
		}
		stmt.Lines = append(stmt.Lines, line)
	}
	sortLines(stmt.Lines)

	stmt.Deductions = FilterDeductions(deductions, professional.Name, from, to)
	sort.SliceStable(stmt.Deductions, func(i, j int) bool {
		return stmt.Deductions[i].Date < stmt.Deductions[j].Date
	})
	deducted := SumByCurrency(stmt.Deductions)

	stmt.Totals = domain.StatementTotals{
		LiqPesosTotal:   totals.ARS,
		LiqDolaresTotal: totals.USD,
	}
	stmt.TransferTotals = transfers
	stmt.DeductionTotals = deducted
	final := totals.Sub(deducted)
	stmt.FinalTotals = domain.FinalTotals{FinalARS: final.ARS, FinalUSD: final.USD}
	return stmt
}

func newLine(entry domain.Entry, share domain.ProfessionalShare) domain.StatementLine {
	line := domain.StatementLine{
		EntryID:             entry.EntryID,
		Date:                entry.Date,
		CreatedAt:           entry.CreatedAt,
		PatientName:         entry.PatientName,
		PatientID:           entry.PatientID,
		Insurer:             entry.Insurer,
		Payment:             entry.Payment,
		Role:                share.Role,
		SharePercent:        share.SharePercent,
		Primary:             share.PrimaryAmount,
		IsTransfer:          share.IsTransfer,
		IsManualLiquidation: entry.IsManualLiquidation,
		Comment:             entry.Comment,
	}
	if share.SecondaryEnabled {
		secondary := share.SecondaryAmount
		line.Secondary = &secondary
	}
	return line
}

func sortLines(lines []domain.StatementLine) {
	sort.SliceStable(lines, func(i, j int) bool {
		a, b := lines[i], lines[j]
		if a.IsManualLiquidation != b.IsManualLiquidation {
			return !a.IsManualLiquidation
		}
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		return a.CreatedAt < b.CreatedAt
	})
}
