// Package report renders calculations and history as CSV.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"time"

	"github.com/mmynk/naijatax/internal/calculator"
	"github.com/mmynk/naijatax/internal/models"
)

var (
	bandHeader    = []string{"Band", "Rate", "Taxable Amount", "Tax Payable"}
	historyHeader = []string{
		"Saved At", "Record ID", "Year", "Employment Type",
		"Monthly Gross", "Other Monthly Income", "Monthly Pension", "Monthly NHF", "Monthly Other Deductions",
		"Monthly Tax", "Monthly Net",
	}
)

// ResultFilename is the suggested download name for a calculation export.
func ResultFilename(year int) string {
	return fmt.Sprintf("paye-%d.csv", year)
}

// HistoryFilename is the suggested download name for a history export.
func HistoryFilename(now time.Time) string {
	return fmt.Sprintf("paye-history-%s.csv", now.UTC().Format("20060102"))
}

// WriteResultCSV writes one row per band allocation followed by the summary
// rows (two columns each).
func WriteResultCSV(w io.Writer, result calculator.TaxCalculationResult) error {
	cw := csv.NewWriter(w)

	rows := [][]string{bandHeader}
	for _, a := range result.BandAllocations {
		rows = append(rows, []string{a.Label, percent(a.Rate), money(a.TaxableAmountInBand), money(a.TaxPayableInBand)})
	}
	rows = append(rows,
		[]string{"Annual Gross Income", money(result.AnnualGrossIncome)},
		[]string{"Consolidated Relief Allowance", money(result.ConsolidatedReliefAllowance)},
		[]string{"Total Allowable Deductions", money(result.TotalAllowableDeductions)},
		[]string{"Annual Taxable Income", money(result.AnnualTaxableIncome)},
		[]string{"Annual Tax Liability", money(result.AnnualTaxLiability)},
		[]string{"Monthly Tax Liability", money(result.MonthlyTaxLiability)},
		[]string{"Monthly Net Income", money(result.MonthlyNetIncome)},
	)

	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write result CSV: %w", err)
	}
	return nil
}

// WriteHistoryCSV writes a header and one row per record, in the given order.
func WriteHistoryCSV(w io.Writer, records []*models.HistoryRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(historyHeader); err != nil {
		return fmt.Errorf("failed to write history CSV: %w", err)
	}

	for _, r := range records {
		in := r.Inputs
		row := []string{
			time.UnixMilli(r.CreatedAt).UTC().Format(time.RFC3339),
			r.ID,
			strconv.Itoa(in.Year),
			string(in.EmploymentType),
			money(in.MonthlyGrossIncome),
			money(in.OtherMonthlyIncome),
			money(in.MonthlyPensionContribution),
			money(in.MonthlyNHFContribution),
			money(in.MonthlyOtherDeductions),
			money(r.Summary.MonthlyTax),
			money(r.Summary.MonthlyNet),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write history CSV: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to write history CSV: %w", err)
	}
	return nil
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func percent(rate float64) string {
	return strconv.FormatFloat(math.Round(rate*10000)/100, 'f', -1, 64) + "%"
}
