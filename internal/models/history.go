package models

import "github.com/mmynk/naijatax/internal/calculator"

// HistoryPageSize is the most records one history listing returns.
// Saved records are never pruned.
const HistoryPageSize = 50

// HistoryRecord is a saved calculation: the inputs it was run with and the
// headline monthly figures.
type HistoryRecord struct {
	// ID is the unique identifier for the record (UUID format).
	ID string

	// UserID owns the record.
	UserID string

	// CreatedAt is the Unix timestamp in milliseconds when the record was saved.
	CreatedAt int64

	Inputs  calculator.TaxInputs
	Summary HistorySummary
}

// HistorySummary holds the monthly figures shown in history lists.
// MonthlyGross includes other income; MonthlyNet, like the calculation, does not.
type HistorySummary struct {
	MonthlyGross float64
	MonthlyTax   float64
	MonthlyNet   float64
}

// NewHistorySummary extracts the summary of a calculation.
func NewHistorySummary(inputs calculator.TaxInputs, result calculator.TaxCalculationResult) HistorySummary {
	return HistorySummary{
		MonthlyGross: inputs.MonthlyGrossIncome + inputs.OtherMonthlyIncome,
		MonthlyTax:   result.MonthlyTaxLiability,
		MonthlyNet:   result.MonthlyNetIncome,
	}
}
