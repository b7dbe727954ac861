// Package calculator computes Nigerian PAYE liability from monthly income and
// deduction figures. Everything here is pure: no I/O, no shared mutable state.
package calculator

import "math"

const (
	monthsPerYear = 12

	// craFloor is the fixed minimum of the first CRA term.
	craFloor = 200000
	// craGrossShare is the alternative first CRA term, as a share of gross income.
	craGrossShare = 0.01
	// craAdditionalShare is added on top of the first term.
	craAdditionalShare = 0.20
)

// EmploymentType is carried on the inputs but does not change the computation.
type EmploymentType string

const (
	Salaried     EmploymentType = "SALARIED"
	SelfEmployed EmploymentType = "SELF_EMPLOYED"
)

// Valid reports whether t is one of the known employment types.
func (t EmploymentType) Valid() bool {
	return t == Salaried || t == SelfEmployed
}

// TaxInputs holds one calculation request. All monetary amounts are monthly.
type TaxInputs struct {
	MonthlyGrossIncome         float64
	OtherMonthlyIncome         float64
	EmploymentType             EmploymentType
	MonthlyPensionContribution float64
	MonthlyNHFContribution     float64
	MonthlyOtherDeductions     float64

	// Year is the assessment year. It does not select a band table.
	Year int
}

// TaxBandAllocation is the share of taxable income that fell into one band.
type TaxBandAllocation struct {
	Label               string
	Rate                float64
	TaxableAmountInBand float64
	TaxPayableInBand    float64
}

// TaxCalculationResult is the full outcome of a calculation, with annual and
// monthly views and one allocation per configured band.
type TaxCalculationResult struct {
	AnnualGrossIncome           float64
	ConsolidatedReliefAllowance float64
	TotalAllowableDeductions    float64
	AnnualTaxableIncome         float64
	AnnualTaxLiability          float64
	MonthlyTaxLiability         float64
	MonthlyNetIncome            float64
	BandAllocations             []TaxBandAllocation
}

// ConsolidatedRelief returns the CRA for an annual gross income:
// the higher of 200,000 or 1% of gross, plus 20% of gross.
func ConsolidatedRelief(annualGross float64) float64 {
	return math.Max(craFloor, craGrossShare*annualGross) + craAdditionalShare*annualGross
}

// Calculate computes the PAYE liability of inputs against bands.
//
// Inputs are used as given; negative amounts are not rejected and simply flow
// through the arithmetic. Taxable income is floored at zero. Every band gets an
// allocation in the result, zero-valued once taxable income is used up.
func Calculate(inputs TaxInputs, bands []TaxBand) TaxCalculationResult {
	annualGross := (inputs.MonthlyGrossIncome + inputs.OtherMonthlyIncome) * monthsPerYear
	cra := ConsolidatedRelief(annualGross)

	deductions := (inputs.MonthlyPensionContribution +
		inputs.MonthlyNHFContribution +
		inputs.MonthlyOtherDeductions) * monthsPerYear

	taxable := math.Max(0, annualGross-cra-deductions)

	allocations := make([]TaxBandAllocation, 0, len(bands))
	remaining := taxable
	var annualTax float64

	for _, band := range bands {
		if remaining <= 0 {
			allocations = append(allocations, TaxBandAllocation{
				Label: band.Label,
				Rate:  band.Rate,
			})
			continue
		}

		amount := math.Min(remaining, band.Width)
		tax := amount * band.Rate

		allocations = append(allocations, TaxBandAllocation{
			Label:               band.Label,
			Rate:                band.Rate,
			TaxableAmountInBand: amount,
			TaxPayableInBand:    tax,
		})

		annualTax += tax
		remaining -= amount
	}

	monthlyTax := annualTax / monthsPerYear

	return TaxCalculationResult{
		AnnualGrossIncome:           annualGross,
		ConsolidatedReliefAllowance: cra,
		TotalAllowableDeductions:    deductions,
		AnnualTaxableIncome:         taxable,
		AnnualTaxLiability:          annualTax,
		MonthlyTaxLiability:         monthlyTax,
		// Net is against salary only; other income is taxed but not reported here.
		MonthlyNetIncome: inputs.MonthlyGrossIncome - monthlyTax,
		BandAllocations:  allocations,
	}
}
