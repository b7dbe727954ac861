package api

// TaxInputs is the wire form of one calculation request.
type TaxInputs struct {
	MonthlyGrossIncome         float64 `json:"monthly_gross_income"`
	OtherMonthlyIncome         float64 `json:"other_monthly_income"`
	EmploymentType             string  `json:"employment_type,omitempty"`
	MonthlyPensionContribution float64 `json:"monthly_pension_contribution"`
	MonthlyNHFContribution     float64 `json:"monthly_nhf_contribution"`
	MonthlyOtherDeductions     float64 `json:"monthly_other_deductions"`
	Year                       int     `json:"year,omitempty"`
}

type BandAllocation struct {
	Label               string  `json:"label"`
	Rate                float64 `json:"rate"`
	TaxableAmountInBand float64 `json:"taxable_amount_in_band"`
	TaxPayableInBand    float64 `json:"tax_payable_in_band"`
}

type CalculationResult struct {
	AnnualGrossIncome           float64          `json:"annual_gross_income"`
	ConsolidatedReliefAllowance float64          `json:"consolidated_relief_allowance"`
	TotalAllowableDeductions    float64          `json:"total_allowable_deductions"`
	AnnualTaxableIncome         float64          `json:"annual_taxable_income"`
	AnnualTaxLiability          float64          `json:"annual_tax_liability"`
	MonthlyTaxLiability         float64          `json:"monthly_tax_liability"`
	MonthlyNetIncome            float64          `json:"monthly_net_income"`
	BandAllocations             []BandAllocation `json:"band_allocations"`
}

// TaxBand is the wire form of a band. Width is null for the unbounded top band,
// since JSON has no infinity.
type TaxBand struct {
	Label string   `json:"label"`
	Rate  float64  `json:"rate"`
	Width *float64 `json:"width"`
}

type Tip struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type CalculateRequest struct {
	Inputs TaxInputs `json:"inputs"`
	// SaveToHistory stores the calculation for the signed-in user.
	// Ignored for anonymous callers.
	SaveToHistory bool `json:"save_to_history,omitempty"`
}

type CalculateResponse struct {
	Result          CalculationResult `json:"result"`
	HistoryRecordID string            `json:"history_record_id,omitempty"`
}

type GetBandsRequest struct{}

type GetBandsResponse struct {
	Bands []TaxBand `json:"bands"`
}

type GetTipsRequest struct{}

type GetTipsResponse struct {
	Tips []Tip `json:"tips"`
}

type ExportCalculationRequest struct {
	Inputs TaxInputs `json:"inputs"`
}

// ExportCalculationResponse carries CSV text.
type ExportCalculationResponse struct {
	Filename string `json:"filename"`
	CSV      string `json:"csv"`
}
