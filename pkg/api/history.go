package api

type HistorySummary struct {
	MonthlyGross float64 `json:"monthly_gross"`
	MonthlyTax   float64 `json:"monthly_tax"`
	MonthlyNet   float64 `json:"monthly_net"`
}

type HistoryRecord struct {
	ID string `json:"id"`
	// CreatedAt is Unix milliseconds.
	CreatedAt int64          `json:"created_at"`
	Inputs    TaxInputs      `json:"inputs"`
	Summary   HistorySummary `json:"summary"`
}

type ListHistoryRequest struct {
	// Limit defaults to, and is capped at, 50.
	Limit int `json:"limit,omitempty"`
}

type ListHistoryResponse struct {
	Records []HistoryRecord `json:"records"`
}

type GetHistoryRecordRequest struct {
	ID string `json:"id"`
}

// GetHistoryRecordResponse includes the full breakdown, recomputed from the
// stored inputs with the current band table.
type GetHistoryRecordResponse struct {
	Record HistoryRecord     `json:"record"`
	Result CalculationResult `json:"result"`
}

type DeleteHistoryRecordRequest struct {
	ID string `json:"id"`
}

type DeleteHistoryRecordResponse struct{}

type ClearHistoryRequest struct{}

type ClearHistoryResponse struct {
	Deleted int64 `json:"deleted"`
}

type ExportHistoryRequest struct{}

type ExportHistoryResponse struct {
	Filename string `json:"filename"`
	CSV      string `json:"csv"`
}
