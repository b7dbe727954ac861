package report

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/naijatax/internal/calculator"
	"github.com/mmynk/naijatax/internal/models"
)

func readAll(t *testing.T, b []byte) [][]string {
	t.Helper()
	r := csv.NewReader(bytes.NewReader(b))
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriteResultCSV(t *testing.T) {
	result := calculator.Calculate(calculator.TaxInputs{
		MonthlyGrossIncome:         250000,
		EmploymentType:             calculator.Salaried,
		MonthlyPensionContribution: 20000,
		Year:                       2025,
	}, calculator.DefaultBands)

	var buf bytes.Buffer
	require.NoError(t, WriteResultCSV(&buf, result))
	rows := readAll(t, buf.Bytes())

	bands := len(calculator.DefaultBands)
	require.Len(t, rows, 1+bands+7)
	assert.Equal(t, bandHeader, rows[0])

	for i, a := range result.BandAllocations {
		row := rows[1+i]
		assert.Equal(t, a.Label, row[0])
		assert.Equal(t, money(a.TaxPayableInBand), row[3])
	}
	assert.Equal(t, "0%", rows[1][1])
	assert.Equal(t, "15%", rows[2][1])

	last := rows[len(rows)-1]
	assert.Equal(t, []string{"Monthly Net Income", money(result.MonthlyNetIncome)}, last)
}

func TestWriteHistoryCSV(t *testing.T) {
	saved := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	records := []*models.HistoryRecord{
		{
			ID:        "rec-1",
			UserID:    "user-1",
			CreatedAt: saved.UnixMilli(),
			Inputs: calculator.TaxInputs{
				MonthlyGrossIncome: 500000,
				EmploymentType:     calculator.SelfEmployed,
				Year:               2025,
			},
			Summary: models.HistorySummary{MonthlyGross: 500000, MonthlyTax: 61000.5, MonthlyNet: 438999.5},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteHistoryCSV(&buf, records))
	rows := readAll(t, buf.Bytes())

	require.Len(t, rows, 2)
	assert.Equal(t, historyHeader, rows[0])
	assert.Equal(t, []string{
		"2025-03-01T12:00:00Z", "rec-1", "2025", "SELF_EMPLOYED",
		"500000.00", "0.00", "0.00", "0.00", "0.00",
		"61000.50", "438999.50",
	}, rows[1])
}

func TestWriteHistoryCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteHistoryCSV(&buf, nil))
	assert.Len(t, readAll(t, buf.Bytes()), 1)
}

func TestFilenames(t *testing.T) {
	assert.Equal(t, "paye-2025.csv", ResultFilename(2025))
	assert.Equal(t, "paye-history-20250301.csv", HistoryFilename(time.Date(2025, 3, 1, 23, 0, 0, 0, time.UTC)))
}
