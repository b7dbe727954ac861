package service

import (
	"math"
	"testing"
	"time"

	"github.com/mmynk/naijatax/internal/calculator"
	"github.com/mmynk/naijatax/pkg/api"
)

func TestToCalculatorInputs(t *testing.T) {
	now := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		in      api.TaxInputs
		want    calculator.TaxInputs
		wantErr bool
	}{
		{
			name: "defaults",
			in:   api.TaxInputs{MonthlyGrossIncome: 100000},
			want: calculator.TaxInputs{MonthlyGrossIncome: 100000, EmploymentType: calculator.Salaried, Year: 2026},
		},
		{
			name: "explicit values kept",
			in: api.TaxInputs{
				MonthlyGrossIncome: 1, OtherMonthlyIncome: 2, EmploymentType: "SELF_EMPLOYED",
				MonthlyPensionContribution: 3, MonthlyNHFContribution: 4, MonthlyOtherDeductions: 5, Year: 2024,
			},
			want: calculator.TaxInputs{
				MonthlyGrossIncome: 1, OtherMonthlyIncome: 2, EmploymentType: calculator.SelfEmployed,
				MonthlyPensionContribution: 3, MonthlyNHFContribution: 4, MonthlyOtherDeductions: 5, Year: 2024,
			},
		},
		{name: "NaN", in: api.TaxInputs{MonthlyGrossIncome: math.NaN()}, wantErr: true},
		{name: "infinite", in: api.TaxInputs{OtherMonthlyIncome: math.Inf(1)}, wantErr: true},
		{name: "negative NHF", in: api.TaxInputs{MonthlyNHFContribution: -1}, wantErr: true},
		{name: "lowercase employment type", in: api.TaxInputs{EmploymentType: "salaried"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := toCalculatorInputs(tt.in, now)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %+v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestToAPIBand(t *testing.T) {
	bounded := toAPIBand(calculator.TaxBand{Width: 800000, Rate: 0, Label: "first"}, 0)
	if bounded.Width == nil || *bounded.Width != 800000 {
		t.Errorf("bounded width = %v", bounded.Width)
	}
	top := toAPIBand(calculator.TaxBand{Width: calculator.Unbounded, Rate: 0.25, Label: "top"}, 0)
	if top.Width != nil {
		t.Errorf("unbounded width should be nil, got %v", *top.Width)
	}
}
