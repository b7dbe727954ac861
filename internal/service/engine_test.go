package service

import (
	"context"
	"testing"

	"github.com/mmynk/naijatax/internal/calculator"
)

func TestEngineOwnsItsBands(t *testing.T) {
	bands := []calculator.TaxBand{
		{Width: 1000, Rate: 0, Label: "free"},
		{Width: calculator.Unbounded, Rate: 0.5, Label: "rest"},
	}
	engine := NewEngine(bands, nil, nil)
	inputs := calculator.TaxInputs{MonthlyGrossIncome: 100000}
	before := engine.Calculate(context.Background(), inputs)

	bands[1].Rate = 0.9
	got := engine.Bands()
	got[0].Width = 0

	after := engine.Calculate(context.Background(), inputs)
	if before.AnnualTaxLiability != after.AnnualTaxLiability {
		t.Errorf("caller mutation changed the result: %v then %v", before.AnnualTaxLiability, after.AnnualTaxLiability)
	}
	if b := engine.Bands(); b[0].Width != 1000 || b[1].Rate != 0.5 {
		t.Errorf("engine bands changed: %+v", b)
	}
}
