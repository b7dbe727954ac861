package service

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/samber/lo"

	"github.com/mmynk/naijatax/internal/assistant"
	"github.com/mmynk/naijatax/internal/calculator"
	"github.com/mmynk/naijatax/internal/models"
	"github.com/mmynk/naijatax/pkg/api"
)

var errInvalidRole = errors.New("chat role must be \"user\" or \"model\"")

// toCalculatorInputs validates wire inputs and fills defaults: an empty
// employment type is SALARIED and year 0 is the current year.
func toCalculatorInputs(in api.TaxInputs, now time.Time) (calculator.TaxInputs, error) {
	amounts := []struct {
		name  string
		value float64
	}{
		{"monthly_gross_income", in.MonthlyGrossIncome},
		{"other_monthly_income", in.OtherMonthlyIncome},
		{"monthly_pension_contribution", in.MonthlyPensionContribution},
		{"monthly_nhf_contribution", in.MonthlyNHFContribution},
		{"monthly_other_deductions", in.MonthlyOtherDeductions},
	}
	var errs []error
	for _, a := range amounts {
		if math.IsNaN(a.value) || math.IsInf(a.value, 0) || a.value < 0 {
			errs = append(errs, fmt.Errorf("%s must be a non-negative number, got %v", a.name, a.value))
		}
	}

	employment := calculator.EmploymentType(in.EmploymentType)
	if employment == "" {
		employment = calculator.Salaried
	}
	if !employment.Valid() {
		errs = append(errs, fmt.Errorf("unknown employment_type %q", in.EmploymentType))
	}

	year := in.Year
	if year == 0 {
		year = now.Year()
	}
	if year < 0 {
		errs = append(errs, fmt.Errorf("year must be positive, got %d", in.Year))
	}

	if err := errors.Join(errs...); err != nil {
		return calculator.TaxInputs{}, err
	}

	return calculator.TaxInputs{
		MonthlyGrossIncome:         in.MonthlyGrossIncome,
		OtherMonthlyIncome:         in.OtherMonthlyIncome,
		EmploymentType:             employment,
		MonthlyPensionContribution: in.MonthlyPensionContribution,
		MonthlyNHFContribution:     in.MonthlyNHFContribution,
		MonthlyOtherDeductions:     in.MonthlyOtherDeductions,
		Year:                       year,
	}, nil
}

func toAPIInputs(in calculator.TaxInputs) api.TaxInputs {
	return api.TaxInputs{
		MonthlyGrossIncome:         in.MonthlyGrossIncome,
		OtherMonthlyIncome:         in.OtherMonthlyIncome,
		EmploymentType:             string(in.EmploymentType),
		MonthlyPensionContribution: in.MonthlyPensionContribution,
		MonthlyNHFContribution:     in.MonthlyNHFContribution,
		MonthlyOtherDeductions:     in.MonthlyOtherDeductions,
		Year:                       in.Year,
	}
}

func toAPIResult(r calculator.TaxCalculationResult) api.CalculationResult {
	return api.CalculationResult{
		AnnualGrossIncome:           r.AnnualGrossIncome,
		ConsolidatedReliefAllowance: r.ConsolidatedReliefAllowance,
		TotalAllowableDeductions:    r.TotalAllowableDeductions,
		AnnualTaxableIncome:         r.AnnualTaxableIncome,
		AnnualTaxLiability:          r.AnnualTaxLiability,
		MonthlyTaxLiability:         r.MonthlyTaxLiability,
		MonthlyNetIncome:            r.MonthlyNetIncome,
		BandAllocations: lo.Map(r.BandAllocations, func(a calculator.TaxBandAllocation, _ int) api.BandAllocation {
			return api.BandAllocation{
				Label:               a.Label,
				Rate:                a.Rate,
				TaxableAmountInBand: a.TaxableAmountInBand,
				TaxPayableInBand:    a.TaxPayableInBand,
			}
		}),
	}
}

func toAPIBand(b calculator.TaxBand, _ int) api.TaxBand {
	band := api.TaxBand{Label: b.Label, Rate: b.Rate}
	if !b.IsUnbounded() {
		band.Width = lo.ToPtr(b.Width)
	}
	return band
}

func toAPITip(t assistant.Tip, _ int) api.Tip {
	return api.Tip{Title: t.Title, Content: t.Content}
}

func toAPIRecord(r *models.HistoryRecord, _ int) api.HistoryRecord {
	return api.HistoryRecord{
		ID:        r.ID,
		CreatedAt: r.CreatedAt,
		Inputs:    toAPIInputs(r.Inputs),
		Summary: api.HistorySummary{
			MonthlyGross: r.Summary.MonthlyGross,
			MonthlyTax:   r.Summary.MonthlyTax,
			MonthlyNet:   r.Summary.MonthlyNet,
		},
	}
}

func toAPIUser(u *models.User) api.User {
	return api.User{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		CreatedAt:   u.CreatedAt,
	}
}

func toChatHistory(history []api.ChatMessage) ([]models.ChatMessage, error) {
	if _, bad := lo.Find(history, func(m api.ChatMessage) bool {
		role := models.ChatRole(m.Role)
		return role != models.RoleUser && role != models.RoleModel
	}); bad {
		return nil, errInvalidRole
	}
	return lo.Map(history, func(m api.ChatMessage, _ int) models.ChatMessage {
		return models.ChatMessage{Role: models.ChatRole(m.Role), Text: m.Text}
	}), nil
}
