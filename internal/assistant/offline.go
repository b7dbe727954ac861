package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/mmynk/naijatax/internal/calculator"
	"github.com/mmynk/naijatax/internal/models"
)

// Offline answers common questions from built-in notes. It is used when no
// API key is configured.
type Offline struct{}

func (Offline) SendMessage(_ context.Context, _ []models.ChatMessage, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", ErrEmptyMessage
	}

	q := strings.ToLower(message)
	var answer string
	switch {
	case strings.Contains(q, "cra") || strings.Contains(q, "relief"):
		answer = fmt.Sprintf("Your Consolidated Relief Allowance is the higher of ₦200,000 or 1%% of gross income, plus 20%% of gross income; on ₦3,000,000 a year that is ₦%.0f.",
			calculator.ConsolidatedRelief(3000000))
	case strings.Contains(q, "pension") || strings.Contains(q, "nhf") || strings.Contains(q, "deduct"):
		answer = "Pension, NHF and other allowable contributions are subtracted from gross income, after relief, before the tax bands are applied."
	case strings.Contains(q, "band") || strings.Contains(q, "rate"):
		answer = "PAYE is progressive: the first ₦800,000 of taxable income is tax free and the rest is taxed in bands from 15% up to 25%."
	default:
		for _, tip := range Tips {
			if strings.Contains(q, strings.ToLower(tip.Keyword)) {
				answer = tip.Content
				break
			}
		}
	}

	if answer == "" {
		return FallbackReply, nil
	}
	return answer + " " + Disclaimer, nil
}
