// Package assistant answers free-form tax questions through an external
// generative text service.
package assistant

import (
	"context"

	"github.com/mmynk/naijatax/internal/models"
)

// FallbackReply is returned when the model produces no text.
const FallbackReply = "I'm sorry, I couldn't process that request."

// Disclaimer ends every reply.
const Disclaimer = "Note: This is for informational purposes only and does not constitute official tax advice."

// Persona is sent as the system instruction.
const Persona = "You are NaijaTax Buddy, a friendly Nigerian personal income tax assistant. " +
	"Answer conversationally in one to three sentences. " +
	"Stick to Nigerian specifics such as PAYE, the Consolidated Relief Allowance, pension and NHF deductions and the Finance Act. " +
	"End every reply with exactly: '" + Disclaimer + "'"

// Assistant sends a message, with the conversation so far, and returns the reply.
type Assistant interface {
	SendMessage(ctx context.Context, history []models.ChatMessage, message string) (string, error)
}
