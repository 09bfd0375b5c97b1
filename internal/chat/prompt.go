package chat

import (
	"fmt"

	"github.com/ProtocolNetwork/shop-portal/internal/models"
)

// SystemPrompt seeds a conversation with the shop persona and the
// customer's vehicle. The ACTION tag gives the model a structured way to
// request scheduling; prose triggers remain the fallback.
func SystemPrompt(v models.Vehicle) string {
	year := v.Year
	if year == "" {
		year = "unknown"
	}

	return fmt.Sprintf(
		`You are a helpful AI assistant for an auto repair shop.
Ask customers to describe their car issues, suggest potential diagnostics,
and summarize their concern to help them schedule an appointment.
Vehicle: %s %s %s
When the customer is ready to book, end your reply with a single line:
ACTION {"action":"schedule","reason":"<one-line summary of the issue>"}`,
		year, v.Make, v.Model,
	)
}
