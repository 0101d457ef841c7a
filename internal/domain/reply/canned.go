package reply

import (
	"fmt"

	"jan-server/services/support-api/internal/domain/llm"
)

// CannedReply returns the user-safe apology shown when the provider fails with kind.
func CannedReply(kind llm.ErrorKind, supportEmail string) string {
	switch kind {
	case llm.ErrorKindAPIKey:
		return fmt.Sprintf("I'm having trouble accessing my system right now. Please contact %s.", supportEmail)
	case llm.ErrorKindRateLimit:
		return fmt.Sprintf("We're experiencing high traffic. Please try again shortly or email %s.", supportEmail)
	case llm.ErrorKindTimeout:
		return fmt.Sprintf("I'm having connectivity issues. Please try again or contact %s.", supportEmail)
	default:
		return "Sorry, something went wrong. Please try again or reach out to our support team."
	}
}
