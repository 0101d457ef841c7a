package reply

import (
	"strings"

	"jan-server/services/support-api/internal/domain/conversation"
)

const (
	ellipsis = "..."

	persona = "You are a helpful and friendly customer support agent for an e-commerce store."

	guidelines = `GUIDELINES:
- Be warm, professional, and empathetic
- Answer questions using the knowledge base when applicable
- If unsure, politely say so and offer a human agent
- Keep responses concise and helpful`

	closingInstruction = "Now respond to the customer's latest message:"
)

// PromptInput holds everything rendered into a generation prompt.
type PromptInput struct {
	Knowledge string
	History   []conversation.Message
	Message   string
}

// Truncate cuts s to maxChars characters and appends an ellipsis when it was longer.
func Truncate(s string, maxChars int) string {
	if maxChars <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= maxChars {
		return s
	}
	return string(runes[:maxChars]) + ellipsis
}

// RecentHistory keeps the last window messages, preserving chronological order.
func RecentHistory(messages []conversation.Message, window int) []conversation.Message {
	if window <= 0 || len(messages) <= window {
		return messages
	}
	return messages[len(messages)-window:]
}

// RenderHistory renders messages as "Customer: ..." / "Agent: ..." lines.
func RenderHistory(messages []conversation.Message) string {
	lines := make([]string, 0, len(messages))
	for _, msg := range messages {
		speaker := "Agent"
		if msg.Sender == conversation.SenderUser {
			speaker = "Customer"
		}
		lines = append(lines, speaker+": "+msg.Text)
	}
	return strings.Join(lines, "\n")
}

// BuildPrompt composes persona, knowledge, guidelines, optional history and the new message.
func BuildPrompt(in PromptInput) string {
	var b strings.Builder
	b.WriteString(persona)
	b.WriteString("\n\nSTORE KNOWLEDGE BASE:\n")
	b.WriteString(in.Knowledge)
	b.WriteString("\n\n")
	b.WriteString(guidelines)
	b.WriteString("\n\n")
	if history := RenderHistory(in.History); history != "" {
		b.WriteString("CONVERSATION HISTORY:\n")
		b.WriteString(history)
		b.WriteString("\n")
	}
	b.WriteString("\n\n")
	b.WriteString(closingInstruction)
	b.WriteString("\n\nCustomer: ")
	b.WriteString(in.Message)
	return b.String()
}
