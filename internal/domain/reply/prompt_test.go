package reply

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"jan-server/services/support-api/internal/domain/conversation"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		max      int
		expected string
	}{
		{"short message untouched", "hello", 10, "hello"},
		{"exact length untouched", "hello", 5, "hello"},
		{"long message cut", "hello world", 5, "hello..."},
		{"counts characters not bytes", "héllo wörld", 7, "héllo w..."},
		{"non-positive limit disables", "hello", 0, "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Truncate(tt.input, tt.max))
		})
	}
}

func TestTruncate_2500Chars(t *testing.T) {
	got := Truncate(strings.Repeat("a", 2500), 2000)
	assert.Equal(t, strings.Repeat("a", 2000)+"...", got)
}

func TestRecentHistory(t *testing.T) {
	messages := make([]conversation.Message, 15)
	for i := range messages {
		messages[i] = conversation.Message{ID: fmt.Sprintf("m%d", i)}
	}

	recent := RecentHistory(messages, 10)
	assert.Len(t, recent, 10)
	assert.Equal(t, "m5", recent[0].ID)
	assert.Equal(t, "m14", recent[9].ID)

	assert.Len(t, RecentHistory(messages[:3], 10), 3)
}

func TestRenderHistory(t *testing.T) {
	got := RenderHistory([]conversation.Message{
		{Sender: conversation.SenderUser, Text: "Where is my order?"},
		{Sender: conversation.SenderAI, Text: "Let me check."},
	})
	assert.Equal(t, "Customer: Where is my order?\nAgent: Let me check.", got)
}

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt(PromptInput{
		Knowledge: "Q: Do you ship abroad?\nA: Yes.",
		History: []conversation.Message{
			{Sender: conversation.SenderUser, Text: "Hi"},
			{Sender: conversation.SenderAI, Text: "Hello!"},
		},
		Message: "Do you ship to Canada?",
	})

	assert.True(t, strings.HasPrefix(prompt, persona))
	assert.Contains(t, prompt, "STORE KNOWLEDGE BASE:\nQ: Do you ship abroad?\nA: Yes.")
	assert.Contains(t, prompt, "GUIDELINES:\n- Be warm, professional, and empathetic")
	assert.Contains(t, prompt, "CONVERSATION HISTORY:\nCustomer: Hi\nAgent: Hello!\n")
	assert.True(t, strings.HasSuffix(prompt, "Now respond to the customer's latest message:\n\nCustomer: Do you ship to Canada?"))

	knowledgeAt := strings.Index(prompt, "STORE KNOWLEDGE BASE:")
	guidelinesAt := strings.Index(prompt, "GUIDELINES:")
	historyAt := strings.Index(prompt, "CONVERSATION HISTORY:")
	assert.Less(t, knowledgeAt, guidelinesAt)
	assert.Less(t, guidelinesAt, historyAt)
}

func TestBuildPrompt_NoHistory(t *testing.T) {
	prompt := BuildPrompt(PromptInput{Knowledge: "kb", Message: "Hi"})

	assert.NotContains(t, prompt, "CONVERSATION HISTORY:")
	assert.True(t, strings.HasSuffix(prompt, "Customer: Hi"))
}

func TestBuildPrompt_Layout(t *testing.T) {
	withHistory := BuildPrompt(PromptInput{
		Knowledge: "kb",
		History:   []conversation.Message{{Sender: conversation.SenderUser, Text: "Hi"}},
		Message:   "Thanks",
	})
	assert.Contains(t, withHistory, "- Keep responses concise and helpful\n\nCONVERSATION HISTORY:\nCustomer: Hi\n\n\nNow respond to the customer's latest message:\n\nCustomer: Thanks")

	withoutHistory := BuildPrompt(PromptInput{Knowledge: "kb", Message: "Thanks"})
	assert.Contains(t, withoutHistory, "- Keep responses concise and helpful\n\n\n\nNow respond to the customer's latest message:\n\nCustomer: Thanks")
}
