package conversation

import (
	"time"

	"jan-server/services/support-api/internal/domain/llm"
)

// Sender identifies who authored a message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderAI   Sender = "ai"
)

// Valid reports whether s is a known sender.
func (s Sender) Valid() bool {
	return s == SenderUser || s == SenderAI
}

// Conversation is a client-identified thread of messages. Its ID doubles as the session
// token handed to the client.
type Conversation struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Message is immutable once stored.
type Message struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversation_id"`
	Sender         Sender    `json:"sender"`
	Text           string    `json:"text"`
	CreatedAt      time.Time `json:"created_at"`
}

// Reply is the outcome of reply generation. ErrorKind is empty when the provider answered.
type Reply struct {
	Text      string
	ErrorKind llm.ErrorKind
}

// PostMessageInput carries a user message and the optional session it belongs to.
type PostMessageInput struct {
	SessionID string
	Text      string
}

// PostMessageOutput is returned to the caller of PostMessage.
type PostMessageOutput struct {
	SessionID    string
	Reply        string
	ErrorKind    llm.ErrorKind
	UserMessage  *Message
	ReplyMessage *Message
}
