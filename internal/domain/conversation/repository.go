package conversation

import "context"

// Repository persists conversations and their messages.
type Repository interface {
	CreateConversation(ctx context.Context) (*Conversation, error)
	// FindConversation returns nil without an error when the conversation does not exist.
	FindConversation(ctx context.Context, id string) (*Conversation, error)
	TouchConversation(ctx context.Context, id string) error
	// CreateMessage stores the message and bumps the conversation's updated_at.
	CreateMessage(ctx context.Context, conversationID string, sender Sender, text string) (*Message, error)
	// ListMessages returns messages in creation order; an empty slice when there are none.
	ListMessages(ctx context.Context, conversationID string) ([]Message, error)
}

// ReplyGenerator produces the agent reply for a freshly stored user message.
type ReplyGenerator interface {
	GenerateReply(ctx context.Context, conversationID, userMessage string) (Reply, error)
}
