package entities

import (
	"time"

	"jan-server/services/support-api/internal/domain/conversation"
)

// Message stores a single chat message. Rows are append-only.
type Message struct {
	ID             uint          `gorm:"primaryKey"`
	PublicID       string        `gorm:"type:varchar(50);uniqueIndex;not null"`
	ConversationID uint          `gorm:"not null;index:idx_messages_conversation_created,priority:1"`
	Conversation   *Conversation `gorm:"foreignKey:ConversationID;constraint:OnDelete:CASCADE"`
	Sender         string        `gorm:"type:varchar(8);not null"`
	Text           string        `gorm:"type:text;not null"`
	CreatedAt      time.Time     `gorm:"autoCreateTime;index:idx_messages_conversation_created,priority:2"`
}

// TableName specifies the table name for Message.
func (Message) TableName() string {
	return "messages"
}

// EtoD converts the database entity to the domain model. conversationPublicID is passed in
// because the row only holds the internal foreign key.
func (m *Message) EtoD(conversationPublicID string) conversation.Message {
	return conversation.Message{
		ID:             m.PublicID,
		ConversationID: conversationPublicID,
		Sender:         conversation.Sender(m.Sender),
		Text:           m.Text,
		CreatedAt:      m.CreatedAt,
	}
}
