package responses

import (
	"time"

	"jan-server/services/support-api/internal/domain/conversation"
	"jan-server/services/support-api/internal/domain/knowledge"
)

// PostMessageResponse is returned by POST /v1/chat/message. Error carries the error kind
// when the reply is a canned apology.
type PostMessageResponse struct {
	Reply     string `json:"reply" example:"Standard shipping takes 3-5 business days."`
	SessionID string `json:"sessionId" example:"7b1e4c52-3f0a-4d8e-9c21-5a6b7c8d9e0f"`
	Error     string `json:"error,omitempty" example:"RATE_LIMIT_ERROR"`
}

// HistoryMessage is one transcript entry.
type HistoryMessage struct {
	ID        string    `json:"id"`
	Sender    string    `json:"sender" example:"user"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// HistoryResponse is returned by GET /v1/chat/history.
type HistoryResponse struct {
	SessionID string           `json:"sessionId"`
	Messages  []HistoryMessage `json:"messages"`
}

// FAQEntryResponse is one knowledge base row.
type FAQEntryResponse struct {
	ID       string `json:"id"`
	Category string `json:"category" example:"shipping"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// FAQListResponse is returned by GET /v1/faq.
type FAQListResponse struct {
	Data []FAQEntryResponse `json:"data"`
}

// NewPostMessageResponse maps the orchestration result.
func NewPostMessageResponse(out *conversation.PostMessageOutput) PostMessageResponse {
	return PostMessageResponse{
		Reply:     out.Reply,
		SessionID: out.SessionID,
		Error:     string(out.ErrorKind),
	}
}

// NewHistoryResponse maps stored messages to the transcript payload.
func NewHistoryResponse(sessionID string, messages []conversation.Message) HistoryResponse {
	items := make([]HistoryMessage, 0, len(messages))
	for _, msg := range messages {
		items = append(items, HistoryMessage{
			ID:        msg.ID,
			Sender:    string(msg.Sender),
			Text:      msg.Text,
			Timestamp: msg.CreatedAt,
		})
	}
	return HistoryResponse{SessionID: sessionID, Messages: items}
}

// NewFAQListResponse maps knowledge base entries.
func NewFAQListResponse(entries []knowledge.FAQEntry) FAQListResponse {
	items := make([]FAQEntryResponse, 0, len(entries))
	for _, entry := range entries {
		items = append(items, FAQEntryResponse{
			ID:       entry.ID,
			Category: entry.Category,
			Question: entry.Question,
			Answer:   entry.Answer,
		})
	}
	return FAQListResponse{Data: items}
}
