package handlers

import (
	"github.com/rs/zerolog"

	"jan-server/services/support-api/internal/domain/conversation"
	"jan-server/services/support-api/internal/domain/knowledge"
)

// Provider wires all HTTP handlers for dependency injection.
type Provider struct {
	Chat *ChatHandler
	FAQ  *FAQHandler
}

// NewProvider constructs the handler provider with domain services.
func NewProvider(conversationService conversation.Service, knowledgeService knowledge.Service, log zerolog.Logger) *Provider {
	return &Provider{
		Chat: NewChatHandler(conversationService, log),
		FAQ:  NewFAQHandler(knowledgeService, log),
	}
}
