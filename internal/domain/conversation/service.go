package conversation

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"jan-server/services/support-api/internal/utils/platformerrors"
)

// DefaultMaxMessageChars bounds a submitted message.
const DefaultMaxMessageChars = 5000

const (
	MsgMessageRequired = "Message is required and must be a string"
	MsgMessageEmpty    = "Message cannot be empty"
	MsgSessionRequired = "sessionId is required"
	MsgNotFound        = "Conversation not found"
)

// Service describes the session and history use cases.
type Service interface {
	PostMessage(ctx context.Context, in PostMessageInput) (*PostMessageOutput, error)
	GetHistory(ctx context.Context, sessionID string) ([]Message, error)
}

// Config tunes the service.
type Config struct {
	MaxMessageChars int
}

type service struct {
	repo      Repository
	generator ReplyGenerator
	cfg       Config
	log       zerolog.Logger
}

// NewService wires the conversation service with its store and reply generator.
//
// Requests for the same session are not serialized: two in-flight posts may interleave their
// user and agent messages. Ordering is whatever the store assigns at insert time.
func NewService(repo Repository, generator ReplyGenerator, cfg Config, log zerolog.Logger) Service {
	if cfg.MaxMessageChars <= 0 {
		cfg.MaxMessageChars = DefaultMaxMessageChars
	}
	return &service{
		repo:      repo,
		generator: generator,
		cfg:       cfg,
		log:       log.With().Str("component", "conversation-service").Logger(),
	}
}

// ValidateMessage checks a submitted message without side effects.
func ValidateMessage(ctx context.Context, text string, maxChars int) error {
	if strings.TrimSpace(text) == "" {
		return platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation, MsgMessageEmpty, nil, "b0f3b1b5-5d2c-4f0e-9a63-0d3f7c1e4a10")
	}
	if utf8.RuneCountInString(text) > maxChars {
		return platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation, TooLongMessage(maxChars), nil, "6c2f8a9e-1b7d-4c3a-8e5f-2a9d4b6c7e81")
	}
	return nil
}

// TooLongMessage renders the validation message for an oversized message.
func TooLongMessage(maxChars int) string {
	return fmt.Sprintf("Message is too long (max %d characters)", maxChars)
}

func (s *service) PostMessage(ctx context.Context, in PostMessageInput) (*PostMessageOutput, error) {
	if err := ValidateMessage(ctx, in.Text, s.cfg.MaxMessageChars); err != nil {
		return nil, err
	}
	text := strings.TrimSpace(in.Text)

	conversationID, err := s.resolveConversation(ctx, strings.TrimSpace(in.SessionID))
	if err != nil {
		return nil, err
	}
	log := s.log.With().Str("conversation_id", conversationID).Logger()

	userMessage, err := s.repo.CreateMessage(ctx, conversationID, SenderUser, text)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "save user message")
	}

	reply, err := s.generator.GenerateReply(ctx, conversationID, text)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "generate reply")
	}
	if reply.ErrorKind != "" {
		log.Warn().Str("error_kind", string(reply.ErrorKind)).Msg("reply degraded to canned response")
	}

	replyMessage, err := s.repo.CreateMessage(ctx, conversationID, SenderAI, reply.Text)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "save reply message")
	}

	log.Debug().
		Str("user_message_id", userMessage.ID).
		Str("reply_message_id", replyMessage.ID).
		Msg("message exchange stored")

	return &PostMessageOutput{
		SessionID:    conversationID,
		Reply:        reply.Text,
		ErrorKind:    reply.ErrorKind,
		UserMessage:  userMessage,
		ReplyMessage: replyMessage,
	}, nil
}

// resolveConversation reuses the session's conversation when it exists. A missing or stale
// session silently starts a new conversation.
func (s *service) resolveConversation(ctx context.Context, sessionID string) (string, error) {
	if sessionID != "" {
		existing, err := s.repo.FindConversation(ctx, sessionID)
		if err != nil {
			return "", platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "find conversation")
		}
		if existing != nil {
			return existing.ID, nil
		}
		s.log.Info().Str("session_id", sessionID).Msg("unknown session, starting a new conversation")
	}

	created, err := s.repo.CreateConversation(ctx)
	if err != nil {
		return "", platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "create conversation")
	}
	s.log.Info().Str("conversation_id", created.ID).Msg("conversation created")
	return created.ID, nil
}

func (s *service) GetHistory(ctx context.Context, sessionID string) ([]Message, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation, MsgSessionRequired, nil, "4e1a7c2d-9b3f-4a8e-b5d6-7c8e9f0a1b2c")
	}

	existing, err := s.repo.FindConversation(ctx, sessionID)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "find conversation")
	}
	if existing == nil {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeNotFound, MsgNotFound, nil, "9d8c7b6a-5f4e-4d3c-a2b1-0f9e8d7c6b5a")
	}

	messages, err := s.repo.ListMessages(ctx, existing.ID)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "list messages")
	}
	return messages, nil
}
