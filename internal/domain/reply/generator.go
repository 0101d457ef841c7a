package reply

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"jan-server/services/support-api/internal/domain/conversation"
	"jan-server/services/support-api/internal/domain/llm"
	"jan-server/services/support-api/internal/utils/platformerrors"
)

const (
	DefaultHistoryWindow  = 10
	DefaultMaxPromptChars = 2000
	DefaultTemperature    = float32(0.7)
	DefaultSupportEmail   = "support@example.com"
)

var errEmptyCompletion = errors.New("provider returned an empty completion")

// HistorySource lists a conversation's stored messages in creation order.
type HistorySource interface {
	ListMessages(ctx context.Context, conversationID string) ([]conversation.Message, error)
}

// KnowledgeSource renders the FAQ grounding block.
type KnowledgeSource interface {
	Context(ctx context.Context) (string, error)
}

// Options tunes prompt assembly and sampling. Temperature is sent as given, so zero means
// greedy sampling; callers wanting the usual setting pass DefaultTemperature.
type Options struct {
	HistoryWindow  int
	MaxPromptChars int
	Temperature    float32
	SupportEmail   string
}

func (o Options) withDefaults() Options {
	if o.HistoryWindow <= 0 {
		o.HistoryWindow = DefaultHistoryWindow
	}
	if o.MaxPromptChars <= 0 {
		o.MaxPromptChars = DefaultMaxPromptChars
	}
	if strings.TrimSpace(o.SupportEmail) == "" {
		o.SupportEmail = DefaultSupportEmail
	}
	return o
}

// Observer is notified after every provider call.
type Observer func(provider string, kind llm.ErrorKind, elapsed time.Duration)

// Generator assembles prompts and turns provider failures into canned replies.
type Generator struct {
	history   HistorySource
	knowledge KnowledgeSource
	provider  llm.Provider
	opts      Options
	observe   Observer
	log       zerolog.Logger
}

// NewGenerator wires the reply generator.
func NewGenerator(history HistorySource, knowledge KnowledgeSource, provider llm.Provider, opts Options, log zerolog.Logger) *Generator {
	return &Generator{
		history:   history,
		knowledge: knowledge,
		provider:  provider,
		opts:      opts.withDefaults(),
		log:       log.With().Str("component", "reply-generator").Str("provider", provider.Name()).Logger(),
	}
}

// WithObserver registers a callback invoked after each provider call.
func (g *Generator) WithObserver(observe Observer) *Generator {
	g.observe = observe
	return g
}

// GenerateReply expects a validated, non-empty message. Provider failures never surface as
// errors; only storage failures while reading history or the knowledge base do.
func (g *Generator) GenerateReply(ctx context.Context, conversationID, userMessage string) (conversation.Reply, error) {
	ctx, span := otel.Tracer("support-api/reply").Start(ctx, "reply.generate")
	defer span.End()
	span.SetAttributes(attribute.String("conversation.id", conversationID))

	prompt, err := g.prompt(ctx, conversationID, userMessage)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "assemble prompt")
		return conversation.Reply{}, err
	}

	started := time.Now()
	text, err := g.provider.Complete(ctx, llm.CompletionRequest{
		Prompt:      prompt,
		Temperature: g.opts.Temperature,
	})
	if err == nil && strings.TrimSpace(text) == "" {
		err = &llm.ProviderError{Kind: llm.ErrorKindUnknown, Provider: g.provider.Name(), Err: errEmptyCompletion}
	}
	kind := llm.KindOf(err)
	if g.observe != nil {
		g.observe(g.provider.Name(), kind, time.Since(started))
	}

	if err != nil {
		span.RecordError(err)
		span.SetAttributes(attribute.String("reply.error_kind", string(kind)))
		g.log.Error().
			Err(err).
			Str("conversation_id", conversationID).
			Str("error_kind", string(kind)).
			Msg("completion failed")
		return conversation.Reply{
			Text:      CannedReply(kind, g.opts.SupportEmail),
			ErrorKind: kind,
		}, nil
	}

	return conversation.Reply{Text: strings.TrimSpace(text)}, nil
}

func (g *Generator) prompt(ctx context.Context, conversationID, userMessage string) (string, error) {
	history, err := g.history.ListMessages(ctx, conversationID)
	if err != nil {
		return "", platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "load conversation history")
	}

	knowledge, err := g.knowledge.Context(ctx)
	if err != nil {
		return "", platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "load knowledge base")
	}

	return BuildPrompt(PromptInput{
		Knowledge: knowledge,
		History:   RecentHistory(history, g.opts.HistoryWindow),
		Message:   Truncate(userMessage, g.opts.MaxPromptChars),
	}), nil
}
