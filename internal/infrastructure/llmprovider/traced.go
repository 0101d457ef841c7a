package llmprovider

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"jan-server/services/support-api/internal/domain/llm"
)

// tracedProvider opens a client span around every completion call.
type tracedProvider struct {
	next   llm.Provider
	tracer trace.Tracer
}

// WithTracing decorates provider with an OpenTelemetry span per call.
func WithTracing(provider llm.Provider) llm.Provider {
	return &tracedProvider{next: provider, tracer: otel.Tracer("support-api/llmprovider")}
}

func (p *tracedProvider) Name() string { return p.next.Name() }

func (p *tracedProvider) Complete(ctx context.Context, req llm.CompletionRequest) (string, error) {
	ctx, span := p.tracer.Start(ctx, "llm.complete", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()
	span.SetAttributes(
		attribute.String("llm.provider", p.next.Name()),
		attribute.Int("llm.prompt_chars", len(req.Prompt)),
		attribute.Float64("llm.temperature", float64(req.Temperature)),
	)

	text, err := p.next.Complete(ctx, req)
	if err != nil {
		span.RecordError(err)
		span.SetAttributes(attribute.String("llm.error_kind", string(llm.KindOf(err))))
		span.SetStatus(codes.Error, "completion failed")
		return "", err
	}
	return text, nil
}
