package llm

import (
	"context"
	"errors"
	"fmt"
)

// CompletionRequest is a single-shot text completion.
type CompletionRequest struct {
	Prompt      string
	Temperature float32
}

// Provider is the boundary to the external text-completion service.
//
// Implementations must report failures as *ProviderError so callers can branch on Kind
// without parsing error text.
type Provider interface {
	Name() string
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// ErrorKind tags why a provider call failed.
type ErrorKind string

const (
	ErrorKindNone      ErrorKind = ""
	ErrorKindAPIKey    ErrorKind = "API_KEY_ERROR"
	ErrorKindRateLimit ErrorKind = "RATE_LIMIT_ERROR"
	ErrorKindTimeout   ErrorKind = "TIMEOUT_ERROR"
	ErrorKindUnknown   ErrorKind = "UNKNOWN_ERROR"
)

// ProviderError is returned by Provider implementations.
type ProviderError struct {
	Kind       ErrorKind
	Provider   string
	StatusCode int
	Err        error
}

func (e *ProviderError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s provider: %s (status %d): %v", e.Provider, e.Kind, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s provider: %s: %v", e.Provider, e.Kind, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// KindOf returns the ErrorKind carried by err. Errors that are not a *ProviderError are
// UNKNOWN_ERROR; a nil error has no kind.
func KindOf(err error) ErrorKind {
	if err == nil {
		return ErrorKindNone
	}
	var providerErr *ProviderError
	if errors.As(err, &providerErr) && providerErr.Kind != ErrorKindNone {
		return providerErr.Kind
	}
	return ErrorKindUnknown
}
