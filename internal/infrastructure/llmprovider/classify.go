package llmprovider

import (
	"context"
	"errors"
	"net"
	"net/http"
	"syscall"

	"jan-server/services/support-api/internal/domain/llm"
)

// classifyStatus maps an upstream HTTP status to an error kind.
func classifyStatus(status int) llm.ErrorKind {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return llm.ErrorKindAPIKey
	case http.StatusTooManyRequests:
		return llm.ErrorKindRateLimit
	case http.StatusRequestTimeout, http.StatusGatewayTimeout:
		return llm.ErrorKindTimeout
	default:
		return llm.ErrorKindUnknown
	}
}

// classifyTransport maps a failure that happened before any response arrived.
func classifyTransport(err error) llm.ErrorKind {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, syscall.ECONNREFUSED) {
		return llm.ErrorKindTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return llm.ErrorKindTimeout
	}
	return llm.ErrorKindUnknown
}

func transportError(provider string, err error) *llm.ProviderError {
	return &llm.ProviderError{Kind: classifyTransport(err), Provider: provider, Err: err}
}

var errMissingAPIKey = errors.New("API key is missing")

// missingAPIKey short-circuits a call that could only fail authentication.
func missingAPIKey(provider string) *llm.ProviderError {
	return &llm.ProviderError{Kind: llm.ErrorKindAPIKey, Provider: provider, Err: errMissingAPIKey}
}
