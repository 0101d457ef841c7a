package llmprovider

import (
	"context"
	"errors"
	"strings"

	"jan-server/services/support-api/internal/domain/llm"
)

const defaultMockReply = "Thanks for reaching out! A support agent will follow up on your question shortly."

var errMockFailure = errors.New("mock provider configured to fail")

// MockClient answers locally without any network call.
type MockClient struct {
	reply string
	fail  llm.ErrorKind
}

// NewMockClient returns a provider that always answers with reply.
func NewMockClient(reply string) *MockClient {
	if strings.TrimSpace(reply) == "" {
		reply = defaultMockReply
	}
	return &MockClient{reply: reply}
}

// NewFailingMockClient returns a provider that always fails with kind.
func NewFailingMockClient(kind llm.ErrorKind) *MockClient {
	return &MockClient{fail: kind}
}

var _ llm.Provider = (*MockClient)(nil)

func (c *MockClient) Name() string { return "mock" }

func (c *MockClient) Complete(ctx context.Context, req llm.CompletionRequest) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", transportError(c.Name(), err)
	}
	if c.fail != llm.ErrorKindNone {
		return "", &llm.ProviderError{Kind: c.fail, Provider: c.Name(), Err: errMockFailure}
	}
	return c.reply, nil
}
