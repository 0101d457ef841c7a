package llmprovider

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"jan-server/services/support-api/internal/domain/llm"
)

// DefaultOpenAIBaseURL is Gemini's OpenAI-compatible endpoint.
const DefaultOpenAIBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai"

// OpenAIClient talks to any OpenAI-compatible chat completions endpoint.
type OpenAIClient struct {
	client *openai.Client
	apiKey string
	model  string
}

// NewOpenAIClient creates a go-openai backed provider.
func NewOpenAIClient(apiKey, baseURL, model string, timeout time.Duration) *OpenAIClient {
	clientConfig := openai.DefaultConfig(apiKey)
	if baseURL == "" {
		baseURL = DefaultOpenAIBaseURL
	}
	clientConfig.BaseURL = strings.TrimRight(baseURL, "/")
	clientConfig.HTTPClient = googleErrorDoer{client: &http.Client{Timeout: timeout}}

	return &OpenAIClient{
		client: openai.NewClientWithConfig(clientConfig),
		apiKey: apiKey,
		model:  model,
	}
}

var _ llm.Provider = (*OpenAIClient)(nil)

func (c *OpenAIClient) Name() string { return "openai" }

// Complete sends the prompt as a single user message.
func (c *OpenAIClient) Complete(ctx context.Context, req llm.CompletionRequest) (string, error) {
	if strings.TrimSpace(c.apiKey) == "" {
		return "", missingAPIKey(c.Name())
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: req.Prompt},
		},
		Temperature: req.Temperature,
	})
	if err != nil {
		return "", c.classify(err)
	}
	if len(resp.Choices) == 0 {
		return "", &llm.ProviderError{Kind: llm.ErrorKindUnknown, Provider: c.Name(), Err: errors.New("response has no choices")}
	}
	return resp.Choices[0].Message.Content, nil
}

func (c *OpenAIClient) classify(err error) error {
	var googleErr *googleAPIError
	if errors.As(err, &googleErr) {
		return &llm.ProviderError{Kind: classifyGemini(googleErr.StatusCode, googleErr.Body), Provider: c.Name(), StatusCode: googleErr.StatusCode, Err: err}
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		kind := classifyStatus(apiErr.HTTPStatusCode)
		if code, ok := apiErr.Code.(string); ok && code == "invalid_api_key" {
			kind = llm.ErrorKindAPIKey
		}
		return &llm.ProviderError{Kind: kind, Provider: c.Name(), StatusCode: apiErr.HTTPStatusCode, Err: err}
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return &llm.ProviderError{Kind: classifyStatus(reqErr.HTTPStatusCode), Provider: c.Name(), StatusCode: reqErr.HTTPStatusCode, Err: err}
	}

	return transportError(c.Name(), err)
}

// googleErrorDoer turns google.rpc error bodies into *googleAPIError before go-openai tries
// to decode them as OpenAI errors. Other responses pass through untouched.
type googleErrorDoer struct {
	client *http.Client
}

func (d googleErrorDoer) Do(req *http.Request) (*http.Response, error) {
	resp, err := d.client.Do(req)
	if err != nil || resp.StatusCode < http.StatusBadRequest {
		return resp, err
	}

	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if err != nil {
		return nil, err
	}
	if googleBody, ok := decodeGoogleError(body); ok {
		return nil, &googleAPIError{StatusCode: resp.StatusCode, Body: googleBody}
	}
	resp.Body = io.NopCloser(bytes.NewReader(body))
	return resp, nil
}
