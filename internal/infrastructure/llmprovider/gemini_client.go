package llmprovider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"jan-server/services/support-api/internal/domain/llm"
)

// DefaultGeminiBaseURL is the Generative Language API host.
const DefaultGeminiBaseURL = "https://generativelanguage.googleapis.com"

// GeminiClient calls the native generateContent endpoint.
type GeminiClient struct {
	httpClient *resty.Client
	apiKey     string
	model      string
}

// NewGeminiClient creates a Resty-backed client.
func NewGeminiClient(apiKey, baseURL, model string, timeout time.Duration) *GeminiClient {
	if baseURL == "" {
		baseURL = DefaultGeminiBaseURL
	}
	return &GeminiClient{
		httpClient: resty.New().
			SetBaseURL(strings.TrimRight(baseURL, "/")).
			SetHeader("Content-Type", "application/json").
			SetHeader("x-goog-api-key", apiKey).
			SetTimeout(timeout),
		apiKey: apiKey,
		model:  strings.TrimPrefix(model, "models/"),
	}
}

var _ llm.Provider = (*GeminiClient)(nil)

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	Temperature float32 `json:"temperature"`
}

type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type geminiResponse struct {
	Candidates []struct {
		Content      geminiContent `json:"content"`
		FinishReason string        `json:"finishReason"`
	} `json:"candidates"`
}

type geminiErrorDetail struct {
	Type   string `json:"@type"`
	Reason string `json:"reason"`
}

type geminiErrorBody struct {
	Error struct {
		Code    int                 `json:"code"`
		Message string              `json:"message"`
		Status  string              `json:"status"`
		Details []geminiErrorDetail `json:"details"`
	} `json:"error"`
}

func (c *GeminiClient) Name() string { return "gemini" }

func (c *GeminiClient) Complete(ctx context.Context, req llm.CompletionRequest) (string, error) {
	if strings.TrimSpace(c.apiKey) == "" {
		return "", missingAPIKey(c.Name())
	}

	var result geminiResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetPathParam("model", c.model).
		SetBody(geminiRequest{
			Contents:         []geminiContent{{Role: "user", Parts: []geminiPart{{Text: req.Prompt}}}},
			GenerationConfig: geminiGenerationConfig{Temperature: req.Temperature},
		}).
		SetResult(&result).
		Post("/v1beta/models/{model}:generateContent")
	if err != nil {
		return "", transportError(c.Name(), err)
	}

	if resp.IsError() {
		errBody, _ := decodeGoogleError(resp.Body())
		return "", &llm.ProviderError{
			Kind:       classifyGemini(resp.StatusCode(), errBody),
			Provider:   c.Name(),
			StatusCode: resp.StatusCode(),
			Err:        fmt.Errorf("gemini api error: %s", resp.String()),
		}
	}

	var sb strings.Builder
	if len(result.Candidates) > 0 {
		for _, part := range result.Candidates[0].Content.Parts {
			sb.WriteString(part.Text)
		}
	}
	if sb.Len() == 0 {
		return "", &llm.ProviderError{Kind: llm.ErrorKindUnknown, Provider: c.Name(), StatusCode: resp.StatusCode(), Err: errors.New("response has no candidate text")}
	}
	return sb.String(), nil
}

// classifyGemini prefers the structured google.rpc status over the HTTP code.
func classifyGemini(status int, body geminiErrorBody) llm.ErrorKind {
	for _, detail := range body.Error.Details {
		if detail.Reason == "API_KEY_INVALID" {
			return llm.ErrorKindAPIKey
		}
	}
	switch body.Error.Status {
	case "UNAUTHENTICATED", "PERMISSION_DENIED":
		return llm.ErrorKindAPIKey
	case "RESOURCE_EXHAUSTED":
		return llm.ErrorKindRateLimit
	case "DEADLINE_EXCEEDED":
		return llm.ErrorKindTimeout
	}
	return classifyStatus(status)
}

// structured reports whether the body carried a google.rpc status rather than some other JSON.
func (b geminiErrorBody) structured() bool {
	return b.Error.Status != "" || len(b.Error.Details) > 0
}

// decodeGoogleError reads a google.rpc error body. Some endpoints wrap it in a list.
func decodeGoogleError(body []byte) (geminiErrorBody, bool) {
	var single geminiErrorBody
	if err := json.Unmarshal(body, &single); err == nil && single.structured() {
		return single, true
	}
	var list []geminiErrorBody
	if err := json.Unmarshal(body, &list); err == nil && len(list) > 0 && list[0].structured() {
		return list[0], true
	}
	return geminiErrorBody{}, false
}

// googleAPIError is a Google error response observed on the OpenAI-compatible endpoint.
type googleAPIError struct {
	StatusCode int
	Body       geminiErrorBody
}

func (e *googleAPIError) Error() string {
	return fmt.Sprintf("google api error %d %s: %s", e.StatusCode, e.Body.Error.Status, e.Body.Error.Message)
}
