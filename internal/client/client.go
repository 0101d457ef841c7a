// Package client is a thin HTTP client for the support API.
package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"jan-server/services/support-api/internal/interfaces/httpserver/responses"
)

// Client talks to a running support-api.
type Client struct {
	httpClient *resty.Client
}

// APIError is a non-2xx response from the service.
type APIError struct {
	StatusCode int
	Body       responses.ErrorResponse
}

func (e *APIError) Error() string {
	if e.Body.Message != "" {
		return fmt.Sprintf("support api: %d %s: %s", e.StatusCode, e.Body.Error, e.Body.Message)
	}
	return fmt.Sprintf("support api: %d %s", e.StatusCode, e.Body.Error)
}

// New creates a Resty-backed client.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		httpClient: resty.New().
			SetBaseURL(strings.TrimRight(baseURL, "/")).
			SetHeader("Content-Type", "application/json").
			SetTimeout(timeout),
	}
}

type postMessageBody struct {
	Message   string `json:"message"`
	SessionID string `json:"sessionId,omitempty"`
}

// SendMessage posts a message. An empty sessionID starts a new conversation.
func (c *Client) SendMessage(ctx context.Context, sessionID, message string) (*responses.PostMessageResponse, error) {
	var (
		result  responses.PostMessageResponse
		errBody responses.ErrorResponse
	)
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(postMessageBody{Message: message, SessionID: sessionID}).
		SetResult(&result).
		SetError(&errBody).
		Post("/v1/chat/message")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, &APIError{StatusCode: resp.StatusCode(), Body: errBody}
	}
	return &result, nil
}

// History fetches the transcript of a session.
func (c *Client) History(ctx context.Context, sessionID string) (*responses.HistoryResponse, error) {
	var (
		result  responses.HistoryResponse
		errBody responses.ErrorResponse
	)
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParam("sessionId", sessionID).
		SetResult(&result).
		SetError(&errBody).
		Get("/v1/chat/history")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, &APIError{StatusCode: resp.StatusCode(), Body: errBody}
	}
	return &result, nil
}

// FAQ lists the knowledge base.
func (c *Client) FAQ(ctx context.Context) (*responses.FAQListResponse, error) {
	var (
		result  responses.FAQListResponse
		errBody responses.ErrorResponse
	)
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(&result).
		SetError(&errBody).
		Get("/v1/faq")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, &APIError{StatusCode: resp.StatusCode(), Body: errBody}
	}
	return &result, nil
}

// IsNotFound reports whether err is a 404 from the service.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}
