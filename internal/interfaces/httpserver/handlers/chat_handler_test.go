package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jan-server/services/support-api/internal/domain/conversation"
	"jan-server/services/support-api/internal/domain/llm"
	"jan-server/services/support-api/internal/interfaces/httpserver/handlers"
	"jan-server/services/support-api/internal/utils/platformerrors"
)

// MockConversationService is a mock implementation of conversation.Service for testing.
type MockConversationService struct {
	PostMessageFunc func(ctx context.Context, in conversation.PostMessageInput) (*conversation.PostMessageOutput, error)
	GetHistoryFunc  func(ctx context.Context, sessionID string) ([]conversation.Message, error)
}

func (m *MockConversationService) PostMessage(ctx context.Context, in conversation.PostMessageInput) (*conversation.PostMessageOutput, error) {
	if m.PostMessageFunc != nil {
		return m.PostMessageFunc(ctx, in)
	}
	return nil, nil
}

func (m *MockConversationService) GetHistory(ctx context.Context, sessionID string) ([]conversation.Message, error) {
	if m.GetHistoryFunc != nil {
		return m.GetHistoryFunc(ctx, sessionID)
	}
	return nil, nil
}

func setupChatRouter(svc conversation.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := handlers.NewChatHandler(svc, zerolog.Nop())
	router.POST("/v1/chat/message", handler.PostMessage)
	router.GET("/v1/chat/history", handler.GetHistory)
	return router
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestChatHandler_PostMessage_Success(t *testing.T) {
	var captured conversation.PostMessageInput
	mockService := &MockConversationService{
		PostMessageFunc: func(ctx context.Context, in conversation.PostMessageInput) (*conversation.PostMessageOutput, error) {
			captured = in
			return &conversation.PostMessageOutput{SessionID: "sess-1", Reply: "Happy to help!"}, nil
		},
	}
	router := setupChatRouter(mockService)

	body, _ := json.Marshal(map[string]any{"message": "Hello", "sessionId": "sess-1"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/chat/message", bytes.NewReader(body)))

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	assert.Equal(t, "Happy to help!", resp["reply"])
	assert.Equal(t, "sess-1", resp["sessionId"])
	_, hasError := resp["error"]
	assert.False(t, hasError)
	assert.Equal(t, conversation.PostMessageInput{SessionID: "sess-1", Text: "Hello"}, captured)
}

func TestChatHandler_PostMessage_ProviderFailureStill200(t *testing.T) {
	mockService := &MockConversationService{
		PostMessageFunc: func(ctx context.Context, in conversation.PostMessageInput) (*conversation.PostMessageOutput, error) {
			return &conversation.PostMessageOutput{
				SessionID: "sess-2",
				Reply:     "We're experiencing high traffic. Please try again shortly or email support@example.com.",
				ErrorKind: llm.ErrorKindRateLimit,
			}, nil
		},
	}
	router := setupChatRouter(mockService)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/chat/message", bytes.NewBufferString(`{"message":"Hi"}`)))

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	assert.Equal(t, "RATE_LIMIT_ERROR", resp["error"])
	assert.Contains(t, resp["reply"], "support@example.com")
}

func TestChatHandler_PostMessage_BadInput(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing message", `{"sessionId":"abc"}`},
		{"empty string", `{"message":""}`},
		{"number", `{"message":42}`},
		{"null", `{"message":null}`},
		{"malformed json", `{"message":`},
		{"empty body", ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			mockService := &MockConversationService{
				PostMessageFunc: func(ctx context.Context, in conversation.PostMessageInput) (*conversation.PostMessageOutput, error) {
					called = true
					return nil, nil
				},
			}
			router := setupChatRouter(mockService)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/chat/message", bytes.NewBufferString(tt.body)))

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, conversation.MsgMessageRequired, decode(t, w)["error"])
			assert.False(t, called)
		})
	}
}

func TestChatHandler_PostMessage_ServiceErrors(t *testing.T) {
	tests := []struct {
		name            string
		err             error
		expectedStatus  int
		expectedError   string
		expectedMessage string
	}{
		{
			name:           "validation",
			err:            platformerrors.NewError(context.Background(), platformerrors.LayerDomain, platformerrors.ErrorTypeValidation, conversation.MsgMessageEmpty, nil, "v-1"),
			expectedStatus: http.StatusBadRequest,
			expectedError:  conversation.MsgMessageEmpty,
		},
		{
			name:            "database",
			err:             platformerrors.NewError(context.Background(), platformerrors.LayerRepository, platformerrors.ErrorTypeDatabaseError, "create message", errors.New("disk I/O error"), "d-1"),
			expectedStatus:  http.StatusInternalServerError,
			expectedError:   "Internal server error",
			expectedMessage: "An unexpected error occurred. Please try again.",
		},
		{
			name:            "plain error",
			err:             errors.New("boom"),
			expectedStatus:  http.StatusInternalServerError,
			expectedError:   "Internal server error",
			expectedMessage: "An unexpected error occurred. Please try again.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockConversationService{
				PostMessageFunc: func(ctx context.Context, in conversation.PostMessageInput) (*conversation.PostMessageOutput, error) {
					return nil, tt.err
				},
			}
			router := setupChatRouter(mockService)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/chat/message", bytes.NewBufferString(`{"message":"   "}`)))

			assert.Equal(t, tt.expectedStatus, w.Code)
			resp := decode(t, w)
			assert.Equal(t, tt.expectedError, resp["error"])
			if tt.expectedMessage != "" {
				assert.Equal(t, tt.expectedMessage, resp["message"])
			}
			assert.NotContains(t, w.Body.String(), "disk I/O error")
		})
	}
}

func TestChatHandler_GetHistory_Success(t *testing.T) {
	created := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	mockService := &MockConversationService{
		GetHistoryFunc: func(ctx context.Context, sessionID string) ([]conversation.Message, error) {
			assert.Equal(t, "sess-1", sessionID)
			return []conversation.Message{
				{ID: "m1", ConversationID: "sess-1", Sender: conversation.SenderUser, Text: "Hi", CreatedAt: created},
				{ID: "m2", ConversationID: "sess-1", Sender: conversation.SenderAI, Text: "Hello!", CreatedAt: created.Add(time.Second)},
			}, nil
		},
	}
	router := setupChatRouter(mockService)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/chat/history?sessionId=sess-1", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		SessionID string `json:"sessionId"`
		Messages  []struct {
			ID        string    `json:"id"`
			Sender    string    `json:"sender"`
			Text      string    `json:"text"`
			Timestamp time.Time `json:"timestamp"`
		} `json:"messages"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "sess-1", resp.SessionID)
	require.Len(t, resp.Messages, 2)
	assert.Equal(t, "user", resp.Messages[0].Sender)
	assert.Equal(t, "ai", resp.Messages[1].Sender)
	assert.True(t, created.Equal(resp.Messages[0].Timestamp))
}

func TestChatHandler_GetHistory_EmptyListIsArray(t *testing.T) {
	mockService := &MockConversationService{
		GetHistoryFunc: func(ctx context.Context, sessionID string) ([]conversation.Message, error) {
			return nil, nil
		},
	}
	router := setupChatRouter(mockService)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/chat/history?sessionId=sess-1", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"sessionId":"sess-1","messages":[]}`, w.Body.String())
}

func TestChatHandler_GetHistory_Errors(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedError  string
	}{
		{
			"missing session",
			platformerrors.NewError(context.Background(), platformerrors.LayerDomain, platformerrors.ErrorTypeValidation, conversation.MsgSessionRequired, nil, "v-2"),
			http.StatusBadRequest,
			conversation.MsgSessionRequired,
		},
		{
			"not found",
			platformerrors.NewError(context.Background(), platformerrors.LayerDomain, platformerrors.ErrorTypeNotFound, conversation.MsgNotFound, nil, "n-1"),
			http.StatusNotFound,
			conversation.MsgNotFound,
		},
		{
			"store down",
			errors.New("connection refused"),
			http.StatusInternalServerError,
			"Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockConversationService{
				GetHistoryFunc: func(ctx context.Context, sessionID string) ([]conversation.Message, error) {
					return nil, tt.err
				},
			}
			router := setupChatRouter(mockService)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/chat/history", nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			resp := decode(t, w)
			assert.Equal(t, tt.expectedError, resp["error"])
			if tt.expectedStatus == http.StatusInternalServerError {
				assert.Equal(t, "Failed to fetch conversation history", resp["message"])
			}
		})
	}
}

func TestChatHandler_GetHistory_EchoesTrimmedSessionID(t *testing.T) {
	mockService := &MockConversationService{
		GetHistoryFunc: func(ctx context.Context, sessionID string) ([]conversation.Message, error) {
			assert.Equal(t, "sess-1", sessionID)
			return []conversation.Message{}, nil
		},
	}
	router := setupChatRouter(mockService)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/chat/history?sessionId=%20sess-1%20", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"sessionId":"sess-1","messages":[]}`, w.Body.String())
}
