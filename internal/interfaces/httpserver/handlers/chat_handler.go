package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"jan-server/services/support-api/internal/domain/conversation"
	"jan-server/services/support-api/internal/interfaces/httpserver/requests"
	"jan-server/services/support-api/internal/interfaces/httpserver/responses"
	"jan-server/services/support-api/internal/utils/platformerrors"
)

const (
	msgPostMessageFailed = "An unexpected error occurred. Please try again."
	msgHistoryFailed     = "Failed to fetch conversation history"
)

// ChatHandler exposes the message and history endpoints.
type ChatHandler struct {
	service conversation.Service
	log     zerolog.Logger
}

// NewChatHandler constructs the handler.
func NewChatHandler(service conversation.Service, log zerolog.Logger) *ChatHandler {
	return &ChatHandler{
		service: service,
		log:     log.With().Str("handler", "chat").Logger(),
	}
}

// PostMessage handles POST /v1/chat/message
// @Summary Send a customer message
// @Description Stores the message, generates an agent reply and returns it with the session id. Provider failures still return 200 with a canned reply and the error kind.
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body requests.PostMessageRequest true "Message"
// @Success 200 {object} responses.PostMessageResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /v1/chat/message [post]
func (h *ChatHandler) PostMessage(c *gin.Context) {
	var req requests.PostMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Message == nil || *req.Message == "" {
		responses.HandleNewError(c, h.log, platformerrors.ErrorTypeValidation, conversation.MsgMessageRequired, "1f3a5c7e-9b2d-4f6a-8c1e-3a5c7e9b2d4f")
		return
	}

	input := conversation.PostMessageInput{Text: *req.Message}
	if req.SessionID != nil {
		input.SessionID = *req.SessionID
	}

	out, err := h.service.PostMessage(c.Request.Context(), input)
	if err != nil {
		responses.HandleError(c, h.log, err, msgPostMessageFailed)
		return
	}

	c.JSON(http.StatusOK, responses.NewPostMessageResponse(out))
}

// GetHistory handles GET /v1/chat/history
// @Summary Get conversation history
// @Description Returns the ordered transcript for a session
// @Tags Chat
// @Produce json
// @Param sessionId query string true "Session ID"
// @Success 200 {object} responses.HistoryResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /v1/chat/history [get]
func (h *ChatHandler) GetHistory(c *gin.Context) {
	var query requests.HistoryQuery
	_ = c.ShouldBindQuery(&query)
	sessionID := strings.TrimSpace(query.SessionID)

	messages, err := h.service.GetHistory(c.Request.Context(), sessionID)
	if err != nil {
		responses.HandleError(c, h.log, err, msgHistoryFailed)
		return
	}

	c.JSON(http.StatusOK, responses.NewHistoryResponse(sessionID, messages))
}
