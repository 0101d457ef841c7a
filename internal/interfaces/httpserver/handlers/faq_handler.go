package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"jan-server/services/support-api/internal/domain/knowledge"
	"jan-server/services/support-api/internal/interfaces/httpserver/responses"
)

// FAQHandler serves the knowledge base.
type FAQHandler struct {
	service knowledge.Service
	log     zerolog.Logger
}

// NewFAQHandler constructs the handler.
func NewFAQHandler(service knowledge.Service, log zerolog.Logger) *FAQHandler {
	return &FAQHandler{
		service: service,
		log:     log.With().Str("handler", "faq").Logger(),
	}
}

// List handles GET /v1/faq
// @Summary List FAQ entries
// @Description Returns the knowledge base used to ground replies
// @Tags FAQ
// @Produce json
// @Success 200 {object} responses.FAQListResponse
// @Failure 500 {object} responses.ErrorResponse
// @Router /v1/faq [get]
func (h *FAQHandler) List(c *gin.Context) {
	entries, err := h.service.ListEntries(c.Request.Context())
	if err != nil {
		responses.HandleError(c, h.log, err, "Failed to load knowledge base")
		return
	}
	c.JSON(http.StatusOK, responses.NewFAQListResponse(entries))
}
