package middlewares

import (
	"io"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"jan-server/services/support-api/internal/interfaces/httpserver/responses"
)

// PanicMessage is returned to clients when a handler panics.
const PanicMessage = "An unexpected error occurred. Please try again."

// RecoveryWithLogger turns a panic into the generic 500 envelope and logs the stack through log.
func RecoveryWithLogger(log zerolog.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		requestID := GetRequestID(c)
		log.Error().
			Str("request_id", requestID).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Interface("panic", recovered).
			Str("stack", string(debug.Stack())).
			Msg("panic recovered")

		c.AbortWithStatusJSON(http.StatusInternalServerError, responses.ErrorResponse{
			Error:     responses.InternalServerError,
			Message:   PanicMessage,
			RequestID: requestID,
		})
	})
}
