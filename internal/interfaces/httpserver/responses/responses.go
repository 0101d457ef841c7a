package responses

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"jan-server/services/support-api/internal/utils/platformerrors"
)

// InternalServerError is the client-facing error text for anything that is not a caller error.
const InternalServerError = "Internal server error"

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Code      string `json:"code,omitempty"` // UUID from PlatformError
	Error     string `json:"error"`
	Message   string `json:"message,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// HandleError writes caller errors (validation, not found) with their own message and
// everything else as a generic 500 carrying fallback. Server-side errors are logged, never
// exposed.
func HandleError(c *gin.Context, log zerolog.Logger, err error, fallback string) {
	perr := platformerrors.GetPlatformError(err)
	if perr == nil {
		perr = platformerrors.AsError(c.Request.Context(), platformerrors.LayerHandler, err, fallback)
	}

	status := platformerrors.ErrorTypeToHTTPStatus(perr.GetErrorType())
	if status < http.StatusInternalServerError {
		c.AbortWithStatusJSON(status, ErrorResponse{
			Code:      perr.GetUUID(),
			Error:     perr.Message,
			RequestID: perr.GetRequestID(),
		})
		return
	}

	platformerrors.LogError(log, perr)
	c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
		Code:      perr.GetUUID(),
		Error:     InternalServerError,
		Message:   fallback,
		RequestID: perr.GetRequestID(),
	})
}

// HandleNewError creates a new typed error at the route layer and handles it.
func HandleNewError(c *gin.Context, log zerolog.Logger, errorType platformerrors.ErrorType, message string, uuid string) {
	err := platformerrors.NewError(c.Request.Context(), platformerrors.LayerRoute, errorType, message, nil, uuid)
	HandleError(c, log, err, message)
}
