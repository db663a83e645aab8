package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/estatia/estatia/pkg/apperror"
)

// Envelope is the uniform body of every API response.
type Envelope struct {
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	Data      any       `json:"data,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	RequestID string    `json:"request_id,omitempty"`
	Error     any       `json:"error,omitempty"`
}

// Success writes a success envelope with the given status.
func Success(c *gin.Context, status int, data any, message string) {
	if status == 0 {
		status = http.StatusOK
	}
	c.JSON(status, Envelope{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now().UTC(),
		RequestID: c.GetString("request_id"),
	})
}

// Error writes a failure envelope; details carries per-field validation
// messages when available.
func Error(c *gin.Context, status int, message string, details any) {
	if status == 0 {
		status = http.StatusBadRequest
	}
	c.JSON(status, Envelope{
		Success:   false,
		Message:   message,
		Timestamp: time.Now().UTC(),
		RequestID: c.GetString("request_id"),
		Error:     details,
	})
}

// AppError translates an application error into the envelope. Unknown errors
// collapse to a generic 500 so infrastructure detail never leaks to callers.
func AppError(c *gin.Context, err error) {
	if appErr, ok := apperror.As(err); ok {
		status := appErr.StatusCode()
		if status >= http.StatusInternalServerError {
			Error(c, status, "internal server error", nil)
			return
		}
		Error(c, status, appErr.Message, nil)
		return
	}
	Error(c, http.StatusInternalServerError, "internal server error", nil)
}
