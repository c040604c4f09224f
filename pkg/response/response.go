package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "farmpower-chat/pkg/errors"
)

// OK sends 200 JSON with data as the body.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Error sends err with the status it carries (see pkg/errors). Non-HTTP errors become a 500
// with DefaultErrorMessage so internal details never leak.
func Error(c *gin.Context, err error) {
	status := pkgErrors.StatusOf(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = DefaultErrorMessage
	}
	c.JSON(status, ErrorResp{Error: msg})
}

// ErrorWith sends a custom error body with the given status.
func ErrorWith(c *gin.Context, status int, body ErrorResp) {
	if body.Error == "" {
		body.Error = http.StatusText(status)
	}
	c.JSON(status, body)
}

// BadRequest sends 400 with message.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResp{Error: message})
}

// InternalError sends 500 with DefaultErrorMessage.
func InternalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, ErrorResp{Error: DefaultErrorMessage})
}

// TooManyRequests aborts the chain with 429.
func TooManyRequests(c *gin.Context, retryAfterSeconds int) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, ErrorResp{
		Error:      "Too many requests, please try again later.",
		RetryAfter: retryAfterSeconds,
	})
}
