package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

// RejectedError is the envelope for a booking or edit the rules turned
// down. Form echoes the submitted fields so the client can re-present
// the form pre-filled instead of making the user retype everything.
type RejectedError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
	Form    any    `json:"form,omitempty"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Rejected(c *gin.Context, code, message string, form any) {
	c.JSON(http.StatusUnprocessableEntity, RejectedError{
		Code:    code,
		Message: message,
		Form:    form,
	})
}
