package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

type HTTPError struct {
	Code    string       `json:"error_code"`
	Message string       `json:"message"`
	Details []FieldError `json:"details,omitempty"`
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

// Validation answers 400 with one entry per failing field.
func Validation(c *gin.Context, message string, details []FieldError) {
	c.JSON(http.StatusBadRequest, HTTPError{
		Code:    "validation_failed",
		Message: message,
		Details: details,
	})
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}
