package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
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

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Unprocessable(c *gin.Context, code, message string) {
	Write(c, http.StatusUnprocessableEntity, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// WriteBusiness mapeia o Kind do BusinessError para o status HTTP
func WriteBusiness(c *gin.Context, err error, message string) {
	kind, ok := KindOf(err)
	if !ok {
		Internal(c, "internal_error", message)
		return
	}

	status := http.StatusBadRequest
	switch kind {
	case KindNotFound:
		status = http.StatusNotFound
	case KindConflict, KindTransition:
		status = http.StatusConflict
	case KindPolicy:
		status = http.StatusUnprocessableEntity
	}

	c.JSON(status, HTTPError{
		Code:    err.Error(),
		Message: message,
		Field:   FieldOf(err),
	})
}
