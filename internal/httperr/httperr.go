package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
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

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

// statusByCode mapeia códigos de negócio para status HTTP. Código
// desconhecido vira 400 — nunca 500, erro de negócio não é falha interna.
var statusByCode = map[string]int{
	CodeInvalidTransition:      http.StatusConflict,
	CodeNotInPendingPayment:    http.StatusConflict,
	CodeNotAwaitingApproval:    http.StatusConflict,
	CodeTimeConflict:           http.StatusConflict,
	CodeForbidden:              http.StatusForbidden,
	CodeAppointmentNotFound:    http.StatusNotFound,
	CodeClientNotFound:         http.StatusNotFound,
	CodeValidation:             http.StatusBadRequest,
	CodeInvalidRejectionReason: http.StatusBadRequest,
	CodeClientBlacklisted:      http.StatusUnprocessableEntity,
	CodeClientUnwelcome:        http.StatusUnprocessableEntity,
}

// WriteBusiness responde um erro de negócio; retorna false se err não
// for um BusinessError (o chamador trata como erro interno).
func WriteBusiness(c *gin.Context, err error) bool {
	code, ok := BusinessCode(err)
	if !ok {
		return false
	}

	status, ok := statusByCode[code]
	if !ok {
		status = http.StatusBadRequest
	}

	Write(c, status, code, code)
	return true
}
