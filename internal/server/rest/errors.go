package rest

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/gatewayauth/internal/common"
	"github.com/gin-gonic/gin"
)

// Error codes carried in the response body.
const (
	CodeValidation   = "VALIDATION_ERROR"
	CodeConflict     = "CONFLICT"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeInternal     = "INTERNAL"
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

// statusFor maps a service error to an HTTP status, body code and message.
// Internal failures never expose the underlying error text.
func statusFor(err error) (int, string, string) {
	switch {
	case errors.Is(err, common.ErrorInvalidInput):
		return http.StatusBadRequest, CodeValidation, err.Error()
	case errors.Is(err, common.ErrorConflict):
		return http.StatusConflict, CodeConflict, "username already exists"
	case errors.Is(err, common.ErrorUnauthorized):
		return http.StatusUnauthorized, CodeUnauthorized, "unauthorized"
	default:
		return http.StatusInternalServerError, CodeInternal, "internal error"
	}
}

// respondWithError writes the error envelope, aborts the chain and attaches
// err to the context for the access log.
func respondWithError(c *gin.Context, err error) {
	status, code, message := statusFor(err)
	_ = c.Error(err)
	c.AbortWithStatusJSON(status, errorResponse{Error: errorBody{Code: code, Message: message}})
}

func respondWithBadBody(c *gin.Context, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{
		Error: errorBody{Code: CodeValidation, Message: "invalid request body"},
	})
}
