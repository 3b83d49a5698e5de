package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/focoteam/foco-backend/internal/domain"
)

// ErrorBody is the machine-readable half of the error envelope.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is the JSON error envelope: { "error": { code, message } }.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// DataResponse is the JSON success envelope: { "data": ... }.
type DataResponse struct {
	Data interface{} `json:"data"`
}

func respondData(c *gin.Context, status int, data interface{}) {
	c.JSON(status, DataResponse{Data: data})
}

func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, ErrorResponse{Error: ErrorBody{Code: code, Message: message}})
}

// respondDomainError maps a coded use case error onto the envelope.
func respondDomainError(c *gin.Context, err error) {
	code := domain.CodeOf(err)
	respondError(c, statusForCode(code), code, messageForCode(code))
}

func statusForCode(code string) int {
	switch code {
	case domain.CodeValidation:
		return http.StatusBadRequest
	case domain.CodeNotFound:
		return http.StatusNotFound
	case domain.CodeRateLimit:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

func messageForCode(code string) string {
	switch code {
	case domain.CodeValidation:
		return "invalid request"
	case domain.CodeNotFound:
		return "profile not found"
	case domain.CodeSearch:
		return "failed to search profiles"
	case domain.CodeCount:
		return "failed to count profiles"
	case domain.CodeRateLimit:
		return "too many requests"
	default:
		return "internal error"
	}
}
