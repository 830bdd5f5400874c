package handlers

import (
	"errors"
	"net/http"

	"travelconsole/internal/domain"
	"travelconsole/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// ErrorResponse standardizes error payloads.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

func respondError(c *gin.Context, status int, code, message string, details any) {
	if code == "" {
		code = http.StatusText(status)
	}
	resp := ErrorResponse{
		Error:   message,
		Code:    code,
		Details: details,
	}
	reqID := middleware.GetRequestID(c)
	if reqID != "" {
		c.JSON(status, gin.H{
			"error":      resp.Error,
			"code":       resp.Code,
			"details":    resp.Details,
			"request_id": reqID,
			"message":    message,
		})
		return
	}
	c.JSON(status, resp)
}

// RespondDomainError maps domain errors to HTTP responses.
func RespondDomainError(c *gin.Context, err error) {
	_ = c.Error(err)

	code := domain.CodeOf(err)
	switch code {
	case domain.CodeValidation:
		var fields domain.FieldErrors
		if errors.As(err, &fields) {
			respondError(c, http.StatusBadRequest, code, "please correct the highlighted fields", map[string]string(fields))
			return
		}
		respondError(c, http.StatusBadRequest, code, err.Error(), nil)
	case domain.CodeNotFound:
		var notFound domain.NotFoundError
		var details any
		if errors.As(err, &notFound) && notFound.Hint() != "" {
			details = gin.H{"hint": notFound.Hint()}
		}
		respondError(c, http.StatusNotFound, code, err.Error(), details)
	case domain.CodeConflict:
		respondError(c, http.StatusConflict, code, err.Error(), nil)
	default:
		respondError(c, http.StatusInternalServerError, domain.CodeInternal, "something went wrong", nil)
	}
}
