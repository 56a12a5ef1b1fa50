package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"forkful/internal/domain"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondCreated sends a 201 success response.
func RespondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{Success: true, Data: data})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// RespondExtractionError maps a typed extraction error to an HTTP status and
// sends it in the envelope. The type string doubles as the error code so
// clients can branch without parsing messages.
func RespondExtractionError(c *gin.Context, err *domain.ExtractionError) {
	c.JSON(extractionStatus(err.Type), APIResponse{
		Success: false,
		Error:   &APIError{Code: string(err.Type), Message: err.Message},
	})
}

func extractionStatus(t domain.ExtractionErrorType) int {
	switch t {
	case domain.ErrInvalidURL, domain.ErrInvalidVideoID:
		return http.StatusBadRequest
	case domain.ErrTimeout:
		return http.StatusGatewayTimeout
	case domain.ErrQuotaExceeded:
		return http.StatusTooManyRequests
	case domain.ErrPaywallDetected, domain.ErrNoRecipeFound, domain.ErrNotARecipe, domain.ErrPoorQuality:
		return http.StatusUnprocessableEntity
	case domain.ErrConfigurationError:
		return http.StatusServiceUnavailable
	case domain.ErrFetchFailed, domain.ErrExtractionFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// MapDomainError translates plain domain errors to HTTP responses.
func MapDomainError(err error) (status int, code, msg string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND", "resource not found"
	default:
		return http.StatusInternalServerError, "INTERNAL", "internal error"
	}
}
