package domain

import "errors"

var (
	ErrNotFound = errors.New("resource not found")
)

// ExtractionErrorType classifies every failure mode the extraction pipeline
// can surface to a caller.
type ExtractionErrorType string

const (
	ErrInvalidURL         ExtractionErrorType = "INVALID_URL"
	ErrInvalidVideoID     ExtractionErrorType = "INVALID_VIDEO_ID"
	ErrFetchFailed        ExtractionErrorType = "FETCH_FAILED"
	ErrTimeout            ExtractionErrorType = "TIMEOUT"
	ErrPaywallDetected    ExtractionErrorType = "PAYWALL_DETECTED"
	ErrExtractionFailed   ExtractionErrorType = "EXTRACTION_FAILED"
	ErrNoRecipeFound      ExtractionErrorType = "NO_RECIPE_FOUND"
	ErrQuotaExceeded      ExtractionErrorType = "QUOTA_EXCEEDED"
	ErrConfigurationError ExtractionErrorType = "CONFIGURATION_ERROR"

	// Cookbook-image extraction can be declined by the model for two reasons a
	// user must tell apart: the page is not a recipe at all, or the photo is
	// illegible. Neither is retryable without a new photo.
	ErrNotARecipe  ExtractionErrorType = "NOT_A_RECIPE"
	ErrPoorQuality ExtractionErrorType = "POOR_QUALITY"
)

// ExtractionError is the typed failure value carried by ExtractionResult.
// Every failure path in the pipeline produces one; none are silently dropped.
type ExtractionError struct {
	Type    ExtractionErrorType `json:"type"`
	Message string              `json:"message"`
}

func (e *ExtractionError) Error() string {
	return string(e.Type) + ": " + e.Message
}

// NewExtractionError builds a typed extraction error.
func NewExtractionError(t ExtractionErrorType, msg string) *ExtractionError {
	return &ExtractionError{Type: t, Message: msg}
}

// AsExtractionError unwraps err into an *ExtractionError, or wraps a plain
// error as EXTRACTION_FAILED so callers always receive a typed value.
func AsExtractionError(err error) *ExtractionError {
	if err == nil {
		return nil
	}
	var ee *ExtractionError
	if errors.As(err, &ee) {
		return ee
	}
	return &ExtractionError{Type: ErrExtractionFailed, Message: err.Error()}
}
