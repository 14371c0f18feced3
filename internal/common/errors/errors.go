// Package errors provides standardized error handling for the inventory
// risk API.
package errors

import (
	"fmt"
	"net/http"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeValidationFailed    ErrorCode = "VALIDATION_FAILED"
	ErrCodeArtifactUnavailable ErrorCode = "ARTIFACT_UNAVAILABLE"
	ErrCodeArtifactCorrupt     ErrorCode = "ARTIFACT_CORRUPT"
	ErrCodeCatalogUnavailable  ErrorCode = "CATALOG_UNAVAILABLE"
	ErrCodeProductNotFound     ErrorCode = "PRODUCT_NOT_FOUND"
)

// ServiceError is a structured application error.
type ServiceError struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	Details   []string  `json:"details,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("ServiceError[%s]: %s", e.Code, e.Message)
}

// NewValidationFailedError creates a request validation error with
// per-field detail messages.
func NewValidationFailedError(details []string) *ServiceError {
	return &ServiceError{
		Code:      ErrCodeValidationFailed,
		Message:   "Request validation failed",
		Details:   details,
		Timestamp: time.Now().UTC(),
	}
}

// NewArtifactUnavailableError records that no classifier artifact could
// be loaded. This is a startup degradation notice, never surfaced to
// end users.
func NewArtifactUnavailableError(err error) *ServiceError {
	return &ServiceError{
		Code:      ErrCodeArtifactUnavailable,
		Message:   "Classifier artifact unavailable, scoring falls back to rules",
		Details:   []string{err.Error()},
		Timestamp: time.Now().UTC(),
	}
}

// NewCatalogUnavailableError creates a catalog backend error.
func NewCatalogUnavailableError(err error) *ServiceError {
	return &ServiceError{
		Code:      ErrCodeCatalogUnavailable,
		Message:   "Product catalog is unavailable",
		Details:   []string{err.Error()},
		Timestamp: time.Now().UTC(),
	}
}

// NewProductNotFoundError creates a not-found error for a catalog id.
func NewProductNotFoundError(id string) *ServiceError {
	return &ServiceError{
		Code:      ErrCodeProductNotFound,
		Message:   "Product not found",
		Details:   []string{fmt.Sprintf("id: %s", id)},
		Timestamp: time.Now().UTC(),
	}
}

// HTTPStatus maps an error code to the status the API layer responds
// with.
func HTTPStatus(code ErrorCode) int {
	switch code {
	case ErrCodeValidationFailed:
		return http.StatusBadRequest
	case ErrCodeProductNotFound:
		return http.StatusNotFound
	case ErrCodeCatalogUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// ErrorResponse is the wire shape for API errors.
type ErrorResponse struct {
	Error *ServiceError `json:"error"`
}

// ToResponse wraps a ServiceError for serialization.
func (e *ServiceError) ToResponse() ErrorResponse {
	return ErrorResponse{Error: e}
}
