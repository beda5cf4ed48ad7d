package errorutil

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5"
)

// DomainError standardizes application errors.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    map[string]any
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int, details map[string]any) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status, Details: details}
}

// NewValidationError flags malformed input. Never retried; the caller
// corrects and resubmits.
func NewValidationError(message string, details map[string]any) error {
	return NewDomainError("VALIDATION_FAILED", message, http.StatusBadRequest, details)
}

// NewAuthorizationError flags a caller lacking privilege for a gated
// operation.
func NewAuthorizationError(message string) error {
	return NewDomainError("FORBIDDEN", message, http.StatusForbidden, nil)
}

// NewStateError flags an illegal transition against current record state.
// The caller should refresh and re-check before retrying.
func NewStateError(message string, details map[string]any) error {
	return NewDomainError("CONFLICT", message, http.StatusConflict, details)
}

func NewNotFound(resource string, details map[string]any) error {
	if details == nil {
		details = map[string]any{}
	}
	return &DomainError{
		Code:       "NOT_FOUND",
		Message:    fmt.Sprintf("%s not found", resource),
		HTTPStatus: http.StatusNotFound,
		Details:    details,
	}
}

func NewUnauthorized(message string) error {
	return NewDomainError("UNAUTHORIZED", message, http.StatusUnauthorized, nil)
}

// NewStoreError wraps a failure of the backing store. Retryable by the
// caller with backoff; never hidden behind default values on mutations.
func NewStoreError(err error) error {
	return &DomainError{
		Code:       "STORE_ERROR",
		Message:    "persistent store unavailable",
		HTTPStatus: http.StatusServiceUnavailable,
		Err:        err,
	}
}

func NewInternalError(err error) error {
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// IsValidation reports whether err carries the validation code.
func IsValidation(err error) bool { return hasCode(err, "VALIDATION_FAILED") }

// IsAuthorization reports whether err carries the forbidden code.
func IsAuthorization(err error) bool { return hasCode(err, "FORBIDDEN") }

// IsState reports whether err carries the conflict code.
func IsState(err error) bool { return hasCode(err, "CONFLICT") }

// IsNotFound reports whether err carries the not-found code.
func IsNotFound(err error) bool { return hasCode(err, "NOT_FOUND") }

// IsUnauthorized reports whether err carries the unauthorized code.
func IsUnauthorized(err error) bool { return hasCode(err, "UNAUTHORIZED") }

// IsStore reports whether err carries the store-error code.
func IsStore(err error) bool { return hasCode(err, "STORE_ERROR") }

func hasCode(err error, code string) bool {
	var domainErr *DomainError
	return errors.As(err, &domainErr) && domainErr.Code == code
}

// ToDomainError converts generic errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	if errors.Is(err, pgx.ErrNoRows) {
		if de, ok := NewNotFound("resource", nil).(*DomainError); ok {
			return de
		}
	}
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func MapError(err error) error {
	return ToDomainError(err)
}
