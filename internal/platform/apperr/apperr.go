// Package apperr defines the error taxonomy shared by all entity managers.
// Repositories and services wrap these sentinels so that handlers can map
// any failure to an HTTP status without knowing which entity produced it.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotFound reports that an update, delete, or lookup targeted a
	// surrogate id with no matching row.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateKey reports a national-ID uniqueness violation.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrReferenceNotFound reports that a dependent record referenced a
	// national ID with no matching patient or doctor.
	ErrReferenceNotFound = errors.New("reference not found")
)

// ValidationError reports a missing or malformed input field. No mutation
// has occurred when one is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// Validation builds a ValidationError for the given field.
func Validation(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// Required is shorthand for the common "required field missing" case.
func Required(field string) error {
	return Validation(field, "is required")
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// HTTPStatus maps a taxonomy error to the status code handlers respond with.
// Anything outside the taxonomy is a store-level failure and maps to 500.
func HTTPStatus(err error) int {
	switch {
	case IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicateKey):
		return http.StatusConflict
	case errors.Is(err, ErrReferenceNotFound):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
