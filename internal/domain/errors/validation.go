package errors

import (
	"net/http"
	"sort"
	"strings"
)

// FieldErrors maps a form field name to the message shown next to it.
// All violated fields are reported in one response so the user can fix
// the whole form at once.
type FieldErrors map[string]string

// ValidationError carries per-field messages for a rejected form. It does
// not abort anything beyond the submit it belongs to; the caller stays on
// the form with previously entered values retained.
type ValidationError struct {
	fields FieldErrors
}

// NewValidationError creates a ValidationError from the violated fields.
func NewValidationError(fields FieldErrors) *ValidationError {
	return &ValidationError{fields: fields}
}

// Fields returns the field -> message map.
func (e *ValidationError) Fields() FieldErrors {
	return e.fields
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return e.Message()
}

// HTTPCode returns the HTTP status code
func (e *ValidationError) HTTPCode() int {
	return http.StatusBadRequest
}

// ErrorCode returns the business error code
func (e *ValidationError) ErrorCode() string {
	return "VALIDATION_FAILED"
}

// Message returns the user-friendly error message
func (e *ValidationError) Message() string {
	return "Please correct the highlighted fields"
}

// Details lists the violated fields in a stable order.
func (e *ValidationError) Details() string {
	names := make([]string, 0, len(e.fields))
	for name := range e.fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+e.fields[name])
	}

	return strings.Join(parts, "; ")
}
