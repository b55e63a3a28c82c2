// Package errs defines the error types returned to API clients.
//
// Handlers and pipes return *HTTPError values; the global error handler
// (the exception filter) renders them as an ErrorResponse so every
// failure reaches the client in the same JSON shape.
//
//   - Return consistent error shapes to API clients (JSON).
//   - Support field-level validation errors for route parameters.
//   - Play nicely with Go's standard errors package.
package errs

import (
	"strings"
	"time"
)

// FieldError represents a field-level validation error.
// Example:
//
//	{ "field": "id", "error": "must be a positive integer" }
type FieldError struct {
	// Field is the field name/key the error relates to (e.g. "id").
	Field string `json:"field"`

	// Error is the human-readable error message.
	Error string `json:"error"`
}

// HTTPError is the error type handlers return to produce a specific
// HTTP status.
//
// Fields:
//   - Code: machine-friendly error code (e.g. "BAD_REQUEST").
//   - Message: human-friendly message.
//   - Status: HTTP status code.
//   - Override: lets the error handler replace the message if it wants to.
//   - Errors: list of per-field errors (validation).
type HTTPError struct {
	Code     string       `json:"code"`
	Message  string       `json:"message"`
	Status   int          `json:"status"`
	Override bool         `json:"override"`
	Errors   []FieldError `json:"errors"`
}

// Error makes *HTTPError satisfy the built-in error interface.
func (e *HTTPError) Error() string {
	return e.Message
}

// Is reports true for any *HTTPError target; Code/Status are not compared.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// WithMessage returns a copy of this HTTPError with Message replaced.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Code:     e.Code,
		Message:  message,
		Status:   e.Status,
		Override: e.Override,
		Errors:   e.Errors,
	}
}

// ErrorResponse is the body written by the global error handler.
//
// It never carries the "success" key; clients tell errors apart by it.
type ErrorResponse struct {
	StatusCode int          `json:"statusCode"`
	Code       string       `json:"code"`
	Message    string       `json:"message"`
	Errors     []FieldError `json:"errors,omitempty"`
	Timestamp  time.Time    `json:"timestamp"`
	Path       string       `json:"path"`
}

// MakeUpperCaseWithUnderscores converts a string into UPPER_CASE_WITH_UNDERSCORES.
//
//	"Bad Request" -> "BAD_REQUEST"
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
