package errs

import (
	"net/http"
)

// codeFor derives the default error code from a status, e.g. 409 -> "CONFLICT".
func codeFor(status int) string {
	return MakeUpperCaseWithUnderscores(http.StatusText(status))
}

func newError(status int, message string, override bool, code *string, errors []FieldError) *HTTPError {
	formattedCode := codeFor(status)
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:     formattedCode,
		Message:  message,
		Status:   status,
		Override: override,
		Errors:   errors,
	}
}

// NewHTTPError creates an HTTPError for an arbitrary status with the
// status-derived code.
func NewHTTPError(status int, message string) *HTTPError {
	return newError(status, message, false, nil, nil)
}

// NewBadRequestError creates a 400. code is optional (nil means
// "BAD_REQUEST"); errors carries field-level validation failures.
func NewBadRequestError(message string, override bool, code *string, errors []FieldError) *HTTPError {
	return newError(http.StatusBadRequest, message, override, code, errors)
}

// NewNotFoundError creates a 404.
func NewNotFoundError(message string, override bool, code *string) *HTTPError {
	return newError(http.StatusNotFound, message, override, code, nil)
}

// NewInternalServerError creates a 500 whose message is the generic
// status text; the cause is only ever logged.
func NewInternalServerError() *HTTPError {
	return NewHTTPError(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}

// ValidationError converts a generic validation error into a 400.
func ValidationError(err error) *HTTPError {
	return NewBadRequestError("Validation failed: "+err.Error(), false, nil, nil)
}
