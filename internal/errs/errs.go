// Package errs defines the error types returned to API clients.
//
// Every failure that reaches the client is expressed as an HTTPError so the
// response shape stays consistent across endpoints: a machine-readable code,
// a human-readable message, the HTTP status, and optional field-level errors
// for validation failures.
package errs

import "strings"

// FieldError represents a single field-level validation error.
//
// Example:
//
//	{ "field": "email", "error": "is required" }
type FieldError struct {
	// Field is the field name the error relates to (e.g. "email").
	Field string `json:"field"`

	// Error is the human-readable error message.
	Error string `json:"error"`
}

// HTTPError is the error type serialized into API error responses.
//
// Fields:
//   - Code: machine-friendly error code (e.g. "CUSTOMER_ALREADY_EXISTS").
//   - Message: human-friendly message.
//   - Status: HTTP status code to respond with.
//   - Errors: per-field validation errors, when applicable.
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`

	// Errors holds field-level validation errors, typically for request payloads.
	Errors []FieldError `json:"errors,omitempty"`
}

// Error makes *HTTPError satisfy the built-in error interface.
func (e *HTTPError) Error() string {
	return e.Message
}

// Is reports whether target is also a *HTTPError.
//
// Note: it matches on type only, not on Code/Status, so
// errors.Is(err, &HTTPError{}) can be used as a category check.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// WithMessage returns a copy of this HTTPError with Message replaced.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Code:    e.Code,
		Message: message,
		Status:  e.Status,
		Errors:  e.Errors,
	}
}

// MakeUpperCaseWithUnderscores converts a string into UPPER_CASE_WITH_UNDERSCORES.
//
// Example:
//
//	"Bad Request" -> "BAD_REQUEST"
//
// Used to derive stable error codes from HTTP status text.
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
