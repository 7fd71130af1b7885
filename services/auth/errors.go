package auth

import "fmt"

// Error codes the handlers map to HTTP statuses.
const (
	CodeValidation   = "validation"
	CodeUnauthorized = "unauthorized"
	CodeForbidden    = "forbidden"
	CodeConflict     = "conflict"
	CodeNotFound     = "notFound"
)

// AuthError is a workflow error with a code the transport layer understands.
type AuthError struct {
	Code    string
	Message string
	Fields  []string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newValidationError(msg string) error {
	return &AuthError{Code: CodeValidation, Message: msg}
}

// newFieldErrors wraps per-field validation messages.
func newFieldErrors(fields []string) error {
	return &AuthError{Code: CodeValidation, Message: "Validation failed", Fields: fields}
}

func newUnauthorizedError(msg string) error {
	return &AuthError{Code: CodeUnauthorized, Message: msg}
}

func newForbiddenError(msg string) error {
	return &AuthError{Code: CodeForbidden, Message: msg}
}

func newConflictError(msg string) error {
	return &AuthError{Code: CodeConflict, Message: msg}
}

func newNotFoundError(msg string) error {
	return &AuthError{Code: CodeNotFound, Message: msg}
}
