package admin

import "fmt"

// Error codes the handlers map to HTTP statuses.
const (
	CodeValidation = "validation"
	CodeConflict   = "conflict"
	CodeNotFound   = "notFound"
)

// AdminError is a workflow error with a code the transport layer understands.
type AdminError struct {
	Code    string
	Message string
	Fields  []string
}

func (e *AdminError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newValidationError(msg string) error {
	return &AdminError{Code: CodeValidation, Message: msg}
}

func newFieldErrors(fields []string) error {
	return &AdminError{Code: CodeValidation, Message: "Validation failed", Fields: fields}
}

func newConflictError(msg string) error {
	return &AdminError{Code: CodeConflict, Message: msg}
}

func newNotFoundError(msg string) error {
	return &AdminError{Code: CodeNotFound, Message: msg}
}
