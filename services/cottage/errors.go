package cottage

import "fmt"

// Error codes the handlers map to HTTP statuses.
const (
	CodeValidation = "validation"
	CodeForbidden  = "forbidden"
	CodeConflict   = "conflict"
	CodeNotFound   = "notFound"
)

// CottageError is a workflow error with a code the transport layer understands.
type CottageError struct {
	Code    string
	Message string
	Fields  []string
}

func (e *CottageError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newValidationError(msg string) error {
	return &CottageError{Code: CodeValidation, Message: msg}
}

func newFieldErrors(fields []string) error {
	return &CottageError{Code: CodeValidation, Message: "Validation failed", Fields: fields}
}

func newForbiddenError(msg string) error {
	return &CottageError{Code: CodeForbidden, Message: msg}
}

func newConflictError(msg string) error {
	return &CottageError{Code: CodeConflict, Message: msg}
}

func newNotFoundError(msg string) error {
	return &CottageError{Code: CodeNotFound, Message: msg}
}
