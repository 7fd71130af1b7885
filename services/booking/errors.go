package booking

import "fmt"

// Error codes mapped to HTTP statuses at the handler boundary.
const (
	CodeNotFound   = "notFound"
	CodeConflict   = "conflict"
	CodeForbidden  = "forbidden"
	CodeValidation = "validation"
)

// BookingError carries a code so handlers can pick the right status.
type BookingError struct {
	Code    string
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newNotFoundError(msg string) error {
	return &BookingError{Code: CodeNotFound, Message: msg}
}

func newConflictError(msg string) error {
	return &BookingError{Code: CodeConflict, Message: msg}
}

func newValidationError(msg string) error {
	return &BookingError{Code: CodeValidation, Message: msg}
}

func newForbiddenError(msg string) error {
	return &BookingError{Code: CodeForbidden, Message: msg}
}
