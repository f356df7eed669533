// internal/util/errors.go
package util

import "errors"

// Common application-specific errors.
var (
	ErrNotFound       = errors.New("resource not found")
	ErrInvalidInput   = errors.New("invalid input provided")
	ErrUserNotFound   = errors.New("User not found")
	ErrDuplicateEntry = errors.New("duplicate entry") // For cases like creating a user with existing username
)

// AppError pairs a client-facing message with one of the sentinels above,
// so handlers can pick a status code with errors.Is and still echo the message.
type AppError struct {
	Kind    error
	Message string
}

func (e *AppError) Error() string { return e.Message }

func (e *AppError) Unwrap() error { return e.Kind }

// NewValidationError returns an ErrInvalidInput carrying msg.
func NewValidationError(msg string) error {
	return &AppError{Kind: ErrInvalidInput, Message: msg}
}

// NewConflictError returns an ErrDuplicateEntry carrying the store's message.
func NewConflictError(msg string) error {
	return &AppError{Kind: ErrDuplicateEntry, Message: msg}
}

// IsError reports whether any error in err's chain matches target.
func IsError(err, target error) bool {
	return errors.Is(err, target)
}

// Message returns the client-facing message of err if it carries one.
func Message(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
