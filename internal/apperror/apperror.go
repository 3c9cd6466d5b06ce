// Package apperror defines the application's error taxonomy.
//
// Services return errors wrapping one of the sentinel values below; the
// handler layer is the single place where they are translated to HTTP
// status codes. Anything that doesn't match a sentinel is treated as an
// internal error and never exposed to the client.
package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrValidation     = errors.New("validation error")
	ErrAuthentication = errors.New("authentication error")
)

type AppError struct {
	Err     error  // sentinel this error wraps
	Message string // human-readable error message
	Field   string // optional: field causing the error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NotFound(resource, id string) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("%s not found with id %s", resource, id),
	}
}

func ValidationFailed(field, message string) *AppError {
	return &AppError{
		Err:     ErrValidation,
		Message: message,
		Field:   field,
	}
}

// Authentication returns an AppError for failed credential or token checks.
// The message is always the same generic one — it must not reveal whether
// the email, the password, or the token was the part that failed.
func Authentication() *AppError {
	return &AppError{
		Err:     ErrAuthentication,
		Message: "Authentication error!",
	}
}
