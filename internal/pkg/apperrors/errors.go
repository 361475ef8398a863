package apperrors

import (
	"errors"
	"fmt"
)

// Kind classifies a domain error so the transport layer can map it to a
// response status without inspecting messages.
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindAlreadyExists
	KindInvalidState
	KindInvalidInput
	KindProvider
)

// AppError is a domain error carrying a kind, a human-readable message
// and an optional wrapped cause.
type AppError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NotFound creates a not-found error
func NotFound(message string) *AppError {
	return &AppError{Kind: KindNotFound, Message: message}
}

// AlreadyExists creates an already-exists error
func AlreadyExists(message string) *AppError {
	return &AppError{Kind: KindAlreadyExists, Message: message}
}

// InvalidState creates an invalid-state error
func InvalidState(message string) *AppError {
	return &AppError{Kind: KindInvalidState, Message: message}
}

// InvalidInput creates an invalid-input error
func InvalidInput(message string) *AppError {
	return &AppError{Kind: KindInvalidInput, Message: message}
}

// Provider wraps a mapping provider failure. All provider failure modes
// (network, malformed response, rate limiting) collapse into this kind
// since the orchestrator has a single recovery policy for them.
func Provider(message string, err error) *AppError {
	return &AppError{Kind: KindProvider, Message: message, Err: err}
}

// Internal wraps an unexpected failure
func Internal(message string, err error) *AppError {
	return &AppError{Kind: KindInternal, Message: message, Err: err}
}

// KindOf returns the kind of err, or KindInternal when err is not an AppError
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// MessageOf returns the message of err, or its Error() string for plain errors
func MessageOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}

// Is reports whether err is an AppError of the given kind
func Is(err error, kind Kind) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}
