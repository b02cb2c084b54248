package usecase

import (
	"errors"
	"fmt"
)

// Record Store failure kinds. Use errors.Is against these; the concrete error
// carries the user-facing message.
var (
	ErrValidation   = errors.New("validation error")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
)

// Session and turn failures.
var (
	ErrOracleFailure         = errors.New("oracle failure")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrSessionNotFound       = errors.New("session not found")
	ErrSessionBusy           = errors.New("session busy")
	ErrEmptyUtterance        = errors.New("empty utterance")
	ErrAttachmentExpected    = errors.New("attachment expected")
	ErrNotAwaitingAttachment = errors.New("not awaiting attachment")
)

// OperationError is a Record Store failure with a message fit for the transcript.
type OperationError struct {
	Kind    error
	Message string
}

func (e *OperationError) Error() string {
	return e.Message
}

func (e *OperationError) Unwrap() error {
	return e.Kind
}

func opError(kind error, format string, args ...any) error {
	return &OperationError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}
