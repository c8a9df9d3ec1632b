package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies failures so the HTTP layer can pick a status code
// without knowing which component produced the error.
type ErrorKind string

const (
	KindValidation   ErrorKind = "validation"
	KindUnauthorized ErrorKind = "unauthorized"
	KindForbidden    ErrorKind = "forbidden"
	KindNotFound     ErrorKind = "not_found"
	KindConflict     ErrorKind = "conflict"
	KindPrecondition ErrorKind = "precondition"
	KindInternal     ErrorKind = "internal"
)

// Error is a classified error. Two Errors match under errors.Is when their
// kinds and messages are equal, so sentinels can be wrapped with context.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
	Details map[string]any
}

// NewError creates a classified error.
func NewError(kind ErrorKind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// Validation is a shorthand for a validation error with a formatted message.
func Validation(format string, args ...any) *Error {
	return NewError(KindValidation, fmt.Sprintf(format, args...), nil)
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Message == t.Message
}

// WithDetail attaches a detail to a copy of the error.
func (e *Error) WithDetail(key string, value any) *Error {
	cp := *e
	cp.Details = make(map[string]any, len(e.Details)+1)
	for k, v := range e.Details {
		cp.Details[k] = v
	}
	cp.Details[key] = value
	return &cp
}

// KindOf returns the kind of the first classified error in err's chain, or
// KindInternal when there is none.
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}

var (
	ErrUnauthorized = NewError(KindUnauthorized, "authentication required", nil)
	ErrForbidden    = NewError(KindForbidden, "insufficient permissions", nil)

	ErrCampaignNotFound = NewError(KindNotFound, "campaign not found", nil)
	ErrUploadNotFound   = NewError(KindNotFound, "upload not found", nil)
	ErrPostNotFound     = NewError(KindNotFound, "post not found", nil)
	ErrVariantNotFound  = NewError(KindNotFound, "variant not found", nil)
	ErrVersionNotFound  = NewError(KindNotFound, "trust version not found", nil)
	ErrNoActiveVersion  = NewError(KindNotFound, "no active trust version", nil)

	ErrAlreadyActive     = NewError(KindPrecondition, "version is already active", nil)
	ErrNoRollbackTarget  = NewError(KindPrecondition, "no earlier version to roll back to", nil)
	ErrInvalidTransition = NewError(KindValidation, "invalid state transition", nil)
	ErrUnknownClient     = NewError(KindValidation, "unknown client_id", nil)
)
