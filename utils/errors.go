package utils

import (
	"errors"
	"net/http"
)

// Kind classifies domain failures so handlers can map them to HTTP statuses.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindConflict
	KindUnauthenticated
	KindForbidden
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindUnauthenticated:
		return "authentication"
	case KindForbidden:
		return "authorization"
	case KindNotFound:
		return "not_found"
	default:
		return "internal"
	}
}

// AppError is the error type returned by services. Message is safe to show to clients;
// Err carries the underlying cause for logs.
type AppError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

// Is matches another *AppError of the same kind, so sentinel comparisons work with errors.Is.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Message == "" || t.Message == e.Message)
}

func Validation(msg string) error      { return &AppError{Kind: KindValidation, Message: msg} }
func Conflict(msg string) error        { return &AppError{Kind: KindConflict, Message: msg} }
func Unauthenticated(msg string) error { return &AppError{Kind: KindUnauthenticated, Message: msg} }
func Forbidden(msg string) error       { return &AppError{Kind: KindForbidden, Message: msg} }
func NotFound(msg string) error        { return &AppError{Kind: KindNotFound, Message: msg} }

// Internal wraps an unexpected failure. The client only sees msg.
func Internal(msg string, err error) error {
	return &AppError{Kind: KindInternal, Message: msg, Err: err}
}

// KindOf returns the kind of err, KindInternal for anything that is not an *AppError.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// ForbiddenStatus is the status used for failed privilege checks. The API historically
// answers 400 there; strict deployments switch it to 403.
var ForbiddenStatus = http.StatusBadRequest

// StatusOf maps err to an HTTP status code.
func StatusOf(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindForbidden:
		return ForbiddenStatus
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// MessageOf returns the client-facing message of err.
func MessageOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "internal server error"
}
