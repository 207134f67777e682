// Package apperr defines the domain error taxonomy. Usecases attach a Kind
// to the errors they raise; the HTTP boundary maps each kind to a status
// code in one place instead of per handler.
package apperr

import (
	"errors"
	"net/http"
)

// Kind classifies a domain error.
type Kind int

const (
	// KindInternal is the catch-all for unexpected failures. Its detail is
	// logged but never returned to the caller.
	KindInternal Kind = iota
	// KindValidation marks malformed input.
	KindValidation
	// KindDuplicate marks an attempt to create an already-existing record.
	KindDuplicate
	// KindUnauthorized marks bad credentials, invalid tokens or deleted users.
	KindUnauthorized
	// KindBadRequest marks a domain-rule violation.
	KindBadRequest
	// KindNotFound marks a missing resource.
	KindNotFound
)

// Error is a domain error with a kind and a client-safe message. The wrapped
// cause, if any, stays server-side.
type Error struct {
	kind Kind
	msg  string
	err  error
}

// New creates an Error with no underlying cause.
func New(kind Kind, msg string) *Error {
	return &Error{kind: kind, msg: msg}
}

// Wrap creates an Error that records err as its cause.
func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{kind: kind, msg: msg, err: err}
}

func (e *Error) Error() string {
	if e.err != nil {
		return e.msg + ": " + e.err.Error()
	}
	return e.msg
}

func (e *Error) Unwrap() error {
	return e.err
}

// KindOf returns the kind of err, or KindInternal when err carries none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.kind
	}
	return KindInternal
}

// Message returns the client-safe message for err. Untyped errors get a
// generic message so internal detail never leaks.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.msg
	}
	return "Something went wrong"
}

// Status maps an error to its HTTP status code. This is the single
// error-to-status table for the whole API surface.
func Status(err error) int {
	switch KindOf(err) {
	case KindValidation, KindDuplicate, KindBadRequest:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
