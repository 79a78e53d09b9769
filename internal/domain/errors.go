package domain

import (
	"errors"
	"net/http"
)

// Kind classifies failures at the HTTP boundary.
type Kind int

const (
	KindStore Kind = iota
	KindValidation
	KindNotFound
	KindConflict
	KindMethodNotAllowed
	KindAuthentication
)

// Error carries a user-visible message and the kind used to pick the
// status code. Err holds internal detail for logs only.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// StatusCode maps the kind to its HTTP status.
func (e *Error) StatusCode() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case KindAuthentication:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func NewValidationError(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func NewNotFoundError(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func NewConflictError(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

func NewMethodNotAllowedError() *Error {
	return &Error{Kind: KindMethodNotAllowed, Message: "Method not allowed"}
}

func NewAuthenticationError(message string, err error) *Error {
	return &Error{Kind: KindAuthentication, Message: message, Err: err}
}

func NewStoreError(message string, err error) *Error {
	return &Error{Kind: KindStore, Message: message, Err: err}
}

// AsError extracts a *Error from err's chain.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
