package domain

import (
	"errors"
	"net/http"
)

// ErrorKind classifies failures so callers can decide how to surface them.
type ErrorKind string

const (
	KindValidation     ErrorKind = "validation"
	KindAuthentication ErrorKind = "authentication"
	KindSessionExpired ErrorKind = "session_expired"
	KindTransport      ErrorKind = "transport"
	KindUnknown        ErrorKind = "unknown"
)

// Sentinels for errors.Is. Any *APIError of the same kind matches.
var (
	ErrValidation     = &APIError{Kind: KindValidation, Message: "validation failed"}
	ErrAuthentication = &APIError{Kind: KindAuthentication, Message: "authentication failed"}
	ErrSessionExpired = &APIError{Kind: KindSessionExpired, Message: "session expired"}
	ErrTransport      = &APIError{Kind: KindTransport, Message: "transport error"}
	ErrUnknown        = &APIError{Kind: KindUnknown, Message: "unexpected error"}
)

// APIError is the normalized error returned by the backend client and the
// session. Message carries the backend-provided message when there is one,
// otherwise a transport-level description.
type APIError struct {
	Kind    ErrorKind
	Status  int
	Message string
	Cause   error

	// fromBackend is set when Message was supplied by the backend body.
	fromBackend bool
}

// NewAPIError builds an APIError whose message was produced locally.
func NewAPIError(kind ErrorKind, status int, message string, cause error) *APIError {
	return &APIError{Kind: kind, Status: status, Message: message, Cause: cause}
}

// BackendError builds an APIError carrying a message read from the backend.
func BackendError(kind ErrorKind, status int, message string) *APIError {
	return &APIError{Kind: kind, Status: status, Message: message, fromBackend: true}
}

func (e *APIError) Error() string {
	if e.Cause != nil && e.Message == "" {
		return e.Cause.Error()
	}
	if e.Status != 0 {
		return string(e.Kind) + " (" + http.StatusText(e.Status) + "): " + e.Message
	}
	return string(e.Kind) + ": " + e.Message
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *APIError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an APIError of the same kind.
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	return ok && t.Kind == e.Kind
}

// UserMessage returns the backend-supplied message carried by err, or
// fallback when there is none.
func UserMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if apiErr.fromBackend && apiErr.Message != "" {
			return apiErr.Message
		}
		// Authentication errors wrap the backend failure that caused them.
		if apiErr.Cause != nil {
			return UserMessage(apiErr.Cause, fallback)
		}
	}
	return fallback
}
