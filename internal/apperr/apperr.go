// Package apperr maps failures to client-safe HTTP errors. The client only
// ever sees Message and Fields; Cause stays in server-side logs.
package apperr

import (
	"errors"
	"net/http"
)

type Kind int

const (
	KindInternal Kind = iota
	KindBadRequest
	KindValidation
	KindNotFound
	KindMethodNotAllowed
	KindTooManyRequests
)

func (k Kind) String() string {
	switch k {
	case KindBadRequest:
		return "bad_request"
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindMethodNotAllowed:
		return "method_not_allowed"
	case KindTooManyRequests:
		return "too_many_requests"
	default:
		return "internal"
	}
}

// Status returns the HTTP status code for the kind.
func (k Kind) Status() int {
	switch k {
	case KindBadRequest, KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case KindTooManyRequests:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

const internalMessage = "Internal server error"

type Error struct {
	Kind    Kind
	Message string
	Fields  map[string]string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Body is the JSON payload sent to the client.
func (e *Error) Body() map[string]any {
	body := map[string]any{"error": e.Message}
	if len(e.Fields) > 0 {
		body["fields"] = e.Fields
	}
	return body
}

func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func BadRequest(msg string) *Error {
	return &Error{Kind: KindBadRequest, Message: msg}
}

func MethodNotAllowed() *Error {
	return &Error{Kind: KindMethodNotAllowed, Message: "Method not allowed"}
}

func TooManyRequests() *Error {
	return &Error{Kind: KindTooManyRequests, Message: "Rate limit exceeded"}
}

// Validation reports which request fields failed and why.
func Validation(fields map[string]string) *Error {
	return &Error{Kind: KindValidation, Message: "Invalid request", Fields: fields}
}

// Internal wraps an unexpected failure behind a generic message.
func Internal(cause error) *Error {
	return &Error{Kind: KindInternal, Message: internalMessage, Cause: cause}
}

// From converts any error into an *Error. Errors that are not already
// classified become internal.
func From(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Internal(err)
}
