package fobini

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is(). Together with ValidationError
// and UnknownError they form the complete, closed set of failures an API
// call can produce. Exactly one of them is returned per failed call.
var (
	// ErrInvalidURL is returned when the base URL plus endpoint path does
	// not form a valid absolute URL. No request is sent.
	ErrInvalidURL = errors.New("invalid url")

	// ErrNoConnection is returned when the request fails before any HTTP
	// response is received (connectivity loss, timeout).
	ErrNoConnection = errors.New("no internet connection")

	// ErrUnauthorized is returned on HTTP 401, and locally when an
	// auth-required endpoint is called without a stored access token.
	// Receiving it from the server clears the persisted session.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden is returned on HTTP 403.
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound is returned on HTTP 404.
	ErrNotFound = errors.New("not found")

	// ErrServer is returned on any HTTP 5xx status.
	ErrServer = errors.New("server error")

	// ErrDecoding is returned when a response body cannot be parsed into
	// the expected type, or a request payload cannot be serialized.
	ErrDecoding = errors.New("decoding error")

	// ErrValidation matches any *ValidationError via errors.Is.
	ErrValidation = errors.New("validation error")

	// ErrUnknown matches any *UnknownError via errors.Is.
	ErrUnknown = errors.New("unknown error")
)

// fallbackValidationMessage is used when a 400/422 body carries no
// recognizable message field. The server speaks Turkish; so does its
// fallback.
const fallbackValidationMessage = "Bilinmeyen hata oluştu"

// ValidationError is returned on HTTP 400/422, on a success:false envelope
// under a 2xx status, and on client-side payload validation failures. It
// carries the human-readable message extracted from the server payload.
type ValidationError struct {
	// Message is the server-provided (or fallback) description.
	Message string
}

// Error returns the validation message.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Is reports whether this error matches ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// UnknownError is the catch-all for failures outside the classified set.
// It carries the underlying error's description.
type UnknownError struct {
	// Message is the underlying error description.
	Message string
}

// Error returns a human-readable description.
func (e *UnknownError) Error() string {
	return fmt.Sprintf("unknown error: %s", e.Message)
}

// Is reports whether this error matches ErrUnknown.
func (e *UnknownError) Is(target error) bool {
	return target == ErrUnknown
}
