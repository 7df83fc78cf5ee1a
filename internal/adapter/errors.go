package adapter

import (
	"errors"
	"fmt"
)

var (
	// ErrSessionExpired is returned for every HTTP 401, regardless of the
	// response body. Its text is shown to the user verbatim.
	ErrSessionExpired = errors.New("session expired, please sign in again")

	// ErrNoConnection is returned when the request never produced an HTTP
	// response (DNS failure, refused connection, timeout).
	ErrNoConnection = errors.New("no connection to server")
)

// APIError carries a non-2xx backend response. Message is the
// human-readable text extracted from the response body and is safe to
// display as-is.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// NewAPIError constructs an APIError with the fallback message for the given
// status when msg is empty.
func NewAPIError(status int, msg string) *APIError {
	if msg == "" {
		msg = fmt.Sprintf("error %d", status)
	}
	return &APIError{Status: status, Message: msg}
}
