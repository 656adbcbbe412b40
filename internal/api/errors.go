package api

import "fmt"

// Error is the error type for backend failures. Server indicates whether
// the backend answered with success=false (carrying its own message) as
// opposed to a transport-level failure.
type Error struct {
	Endpoint string // path the call targeted, e.g. "/translate"
	Message  string // server-supplied message, empty for transport errors
	Server   bool
	Cause    error
}

func (e *Error) Error() string {
	switch {
	case e.Server && e.Message != "":
		return fmt.Sprintf("%s: %s", e.Endpoint, e.Message)
	case e.Server:
		return fmt.Sprintf("%s: request failed", e.Endpoint)
	case e.Cause != nil:
		return fmt.Sprintf("%s: %v", e.Endpoint, e.Cause)
	default:
		return fmt.Sprintf("%s: request failed", e.Endpoint)
	}
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// UserMessage returns the text shown to the user: the server's own message
// when it sent one, otherwise a generic fallback.
func (e *Error) UserMessage(fallback string) string {
	if e.Server && e.Message != "" {
		return e.Message
	}
	return fallback
}

func serverError(endpoint, message string) *Error {
	return &Error{Endpoint: endpoint, Message: message, Server: true}
}

func transportError(endpoint string, cause error) *Error {
	return &Error{Endpoint: endpoint, Cause: cause}
}
