package models

import "fmt"

// ValidationError reports bad input caught before any network call: an empty
// cart, a missing delivery field, a mixed-restaurant cart. It is surfaced
// inline to the caller and never logged remotely.
type ValidationError struct {
	Message string
}

func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string {
	return e.Message
}

// TransportError is a network failure or a non-2xx reply from the order
// service. The cart is left untouched so the user can retry; Message carries
// the service's human-readable text when the reply included one.
type TransportError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
	}
	return e.Message
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// MalformedResponseError means the service replied with a body that is not
// valid JSON. Users see it as a transport failure; it stays a distinct type
// so diagnostics can tell the two apart.
type MalformedResponseError struct {
	Err error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("order service returned a malformed response: %v", e.Err)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}
