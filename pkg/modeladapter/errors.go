package modeladapter

import (
	"fmt"
	"time"
)

// TimeoutError is returned when a request does not produce a response within
// the configured deadline.
type TimeoutError struct {
	After time.Duration
}

func (e *TimeoutError) Error() string {
	if e.After > 0 {
		return fmt.Sprintf("request timed out after %s", e.After)
	}
	return "request timed out"
}

// TransportError is returned when the connection cannot be established or is
// interrupted before a response arrives.
type TransportError struct {
	Op  string // Short description of the attempted operation.
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ServiceError is returned when the remote service responds with a
// non-success status. Body carries the response body verbatim.
type ServiceError struct {
	Status int
	Body   string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("service returned status %d: %s", e.Status, e.Body)
}

// MalformedResponseError is returned when a response body does not decode
// into the expected shape.
type MalformedResponseError struct {
	Err error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed response: %v", e.Err)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }
