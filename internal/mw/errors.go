package mw

import "fmt"

// ErrorKind classifies upstream failures for logging and counters.
type ErrorKind string

const (
	ErrTransport ErrorKind = "transport" // network error, timeout
	ErrStatus    ErrorKind = "status"    // non-2xx response
	ErrDecode    ErrorKind = "decode"    // body is not the expected JSON
)

// Error wraps a failed upstream call.
type Error struct {
	Kind     ErrorKind
	Endpoint string // lookup, autocomplete, popular
	Status   int
	Err      error
}

func (e *Error) Error() string {
	if e.Kind == ErrStatus {
		return fmt.Sprintf("mw %s: status %d: %v", e.Endpoint, e.Status, e.Err)
	}
	return fmt.Sprintf("mw %s: %s: %v", e.Endpoint, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }
