package solarsys

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is.
var (
	// ErrUnexpectedStatus is wrapped by a TransportError when the server
	// answers with a non-2xx status.
	ErrUnexpectedStatus = errors.New("unexpected status")

	// ErrMissingField is wrapped by a DecodeError when a required field
	// (name or id) is absent or not a string.
	ErrMissingField = errors.New("missing required field")
)

// TransportError reports a failed HTTP round trip: the network was
// unreachable, the connection failed, the body could not be read, or the
// server returned a non-success status.
type TransportError struct {
	Op         string // "GET"
	URL        string
	StatusCode int // 0 when no response was received
	Err        error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.URL, e.Err)
}

// Unwrap returns the underlying error.
func (e *TransportError) Unwrap() error { return e.Err }

// DecodeError reports a response body that does not match the expected
// JSON shape.
type DecodeError struct {
	URL string // empty when decoding raw bytes directly
	Err error
}

func (e *DecodeError) Error() string {
	if e.URL != "" {
		return fmt.Sprintf("decode %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("decode: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *DecodeError) Unwrap() error { return e.Err }

// IsTransport reports whether err is or wraps a TransportError.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// IsDecode reports whether err is or wraps a DecodeError.
func IsDecode(err error) bool {
	var de *DecodeError
	return errors.As(err, &de)
}

func missingField(name string) error {
	return fmt.Errorf("%w %q", ErrMissingField, name)
}
