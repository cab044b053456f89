package smbus

import (
	"errors"
	"fmt"
)

// TransportError represents a bus-level failure: the transport returned
// an error or completed fewer messages than the transaction required.
type TransportError struct {
	// Op is the transfer that failed (e.g. "read40", "write32")
	Op string

	// Err is the underlying transport error
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsTransportError returns true if the error is or wraps a
// *TransportError.
func IsTransportError(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}
