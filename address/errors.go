package address

import (
	"fmt"

	"github.com/zeebo/errs"
)

// Error is the error class for this package.
var Error = errs.Class("address")

// InvalidLengthError is returned when a decoded payload is not 21 bytes.
type InvalidLengthError struct {
	Length int
}

func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("address: invalid payload length: %d", e.Length)
}

// InvalidVersionError is returned when a decoded payload does not start with
// a known network version byte.
type InvalidVersionError struct {
	Version byte
}

func (e *InvalidVersionError) Error() string {
	return fmt.Sprintf("address: invalid version: %d", e.Version)
}
