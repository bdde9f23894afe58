// internal/pkg/errs/errs.go
package errs

import (
	"errors"
	"fmt"
)

// Sentinel errors for the store core. Callers match them with errors.Is;
// sites that fail wrap them with extra context via the helpers below.
var (
	// ErrValidation signals a rejected field value (negative price or stock,
	// empty name, non-positive quantity). The target entity is left unchanged.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidOperation signals a domain operation that cannot be applied,
	// such as purchasing more units than are in stock.
	ErrInvalidOperation = errors.New("invalid operation")

	// ErrIndexOutOfRange signals a catalog index outside [0, len).
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrUnknownVariant signals an unrecognized product type discriminator
	// during decode.
	ErrUnknownVariant = errors.New("unknown product variant")

	// ErrIO signals a filesystem or decode failure during save/load. A failed
	// load never replaces the caller's in-memory state.
	ErrIO = errors.New("storage i/o failure")
)

// Validation wraps ErrValidation with a formatted reason.
func Validation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// InvalidOperation wraps ErrInvalidOperation with a formatted reason.
func InvalidOperation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidOperation, fmt.Sprintf(format, args...))
}

// IndexOutOfRange wraps ErrIndexOutOfRange with the offending index and size.
func IndexOutOfRange(index, size int) error {
	return fmt.Errorf("%w: index %d, catalog size %d", ErrIndexOutOfRange, index, size)
}

// UnknownVariant wraps ErrUnknownVariant naming the offending discriminator.
func UnknownVariant(kind string) error {
	return fmt.Errorf("%w: %q", ErrUnknownVariant, kind)
}

// IO wraps ErrIO around an underlying filesystem or decode error.
func IO(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrIO, op, err)
}
