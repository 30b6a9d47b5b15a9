package intutil

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfBounds is the sentinel matched by every *IndexError.
var ErrIndexOutOfBounds = errors.New("index out of bounds")

// IndexError reports the first non-null index found outside [0, UpperLimit).
type IndexError struct {
	// Position is the element position within the checked array.
	Position int
	// Value holds the raw index, sign-extended when Signed is true.
	Value uint64
	// Signed reports whether the index array has a signed type.
	Signed bool
	// UpperLimit is the exclusive bound that was violated.
	UpperLimit uint64
}

func (e *IndexError) Error() string {
	if e.Signed {
		return fmt.Sprintf("index %d out of bounds [0, %d) at position %d", int64(e.Value), e.UpperLimit, e.Position)
	}
	return fmt.Sprintf("index %d out of bounds [0, %d) at position %d", e.Value, e.UpperLimit, e.Position)
}

// Unwrap returns ErrIndexOutOfBounds.
func (e *IndexError) Unwrap() error { return ErrIndexOutOfBounds }

// SignedValue returns the offending index as an int64.
func (e *IndexError) SignedValue() int64 { return int64(e.Value) }

// ErrUnsupportedType is returned when an array descriptor does not hold one of
// the eight integer types.
var ErrUnsupportedType = errors.New("unsupported index type")

// ErrPositionOverflow is returned when positions do not fit a 32-bit bitmap.
var ErrPositionOverflow = errors.New("position does not fit in 32 bits")
