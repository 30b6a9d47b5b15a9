package colidx

import (
	"errors"

	"github.com/hupe1980/colidx/intutil"
)

var (
	// ErrIndexOutOfBounds matches every out-of-bounds index error.
	ErrIndexOutOfBounds = intutil.ErrIndexOutOfBounds

	// ErrUnsupportedType is returned for array descriptors that do not hold
	// one of the eight integer types.
	ErrUnsupportedType = intutil.ErrUnsupportedType
)

// IndexError reports the first non-null index found outside the valid range.
type IndexError = intutil.IndexError

// IsIndexError reports whether err carries an *IndexError and returns it.
func IsIndexError(err error) (*IndexError, bool) {
	var ie *IndexError
	if errors.As(err, &ie) {
		return ie, true
	}
	return nil, false
}
