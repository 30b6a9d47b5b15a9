package codec

import "errors"

var (
	// ErrCorrupt is returned for blocks whose structure is inconsistent.
	ErrCorrupt = errors.New("codec: corrupt block")

	// ErrChecksum is returned when a block's CRC32-C does not match.
	ErrChecksum = errors.New("codec: checksum mismatch")

	// ErrUnsupported is returned for blocks using an unknown version, type,
	// compression or flag.
	ErrUnsupported = errors.New("codec: unsupported block")
)
