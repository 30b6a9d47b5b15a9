package mem

import (
	"unsafe"
)

// Alignment is the byte alignment of every buffer returned by AllocAligned.
const Alignment = 64

// PaddedLen rounds size up to a multiple of Alignment.
func PaddedLen(size int) int {
	return (size + Alignment - 1) &^ (Alignment - 1)
}

// AllocAligned allocates a zeroed byte slice of the given size whose first
// byte is 64-byte aligned and whose capacity is PaddedLen(size).
// Returns nil for size <= 0.
func AllocAligned(size int) []byte {
	if size <= 0 {
		return nil
	}

	padded := PaddedLen(size)
	buf := make([]byte, padded+Alignment)

	addr := uintptr(unsafe.Pointer(&buf[0])) //nolint:gosec // unsafe is required for memory alignment
	offset := int((Alignment - (addr & (Alignment - 1))) & (Alignment - 1))

	return buf[offset : offset+size : offset+padded]
}
