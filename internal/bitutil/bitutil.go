package bitutil

import (
	"encoding/binary"
	"math/bits"
)

// BytesForBits returns the number of bytes needed to hold n bits.
func BytesForBits(n int) int {
	return (n + 7) >> 3
}

// GetBit reports whether bit i is set.
func GetBit(b []byte, i int) bool {
	return b[i>>3]&(1<<(uint(i)&7)) != 0
}

// SetBit sets bit i.
func SetBit(b []byte, i int) {
	b[i>>3] |= 1 << (uint(i) & 7)
}

// ClearBit clears bit i.
func ClearBit(b []byte, i int) {
	b[i>>3] &^= 1 << (uint(i) & 7)
}

// SetBitTo sets bit i to v.
func SetBitTo(b []byte, i int, v bool) {
	if v {
		SetBit(b, i)
	} else {
		ClearBit(b, i)
	}
}

// SetBitsTo sets bits [start, start+length) to v.
func SetBitsTo(b []byte, start, length int, v bool) {
	if length <= 0 {
		return
	}
	end := start + length
	i := start

	// Leading partial byte
	for ; i < end && i&7 != 0; i++ {
		SetBitTo(b, i, v)
	}

	// Whole bytes
	fill := byte(0)
	if v {
		fill = 0xFF
	}
	for ; i+8 <= end; i += 8 {
		b[i>>3] = fill
	}

	// Trailing partial byte
	for ; i < end; i++ {
		SetBitTo(b, i, v)
	}
}

// PeekWord returns n (at most 64) bits starting at bit offset as the low bits
// of a word. Bit k of the result is bit offset+k of b. Bits above n are zero.
func PeekWord(b []byte, offset, n int) uint64 {
	if n <= 0 {
		return 0
	}
	start := offset >> 3
	shift := uint(offset & 7)

	if shift == 0 && n == 64 {
		return binary.LittleEndian.Uint64(b[start:])
	}

	nbytes := (int(shift) + n + 7) >> 3
	var lo uint64
	for k := 0; k < nbytes && k < 8; k++ {
		lo |= uint64(b[start+k]) << (8 * uint(k))
	}
	w := lo >> shift
	if nbytes > 8 {
		w |= uint64(b[start+8]) << (64 - shift)
	}
	return w & LowMask(n)
}

// LowMask returns a word with the low n bits set (n in [0, 64]).
func LowMask(n int) uint64 {
	if n >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << uint(n)) - 1
}

// CountSetBits returns the number of set bits in [offset, offset+length).
func CountSetBits(b []byte, offset, length int) int {
	count := 0
	for length > 0 {
		n := min(length, 64)
		count += bits.OnesCount64(PeekWord(b, offset, n))
		offset += n
		length -= n
	}
	return count
}

// CopyBits copies length bits of src starting at srcOffset into dst starting
// at bit 0. dst must hold BytesForBits(length) bytes.
func CopyBits(dst, src []byte, srcOffset, length int) {
	if srcOffset&7 == 0 {
		n := BytesForBits(length)
		copy(dst[:n], src[srcOffset>>3:])
		if tail := length & 7; tail != 0 {
			dst[n-1] &= byte(LowMask(tail))
		}
		return
	}
	for i := 0; i < length; i += 64 {
		n := min(length-i, 64)
		w := PeekWord(src, srcOffset+i, n)
		for k := 0; k < BytesForBits(n); k++ {
			dst[(i>>3)+k] = byte(w >> (8 * uint(k)))
		}
	}
}
