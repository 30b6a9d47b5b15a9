package bitutil

import (
	"math/bits"

	"github.com/RoaringBitmap/roaring/v2"
)

// FromRoaring writes length validity bits into dst starting at bit offset:
// every position contained in nulls is cleared and every other position is
// set. Positions >= length are ignored. dst must hold
// BytesForBits(offset+length) bytes.
func FromRoaring(nulls *roaring.Bitmap, dst []byte, offset, length int) {
	SetBitsTo(dst, offset, length, true)
	if nulls == nil {
		return
	}
	it := nulls.Iterator()
	for it.HasNext() {
		pos := int(it.Next())
		if pos >= length {
			break
		}
		ClearBit(dst, offset+pos)
	}
}

// NullsToRoaring returns the positions in [0, length) whose validity bit
// (read at offset+position) is cleared.
func NullsToRoaring(b []byte, offset, length int) *roaring.Bitmap {
	rb := roaring.New()
	if b == nil {
		return rb
	}
	for i := 0; i < length; i += 64 {
		n := min(length-i, 64)
		nulls := ^PeekWord(b, offset+i, n) & LowMask(n)
		for nulls != 0 {
			k := bits.TrailingZeros64(nulls)
			rb.Add(uint32(i + k))
			nulls &= nulls - 1
		}
	}
	return rb
}
