package intutil

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/hupe1980/colidx/array"
	"github.com/hupe1980/colidx/internal/bitutil"
)

// DetectUintWidth returns the smallest width in {1, 2, 4, 8}, no smaller than
// minWidth, that holds every valid value. validity may be nil, in which case
// every value is valid; otherwise bit i of validity governs values[i].
// With no valid values the result is minWidth.
//
// minWidth must be 1, 2, 4 or 8.
func DetectUintWidth[T array.Unsigned](values []T, validity []byte, minWidth uint8) uint8 {
	return detectUintWidth(values, validity, 0, minWidth)
}

// DetectIntWidth is the signed counterpart of DetectUintWidth. Signed width w
// holds [-2^(8w-1), 2^(8w-1)-1].
func DetectIntWidth[T array.Signed](values []T, validity []byte, minWidth uint8) uint8 {
	return detectIntWidth(values, validity, 0, minWidth)
}

// DetectDataWidth runs DetectIntWidth or DetectUintWidth over d according to
// its type, honoring d's offset and validity bitmap.
func DetectDataWidth(d *array.Data, minWidth uint8) (uint8, error) {
	v, off := d.Validity, d.Offset
	switch d.Type {
	case array.Int8:
		return detectIntWidth(array.Int8s(d), v, off, minWidth), nil
	case array.Int16:
		return detectIntWidth(array.Int16s(d), v, off, minWidth), nil
	case array.Int32:
		return detectIntWidth(array.Int32s(d), v, off, minWidth), nil
	case array.Int64:
		return detectIntWidth(array.Int64s(d), v, off, minWidth), nil
	case array.Uint8:
		return detectUintWidth(array.Uint8s(d), v, off, minWidth), nil
	case array.Uint16:
		return detectUintWidth(array.Uint16s(d), v, off, minWidth), nil
	case array.Uint32:
		return detectUintWidth(array.Uint32s(d), v, off, minWidth), nil
	case array.Uint64:
		return detectUintWidth(array.Uint64s(d), v, off, minWidth), nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedType, d.Type)
	}
}

func detectUintWidth[T array.Unsigned](values []T, validity []byte, offset int, minWidth uint8) uint8 {
	assertWidth(minWidth)
	if minWidth >= 8 {
		return 8
	}

	reduce := maxKernel[T]()
	var hi uint64
	for start, end := range batches(len(values)) {
		batch := values[start:end]
		var m uint64
		if validity == nil {
			m = uint64(reduce(batch))
		} else {
			valid := bitutil.PeekWord(validity, offset+start, end-start)
			switch valid {
			case 0:
				continue
			case bitutil.LowMask(end - start):
				m = uint64(reduce(batch))
			default:
				m = uint64(maxValid(batch, valid))
			}
		}
		if m > hi {
			hi = m
			if hi > math.MaxUint32 {
				return 8
			}
		}
	}
	return max(minWidth, uintWidth(hi))
}

func detectIntWidth[T array.Signed](values []T, validity []byte, offset int, minWidth uint8) uint8 {
	assertWidth(minWidth)
	if minWidth >= 8 {
		return 8
	}

	reduce := minMaxKernel[T]()
	// Zero fits every width, so it is a neutral starting point.
	var lo, hi int64
	for start, end := range batches(len(values)) {
		batch := values[start:end]
		var bl, bh T
		if validity == nil {
			bl, bh = reduce(batch)
		} else {
			valid := bitutil.PeekWord(validity, offset+start, end-start)
			switch valid {
			case 0:
				continue
			case bitutil.LowMask(end - start):
				bl, bh = reduce(batch)
			default:
				bl, bh = minMaxValid(batch, valid)
			}
		}
		lo, hi = min(lo, int64(bl)), max(hi, int64(bh))
		if lo < math.MinInt32 || hi > math.MaxInt32 {
			return 8
		}
	}
	return max(minWidth, intWidth(lo, hi))
}

// maxValid returns the maximum of the batch elements whose bit is set in
// valid, or 0 if none is.
func maxValid[T array.Unsigned](batch []T, valid uint64) T {
	var m T
	for ; valid != 0; valid &= valid - 1 {
		m = max(m, batch[bits.TrailingZeros64(valid)])
	}
	return m
}

// minMaxValid returns the extremes of the batch elements whose bit is set in
// valid, folded with zero.
func minMaxValid[T array.Signed](batch []T, valid uint64) (lo, hi T) {
	for ; valid != 0; valid &= valid - 1 {
		v := batch[bits.TrailingZeros64(valid)]
		lo, hi = min(lo, v), max(hi, v)
	}
	return lo, hi
}
