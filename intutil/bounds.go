package intutil

import (
	"fmt"
	"iter"
	"math"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/colidx/array"
	"github.com/hupe1980/colidx/internal/bitutil"
)

// IndexBoundsCheck verifies that every non-null index in indices lies in
// [0, upperLimit). It returns nil on success and an *IndexError for the
// lowest offending position otherwise.
//
// The validity bitmap is consulted whenever it is present, regardless of
// the cached null count. Values at null positions are never inspected.
func IndexBoundsCheck(indices *array.Data, upperLimit uint64) error {
	v, off := indices.Validity, indices.Offset
	switch indices.Type {
	case array.Int8:
		return checkSigned(array.Int8s(indices), v, off, upperLimit)
	case array.Int16:
		return checkSigned(array.Int16s(indices), v, off, upperLimit)
	case array.Int32:
		return checkSigned(array.Int32s(indices), v, off, upperLimit)
	case array.Int64:
		return checkSigned(array.Int64s(indices), v, off, upperLimit)
	case array.Uint8:
		return checkUnsigned(array.Uint8s(indices), v, off, upperLimit)
	case array.Uint16:
		return checkUnsigned(array.Uint16s(indices), v, off, upperLimit)
	case array.Uint32:
		return checkUnsigned(array.Uint32s(indices), v, off, upperLimit)
	case array.Uint64:
		return checkUnsigned(array.Uint64s(indices), v, off, upperLimit)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedType, indices.Type)
	}
}

// CheckIndexBounds is IndexBoundsCheck over a plain slice. Bit
// validityOffset+i of validity governs values[i]; a nil validity marks
// every value valid.
func CheckIndexBounds[T array.Integer](values []T, validity []byte, validityOffset int, upperLimit uint64) error {
	switch v := any(values).(type) {
	case []int8:
		return checkSigned(v, validity, validityOffset, upperLimit)
	case []int16:
		return checkSigned(v, validity, validityOffset, upperLimit)
	case []int32:
		return checkSigned(v, validity, validityOffset, upperLimit)
	case []int64:
		return checkSigned(v, validity, validityOffset, upperLimit)
	case []uint8:
		return checkUnsigned(v, validity, validityOffset, upperLimit)
	case []uint16:
		return checkUnsigned(v, validity, validityOffset, upperLimit)
	case []uint32:
		return checkUnsigned(v, validity, validityOffset, upperLimit)
	default:
		return checkUnsigned(any(values).([]uint64), validity, validityOffset, upperLimit)
	}
}

// CollectOutOfBounds returns the positions of all non-null indices outside
// [0, upperLimit). Positions are relative to indices; arrays longer than
// math.MaxUint32 return ErrPositionOverflow.
func CollectOutOfBounds(indices *array.Data, upperLimit uint64) (*roaring.Bitmap, error) {
	if uint64(indices.Length) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d elements", ErrPositionOverflow, indices.Length)
	}
	out := roaring.New()
	v, off := indices.Validity, indices.Offset
	switch indices.Type {
	case array.Int8:
		collectSigned(out, array.Int8s(indices), v, off, upperLimit)
	case array.Int16:
		collectSigned(out, array.Int16s(indices), v, off, upperLimit)
	case array.Int32:
		collectSigned(out, array.Int32s(indices), v, off, upperLimit)
	case array.Int64:
		collectSigned(out, array.Int64s(indices), v, off, upperLimit)
	case array.Uint8:
		collectUnsigned(out, array.Uint8s(indices), v, off, upperLimit)
	case array.Uint16:
		collectUnsigned(out, array.Uint16s(indices), v, off, upperLimit)
	case array.Uint32:
		collectUnsigned(out, array.Uint32s(indices), v, off, upperLimit)
	case array.Uint64:
		collectUnsigned(out, array.Uint64s(indices), v, off, upperLimit)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, indices.Type)
	}
	return out, nil
}

// suspectUnsigned yields the batches whose maximum, nulls included, reaches
// upperLimit. Batches it skips cannot contain a violation.
func suspectUnsigned[T array.Unsigned](values []T, upperLimit uint64) iter.Seq2[int, int] {
	reduce := maxKernel[T]()
	return func(yield func(int, int) bool) {
		for start, end := range batches(len(values)) {
			if uint64(reduce(values[start:end])) < upperLimit {
				continue
			}
			if !yield(start, end) {
				return
			}
		}
	}
}

// suspectSigned yields the batches holding a negative value or a value
// reaching upperLimit, nulls included.
func suspectSigned[T array.Signed](values []T, upperLimit uint64) iter.Seq2[int, int] {
	reduce := minMaxKernel[T]()
	return func(yield func(int, int) bool) {
		for start, end := range batches(len(values)) {
			lo, hi := reduce(values[start:end])
			if lo >= 0 && uint64(hi) < upperLimit {
				continue
			}
			if !yield(start, end) {
				return
			}
		}
	}
}

// validWord returns the validity bits of n elements starting at offset, all
// set when validity is absent.
func validWord(validity []byte, offset, n int) uint64 {
	if validity == nil {
		return bitutil.LowMask(n)
	}
	return bitutil.PeekWord(validity, offset, n)
}

func checkUnsigned[T array.Unsigned](values []T, validity []byte, offset int, upperLimit uint64) error {
	for start, end := range suspectUnsigned(values, upperLimit) {
		valid := validWord(validity, offset+start, end-start)
		for i, v := range values[start:end] {
			if uint64(v) >= upperLimit && valid&(1<<uint(i)) != 0 {
				return &IndexError{Position: start + i, Value: uint64(v), UpperLimit: upperLimit}
			}
		}
	}
	return nil
}

func checkSigned[T array.Signed](values []T, validity []byte, offset int, upperLimit uint64) error {
	for start, end := range suspectSigned(values, upperLimit) {
		valid := validWord(validity, offset+start, end-start)
		for i, v := range values[start:end] {
			if (v < 0 || uint64(v) >= upperLimit) && valid&(1<<uint(i)) != 0 {
				return &IndexError{Position: start + i, Value: uint64(int64(v)), Signed: true, UpperLimit: upperLimit}
			}
		}
	}
	return nil
}

func collectUnsigned[T array.Unsigned](out *roaring.Bitmap, values []T, validity []byte, offset int, upperLimit uint64) {
	for start, end := range suspectUnsigned(values, upperLimit) {
		valid := validWord(validity, offset+start, end-start)
		for i, v := range values[start:end] {
			if uint64(v) >= upperLimit && valid&(1<<uint(i)) != 0 {
				out.Add(uint32(start + i))
			}
		}
	}
}

func collectSigned[T array.Signed](out *roaring.Bitmap, values []T, validity []byte, offset int, upperLimit uint64) {
	for start, end := range suspectSigned(values, upperLimit) {
		valid := validWord(validity, offset+start, end-start)
		for i, v := range values[start:end] {
			if (v < 0 || uint64(v) >= upperLimit) && valid&(1<<uint(i)) != 0 {
				out.Add(uint32(start + i))
			}
		}
	}
}
