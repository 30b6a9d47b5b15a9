package intutil

import (
	"iter"
	"math"

	"github.com/hupe1980/colidx/array"
	"github.com/hupe1980/colidx/internal/invariants"
	"github.com/hupe1980/colidx/internal/simd"
)

// batchSize is the number of elements reduced together. One validity word
// covers exactly one batch.
const batchSize = 64

// batches yields the [start, end) bounds of consecutive batches covering n
// elements.
func batches(n int) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for start := 0; start < n; start += batchSize {
			if !yield(start, min(start+batchSize, n)) {
				return
			}
		}
	}
}

// maxKernel returns the dispatched max reduction for T.
func maxKernel[T array.Unsigned]() func([]T) T {
	var f any
	var zero T
	switch any(zero).(type) {
	case uint8:
		f = simd.MaxUint8
	case uint16:
		f = simd.MaxUint16
	case uint32:
		f = simd.MaxUint32
	default:
		f = simd.MaxUint64
	}
	return f.(func([]T) T)
}

// minMaxKernel returns the dispatched min/max reduction for T.
func minMaxKernel[T array.Signed]() func([]T) (T, T) {
	var f any
	var zero T
	switch any(zero).(type) {
	case int8:
		f = simd.MinMaxInt8
	case int16:
		f = simd.MinMaxInt16
	case int32:
		f = simd.MinMaxInt32
	default:
		f = simd.MinMaxInt64
	}
	return f.(func([]T) (T, T))
}

func assertWidth(w uint8) {
	invariants.Assertf(w == 1 || w == 2 || w == 4 || w == 8, "width must be 1, 2, 4 or 8, got %d", w)
}

// uintWidth returns the smallest width holding v.
func uintWidth(v uint64) uint8 {
	switch {
	case v <= math.MaxUint8:
		return 1
	case v <= math.MaxUint16:
		return 2
	case v <= math.MaxUint32:
		return 4
	default:
		return 8
	}
}

// intWidth returns the smallest width holding both lo and hi.
func intWidth(lo, hi int64) uint8 {
	switch {
	case lo >= math.MinInt8 && hi <= math.MaxInt8:
		return 1
	case lo >= math.MinInt16 && hi <= math.MaxInt16:
		return 2
	case lo >= math.MinInt32 && hi <= math.MaxInt32:
		return 4
	default:
		return 8
	}
}
