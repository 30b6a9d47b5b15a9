package intutil

import (
	"github.com/hupe1980/colidx/internal/bitutil"
	"github.com/hupe1980/colidx/testutil"
)

var allWidths = []uint8{1, 2, 4, 8}

// bitmap packs one validity flag per element into a bitmap.
func bitmap(valid ...bool) []byte {
	b := make([]byte, bitutil.BytesForBits(len(valid)))
	for i, v := range valid {
		bitutil.SetBitTo(b, i, v)
	}
	return b
}

// almostAllZeros returns n vectors of length n, vector i holding v at
// position i and zero elsewhere.
func almostAllZeros[T any](n int, v T) [][]T {
	out := make([][]T, n)
	for i := range out {
		vals := make([]T, n)
		vals[i] = v
		out[i] = vals
	}
	return out
}

type nullCase[T any] struct {
	values   []T
	validity []byte
}

// almostAllNull returns n vectors of length n, vector i holding v as its
// only valid element at position i and null elsewhere.
func almostAllNull[T any](n int, null, v T) []nullCase[T] {
	out := make([]nullCase[T], n)
	for i := range out {
		vals := make([]T, n)
		for j := range vals {
			vals[j] = null
		}
		vals[i] = v
		validity := make([]byte, bitutil.BytesForBits(n))
		bitutil.SetBit(validity, i)
		out[i] = nullCase[T]{values: vals, validity: validity}
	}
	return out
}

// pick returns n values drawn from base.
func pick[T any](rng *testutil.RNG, base []T, n int) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = base[rng.Intn(len(base))]
	}
	return out
}
