package intutil

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/colidx/array"
	"github.com/hupe1980/colidx/internal/bitutil"
	"github.com/hupe1980/colidx/testutil"
)

func boundsCheck(t *testing.T, typ array.Type, literal string, upperLimit uint64) error {
	t.Helper()
	d, err := array.FromJSON(typ, literal)
	require.NoError(t, err)
	return IndexBoundsCheck(d, upperLimit)
}

func TestIndexBoundsCheckBatching(t *testing.T) {
	const length = 200

	d := array.New(array.Int16, length, true)
	values := array.Int16s(d)

	require.NoError(t, IndexBoundsCheck(d, 1))

	values[99] = 1
	err := IndexBoundsCheck(d, 1)
	require.ErrorIs(t, err, ErrIndexOutOfBounds)
	var ie *IndexError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, 99, ie.Position)
	assert.Equal(t, int64(1), ie.SignedValue())

	bitutil.ClearBit(d.Validity, 99)
	require.NoError(t, IndexBoundsCheck(d, 1))

	values[199] = 1
	err = IndexBoundsCheck(d, 1)
	require.ErrorIs(t, err, ErrIndexOutOfBounds)
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, 199, ie.Position)

	bitutil.ClearBit(d.Validity, 199)
	require.NoError(t, IndexBoundsCheck(d, 1))
}

func TestIndexBoundsCheckSignedInts(t *testing.T) {
	for _, typ := range []array.Type{array.Int8, array.Int16, array.Int32, array.Int64} {
		t.Run(typ.String(), func(t *testing.T) {
			assert.NoError(t, boundsCheck(t, typ, "[0, 0, 0]", 1))
			assert.ErrorIs(t, boundsCheck(t, typ, "[0, 0, 0]", 0), ErrIndexOutOfBounds)
			assert.ErrorIs(t, boundsCheck(t, typ, "[-1]", 1), ErrIndexOutOfBounds)
			assert.ErrorIs(t, boundsCheck(t, typ, "[-128]", 1), ErrIndexOutOfBounds)
			assert.ErrorIs(t, boundsCheck(t, typ, "[0, 100, 127]", 127), ErrIndexOutOfBounds)
			assert.NoError(t, boundsCheck(t, typ, "[0, 100, 127]", 128))
		})
	}

	assert.NoError(t, boundsCheck(t, array.Int16, "[0, 999, 999]", 1000))
	assert.Error(t, boundsCheck(t, array.Int16, "[0, 1000, 1000]", 1000))
	assert.NoError(t, boundsCheck(t, array.Int16, "[0, 32767]", 1<<15))

	assert.NoError(t, boundsCheck(t, array.Int32, "[0, 999999, 999999]", 1000000))
	assert.Error(t, boundsCheck(t, array.Int32, "[0, 1000000, 1000000]", 1000000))
	assert.NoError(t, boundsCheck(t, array.Int32, "[0, 2147483647]", 1<<31))

	assert.NoError(t, boundsCheck(t, array.Int64, "[0, 9999999999, 9999999999]", 10000000000))
	assert.Error(t, boundsCheck(t, array.Int64, "[0, 10000000000, 10000000000]", 10000000000))
}

func TestIndexBoundsCheckUnsignedInts(t *testing.T) {
	for _, typ := range []array.Type{array.Uint8, array.Uint16, array.Uint32, array.Uint64} {
		t.Run(typ.String(), func(t *testing.T) {
			assert.NoError(t, boundsCheck(t, typ, "[0, 0, 0]", 1))
			assert.ErrorIs(t, boundsCheck(t, typ, "[0, 0, 0]", 0), ErrIndexOutOfBounds)
			assert.ErrorIs(t, boundsCheck(t, typ, "[0, 100, 200]", 200), ErrIndexOutOfBounds)
			assert.NoError(t, boundsCheck(t, typ, "[0, 100, 200]", 201))
			assert.ErrorIs(t, boundsCheck(t, typ, "[0, 100, 127]", 127), ErrIndexOutOfBounds)
			assert.NoError(t, boundsCheck(t, typ, "[0, 100, 127]", 128))
		})
	}

	assert.NoError(t, boundsCheck(t, array.Uint8, "[255, 255, 255]", 1000))
	assert.Error(t, boundsCheck(t, array.Uint8, "[255, 255, 255]", 255))

	assert.NoError(t, boundsCheck(t, array.Uint16, "[0, 999, 999]", 1000))
	assert.Error(t, boundsCheck(t, array.Uint16, "[0, 1000, 1000]", 1000))
	assert.NoError(t, boundsCheck(t, array.Uint16, "[0, 65535]", 1<<16))

	assert.NoError(t, boundsCheck(t, array.Uint32, "[0, 999999, 999999]", 1000000))
	assert.Error(t, boundsCheck(t, array.Uint32, "[0, 1000000, 1000000]", 1000000))
	assert.NoError(t, boundsCheck(t, array.Uint32, "[0, 4294967295]", 1<<32))

	assert.NoError(t, boundsCheck(t, array.Uint64, "[0, 9999999999, 9999999999]", 10000000000))
	assert.Error(t, boundsCheck(t, array.Uint64, "[0, 10000000000, 10000000000]", 10000000000))
}

func TestIndexBoundsCheckEdgeCases(t *testing.T) {
	// Empty arrays pass any limit, including zero.
	assert.NoError(t, boundsCheck(t, array.Int32, "[]", 0))

	// All-null arrays pass even with out-of-range garbage.
	d := array.FromSlice([]int64{-5, 1 << 40}, bitmap(false, false))
	assert.NoError(t, IndexBoundsCheck(d, 0))

	// A null count of zero does not hide a present bitmap.
	d.NullN = 0
	assert.NoError(t, IndexBoundsCheck(d, 0))

	// Nulls that hold garbage do not mask a valid offender in the same batch.
	d = array.FromSlice([]uint32{1 << 30, 5, 1 << 30}, bitmap(false, true, false))
	err := IndexBoundsCheck(d, 5)
	var ie *IndexError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, 1, ie.Position)
	assert.Equal(t, uint64(5), ie.Value)
	assert.False(t, ie.Signed)
	assert.Equal(t, uint64(5), ie.UpperLimit)

	assert.ErrorIs(t, IndexBoundsCheck(&array.Data{Type: array.Invalid}, 1), ErrUnsupportedType)
}

func TestIndexBoundsCheckReportsFirst(t *testing.T) {
	d := array.MustFromJSON(array.Int8, "[0, null, -3, 9, 2]")

	err := IndexBoundsCheck(d, 5)
	var ie *IndexError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, 2, ie.Position)
	assert.True(t, ie.Signed)
	assert.Equal(t, int64(-3), ie.SignedValue())
	assert.Contains(t, ie.Error(), "index -3 out of bounds [0, 5) at position 2")
}

func TestIndexBoundsCheckSliced(t *testing.T) {
	// Positions are reported relative to the slice and the bitmap is read at
	// the slice offset.
	d := array.MustFromJSON(array.Int16, "[7, null, 1, 8]")
	s := d.Slice(1, 3)

	err := IndexBoundsCheck(s, 2)
	var ie *IndexError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, 2, ie.Position)
	assert.Equal(t, int64(8), ie.SignedValue())

	assert.NoError(t, IndexBoundsCheck(d.Slice(1, 2), 2))
}

func TestCheckIndexBounds(t *testing.T) {
	assert.NoError(t, CheckIndexBounds([]uint64{0, 1, 2}, nil, 0, 3))
	assert.ErrorIs(t, CheckIndexBounds([]uint64{0, 3}, nil, 0, 3), ErrIndexOutOfBounds)
	assert.ErrorIs(t, CheckIndexBounds([]int32{0, -1}, nil, 0, 3), ErrIndexOutOfBounds)

	// Bit 4 of the bitmap governs element 0 when validityOffset is 4.
	validity := []byte{0b1110_1111}
	assert.NoError(t, CheckIndexBounds([]uint8{200, 1}, validity, 4, 2))
}

// The batched check must agree with a naive per-element scan.
func TestIndexBoundsCheckMatchesNaive(t *testing.T) {
	rng := testutil.NewRNG(99)

	for _, typ := range []array.Type{array.Int8, array.Int16, array.Int32, array.Int64, array.Uint8, array.Uint16, array.Uint32, array.Uint64} {
		for _, nullProb := range []float64{0, 0.3, 0.99} {
			d := rng.RandomArray(typ, 300, nullProb)
			const limit = 100

			first := -1
			var all []uint32
			for i := range d.Length {
				if !d.IsValid(i) {
					continue
				}
				var bad bool
				if typ.IsSigned() {
					v := d.Int64At(i)
					bad = v < 0 || uint64(v) >= limit
				} else {
					bad = d.Uint64At(i) >= limit
				}
				if bad {
					all = append(all, uint32(i))
					if first < 0 {
						first = i
					}
				}
			}

			err := IndexBoundsCheck(d, limit)
			if first < 0 {
				assert.NoError(t, err, "%s nullProb=%v", typ, nullProb)
			} else {
				var ie *IndexError
				require.True(t, errors.As(err, &ie), "%s nullProb=%v", typ, nullProb)
				assert.Equal(t, first, ie.Position)
			}

			bm, err := CollectOutOfBounds(d, limit)
			require.NoError(t, err)
			if len(all) == 0 {
				assert.True(t, bm.IsEmpty())
			} else {
				assert.Equal(t, all, bm.ToArray())
			}
		}
	}
}

func BenchmarkIndexBoundsCheck(b *testing.B) {
	rng := testutil.NewRNG(1)
	idx := rng.ZipfIndices(1<<16, 1024, 1.1)
	d := array.FromSlice(idx, rng.Validity(len(idx), 0.05))

	for b.Loop() {
		if err := IndexBoundsCheck(d, 1024); err != nil {
			b.Fatal(err)
		}
	}
}
