package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/colidx"
	"github.com/hupe1980/colidx/array"
	"github.com/hupe1980/colidx/intutil"
)

func TestRemap(t *testing.T) {
	src := array.MustFromJSON(array.Int8, "[1, 3, 5, 0, 3, 2]")
	table := []int32{1111, 2222, 3333, 4444, 5555, 6666, 7777}

	got, err := Remap(src, table, 8000)
	require.NoError(t, err)
	assert.Equal(t, array.Int16, got.Type)
	assert.Equal(t, []int16{2222, 4444, 6666, 1111, 4444, 3333}, array.Int16s(got))
}

func TestRemapNulls(t *testing.T) {
	// The null slot holds a code far outside the table.
	src := array.FromSlice([]uint32{2, 1 << 30, 0}, bitmapOf(true, false, true))
	metrics := &colidx.BasicMetricsCollector{}

	got, err := Remap(src, []int32{7, 8, 9}, 10, WithMetrics(metrics))
	require.NoError(t, err)
	assert.Equal(t, array.Int8, got.Type)
	assert.Equal(t, 1, got.NullCount())
	assert.False(t, got.IsValid(1))
	assert.Equal(t, int64(9), got.Int64At(0))
	assert.Equal(t, int64(7), got.Int64At(2))
	assert.Equal(t, int64(1), metrics.GetStats().RemapCount)
}

func TestRemapEmptyTable(t *testing.T) {
	src := array.MustFromJSON(array.Int64, "[null, null]")

	got, err := Remap(src, nil, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, got.NullCount())

	_, err = Remap(array.MustFromJSON(array.Int64, "[0]"), nil, 0)
	assert.ErrorIs(t, err, intutil.ErrIndexOutOfBounds)
}

func TestRemapSliced(t *testing.T) {
	base := array.MustFromJSON(array.Uint16, "[9, null, 1, 0]")

	got, err := Remap(base.Slice(1, 3), []int32{100, 200}, 300, WithMinWidth(2))
	require.NoError(t, err)
	assert.Equal(t, array.Int16, got.Type)
	j, err := array.ToJSON(got)
	require.NoError(t, err)
	assert.JSONEq(t, "[null, 200, 100]", string(j))
}

func TestRemapRejects(t *testing.T) {
	src := array.MustFromJSON(array.Int16, "[0, 2]")

	_, err := Remap(src, []int32{5, 6}, 10)
	ie, ok := colidx.IsIndexError(err)
	require.True(t, ok)
	assert.Equal(t, 1, ie.Position)
	assert.Equal(t, uint64(2), ie.UpperLimit)

	// The table maps into a dictionary shorter than it claims.
	_, err = Remap(array.MustFromJSON(array.Int16, "[0, 1]"), []int32{5, 6, 11}, 10)
	assert.NoError(t, err)
	_, err = Remap(array.MustFromJSON(array.Int16, "[2]"), []int32{5, 6, 11}, 10)
	assert.ErrorIs(t, err, intutil.ErrIndexOutOfBounds)

	_, err = Remap(array.MustFromJSON(array.Int16, "[1]"), []int32{0, -1}, 10)
	assert.ErrorIs(t, err, intutil.ErrIndexOutOfBounds)
}

// Decode, remap and re-encode a block the way a dictionary unification
// pass would.
func TestDecodeRemapEncode(t *testing.T) {
	src := array.MustFromJSON(array.Uint8, "[0, 1, null, 2, 1]")
	block, err := NewEncoder().Encode(src, 3)
	require.NoError(t, err)

	d, err := NewDecoder().Decode(block)
	require.NoError(t, err)

	remapped, err := Remap(d, []int32{40000, 5, 70000}, 70001)
	require.NoError(t, err)
	assert.Equal(t, array.Int32, remapped.Type)

	block, err = NewEncoder().Encode(remapped, 70001)
	require.NoError(t, err)
	out, err := NewDecoder().Decode(block)
	require.NoError(t, err)

	j, err := array.ToJSON(out)
	require.NoError(t, err)
	assert.JSONEq(t, "[40000, 5, null, 70000, 5]", string(j))
}
