package bitutil

import (
	"math/rand"
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetGetClear(t *testing.T) {
	b := make([]byte, BytesForBits(20))
	SetBit(b, 0)
	SetBit(b, 9)
	SetBit(b, 19)

	assert.True(t, GetBit(b, 0))
	assert.True(t, GetBit(b, 9))
	assert.True(t, GetBit(b, 19))
	assert.False(t, GetBit(b, 1))
	assert.Equal(t, []byte{0x01, 0x02, 0x08}, b)

	ClearBit(b, 9)
	assert.False(t, GetBit(b, 9))
	assert.Equal(t, 2, CountSetBits(b, 0, 20))
}

func TestBytesForBits(t *testing.T) {
	tests := []struct {
		bits int
		want int
	}{
		{0, 0}, {1, 1}, {7, 1}, {8, 1}, {9, 2}, {64, 8}, {65, 9}, {200, 25},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, BytesForBits(tc.bits), "bits=%d", tc.bits)
	}
}

func TestSetBitsTo(t *testing.T) {
	for _, start := range []int{0, 1, 7, 8, 13} {
		for _, length := range []int{0, 1, 5, 8, 17, 64, 70} {
			b := make([]byte, BytesForBits(start+length+9))
			SetBitsTo(b, start, length, true)
			for i := 0; i < len(b)*8; i++ {
				want := i >= start && i < start+length
				require.Equal(t, want, GetBit(b, i), "start=%d length=%d bit=%d", start, length, i)
			}
			assert.Equal(t, length, CountSetBits(b, 0, len(b)*8))

			SetBitsTo(b, start, length, false)
			assert.Equal(t, 0, CountSetBits(b, 0, len(b)*8))
		}
	}
}

func TestPeekWord(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	b := make([]byte, 40)
	rng.Read(b)

	for _, offset := range []int{0, 1, 3, 8, 9, 63, 64, 100} {
		for _, n := range []int{1, 7, 8, 33, 63, 64} {
			if offset+n > len(b)*8 {
				continue
			}
			w := PeekWord(b, offset, n)
			for k := 0; k < 64; k++ {
				want := k < n && GetBit(b, offset+k)
				require.Equal(t, want, w&(1<<uint(k)) != 0, "offset=%d n=%d k=%d", offset, n, k)
			}
		}
	}
	assert.Equal(t, uint64(0), PeekWord(b, 5, 0))
}

func TestLowMask(t *testing.T) {
	assert.Equal(t, uint64(0), LowMask(0))
	assert.Equal(t, uint64(1), LowMask(1))
	assert.Equal(t, uint64(0xFF), LowMask(8))
	assert.Equal(t, ^uint64(0), LowMask(64))
}

func TestCopyBits(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	src := make([]byte, 32)
	rng.Read(src)

	for _, offset := range []int{0, 3, 8, 17} {
		for _, length := range []int{1, 9, 64, 100, 130} {
			if offset+length > len(src)*8 {
				continue
			}
			dst := make([]byte, BytesForBits(length))
			CopyBits(dst, src, offset, length)
			for i := 0; i < length; i++ {
				require.Equal(t, GetBit(src, offset+i), GetBit(dst, i), "offset=%d length=%d i=%d", offset, length, i)
			}
			for i := length; i < len(dst)*8; i++ {
				require.False(t, GetBit(dst, i), "padding bit %d must be clear", i)
			}
		}
	}
}

func TestRoaringRoundTrip(t *testing.T) {
	nulls := roaring.BitmapOf(0, 5, 64, 99, 150)
	const length = 100

	b := make([]byte, BytesForBits(length))
	FromRoaring(nulls, b, 0, length)

	assert.False(t, GetBit(b, 0))
	assert.False(t, GetBit(b, 99))
	assert.True(t, GetBit(b, 1))
	assert.Equal(t, length-4, CountSetBits(b, 0, length))

	got := NullsToRoaring(b, 0, length)
	assert.Equal(t, []uint32{0, 5, 64, 99}, got.ToArray())

	t.Run("nil nulls", func(t *testing.T) {
		b := make([]byte, BytesForBits(10))
		FromRoaring(nil, b, 0, 10)
		assert.Equal(t, 10, CountSetBits(b, 0, 10))
	})

	t.Run("offset", func(t *testing.T) {
		got := NullsToRoaring(b, 60, 10)
		assert.Equal(t, []uint32{4}, got.ToArray())

		shifted := make([]byte, BytesForBits(13+length))
		FromRoaring(nulls, shifted, 13, length)
		assert.False(t, GetBit(shifted, 0), "bits before offset stay clear")
		assert.False(t, GetBit(shifted, 13+5))
		assert.True(t, GetBit(shifted, 13+6))
		assert.Equal(t, []uint32{0, 5, 64, 99}, NullsToRoaring(shifted, 13, length).ToArray())
	})

	t.Run("nil bitmap", func(t *testing.T) {
		assert.True(t, NullsToRoaring(nil, 0, 10).IsEmpty())
	})
}
