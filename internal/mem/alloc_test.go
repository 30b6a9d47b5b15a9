package mem

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func TestAllocAligned(t *testing.T) {
	sizes := []int{1, 10, 63, 64, 65, 100, 1024}

	for _, size := range sizes {
		buf := AllocAligned(size)
		assert.Len(t, buf, size)
		assert.Equal(t, PaddedLen(size), cap(buf), "size %d", size)
		assert.Zero(t, uintptr(unsafe.Pointer(&buf[0]))%Alignment, "size %d should be aligned to %d", size, Alignment)

		for _, b := range buf[:cap(buf)] {
			if b != 0 {
				t.Fatalf("size %d: buffer not zeroed", size)
			}
		}
	}

	assert.Nil(t, AllocAligned(0))
	assert.Nil(t, AllocAligned(-1))
}

func TestPaddedLen(t *testing.T) {
	assert.Equal(t, 0, PaddedLen(0))
	assert.Equal(t, 64, PaddedLen(1))
	assert.Equal(t, 64, PaddedLen(64))
	assert.Equal(t, 128, PaddedLen(65))
}

func BenchmarkAllocAligned(b *testing.B) {
	for _, size := range []int{64, 256, 1024, 4096} {
		b.Run("", func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				_ = AllocAligned(size)
			}
		})
	}
}
