package codec

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDictionaryMemo(t *testing.T) {
	m := NewDictionaryMemo()

	_, ok := m.Len(1)
	assert.False(t, ok)

	m.Set(1, 10)
	n, ok := m.Len(1)
	assert.True(t, ok)
	assert.Equal(t, uint64(10), n)

	assert.Equal(t, uint64(10), m.Grow(1, 4))
	assert.Equal(t, uint64(12), m.Grow(1, 12))
	assert.Equal(t, uint64(3), m.Grow(2, 3))

	snap := m.Snapshot()
	assert.Equal(t, map[uint32]uint64{1: 12, 2: 3}, snap)

	// Snapshots are copies.
	snap[1] = 0
	n, _ = m.Len(1)
	assert.Equal(t, uint64(12), n)

	m.Delete(1)
	_, ok = m.Len(1)
	assert.False(t, ok)
}

func TestDictionaryMemoZeroAndNil(t *testing.T) {
	var nilMemo *DictionaryMemo
	_, ok := nilMemo.Len(1)
	assert.False(t, ok)
	assert.NotPanics(t, func() {
		assert.Empty(t, nilMemo.Snapshot())
	})

	var m DictionaryMemo
	assert.Empty(t, m.Snapshot())
	m.Set(5, 1)
	n, ok := m.Len(5)
	assert.True(t, ok)
	assert.Equal(t, uint64(1), n)
}

func TestDictionaryMemoConcurrentGrow(t *testing.T) {
	m := NewDictionaryMemo()

	var wg sync.WaitGroup
	for i := range 64 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.Grow(uint32(i%4), uint64(i))
			m.Len(uint32(i % 4))
		}()
	}
	wg.Wait()

	assert.Equal(t, map[uint32]uint64{0: 60, 1: 61, 2: 62, 3: 63}, m.Snapshot())
}
