package codec

import (
	"maps"

	"github.com/hupe1980/colidx/internal/atomicref"
)

// DictionaryMemo tracks the current length of each dictionary by id.
//
// Readers see an immutable snapshot and never block; writers install a new
// snapshot with copy-on-write. It is safe for concurrent use.
type DictionaryMemo struct {
	ref atomicref.Ref[map[uint32]uint64]
}

// NewDictionaryMemo returns an empty memo.
func NewDictionaryMemo() *DictionaryMemo {
	m := &DictionaryMemo{}
	empty := map[uint32]uint64{}
	m.ref.Store(&empty)
	return m
}

// Len returns the recorded length of dictionary id.
func (m *DictionaryMemo) Len(id uint32) (uint64, bool) {
	if m == nil {
		return 0, false
	}
	snap := m.ref.Load()
	if snap == nil {
		return 0, false
	}
	n, ok := (*snap)[id]
	return n, ok
}

// Set records the length of dictionary id.
func (m *DictionaryMemo) Set(id uint32, length uint64) {
	m.update(func(next map[uint32]uint64) { next[id] = length })
}

// Grow raises the recorded length of dictionary id to length if it is
// shorter, as when a dictionary delta appends entries. It returns the length
// now recorded.
func (m *DictionaryMemo) Grow(id uint32, length uint64) uint64 {
	var out uint64
	m.update(func(next map[uint32]uint64) {
		out = max(next[id], length)
		next[id] = out
	})
	return out
}

// Delete forgets dictionary id.
func (m *DictionaryMemo) Delete(id uint32) {
	m.update(func(next map[uint32]uint64) { delete(next, id) })
}

// Snapshot returns a copy of every recorded length.
func (m *DictionaryMemo) Snapshot() map[uint32]uint64 {
	if m == nil {
		return map[uint32]uint64{}
	}
	snap := m.ref.Load()
	if snap == nil {
		return map[uint32]uint64{}
	}
	return maps.Clone(*snap)
}

func (m *DictionaryMemo) update(mutate func(next map[uint32]uint64)) {
	m.ref.Update(func(cur *map[uint32]uint64) *map[uint32]uint64 {
		next := make(map[uint32]uint64, 1)
		if cur != nil {
			next = maps.Clone(*cur)
		}
		mutate(next)
		return &next
	})
}
