// Package atomicref provides an atomically swappable shared reference.
//
// The garbage collector owns the referenced value; Ref only guarantees that a
// reader observes either the old or the new value in full, never a torn one.
// Readers never block.
package atomicref

import "sync/atomic"

// Ref holds a shared *T that can be loaded and replaced atomically.
// The zero value holds nil and is ready to use.
type Ref[T any] struct {
	p atomic.Pointer[T]
}

// New returns a Ref holding v.
func New[T any](v *T) *Ref[T] {
	r := &Ref[T]{}
	r.p.Store(v)
	return r
}

// Load returns the current value.
func (r *Ref[T]) Load() *T {
	return r.p.Load()
}

// Store replaces the current value.
func (r *Ref[T]) Store(v *T) {
	r.p.Store(v)
}

// Swap replaces the current value and returns the previous one.
func (r *Ref[T]) Swap(v *T) *T {
	return r.p.Swap(v)
}

// CompareAndSwap replaces old with v if the current value is old.
func (r *Ref[T]) CompareAndSwap(old, v *T) bool {
	return r.p.CompareAndSwap(old, v)
}

// Update applies fn to the current value until the result is installed
// without interference and returns the installed value. fn must not mutate
// its argument; it may be called more than once.
func (r *Ref[T]) Update(fn func(cur *T) *T) *T {
	for {
		cur := r.p.Load()
		next := fn(cur)
		if r.p.CompareAndSwap(cur, next) {
			return next
		}
	}
}
