//go:build !invariants

package invariants

// Enabled is true when built with the "invariants" build tag.
const Enabled = false

// Assertf is a no-op without the "invariants" build tag.
func Assertf(cond bool, format string, args ...any) {}
