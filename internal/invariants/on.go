//go:build invariants

package invariants

import "fmt"

// Enabled is true when built with the "invariants" build tag.
const Enabled = true

// Assertf panics with the formatted message if cond is false.
func Assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("invariant violated: "+format, args...))
	}
}
