// Package invariants exposes assertions that are compiled in only with the
// "invariants" build tag.
//
// Kernel contracts (valid widths, pre-sized destination buffers) are caller
// obligations. Release builds trust them; test and debug builds run with
//
//	go test -tags invariants ./...
//
// to turn contract violations into panics at the call site.
package invariants
