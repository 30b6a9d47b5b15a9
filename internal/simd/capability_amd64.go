//go:build amd64 && !noasm

package simd

import "golang.org/x/sys/cpu"

func init() {
	hasAVX2 = cpu.X86.HasAVX2
	initCapabilities()
}
