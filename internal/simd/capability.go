package simd

import (
	"os"
	"runtime"
	"strings"
)

// Kernel identifies a kernel implementation family.
type Kernel uint8

const (
	// Generic is the scalar pure Go implementation.
	Generic Kernel = iota
	// Unrolled is the 8-wide unrolled implementation with split accumulators.
	Unrolled
)

// String returns the string representation of a Kernel.
func (k Kernel) String() string {
	switch k {
	case Generic:
		return "generic"
	case Unrolled:
		return "unrolled"
	default:
		return "unknown"
	}
}

// ParseKernel parses a string into a Kernel value.
func ParseKernel(s string) (Kernel, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "generic":
		return Generic, true
	case "unrolled":
		return Unrolled, true
	default:
		return Generic, false
	}
}

// EnvKernel is the environment variable that overrides kernel selection.
const EnvKernel = "COLIDX_KERNEL"

// Package-level state - initialized once at package init.
var (
	// activeKernel is the selected implementation family.
	activeKernel Kernel

	// hasOverride is true if COLIDX_KERNEL was set to a valid value.
	hasOverride bool

	// CPU feature flags (set by platform-specific init)
	hasAVX2  bool // x86-64 AVX2
	hasASIMD bool // ARM64 NEON
)

// initCapabilities is called from platform-specific init functions
// after CPU features are detected.
func initCapabilities() {
	if override := os.Getenv(EnvKernel); override != "" {
		if k, ok := ParseKernel(override); ok {
			hasOverride = true
			activeKernel = k
			setKernels(k)
			return
		}
		// Invalid override - fall through to auto-detection
	}

	activeKernel = selectBestKernel()
	setKernels(activeKernel)
}

// selectBestKernel chooses the kernel family for the current platform.
func selectBestKernel() Kernel {
	switch runtime.GOARCH {
	case "amd64":
		if hasAVX2 {
			return Unrolled
		}
	case "arm64":
		if hasASIMD {
			return Unrolled
		}
	}
	return Generic
}

// ActiveKernel returns the currently active kernel family.
func ActiveKernel() Kernel {
	return activeKernel
}

// IsOverridden returns true if COLIDX_KERNEL was set.
func IsOverridden() bool {
	return hasOverride
}

// HasAVX2 returns true if x86-64 AVX2 is available.
func HasAVX2() bool {
	return hasAVX2
}

// HasASIMD returns true if ARM64 NEON is available.
func HasASIMD() bool {
	return hasASIMD
}
