package simd

type unsigned interface {
	uint8 | uint16 | uint32 | uint64
}

type signed interface {
	int8 | int16 | int32 | int64
}

// Kernel function pointers - set once at init, zero runtime overhead.
// Generic implementations are the default; initCapabilities swaps in the
// unrolled versions when the platform benefits from them.
var (
	kernelMaxUint8  = maxGeneric[uint8]
	kernelMaxUint16 = maxGeneric[uint16]
	kernelMaxUint32 = maxGeneric[uint32]
	kernelMaxUint64 = maxGeneric[uint64]

	kernelMinMaxInt8  = minMaxGeneric[int8]
	kernelMinMaxInt16 = minMaxGeneric[int16]
	kernelMinMaxInt32 = minMaxGeneric[int32]
	kernelMinMaxInt64 = minMaxGeneric[int64]
)

func setKernels(k Kernel) {
	switch k {
	case Unrolled:
		kernelMaxUint8 = maxUnrolled[uint8]
		kernelMaxUint16 = maxUnrolled[uint16]
		kernelMaxUint32 = maxUnrolled[uint32]
		kernelMaxUint64 = maxUnrolled[uint64]
		kernelMinMaxInt8 = minMaxUnrolled[int8]
		kernelMinMaxInt16 = minMaxUnrolled[int16]
		kernelMinMaxInt32 = minMaxUnrolled[int32]
		kernelMinMaxInt64 = minMaxUnrolled[int64]
	default:
		kernelMaxUint8 = maxGeneric[uint8]
		kernelMaxUint16 = maxGeneric[uint16]
		kernelMaxUint32 = maxGeneric[uint32]
		kernelMaxUint64 = maxGeneric[uint64]
		kernelMinMaxInt8 = minMaxGeneric[int8]
		kernelMinMaxInt16 = minMaxGeneric[int16]
		kernelMinMaxInt32 = minMaxGeneric[int32]
		kernelMinMaxInt64 = minMaxGeneric[int64]
	}
}

// ============================================================================
// Public API - Zero-overhead dispatch through function pointers
// ============================================================================

// MaxUint8 returns the largest value, or 0 for an empty slice.
func MaxUint8(values []uint8) uint8 { return kernelMaxUint8(values) }

// MaxUint16 returns the largest value, or 0 for an empty slice.
func MaxUint16(values []uint16) uint16 { return kernelMaxUint16(values) }

// MaxUint32 returns the largest value, or 0 for an empty slice.
func MaxUint32(values []uint32) uint32 { return kernelMaxUint32(values) }

// MaxUint64 returns the largest value, or 0 for an empty slice.
func MaxUint64(values []uint64) uint64 { return kernelMaxUint64(values) }

// MinMaxInt8 returns the smallest and largest value, or (0, 0) for an empty slice.
func MinMaxInt8(values []int8) (lo, hi int8) { return kernelMinMaxInt8(values) }

// MinMaxInt16 returns the smallest and largest value, or (0, 0) for an empty slice.
func MinMaxInt16(values []int16) (lo, hi int16) { return kernelMinMaxInt16(values) }

// MinMaxInt32 returns the smallest and largest value, or (0, 0) for an empty slice.
func MinMaxInt32(values []int32) (lo, hi int32) { return kernelMinMaxInt32(values) }

// MinMaxInt64 returns the smallest and largest value, or (0, 0) for an empty slice.
func MinMaxInt64(values []int64) (lo, hi int64) { return kernelMinMaxInt64(values) }

// ============================================================================
// Generic implementations (pure Go fallbacks)
// ============================================================================

func maxGeneric[T unsigned](values []T) T {
	var m T
	for _, v := range values {
		if v > m {
			m = v
		}
	}
	return m
}

func minMaxGeneric[T signed](values []T) (T, T) {
	if len(values) == 0 {
		return 0, 0
	}
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

// ============================================================================
// Unrolled implementations
// ============================================================================

func maxUnrolled[T unsigned](values []T) T {
	var m0, m1, m2, m3 T
	i := 0
	for ; i+8 <= len(values); i += 8 {
		v := values[i : i+8 : i+8]
		m0 = max(m0, v[0], v[4])
		m1 = max(m1, v[1], v[5])
		m2 = max(m2, v[2], v[6])
		m3 = max(m3, v[3], v[7])
	}
	for ; i < len(values); i++ {
		m0 = max(m0, values[i])
	}
	return max(m0, m1, m2, m3)
}

func minMaxUnrolled[T signed](values []T) (T, T) {
	if len(values) == 0 {
		return 0, 0
	}
	lo0, lo1, lo2, lo3 := values[0], values[0], values[0], values[0]
	hi0, hi1, hi2, hi3 := lo0, lo0, lo0, lo0
	i := 0
	for ; i+8 <= len(values); i += 8 {
		v := values[i : i+8 : i+8]
		lo0, hi0 = min(lo0, v[0], v[4]), max(hi0, v[0], v[4])
		lo1, hi1 = min(lo1, v[1], v[5]), max(hi1, v[1], v[5])
		lo2, hi2 = min(lo2, v[2], v[6]), max(hi2, v[2], v[6])
		lo3, hi3 = min(lo3, v[3], v[7]), max(hi3, v[3], v[7])
	}
	for ; i < len(values); i++ {
		lo0, hi0 = min(lo0, values[i]), max(hi0, values[i])
	}
	return min(lo0, lo1, lo2, lo3), max(hi0, hi1, hi2, hi3)
}
