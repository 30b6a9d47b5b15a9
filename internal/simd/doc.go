// Package simd provides the integer reduction kernels behind width detection
// and index bounds checking.
//
// # Kernels
//
//   - MaxUint8 .. MaxUint64: maximum of an unsigned batch
//   - MinMaxInt8 .. MinMaxInt64: minimum and maximum of a signed batch
//
// Each kernel is a package-level function pointer selected once at init.
// The generic implementation is a plain scalar loop; the unrolled
// implementation keeps four independent accumulators so wide out-of-order
// cores can retire several compares per cycle.
//
// # Selection
//
// On amd64 with AVX2 and on arm64 with ASIMD the unrolled kernels are chosen.
// Set COLIDX_KERNEL=generic|unrolled to override. Build with -tags noasm to
// force the generic kernels regardless of CPU features.
package simd
