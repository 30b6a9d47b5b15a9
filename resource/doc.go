// Package resource bounds the resources consumed by concurrent block decodes.
//
// A Controller governs three things, each optional:
//
//   - Memory: bytes of decompression scratch in flight (weighted semaphore).
//   - Workers: decodes running at once across all callers (semaphore).
//   - IO: encoded bytes consumed per second (token bucket).
//
//	rc := resource.NewController(resource.Config{
//	    MemoryLimitBytes:   64 << 20,
//	    MaxWorkers:         4,
//	    IOLimitBytesPerSec: 100 << 20,
//	})
//
// All methods handle a nil Controller gracefully; they become no-ops.
package resource
