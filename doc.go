// Package colidx provides null-aware integer utilities for columnar index
// arrays.
//
// The heavy lifting lives in subpackages:
//
//   - array: the fixed-width integer array descriptor (values, offset,
//     validity bitmap) and its JSON literal form.
//   - intutil: width detection, index transposition and batched index
//     bounds checking.
//   - codec: a self-describing, checksummed, optionally compressed block
//     format for index arrays that validates indices on decode.
//
// This package holds the ambient pieces shared by them: structured logging,
// operational metrics and the re-exported error sentinels.
//
// # Quick Start
//
//	indices := array.MustFromJSON(array.Int16, "[0, 3, null, 1]")
//	if err := intutil.IndexBoundsCheck(indices, 4); err != nil {
//	    return err
//	}
//	width, _ := intutil.DetectDataWidth(indices, 1) // 1
//
// # Kernel Selection
//
// The batch reductions behind width detection and bounds checking pick an
// implementation at startup. Set COLIDX_KERNEL=generic or
// COLIDX_KERNEL=unrolled to force one.
package colidx
