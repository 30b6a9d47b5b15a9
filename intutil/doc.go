// Package intutil implements the integer kernels used on dictionary codes and
// array offsets:
//
//   - DetectUintWidth / DetectIntWidth pick the smallest byte width in
//     {1, 2, 4, 8} that holds every non-null value.
//   - TransposeInts remaps codes through a lookup table, possibly changing
//     width and signedness.
//   - IndexBoundsCheck verifies every non-null index lies in [0, limit)
//     before the indices are used to address memory.
//
// All kernels are synchronous and allocation-free. Buffers are borrowed from
// the caller for the duration of the call and never retained. Null slots are
// ignored by width detection and exempt from bounds checks whatever bit
// pattern they hold; transposition does not look at validity at all.
//
// Scans run over batches of 64 elements so that one validity word covers a
// batch. Bounds checking is two-tier: a batch is first reduced to its
// extremes without looking at validity, and only batches whose extremes
// violate the limit have their offending elements checked against the
// bitmap.
package intutil
