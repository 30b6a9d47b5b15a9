// Package bitutil provides helpers for LSB-first validity bitmaps.
//
// Bit i lives in byte i/8 at position i%8. A set bit marks a valid (non-null)
// slot, a cleared bit marks a null slot. A nil bitmap means every slot is
// valid; helpers that read bits never receive nil.
//
// Conversions to and from roaring bitmaps are provided for callers that track
// null sets or offending positions sparsely.
package bitutil
