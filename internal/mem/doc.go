// Package mem provides buffer allocation for array values and validity
// bitmaps.
//
// # Aligned Allocation
//
// Buffers start on a 64-byte boundary so typed views of any integer width are
// naturally aligned, and their capacity is padded to a multiple of 64 bytes
// so word-at-a-time bitmap reads never run past the allocation.
package mem
