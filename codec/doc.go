// Package codec reads and writes index blocks: self-describing, checksummed,
// optionally compressed serializations of integer index arrays.
//
// A block is a fixed 40-byte little-endian header followed by the payload:
//
//	off  size  field
//	0    4     magic "CIDX"
//	4    1     format version (1)
//	5    1     array type
//	6    1     compression
//	7    1     flags (bit 0: payload starts with a validity bitmap)
//	8    4     length (elements)
//	12   4     null count
//	16   4     dictionary id
//	20   4     uncompressed payload size
//	24   8     dictionary length
//	32   4     payload size
//	36   4     CRC32-C of header bytes [0, 36) and the payload
//
// The uncompressed payload is the validity bitmap, if flagged, followed by
// the values at the block's array type. The Encoder narrows values to the
// smallest type that holds them and falls back to storing the payload raw
// when compression does not pay off.
//
// Decoded blocks are untrusted input. The Decoder rejects every non-null
// index outside [0, dictionary length) before handing the array out, so
// callers may use the indices to address the dictionary directly.
//
// Format changes are breaking: blocks written with another version are
// rejected with ErrUnsupported.
package codec
