// Package hash provides the CRC32-Castagnoli checksum used by index blocks.
//
// Go's hash/crc32 uses SSE4.2 or the ARM CRC extension when available.
//
//	sum := hash.CRC32C(header)
//	sum = hash.Update(sum, payload)
package hash
