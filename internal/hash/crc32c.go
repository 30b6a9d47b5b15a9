package hash

import "hash/crc32"

// crc32cTable is pre-computed for CRC32-Castagnoli polynomial.
var crc32cTable = crc32.MakeTable(crc32.Castagnoli)

// CRC32C computes the CRC32-Castagnoli checksum of data.
func CRC32C(data []byte) uint32 {
	return crc32.Checksum(data, crc32cTable)
}

// Update returns the checksum of the bytes already summed into crc followed
// by data.
func Update(crc uint32, data []byte) uint32 {
	return crc32.Update(crc, crc32cTable, data)
}
