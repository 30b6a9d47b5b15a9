package codec

import (
	"encoding/binary"
	"fmt"

	"github.com/hupe1980/colidx/array"
)

const (
	magic         = "CIDX"
	formatVersion = 1
	headerSize    = 40
	crcOffset     = 36

	flagValidity = 1 << 0
	knownFlags   = flagValidity
)

// header is the decoded fixed-size block prefix.
type header struct {
	typ         array.Type
	compression Compression
	flags       uint8
	length      uint32
	nullN       uint32
	dictID      uint32
	rawLen      uint32
	dictLen     uint64
	payloadLen  uint32
	crc         uint32
}

func (h *header) hasValidity() bool { return h.flags&flagValidity != 0 }

// put writes h into b[:headerSize], leaving the checksum field zero.
func (h *header) put(b []byte) {
	copy(b[0:4], magic)
	b[4] = formatVersion
	b[5] = uint8(h.typ)
	b[6] = uint8(h.compression)
	b[7] = h.flags
	binary.LittleEndian.PutUint32(b[8:], h.length)
	binary.LittleEndian.PutUint32(b[12:], h.nullN)
	binary.LittleEndian.PutUint32(b[16:], h.dictID)
	binary.LittleEndian.PutUint32(b[20:], h.rawLen)
	binary.LittleEndian.PutUint64(b[24:], h.dictLen)
	binary.LittleEndian.PutUint32(b[32:], h.payloadLen)
	binary.LittleEndian.PutUint32(b[crcOffset:], 0)
}

// parseHeader decodes and structurally validates the block prefix.
func parseHeader(b []byte) (header, error) {
	var h header
	if len(b) < headerSize {
		return h, fmt.Errorf("%w: %d bytes is shorter than the %d-byte header", ErrCorrupt, len(b), headerSize)
	}
	if string(b[0:4]) != magic {
		return h, fmt.Errorf("%w: bad magic %q", ErrCorrupt, b[0:4])
	}
	if b[4] != formatVersion {
		return h, fmt.Errorf("%w: format version %d", ErrUnsupported, b[4])
	}

	h.typ = array.Type(b[5])
	h.compression = Compression(b[6])
	h.flags = b[7]
	h.length = binary.LittleEndian.Uint32(b[8:])
	h.nullN = binary.LittleEndian.Uint32(b[12:])
	h.dictID = binary.LittleEndian.Uint32(b[16:])
	h.rawLen = binary.LittleEndian.Uint32(b[20:])
	h.dictLen = binary.LittleEndian.Uint64(b[24:])
	h.payloadLen = binary.LittleEndian.Uint32(b[32:])
	h.crc = binary.LittleEndian.Uint32(b[crcOffset:])

	switch {
	case !h.typ.IsValid():
		return h, fmt.Errorf("%w: array type %d", ErrUnsupported, b[5])
	case !h.compression.IsValid():
		return h, fmt.Errorf("%w: compression %d", ErrUnsupported, b[6])
	case h.flags&^knownFlags != 0:
		return h, fmt.Errorf("%w: flags %#x", ErrUnsupported, h.flags)
	case h.nullN > h.length:
		return h, fmt.Errorf("%w: null count %d exceeds length %d", ErrCorrupt, h.nullN, h.length)
	case h.nullN > 0 && !h.hasValidity():
		return h, fmt.Errorf("%w: %d nulls without a validity bitmap", ErrCorrupt, h.nullN)
	case uint64(len(b)-headerSize) != uint64(h.payloadLen):
		return h, fmt.Errorf("%w: payload is %d bytes, header says %d", ErrCorrupt, len(b)-headerSize, h.payloadLen)
	}
	return h, nil
}
