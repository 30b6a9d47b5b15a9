package codec

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression identifies the algorithm applied to a block payload.
type Compression uint8

const (
	// CompressionNone stores the payload as is.
	CompressionNone Compression = 0
	// CompressionLZ4 uses LZ4 block compression (fast, good for hot data).
	CompressionLZ4 Compression = 1
	// CompressionZstd uses Zstandard (better ratio, good for cold data).
	CompressionZstd Compression = 2
	// CompressionS2 uses S2, a faster Snappy extension.
	CompressionS2 Compression = 3
)

// maxRawLen bounds a decompressed payload; the header stores it in 32 bits.
const maxRawLen = 1 << 32

// minSavings is the largest compressed/raw size ratio worth keeping.
const minSavings = 0.9

var compressionNames = [...]string{"none", "lz4", "zstd", "s2"}

// IsValid reports whether c is a known algorithm.
func (c Compression) IsValid() bool { return int(c) < len(compressionNames) }

func (c Compression) String() string {
	if !c.IsValid() {
		return fmt.Sprintf("Compression(%d)", uint8(c))
	}
	return compressionNames[c]
}

// ParseCompression returns the algorithm with the given name.
func ParseCompression(s string) (Compression, bool) {
	for i, name := range compressionNames {
		if name == s {
			return Compression(i), true
		}
	}
	return CompressionNone, false
}

// ZSTD encoder/decoder pools for efficiency
var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault), zstd.WithEncoderConcurrency(1))
	return enc
}

func putZstdEncoder(enc *zstd.Encoder) {
	zstdEncoderPool.Put(enc)
}

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	dec, _ := zstd.NewReader(nil, zstd.WithDecoderConcurrency(1), zstd.WithDecoderMaxMemory(maxRawLen))
	return dec
}

func putZstdDecoder(dec *zstd.Decoder) {
	zstdDecoderPool.Put(dec)
}

// compress applies c to data. It returns data unchanged with
// CompressionNone when c is none or compression does not save enough.
func compress(data []byte, c Compression) ([]byte, Compression, error) {
	if c == CompressionNone || len(data) == 0 {
		return data, CompressionNone, nil
	}

	var out []byte
	switch c {
	case CompressionLZ4:
		buf := make([]byte, lz4.CompressBlockBound(len(data)))
		n, err := lz4.CompressBlock(data, buf, nil)
		if err != nil {
			return nil, CompressionNone, fmt.Errorf("codec: lz4 compress: %w", err)
		}
		out = buf[:n] // n == 0 means incompressible
	case CompressionZstd:
		if len(data) < zstdMinInput {
			return data, CompressionNone, nil
		}
		enc := getZstdEncoder()
		out = enc.EncodeAll(data, nil)
		putZstdEncoder(enc)
	case CompressionS2:
		out = s2.Encode(nil, data)
	default:
		return nil, CompressionNone, fmt.Errorf("%w: compression %d", ErrUnsupported, uint8(c))
	}

	if len(out) == 0 || float64(len(out)) > float64(len(data))*minSavings {
		return data, CompressionNone, nil
	}
	return out, c, nil
}

// decompress reverses compress. The result is exactly rawLen bytes long.
func decompress(payload []byte, c Compression, rawLen int) ([]byte, error) {
	if c == CompressionNone {
		if len(payload) != rawLen {
			return nil, fmt.Errorf("%w: stored payload is %d bytes, expected %d", ErrCorrupt, len(payload), rawLen)
		}
		return payload, nil
	}

	if err := checkDecodedLen(payload, c, rawLen); err != nil {
		return nil, err
	}

	result := make([]byte, rawLen)
	var n int
	switch c {
	case CompressionLZ4:
		var err error
		n, err = lz4.UncompressBlock(payload, result)
		if err != nil {
			return nil, fmt.Errorf("%w: lz4: %v", ErrCorrupt, err)
		}
	case CompressionZstd:
		dec := getZstdDecoder()
		defer putZstdDecoder(dec)

		decoded, err := dec.DecodeAll(payload, result[:0])
		if err != nil {
			return nil, fmt.Errorf("%w: zstd: %v", ErrCorrupt, err)
		}
		result, n = decoded, len(decoded)
	case CompressionS2:
		decoded, err := s2.Decode(result, payload)
		if err != nil {
			return nil, fmt.Errorf("%w: s2: %v", ErrCorrupt, err)
		}
		result, n = decoded, len(decoded)
	default:
		return nil, fmt.Errorf("%w: compression %d", ErrUnsupported, uint8(c))
	}

	if n != rawLen {
		return nil, fmt.Errorf("%w: decompressed %d bytes, expected %d", ErrCorrupt, n, rawLen)
	}
	return result[:n], nil
}

const (
	// lz4MaxRatio bounds how far one byte of an lz4 block can expand.
	lz4MaxRatio = 255
	// zstdMinInput is the smallest input compressed with zstd. Shorter
	// frames may omit their content size.
	zstdMinInput = 256
)

// checkDecodedLen rejects a stored payload that cannot decompress to rawLen
// bytes, using only the payload's own framing. It runs before the output
// buffer is allocated so a forged header cannot force a large allocation.
func checkDecodedLen(payload []byte, c Compression, rawLen int) error {
	switch c {
	case CompressionLZ4:
		if int64(rawLen) > int64(len(payload))*lz4MaxRatio {
			return fmt.Errorf("%w: lz4 payload of %d bytes cannot expand to %d", ErrCorrupt, len(payload), rawLen)
		}
	case CompressionZstd:
		var fh zstd.Header
		if err := fh.Decode(payload); err != nil {
			return fmt.Errorf("%w: zstd header: %v", ErrCorrupt, err)
		}
		if !fh.HasFCS || fh.FrameContentSize != uint64(rawLen) {
			return fmt.Errorf("%w: zstd frame content size %d, expected %d", ErrCorrupt, fh.FrameContentSize, rawLen)
		}
	case CompressionS2:
		m, err := s2.DecodedLen(payload)
		if err != nil {
			return fmt.Errorf("%w: s2: %v", ErrCorrupt, err)
		}
		if m != rawLen {
			return fmt.Errorf("%w: s2 decodes to %d bytes, expected %d", ErrCorrupt, m, rawLen)
		}
	default:
		return fmt.Errorf("%w: compression %d", ErrUnsupported, uint8(c))
	}
	return nil
}
