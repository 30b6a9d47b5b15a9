package codec

import (
	"context"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/hupe1980/colidx/array"
	"github.com/hupe1980/colidx/internal/bitutil"
	"github.com/hupe1980/colidx/internal/conv"
	"github.com/hupe1980/colidx/internal/hash"
	"github.com/hupe1980/colidx/intutil"
)

// Encoder serializes index arrays into blocks. It is safe for concurrent use.
type Encoder struct {
	opts options
}

// NewEncoder creates an Encoder.
func NewEncoder(opts ...Option) *Encoder {
	o := applyOptions(opts)
	logKernel(o.logger)
	return &Encoder{opts: o}
}

// Encode serializes d as a block addressing a dictionary of dictLen entries
// with id 0. See EncodeDictionary.
func (e *Encoder) Encode(d *array.Data, dictLen uint64) ([]byte, error) {
	return e.EncodeDictionary(d, 0, dictLen)
}

// EncodeDictionary serializes d as a block addressing dictionary dictID of
// dictLen entries.
//
// Every non-null index must lie in [0, dictLen). Values are narrowed to the
// smallest type of d's signedness that holds them, and null slots are zeroed.
func (e *Encoder) EncodeDictionary(d *array.Data, dictID uint32, dictLen uint64) (block []byte, err error) {
	start := time.Now()
	var width uint8
	rawLen := 0
	defer func() {
		e.opts.metrics.RecordEncode(rawLen, len(block), time.Since(start), err)
		e.opts.logger.LogEncode(context.Background(), d.Length, width, rawLen, len(block), err)
	}()

	if err := intutil.IndexBoundsCheck(d, dictLen); err != nil {
		return nil, fmt.Errorf("codec: encode: %w", err)
	}
	length, err := conv.IntToUint32(d.Length)
	if err != nil {
		return nil, fmt.Errorf("codec: encode: %w", err)
	}

	width, err = intutil.DetectDataWidth(d, e.opts.minWidth)
	if err != nil {
		return nil, fmt.Errorf("codec: encode: %w", err)
	}
	narrowed := array.New(array.TypeForWidth(width, d.Type.IsSigned()), d.Length, false)
	if err := intutil.RepackData(d, narrowed); err != nil {
		return nil, fmt.Errorf("codec: encode: %w", err)
	}

	var validity []byte
	nulls := 0
	if d.Validity != nil {
		nulls = d.Length - bitutil.CountSetBits(d.Validity, d.Offset, d.Length)
	}
	if nulls > 0 {
		validity = make([]byte, bitutil.BytesForBits(d.Length))
		bitutil.CopyBits(validity, d.Validity, d.Offset, d.Length)
		for i := range d.Length {
			if !bitutil.GetBit(validity, i) {
				narrowed.SetUint64(i, 0)
			}
		}
	}

	raw := make([]byte, 0, len(validity)+len(narrowed.Values))
	raw = append(raw, validity...)
	raw = append(raw, narrowed.Values...)
	rawLen = len(raw)

	payload, used, err := compress(raw, e.opts.compression)
	if err != nil {
		return nil, err
	}

	h := header{
		typ:         narrowed.Type,
		compression: used,
		length:      length,
		nullN:       uint32(nulls), //nolint:gosec // nulls <= length
		dictID:      dictID,
		dictLen:     dictLen,
	}
	if h.rawLen, err = conv.IntToUint32(rawLen); err != nil {
		return nil, fmt.Errorf("codec: encode: %w", err)
	}
	if h.payloadLen, err = conv.IntToUint32(len(payload)); err != nil {
		return nil, fmt.Errorf("codec: encode: %w", err)
	}
	if validity != nil {
		h.flags |= flagValidity
	}

	block = make([]byte, headerSize+len(payload))
	h.put(block)
	copy(block[headerSize:], payload)
	crc := hash.Update(hash.CRC32C(block[:crcOffset]), payload)
	binary.LittleEndian.PutUint32(block[crcOffset:], crc)

	return block, nil
}
