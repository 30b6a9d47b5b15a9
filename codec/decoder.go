package codec

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/colidx/array"
	"github.com/hupe1980/colidx/internal/bitutil"
	"github.com/hupe1980/colidx/internal/conv"
	"github.com/hupe1980/colidx/internal/hash"
	"github.com/hupe1980/colidx/internal/mem"
	"github.com/hupe1980/colidx/intutil"
)

// Decoder deserializes blocks. It is safe for concurrent use.
type Decoder struct {
	opts options
}

// NewDecoder creates a Decoder.
func NewDecoder(opts ...Option) *Decoder {
	o := applyOptions(opts)
	logKernel(o.logger)
	return &Decoder{opts: o}
}

// Decode is DecodeContext with a background context.
func (dec *Decoder) Decode(block []byte) (*array.Data, error) {
	return dec.DecodeContext(context.Background(), block)
}

// DecodeContext verifies and deserializes one block.
//
// The returned array owns freshly allocated aligned buffers; block may be
// reused afterwards. Every non-null index is checked against the
// dictionary length: the memo's entry for the block's dictionary id if
// there is one, otherwise the length stored in the block. Violations return
// an error wrapping *intutil.IndexError.
func (dec *Decoder) DecodeContext(ctx context.Context, block []byte) (d *array.Data, err error) {
	start := time.Now()
	var bound uint64
	defer func() {
		length := 0
		if d != nil {
			length = d.Length
		}
		dec.opts.metrics.RecordDecode(length, time.Since(start), err)
		dec.opts.logger.LogDecode(ctx, length, bound, err, errors.Is(err, intutil.ErrIndexOutOfBounds))
	}()

	h, err := parseHeader(block)
	if err != nil {
		return nil, err
	}
	payload := block[headerSize:]
	if crc := hash.Update(hash.CRC32C(block[:crcOffset]), payload); crc != h.crc {
		return nil, fmt.Errorf("%w: computed %#08x, stored %#08x", ErrChecksum, crc, h.crc)
	}

	length, err := conv.Uint32ToInt(h.length)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	valuesLen, err := conv.MulInt(length, h.typ.ByteWidth())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	validityLen := 0
	if h.hasValidity() {
		validityLen = bitutil.BytesForBits(length)
	}
	rawLen, err := conv.Uint32ToInt(h.rawLen)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	if rawLen != validityLen+valuesLen {
		return nil, fmt.Errorf("%w: payload of %d bytes cannot hold %d %s values", ErrCorrupt, rawLen, length, h.typ)
	}

	rc := dec.opts.resources
	if err := rc.AcquireIO(ctx, len(block)); err != nil {
		return nil, err
	}
	// Decompression scratch and the decoded array are live together.
	reserve := 2 * int64(rawLen)
	if err := rc.AcquireMemory(ctx, reserve); err != nil {
		return nil, err
	}
	defer rc.ReleaseMemory(reserve)

	raw, err := decompress(payload, h.compression, rawLen)
	if err != nil {
		return nil, err
	}

	out := array.New(h.typ, length, false)
	copy(out.Values, raw[validityLen:])
	if h.hasValidity() {
		out.Validity = mem.AllocAligned(validityLen)
		copy(out.Validity, raw[:validityLen])
		out.NullN = array.UnknownNullCount
		if n := out.NullCount(); n != int(h.nullN) {
			return nil, fmt.Errorf("%w: bitmap holds %d nulls, header says %d", ErrCorrupt, n, h.nullN)
		}
	}

	bound = h.dictLen
	if n, ok := dec.opts.memo.Len(h.dictID); ok {
		bound = n
	}
	if err := intutil.IndexBoundsCheck(out, bound); err != nil {
		return nil, fmt.Errorf("codec: dictionary %d: %w", h.dictID, err)
	}
	return out, nil
}

// DecodeAll decodes blocks concurrently, bounded by WithConcurrency and the
// resource controller's worker limit. Results are in input order. The first
// failure cancels the remaining decodes and is returned.
func (dec *Decoder) DecodeAll(ctx context.Context, blocks [][]byte) ([]*array.Data, error) {
	start := time.Now()
	out := make([]*array.Data, len(blocks))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(dec.opts.concurrency)
	for i, b := range blocks {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := dec.opts.resources.AcquireWorker(gctx); err != nil {
				return err
			}
			defer dec.opts.resources.ReleaseWorker()

			d, err := dec.DecodeContext(gctx, b)
			if err != nil {
				return fmt.Errorf("codec: block %d: %w", i, err)
			}
			out[i] = d
			return nil
		})
	}

	err := g.Wait()
	dec.opts.logger.LogBatchDecode(ctx, len(blocks), time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return out, nil
}
