package codec

import (
	"context"
	"fmt"
	"time"

	"github.com/hupe1980/colidx/array"
	"github.com/hupe1980/colidx/internal/bitutil"
	"github.com/hupe1980/colidx/internal/mem"
	"github.com/hupe1980/colidx/intutil"
)

// Remap rewrites the dictionary codes in d through table, as when two
// dictionaries are unified: code c becomes table[c]. The result addresses a
// dictionary of newDictLen entries and uses the smallest signed type that
// holds it (no smaller than WithMinWidth).
//
// Every non-null code must lie in [0, len(table)) and every remapped value in
// [0, newDictLen); otherwise an error wrapping *intutil.IndexError is
// returned. Validity is preserved. d is not modified.
func Remap(d *array.Data, table []int32, newDictLen uint64, opts ...Option) (out *array.Data, err error) {
	o := applyOptions(opts)
	start := time.Now()
	var width uint8
	defer func() {
		o.metrics.RecordRemap(d.Length, time.Since(start), err)
		o.logger.LogRemap(context.Background(), d.Length, len(table), width, err)
	}()

	if err := intutil.IndexBoundsCheck(d, uint64(len(table))); err != nil {
		return nil, fmt.Errorf("codec: remap: %w", err)
	}

	codes := d
	if d.Validity != nil {
		// Null slots may hold anything; point them at entry 0 so every lookup
		// stays in the table.
		codes = array.New(d.Type, d.Length, false)
		if err := intutil.RepackData(d, codes); err != nil {
			return nil, fmt.Errorf("codec: remap: %w", err)
		}
		for i := range d.Length {
			if !d.IsValid(i) {
				codes.SetUint64(i, 0)
			}
		}
	}

	wide := array.New(array.Int32, d.Length, false)
	// An empty table leaves only nulls, which stay zero.
	if len(table) > 0 {
		if err := intutil.TransposeData(codes, wide, table); err != nil {
			return nil, fmt.Errorf("codec: remap: %w", err)
		}
	}
	if d.Validity != nil {
		wide.Validity = mem.AllocAligned(bitutil.BytesForBits(d.Length))
		bitutil.CopyBits(wide.Validity, d.Validity, d.Offset, d.Length)
		wide.NullN = array.UnknownNullCount
	}

	if err := intutil.IndexBoundsCheck(wide, newDictLen); err != nil {
		return nil, fmt.Errorf("codec: remap table: %w", err)
	}

	width, err = intutil.DetectDataWidth(wide, o.minWidth)
	if err != nil {
		return nil, err
	}
	target := array.TypeForWidth(width, true)
	if target == wide.Type {
		return wide, nil
	}
	out = array.New(target, d.Length, false)
	if err := intutil.RepackData(wide, out); err != nil {
		return nil, fmt.Errorf("codec: remap: %w", err)
	}
	out.Validity, out.NullN = wide.Validity, wide.NullN
	return out, nil
}
