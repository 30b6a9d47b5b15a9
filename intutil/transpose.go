package intutil

import (
	"fmt"

	"github.com/hupe1980/colidx/array"
	"github.com/hupe1980/colidx/internal/invariants"
)

// TransposeInts writes dest[i] = D(table[src[i]]) for every i < len(src).
//
// Every position is remapped, including positions the caller considers
// null. dest must hold at least len(src) elements and table must be
// addressable by every value in src; run IndexBoundsCheck against
// len(table) first when src is untrusted.
func TransposeInts[S, D, M array.Integer](src []S, dest []D, table []M) {
	invariants.Assertf(len(dest) >= len(src), "transpose: dest length %d < src length %d", len(dest), len(src))
	dest = dest[:len(src)]

	i := 0
	for ; i+4 <= len(src); i += 4 {
		s := src[i : i+4 : i+4]
		d := dest[i : i+4 : i+4]
		d[0] = D(table[s[0]])
		d[1] = D(table[s[1]])
		d[2] = D(table[s[2]])
		d[3] = D(table[s[3]])
	}
	for ; i < len(src); i++ {
		dest[i] = D(table[src[i]])
	}
}

// Repack writes dest[i] = D(src[i]) for every i < len(src). Values that do
// not fit D are truncated; pick D with DetectUintWidth or DetectIntWidth.
func Repack[S, D array.Integer](src []S, dest []D) {
	invariants.Assertf(len(dest) >= len(src), "repack: dest length %d < src length %d", len(dest), len(src))
	dest = dest[:len(src)]
	for i, v := range src {
		dest[i] = D(v)
	}
}

// TransposeData transposes the values of src into dest through table
// according to both arrays' types. Validity is neither read nor written.
func TransposeData[M array.Integer](src, dest *array.Data, table []M) error {
	if dest.Length < src.Length {
		return fmt.Errorf("intutil: destination length %d < source length %d", dest.Length, src.Length)
	}
	switch src.Type {
	case array.Int8:
		return transposeInto(array.Int8s(src), dest, table)
	case array.Int16:
		return transposeInto(array.Int16s(src), dest, table)
	case array.Int32:
		return transposeInto(array.Int32s(src), dest, table)
	case array.Int64:
		return transposeInto(array.Int64s(src), dest, table)
	case array.Uint8:
		return transposeInto(array.Uint8s(src), dest, table)
	case array.Uint16:
		return transposeInto(array.Uint16s(src), dest, table)
	case array.Uint32:
		return transposeInto(array.Uint32s(src), dest, table)
	case array.Uint64:
		return transposeInto(array.Uint64s(src), dest, table)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedType, src.Type)
	}
}

func transposeInto[S, M array.Integer](src []S, dest *array.Data, table []M) error {
	switch dest.Type {
	case array.Int8:
		TransposeInts(src, array.Int8s(dest), table)
	case array.Int16:
		TransposeInts(src, array.Int16s(dest), table)
	case array.Int32:
		TransposeInts(src, array.Int32s(dest), table)
	case array.Int64:
		TransposeInts(src, array.Int64s(dest), table)
	case array.Uint8:
		TransposeInts(src, array.Uint8s(dest), table)
	case array.Uint16:
		TransposeInts(src, array.Uint16s(dest), table)
	case array.Uint32:
		TransposeInts(src, array.Uint32s(dest), table)
	case array.Uint64:
		TransposeInts(src, array.Uint64s(dest), table)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedType, dest.Type)
	}
	return nil
}

// RepackData converts the values of src into dest according to both arrays'
// types. Validity is neither read nor written.
func RepackData(src, dest *array.Data) error {
	if dest.Length < src.Length {
		return fmt.Errorf("intutil: destination length %d < source length %d", dest.Length, src.Length)
	}
	switch src.Type {
	case array.Int8:
		return repackInto(array.Int8s(src), dest)
	case array.Int16:
		return repackInto(array.Int16s(src), dest)
	case array.Int32:
		return repackInto(array.Int32s(src), dest)
	case array.Int64:
		return repackInto(array.Int64s(src), dest)
	case array.Uint8:
		return repackInto(array.Uint8s(src), dest)
	case array.Uint16:
		return repackInto(array.Uint16s(src), dest)
	case array.Uint32:
		return repackInto(array.Uint32s(src), dest)
	case array.Uint64:
		return repackInto(array.Uint64s(src), dest)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedType, src.Type)
	}
}

func repackInto[S array.Integer](src []S, dest *array.Data) error {
	switch dest.Type {
	case array.Int8:
		Repack(src, array.Int8s(dest))
	case array.Int16:
		Repack(src, array.Int16s(dest))
	case array.Int32:
		Repack(src, array.Int32s(dest))
	case array.Int64:
		Repack(src, array.Int64s(dest))
	case array.Uint8:
		Repack(src, array.Uint8s(dest))
	case array.Uint16:
		Repack(src, array.Uint16s(dest))
	case array.Uint32:
		Repack(src, array.Uint32s(dest))
	case array.Uint64:
		Repack(src, array.Uint64s(dest))
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedType, dest.Type)
	}
	return nil
}
