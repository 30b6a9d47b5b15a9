package array

import (
	"encoding/binary"
	"fmt"
	"unsafe"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/colidx/internal/bitutil"
	"github.com/hupe1980/colidx/internal/invariants"
	"github.com/hupe1980/colidx/internal/mem"
)

// UnknownNullCount marks a Data whose null count has not been computed.
const UnknownNullCount = -1

// Data is a view of a fixed-width integer array.
//
// Element i lives at byte offset (Offset+i)*Type.ByteWidth() of Values and
// its validity at bit Offset+i of Validity. A nil Validity means every
// element is valid. NullN caches the number of nulls in [Offset,
// Offset+Length) or is UnknownNullCount.
type Data struct {
	Type     Type
	Length   int
	Offset   int
	NullN    int
	Values   []byte
	Validity []byte
}

// New allocates a zeroed array of the given type and length. When
// withValidity is true a validity bitmap is allocated with every element
// marked valid.
func New(typ Type, length int, withValidity bool) *Data {
	invariants.Assertf(typ.IsValid(), "array.New: invalid type %s", typ)
	d := &Data{
		Type:   typ,
		Length: length,
		Values: mem.AllocAligned(length * typ.ByteWidth()),
	}
	if withValidity {
		d.Validity = mem.AllocAligned(bitutil.BytesForBits(length))
		bitutil.SetBitsTo(d.Validity, 0, length, true)
	}
	return d
}

// FromSlice returns a Data viewing values without copying. validity may be
// nil.
func FromSlice[T Integer](values []T, validity []byte) *Data {
	var zero T
	w := int(unsafe.Sizeof(zero))
	d := &Data{
		Type:     TypeOf[T](),
		Length:   len(values),
		Validity: validity,
	}
	if len(values) > 0 {
		d.Values = unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(values))), len(values)*w) //nolint:gosec // reinterpret as bytes
	}
	if validity != nil {
		d.NullN = UnknownNullCount
	}
	return d
}

// Values returns the elements of d as a []T sharing d's buffer.
// T must match d.Type.
func Values[T Integer](d *Data) []T {
	invariants.Assertf(TypeOf[T]() == d.Type, "array.Values: %s view of %s data", TypeOf[T](), d.Type)
	if d.Length == 0 {
		return nil
	}
	var zero T
	w := int(unsafe.Sizeof(zero))
	buf := d.Values[d.Offset*w : (d.Offset+d.Length)*w]
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(buf))), d.Length) //nolint:gosec // buffers are allocated aligned
}

// Int8s returns the values of an Int8 array.
func Int8s(d *Data) []int8 { return Values[int8](d) }

// Int16s returns the values of an Int16 array.
func Int16s(d *Data) []int16 { return Values[int16](d) }

// Int32s returns the values of an Int32 array.
func Int32s(d *Data) []int32 { return Values[int32](d) }

// Int64s returns the values of an Int64 array.
func Int64s(d *Data) []int64 { return Values[int64](d) }

// Uint8s returns the values of a Uint8 array.
func Uint8s(d *Data) []uint8 { return Values[uint8](d) }

// Uint16s returns the values of a Uint16 array.
func Uint16s(d *Data) []uint16 { return Values[uint16](d) }

// Uint32s returns the values of a Uint32 array.
func Uint32s(d *Data) []uint32 { return Values[uint32](d) }

// Uint64s returns the values of a Uint64 array.
func Uint64s(d *Data) []uint64 { return Values[uint64](d) }

// IsValid reports whether element i is non-null.
func (d *Data) IsValid(i int) bool {
	return d.Validity == nil || bitutil.GetBit(d.Validity, d.Offset+i)
}

// NullCount returns the number of null elements, computing and caching it if
// unknown.
func (d *Data) NullCount() int {
	if d.NullN >= 0 {
		return d.NullN
	}
	if d.Validity == nil {
		d.NullN = 0
	} else {
		d.NullN = d.Length - bitutil.CountSetBits(d.Validity, d.Offset, d.Length)
	}
	return d.NullN
}

// SetNull marks element i as null. d must have a validity bitmap.
func (d *Data) SetNull(i int) {
	if d.IsValid(i) && d.NullN >= 0 {
		d.NullN++
	}
	bitutil.ClearBit(d.Validity, d.Offset+i)
}

// SetValid marks element i as valid. d must have a validity bitmap.
func (d *Data) SetValid(i int) {
	if !d.IsValid(i) && d.NullN > 0 {
		d.NullN--
	}
	bitutil.SetBit(d.Validity, d.Offset+i)
}

// Nulls returns the positions of the null elements.
func (d *Data) Nulls() *roaring.Bitmap {
	return bitutil.NullsToRoaring(d.Validity, d.Offset, d.Length)
}

// SetNulls replaces d's validity with a fresh bitmap where exactly the
// positions in nulls are null. Positions >= d.Length are ignored. A nil or
// empty nulls drops the bitmap.
func (d *Data) SetNulls(nulls *roaring.Bitmap) {
	if nulls == nil || nulls.IsEmpty() {
		d.Validity, d.NullN = nil, 0
		return
	}
	d.Validity = mem.AllocAligned(bitutil.BytesForBits(d.Offset + d.Length))
	bitutil.FromRoaring(nulls, d.Validity, d.Offset, d.Length)
	d.NullN = UnknownNullCount
}

// Slice returns a view of n elements starting at element off.
func (d *Data) Slice(off, n int) *Data {
	if off < 0 || n < 0 || off+n > d.Length {
		panic(fmt.Sprintf("array: slice [%d:%d] out of range for length %d", off, off+n, d.Length))
	}
	s := *d
	s.Offset = d.Offset + off
	s.Length = n
	if d.NullN != 0 {
		s.NullN = UnknownNullCount
	}
	return &s
}

// Int64At returns element i sign- or zero-extended to int64. Uint64 values
// above math.MaxInt64 wrap; use Uint64At for unsigned types.
func (d *Data) Int64At(i int) int64 {
	return int64(d.Uint64At(i))
}

// Uint64At returns the raw bits of element i, sign-extended for signed types.
func (d *Data) Uint64At(i int) uint64 {
	w := d.Type.ByteWidth()
	b := d.Values[(d.Offset+i)*w:]
	switch d.Type {
	case Int8:
		return uint64(int64(int8(b[0])))
	case Uint8:
		return uint64(b[0])
	case Int16:
		return uint64(int64(int16(binary.NativeEndian.Uint16(b))))
	case Uint16:
		return uint64(binary.NativeEndian.Uint16(b))
	case Int32:
		return uint64(int64(int32(binary.NativeEndian.Uint32(b))))
	case Uint32:
		return uint64(binary.NativeEndian.Uint32(b))
	default:
		return binary.NativeEndian.Uint64(b)
	}
}

// SetUint64 stores the low ByteWidth bytes of v as element i.
func (d *Data) SetUint64(i int, v uint64) {
	w := d.Type.ByteWidth()
	b := d.Values[(d.Offset+i)*w:]
	switch w {
	case 1:
		b[0] = byte(v)
	case 2:
		binary.NativeEndian.PutUint16(b, uint16(v))
	case 4:
		binary.NativeEndian.PutUint32(b, uint32(v))
	default:
		binary.NativeEndian.PutUint64(b, v)
	}
}

// SetInt64 stores v truncated to the element width as element i.
func (d *Data) SetInt64(i int, v int64) {
	d.SetUint64(i, uint64(v))
}
