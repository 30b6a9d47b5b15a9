package array

import (
	"fmt"
	"strconv"
	"strings"

	gojson "github.com/goccy/go-json"
)

// FromJSON builds an array of type typ from a JSON list literal such as
// "[0, null, 127]". Every number must fit typ; null entries become null
// slots holding zero. A validity bitmap is allocated only if the literal
// contains a null.
func FromJSON(typ Type, literal string) (*Data, error) {
	if !typ.IsValid() {
		return nil, fmt.Errorf("array: invalid type %s", typ)
	}

	dec := gojson.NewDecoder(strings.NewReader(literal))
	dec.UseNumber()

	var raw []any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("array: parse %s literal: %w", typ, err)
	}

	hasNull := false
	for _, v := range raw {
		if v == nil {
			hasNull = true
			break
		}
	}

	d := New(typ, len(raw), hasNull)
	bits := typ.ByteWidth() * 8
	for i, v := range raw {
		switch x := v.(type) {
		case nil:
			d.SetNull(i)
		case gojson.Number:
			if typ.IsSigned() {
				n, err := strconv.ParseInt(x.String(), 10, bits)
				if err != nil {
					return nil, fmt.Errorf("array: element %d: %w", i, err)
				}
				d.SetInt64(i, n)
			} else {
				n, err := strconv.ParseUint(x.String(), 10, bits)
				if err != nil {
					return nil, fmt.Errorf("array: element %d: %w", i, err)
				}
				d.SetUint64(i, n)
			}
		default:
			return nil, fmt.Errorf("array: element %d: unexpected %T in %s literal", i, v, typ)
		}
	}
	return d, nil
}

// MustFromJSON is like FromJSON but panics on error. Intended for tests.
func MustFromJSON(typ Type, literal string) *Data {
	d, err := FromJSON(typ, literal)
	if err != nil {
		panic(err)
	}
	return d
}

// ToJSON renders d as a JSON list with null for null slots.
func ToJSON(d *Data) ([]byte, error) {
	out := make([]any, d.Length)
	for i := range out {
		switch {
		case !d.IsValid(i):
			out[i] = nil
		case d.Type.IsSigned():
			out[i] = d.Int64At(i)
		default:
			out[i] = d.Uint64At(i)
		}
	}

	return gojson.Marshal(out)
}
