package array

import (
	"fmt"
	"strings"
)

// Type is the element type of an integer array.
type Type uint8

const (
	// Invalid is the zero Type.
	Invalid Type = iota
	Int8
	Int16
	Int32
	Int64
	Uint8
	Uint16
	Uint32
	Uint64
)

var typeNames = [...]string{
	Invalid: "invalid",
	Int8:    "int8",
	Int16:   "int16",
	Int32:   "int32",
	Int64:   "int64",
	Uint8:   "uint8",
	Uint16:  "uint16",
	Uint32:  "uint32",
	Uint64:  "uint64",
}

// String returns the lower-case type name.
func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return fmt.Sprintf("type(%d)", uint8(t))
}

// IsValid reports whether t is one of the eight integer types.
func (t Type) IsValid() bool {
	return t >= Int8 && t <= Uint64
}

// IsSigned reports whether t is a signed integer type.
func (t Type) IsSigned() bool {
	return t >= Int8 && t <= Int64
}

// ByteWidth returns the element width in bytes, or 0 for an invalid type.
func (t Type) ByteWidth() int {
	switch t {
	case Int8, Uint8:
		return 1
	case Int16, Uint16:
		return 2
	case Int32, Uint32:
		return 4
	case Int64, Uint64:
		return 8
	default:
		return 0
	}
}

// TypeForWidth returns the integer type with the given byte width and
// signedness, or Invalid if width is not one of 1, 2, 4, 8.
func TypeForWidth(width uint8, signed bool) Type {
	var t Type
	switch width {
	case 1:
		t = Uint8
	case 2:
		t = Uint16
	case 4:
		t = Uint32
	case 8:
		t = Uint64
	default:
		return Invalid
	}
	if signed {
		t -= Uint8 - Int8
	}
	return t
}

// ParseType parses a type name such as "int16" or "UINT8".
func ParseType(s string) (Type, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for t := Int8; t <= Uint64; t++ {
		if typeNames[t] == s {
			return t, true
		}
	}
	return Invalid, false
}

// Signed is the set of signed integer element types.
type Signed interface {
	int8 | int16 | int32 | int64
}

// Unsigned is the set of unsigned integer element types.
type Unsigned interface {
	uint8 | uint16 | uint32 | uint64
}

// Integer is the set of integer element types.
type Integer interface {
	Signed | Unsigned
}

// TypeOf returns the Type corresponding to T.
func TypeOf[T Integer]() Type {
	var zero T
	switch any(zero).(type) {
	case int8:
		return Int8
	case int16:
		return Int16
	case int32:
		return Int32
	case int64:
		return Int64
	case uint8:
		return Uint8
	case uint16:
		return Uint16
	case uint32:
		return Uint32
	default:
		return Uint64
	}
}
