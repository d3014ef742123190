package inttype

import (
	"fmt"
	"math"
	"math/bits"
)

// Type is a tag identifying one of the eight canonical integer types.
//
// Exactly one tag applies to any concrete value. Limits are fixed per tag
// and defined as constant tables, never computed at runtime.
type Type uint8

const (
	S8 Type = iota
	S16
	S32
	S64
	U8
	U16
	U32
	U64

	numTypes
)

// typeInfo holds the fixed attributes of each canonical tag.
//
// min is meaningful only for signed tags (0 for unsigned). max is the
// largest representable value viewed as a uint64, which is wide enough for
// every tag.
var typeInfo = [numTypes]struct {
	name   string
	width  int
	signed bool
	min    int64
	max    uint64
}{
	S8:  {"s8", 8, true, math.MinInt8, math.MaxInt8},
	S16: {"s16", 16, true, math.MinInt16, math.MaxInt16},
	S32: {"s32", 32, true, math.MinInt32, math.MaxInt32},
	S64: {"s64", 64, true, math.MinInt64, math.MaxInt64},
	U8:  {"u8", 8, false, 0, math.MaxUint8},
	U16: {"u16", 16, false, 0, math.MaxUint16},
	U32: {"u32", 32, false, 0, math.MaxUint32},
	U64: {"u64", 64, false, 0, math.MaxUint64},
}

// Types lists every canonical tag in declaration order.
// Useful for exhaustive iteration in tests and the limits table.
var Types = []Type{S8, S16, S32, S64, U8, U16, U32, U64}

// Valid reports whether t is one of the eight canonical tags.
func (t Type) Valid() bool {
	return t < numTypes
}

// String returns the textual token for the tag ("s8", "u64", ...).
// This is the same token the chain grammar uses.
func (t Type) String() string {
	if !t.Valid() {
		return fmt.Sprintf("Type(%d)", uint8(t))
	}
	return typeInfo[t].name
}

// Width returns the tag's size in bits.
func (t Type) Width() int {
	return typeInfo[t].width
}

// Signed reports whether the tag is a signed type.
func (t Type) Signed() bool {
	return typeInfo[t].signed
}

// Min returns the smallest representable value. It is 0 for unsigned tags.
func (t Type) Min() int64 {
	return typeInfo[t].min
}

// Max returns the largest representable value, widened to uint64.
func (t Type) Max() uint64 {
	return typeInfo[t].max
}

// Native returns the tag matching Go's int width on this platform.
// A chain with no leading type token uses this as its working type.
func Native() Type {
	if bits.UintSize == 64 {
		return S64
	}
	return S32
}

// NativeUnsigned returns the tag matching Go's uint width on this platform.
func NativeUnsigned() Type {
	if bits.UintSize == 64 {
		return U64
	}
	return U32
}

// ParseType resolves a textual type token ("s8", "u64", ...).
func ParseType(s string) (Type, error) {
	for _, t := range Types {
		if typeInfo[t].name == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown integer type %q", s)
}
