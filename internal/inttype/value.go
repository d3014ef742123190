package inttype

import (
	"fmt"
	"strconv"
	"strings"
)

// Value is a tagged integer: a canonical Type plus a 64-bit payload.
//
// The payload is the value's two's-complement bit pattern, sign-extended for
// signed tags and zero-extended for unsigned ones. This gives simultaneous
// signed (int64) and unsigned (uint64) views of the same bits, wide enough
// for every canonical tag. Values are created transiently per operand and
// never persisted.
type Value struct {
	t    Type
	bits uint64
}

// Integer is the closed set of Go types a Value can be built from or
// extracted into.
type Integer interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 | uintptr
}

// Of builds a Value from a concrete Go integer. The tag is inferred from
// the Go type; int, uint, and uintptr map to the platform-native tags.
func Of[T Integer](v T) Value {
	switch v := any(v).(type) {
	case int:
		return Value{Native(), uint64(int64(v))}
	case int8:
		return Value{S8, uint64(int64(v))}
	case int16:
		return Value{S16, uint64(int64(v))}
	case int32:
		return Value{S32, uint64(int64(v))}
	case int64:
		return Value{S64, uint64(v)}
	case uint:
		return Value{NativeUnsigned(), uint64(v)}
	case uint8:
		return Value{U8, uint64(v)}
	case uint16:
		return Value{U16, uint64(v)}
	case uint32:
		return Value{U32, uint64(v)}
	case uint64:
		return Value{U64, v}
	case uintptr:
		return Value{NativeUnsigned(), uint64(v)}
	default:
		panic("unreachable")
	}
}

// Make builds a Value from a tag and raw container bits. Bits outside the
// tag's width are discarded and the payload is re-extended, so the container
// is always canonical.
func Make(t Type, bits uint64) Value {
	switch t {
	case S8:
		return Value{t, uint64(int64(int8(bits)))}
	case S16:
		return Value{t, uint64(int64(int16(bits)))}
	case S32:
		return Value{t, uint64(int64(int32(bits)))}
	case S64:
		return Value{t, bits}
	case U8:
		return Value{t, uint64(uint8(bits))}
	case U16:
		return Value{t, uint64(uint16(bits))}
	case U32:
		return Value{t, uint64(uint32(bits))}
	case U64:
		return Value{t, bits}
	default:
		panic(fmt.Sprintf("inttype: invalid tag %v", t))
	}
}

// Type returns the value's tag.
func (v Value) Type() Type {
	return v.t
}

// Bits returns the raw 64-bit container.
func (v Value) Bits() uint64 {
	return v.bits
}

// Negative reports whether the value is mathematically negative.
// Unsigned values are never negative, whatever their bit pattern.
func (v Value) Negative() bool {
	return v.t.Signed() && int64(v.bits) < 0
}

// String renders the value as the tag, a colon, and the decimal payload,
// e.g. "u8:255" or "s16:-300". ParseValue accepts the same form.
func (v Value) String() string {
	return v.t.String() + ":" + v.Decimal()
}

// Decimal renders the mathematical value in base 10 without the tag.
func (v Value) Decimal() string {
	if v.Negative() {
		return strconv.FormatInt(int64(v.bits), 10)
	}
	return strconv.FormatUint(v.bits, 10)
}

// CanCast reports whether the value can be reinterpreted as target without
// changing its mathematical value. The rules, in precedence order:
//
//  1. Identical tags always cast.
//  2. A negative value never casts to an unsigned tag.
//  3. A negative value casts to a signed tag iff it is >= the target's min.
//  4. A non-negative value casts iff it is <= the target's max.
//
// The decision is independent of any operation that may follow.
func (v Value) CanCast(target Type) bool {
	if v.t == target {
		return true
	}
	if v.Negative() {
		if !target.Signed() {
			return false
		}
		return int64(v.bits) >= target.Min()
	}
	return v.bits <= target.Max()
}

// Cast reinterprets the value as target. It fails exactly when CanCast
// fails; on success the mathematical value is unchanged, so casting back to
// the original tag always yields the identical value.
func (v Value) Cast(target Type) (Value, bool) {
	if !v.CanCast(target) {
		return Value{}, false
	}
	return Value{target, v.bits}, true
}

// tagOf maps a concrete Go integer type to its canonical tag.
func tagOf[T Integer]() Type {
	switch any(T(0)).(type) {
	case int:
		return Native()
	case int8:
		return S8
	case int16:
		return S16
	case int32:
		return S32
	case int64:
		return S64
	case uint:
		return NativeUnsigned()
	case uint8:
		return U8
	case uint16:
		return U16
	case uint32:
		return U32
	case uint64:
		return U64
	case uintptr:
		return NativeUnsigned()
	default:
		panic("unreachable")
	}
}

// As extracts the value into a concrete Go integer type. It fails exactly
// when the safe-cast to the matching tag fails.
func As[T Integer](v Value) (T, bool) {
	if !v.CanCast(tagOf[T]()) {
		var zero T
		return zero, false
	}
	return T(v.bits), true
}

// Int8 extracts the value as an int8 if it is representable.
func (v Value) Int8() (int8, bool) { return As[int8](v) }

// Int16 extracts the value as an int16 if it is representable.
func (v Value) Int16() (int16, bool) { return As[int16](v) }

// Int32 extracts the value as an int32 if it is representable.
func (v Value) Int32() (int32, bool) { return As[int32](v) }

// Int64 extracts the value as an int64 if it is representable.
func (v Value) Int64() (int64, bool) { return As[int64](v) }

// Uint8 extracts the value as a uint8 if it is representable.
func (v Value) Uint8() (uint8, bool) { return As[uint8](v) }

// Uint16 extracts the value as a uint16 if it is representable.
func (v Value) Uint16() (uint16, bool) { return As[uint16](v) }

// Uint32 extracts the value as a uint32 if it is representable.
func (v Value) Uint32() (uint32, bool) { return As[uint32](v) }

// Uint64 extracts the value as a uint64 if it is representable.
func (v Value) Uint64() (uint64, bool) { return As[uint64](v) }

// ParseValue parses a "tag:digits" literal ("u8:255", "s16:-300") or a bare
// decimal, which takes the platform-native signed tag. The digits must be in
// range for the tag; unsigned tags reject a sign.
func ParseValue(s string) (Value, error) {
	t := Native()
	digits := s
	if i := strings.IndexByte(s, ':'); i >= 0 {
		var err error
		t, err = ParseType(s[:i])
		if err != nil {
			return Value{}, err
		}
		digits = s[i+1:]
	}
	if t.Signed() {
		n, err := strconv.ParseInt(digits, 10, t.Width())
		if err != nil {
			return Value{}, fmt.Errorf("invalid %v literal %q: %w", t, digits, err)
		}
		return Make(t, uint64(n)), nil
	}
	n, err := strconv.ParseUint(digits, 10, t.Width())
	if err != nil {
		return Value{}, fmt.Errorf("invalid %v literal %q: %w", t, digits, err)
	}
	return Make(t, n), nil
}
