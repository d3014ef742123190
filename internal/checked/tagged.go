package checked

import (
	"fmt"

	"github.com/roach88/intguard/internal/inttype"
)

// Op identifies a checked operator. The String form is the token the chain
// grammar uses.
type Op uint8

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpShl
	OpShr

	numOps
)

var opTokens = [numOps]string{
	OpAdd: "+",
	OpSub: "-",
	OpMul: "*",
	OpDiv: "/",
	OpMod: "%",
	OpShl: "<<",
	OpShr: ">>",
}

// Valid reports whether op is a known operator.
func (op Op) Valid() bool {
	return op < numOps
}

// String returns the operator's format token.
func (op Op) String() string {
	if !op.Valid() {
		return fmt.Sprintf("Op(%d)", uint8(op))
	}
	return opTokens[op]
}

// Apply runs op over a and b at the given working type.
//
// Both operands are safe-cast into the working type first; either failed
// cast refuses before any arithmetic is attempted, indistinguishable from
// an in-range overflow. On success the result carries the working tag.
// This is the single dispatch point between tags and the generic
// primitives; there is no per-(operator, type, type) expansion.
func Apply(op Op, working inttype.Type, a, b inttype.Value) (inttype.Value, bool) {
	switch working {
	case inttype.S8:
		return applyAs[int8](op, a, b)
	case inttype.S16:
		return applyAs[int16](op, a, b)
	case inttype.S32:
		return applyAs[int32](op, a, b)
	case inttype.S64:
		return applyAs[int64](op, a, b)
	case inttype.U8:
		return applyAs[uint8](op, a, b)
	case inttype.U16:
		return applyAs[uint16](op, a, b)
	case inttype.U32:
		return applyAs[uint32](op, a, b)
	case inttype.U64:
		return applyAs[uint64](op, a, b)
	default:
		panic(fmt.Sprintf("checked: invalid working type %v", working))
	}
}

// applyAs narrows both operands to T via the safe-cast policy, then runs
// the primitive at T.
func applyAs[T inttype.Integer](op Op, a, b inttype.Value) (inttype.Value, bool) {
	x, ok := inttype.As[T](a)
	if !ok {
		return inttype.Value{}, false
	}
	y, ok := inttype.As[T](b)
	if !ok {
		return inttype.Value{}, false
	}

	var r T
	switch op {
	case OpAdd:
		r, ok = Add(x, y)
	case OpSub:
		r, ok = Sub(x, y)
	case OpMul:
		r, ok = Mul(x, y)
	case OpDiv:
		r, ok = Div(x, y)
	case OpMod:
		r, ok = Mod(x, y)
	case OpShl:
		r, ok = Shl(x, y)
	case OpShr:
		r, ok = Shr(x, y)
	default:
		panic(fmt.Sprintf("checked: invalid operator %v", op))
	}
	if !ok {
		return inttype.Value{}, false
	}
	return inttype.Of(r), true
}
