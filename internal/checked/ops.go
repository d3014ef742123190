package checked

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// isSigned reports whether T is a signed type.
func isSigned[T constraints.Integer]() bool {
	var zero T
	return ^zero < zero
}

// widthOf returns T's size in bits. Sizeof on a zero value is resolved at
// compile time per instantiation.
func widthOf[T constraints.Integer]() int {
	var zero T
	return int(unsafe.Sizeof(zero)) * 8
}

// minOf returns T's smallest value: zero for unsigned types, -2^(w-1) for
// signed ones.
func minOf[T constraints.Integer]() T {
	var zero T
	if !isSigned[T]() {
		return zero
	}
	return T(1) << (widthOf[T]() - 1)
}

// Add returns a+b, refusing if the exact sum is not representable in T.
// Signed overflow is detected by the sign rule: the operands share a sign
// and the wrapped sum does not.
func Add[T constraints.Integer](a, b T) (T, bool) {
	var zero T
	sum := a + b
	if isSigned[T]() {
		if (a < zero) == (b < zero) && (sum < zero) != (a < zero) {
			return zero, false
		}
	} else if sum < a {
		return zero, false
	}
	return sum, true
}

// Sub returns a-b, refusing if the exact difference is not representable.
// For unsigned T this reduces to refusing when b > a.
func Sub[T constraints.Integer](a, b T) (T, bool) {
	var zero T
	diff := a - b
	if isSigned[T]() {
		if (a < zero) != (b < zero) && (diff < zero) != (a < zero) {
			return zero, false
		}
	} else if b > a {
		return zero, false
	}
	return diff, true
}

// Mul returns a*b, refusing if the exact product is not representable.
// Detection divides the wrapped product back out rather than trusting
// wraparound; a zero operand always succeeds with 0.
func Mul[T constraints.Integer](a, b T) (T, bool) {
	var zero T
	if a == zero || b == zero {
		return zero, true
	}
	if isSigned[T]() && a == ^zero {
		// a == -1: the quotient check below would divide by -1, which
		// traps for b == MinT. -MinT is also the one unrepresentable
		// product at this a.
		if b == minOf[T]() {
			return zero, false
		}
		return -b, true
	}
	prod := a * b
	if prod/a != b {
		return zero, false
	}
	return prod, true
}

// Div returns the truncating quotient a/b. It refuses for b == 0 and, for
// signed T, for MinT / -1, whose exact quotient is not representable.
func Div[T constraints.Integer](a, b T) (T, bool) {
	var zero T
	if b == zero {
		return zero, false
	}
	if isSigned[T]() && a == minOf[T]() && b == ^zero {
		return zero, false
	}
	return a / b, true
}

// Mod returns the remainder a%b. It refuses for b == 0 and, for signed T,
// for MinT % -1: the mathematical remainder is 0, but the case is treated
// the same as the unrepresentable quotient.
func Mod[T constraints.Integer](a, b T) (T, bool) {
	var zero T
	if b == zero {
		return zero, false
	}
	if isSigned[T]() && a == minOf[T]() && b == ^zero {
		return zero, false
	}
	return a % b, true
}

// Shl returns a<<b. It refuses if either operand is negative, if the count
// reaches T's width, or if any set bit would be shifted out, verified by
// shifting the result back.
func Shl[T constraints.Integer](a, b T) (T, bool) {
	var zero T
	if a < zero || b < zero {
		return zero, false
	}
	if uint64(b) >= uint64(widthOf[T]()) {
		return zero, false
	}
	r := a << b
	if r>>b != a {
		return zero, false
	}
	return r, true
}

// Shr returns a>>b. It refuses if either operand is negative or if the
// count reaches T's width. Refusing negative a is stricter than two's
// complement requires; callers rely on the rejection, so it is contract.
func Shr[T constraints.Integer](a, b T) (T, bool) {
	var zero T
	if a < zero || b < zero {
		return zero, false
	}
	if uint64(b) >= uint64(widthOf[T]()) {
		return zero, false
	}
	return a >> b, true
}

// Inc adds one to *p in place, writing only on success. Refuses at MaxT.
func Inc[T constraints.Integer](p *T) bool {
	v, ok := Add(*p, T(1))
	if !ok {
		return false
	}
	*p = v
	return true
}

// Dec subtracts one from *p in place, writing only on success.
// Refuses at MinT.
func Dec[T constraints.Integer](p *T) bool {
	v, ok := Sub(*p, T(1))
	if !ok {
		return false
	}
	*p = v
	return true
}
