package chain

import (
	"fmt"

	"github.com/roach88/intguard/internal/checked"
	"github.com/roach88/intguard/internal/inttype"
)

// Operands returns the number of operand values the program consumes:
// one for the initial left-hand value plus one per step.
func (p *Program) Operands() int {
	return 1 + len(p.Steps)
}

// Eval runs the chain over the operand sequence.
//
// The first operand is the initial left-hand value; each step consumes one
// further right-hand operand, reusing the accumulator as its left side.
// Every operand passes through the safe-cast policy before its operator is
// applied: a tagged step checks its declared operand type first, then the
// working type. Any failed cast or refused operation refuses the whole
// chain with no partial result.
//
// Supplying the wrong number of operands is a contract violation and
// panics; it is a caller bug, not an arithmetic refusal.
func (p *Program) Eval(operands ...inttype.Value) (inttype.Value, bool) {
	if len(operands) != p.Operands() {
		panic(fmt.Sprintf("chain: program %q takes %d operands, got %d",
			p.Format, p.Operands(), len(operands)))
	}

	acc, ok := operands[0].Cast(p.LHSType)
	if !ok {
		return inttype.Value{}, false
	}

	for i, step := range p.Steps {
		rhs := operands[i+1]
		if step.Tagged {
			rhs, ok = rhs.Cast(step.Operand)
			if !ok {
				return inttype.Value{}, false
			}
		}
		acc, ok = checked.Apply(step.Op, p.LHSType, acc, rhs)
		if !ok {
			return inttype.Value{}, false
		}
	}

	return acc, true
}

// Evaluate parses and runs a program in one call. A malformed program
// refuses exactly like an arithmetic failure, before any operand is
// consumed; use Parse for diagnosable errors.
func Evaluate(format string, operands ...inttype.Value) (inttype.Value, bool) {
	prog, err := Parse(format)
	if err != nil {
		return inttype.Value{}, false
	}
	return prog.Eval(operands...)
}

// EvaluateInto evaluates a program and writes the result through dst.
//
// The write happens at most once, at the very end of a successful
// evaluation, and only if the final value is representable in T; on any
// refusal *dst is left untouched, so callers distinguish "not written"
// from "written" by convention. A nil dst asks only whether the chain
// would succeed.
func EvaluateInto[T inttype.Integer](dst *T, format string, operands ...inttype.Value) bool {
	v, ok := Evaluate(format, operands...)
	if !ok {
		return false
	}
	r, ok := inttype.As[T](v)
	if !ok {
		return false
	}
	if dst != nil {
		*dst = r
	}
	return true
}
