// Package checked implements the primitive overflow-checked integer
// operations.
//
// Every operation is a pure, single-step decision with exactly two outcomes:
// the mathematically exact result, or a refusal. Refusal covers magnitude
// overflow, division by zero, out-of-range shifts, and failed safe-casts;
// callers cannot tell these apart from the boolean alone, and that coarse
// contract is deliberate.
//
// Two surfaces are provided:
//
//   - Generic primitives (Add, Sub, Mul, ...) over any Go integer type,
//     one implementation per operator rather than one per type pair.
//   - Apply, the tagged dispatcher used by the chain evaluator: it
//     safe-casts two inttype.Values into a working type and runs the
//     requested operator at that type's width.
package checked
