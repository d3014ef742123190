// Package chain parses and evaluates chained-expression programs.
//
// A program is a compact format string describing a left-to-right chain of
// checked operations:
//
//	[type] (operator [type])*
//	type     ::= ('u'|'s')('8'|'16'|'32'|'64')
//	operator ::= '+' | '-' | '*' | '/' | '%' | '<<' | '>>'
//
// The leading type token fixes the chain's working type (platform-native
// signed when absent); the accumulator keeps that type for the whole chain.
// A type token after an operator describes how that step's right-hand
// operand is interpreted before it is safe-cast into the working type; it
// never retypes the accumulator.
//
// Evaluation is all-or-nothing. A failed safe-cast, a refused operation, or
// a malformed program refuses the entire chain with no partial result; the
// caller's result slot is written at most once, at the very end of a
// successful evaluation.
//
// Programs are parsed per invocation and not cached.
package chain
