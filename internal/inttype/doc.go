// Package inttype provides the canonical integer type tags and the tagged
// value container used throughout intguard.
//
// This package is the foundational layer: all other internal packages import
// inttype; inttype imports nothing internal. It owns two things:
//
//   - Type: the closed set of eight canonical integer tags
//     (s8/s16/s32/s64/u8/u16/u32/u64) with their fixed limits.
//   - Value: a (tag, payload) pair holding any representable value in a
//     single 64-bit container with simultaneous signed and unsigned views.
//
// The safe-cast policy lives here as well (Value.CanCast / Value.Cast). It
// decides whether a value may be reinterpreted as another tag without
// changing its mathematical value, independent of whatever operation
// follows. In particular a negative value never casts to an unsigned tag,
// even when the operation that follows could tolerate it.
package inttype
