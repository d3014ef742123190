package chain

import (
	"errors"
	"fmt"
)

// ParseError describes why a program text was rejected.
//
// Rich parse errors exist for diagnostics only (the CLI reports them); at
// the boolean entry points they collapse into the same refusal signal as an
// arithmetic overflow, and they always occur before any operand is
// consumed.
type ParseError struct {
	// Code identifies the error category.
	Code ParseErrorCode

	// Pos is the byte offset of the offending token.
	Pos int

	// Token is the offending input fragment, if any.
	Token string
}

// ParseErrorCode categorizes parse errors.
type ParseErrorCode string

const (
	// ErrCodeEmptyProgram indicates an empty format string.
	ErrCodeEmptyProgram ParseErrorCode = "EMPTY_PROGRAM"

	// ErrCodeBadTypeToken indicates a malformed or partial type token,
	// e.g. "u7" or a trailing lone "s".
	ErrCodeBadTypeToken ParseErrorCode = "BAD_TYPE_TOKEN"

	// ErrCodeBadOperator indicates an unrecognized character where an
	// operator was expected, including a lone '<' or '>'.
	ErrCodeBadOperator ParseErrorCode = "BAD_OPERATOR"
)

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Token != "" {
		return fmt.Sprintf("%s: %q at offset %d", e.Code, e.Token, e.Pos)
	}
	return fmt.Sprintf("%s at offset %d", e.Code, e.Pos)
}

// IsParseError reports whether err is a chain parse error.
// Uses errors.As to handle wrapped errors.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}
