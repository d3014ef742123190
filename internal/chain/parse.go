package chain

import (
	"strings"

	"github.com/roach88/intguard/internal/checked"
	"github.com/roach88/intguard/internal/inttype"
)

// Step is one parsed operation in a chain.
type Step struct {
	// Op is the operator to apply.
	Op checked.Op

	// Operand is the type used to interpret this step's right-hand
	// operand before the working-type cast. Defaults to the chain's
	// working type when the program carries no token for this step.
	Operand inttype.Type

	// Tagged records whether Operand came from an explicit token.
	Tagged bool
}

// Program is a parsed chain. The zero steps case is legal: a program that
// is just a type token evaluates a single operand by casting it.
type Program struct {
	// Format is the original program text.
	Format string

	// LHSType is the chain's working type: the leading type token, or
	// the platform-native signed type if the program has none.
	LHSType inttype.Type

	// LHSTagged records whether LHSType came from an explicit token.
	LHSTagged bool

	// Steps are the operations in left-to-right order.
	Steps []Step
}

// Parse scans a program text into a Program. The grammar is strict: no
// whitespace, no characters beyond type tokens and operator tokens, and an
// empty text is an error. Errors are *ParseError.
func Parse(format string) (*Program, error) {
	if format == "" {
		return nil, &ParseError{Code: ErrCodeEmptyProgram}
	}

	s := scanner{src: format}
	prog := &Program{Format: format, LHSType: inttype.Native()}

	t, ok, err := s.tryType()
	if err != nil {
		return nil, err
	}
	if ok {
		prog.LHSType = t
		prog.LHSTagged = true
	}

	for !s.eof() {
		op, err := s.operator()
		if err != nil {
			return nil, err
		}
		step := Step{Op: op, Operand: prog.LHSType}
		t, ok, err := s.tryType()
		if err != nil {
			return nil, err
		}
		if ok {
			step.Operand = t
			step.Tagged = true
		}
		prog.Steps = append(prog.Steps, step)
	}

	return prog, nil
}

// scanner is a byte-level cursor over the program text. The grammar is
// single-byte except for type tokens and the two shift operators, so no
// rune decoding is needed; any multi-byte character fails as an operator.
type scanner struct {
	src string
	pos int
}

func (s *scanner) eof() bool {
	return s.pos >= len(s.src)
}

// typeWidths lists the width digits of a type token, longest first so that
// "16"/"32"/"64" are not misread as a bad "1"/"3"/"6".
var typeWidths = [...]string{"16", "32", "64", "8"}

// tryType scans an optional type token. A 'u' or 's' at the cursor commits
// to a type token: if the width digits do not follow, that is a parse
// error, not a fallthrough.
func (s *scanner) tryType() (inttype.Type, bool, error) {
	if s.eof() {
		return 0, false, nil
	}
	c := s.src[s.pos]
	if c != 'u' && c != 's' {
		return 0, false, nil
	}

	rest := s.src[s.pos+1:]
	for _, w := range typeWidths {
		if strings.HasPrefix(rest, w) {
			tok := s.src[s.pos : s.pos+1+len(w)]
			t, err := inttype.ParseType(tok)
			if err != nil {
				return 0, false, &ParseError{Code: ErrCodeBadTypeToken, Pos: s.pos, Token: tok}
			}
			s.pos += 1 + len(w)
			return t, true, nil
		}
	}

	end := s.pos + 3
	if end > len(s.src) {
		end = len(s.src)
	}
	return 0, false, &ParseError{Code: ErrCodeBadTypeToken, Pos: s.pos, Token: s.src[s.pos:end]}
}

// operator scans the next operator token.
func (s *scanner) operator() (checked.Op, error) {
	pos := s.pos
	switch c := s.src[pos]; c {
	case '+':
		s.pos++
		return checked.OpAdd, nil
	case '-':
		s.pos++
		return checked.OpSub, nil
	case '*':
		s.pos++
		return checked.OpMul, nil
	case '/':
		s.pos++
		return checked.OpDiv, nil
	case '%':
		s.pos++
		return checked.OpMod, nil
	case '<':
		if strings.HasPrefix(s.src[pos:], "<<") {
			s.pos += 2
			return checked.OpShl, nil
		}
		return 0, &ParseError{Code: ErrCodeBadOperator, Pos: pos, Token: "<"}
	case '>':
		if strings.HasPrefix(s.src[pos:], ">>") {
			s.pos += 2
			return checked.OpShr, nil
		}
		return 0, &ParseError{Code: ErrCodeBadOperator, Pos: pos, Token: ">"}
	default:
		return 0, &ParseError{Code: ErrCodeBadOperator, Pos: pos, Token: string(c)}
	}
}
