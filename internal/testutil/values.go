package testutil

import (
	"fmt"

	"github.com/roach88/intguard/internal/inttype"
)

// MustValue parses a "tag:digits" literal, panicking on malformed input.
// For test fixtures only.
func MustValue(lit string) inttype.Value {
	v, err := inttype.ParseValue(lit)
	if err != nil {
		panic(fmt.Sprintf("testutil: bad value literal %q: %v", lit, err))
	}
	return v
}

// Values parses a list of value literals via MustValue.
func Values(lits ...string) []inttype.Value {
	vs := make([]inttype.Value, len(lits))
	for i, lit := range lits {
		vs[i] = MustValue(lit)
	}
	return vs
}
