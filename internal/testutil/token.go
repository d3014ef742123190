// Package testutil provides deterministic helpers for tests.
package testutil

// FixedTokenGenerator returns the same run token every time.
//
// This enables deterministic harness runs and golden snapshot comparison:
// the same scenario with the same FixedTokenGenerator produces
// byte-identical traces. Implements harness.TokenGenerator.
type FixedTokenGenerator struct {
	token string
}

// NewFixedTokenGenerator creates a fixed run token generator.
// If token is empty, Generate returns "test-run-default".
func NewFixedTokenGenerator(token string) *FixedTokenGenerator {
	if token == "" {
		token = "test-run-default"
	}
	return &FixedTokenGenerator{token: token}
}

// Generate returns the fixed token.
func (g *FixedTokenGenerator) Generate() string {
	return g.token
}
