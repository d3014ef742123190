package harness

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/roach88/intguard/internal/chain"
	"github.com/roach88/intguard/internal/inttype"
)

// TokenGenerator produces run tokens. The default generator returns fresh
// UUIDs; tests substitute a fixed generator for deterministic traces.
type TokenGenerator interface {
	Generate() string
}

// UUIDGenerator generates RFC 4122 run tokens.
type UUIDGenerator struct{}

// Generate returns a fresh UUID string.
func (UUIDGenerator) Generate() string {
	return uuid.NewString()
}

// TraceEvent records the outcome of one scenario case.
type TraceEvent struct {
	// Seq is the 1-based case number within the run.
	Seq int `json:"seq"`

	// Program is the case's format string.
	Program string `json:"program"`

	// Operands are the case's operand literals.
	Operands []string `json:"operands,omitempty"`

	// Outcome is "ok" or "refuse".
	Outcome string `json:"outcome"`

	// Value is the final value literal on success, empty on refusal.
	Value string `json:"value,omitempty"`
}

// Result is the outcome of running a scenario.
type Result struct {
	// ScenarioName echoes the scenario's name.
	ScenarioName string `json:"scenario_name"`

	// RunToken identifies this run.
	RunToken string `json:"run_token"`

	// Trace holds one event per case, in case order.
	Trace []TraceEvent `json:"trace"`

	// Failures lists expectation mismatches, one message per failed
	// case. Empty means the scenario passed.
	Failures []string `json:"failures,omitempty"`
}

// Passed reports whether every case met its expectation.
func (r *Result) Passed() bool {
	return len(r.Failures) == 0
}

// Runner executes scenarios.
type Runner struct {
	tokens TokenGenerator
}

// NewRunner creates a runner with the given token generator. A nil
// generator selects UUIDGenerator.
func NewRunner(tokens TokenGenerator) *Runner {
	if tokens == nil {
		tokens = UUIDGenerator{}
	}
	return &Runner{tokens: tokens}
}

// Run evaluates every case of the scenario through the chain evaluator.
//
// Expectation mismatches are recorded in the result, not returned as
// errors; an error means the scenario itself is broken (an operand count
// that cannot satisfy the program's contract). Malformed programs are not
// scenario errors: they evaluate to a refusal, which a case may expect.
func (r *Runner) Run(s *Scenario) (*Result, error) {
	token := s.RunToken
	if token == "" {
		token = r.tokens.Generate()
	}

	result := &Result{
		ScenarioName: s.Name,
		RunToken:     token,
		Trace:        make([]TraceEvent, 0, len(s.Cases)),
	}

	for i, c := range s.Cases {
		event := TraceEvent{
			Seq:      i + 1,
			Program:  c.Program,
			Operands: c.Operands,
			Outcome:  ExpectRefuse,
		}

		operands := make([]inttype.Value, len(c.Operands))
		for j, lit := range c.Operands {
			v, err := inttype.ParseValue(lit)
			if err != nil {
				return nil, fmt.Errorf("cases[%d].operands[%d]: %w", i, j, err)
			}
			operands[j] = v
		}

		// A chain.Eval operand count mismatch is a caller bug by
		// contract, so the harness checks the count itself and turns
		// it into a scenario error rather than a panic.
		prog, perr := chain.Parse(c.Program)
		if perr == nil {
			if len(operands) != prog.Operands() {
				return nil, fmt.Errorf("cases[%d]: program %q takes %d operands, scenario supplies %d",
					i, c.Program, prog.Operands(), len(operands))
			}
			if v, ok := prog.Eval(operands...); ok {
				event.Outcome = ExpectOK
				event.Value = v.String()
			}
		}

		if event.Outcome != c.Expect {
			result.Failures = append(result.Failures,
				fmt.Sprintf("cases[%d] %q: expected %s, got %s", i, c.Program, c.Expect, event.Outcome))
		} else if c.Expect == ExpectOK && event.Value != mustCanonical(c.Result) {
			result.Failures = append(result.Failures,
				fmt.Sprintf("cases[%d] %q: expected %s, got %s", i, c.Program, mustCanonical(c.Result), event.Value))
		}

		result.Trace = append(result.Trace, event)
	}

	return result, nil
}

// mustCanonical normalizes an expected-result literal to Value.String form
// so comparisons ignore spelling differences ("20" vs "s64:20"). Literals
// are validated at load time, so a parse failure here is a bug.
func mustCanonical(lit string) string {
	v, err := inttype.ParseValue(lit)
	if err != nil {
		panic(fmt.Sprintf("harness: unvalidated result literal %q: %v", lit, err))
	}
	return v.String()
}
