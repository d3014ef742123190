package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/intguard/internal/inttype"
)

// Expected outcome tokens for a scenario case.
const (
	ExpectOK     = "ok"
	ExpectRefuse = "refuse"
)

// Scenario defines a conformance test scenario: a named list of chain
// evaluations with expected outcomes.
type Scenario struct {
	// Name uniquely identifies this scenario. It is also the golden file
	// name.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// RunToken is an optional fixed token for deterministic runs.
	// If empty, Run assigns a fresh unique token; golden scenarios
	// should pin one.
	RunToken string `yaml:"run_token,omitempty"`

	// Cases are evaluated in order.
	Cases []Case `yaml:"cases"`
}

// Case is one chain evaluation with its expectation.
type Case struct {
	// Program is the chain format string. It may be deliberately
	// malformed when the case expects a refusal.
	Program string `yaml:"program"`

	// Operands are value literals in "tag:digits" form ("u8:255"), or
	// bare decimals for the platform-native signed type.
	Operands []string `yaml:"operands,omitempty"`

	// Expect is "ok" or "refuse".
	Expect string `yaml:"expect"`

	// Result is the expected final value literal, required when Expect
	// is "ok". The tag must match the chain's working type.
	Result string `yaml:"result,omitempty"`
}

// LoadScenario reads and parses a scenario YAML file. Unknown fields are
// rejected to catch typos, and required fields are validated.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and coherent.
// Operand literals are parsed here so a broken scenario fails at load time,
// not mid-run.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}
	if len(s.Cases) == 0 {
		return fmt.Errorf("cases list is required and must be non-empty")
	}

	for i, c := range s.Cases {
		switch c.Expect {
		case ExpectOK:
			if c.Result == "" {
				return fmt.Errorf("cases[%d]: result is required when expect is %q", i, ExpectOK)
			}
			if _, err := inttype.ParseValue(c.Result); err != nil {
				return fmt.Errorf("cases[%d]: bad result literal: %w", i, err)
			}
		case ExpectRefuse:
			if c.Result != "" {
				return fmt.Errorf("cases[%d]: result must be empty when expect is %q", i, ExpectRefuse)
			}
		default:
			return fmt.Errorf("cases[%d]: expect must be %q or %q, got %q", i, ExpectOK, ExpectRefuse, c.Expect)
		}

		for j, lit := range c.Operands {
			if _, err := inttype.ParseValue(lit); err != nil {
				return fmt.Errorf("cases[%d].operands[%d]: %w", i, j, err)
			}
		}
	}

	return nil
}
