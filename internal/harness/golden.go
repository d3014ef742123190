package harness

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// RunWithGolden executes a scenario and compares its trace against a
// golden file at testdata/golden/{scenario.Name}.golden.
//
// Golden scenarios should pin a run_token; otherwise each run's fresh UUID
// would break byte-for-byte comparison. To regenerate golden files, run:
//
//	go test ./internal/harness -update
func RunWithGolden(t *testing.T, scenario *Scenario) (*Result, error) {
	t.Helper()

	result, err := NewRunner(nil).Run(scenario)
	if err != nil {
		return nil, err
	}

	// Shift operators appear verbatim in programs, so HTML escaping is
	// disabled to keep golden files readable.
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return nil, fmt.Errorf("marshal trace snapshot: %w", err)
	}
	snapshot := buf.Bytes()

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenario.Name, snapshot)

	return result, nil
}
