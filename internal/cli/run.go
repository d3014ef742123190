package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/intguard/internal/harness"
)

// RunSummary is the success payload of the run command.
type RunSummary struct {
	Scenario string               `json:"scenario"`
	RunToken string               `json:"run_token"`
	Cases    int                  `json:"cases"`
	Failures []string             `json:"failures,omitempty"`
	Trace    []harness.TraceEvent `json:"trace,omitempty"`
}

func (s RunSummary) String() string {
	if len(s.Failures) == 0 {
		return fmt.Sprintf("scenario %s passed (%d cases)", s.Scenario, s.Cases)
	}
	out := fmt.Sprintf("scenario %s failed (%d of %d cases)", s.Scenario, len(s.Failures), s.Cases)
	for _, f := range s.Failures {
		out += "\n  " + f
	}
	return out
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	var withTrace bool

	cmd := &cobra.Command{
		Use:   "run <scenario.yaml>",
		Short: "Run a conformance scenario",
		Long: `Load a scenario file and evaluate every case, comparing outcomes against
the scenario's expectations.

Example:
  intguard run scenarios/overflow.yaml`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenario(rootOpts, cmd, args[0], withTrace)
		},
	}

	cmd.Flags().BoolVar(&withTrace, "trace", false, "include the per-case trace in the output")

	return cmd
}

func runScenario(opts *RootOptions, cmd *cobra.Command, path string, withTrace bool) error {
	out := formatter(opts, cmd)

	scenario, err := harness.LoadScenario(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "load scenario", err)
	}

	result, err := harness.NewRunner(nil).Run(scenario)
	if err != nil {
		return WrapExitError(ExitCommandError, "run scenario", err)
	}

	for _, ev := range result.Trace {
		out.VerboseLog("case %d: %q -> %s %s", ev.Seq, ev.Program, ev.Outcome, ev.Value)
	}

	summary := RunSummary{
		Scenario: result.ScenarioName,
		RunToken: result.RunToken,
		Cases:    len(result.Trace),
		Failures: result.Failures,
	}
	if withTrace {
		summary.Trace = result.Trace
	}

	if !result.Passed() {
		out.Error("SCENARIO_FAILED",
			fmt.Sprintf("%d of %d cases failed", len(result.Failures), summary.Cases), summary)
		return NewExitError(ExitRefusal, "scenario failed")
	}
	return out.Success(summary)
}
