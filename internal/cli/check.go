package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/intguard/internal/chain"
)

// CheckResult is the success payload of the check command.
type CheckResult struct {
	Program     string      `json:"program"`
	WorkingType string      `json:"working_type"`
	LHSTagged   bool        `json:"lhs_tagged"`
	Operands    int         `json:"operands"`
	Steps       []CheckStep `json:"steps"`
}

// CheckStep describes one parsed step.
type CheckStep struct {
	Op      string `json:"op"`
	Operand string `json:"operand"`
	Tagged  bool   `json:"tagged"`
}

func (r CheckResult) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "program:      %s\n", r.Program)
	fmt.Fprintf(&b, "working type: %s\n", r.WorkingType)
	fmt.Fprintf(&b, "operands:     %d", r.Operands)
	for i, s := range r.Steps {
		fmt.Fprintf(&b, "\nstep %d:       %s %s", i+1, s.Op, s.Operand)
	}
	return b.String()
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <program>",
		Short: "Validate a chain program without evaluating it",
		Long: `Parse a chain program and report its working type, operand count, and
steps. Fails with parse diagnostics if the program is malformed.

Example:
  intguard check "s16<<u8+u64"`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return checkProgram(rootOpts, cmd, args[0])
		},
	}
	return cmd
}

func checkProgram(opts *RootOptions, cmd *cobra.Command, format string) error {
	out := formatter(opts, cmd)

	prog, err := chain.Parse(format)
	if err != nil {
		var pe *chain.ParseError
		if errors.As(err, &pe) {
			out.Error(string(pe.Code), err.Error(), map[string]any{"offset": pe.Pos, "token": pe.Token})
		} else {
			out.Error("BAD_PROGRAM", err.Error(), nil)
		}
		return NewExitError(ExitRefusal, "malformed program")
	}

	result := CheckResult{
		Program:     prog.Format,
		WorkingType: prog.LHSType.String(),
		LHSTagged:   prog.LHSTagged,
		Operands:    prog.Operands(),
		Steps:       make([]CheckStep, len(prog.Steps)),
	}
	for i, s := range prog.Steps {
		result.Steps[i] = CheckStep{
			Op:      s.Op.String(),
			Operand: s.Operand.String(),
			Tagged:  s.Tagged,
		}
	}

	return out.Success(result)
}
