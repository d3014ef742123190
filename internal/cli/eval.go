package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/intguard/internal/chain"
	"github.com/roach88/intguard/internal/inttype"
)

// EvalResult is the success payload of the eval command.
type EvalResult struct {
	Program string `json:"program"`
	Type    string `json:"type"`
	Value   string `json:"value"`
}

func (r EvalResult) String() string {
	return r.Type + ":" + r.Value
}

// NewEvalCommand creates the eval command.
func NewEvalCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval <program> <operand>...",
		Short: "Evaluate a chained expression",
		Long: `Evaluate a chained expression with overflow checking.

Operands are value literals: either "tag:digits" ("u8:255", "s16:-300") or a
bare decimal, which takes the platform-native signed type. A program with N
operators takes N+1 operands.

Example:
  intguard eval "u8+u8" u8:10 u8:10
  intguard eval "s16<<u8+u64" 1 4 2`,
		Args:          cobra.MinimumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return evalProgram(rootOpts, cmd, args[0], args[1:])
		},
	}
	return cmd
}

func evalProgram(opts *RootOptions, cmd *cobra.Command, format string, literals []string) error {
	out := formatter(opts, cmd)

	prog, err := chain.Parse(format)
	if err != nil {
		// The library collapses this into a plain refusal; the CLI
		// reports the parse diagnostics but keeps the refusal exit
		// code.
		out.Error("BAD_PROGRAM", err.Error(), nil)
		return NewExitError(ExitRefusal, "program refused")
	}

	if len(literals) != prog.Operands() {
		return NewExitError(ExitCommandError,
			fmt.Sprintf("program %q takes %d operands, got %d", format, prog.Operands(), len(literals)))
	}

	operands := make([]inttype.Value, len(literals))
	for i, lit := range literals {
		v, err := inttype.ParseValue(lit)
		if err != nil {
			return WrapExitError(ExitCommandError, fmt.Sprintf("operand %d", i+1), err)
		}
		operands[i] = v
	}

	out.VerboseLog("working type: %v, steps: %d", prog.LHSType, len(prog.Steps))

	v, ok := prog.Eval(operands...)
	if !ok {
		out.Error("REFUSED", fmt.Sprintf("program %q refused the operands", format), nil)
		return NewExitError(ExitRefusal, "program refused")
	}

	return out.Success(EvalResult{
		Program: format,
		Type:    v.Type().String(),
		Value:   v.Decimal(),
	})
}
