package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/intguard/internal/inttype"
)

// TypeLimits is one row of the limits table.
type TypeLimits struct {
	Type   string `json:"type"`
	Width  int    `json:"width"`
	Signed bool   `json:"signed"`
	Min    string `json:"min"`
	Max    string `json:"max"`
}

// LimitsResult is the success payload of the limits command.
type LimitsResult struct {
	Types []TypeLimits `json:"types"`
}

func (r LimitsResult) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-5s %5s %6s %21s %21s", "type", "width", "signed", "min", "max")
	for _, t := range r.Types {
		fmt.Fprintf(&b, "\n%-5s %5d %6t %21s %21s", t.Type, t.Width, t.Signed, t.Min, t.Max)
	}
	return b.String()
}

// NewLimitsCommand creates the limits command.
func NewLimitsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "limits [type...]",
		Short: "Print the representable range of the canonical types",
		Long: `Print width, signedness, and min/max for the canonical integer types.
With no arguments, all eight types are listed.

Example:
  intguard limits u8 s64`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printLimits(rootOpts, cmd, args)
		},
	}
	return cmd
}

func printLimits(opts *RootOptions, cmd *cobra.Command, names []string) error {
	types := inttype.Types
	if len(names) > 0 {
		types = make([]inttype.Type, len(names))
		for i, name := range names {
			t, err := inttype.ParseType(name)
			if err != nil {
				return WrapExitError(ExitCommandError, "bad type", err)
			}
			types[i] = t
		}
	}

	result := LimitsResult{Types: make([]TypeLimits, len(types))}
	for i, t := range types {
		row := TypeLimits{
			Type:   t.String(),
			Width:  t.Width(),
			Signed: t.Signed(),
			Max:    fmt.Sprintf("%d", t.Max()),
			Min:    fmt.Sprintf("%d", t.Min()),
		}
		result.Types[i] = row
	}

	return formatter(opts, cmd).Success(result)
}
