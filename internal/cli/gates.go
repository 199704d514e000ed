package cli

import (
	"fmt"
	"maps"
	"slices"

	"github.com/spf13/cobra"

	"github.com/roach88/quirkurl/internal/circuit"
	"github.com/roach88/quirkurl/internal/quirk"
)

// GateInfo describes one supported base gate.
type GateInfo struct {
	Gate   string `json:"gate"`
	Kind   string `json:"kind"` // "fixed" | "rotation"
	Params int    `json:"params"`
	Quirk  string `json:"quirk"` // Quirk gate id
}

// GatesResult is the gates command payload.
type GatesResult struct {
	Gates   []GateInfo `json:"gates"`
	Control string     `json:"control"`
}

// NewGatesCommand creates the gates command.
func NewGatesCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "gates",
		Short: "List the supported gate vocabulary",
		Long: `List the base gates that can be converted and their Quirk ids.

Any supported gate may be controlled, either by prefixing its name with one
"c" per control ("cx", "ccx", "crz") or with an explicit controls count.
Each control becomes a "•" cell above the gate in the same column.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd.OutOrStdout(), cmd.ErrOrStderr())
			result, err := SupportedGates()
			if err != nil {
				return formatter.Fail(ExitFailure, ErrCodeGeneric, err.Error(), nil)
			}
			if rootOpts.Format == "json" {
				return formatter.Success(result)
			}
			for _, g := range result.Gates {
				fmt.Fprintf(formatter.Writer, "%-4s %-8s %s\n", g.Gate, g.Kind, styleName.Render(g.Quirk))
			}
			fmt.Fprintf(formatter.Writer, "\ncontrols: prefix with c, rendered as %s\n", result.Control)
			return nil
		},
	}
}

// SupportedGates classifies each known base gate to report its Quirk id.
func SupportedGates() (GatesResult, error) {
	result := GatesResult{Control: quirk.ControlSymbol}

	for _, name := range slices.Sorted(maps.Keys(circuit.FixedGates)) {
		info, err := describeGate(circuit.Fixed{Symbol: name}, "fixed", 0)
		if err != nil {
			return GatesResult{}, err
		}
		result.Gates = append(result.Gates, info)
	}
	for _, name := range slices.Sorted(maps.Keys(circuit.RotationGates)) {
		info, err := describeGate(circuit.Rotation{Axis: name, Angle: circuit.NewAngle(0)}, "rotation", 1)
		if err != nil {
			return GatesResult{}, err
		}
		result.Gates = append(result.Gates, info)
	}
	return result, nil
}

func describeGate(g circuit.Gate, kind string, params int) (GateInfo, error) {
	tokens, err := quirk.Classify(g)
	if err != nil {
		return GateInfo{}, err
	}
	return GateInfo{
		Gate:   g.Name(),
		Kind:   kind,
		Params: params,
		Quirk:  tokens[len(tokens)-1].Label,
	}, nil
}
