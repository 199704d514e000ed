package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/quirkurl/internal/circuit"
	"github.com/roach88/quirkurl/internal/quirk"
)

// ValidationIssue is one problem found in a circuit.
type ValidationIssue struct {
	Circuit string `json:"circuit"`
	Op      int    `json:"op"` // -1 for problems not tied to an operation
	Gate    string `json:"gate,omitempty"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid    bool              `json:"valid"`
	Circuits int               `json:"circuits"`
	Issues   []ValidationIssue `json:"issues,omitempty"`
}

// Issue code for structural problems found before classification.
const ErrCodeStructure = "E020"

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Check circuits without producing URLs",
		Long: `Check that every circuit in a file can be converted.

Unlike convert, validate does not stop at the first problem: it reports
every out-of-range qubit, unsupported gate and arity mismatch it finds.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	circuits, loadErr := LoadCircuits(path)
	if loadErr != nil {
		return formatter.Fail(loadErr.exitCode(), loadErr.Code, loadErr.Error(), nil)
	}

	var issues []ValidationIssue
	for _, c := range circuits {
		formatter.VerboseLog("Validating circuit: %s (%d ops)", c.Name, len(c.Ops))
		issues = append(issues, ValidateCircuit(c)...)
	}
	opts.logger().Debug("validation finished", "circuits", len(circuits), "issues", len(issues))

	result := ValidationResult{Valid: len(issues) == 0, Circuits: len(circuits), Issues: issues}
	if result.Valid {
		if opts.Format == "json" {
			return formatter.Success(result)
		}
		fmt.Fprintln(formatter.Writer, okLine(fmt.Sprintf("All %d circuit(s) valid", len(circuits))))
		return nil
	}

	if opts.Format == "json" {
		if err := formatter.encode(CLIResponse{
			Status: "error",
			Data:   result,
			Error:  &CLIError{Code: issues[0].Code, Message: issues[0].Message},
		}); err != nil {
			return err
		}
		return NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d issue(s)", len(issues)))
	}

	fmt.Fprintln(formatter.Writer, failLine("Validation failed"))
	fmt.Fprintln(formatter.Writer)
	for _, is := range issues {
		where := styleName.Render(is.Circuit)
		if is.Op >= 0 {
			where += styleDim.Render(fmt.Sprintf(" op %d (%s)", is.Op, is.Gate))
		}
		fmt.Fprintf(formatter.Writer, "%s\n  %s: %s\n\n", where, is.Code, is.Message)
	}
	return NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d issue(s)", len(issues)))
}

// ValidateCircuit reports every problem that would stop c from converting.
// Structural problems come first, then classification and placement
// failures in program order.
func ValidateCircuit(c *circuit.Circuit) []ValidationIssue {
	var issues []ValidationIssue

	if err := c.Validate(); err != nil {
		for _, e := range splitJoined(err) {
			issues = append(issues, ValidationIssue{
				Circuit: c.Name,
				Op:      -1,
				Code:    ErrCodeStructure,
				Message: e.Error(),
			})
		}
	}

	for i, op := range c.Ops {
		if op.Gate == nil {
			continue // already reported by Validate
		}
		if _, err := quirk.PlaceOp(op); err != nil {
			issues = append(issues, ValidationIssue{
				Circuit: c.Name,
				Op:      i,
				Gate:    op.Gate.Name(),
				Code:    string(quirk.CodeOf(err)),
				Message: messageOf(err),
			})
		}
	}
	return issues
}

// splitJoined unpacks an errors.Join result.
func splitJoined(err error) []error {
	if j, ok := err.(interface{ Unwrap() []error }); ok {
		return j.Unwrap()
	}
	return []error{err}
}

func messageOf(err error) string {
	var qerr *quirk.Error
	if errors.As(err, &qerr) {
		return qerr.Message
	}
	return err.Error()
}
