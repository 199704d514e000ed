package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/quirkurl/internal/circuit"
	"github.com/roach88/quirkurl/internal/quirk"
	"github.com/roach88/quirkurl/internal/store"
)

// ConvertOptions holds flags for the convert command.
type ConvertOptions struct {
	*RootOptions
	Grid    bool   // print the cols document instead of the URL
	Output  string // write results to this file instead of stdout
	History bool   // record each conversion in the history database
}

// ConvertResult describes one converted circuit.
type ConvertResult struct {
	Name    string `json:"name"`
	URL     string `json:"url"`
	Grid    string `json:"grid,omitempty"`
	Digest  string `json:"digest"`
	Columns int    `json:"columns"`
	Ops     int    `json:"ops"`
	ID      string `json:"id,omitempty"` // history record id when recorded
}

// NewConvertCommand creates the convert command.
func NewConvertCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ConvertOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "convert <file>",
		Short: "Convert circuits into Quirk URLs",
		Long: `Convert every circuit in a CUE, YAML, JSON or OpenQASM 2 file into a
Quirk URL, printed one per line in source order.

The first gate Quirk cannot represent aborts the conversion of its circuit
and nothing is printed for it.

Exit codes:
  0 - All circuits converted
  1 - A circuit could not be converted
  2 - Command error (missing file, parse error, etc.)

Examples:
  quirkurl convert bell.yaml
  quirkurl convert teleport.qasm --grid
  quirkurl convert circuits.cue -o urls.txt --history`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd.Context(), opts, args[0], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Grid, "grid", false, "print the cols JSON instead of the URL")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "write results to file")
	cmd.Flags().BoolVar(&opts.History, "history", false, "record conversions in the history database")

	return cmd
}

func runConvert(ctx context.Context, opts *ConvertOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd.OutOrStdout(), cmd.ErrOrStderr())
	logger := opts.logger()

	circuits, loadErr := LoadCircuits(path)
	if loadErr != nil {
		return formatter.Fail(loadErr.exitCode(), loadErr.Code, loadErr.Error(), nil)
	}
	formatter.VerboseLog("Loaded %d circuit(s) from %s", len(circuits), path)

	converter := quirk.NewConverter(logger)
	results := make([]ConvertResult, 0, len(circuits))
	for _, c := range circuits {
		res, err := convertOne(converter, c)
		if err != nil {
			var qerr *quirk.Error
			if errors.As(err, &qerr) {
				return formatter.Fail(ExitFailure, string(qerr.Code),
					fmt.Sprintf("%s: %v", c.Name, err), map[string]any{"circuit": c.Name, "op": qerr.Op, "gate": qerr.Gate})
			}
			return formatter.Fail(ExitCommandError, ErrCodeGeneric, err.Error(), nil)
		}
		results = append(results, res)
	}

	if opts.History {
		if err := recordHistory(ctx, opts.historyDB(), path, results); err != nil {
			return formatter.Fail(ExitCommandError, ErrCodeStore, err.Error(), nil)
		}
		logger.Info("recorded conversions", "db", opts.historyDB(), "count", len(results))
	}

	if opts.Output != "" {
		if err := os.WriteFile(opts.Output, []byte(renderResults(results, opts.Grid)), 0o644); err != nil {
			return formatter.Fail(ExitCommandError, ErrCodeWriteFailed, fmt.Sprintf("writing output: %v", err), nil)
		}
		if opts.Format == "json" {
			return formatter.Success(map[string]any{"output": opts.Output, "circuits": results})
		}
		fmt.Fprintln(formatter.Writer, okLine(fmt.Sprintf("Wrote %d circuit(s) to %s", len(results), opts.Output)))
		return nil
	}

	if opts.Format == "json" {
		return formatter.Success(results)
	}
	fmt.Fprint(formatter.Writer, renderResults(results, opts.Grid))
	return nil
}

func convertOne(converter *quirk.Converter, c *circuit.Circuit) (ConvertResult, error) {
	g, err := converter.Layout(c)
	if err != nil {
		return ConvertResult{}, err
	}

	url, err := quirk.URL(g)
	if err != nil {
		return ConvertResult{}, err
	}
	grid, err := quirk.Encode(g)
	if err != nil {
		return ConvertResult{}, err
	}
	digest, err := quirk.Digest(g)
	if err != nil {
		return ConvertResult{}, err
	}

	return ConvertResult{
		Name:    c.Name,
		URL:     url,
		Grid:    string(grid),
		Digest:  digest,
		Columns: g.Len(),
		Ops:     len(c.Ops),
	}, nil
}

// renderResults is the plain text output: one URL (or grid) per line.
func renderResults(results []ConvertResult, grid bool) string {
	var b strings.Builder
	for _, r := range results {
		if grid {
			b.WriteString(r.Grid)
		} else {
			b.WriteString(r.URL)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func recordHistory(ctx context.Context, dbPath, source string, results []ConvertResult) error {
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening history: %w", err)
	}
	defer st.Close()

	for i := range results {
		r := &results[i]
		rec, err := st.Record(ctx, store.Conversion{
			Name:    r.Name,
			Source:  source,
			Digest:  r.Digest,
			Columns: r.Columns,
			Ops:     r.Ops,
			URL:     r.URL,
		})
		if err != nil {
			return err
		}
		r.ID = rec.ID
	}
	return nil
}
