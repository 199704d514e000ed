package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/quirkurl/internal/store"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	Limit  int
	Digest string
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded conversions",
		Long: `List conversions recorded with convert --history, newest first.

With --digest, list every conversion that produced that grid, oldest first.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(cmd.Context(), opts, cmd)
		},
	}

	cmd.Flags().IntVarP(&opts.Limit, "limit", "n", 20, "maximum number of records (0 for all)")
	cmd.Flags().StringVar(&opts.Digest, "digest", "", "only conversions with this grid digest")

	return cmd
}

func runHistory(ctx context.Context, opts *HistoryOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd.OutOrStdout(), cmd.ErrOrStderr())
	dbPath := opts.historyDB()

	// Opening would create an empty database; a missing one is an error.
	if _, err := os.Stat(dbPath); errors.Is(err, fs.ErrNotExist) {
		return formatter.Fail(ExitCommandError, ErrCodeNotFound, fmt.Sprintf("history database not found: %s", dbPath), nil)
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeStore, err.Error(), nil)
	}
	defer st.Close()

	var records []store.Conversion
	if opts.Digest != "" {
		records, err = st.FindByDigest(ctx, opts.Digest)
	} else {
		records, err = st.List(ctx, opts.Limit)
	}
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeStore, err.Error(), nil)
	}

	if opts.Format == "json" {
		return formatter.Success(records)
	}

	if len(records) == 0 {
		fmt.Fprintln(formatter.Writer, "No conversions recorded.")
		return nil
	}
	for _, r := range records {
		fmt.Fprintf(formatter.Writer, "%s %s %s\n  %s\n",
			styleDim.Render(fmt.Sprintf("#%d", r.Seq)),
			styleName.Render(r.Name),
			styleDim.Render(fmt.Sprintf("(%s, %d cols, %d ops)", r.Source, r.Columns, r.Ops)),
			r.URL)
	}
	return nil
}
