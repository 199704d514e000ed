package cli

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
	Config  string // TOML config path
	DB      string // history database path

	// Logger is built by the root command before any subcommand runs.
	// Commands constructed on their own (as in tests) log nothing.
	Logger *slog.Logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

func (o *RootOptions) logger() *slog.Logger {
	if o.Logger == nil {
		return discardLogger()
	}
	return o.Logger
}

// historyDB returns the configured database path.
func (o *RootOptions) historyDB() string {
	if o.DB == "" {
		return DefaultHistoryDB
	}
	return o.DB
}

// NewRootCommand creates the root command for the quirkurl CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "quirkurl",
		Short: "Convert quantum circuits into Quirk URLs",
		Long: `Convert quantum circuits written in CUE, YAML, JSON or OpenQASM 2
into links that open them in the Quirk circuit simulator.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := applyConfig(cmd, opts); err != nil {
				return NewExitError(ExitCommandError, err.Error())
			}
			if !isValidFormat(opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}

			opts.Logger = newSlogLogger(cmd.ErrOrStderr(), opts.Verbose)
			cmd.SetContext(withLogger(cmd.Context(), opts.Logger))
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Config, "config", "", "config file (default ./"+DefaultConfigFile+" if present)")
	cmd.PersistentFlags().StringVar(&opts.DB, "db", "", "history database (default "+DefaultHistoryDB+")")

	// Add subcommands
	cmd.AddCommand(NewConvertCommand(opts))
	cmd.AddCommand(NewValidateCommand(opts))
	cmd.AddCommand(NewTestCommand(opts))
	cmd.AddCommand(NewHistoryCommand(opts))
	cmd.AddCommand(NewGatesCommand(opts))

	return cmd
}

// applyConfig fills every flag the user did not set from the config file.
func applyConfig(cmd *cobra.Command, opts *RootOptions) error {
	cfg, err := LoadConfig(opts.Config)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if cfg.Format != "" && !flags.Changed("format") {
		opts.Format = cfg.Format
	}
	if cfg.Verbose != nil && !flags.Changed("verbose") {
		opts.Verbose = *cfg.Verbose
	}
	if cfg.History != "" && !flags.Changed("db") {
		opts.DB = cfg.History
	}
	return nil
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	return slices.Contains(ValidFormats, format)
}
