package cli

import (
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
// Values are resolved by viper (flag > env > config file > default)
// before any subcommand runs.
type RootOptions struct {
	ConfigFile string
	Database   string
	Format     string // "json" | "text"
	Verbose    bool
	APIURL     string
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the gravsearch CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "gravsearch",
		Short: "Gravsearch query generator",
		Long: `Compile structured property searches into Gravsearch queries for a
Knora/DSP API and page through them.

Searches compiled at offset 0 become the current search. Later pages are
regenerated from the stored search, so paging never changes it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := loadConfig(cmd, opts); err != nil {
				return WrapExitError(ExitCommandError, "failed to load config", err)
			}
			if !isValidFormat(opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigFile, "config", "", "config file (default is gravsearch.yaml in . or $HOME/.config/gravsearch)")
	cmd.PersistentFlags().StringVar(&opts.Database, "db", defaultDatabase, "path to SQLite search history")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", defaultFormat, "output format (json|text)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.APIURL, "api-url", "", "API base URL prepended to fulltext search paths")

	cmd.AddCommand(NewCompileCommand(opts))
	cmd.AddCommand(NewPageCommand(opts))
	cmd.AddCommand(NewNextCommand(opts))
	cmd.AddCommand(NewValidateCommand(opts))
	cmd.AddCommand(NewHistoryCommand(opts))
	cmd.AddCommand(NewExpertCommand(opts))
	cmd.AddCommand(NewFulltextCommand(opts))
	cmd.AddCommand(NewTestCommand(opts))

	return cmd
}

// Logger returns a text logger on w at Warn, or Debug when verbose.
func (o *RootOptions) Logger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if o.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	return slices.Contains(ValidFormats, format)
}
