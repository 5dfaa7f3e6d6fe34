package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/gravsearch/internal/harness"
)

// TestOptions holds flags for the test command.
type TestOptions struct {
	*RootOptions
	Update    bool   // regenerate golden files
	Filter    string // scenario filter (glob pattern)
	GoldenDir string // defaults to <scenarios-dir>/../golden
}

// NewTestCommand creates the test command.
func NewTestCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TestOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "test <scenarios-dir>",
		Short: "Run pagination scenarios",
		Long: `Run YAML pagination scenarios against a fresh in-memory history.

Each scenario compiles requests and pages through them, checking every
step's expectations and the final history. When a golden file exists
for a scenario, its trace must match it byte for byte.

Exit codes:
  0 - All scenarios passed
  1 - One or more scenarios failed
  2 - Command error (invalid paths, bad filter, etc.)

Examples:
  gravsearch test ./testdata/scenarios
  gravsearch test ./testdata/scenarios --filter "paging*"
  gravsearch test ./testdata/scenarios --update
  gravsearch test ./testdata/scenarios --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTests(opts, args[0], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Update, "update", false, "regenerate golden files")
	cmd.Flags().StringVar(&opts.Filter, "filter", "", "filter scenarios by glob pattern on the file name")
	cmd.Flags().StringVar(&opts.GoldenDir, "golden", "", "golden file directory (default: golden next to the scenarios directory)")

	return cmd
}

func runTests(opts *TestOptions, scenariosDir string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	paths, err := harness.FindScenarios(scenariosDir)
	if err != nil {
		return formatter.Fail(&CLIError{Code: ErrCodeNotFound, Message: fmt.Sprintf("scenarios directory not found: %s", scenariosDir)})
	}

	paths, err = filterScenarios(paths, opts.Filter)
	if err != nil {
		return formatter.Fail(&CLIError{Code: ErrCodeGeneric, Message: err.Error()})
	}
	formatter.VerboseLog("Found %d scenario(s) in %s", len(paths), scenariosDir)

	goldenDir := opts.GoldenDir
	if goldenDir == "" {
		goldenDir = filepath.Join(filepath.Dir(filepath.Clean(scenariosDir)), "golden")
	}

	result := harness.RunSuite(paths, harness.SuiteOptions{
		GoldenDir: goldenDir,
		Update:    opts.Update,
	})

	if err := formatter.Success(result, "", func(w io.Writer) {
		outputTestText(w, result)
	}); err != nil {
		return err
	}

	if result.Failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d scenario(s) failed", result.Failed))
	}
	return nil
}

// filterScenarios keeps the paths whose file name, without extension,
// matches the glob pattern.
func filterScenarios(paths []string, pattern string) ([]string, error) {
	if pattern == "" {
		return paths, nil
	}

	filtered := []string{}
	for _, path := range paths {
		base := filepath.Base(path)
		name := strings.TrimSuffix(base, filepath.Ext(base))
		matched, err := filepath.Match(pattern, name)
		if err != nil {
			return nil, fmt.Errorf("invalid filter pattern: %w", err)
		}
		if matched {
			filtered = append(filtered, path)
		}
	}
	return filtered, nil
}

func outputTestText(w io.Writer, result *harness.SuiteResult) {
	if result.TotalScenarios == 0 {
		fmt.Fprintln(w, "No scenarios found.")
		return
	}

	failures := make(map[string][]string, len(result.Failures))
	for _, f := range result.Failures {
		failures[f.ScenarioPath] = f.Errors
	}

	for _, outcome := range result.Scenarios {
		switch {
		case outcome.Pass && outcome.GoldenUpdated:
			fmt.Fprintf(w, "✓ %s (golden updated)\n", outcome.Name)
		case outcome.Pass:
			fmt.Fprintf(w, "✓ %s\n", outcome.Name)
		default:
			fmt.Fprintf(w, "✗ %s\n", outcome.Name)
			for _, e := range failures[outcome.Path] {
				fmt.Fprintf(w, "  %s\n", e)
			}
		}
	}

	fmt.Fprintf(w, "\n%d passed, %d failed, %d total\n", result.Passed, result.Failed, result.TotalScenarios)
}
