package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/gravsearch/internal/compiler"
)

// ValidateResult holds the outcome of validating one request.
type ValidateResult struct {
	Valid    bool                       `json:"valid"`
	Errors   []compiler.ValidationError `json:"errors"`
	Warnings []string                   `json:"warnings"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <request>",
		Short: "Validate a search request without generating it",
		Long: `Validate a search request document against the schema and the
generation rules. All problems are reported, not just the first.

Nothing is stored.

Exit codes:
  0 - Request is valid (warnings may be printed)
  1 - Request has validation errors
  2 - Command error (request not found or not valid CUE)

Examples:
  gravsearch validate ./request.cue
  gravsearch validate ./requests/mixed --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	req, err := loadRequest(path)
	if err != nil {
		return formatter.Fail(err)
	}

	errs, warnings := compiler.Validate(req)
	result := ValidateResult{
		Valid:    len(errs) == 0,
		Errors:   errs,
		Warnings: warnings,
	}
	if result.Warnings == nil {
		result.Warnings = []string{}
	}

	if err := formatter.Success(result, "", func(w io.Writer) {
		outputValidateText(w, path, result)
	}); err != nil {
		return err
	}

	if !result.Valid {
		return NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d error(s)", len(errs)))
	}
	return nil
}

func outputValidateText(w io.Writer, path string, result ValidateResult) {
	if result.Valid {
		fmt.Fprintf(w, "✓ %s is valid\n", path)
	} else {
		fmt.Fprintf(w, "✗ %s has %d error(s):\n", path, len(result.Errors))
		for _, e := range result.Errors {
			fmt.Fprintf(w, "  [%s] %s: %s\n", e.Code, e.Field, e.Message)
		}
	}
	for _, warning := range result.Warnings {
		fmt.Fprintf(w, "  warning: %s\n", warning)
	}
}
