package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// NewPageCommand creates the page command.
func NewPageCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "page <offset>",
		Short: "Regenerate the current search at a page offset",
		Long: `Regenerate the current search at the given page offset.

The current search is the one most recently compiled at offset 0. Paging
never replaces it.

Exit codes:
  0 - Page generated
  1 - No search has been submitted, or the offset is negative
  2 - Command error (database failure, etc.)

Examples:
  gravsearch page 1
  gravsearch page 3 --db ./history.db --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)
			offset, err := strconv.Atoi(args[0])
			if err != nil {
				return formatter.Fail(&CLIError{
					Code:    ErrCodeGeneric,
					Message: fmt.Sprintf("offset must be an integer, got %q", args[0]),
				})
			}
			return runPage(rootOpts, cmd, formatter, func(sess *session) (QueryResult, error) {
				page, err := sess.slot.GenerateGravsearch(offset)
				if err != nil {
					return QueryResult{}, err
				}
				return pageResult(page, rootOpts.APIURL), nil
			})
		},
	}
}

// NewNextCommand creates the next command.
func NewNextCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "next",
		Short: "Generate the page after the last one requested",
		Long: `Generate the page following the highest offset requested for the
current search. A search with no recorded pages starts at offset 0.

Examples:
  gravsearch next
  gravsearch next --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)
			return runPage(rootOpts, cmd, formatter, func(sess *session) (QueryResult, error) {
				page, err := sess.slot.NextPage()
				if err != nil {
					return QueryResult{}, err
				}
				return pageResult(page, rootOpts.APIURL), nil
			})
		},
	}
}

func runPage(opts *RootOptions, cmd *cobra.Command, formatter *OutputFormatter, generate func(*session) (QueryResult, error)) error {
	sess, err := openSession(opts, cmd)
	if err != nil {
		return formatter.Fail(err)
	}
	defer sess.Close()

	result, err := generate(sess)
	if err != nil {
		return formatter.Fail(err)
	}
	sess.logger.Debug("page generated", "submission_id", result.SubmissionID, "offset", result.Offset)
	return outputQuery(formatter, result)
}
