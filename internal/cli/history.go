package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/roach88/gravsearch/internal/queryir"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	SearchID string // optional - only submissions of this search
}

// HistoryEntry is one stored submission and the pages requested for it.
type HistoryEntry struct {
	Seq           int64          `json:"seq"`
	SubmissionID  string         `json:"submission_id"`
	SearchID      string         `json:"search_id"`
	Mode          string         `json:"mode"`
	EngineVersion string         `json:"engine_version"`
	Current       bool           `json:"current"`
	Pages         []int          `json:"pages"`
	Record        map[string]any `json:"record"`
}

// HistoryResult holds the history output.
type HistoryResult struct {
	Submissions []HistoryEntry `json:"submissions"`
	Total       int            `json:"total"`
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List stored searches and their pages",
		Long: `List every search stored by compiling at offset 0, oldest first,
with the page offsets requested for each. The newest submission is the
current search.

Examples:
  gravsearch history
  gravsearch history --search <search-id> --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.SearchID, "search", "", "only show submissions of this search ID")

	return cmd
}

func runHistory(opts *HistoryOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	sess, err := openSession(opts.RootOptions, cmd)
	if err != nil {
		return formatter.Fail(err)
	}
	defer sess.Close()

	subs, err := sess.store.ListSearches(sess.ctx)
	if err != nil {
		return formatter.Fail(&CLIError{Code: ErrCodeStoreError, Message: err.Error()})
	}

	result := HistoryResult{Submissions: []HistoryEntry{}}
	for i, sub := range subs {
		if opts.SearchID != "" && sub.SearchID != opts.SearchID {
			continue
		}

		pages, err := sess.store.Pages(sess.ctx, sub.Seq)
		if err != nil {
			return formatter.Fail(&CLIError{Code: ErrCodeStoreError, Message: err.Error()})
		}
		record, err := queryir.Canonical(sub.Query)
		if err != nil {
			return formatter.Fail(err)
		}

		result.Submissions = append(result.Submissions, HistoryEntry{
			Seq:           sub.Seq,
			SubmissionID:  sub.SubmissionID,
			SearchID:      sub.SearchID,
			Mode:          sub.Mode,
			EngineVersion: sub.EngineVersion,
			Current:       i == len(subs)-1,
			Pages:         pages,
			Record:        record,
		})
	}
	result.Total = len(result.Submissions)

	return formatter.Success(result, "", func(w io.Writer) {
		outputHistoryText(w, result)
	})
}

func outputHistoryText(w io.Writer, result HistoryResult) {
	if result.Total == 0 {
		fmt.Fprintln(w, "No searches stored")
		return
	}

	fmt.Fprintf(w, "%d search submission(s)\n", result.Total)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"", "seq", "mode", "submission", "search", "pages"})
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	for _, entry := range result.Submissions {
		marker := ""
		if entry.Current {
			marker = "*"
		}
		table.Append([]string{
			marker,
			strconv.FormatInt(entry.Seq, 10),
			entry.Mode,
			entry.SubmissionID,
			entry.SearchID,
			formatPages(entry.Pages),
		})
	}
	table.Render()
}

func formatPages(pages []int) string {
	if len(pages) == 0 {
		return "-"
	}
	parts := make([]string, len(pages))
	for i, p := range pages {
		parts[i] = strconv.Itoa(p)
	}
	return strings.Join(parts, ", ")
}
