package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/gravsearch/internal/compiler"
	"github.com/roach88/gravsearch/internal/queryir"
)

// CompileOptions holds flags for the compile command.
type CompileOptions struct {
	*RootOptions
	Offset int // -1 keeps the offset of the request document
}

// QueryResult is one generated query.
type QueryResult struct {
	Query        string `json:"query"`
	Offset       int    `json:"offset"`
	Mode         string `json:"mode"`
	Notified     bool   `json:"notified"`
	SubmissionID string `json:"submission_id,omitempty"`
	SearchID     string `json:"search_id,omitempty"`
}

// NewCompileCommand creates the compile command.
func NewCompileCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CompileOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "compile <request>",
		Short: "Compile a CUE search request to Gravsearch",
		Long: `Compile a search request document to a Gravsearch query.

The request is a .cue file, or a directory holding one CUE package, that
unifies with the #Request schema. Compiling at offset 0 stores the search
as the current search; other offsets only print the page.

Exit codes:
  0 - Query generated
  1 - The request describes a search that cannot be generated
  2 - Command error (request not found or not valid CUE, database failure)

Examples:
  gravsearch compile ./request.cue
  gravsearch compile ./requests/mixed --offset 2 --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompile(opts, args[0], cmd)
		},
	}

	cmd.Flags().IntVar(&opts.Offset, "offset", -1, "page offset (default: the request's offset)")

	return cmd
}

func runCompile(opts *CompileOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	req, err := loadRequest(path)
	if err != nil {
		return formatter.Fail(err)
	}
	formatter.VerboseLog("Loaded request %s", path)

	offset := req.Offset
	if cmd.Flags().Changed("offset") {
		offset = opts.Offset
	}

	if errs, _ := compiler.Validate(req); len(errs) > 0 {
		return formatter.Fail(&CLIError{Code: errs[0].Code, Message: errs[0].Error(), Details: errs})
	}

	sess, err := openSession(opts.RootOptions, cmd)
	if err != nil {
		return formatter.Fail(err)
	}
	defer sess.Close()

	result, err := sess.submit(req.Search, offset, opts.APIURL)
	if err != nil {
		return formatter.Fail(err)
	}
	return outputQuery(formatter, result)
}

// outputQuery prints a generated query. Text output is the query itself so
// it can be piped to an HTTP client.
func outputQuery(formatter *OutputFormatter, result QueryResult) error {
	if result.Notified {
		formatter.VerboseLog("✓ Stored %s search %s (search %s)", result.Mode, result.SubmissionID, result.SearchID)
	}
	formatter.VerboseLog("Generated %s query at offset %d", result.Mode, result.Offset)

	return formatter.Success(result, result.SubmissionID, func(w io.Writer) {
		fmt.Fprint(w, result.Query)
		if result.Mode == queryir.ModeFulltext {
			fmt.Fprintln(w)
		}
	})
}
