package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/gravsearch/internal/queryir"
)

// ExpertOptions holds flags for the expert command.
type ExpertOptions struct {
	*RootOptions
	Offset int
}

// NewExpertCommand creates the expert command.
func NewExpertCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ExpertOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "expert <template-file|->",
		Short: "Page a hand-written Gravsearch query",
		Long: `Append the page offset to a hand-written Gravsearch query.

The template is read from a file, or from stdin when the argument is "-".
At offset 0 the template becomes the current search, so page and next
work on it like on any compiled search.

Examples:
  gravsearch expert ./query.rq
  cat query.rq | gravsearch expert - --offset 2`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExpert(opts, args[0], cmd)
		},
	}

	cmd.Flags().IntVar(&opts.Offset, "offset", 0, "page offset")

	return cmd
}

func runExpert(opts *ExpertOptions, source string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	template, err := readTemplate(source, cmd.InOrStdin())
	if err != nil {
		return formatter.Fail(err)
	}

	search := queryir.ExpertSearch{Template: template}
	if result := queryir.Validate(search); !result.IsValid {
		return formatter.Fail(result.Errors[0])
	}

	sess, err := openSession(opts.RootOptions, cmd)
	if err != nil {
		return formatter.Fail(err)
	}
	defer sess.Close()

	result, err := sess.submit(search, opts.Offset, "")
	if err != nil {
		return formatter.Fail(err)
	}
	return outputQuery(formatter, result)
}

func readTemplate(source string, stdin io.Reader) (string, error) {
	if source == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", &CLIError{Code: ErrCodeGeneric, Message: "reading template from stdin: " + err.Error()}
		}
		return string(data), nil
	}

	data, err := os.ReadFile(source)
	if os.IsNotExist(err) {
		return "", &CLIError{Code: ErrCodeNotFound, Message: "template not found: " + source}
	}
	if err != nil {
		return "", &CLIError{Code: ErrCodeGeneric, Message: "reading template: " + err.Error()}
	}
	return string(data), nil
}
