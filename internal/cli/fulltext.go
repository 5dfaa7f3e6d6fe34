package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/gravsearch/internal/queryir"
)

// FulltextOptions holds flags for the fulltext command.
type FulltextOptions struct {
	*RootOptions
	Offset               int
	LimitToResourceClass string
	LimitToProject       string
}

// NewFulltextCommand creates the fulltext command.
func NewFulltextCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &FulltextOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "fulltext <term>",
		Short: "Build the request path of a fulltext search",
		Long: `Build the API request path of a fulltext search for term.

With --api-url (or GRAVSEARCH_API_URL) the path is prefixed with the API
base URL. At offset 0 the search becomes the current search.

Examples:
  gravsearch fulltext Zeitglöcklein
  gravsearch fulltext Bernoulli --limit-to-project http://rdfh.ch/projects/0001 --offset 1`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFulltext(opts, args[0], cmd)
		},
	}

	cmd.Flags().IntVar(&opts.Offset, "offset", 0, "page offset")
	cmd.Flags().StringVar(&opts.LimitToResourceClass, "limit-to-resource-class", "", "only match resources of this class IRI")
	cmd.Flags().StringVar(&opts.LimitToProject, "limit-to-project", "", "only match resources of this project IRI")

	return cmd
}

func runFulltext(opts *FulltextOptions, term string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	search := queryir.FulltextSearch{
		Term:                 term,
		LimitToResourceClass: opts.LimitToResourceClass,
		LimitToProject:       opts.LimitToProject,
	}
	if result := queryir.Validate(search); !result.IsValid {
		return formatter.Fail(result.Errors[0])
	}

	sess, err := openSession(opts.RootOptions, cmd)
	if err != nil {
		return formatter.Fail(err)
	}
	defer sess.Close()

	result, err := sess.submit(search, opts.Offset, opts.APIURL)
	if err != nil {
		return formatter.Fail(err)
	}
	return outputQuery(formatter, result)
}
