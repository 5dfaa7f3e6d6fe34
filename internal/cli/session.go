package cli

import (
	"context"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/gravsearch/internal/queryir"
	"github.com/roach88/gravsearch/internal/querysparql"
	"github.com/roach88/gravsearch/internal/store"
)

// session is one command's view of the search history: the store, its
// pagination slot and a compiler that notifies the slot.
type session struct {
	ctx    context.Context
	store  *store.Store
	slot   *store.Slot
	gen    *querysparql.GravsearchCompiler
	logger *slog.Logger
}

// openSession opens the history database named by opts.
func openSession(opts *RootOptions, cmd *cobra.Command) (*session, error) {
	st, err := store.Open(opts.Database)
	if err != nil {
		return nil, &CLIError{Code: ErrCodeStoreError, Message: "failed to open database: " + err.Error()}
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	logger := opts.Logger(cmd.ErrOrStderr())
	slot := st.Slot(ctx)
	return &session{
		ctx:    ctx,
		store:  st,
		slot:   slot,
		gen:    querysparql.NewGravsearchCompiler(storeSink{slot}, querysparql.WithLogger(logger)),
		logger: logger.With("db", opts.Database),
	}, nil
}

func (s *session) Close() error {
	return s.store.Close()
}

// submit compiles q at offset. At offset 0 the search is stored and
// becomes current; other offsets leave the history untouched.
func (s *session) submit(q queryir.Query, offset int, apiURL string) (QueryResult, error) {
	before, _ := s.slot.Last()

	text, err := s.gen.Compile(q, offset)
	if err != nil {
		return QueryResult{}, err
	}

	mode, _ := queryir.Mode(q)
	result := QueryResult{
		Query:  withAPIURL(q, text, apiURL),
		Offset: offset,
		Mode:   mode,
	}
	if after, ok := s.slot.Last(); ok && after.Seq != before.Seq {
		result.Notified = true
		result.SubmissionID = after.SubmissionID
		result.SearchID = after.SearchID
		s.logger.Debug("search stored", "submission_id", after.SubmissionID, "seq", after.Seq)
	}
	return result, nil
}

// pageResult converts a regenerated page.
func pageResult(page store.Page, apiURL string) QueryResult {
	return QueryResult{
		Query:        withAPIURL(page.Submission.Query, page.Query, apiURL),
		Offset:       page.Offset,
		Mode:         page.Submission.Mode,
		SubmissionID: page.Submission.SubmissionID,
		SearchID:     page.Submission.SearchID,
	}
}

// withAPIURL prefixes fulltext request paths with the API base URL.
func withAPIURL(q queryir.Query, text, apiURL string) string {
	if apiURL == "" {
		return text
	}
	if mode, _ := queryir.Mode(q); mode != queryir.ModeFulltext {
		return text
	}
	return strings.TrimRight(apiURL, "/") + text
}

// storeSink reports slot failures as store errors.
type storeSink struct {
	slot *store.Slot
}

func (s storeSink) ChangeSearchParams(q queryir.Query) error {
	if err := s.slot.ChangeSearchParams(q); err != nil {
		return &CLIError{Code: ErrCodeStoreError, Message: err.Error()}
	}
	return nil
}
