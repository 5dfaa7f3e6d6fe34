package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ErrNotFound is returned when a requested submission does not exist.
var ErrNotFound = errors.New("submission not found")

const selectSearch = `
	SELECT seq, submission_id, search_id, mode, record, engine_version, record_version
	FROM searches
`

// CurrentSearch returns the newest submission.
// Returns ErrNotFound when nothing has been submitted yet.
func (s *Store) CurrentSearch(ctx context.Context) (Submission, error) {
	row := s.db.QueryRowContext(ctx, selectSearch+`
		ORDER BY seq DESC
		LIMIT 1
	`)
	return scanSubmissionRow(row)
}

// ReadSearch retrieves a single submission by its submission ID.
// Returns ErrNotFound if not found.
func (s *Store) ReadSearch(ctx context.Context, submissionID string) (Submission, error) {
	row := s.db.QueryRowContext(ctx, selectSearch+`
		WHERE submission_id = ?
	`, submissionID)
	return scanSubmissionRow(row)
}

// ListSearches returns every submission, oldest first.
// Results are ordered deterministically: ORDER BY seq ASC, submission_id COLLATE BINARY ASC.
//
// Returns an empty slice (not nil) if the store is empty.
func (s *Store) ListSearches(ctx context.Context) ([]Submission, error) {
	rows, err := s.db.QueryContext(ctx, selectSearch+`
		ORDER BY seq ASC, submission_id COLLATE BINARY ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query searches: %w", err)
	}
	defer rows.Close()

	var subs []Submission
	for rows.Next() {
		sub, err := scanSubmission(rows)
		if err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate searches: %w", err)
	}

	// Return empty slice instead of nil
	if subs == nil {
		subs = []Submission{}
	}

	return subs, nil
}

// Pages returns the offsets generated for the submission at seq, ascending.
// Returns an empty slice (not nil) if no page was recorded.
func (s *Store) Pages(ctx context.Context, seq int64) ([]int, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT page_offset
		FROM pages
		WHERE search_seq = ?
		ORDER BY page_offset ASC
	`, seq)
	if err != nil {
		return nil, fmt.Errorf("query pages: %w", err)
	}
	defer rows.Close()

	offsets := []int{}
	for rows.Next() {
		var offset int
		if err := rows.Scan(&offset); err != nil {
			return nil, fmt.Errorf("scan page: %w", err)
		}
		offsets = append(offsets, offset)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate pages: %w", err)
	}

	return offsets, nil
}

// LastOffset returns the highest offset generated for the submission at seq.
// The boolean is false when no page was recorded.
func (s *Store) LastOffset(ctx context.Context, seq int64) (int, bool, error) {
	var offset sql.NullInt64
	err := s.db.QueryRowContext(ctx, `
		SELECT MAX(page_offset)
		FROM pages
		WHERE search_seq = ?
	`, seq).Scan(&offset)
	if err != nil {
		return 0, false, fmt.Errorf("query last offset: %w", err)
	}
	if !offset.Valid {
		return 0, false, nil
	}
	return int(offset.Int64), true, nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanSubmission(row rowScanner) (Submission, error) {
	var sub Submission
	var record string
	err := row.Scan(
		&sub.Seq,
		&sub.SubmissionID,
		&sub.SearchID,
		&sub.Mode,
		&record,
		&sub.EngineVersion,
		&sub.RecordVersion,
	)
	if err != nil {
		return Submission{}, fmt.Errorf("scan search: %w", err)
	}

	sub.Query, err = unmarshalRecord(record)
	if err != nil {
		return Submission{}, fmt.Errorf("submission %s: %w", sub.SubmissionID, err)
	}

	return sub, nil
}

func scanSubmissionRow(row *sql.Row) (Submission, error) {
	sub, err := scanSubmission(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Submission{}, ErrNotFound
	}
	return sub, err
}
