package store

import (
	"context"
	"fmt"

	"github.com/roach88/gravsearch/internal/ir"
	"github.com/roach88/gravsearch/internal/queryir"
)

// Submission is one stored search handed over at offset 0.
type Submission struct {
	Seq           int64
	SubmissionID  string
	SearchID      string
	Mode          string
	Query         queryir.Query
	EngineVersion string
	RecordVersion string
}

// WriteSearch appends q as the newest submission and returns the stored row.
// Identical searches get distinct submissions that share a SearchID.
func (s *Store) WriteSearch(ctx context.Context, q queryir.Query) (Submission, error) {
	mode, err := queryir.Mode(q)
	if err != nil {
		return Submission{}, fmt.Errorf("write search: %w", err)
	}

	searchID, err := queryir.ID(q)
	if err != nil {
		return Submission{}, fmt.Errorf("write search: %w", err)
	}

	record, err := marshalRecord(q)
	if err != nil {
		return Submission{}, fmt.Errorf("write search: %w", err)
	}

	sub := Submission{
		SubmissionID:  s.ids.Generate(),
		SearchID:      searchID,
		Mode:          mode,
		Query:         q,
		EngineVersion: ir.EngineVersion,
		RecordVersion: ir.RecordVersion,
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO searches
		(submission_id, search_id, mode, record, engine_version, record_version)
		VALUES (?, ?, ?, ?, ?, ?)
	`,
		sub.SubmissionID,
		sub.SearchID,
		sub.Mode,
		record,
		sub.EngineVersion,
		sub.RecordVersion,
	)
	if err != nil {
		return Submission{}, fmt.Errorf("write search: %w", err)
	}

	sub.Seq, err = res.LastInsertId()
	if err != nil {
		return Submission{}, fmt.Errorf("write search: %w", err)
	}

	return sub, nil
}

// RecordPage marks offset as generated for the submission at seq.
// Uses ON CONFLICT DO NOTHING for idempotency - regenerating a page is not an error.
//
// Note: The submission referenced by seq must exist (foreign key constraint).
func (s *Store) RecordPage(ctx context.Context, seq int64, offset int) error {
	if offset < 0 {
		return fmt.Errorf("record page: %w", queryir.NewInvalidOffsetError(offset))
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO pages (search_seq, page_offset)
		VALUES (?, ?)
		ON CONFLICT DO NOTHING
	`, seq, offset)
	if err != nil {
		return fmt.Errorf("record page: %w", err)
	}

	return nil
}
