package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/roach88/gravsearch/internal/queryir"
	"github.com/roach88/gravsearch/internal/querysparql"
)

// Slot is the persistent pagination slot. It satisfies
// querysparql.ParamsSink, so a compiler notifying it at offset 0 appends a
// new submission and records page 0 for it.
//
// Thread-safety: All methods are safe for concurrent use.
type Slot struct {
	store *Store
	ctx   context.Context

	mu   sync.Mutex
	last *Submission
}

var _ querysparql.ParamsSink = (*Slot)(nil)

// Slot returns a pagination slot bound to ctx for sink callbacks.
func (s *Store) Slot(ctx context.Context) *Slot {
	return &Slot{store: s, ctx: ctx}
}

// ChangeSearchParams stores q as the current search.
func (sl *Slot) ChangeSearchParams(q queryir.Query) error {
	sub, err := sl.store.WriteSearch(sl.ctx, q)
	if err != nil {
		return err
	}
	if err := sl.store.RecordPage(sl.ctx, sub.Seq, 0); err != nil {
		return err
	}

	sl.mu.Lock()
	sl.last = &sub
	sl.mu.Unlock()
	return nil
}

// Last returns the submission written by the most recent
// ChangeSearchParams call on this slot.
func (sl *Slot) Last() (Submission, bool) {
	sl.mu.Lock()
	defer sl.mu.Unlock()
	if sl.last == nil {
		return Submission{}, false
	}
	return *sl.last, true
}

// Page is one generated page of a stored search.
type Page struct {
	Submission Submission
	Offset     int
	Query      string
}

// GenerateGravsearch regenerates the current search at offset and records
// the page. It never writes a new submission.
// Returns querysparql.ErrNoSearch when nothing has been submitted.
func (sl *Slot) GenerateGravsearch(offset int) (Page, error) {
	sub, err := sl.current()
	if err != nil {
		return Page{}, err
	}
	return sl.generate(sub, offset)
}

// NextPage generates the page after the highest one recorded for the
// current search.
func (sl *Slot) NextPage() (Page, error) {
	sub, err := sl.current()
	if err != nil {
		return Page{}, err
	}

	last, ok, err := sl.store.LastOffset(sl.ctx, sub.Seq)
	if err != nil {
		return Page{}, err
	}
	next := 0
	if ok {
		next = last + 1
	}
	return sl.generate(sub, next)
}

func (sl *Slot) current() (Submission, error) {
	sub, err := sl.store.CurrentSearch(sl.ctx)
	if errors.Is(err, ErrNotFound) {
		return Submission{}, querysparql.ErrNoSearch
	}
	return sub, err
}

func (sl *Slot) generate(sub Submission, offset int) (Page, error) {
	query, err := querysparql.Generate(sub.Query, offset)
	if err != nil {
		return Page{}, err
	}
	if err := sl.store.RecordPage(sl.ctx, sub.Seq, offset); err != nil {
		return Page{}, fmt.Errorf("submission %s: %w", sub.SubmissionID, err)
	}
	return Page{Submission: sub, Offset: offset, Query: query}, nil
}
