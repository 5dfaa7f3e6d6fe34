package querysparql

import (
	"errors"
	"sync"

	"github.com/roach88/gravsearch/internal/queryir"
)

// ErrNoSearch is returned when paging is requested before any search was
// submitted.
var ErrNoSearch = errors.New("no search has been submitted")

// ParamsSink receives the record of every search compiled at offset 0.
type ParamsSink interface {
	ChangeSearchParams(q queryir.Query) error
}

// SearchParams is an in-memory single-slot pagination state. The last
// submitted search wins.
//
// Thread-safety: All methods are safe for concurrent use.
type SearchParams struct {
	mu      sync.RWMutex
	current queryir.Query
}

// NewSearchParams creates an empty slot.
func NewSearchParams() *SearchParams {
	return &SearchParams{}
}

// ChangeSearchParams replaces the current search.
func (p *SearchParams) ChangeSearchParams(q queryir.Query) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.current = q
	return nil
}

// Current returns the current search, if any.
func (p *SearchParams) Current() (queryir.Query, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.current, p.current != nil
}

// GenerateGravsearch regenerates the current search at offset.
func (p *SearchParams) GenerateGravsearch(offset int) (string, error) {
	q, ok := p.Current()
	if !ok {
		return "", ErrNoSearch
	}
	return Generate(q, offset)
}
