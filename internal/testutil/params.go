package testutil

import (
	"sync"

	"github.com/roach88/gravsearch/internal/queryir"
)

// ParamsSpy records every search handed to the pagination slot.
//
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type ParamsSpy struct {
	mu    sync.Mutex
	calls []queryir.Query
	err   error
}

// NewParamsSpy creates a spy that accepts every call.
func NewParamsSpy() *ParamsSpy {
	return &ParamsSpy{}
}

// FailWith makes subsequent calls return err.
func (s *ParamsSpy) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

// ChangeSearchParams records q.
func (s *ParamsSpy) ChangeSearchParams(q queryir.Query) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.calls = append(s.calls, q)
	return nil
}

// Count returns the number of recorded calls.
func (s *ParamsSpy) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

// Last returns the most recently recorded search.
func (s *ParamsSpy) Last() (queryir.Query, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.calls) == 0 {
		return nil, false
	}
	return s.calls[len(s.calls)-1], true
}
