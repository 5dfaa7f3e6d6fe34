package testutil

import (
	"fmt"
	"sync"
)

// SequentialIDGenerator returns predictable submission IDs for tests.
//
// The store normally stamps UUIDv7 values, which embed wall-clock time.
// Swapping in this generator makes stored rows and golden output
// byte-identical across runs.
//
// Thread-safety: Generate is safe for concurrent use.
type SequentialIDGenerator struct {
	mu     sync.Mutex
	prefix string
	n      int
}

// NewSequentialIDGenerator creates a generator producing prefix-0001,
// prefix-0002 and so on. An empty prefix defaults to "test-submission".
func NewSequentialIDGenerator(prefix string) *SequentialIDGenerator {
	if prefix == "" {
		prefix = "test-submission"
	}
	return &SequentialIDGenerator{prefix: prefix}
}

// Generate returns the next ID.
func (g *SequentialIDGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("%s-%04d", g.prefix, g.n)
}
