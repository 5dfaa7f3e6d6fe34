package store

import (
	"path/filepath"
	"testing"

	"github.com/roach88/gravsearch/internal/ir"
	"github.com/roach88/gravsearch/internal/queryir"
	"github.com/roach88/gravsearch/internal/testutil"
)

// createTestStore creates a new store in a temp dir with sequential
// submission IDs.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path, WithIDGenerator(testutil.NewSequentialIDGenerator("")))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// integerSearch builds an advanced search for hasInteger = n on Thing.
func integerSearch(n string) queryir.AdvancedSearch {
	return queryir.AdvancedSearch{
		ResourceClassIRI: testutil.ThingClass,
		Selections: []queryir.PropertyWithValue{
			queryir.NewPropertyWithValue(
				testutil.Property(testutil.HasInteger),
				queryir.NewComparison(ir.Equals, ir.NewValueLiteral(n, ir.XSDInteger)),
				true,
			),
		},
	}
}
