package store

import (
	"path/filepath"
	"testing"

	"github.com/roach88/quirkurl/internal/testutil"
)

// createTestStore opens a fresh store in a temp dir with sequential ids.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path, WithIDGenerator(testutil.NewSequentialIDs("conv-")))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testConversion(name, digest string) Conversion {
	return Conversion{
		Name:    name,
		Source:  name + ".yaml",
		Digest:  digest,
		Columns: 2,
		Ops:     3,
		URL:     "https://algassert.com/quirk#circuit={\"cols\":[]}",
	}
}
