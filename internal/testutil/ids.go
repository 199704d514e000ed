// Package testutil holds deterministic helpers shared by tests.
package testutil

import (
	"fmt"
	"sync"
)

// SequentialIDs generates predictable record ids for tests: the prefix
// followed by a zero-padded counter starting at 1 ("conv-0001", ...).
//
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type SequentialIDs struct {
	Prefix string

	mu  sync.Mutex
	seq int
}

// NewSequentialIDs creates a generator with the given prefix.
func NewSequentialIDs(prefix string) *SequentialIDs {
	return &SequentialIDs{Prefix: prefix}
}

// Generate returns the next id.
func (g *SequentialIDs) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.seq++
	return fmt.Sprintf("%s%04d", g.Prefix, g.seq)
}

// Reset restarts the counter so the next id ends in 0001.
func (g *SequentialIDs) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.seq = 0
}
