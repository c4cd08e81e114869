package history

import (
	"testing"
)

// createTestStore creates a new in-memory store for testing.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(InMemory)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// createTestEntry creates an entry with fixed phrasing.
func createTestEntry(sessionID string, seq int64) Entry {
	return Entry{
		Seq:        seq,
		SessionID:  sessionID,
		Kind:       "binary",
		Expression: "1 + 1",
		Result:     "2",
	}
}
