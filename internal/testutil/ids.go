package testutil

// FixedIDGenerator returns the same session ID every time.
//
// Scenarios run with a FixedIDGenerator produce byte-identical history rows,
// which keeps golden snapshots stable.
//
// Thread-safety: FixedIDGenerator is stateless and safe for concurrent use.
type FixedIDGenerator struct {
	id string
}

// NewFixedIDGenerator creates a generator for id.
// If id is empty, Generate() returns "test-session-default".
func NewFixedIDGenerator(id string) *FixedIDGenerator {
	if id == "" {
		id = "test-session-default"
	}
	return &FixedIDGenerator{id: id}
}

// Generate returns the fixed ID.
//
// Implements session.IDGenerator.
func (g *FixedIDGenerator) Generate() string {
	return g.id
}
