// Package history records the results a session commits.
//
// Entries are phrased from a calc.Projection so the wording never repeats
// the arithmetic, and stored in an append-only SQLite table ordered by the
// session's logical clock.
//
// # Lifetime
//
// The shell opens the store with InMemory. History lives as long as the
// process does; nothing is written to disk or restored on start.
//
// # Database Configuration
//
//   - Single connection: an in-memory database exists per connection
//   - Primary key (session_id, seq): one entry per key press
//   - All reads ORDER BY seq ASC
package history
