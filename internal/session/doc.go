// Package session is the calculator shell's core: it owns the single
// current-state slot and the history log.
//
// ARCHITECTURE:
//
// Single Writer:
// A Session serializes every transition through one state slot. Keys are
// applied one at a time in the order Press is called; the engine itself is
// pure, so the session is the only place state changes.
//
// Logical Clock:
// Every key press is stamped with the next value of a monotonic counter.
// History entries carry the seq of the press that produced them, so the log
// order never depends on wall-clock time.
//
// History:
// Only "=" and scientific functions append entries, and only when the engine
// reports a computation for them (an "=" with nothing to evaluate appends
// nothing). Non-finite results are recorded as "Error".
package session
