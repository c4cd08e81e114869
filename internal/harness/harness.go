package harness

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/roach88/pocketcalc/internal/calc"
	"github.com/roach88/pocketcalc/internal/history"
	"github.com/roach88/pocketcalc/internal/session"
	"github.com/roach88/pocketcalc/internal/testutil"
)

// Run executes a scenario and returns the result.
//
// Each scenario runs in a fresh in-memory history store.
//
// Execution flow:
// 1. Open an in-memory store and a session with a fixed ID
// 2. Press every step, recording the trace and checking expect clauses
// 3. Read back the history
// 4. Evaluate assertions
func Run(scenario *Scenario) (*Result, error) {
	st, err := history.Open(history.InMemory)
	if err != nil {
		return nil, fmt.Errorf("failed to create in-memory store: %w", err)
	}
	defer st.Close()

	angle := calc.Degrees
	if scenario.AngleMode != "" {
		mode, ok := calc.ParseAngleMode(scenario.AngleMode)
		if !ok {
			return nil, fmt.Errorf("invalid angle_mode %q", scenario.AngleMode)
		}
		angle = mode
	}

	sess := session.New(st, session.Options{
		AngleMode:   angle,
		IDGenerator: testutil.NewFixedIDGenerator(scenario.SessionID),
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)), // Suppress logs in tests
	})

	ctx := context.Background()
	result := NewResult()

	for i, step := range scenario.Steps {
		steps, err := sess.PressLine(ctx, step.Press)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		for _, s := range steps {
			result.AddTrace(traceEvent(s))
		}
		if step.Expect != nil {
			for _, msg := range checkExpect(i, step.Expect, sess.State()) {
				result.AddError(msg)
			}
		}
	}

	entries, err := sess.History(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}
	for _, e := range entries {
		result.History = append(result.History, e.Text())
	}

	for _, msg := range EvaluateAssertions(result, sess.State(), scenario.Assertions) {
		result.AddError(msg)
	}

	return result, nil
}

func traceEvent(s session.Step) TraceEvent {
	event := TraceEvent{
		Seq:     s.Seq,
		Key:     s.Key.String(),
		Display: s.State.Display,
		Label:   s.State.Percent.Label,
		Mode:    s.State.Mode().String(),
	}
	if s.Entry != nil {
		event.History = s.Entry.Text()
	}
	return event
}

// checkExpect compares the state after step index against an expect clause.
func checkExpect(index int, want *ExpectClause, got calc.State) []string {
	var errs []string
	if want.Display != "" && want.Display != got.Display {
		errs = append(errs, fmt.Sprintf("steps[%d]: expected display %q, got %q", index, want.Display, got.Display))
	}
	if want.Label != "" && want.Label != got.Percent.Label {
		errs = append(errs, fmt.Sprintf("steps[%d]: expected label %q, got %q", index, want.Label, got.Percent.Label))
	}
	if want.Mode != "" && want.Mode != got.Mode().String() {
		errs = append(errs, fmt.Sprintf("steps[%d]: expected mode %s, got %s", index, want.Mode, got.Mode()))
	}
	if want.Error != nil && *want.Error != got.Err {
		errs = append(errs, fmt.Sprintf("steps[%d]: expected error=%t, got %t", index, *want.Error, got.Err))
	}
	return errs
}
