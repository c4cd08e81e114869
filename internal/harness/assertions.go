package harness

import (
	"fmt"
	"strings"

	"github.com/roach88/pocketcalc/internal/calc"
)

// AssertionError is returned when an assertion fails.
// It includes detailed context to help debug the failure.
type AssertionError struct {
	Type     string       // Assertion type for categorization
	Expected string       // Human-readable expected outcome
	Actual   string       // Human-readable actual outcome
	Trace    []TraceEvent // Full trace for debugging context
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "Assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s\n", e.Actual)

	fmt.Fprintf(&buf, "\nFull trace:\n")
	for _, event := range e.Trace {
		fmt.Fprintf(&buf, "  [%d] %-5s -> %s\n", event.Seq, event.Key, event.Display)
	}

	return buf.String()
}

func assertFinalDisplay(trace []TraceEvent, final calc.State, a Assertion) error {
	if final.Display == a.Display {
		return nil
	}
	return &AssertionError{
		Type:     AssertFinalDisplay,
		Expected: fmt.Sprintf("display %q", a.Display),
		Actual:   fmt.Sprintf("display %q", final.Display),
		Trace:    trace,
	}
}

func assertFinalMode(trace []TraceEvent, final calc.State, a Assertion) error {
	if final.Mode().String() == a.Mode {
		return nil
	}
	return &AssertionError{
		Type:     AssertFinalMode,
		Expected: "mode " + a.Mode,
		Actual:   "mode " + final.Mode().String(),
		Trace:    trace,
	}
}

func assertHistoryContains(result *Result, a Assertion) error {
	for _, line := range result.History {
		if line == a.Text {
			return nil
		}
	}
	return &AssertionError{
		Type:     AssertHistoryContains,
		Expected: fmt.Sprintf("history line %q", a.Text),
		Actual:   fmt.Sprintf("history %q", result.History),
		Trace:    result.Trace,
	}
}

func assertHistoryCount(result *Result, a Assertion) error {
	if len(result.History) == a.Count {
		return nil
	}
	return &AssertionError{
		Type:     AssertHistoryCount,
		Expected: fmt.Sprintf("%d history lines", a.Count),
		Actual:   fmt.Sprintf("%d history lines", len(result.History)),
		Trace:    result.Trace,
	}
}

// EvaluateAssertions checks all assertions and returns failure messages.
func EvaluateAssertions(result *Result, final calc.State, assertions []Assertion) []string {
	var errors []string

	for i, assertion := range assertions {
		var err error

		switch assertion.Type {
		case AssertFinalDisplay:
			err = assertFinalDisplay(result.Trace, final, assertion)
		case AssertFinalMode:
			err = assertFinalMode(result.Trace, final, assertion)
		case AssertHistoryContains:
			err = assertHistoryContains(result, assertion)
		case AssertHistoryCount:
			err = assertHistoryCount(result, assertion)
		default:
			err = fmt.Errorf("assertion[%d]: unknown assertion type %q", i, assertion.Type)
		}

		if err != nil {
			errors = append(errors, err.Error())
		}
	}

	return errors
}
