package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"
)

// Snapshot renders the trace of a scenario run as canonical JSON.
// The CLI test command and RunWithGolden share this encoding, so golden
// files written by either are interchangeable.
func Snapshot(scenario *Scenario, result *Result) ([]byte, error) {
	trace := make([]any, len(result.Trace))
	for i, event := range result.Trace {
		eventMap := map[string]any{
			"seq":     event.Seq,
			"key":     event.Key,
			"display": event.Display,
			"mode":    event.Mode,
		}
		if event.Label != "" {
			eventMap["label"] = event.Label
		}
		if event.History != "" {
			eventMap["history"] = event.History
		}
		trace[i] = eventMap
	}

	snapshot := map[string]any{
		"scenario_name": scenario.Name,
		"trace":         trace,
	}
	if scenario.SessionID != "" {
		snapshot["session_id"] = scenario.SessionID
	}
	return MarshalCanonical(snapshot)
}

// RunWithGolden executes a scenario and compares the trace against a golden file.
// The golden file is stored in testdata/golden/{scenario.Name}.golden
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Returns error if scenario execution fails.
// Test failure (via goldie) occurs if trace doesn't match golden file.
func RunWithGolden(t *testing.T, scenario *Scenario) (*Result, error) {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return nil, err
	}

	if err := AssertGolden(t, scenario, result); err != nil {
		return nil, err
	}
	return result, nil
}

// AssertGolden compares an existing result's trace against a golden file
// without re-running the scenario.
func AssertGolden(t *testing.T, scenario *Scenario, result *Result) error {
	t.Helper()

	data, err := Snapshot(scenario, result)
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenario.Name, data)

	return nil
}
