package harness

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunWithGolden_Scenarios(t *testing.T) {
	files, err := filepath.Glob("testdata/scenarios/*.yaml")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, file := range files {
		t.Run(filepath.Base(file), func(t *testing.T) {
			scenario, err := LoadScenario(file)
			require.NoError(t, err)

			// Regenerate with:
			//   go test ./internal/harness -run TestRunWithGolden_Scenarios -update
			result, err := RunWithGolden(t, scenario)
			require.NoError(t, err)
			assert.True(t, result.Pass, "errors: %v", result.Errors)
		})
	}
}

func TestSnapshot_SessionID(t *testing.T) {
	scenario := &Scenario{Name: "with_session", SessionID: "s-1"}
	result := NewResult()
	result.AddTrace(TraceEvent{Seq: 1, Key: "7", Display: "7", Mode: "entering"})

	data, err := Snapshot(scenario, result)
	require.NoError(t, err)
	assert.Equal(t,
		`{"scenario_name":"with_session","session_id":"s-1","trace":[{"display":"7","key":"7","mode":"entering","seq":1}]}`,
		string(data))
}

func TestSnapshot_Deterministic(t *testing.T) {
	scenario, err := LoadScenario("testdata/scenarios/percent_add.yaml")
	require.NoError(t, err)

	first, err := Run(scenario)
	require.NoError(t, err)
	second, err := Run(scenario)
	require.NoError(t, err)

	a, err := Snapshot(scenario, first)
	require.NoError(t, err)
	b, err := Snapshot(scenario, second)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}
