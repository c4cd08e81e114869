package harness

import (
	"bytes"
	"fmt"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/roach88/pocketcalc/internal/calc"
	"github.com/roach88/pocketcalc/internal/keypad"
)

// Scenario defines a key-sequence test.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// AngleMode is the starting angle mode, "deg" if empty.
	AngleMode string `yaml:"angle_mode,omitempty"`

	// SessionID is an optional fixed session ID.
	// If empty, defaults to "test-session-default".
	SessionID string `yaml:"session_id,omitempty"`

	// Steps are pressed in order.
	Steps []Step `yaml:"steps"`

	// Assertions validate the final state and history.
	Assertions []Assertion `yaml:"assertions"`
}

// Step is a whitespace-separated key sequence with an optional expectation.
type Step struct {
	Press  string        `yaml:"press"`
	Expect *ExpectClause `yaml:"expect,omitempty"`
}

// ExpectClause specifies the state after a step. Empty fields are not checked.
type ExpectClause struct {
	Display string `yaml:"display,omitempty"`
	Label   string `yaml:"label,omitempty"`
	Mode    string `yaml:"mode,omitempty"`
	Error   *bool  `yaml:"error,omitempty"`
}

// Assertion validates the final state or the history.
type Assertion struct {
	// Type specifies the assertion type:
	// - "final_display": Display equals the final display
	// - "final_mode": Mode equals the final mode
	// - "history_contains": Text is a history line
	// - "history_count": the history has exactly Count lines
	Type string `yaml:"type"`

	Display string `yaml:"display,omitempty"`
	Mode    string `yaml:"mode,omitempty"`
	Text    string `yaml:"text,omitempty"`
	Count   int    `yaml:"count,omitempty"`
}

// Assertion type constants.
const (
	AssertFinalDisplay    = "final_display"
	AssertFinalMode       = "final_mode"
	AssertHistoryContains = "history_contains"
	AssertHistoryCount    = "history_count"
)

var validModes = map[string]bool{
	calc.Entering.String():        true,
	calc.OperatorPending.String(): true,
	calc.PercentStaged.String():   true,
	calc.Error.String():           true,
}

// LoadScenario reads and parses a scenario YAML file from disk.
func LoadScenario(path string) (*Scenario, error) {
	return LoadScenarioFS(afero.NewOsFs(), path)
}

// LoadScenarioFS reads and parses a scenario YAML file from fs.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenarioFS(fs afero.Fs, path string) (*Scenario, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Strict field validation catches typos like "assertion:" vs "assertions:"
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if s.AngleMode != "" {
		if _, ok := calc.ParseAngleMode(s.AngleMode); !ok {
			return fmt.Errorf("angle_mode must be \"deg\" or \"rad\", got %q", s.AngleMode)
		}
	}

	if len(s.Steps) == 0 {
		return fmt.Errorf("steps list is required and must be non-empty")
	}

	if len(s.Assertions) == 0 {
		return fmt.Errorf("assertions list is required and must be non-empty")
	}

	for i, step := range s.Steps {
		keys, err := keypad.ParseLine(step.Press)
		if err != nil {
			return fmt.Errorf("steps[%d]: %w", i, err)
		}
		if len(keys) == 0 {
			return fmt.Errorf("steps[%d]: press is required", i)
		}
		if step.Expect != nil && step.Expect.Mode != "" && !validModes[step.Expect.Mode] {
			return fmt.Errorf("steps[%d].expect: unknown mode %q", i, step.Expect.Mode)
		}
	}

	for i, assertion := range s.Assertions {
		if err := validateAssertion(i, &assertion); err != nil {
			return err
		}
	}

	return nil
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(index int, a *Assertion) error {
	if a.Type == "" {
		return fmt.Errorf("assertions[%d]: type is required", index)
	}

	switch a.Type {
	case AssertFinalDisplay:
		if a.Display == "" {
			return fmt.Errorf("assertions[%d]: display is required for final_display", index)
		}
	case AssertFinalMode:
		if !validModes[a.Mode] {
			return fmt.Errorf("assertions[%d]: unknown mode %q for final_mode", index, a.Mode)
		}
	case AssertHistoryContains:
		if a.Text == "" {
			return fmt.Errorf("assertions[%d]: text is required for history_contains", index)
		}
	case AssertHistoryCount:
		if a.Count < 0 {
			return fmt.Errorf("assertions[%d]: count must be non-negative for history_count", index)
		}
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}

	return nil
}
