// Package harness runs key-sequence scenarios against a real calculator
// session and compares the resulting trace with golden snapshots.
//
// # Scenario Format
//
// Scenarios are defined in YAML files with the following structure:
//
//	name: percent_add
//	description: "Adding a percentage takes it of the first operand"
//	angle_mode: deg            # optional, "deg" (default) or "rad"
//	steps:
//	  - press: "2 0 0 +"
//	  - press: "1 0 %"
//	    expect:
//	      display: "10"
//	      label: "10%"
//	      mode: percent_staged
//	  - press: "="
//	    expect: { display: "220" }
//	assertions:
//	  - type: final_display
//	    display: "220"
//	  - type: history_contains
//	    text: "200 + 10% = 220"
//
// A step's expect clause is checked against the state after the step's last
// key. Only the fields it names are compared.
//
// # Assertion Types
//
//   - final_display: the display after the last step
//   - final_mode: the mode after the last step (entering, operator_pending,
//     percent_staged, error)
//   - history_contains: a history line is present
//   - history_count: the history has exactly N lines
//
// # Deterministic Testing
//
// Every scenario runs in a fresh in-memory history store with a fixed
// session ID, and seq values come from the session's logical clock, so the
// trace is byte-identical across runs.
//
// # Usage
//
//	scenario, err := harness.LoadScenario("testdata/scenarios/percent_add.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := harness.Run(scenario)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !result.Pass {
//	    for _, e := range result.Errors {
//	        log.Println(e)
//	    }
//	}
package harness
