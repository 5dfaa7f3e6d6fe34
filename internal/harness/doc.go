// Package harness provides conformance testing for Gravsearch generation.
//
// The harness loads CUE search requests, drives them through the compiler
// and the persistent pagination slot, and checks the generated queries
// against expectations and golden files.
//
// # Scenario Format
//
// Scenarios are defined in YAML files with the following structure:
//
//	name: scenario_name
//	description: "What this scenario validates"
//	request: requests/integer_search.cue
//	flow:
//	  - action: compile
//	    offset: 0
//	    expect:
//	      notified: true
//	      contains: ["FILTER(?propVal0Literal = \"3\"^^<...#integer>)"]
//	  - action: next
//	    expect:
//	      contains: ["OFFSET 1"]
//	  - action: compile
//	    request: requests/other.cue
//	    offset: -1
//	    expect:
//	      error: INVALID_OFFSET
//	assertions:
//	  - type: history_count
//	    count: 1
//	  - type: page_log
//	    offsets: [0, 1]
//
// Request paths are relative to the scenario file.
//
// # Flow Actions
//
//   - compile: Compile the step's request at offset (notifies the slot at 0)
//   - page: Regenerate the stored current search at offset
//   - next: Regenerate the stored current search at the next unseen offset
//
// # Assertion Types
//
//   - history_count: Number of stored submissions
//   - page_log: Offsets recorded for the current submission
//   - current_mode: Mode of the current submission
//   - trace_count: Number of steps that produced a query
//
// # Deterministic Testing
//
// Each scenario runs against a fresh in-memory SQLite store with
// sequential submission IDs, so traces are identical across runs and can
// be compared with golden files.
//
// # Usage
//
//	scenario, err := harness.LoadScenario("testdata/scenarios/paging.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := harness.Run(scenario)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !result.Pass {
//	    for _, err := range result.Errors {
//	        log.Println(err)
//	    }
//	}
package harness
