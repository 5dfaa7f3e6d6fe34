package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Scenario defines a conformance test scenario.
// Scenarios submit searches, page through them and assert on the
// generated queries and the stored pagination state.
type Scenario struct {
	// Name uniquely identifies this scenario.
	// Also names the golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Request is the default CUE request for compile steps.
	// Paths are relative to the scenario file location.
	Request string `yaml:"request,omitempty"`

	// Flow contains the steps to execute, in order.
	Flow []FlowStep `yaml:"flow"`

	// Assertions validate the stored state after the flow.
	// Supported types: history_count, page_log, current_mode, trace_count
	Assertions []Assertion `yaml:"assertions,omitempty"`
}

// FlowStep is one compile or paging action.
type FlowStep struct {
	// Action is one of "compile", "page" or "next".
	Action string `yaml:"action"`

	// Request overrides the scenario request for a compile step.
	Request string `yaml:"request,omitempty"`

	// Offset is the page to generate. When nil, compile steps use the
	// offset in the request document and page steps use 0.
	// Ignored by next.
	Offset *int `yaml:"offset,omitempty"`

	// Expect specifies the expected step outcome.
	// If nil, the step is only required not to fail.
	Expect *ExpectClause `yaml:"expect,omitempty"`
}

// ExpectClause specifies expected step behavior.
type ExpectClause struct {
	// Notified is whether the step must (or must not) register a new
	// current search. Nil skips the check.
	Notified *bool `yaml:"notified,omitempty"`

	// Contains lists substrings the generated query must contain.
	Contains []string `yaml:"contains,omitempty"`

	// NotContains lists substrings the generated query must not contain.
	NotContains []string `yaml:"not_contains,omitempty"`

	// Error is the expected error code (e.g. "UNSUPPORTED_OPERATOR",
	// "NO_SEARCH"). When set, the step must fail with this code.
	Error string `yaml:"error,omitempty"`
}

// Assertion validates the stored state after the flow.
type Assertion struct {
	// Type specifies the assertion type:
	// - "history_count": Number of stored submissions equals Count
	// - "page_log": Offsets of the current submission equal Offsets
	// - "current_mode": Current submission has Mode
	// - "trace_count": Number of steps that produced a query equals Count
	Type string `yaml:"type"`

	// Count is the expected number (used by history_count, trace_count).
	Count int `yaml:"count,omitempty"`

	// Offsets is the expected ascending page log (used by page_log).
	Offsets []int `yaml:"offsets,omitempty"`

	// Mode is the expected search mode (used by current_mode).
	Mode string `yaml:"mode,omitempty"`
}

// Flow action constants.
const (
	ActionCompile = "compile"
	ActionPage    = "page"
	ActionNext    = "next"
)

// Assertion type constants.
const (
	AssertHistoryCount = "history_count"
	AssertPageLog      = "page_log"
	AssertCurrentMode  = "current_mode"
	AssertTraceCount   = "trace_count"
)

// LoadScenario reads and parses a scenario YAML file.
// Request paths are resolved relative to the scenario file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data, filepath.Dir(path))
}

// ParseScenario parses scenario YAML, resolving request paths relative
// to basePath.
func ParseScenario(data []byte, basePath string) (*Scenario, error) {
	// Parse YAML with strict field validation (catches typos like "assertion:" vs "assertions:")
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	// Resolve request paths relative to base path BEFORE validation
	scenario.Request = resolvePath(scenario.Request, basePath)
	for i := range scenario.Flow {
		scenario.Flow[i].Request = resolvePath(scenario.Flow[i].Request, basePath)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

func resolvePath(path, basePath string) string {
	if path == "" || filepath.IsAbs(path) || basePath == "" {
		return path
	}
	return filepath.Join(basePath, path)
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if len(s.Flow) == 0 {
		return fmt.Errorf("flow list is required and must be non-empty")
	}

	if s.Request != "" {
		if _, err := os.Stat(s.Request); os.IsNotExist(err) {
			return fmt.Errorf("request file not found: %s", s.Request)
		}
	}

	for i, step := range s.Flow {
		switch step.Action {
		case ActionCompile:
			if step.Request == "" && s.Request == "" {
				return fmt.Errorf("flow[%d]: compile needs a request (step or scenario)", i)
			}
		case ActionPage, ActionNext:
			if step.Request != "" {
				return fmt.Errorf("flow[%d]: %s regenerates the stored search and takes no request", i, step.Action)
			}
		case "":
			return fmt.Errorf("flow[%d]: action is required", i)
		default:
			return fmt.Errorf("flow[%d]: unknown action %q", i, step.Action)
		}

		if step.Request != "" {
			if _, err := os.Stat(step.Request); os.IsNotExist(err) {
				return fmt.Errorf("flow[%d]: request file not found: %s", i, step.Request)
			}
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
	case AssertHistoryCount, AssertTraceCount:
		if a.Count < 0 {
			return fmt.Errorf("assertions[%d]: count must be non-negative for %s", index, a.Type)
		}
	case AssertPageLog:
		if a.Offsets == nil {
			return fmt.Errorf("assertions[%d]: offsets list is required for page_log", index)
		}
	case AssertCurrentMode:
		if a.Mode == "" {
			return fmt.Errorf("assertions[%d]: mode is required for current_mode", index)
		}
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}

	return nil
}
