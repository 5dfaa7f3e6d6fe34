package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"slices"
)

// SuiteOptions controls golden trace handling in RunSuite.
type SuiteOptions struct {
	// GoldenDir holds {scenario name}.golden files. Empty disables golden
	// comparison; scenarios without a golden file are checked by their
	// assertions only.
	GoldenDir string

	// Update rewrites golden files from the current traces instead of
	// comparing against them.
	Update bool
}

// SuiteResult summarizes a directory of scenarios.
type SuiteResult struct {
	TotalScenarios int               `json:"total_scenarios"`
	Passed         int               `json:"passed"`
	Failed         int               `json:"failed"`
	Scenarios      []ScenarioOutcome `json:"scenarios"`
	Failures       []ScenarioFailure `json:"failures,omitempty"`
}

// ScenarioOutcome is the verdict for one scenario file.
type ScenarioOutcome struct {
	Name          string `json:"name"`
	Path          string `json:"path"`
	Pass          bool   `json:"pass"`
	GoldenUpdated bool   `json:"golden_updated,omitempty"`
}

// ScenarioFailure represents a scenario that could not be loaded, run,
// or did not pass.
type ScenarioFailure struct {
	Scenario     string   `json:"scenario"`
	ScenarioPath string   `json:"scenario_path"`
	Errors       []string `json:"errors"`
}

// FindScenarios returns the .yaml and .yml files under dir, sorted.
func FindScenarios(dir string) ([]string, error) {
	var files []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		switch filepath.Ext(path) {
		case ".yaml", ".yml":
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.Sort(files)
	return files, nil
}

// RunSuite loads and runs every scenario in paths.
//
// For each scenario file:
// 1. Load it (request paths relative to the file)
// 2. Run it via harness.Run
// 3. Compare or update its golden trace when opts.GoldenDir is set
// 4. Collect and report results
func RunSuite(paths []string, opts SuiteOptions) *SuiteResult {
	result := &SuiteResult{Scenarios: []ScenarioOutcome{}}

	for _, path := range paths {
		result.TotalScenarios++

		scenario, err := LoadScenario(path)
		if err != nil {
			result.fail(filepath.Base(path), path, fmt.Sprintf("failed to load scenario: %v", err))
			continue
		}

		runResult, err := Run(scenario)
		if err != nil {
			result.fail(scenario.Name, path, fmt.Sprintf("scenario execution failed: %v", err))
			continue
		}

		updated := false
		if opts.GoldenDir != "" {
			updated, err = checkGolden(opts, scenario.Name, runResult)
			if err != nil {
				runResult.AddError(err.Error())
			}
		}

		if !runResult.Pass {
			result.fail(scenario.Name, path, runResult.Errors...)
			continue
		}

		result.Passed++
		result.Scenarios = append(result.Scenarios, ScenarioOutcome{
			Name:          scenario.Name,
			Path:          path,
			Pass:          true,
			GoldenUpdated: updated,
		})
	}

	return result
}

// checkGolden compares the trace of result with its golden file, or
// rewrites the file when opts.Update is set. Reports whether the file was
// written.
func checkGolden(opts SuiteOptions, name string, result *Result) (bool, error) {
	current, err := Snapshot(name, result)
	if err != nil {
		return false, fmt.Errorf("failed to marshal trace: %w", err)
	}

	goldenPath := filepath.Join(opts.GoldenDir, name+".golden")
	if opts.Update {
		if err := os.MkdirAll(opts.GoldenDir, 0755); err != nil {
			return false, fmt.Errorf("failed to create golden directory: %w", err)
		}
		if err := os.WriteFile(goldenPath, current, 0644); err != nil {
			return false, fmt.Errorf("failed to write golden file: %w", err)
		}
		return true, nil
	}

	golden, err := os.ReadFile(goldenPath)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read golden file: %w", err)
	}
	if !bytes.Equal(golden, current) {
		return false, fmt.Errorf("trace does not match golden file %s (run with --update to regenerate)", goldenPath)
	}
	return false, nil
}

func (r *SuiteResult) fail(name, path string, errs ...string) {
	r.Failed++
	r.Scenarios = append(r.Scenarios, ScenarioOutcome{Name: name, Path: path})
	r.Failures = append(r.Failures, ScenarioFailure{
		Scenario:     name,
		ScenarioPath: path,
		Errors:       errs,
	})
}
