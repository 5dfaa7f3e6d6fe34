package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindScenarios(t *testing.T) {
	paths, err := FindScenarios("testdata/scenarios")
	require.NoError(t, err)

	names := make([]string, len(paths))
	for i, p := range paths {
		names[i] = filepath.Base(p)
	}
	assert.Equal(t, []string{
		"generation_errors.yaml",
		"last_writer_wins.yaml",
		"link_negation.yaml",
		"paging.yaml",
	}, names)
}

func TestEveryScenarioHasGolden(t *testing.T) {
	paths, err := FindScenarios("testdata/scenarios")
	require.NoError(t, err)

	for _, path := range paths {
		scenario, err := LoadScenario(path)
		require.NoError(t, err)
		assert.FileExists(t, filepath.Join("testdata", "golden", scenario.Name+".golden"))
	}
}

func TestRunSuite_AllPass(t *testing.T) {
	paths, err := FindScenarios("testdata/scenarios")
	require.NoError(t, err)

	result := RunSuite(paths, SuiteOptions{GoldenDir: "testdata/golden"})
	assert.Equal(t, len(paths), result.TotalScenarios)
	assert.Equal(t, len(paths), result.Passed)
	assert.Zero(t, result.Failed)
	assert.Empty(t, result.Failures)
	require.Len(t, result.Scenarios, len(paths))
	for _, outcome := range result.Scenarios {
		assert.True(t, outcome.Pass, outcome.Name)
		assert.False(t, outcome.GoldenUpdated, outcome.Name)
	}
}

func TestRunSuite_UpdateThenCompareGolden(t *testing.T) {
	goldenDir := t.TempDir()
	paths := []string{filepath.Join("testdata", "scenarios", "paging.yaml")}

	updated := RunSuite(paths, SuiteOptions{GoldenDir: goldenDir, Update: true})
	require.Equal(t, 1, updated.Passed)
	assert.True(t, updated.Scenarios[0].GoldenUpdated)

	written, err := os.ReadFile(filepath.Join(goldenDir, "paging.golden"))
	require.NoError(t, err)
	committed, err := os.ReadFile(filepath.Join("testdata", "golden", "paging.golden"))
	require.NoError(t, err)
	assert.Equal(t, string(committed), string(written))

	compared := RunSuite(paths, SuiteOptions{GoldenDir: goldenDir})
	assert.Equal(t, 1, compared.Passed)
}

func TestRunSuite_GoldenMismatch(t *testing.T) {
	goldenDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(goldenDir, "paging.golden"), []byte(`{"trace":[]}`), 0644))

	result := RunSuite([]string{filepath.Join("testdata", "scenarios", "paging.yaml")}, SuiteOptions{GoldenDir: goldenDir})
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Failures, 1)
	assert.Contains(t, result.Failures[0].Errors[0], "does not match golden file")
}

func TestRunSuite_CollectsFailures(t *testing.T) {
	dir := t.TempDir()
	broken := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("name: broken\n"), 0644))

	failing := filepath.Join(dir, "failing.yaml")
	require.NoError(t, os.WriteFile(failing, []byte(`
name: failing
description: "paging before any search succeeds"
flow:
  - action: next
`), 0644))

	result := RunSuite([]string{broken, failing}, SuiteOptions{})
	assert.Equal(t, 2, result.TotalScenarios)
	assert.Equal(t, 0, result.Passed)
	assert.Equal(t, 2, result.Failed)
	require.Len(t, result.Failures, 2)

	assert.Equal(t, "broken.yaml", result.Failures[0].Scenario)
	assert.Contains(t, result.Failures[0].Errors[0], "failed to load scenario")

	assert.Equal(t, "failing", result.Failures[1].Scenario)
	assert.Contains(t, result.Failures[1].Errors[0], "error NO_SEARCH")
}
