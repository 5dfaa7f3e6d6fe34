package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

var (
	integerRequest  = filepath.Join("..", "harness", "testdata", "requests", "integer_sorted.cue")
	badOpRequest    = filepath.Join("..", "harness", "testdata", "requests", "bad_operator.cue")
	expertRequest   = filepath.Join("..", "harness", "testdata", "requests", "expert.cue")
	mixedRequestDir = filepath.Join("..", "harness", "testdata", "requests", "mixed")
	scenariosDir    = filepath.Join("..", "harness", "testdata", "scenarios")
)

// testOptions returns text-format options backed by a fresh database.
func testOptions(t *testing.T) *RootOptions {
	t.Helper()
	return &RootOptions{
		Format:   "text",
		Database: filepath.Join(t.TempDir(), "history.db"),
	}
}

// execute runs cmd with args and returns what it wrote to stdout.
func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

// queryResponse is a CLIResponse carrying a QueryResult.
type queryResponse struct {
	Status       string      `json:"status"`
	Data         QueryResult `json:"data"`
	Error        *CLIError   `json:"error"`
	SubmissionID string      `json:"submission_id"`
}

func decodeQuery(t *testing.T, out string) queryResponse {
	t.Helper()
	var resp queryResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp), out)
	return resp
}

func decodeResponse(t *testing.T, out string) CLIResponse {
	t.Helper()
	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp), out)
	return resp
}

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0644)
}
