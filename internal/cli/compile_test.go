package cli

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/gravsearch/internal/compiler"
	"github.com/roach88/gravsearch/internal/querysparql"
)

func TestCompileText(t *testing.T) {
	opts := testOptions(t)

	out, err := execute(t, NewCompileCommand(opts), integerRequest)
	require.NoError(t, err)

	req, err := compiler.Load(integerRequest)
	require.NoError(t, err)
	want, err := querysparql.Generate(req.Search, 0)
	require.NoError(t, err)

	assert.Equal(t, want, out)
	assert.Contains(t, out, "ORDER BY ?propVal0")
	assert.True(t, strings.HasSuffix(out, "\nOFFSET 0\n"))
}

func TestCompileJSONStoresSearch(t *testing.T) {
	opts := testOptions(t)
	opts.Format = "json"

	out, err := execute(t, NewCompileCommand(opts), integerRequest)
	require.NoError(t, err)

	resp := decodeQuery(t, out)
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "advanced", resp.Data.Mode)
	assert.Equal(t, 0, resp.Data.Offset)
	assert.True(t, resp.Data.Notified)
	assert.NotEmpty(t, resp.Data.SubmissionID)
	assert.NotEmpty(t, resp.Data.SearchID)
	assert.Equal(t, resp.Data.SubmissionID, resp.SubmissionID)
}

func TestCompileAtLaterOffsetDoesNotStore(t *testing.T) {
	opts := testOptions(t)
	opts.Format = "json"

	out, err := execute(t, NewCompileCommand(opts), integerRequest, "--offset", "2")
	require.NoError(t, err)

	resp := decodeQuery(t, out)
	assert.Equal(t, 2, resp.Data.Offset)
	assert.False(t, resp.Data.Notified)
	assert.Empty(t, resp.Data.SubmissionID)
	assert.Contains(t, resp.Data.Query, "\nOFFSET 2\n")

	_, err = execute(t, NewNextCommand(opts))
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}

func TestCompileUsesRequestOffset(t *testing.T) {
	opts := testOptions(t)
	opts.Format = "json"

	out, err := execute(t, NewCompileCommand(opts), expertRequest)
	require.NoError(t, err)

	resp := decodeQuery(t, out)
	assert.Equal(t, "expert", resp.Data.Mode)
	assert.Equal(t, 1, resp.Data.Offset)
	assert.False(t, resp.Data.Notified)
	assert.True(t, strings.HasSuffix(resp.Data.Query, "}\n\nOFFSET 1\n"))
}

func TestCompileDirectoryRequest(t *testing.T) {
	opts := testOptions(t)

	out, err := execute(t, NewCompileCommand(opts), mixedRequestDir)
	require.NoError(t, err)
	assert.Contains(t, out, "CONSTRUCT {")
}

func TestCompileRejectedSearch(t *testing.T) {
	opts := testOptions(t)
	opts.Format = "json"

	out, err := execute(t, NewCompileCommand(opts), badOpRequest)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.True(t, IsReported(err))

	resp := decodeResponse(t, out)
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, compiler.ErrUnsupportedOperator, resp.Error.Code)
}

func TestCompileRequestNotFound(t *testing.T) {
	opts := testOptions(t)

	out, err := execute(t, NewCompileCommand(opts), "does-not-exist.cue")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "✗ Error [E002]")
}

func TestCompileInvalidCUE(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.cue")
	require.NoError(t, writeFile(path, "search: {\n"))

	out, err := execute(t, NewCompileCommand(testOptions(t)), path)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "[E003]")
}

func TestCompileNegativeOffset(t *testing.T) {
	opts := testOptions(t)

	out, err := execute(t, NewCompileCommand(opts), integerRequest, "--offset", "-1")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "[E203]")
}
