package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageBeforeAnySearch(t *testing.T) {
	opts := testOptions(t)

	out, err := execute(t, NewPageCommand(opts), "1")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "[E005]")
}

func TestPageRegeneratesCurrentSearch(t *testing.T) {
	opts := testOptions(t)
	opts.Format = "json"

	out, err := execute(t, NewCompileCommand(opts), integerRequest)
	require.NoError(t, err)
	first := decodeQuery(t, out)

	out, err = execute(t, NewPageCommand(opts), "3")
	require.NoError(t, err)
	page := decodeQuery(t, out)

	assert.Equal(t, 3, page.Data.Offset)
	assert.False(t, page.Data.Notified)
	assert.Equal(t, first.Data.SubmissionID, page.Data.SubmissionID)
	assert.Equal(t, first.Data.SearchID, page.Data.SearchID)
	assert.Equal(t,
		first.Data.Query[:len(first.Data.Query)-len("\nOFFSET 0\n")],
		page.Data.Query[:len(page.Data.Query)-len("\nOFFSET 3\n")])
}

func TestPageRejectsBadOffsets(t *testing.T) {
	opts := testOptions(t)
	_, err := execute(t, NewCompileCommand(opts), integerRequest)
	require.NoError(t, err)

	out, err := execute(t, NewPageCommand(opts), "two")
	require.Error(t, err)
	assert.Contains(t, out, "offset must be an integer")

	out, err = execute(t, NewPageCommand(opts), "--", "-1")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "[E203]")
}

func TestNextPagesForward(t *testing.T) {
	opts := testOptions(t)
	opts.Format = "json"

	_, err := execute(t, NewCompileCommand(opts), integerRequest)
	require.NoError(t, err)

	for _, want := range []int{1, 2} {
		out, err := execute(t, NewNextCommand(opts))
		require.NoError(t, err)
		assert.Equal(t, want, decodeQuery(t, out).Data.Offset)
	}

	_, err = execute(t, NewPageCommand(opts), "7")
	require.NoError(t, err)

	out, err := execute(t, NewNextCommand(opts))
	require.NoError(t, err)
	assert.Equal(t, 8, decodeQuery(t, out).Data.Offset)
}

func TestNextFollowsLatestSubmission(t *testing.T) {
	opts := testOptions(t)
	opts.Format = "json"

	_, err := execute(t, NewCompileCommand(opts), integerRequest)
	require.NoError(t, err)
	_, err = execute(t, NewNextCommand(opts))
	require.NoError(t, err)

	out, err := execute(t, NewCompileCommand(opts), mixedRequestDir)
	require.NoError(t, err)
	second := decodeQuery(t, out)

	out, err = execute(t, NewNextCommand(opts))
	require.NoError(t, err)
	next := decodeQuery(t, out)
	assert.Equal(t, 1, next.Data.Offset)
	assert.Equal(t, second.Data.SubmissionID, next.Data.SubmissionID)
}
