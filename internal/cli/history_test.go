package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeHistory(t *testing.T, out string) HistoryResult {
	t.Helper()
	var resp struct {
		Status string        `json:"status"`
		Data   HistoryResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp), out)
	require.Equal(t, "ok", resp.Status)
	return resp.Data
}

func TestHistoryEmpty(t *testing.T) {
	opts := testOptions(t)
	opts.Format = "json"

	out, err := execute(t, NewHistoryCommand(opts))
	require.NoError(t, err)

	history := decodeHistory(t, out)
	assert.Zero(t, history.Total)
	assert.NotNil(t, history.Submissions)
}

func TestHistoryListsSubmissionsAndPages(t *testing.T) {
	opts := testOptions(t)
	opts.Format = "json"

	_, err := execute(t, NewCompileCommand(opts), integerRequest)
	require.NoError(t, err)
	_, err = execute(t, NewPageCommand(opts), "2")
	require.NoError(t, err)
	_, err = execute(t, NewCompileCommand(opts), integerRequest)
	require.NoError(t, err)

	out, err := execute(t, NewHistoryCommand(opts))
	require.NoError(t, err)
	history := decodeHistory(t, out)

	require.Equal(t, 2, history.Total)
	first, second := history.Submissions[0], history.Submissions[1]

	assert.Less(t, first.Seq, second.Seq)
	assert.NotEqual(t, first.SubmissionID, second.SubmissionID)
	assert.Equal(t, first.SearchID, second.SearchID, "identical searches share a search ID")
	assert.Equal(t, []int{0, 2}, first.Pages)
	assert.Equal(t, []int{0}, second.Pages)
	assert.False(t, first.Current)
	assert.True(t, second.Current)
	assert.Equal(t, "advanced", first.Record["mode"])
}

func TestHistorySearchFilter(t *testing.T) {
	opts := testOptions(t)
	opts.Format = "json"

	out, err := execute(t, NewCompileCommand(opts), integerRequest)
	require.NoError(t, err)
	wanted := decodeQuery(t, out).Data.SearchID

	_, err = execute(t, NewFulltextCommand(opts), "Bernoulli")
	require.NoError(t, err)

	out, err = execute(t, NewHistoryCommand(opts), "--search", wanted)
	require.NoError(t, err)
	history := decodeHistory(t, out)
	require.Equal(t, 1, history.Total)
	assert.Equal(t, wanted, history.Submissions[0].SearchID)
}

func TestHistoryText(t *testing.T) {
	opts := testOptions(t)

	_, err := execute(t, NewCompileCommand(opts), integerRequest)
	require.NoError(t, err)
	_, err = execute(t, NewNextCommand(opts))
	require.NoError(t, err)

	out, err := execute(t, NewHistoryCommand(opts))
	require.NoError(t, err)
	assert.Contains(t, out, "1 search submission(s)")
	assert.Contains(t, out, "submission")
	assert.Contains(t, out, "| advanced |")
	assert.Contains(t, out, "| 0, 1 ")
}
