package cli

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bookTemplate = `PREFIX knora-api: <http://api.knora.org/ontology/knora-api/v2#>
CONSTRUCT {
    ?book knora-api:isMainResource true .
} WHERE {
    ?book a <http://0.0.0.0:3333/ontology/0803/incunabula/v2#book> .
}


`

func TestExpertFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "books.rq")
	require.NoError(t, writeFile(path, bookTemplate))

	out, err := execute(t, NewExpertCommand(testOptions(t)), path)
	require.NoError(t, err)
	assert.Equal(t, strings.TrimRight(bookTemplate, "\n")+"\n\nOFFSET 0\n", out)
}

func TestExpertFromStdinThenPage(t *testing.T) {
	opts := testOptions(t)
	opts.Format = "json"

	cmd := NewExpertCommand(opts)
	cmd.SetIn(strings.NewReader(bookTemplate))
	out, err := execute(t, cmd, "-")
	require.NoError(t, err)

	resp := decodeQuery(t, out)
	assert.Equal(t, "expert", resp.Data.Mode)
	assert.True(t, resp.Data.Notified)

	out, err = execute(t, NewNextCommand(opts))
	require.NoError(t, err)
	next := decodeQuery(t, out)
	assert.Equal(t, "expert", next.Data.Mode)
	assert.True(t, strings.HasSuffix(next.Data.Query, "}\n\nOFFSET 1\n"))
}

func TestExpertEmptyTemplate(t *testing.T) {
	cmd := NewExpertCommand(testOptions(t))
	cmd.SetIn(strings.NewReader("  \n"))

	out, err := execute(t, cmd, "-")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "[E204]")
}

func TestExpertTemplateNotFound(t *testing.T) {
	out, err := execute(t, NewExpertCommand(testOptions(t)), filepath.Join(t.TempDir(), "absent.rq"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "[E002]")
}
