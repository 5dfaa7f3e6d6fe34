package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const thingClass = "http://0.0.0.0:3333/ontology/0001/anything/v2#Thing"

func TestFulltextPath(t *testing.T) {
	out, err := execute(t, NewFulltextCommand(testOptions(t)), "Zeitglöcklein",
		"--limit-to-resource-class", thingClass, "--offset", "2")
	require.NoError(t, err)
	assert.Equal(t,
		"/v2/search/Zeitgl%C3%B6cklein?limitToResourceClass=http%3A%2F%2F0.0.0.0%3A3333%2Fontology%2F0001%2Fanything%2Fv2%23Thing&offset=2\n",
		out)
}

func TestFulltextWithAPIURL(t *testing.T) {
	opts := testOptions(t)
	opts.Format = "json"
	opts.APIURL = "http://0.0.0.0:3333"

	out, err := execute(t, NewFulltextCommand(opts), "Bernoulli", "--limit-to-project", "http://rdfh.ch/projects/0001")
	require.NoError(t, err)

	resp := decodeQuery(t, out)
	assert.Equal(t, "fulltext", resp.Data.Mode)
	assert.True(t, resp.Data.Notified)
	assert.Equal(t, "http://0.0.0.0:3333/v2/search/Bernoulli?limitToProject=http%3A%2F%2Frdfh.ch%2Fprojects%2F0001&offset=0", resp.Data.Query)

	out, err = execute(t, NewPageCommand(opts), "1")
	require.NoError(t, err)
	assert.Equal(t, "http://0.0.0.0:3333/v2/search/Bernoulli?limitToProject=http%3A%2F%2Frdfh.ch%2Fprojects%2F0001&offset=1", decodeQuery(t, out).Data.Query)
}

func TestFulltextBlankTerm(t *testing.T) {
	out, err := execute(t, NewFulltextCommand(testOptions(t)), " ")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "[E204]")
}
