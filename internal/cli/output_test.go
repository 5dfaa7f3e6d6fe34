package cli

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/gravsearch/internal/queryir"
	"github.com/roach88/gravsearch/internal/querysparql"
)

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitFailure, GetExitCode(errors.New("plain")))
	assert.Equal(t, ExitCommandError, GetExitCode(NewExitError(ExitCommandError, "bad")))
	assert.Equal(t, ExitCommandError, GetExitCode(fmt.Errorf("wrapped: %w", NewExitError(ExitCommandError, "bad"))))
}

func TestExitErrorMessage(t *testing.T) {
	assert.Equal(t, "bad", NewExitError(ExitFailure, "bad").Error())
	err := WrapExitError(ExitFailure, "bad", errors.New("cause"))
	assert.Equal(t, "bad: cause", err.Error())
	assert.EqualError(t, errors.Unwrap(err), "cause")
}

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code string
		exit int
	}{
		{"no search", querysparql.ErrNoSearch, ErrCodeNoSearch, ExitFailure},
		{"invalid offset", queryir.NewInvalidOffsetError(-2), ErrCodeInvalidOffset, ExitFailure},
		{"empty search", fmt.Errorf("wrapped: %w", queryir.NewEmptySearchError("nothing")), ErrCodeEmptySearch, ExitFailure},
		{"invalid iri", queryir.NewInvalidIRIError(-1, "", "resource class", "http://x#A> ."), ErrCodeInvalidIRI, ExitFailure},
		{"load error", &LoadError{Code: ErrCodeNotFound, Message: "missing"}, ErrCodeNotFound, ExitCommandError},
		{"store error", &CLIError{Code: ErrCodeStoreError, Message: "locked"}, ErrCodeStoreError, ExitCommandError},
		{"generic", errors.New("boom"), ErrCodeGeneric, ExitCommandError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cliErr := classifyError(tt.err)
			assert.Equal(t, tt.code, cliErr.Code)
			assert.Equal(t, tt.exit, exitCodeFor(cliErr.Code))
		})
	}
}

func TestClassifyErrorKeepsSelectionDetails(t *testing.T) {
	err := queryir.NewUnsupportedValueKindError(2, "http://example.org/onto#hasThing", "unknown object type")
	cliErr := classifyError(err)
	assert.Equal(t, ErrCodeUnsupportedValueKind, cliErr.Code)
	assert.Equal(t, map[string]any{"index": 2, "property": "http://example.org/onto#hasThing"}, cliErr.Details)
}

func TestFormatterFailJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	f := &OutputFormatter{Format: "json", Writer: buf}

	err := f.Fail(querysparql.ErrNoSearch)
	require.Error(t, err)
	assert.True(t, IsReported(err))
	assert.ErrorIs(t, err, querysparql.ErrNoSearch)

	resp := decodeResponse(t, buf.String())
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, ErrCodeNoSearch, resp.Error.Code)
}

func TestFormatterVerboseLogGoesToErrWriter(t *testing.T) {
	out, diag := &bytes.Buffer{}, &bytes.Buffer{}
	f := &OutputFormatter{Format: "json", Writer: out, ErrWriter: diag, Verbose: true}

	f.VerboseLog("loaded %d", 3)
	assert.Empty(t, out.String())
	assert.Equal(t, "loaded 3\n", diag.String())

	f.Verbose = false
	f.VerboseLog("hidden")
	assert.Equal(t, "loaded 3\n", diag.String())
}
