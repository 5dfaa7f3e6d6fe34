package queryir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/gravsearch/internal/ir"
)

func sampleAdvanced() AdvancedSearch {
	return AdvancedSearch{
		Selections: []PropertyWithValue{
			NewPropertyWithValue(propDate, NewComparison(ir.LessThan, ir.NewValueLiteral("GREGORIAN:2019-02-02", ir.SimpleDate)), true),
			sel(propLink, ir.NotEquals, ir.NewIRI("http://rdfh.ch/biblio/QNWEqmjxQ9W-_hTwKlKP-Q")),
			sel(propText, ir.Exists, nil),
		},
		ResourceClassIRI: anything + "Thing",
	}
}

func TestMarshalQueryRoundTrip(t *testing.T) {
	queries := []Query{
		sampleAdvanced(),
		AdvancedSearch{ResourceClassIRI: "http://0.0.0.0:3333/ontology/0801/beol/v2#letter"},
		ExpertSearch{Template: "PREFIX knora-api: <http://api.knora.org/ontology/knora-api/simple/v2#>\nCONSTRUCT {} WHERE {}\n"},
		FulltextSearch{Term: "Zeitglöcklein", LimitToProject: "http://rdfh.ch/projects/0803"},
	}

	for _, q := range queries {
		mode, err := Mode(q)
		require.NoError(t, err)
		t.Run(mode, func(t *testing.T) {
			data, err := MarshalQuery(q)
			require.NoError(t, err)

			back, err := UnmarshalQuery(data)
			require.NoError(t, err)
			assert.Equal(t, q, back)
		})
	}
}

func TestMarshalQueryShape(t *testing.T) {
	data, err := MarshalQuery(&ExpertSearch{Template: "x"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"mode":"expert","search":{"template":"x"}}`, string(data))

	data, err = MarshalQuery(AdvancedSearch{Selections: []PropertyWithValue{sel(propText, ir.Exists, nil)}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"mode":"advanced","search":{"selections":[{
		"property":{"iri":"http://0.0.0.0:3333/ontology/0001/anything/v2#hasText","object_type":"http://api.knora.org/ontology/knora-api/v2#TextValue","is_link_property":false},
		"value":{"operator":"Exists"},
		"use_as_sort_criterion":false}]}}`, string(data))
}

func TestUnmarshalQueryErrors(t *testing.T) {
	_, err := UnmarshalQuery([]byte(`{"mode":"sql","search":{}}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown search mode")

	_, err = UnmarshalQuery([]byte(`not json`))
	require.Error(t, err)

	_, err = UnmarshalQuery([]byte(`{"mode":"advanced","search":{"selections":[{"value":{"operator":"Equals","value":{"kind":"blank"}}}]}}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown value kind")
}

func TestIDStableAndOrderSensitive(t *testing.T) {
	a := sampleAdvanced()
	id1, err := ID(a)
	require.NoError(t, err)
	id2, err := ID(&a)
	require.NoError(t, err)
	assert.Equal(t, id1, id2)

	swapped := sampleAdvanced()
	swapped.Selections[0], swapped.Selections[1] = swapped.Selections[1], swapped.Selections[0]
	id3, err := ID(swapped)
	require.NoError(t, err)
	assert.NotEqual(t, id1, id3, "selection order determines variable numbering")

	relabelled := sampleAdvanced()
	relabelled.Selections[0].Property.Label = "Date of event"
	id4, err := ID(relabelled)
	require.NoError(t, err)
	assert.Equal(t, id1, id4, "labels do not affect the generated query")
}

func TestIDDistinguishesModes(t *testing.T) {
	expert, err := ID(ExpertSearch{Template: "x"})
	require.NoError(t, err)
	fulltext, err := ID(FulltextSearch{Term: "x"})
	require.NoError(t, err)
	assert.NotEqual(t, expert, fulltext)
}

func TestModeNil(t *testing.T) {
	_, err := Mode(nil)
	require.Error(t, err)
	_, err = ID(nil)
	require.Error(t, err)

	for _, q := range []Query{(*AdvancedSearch)(nil), (*ExpertSearch)(nil), (*FulltextSearch)(nil)} {
		_, err = Mode(q)
		require.Error(t, err, "%T", q)
		_, err = MarshalQuery(q)
		require.Error(t, err, "%T", q)
		assert.False(t, Validate(q).IsValid, "%T", q)
	}
}
