package queryir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOntology(t *testing.T) {
	o, err := NewOntology("http://0.0.0.0:3333/ontology/0001/anything/v2",
		[]string{anything + "Thing"},
		[]PropertyDefinition{propText, propInteger, propLink})
	require.NoError(t, err)

	p, ok := o.Property(propLink.IRI)
	require.True(t, ok)
	assert.Equal(t, propLink, p)

	_, ok = o.Property(anything + "hasNothing")
	assert.False(t, ok)

	assert.True(t, o.HasResourceClass(anything+"Thing"))
	assert.False(t, o.HasResourceClass(anything+"BlueThing"))

	assert.Equal(t, []string{propInteger.IRI, propLink.IRI, propText.IRI}, o.PropertyIRIs())
}

func TestNewOntologyDuplicate(t *testing.T) {
	_, err := NewOntology("o", nil, []PropertyDefinition{propText, propText})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate property")
}
