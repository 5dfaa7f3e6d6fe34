package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueAsPredicate(t *testing.T) {
	p, ok := ValueAsPredicate(IntValue)
	assert.True(t, ok)
	assert.Equal(t, "http://api.knora.org/ontology/knora-api/v2#intValueAsInt", p)

	p, ok = ValueAsPredicate(ListValue)
	assert.True(t, ok)
	assert.Equal(t, "http://api.knora.org/ontology/knora-api/v2#listValueAsListNode", p)

	_, ok = ValueAsPredicate(DateValue)
	assert.False(t, ok, "dates are compared with toSimpleDate, not extracted")
}

func TestSimpleType(t *testing.T) {
	st, ok := SimpleType(DateValue)
	assert.True(t, ok)
	assert.Equal(t, "http://api.knora.org/ontology/knora-api/simple/v2#Date", st)

	_, ok = SimpleType(ListValue)
	assert.False(t, ok)
}
