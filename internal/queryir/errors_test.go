package queryir

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roach88/gravsearch/internal/ir"
)

func TestGenerationErrorMessage(t *testing.T) {
	err := NewUnsupportedOperatorError(2, anything+"hasInteger", ir.Like, KindInt)
	assert.Equal(t,
		`UNSUPPORTED_OPERATOR: operator "Like" cannot be applied to integer values (selection=2, property=http://0.0.0.0:3333/ontology/0001/anything/v2#hasInteger)`,
		err.Error())

	err = NewUnsupportedValueKindError(-1, anything+"hasColor", "unknown")
	assert.Equal(t, "UNSUPPORTED_VALUE_KIND: unknown (property=http://0.0.0.0:3333/ontology/0001/anything/v2#hasColor)", err.Error())

	assert.Equal(t, `INVALID_IRI: resource class "a b" is not a valid IRI`, NewInvalidIRIError(-1, "", "resource class", "a b").Error())

	assert.Equal(t, "INVALID_OFFSET: offset must be non-negative, got -1", NewInvalidOffsetError(-1).Error())
}

func TestGenerationErrorPredicates(t *testing.T) {
	wrapped := fmt.Errorf("generate page: %w", NewInvalidOffsetError(-5))
	assert.True(t, IsInvalidOffset(wrapped))
	assert.False(t, IsUnsupportedOperator(wrapped))

	assert.True(t, IsUnsupportedOperator(NewUnsupportedOperatorError(0, "p", ir.Match, KindDate)))
	assert.True(t, IsUnsupportedValueKind(NewUnsupportedValueKindError(0, "p", "m")))
	assert.True(t, IsEmptySearch(NewEmptySearchError("m")))
	assert.True(t, IsInvalidIRI(NewInvalidIRIError(0, "p", "target", "a b")))
	assert.False(t, IsInvalidIRI(NewUnsupportedValueKindError(0, "p", "m")))
	assert.False(t, IsEmptySearch(fmt.Errorf("plain")))
	assert.False(t, IsEmptySearch(nil))
}
