package queryir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/gravsearch/internal/ir"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		prop PropertyDefinition
		want ValueKind
	}{
		{propInteger, KindInt},
		{propDecimal, KindDecimal},
		{propBoolean, KindBoolean},
		{propText, KindText},
		{propURI, KindURI},
		{propDate, KindDate},
		{propList, KindListNode},
		{propLink, KindResource},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			kind, err := Classify(tt.prop)
			require.NoError(t, err)
			assert.Equal(t, tt.want, kind)
		})
	}
}

func TestClassifyLinkIgnoresObjectType(t *testing.T) {
	// A link property pointing at a class whose IRI looks like a value
	// type is still a link.
	prop := PropertyDefinition{IRI: anything + "hasOddLink", ObjectType: ir.IntValue, IsLinkProperty: true}
	kind, err := Classify(prop)
	require.NoError(t, err)
	assert.Equal(t, KindResource, kind)
}

func TestClassifyUnknown(t *testing.T) {
	kind, err := Classify(propColor)
	require.Error(t, err)
	assert.Equal(t, KindUnknown, kind)
	assert.True(t, IsUnsupportedValueKind(err))
	assert.Contains(t, err.Error(), "ColorValue")
}

func TestSupportedOperators(t *testing.T) {
	assert.Equal(t,
		[]ir.ComparisonOperator{ir.Like, ir.Match, ir.Equals, ir.NotEquals, ir.Exists},
		KindText.SupportedOperators())

	for _, k := range []ValueKind{KindInt, KindDecimal, KindDate} {
		assert.Equal(t,
			[]ir.ComparisonOperator{ir.Equals, ir.NotEquals, ir.LessThan, ir.LessThanEquals, ir.GreaterThan, ir.GreaterThanEquals, ir.Exists},
			k.SupportedOperators(), k.String())
	}

	for _, k := range []ValueKind{KindBoolean, KindURI, KindListNode, KindResource} {
		assert.Equal(t, []ir.ComparisonOperator{ir.Equals, ir.NotEquals, ir.Exists}, k.SupportedOperators(), k.String())
	}

	assert.Nil(t, KindUnknown.SupportedOperators())
}

func TestSupportedOperatorsIsACopy(t *testing.T) {
	ops := KindText.SupportedOperators()
	ops[0] = ir.GreaterThan
	assert.True(t, KindText.Supports(ir.Like))
	assert.False(t, KindText.Supports(ir.GreaterThan))
}

func TestSupports(t *testing.T) {
	assert.True(t, KindText.Supports(ir.Match))
	assert.False(t, KindInt.Supports(ir.Like))
	assert.False(t, KindListNode.Supports(ir.LessThan))
	assert.True(t, KindDate.Supports(ir.GreaterThanEquals))
	assert.False(t, KindResource.Supports(ir.ComparisonOperator("Between")))
}

func TestIsLiteral(t *testing.T) {
	assert.True(t, KindDate.IsLiteral())
	assert.True(t, KindURI.IsLiteral())
	assert.False(t, KindListNode.IsLiteral())
	assert.False(t, KindResource.IsLiteral())
	assert.False(t, KindUnknown.IsLiteral())
}

func TestValueKindString(t *testing.T) {
	assert.Equal(t, "list node", KindListNode.String())
	assert.Equal(t, "unknown", ValueKind(99).String())
}
