package queryir

import "github.com/roach88/gravsearch/internal/ir"

const anything = "http://0.0.0.0:3333/ontology/0001/anything/v2#"

var (
	propInteger = PropertyDefinition{IRI: anything + "hasInteger", ObjectType: ir.IntValue}
	propDecimal = PropertyDefinition{IRI: anything + "hasDecimal", ObjectType: ir.DecimalValue}
	propBoolean = PropertyDefinition{IRI: anything + "hasBoolean", ObjectType: ir.BooleanValue}
	propText    = PropertyDefinition{IRI: anything + "hasText", ObjectType: ir.TextValue}
	propURI     = PropertyDefinition{IRI: anything + "hasUri", ObjectType: ir.URIValue}
	propDate    = PropertyDefinition{IRI: anything + "hasDate", ObjectType: ir.DateValue}
	propList    = PropertyDefinition{IRI: anything + "hasListItem", ObjectType: ir.ListValue}
	propLink    = PropertyDefinition{IRI: anything + "hasOtherThing", ObjectType: anything + "Thing", IsLinkProperty: true}
	propColor   = PropertyDefinition{IRI: anything + "hasColor", ObjectType: ir.KnoraAPIV2 + "ColorValue"}
)

func sel(p PropertyDefinition, op ir.ComparisonOperator, v ir.Value) PropertyWithValue {
	return NewPropertyWithValue(p, NewComparison(op, v), false)
}
