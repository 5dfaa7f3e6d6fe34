package testutil

import (
	"github.com/roach88/gravsearch/internal/ir"
	"github.com/roach88/gravsearch/internal/queryir"
)

// Anything ontology IRIs, matching the test data served by a local DSP-API.
const (
	AnythingOntologyIRI = "http://0.0.0.0:3333/ontology/0001/anything/v2"
	Anything            = AnythingOntologyIRI + "#"

	ThingClass     = Anything + "Thing"
	BlueThingClass = Anything + "BlueThing"
	LetterClass    = "http://0.0.0.0:3333/ontology/0801/beol/v2#letter"

	HasInteger    = Anything + "hasInteger"
	HasDecimal    = Anything + "hasDecimal"
	HasBoolean    = Anything + "hasBoolean"
	HasText       = Anything + "hasText"
	HasURI        = Anything + "hasUri"
	HasDate       = Anything + "hasDate"
	HasListItem   = Anything + "hasListItem"
	HasOtherThing = Anything + "hasOtherThing"
	HasColor      = Anything + "hasColor"
)

// AnythingProperties returns the searchable properties of the anything
// ontology. hasColor has an object type the generator does not support.
func AnythingProperties() []queryir.PropertyDefinition {
	return []queryir.PropertyDefinition{
		{IRI: HasInteger, Label: "Integer", ObjectType: ir.IntValue},
		{IRI: HasDecimal, Label: "Decimal number", ObjectType: ir.DecimalValue},
		{IRI: HasBoolean, Label: "Boolean value", ObjectType: ir.BooleanValue},
		{IRI: HasText, Label: "Text", ObjectType: ir.TextValue},
		{IRI: HasURI, Label: "URI", ObjectType: ir.URIValue},
		{IRI: HasDate, Label: "Date", ObjectType: ir.DateValue},
		{IRI: HasListItem, Label: "List element", ObjectType: ir.ListValue},
		{IRI: HasOtherThing, Label: "Another thing", ObjectType: ThingClass, IsLinkProperty: true},
		{IRI: HasColor, Label: "Color", ObjectType: ir.KnoraAPIV2 + "ColorValue"},
	}
}

// AnythingOntology returns the anything ontology excerpt.
func AnythingOntology() *queryir.Ontology {
	o, err := queryir.NewOntology(AnythingOntologyIRI, []string{ThingClass, BlueThingClass}, AnythingProperties())
	if err != nil {
		panic(err)
	}
	return o
}

// Property returns the anything property with the given IRI, panicking if
// it does not exist.
func Property(iri string) queryir.PropertyDefinition {
	p, ok := AnythingOntology().Property(iri)
	if !ok {
		panic("testutil: unknown property " + iri)
	}
	return p
}
