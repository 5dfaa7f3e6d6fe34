package ir

// Namespaces used by generated queries.
const (
	KnoraAPIV2       = "http://api.knora.org/ontology/knora-api/v2#"
	KnoraAPISimpleV2 = "http://api.knora.org/ontology/knora-api/simple/v2#"
	XSD              = "http://www.w3.org/2001/XMLSchema#"
)

// Value object types a property may declare.
const (
	IntValue     = KnoraAPIV2 + "IntValue"
	DecimalValue = KnoraAPIV2 + "DecimalValue"
	BooleanValue = KnoraAPIV2 + "BooleanValue"
	TextValue    = KnoraAPIV2 + "TextValue"
	URIValue     = KnoraAPIV2 + "UriValue"
	DateValue    = KnoraAPIV2 + "DateValue"
	ListValue    = KnoraAPIV2 + "ListValue"
	Resource     = KnoraAPIV2 + "Resource"
)

// Literal-extraction predicates, one per literal-valued object type.
const (
	IntValueAsInt             = KnoraAPIV2 + "intValueAsInt"
	DecimalValueAsDecimal     = KnoraAPIV2 + "decimalValueAsDecimal"
	BooleanValueAsBoolean     = KnoraAPIV2 + "booleanValueAsBoolean"
	ValueAsString             = KnoraAPIV2 + "valueAsString"
	URIValueAsURI             = KnoraAPIV2 + "uriValueAsUri"
	ListValueAsListNode       = KnoraAPIV2 + "listValueAsListNode"
	MatchText                 = KnoraAPIV2 + "matchText"
	KnoraPrefixDeclaration    = "PREFIX knora-api: <" + KnoraAPIV2 + ">"
	KnoraToSimpleDateFunction = "knora-api:toSimpleDate"
)

// Datatype IRIs for literal values.
const (
	XSDInteger = XSD + "integer"
	XSDDecimal = XSD + "decimal"
	XSDBoolean = XSD + "boolean"
	XSDString  = XSD + "string"
	XSDAnyURI  = XSD + "anyURI"
	SimpleDate = KnoraAPISimpleV2 + "Date"
)

// valueAsPredicates maps a value object type to the predicate that extracts
// its literal.
var valueAsPredicates = map[string]string{
	IntValue:     IntValueAsInt,
	DecimalValue: DecimalValueAsDecimal,
	BooleanValue: BooleanValueAsBoolean,
	TextValue:    ValueAsString,
	URIValue:     URIValueAsURI,
	ListValue:    ListValueAsListNode,
}

// ValueAsPredicate returns the literal-extraction predicate for objectType.
func ValueAsPredicate(objectType string) (string, bool) {
	p, ok := valueAsPredicates[objectType]
	return p, ok
}

// simpleTypes maps a value object type to the datatype of its literals.
var simpleTypes = map[string]string{
	IntValue:     XSDInteger,
	DecimalValue: XSDDecimal,
	BooleanValue: XSDBoolean,
	TextValue:    XSDString,
	URIValue:     XSDAnyURI,
	DateValue:    SimpleDate,
}

// SimpleType returns the literal datatype expected for objectType.
// List and link properties compare by IRI and have no simple type.
func SimpleType(objectType string) (string, bool) {
	t, ok := simpleTypes[objectType]
	return t, ok
}
