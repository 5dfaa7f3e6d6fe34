package queryir

import (
	"slices"

	"github.com/roach88/gravsearch/internal/ir"
)

// ValueKind is the comparison category of a property, derived from its
// object type.
type ValueKind int

const (
	KindUnknown ValueKind = iota
	KindInt
	KindDecimal
	KindBoolean
	KindText
	KindURI
	KindDate
	KindListNode
	KindResource
)

var kindNames = map[ValueKind]string{
	KindUnknown:  "unknown",
	KindInt:      "integer",
	KindDecimal:  "decimal",
	KindBoolean:  "boolean",
	KindText:     "text",
	KindURI:      "uri",
	KindDate:     "date",
	KindListNode: "list node",
	KindResource: "resource",
}

// String returns the kind name.
func (k ValueKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

var kindsByObjectType = map[string]ValueKind{
	ir.IntValue:     KindInt,
	ir.DecimalValue: KindDecimal,
	ir.BooleanValue: KindBoolean,
	ir.TextValue:    KindText,
	ir.URIValue:     KindURI,
	ir.DateValue:    KindDate,
	ir.ListValue:    KindListNode,
}

// Classify returns the value kind of prop. Link properties are always
// KindResource whatever class they point to.
func Classify(prop PropertyDefinition) (ValueKind, error) {
	if prop.IsLinkProperty {
		return KindResource, nil
	}
	if kind, ok := kindsByObjectType[prop.ObjectType]; ok {
		return kind, nil
	}
	return KindUnknown, NewUnsupportedValueKindError(-1, prop.IRI,
		"object type <"+prop.ObjectType+"> is not a known value type")
}

// IsLiteral reports whether values of this kind are compared as typed
// literals rather than IRIs.
func (k ValueKind) IsLiteral() bool {
	switch k {
	case KindInt, KindDecimal, KindBoolean, KindText, KindURI, KindDate:
		return true
	default:
		return false
	}
}

var (
	textOperators = []ir.ComparisonOperator{
		ir.Like, ir.Match, ir.Equals, ir.NotEquals, ir.Exists,
	}
	orderedOperators = []ir.ComparisonOperator{
		ir.Equals, ir.NotEquals, ir.LessThan, ir.LessThanEquals,
		ir.GreaterThan, ir.GreaterThanEquals, ir.Exists,
	}
	equalityOperators = []ir.ComparisonOperator{
		ir.Equals, ir.NotEquals, ir.Exists,
	}
)

// SupportedOperators returns the operators a kind can be compared with,
// in the order a search form offers them.
func (k ValueKind) SupportedOperators() []ir.ComparisonOperator {
	return slices.Clone(k.operators())
}

// Supports reports whether op has a compilation strategy for kind k.
func (k ValueKind) Supports(op ir.ComparisonOperator) bool {
	return slices.Contains(k.operators(), op)
}

func (k ValueKind) operators() []ir.ComparisonOperator {
	switch k {
	case KindText:
		return textOperators
	case KindInt, KindDecimal, KindDate:
		return orderedOperators
	case KindBoolean, KindURI, KindListNode, KindResource:
		return equalityOperators
	default:
		return nil
	}
}
