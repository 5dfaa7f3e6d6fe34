package ir

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Value is a sealed interface for the right-hand side of a comparison.
// Only ValueLiteral and IRI implement it.
type Value interface {
	// ToSparql renders the value as it appears inside a query.
	ToSparql() string
	value() // Sealed
}

// ValueLiteral is a typed literal such as "1"^^xsd:integer.
type ValueLiteral struct {
	Value string `json:"value"`
	Type  string `json:"type"`
}

func (ValueLiteral) value() {}

// NewValueLiteral creates a literal of the given datatype.
func NewValueLiteral(value, datatype string) ValueLiteral {
	return ValueLiteral{Value: value, Type: datatype}
}

// ToSparql renders "value"^^<type>. Quotes, backslashes and line breaks
// inside the value are escaped so the literal stays a single token.
func (v ValueLiteral) ToSparql() string {
	return `"` + literalEscaper.Replace(v.Value) + `"^^<` + v.Type + `>`
}

var literalEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
)

// IRI references an entity such as a list node or a linked resource.
type IRI struct {
	IRI string `json:"iri"`
}

func (IRI) value() {}

// NewIRI wraps iri.
func NewIRI(iri string) IRI {
	return IRI{IRI: iri}
}

// ToSparql renders <iri>.
func (v IRI) ToSparql() string {
	return "<" + v.IRI + ">"
}

// ValidIRI reports whether iri can be written between angle brackets
// unchanged. It must be non-empty valid UTF-8 without whitespace, control
// characters or any of <>"{}|^`\.
func ValidIRI(iri string) bool {
	if iri == "" || !utf8.ValidString(iri) {
		return false
	}
	for _, r := range iri {
		if r <= 0x20 || unicode.IsControl(r) || unicode.IsSpace(r) || strings.ContainsRune(iriForbidden, r) {
			return false
		}
	}
	return true
}

const iriForbidden = "<>\"{}|^`\\"

// Value kinds used in the JSON encoding.
const (
	valueKindLiteral = "literal"
	valueKindIRI     = "iri"
)

// valueEnvelope is the JSON shape of a Value.
type valueEnvelope struct {
	Kind  string `json:"kind"`
	Value string `json:"value,omitempty"`
	Type  string `json:"type,omitempty"`
	IRI   string `json:"iri,omitempty"`
}

// MarshalValue encodes v with a kind discriminator.
func MarshalValue(v Value) ([]byte, error) {
	switch val := v.(type) {
	case ValueLiteral:
		return json.Marshal(valueEnvelope{Kind: valueKindLiteral, Value: val.Value, Type: val.Type})
	case *ValueLiteral:
		return MarshalValue(*val)
	case IRI:
		return json.Marshal(valueEnvelope{Kind: valueKindIRI, IRI: val.IRI})
	case *IRI:
		return MarshalValue(*val)
	case nil:
		return []byte("null"), nil
	default:
		return nil, fmt.Errorf("unsupported value type: %T", v)
	}
}

// UnmarshalValue decodes data produced by MarshalValue.
// A JSON null decodes to a nil Value.
func UnmarshalValue(data []byte) (Value, error) {
	if string(data) == "null" {
		return nil, nil
	}
	var env valueEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decode value: %w", err)
	}
	switch env.Kind {
	case valueKindLiteral:
		if env.Type == "" {
			return nil, fmt.Errorf("literal value %q has no datatype", env.Value)
		}
		return ValueLiteral{Value: env.Value, Type: env.Type}, nil
	case valueKindIRI:
		if env.IRI == "" {
			return nil, fmt.Errorf("iri value is empty")
		}
		return IRI{IRI: env.IRI}, nil
	default:
		return nil, fmt.Errorf("unknown value kind %q", env.Kind)
	}
}
