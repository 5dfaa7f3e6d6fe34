package queryir

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/roach88/gravsearch/internal/ir"
)

// CheckSelection verifies that sel at position index can be compiled and
// returns its value kind. Every IRI it carries must be valid, the operator
// must be supported for the kind, and the value must have the shape the
// kind compares with.
func CheckSelection(index int, sel PropertyWithValue) (ValueKind, error) {
	if !ir.ValidIRI(sel.Property.IRI) {
		return KindUnknown, NewInvalidIRIError(index, sel.Property.IRI, "property", sel.Property.IRI)
	}

	kind, err := Classify(sel.Property)
	if err != nil {
		var ge *GenerationError
		if errors.As(err, &ge) {
			return KindUnknown, ge.withIndex(index)
		}
		return KindUnknown, err
	}

	op := sel.Value.Operator
	if !op.Valid() || !kind.Supports(op) {
		return kind, NewUnsupportedOperatorError(index, sel.Property.IRI, op, kind)
	}

	if op == ir.Exists {
		return kind, nil
	}

	switch v := sel.Value.Value.(type) {
	case nil:
		return kind, NewUnsupportedValueKindError(index, sel.Property.IRI,
			fmt.Sprintf("operator %q requires a value", op))
	case ir.IRI:
		return kind, checkIRIValue(index, sel, kind, v)
	case *ir.IRI:
		if v == nil {
			return kind, NewUnsupportedValueKindError(index, sel.Property.IRI,
				fmt.Sprintf("operator %q requires a value", op))
		}
		return kind, checkIRIValue(index, sel, kind, *v)
	case ir.ValueLiteral:
		return kind, checkLiteralValue(index, sel, kind, v)
	case *ir.ValueLiteral:
		if v == nil {
			return kind, NewUnsupportedValueKindError(index, sel.Property.IRI,
				fmt.Sprintf("operator %q requires a value", op))
		}
		return kind, checkLiteralValue(index, sel, kind, *v)
	default:
		return kind, NewUnsupportedValueKindError(index, sel.Property.IRI,
			fmt.Sprintf("unsupported value type %T", sel.Value.Value))
	}
}

func checkIRIValue(index int, sel PropertyWithValue, kind ValueKind, v ir.IRI) error {
	if kind.IsLiteral() {
		return NewUnsupportedValueKindError(index, sel.Property.IRI,
			fmt.Sprintf("%s property compared with an IRI, expected a literal", kind))
	}
	if !ir.ValidIRI(v.IRI) {
		return NewInvalidIRIError(index, sel.Property.IRI, "target", v.IRI)
	}
	return nil
}

// checkLiteralValue also rejects invalid UTF-8, which would not survive a
// round trip through the stored search record.
func checkLiteralValue(index int, sel PropertyWithValue, kind ValueKind, v ir.ValueLiteral) error {
	if !kind.IsLiteral() {
		return NewUnsupportedValueKindError(index, sel.Property.IRI,
			fmt.Sprintf("%s property compared with a literal, expected an IRI", kind))
	}
	if !utf8.ValidString(v.Value) {
		return NewUnsupportedValueKindError(index, sel.Property.IRI,
			fmt.Sprintf("literal %q is not valid UTF-8", v.Value))
	}
	if !ir.ValidIRI(v.Type) {
		return NewInvalidIRIError(index, sel.Property.IRI, "literal datatype", v.Type)
	}
	return nil
}

// CheckResourceClass verifies an optional resource class restriction.
func CheckResourceClass(iri string) error {
	if iri != "" && !ir.ValidIRI(iri) {
		return NewInvalidIRIError(-1, "", "resource class", iri)
	}
	return nil
}
