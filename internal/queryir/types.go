package queryir

import (
	"encoding/json"
	"fmt"

	"github.com/roach88/gravsearch/internal/ir"
)

// PropertyDefinition describes an ontology property as far as query
// generation needs it.
type PropertyDefinition struct {
	IRI            string `json:"iri"`
	Label          string `json:"label,omitempty"`
	ObjectType     string `json:"object_type"`
	IsLinkProperty bool   `json:"is_link_property"`
}

// ComparisonOperatorAndValue pairs an operator with the value it compares
// against. Value is nil for Exists.
type ComparisonOperatorAndValue struct {
	Operator ir.ComparisonOperator
	Value    ir.Value
}

// NewComparison creates an operator/value pair.
func NewComparison(op ir.ComparisonOperator, value ir.Value) ComparisonOperatorAndValue {
	return ComparisonOperatorAndValue{Operator: op, Value: value}
}

type comparisonJSON struct {
	Operator ir.ComparisonOperator `json:"operator"`
	Value    json.RawMessage       `json:"value,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (c ComparisonOperatorAndValue) MarshalJSON() ([]byte, error) {
	out := comparisonJSON{Operator: c.Operator}
	if c.Value != nil {
		raw, err := ir.MarshalValue(c.Value)
		if err != nil {
			return nil, err
		}
		out.Value = raw
	}
	return json.Marshal(out)
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *ComparisonOperatorAndValue) UnmarshalJSON(data []byte) error {
	var in comparisonJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	c.Operator = in.Operator
	c.Value = nil
	if len(in.Value) > 0 {
		v, err := ir.UnmarshalValue(in.Value)
		if err != nil {
			return err
		}
		c.Value = v
	}
	return nil
}

// PropertyWithValue is one configured filter row: a property, the
// comparison applied to it and whether it orders the results.
type PropertyWithValue struct {
	Property           PropertyDefinition         `json:"property"`
	Value              ComparisonOperatorAndValue `json:"value"`
	UseAsSortCriterion bool                       `json:"use_as_sort_criterion"`
}

// NewPropertyWithValue creates a property selection.
func NewPropertyWithValue(prop PropertyDefinition, value ComparisonOperatorAndValue, useAsSortCriterion bool) PropertyWithValue {
	return PropertyWithValue{Property: prop, Value: value, UseAsSortCriterion: useAsSortCriterion}
}

// Query is an immutable search record.
//
// This is a sealed interface - only types in this package implement it.
// A record holds everything needed to regenerate the search for any
// offset.
type Query interface {
	queryNode() // Marker method - seals interface to this package
}

// Search modes, used as the discriminator in stored records.
const (
	ModeAdvanced = "advanced"
	ModeExpert   = "expert"
	ModeFulltext = "fulltext"
)

// AdvancedSearch is a structured search built from property selections.
// ResourceClassIRI is empty when results are not restricted to a class.
type AdvancedSearch struct {
	Selections       []PropertyWithValue `json:"selections"`
	ResourceClassIRI string              `json:"resource_class,omitempty"`
}

func (AdvancedSearch) queryNode() {}

// ExpertSearch is a user-written Gravsearch query without OFFSET.
type ExpertSearch struct {
	Template string `json:"template"`
}

func (ExpertSearch) queryNode() {}

// FulltextSearch searches resource labels and text values for Term.
type FulltextSearch struct {
	Term                 string `json:"term"`
	LimitToResourceClass string `json:"limit_to_resource_class,omitempty"`
	LimitToProject       string `json:"limit_to_project,omitempty"`
}

func (FulltextSearch) queryNode() {}

// Mode returns the record discriminator for q.
func Mode(q Query) (string, error) {
	switch deref(q).(type) {
	case AdvancedSearch:
		return ModeAdvanced, nil
	case ExpertSearch:
		return ModeExpert, nil
	case FulltextSearch:
		return ModeFulltext, nil
	case nil:
		return "", fmt.Errorf("no search given")
	default:
		return "", fmt.Errorf("unsupported query type: %T", q)
	}
}

// deref normalizes pointer records to values. A nil pointer becomes a nil
// Query.
func deref(q Query) Query {
	switch v := q.(type) {
	case *AdvancedSearch:
		if v == nil {
			return nil
		}
		return *v
	case *ExpertSearch:
		if v == nil {
			return nil
		}
		return *v
	case *FulltextSearch:
		if v == nil {
			return nil
		}
		return *v
	default:
		return q
	}
}
