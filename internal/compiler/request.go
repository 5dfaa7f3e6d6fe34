package compiler

import (
	_ "embed"
	"fmt"

	"cuelang.org/go/cue"

	"github.com/roach88/gravsearch/internal/ir"
	"github.com/roach88/gravsearch/internal/queryir"
)

//go:embed schema.cue
var schemaCUE string

// Request is a compiled search request document.
type Request struct {
	// Ontology is nil when the document carries no ontology excerpt.
	Ontology *queryir.Ontology
	Search   queryir.Query
	Offset   int
}

// CompileRequest validates v against the #Request schema and builds the
// request it describes. v must come from a cue.Context; the schema is
// compiled into the same context. Fields left out of the document take
// the schema defaults.
func CompileRequest(v cue.Value) (*Request, error) {
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	schema := v.Context().CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("compile request schema: %w", err)
	}

	checked := schema.LookupPath(cue.ParsePath("#Request")).Unify(v)
	if err := checked.Validate(cue.Concrete(true)); err != nil {
		return nil, formatCUEError(err)
	}

	req := &Request{}

	if ontVal := v.LookupPath(cue.ParsePath("ontology")); ontVal.Exists() {
		ont, err := CompileOntology(ontVal)
		if err != nil {
			return nil, err
		}
		req.Ontology = ont
	}

	search, err := CompileSearch(v.LookupPath(cue.ParsePath("search")), req.Ontology)
	if err != nil {
		return nil, err
	}
	req.Search = search

	if offVal := v.LookupPath(cue.ParsePath("offset")); offVal.Exists() {
		offset, err := offVal.Int64()
		if err != nil {
			return nil, formatCUEError(err)
		}
		req.Offset = int(offset)
	}

	return req, nil
}

// CompileOntology parses an ontology excerpt.
func CompileOntology(v cue.Value) (*queryir.Ontology, error) {
	iri, err := requiredString(v, "iri", "ontology.iri")
	if err != nil {
		return nil, err
	}

	classes, err := stringList(v, "classes")
	if err != nil {
		return nil, err
	}

	var props []queryir.PropertyDefinition
	if propsVal := v.LookupPath(cue.ParsePath("properties")); propsVal.Exists() {
		iter, err := defaultOf(propsVal).List()
		if err != nil {
			return nil, formatCUEError(err)
		}
		for iter.Next() {
			prop, err := compileProperty(iter.Value())
			if err != nil {
				return nil, err
			}
			props = append(props, prop)
		}
	}

	ont, err := queryir.NewOntology(iri, classes, props)
	if err != nil {
		return nil, &CompileError{Field: "ontology.properties", Message: err.Error(), Pos: v.Pos()}
	}
	return ont, nil
}

func compileProperty(v cue.Value) (queryir.PropertyDefinition, error) {
	var prop queryir.PropertyDefinition
	var err error

	if prop.IRI, err = requiredString(v, "iri", "property.iri"); err != nil {
		return prop, err
	}
	if prop.ObjectType, err = requiredString(v, "object_type", "property.object_type"); err != nil {
		return prop, err
	}
	if prop.Label, err = optionalString(v, "label"); err != nil {
		return prop, err
	}
	if linkVal := v.LookupPath(cue.ParsePath("is_link_property")); linkVal.Exists() {
		if prop.IsLinkProperty, err = defaultOf(linkVal).Bool(); err != nil {
			return prop, formatCUEError(err)
		}
	}

	return prop, nil
}

// CompileSearch parses a search block. Advanced selections are resolved
// against ont, which may be nil for expert and fulltext searches.
func CompileSearch(v cue.Value, ont *queryir.Ontology) (queryir.Query, error) {
	mode, err := requiredString(v, "mode", "search.mode")
	if err != nil {
		return nil, err
	}

	switch mode {
	case queryir.ModeAdvanced:
		return compileAdvanced(v, ont)
	case queryir.ModeExpert:
		template, err := requiredString(v, "template", "search.template")
		if err != nil {
			return nil, err
		}
		return queryir.ExpertSearch{Template: template}, nil
	case queryir.ModeFulltext:
		s := queryir.FulltextSearch{}
		if s.Term, err = requiredString(v, "term", "search.term"); err != nil {
			return nil, err
		}
		if s.LimitToResourceClass, err = optionalString(v, "limit_to_resource_class"); err != nil {
			return nil, err
		}
		if s.LimitToProject, err = optionalString(v, "limit_to_project"); err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, &CompileError{
			Field:   "search.mode",
			Message: fmt.Sprintf("unknown search mode %q", mode),
			Pos:     v.Pos(),
		}
	}
}

func compileAdvanced(v cue.Value, ont *queryir.Ontology) (queryir.Query, error) {
	s := queryir.AdvancedSearch{Selections: []queryir.PropertyWithValue{}}

	class, err := optionalString(v, "resource_class")
	if err != nil {
		return nil, err
	}
	if class != "" && ont != nil && len(ont.ResourceClasses) > 0 && !ont.HasResourceClass(class) {
		return nil, &CompileError{
			Field:   "search.resource_class",
			Message: fmt.Sprintf("resource class %q is not defined by ontology %q", class, ont.IRI),
			Pos:     v.LookupPath(cue.ParsePath("resource_class")).Pos(),
		}
	}
	s.ResourceClassIRI = class

	selsVal := v.LookupPath(cue.ParsePath("selections"))
	if !selsVal.Exists() {
		return s, nil
	}

	iter, err := defaultOf(selsVal).List()
	if err != nil {
		return nil, formatCUEError(err)
	}
	for i := 0; iter.Next(); i++ {
		sel, err := compileSelection(i, iter.Value(), ont)
		if err != nil {
			return nil, err
		}
		s.Selections = append(s.Selections, sel)
	}

	return s, nil
}

func compileSelection(i int, v cue.Value, ont *queryir.Ontology) (queryir.PropertyWithValue, error) {
	field := fmt.Sprintf("search.selections[%d]", i)

	propIRI, err := requiredString(v, "property", field+".property")
	if err != nil {
		return queryir.PropertyWithValue{}, err
	}
	if ont == nil {
		return queryir.PropertyWithValue{}, &CompileError{
			Field:   field + ".property",
			Message: "selections require an ontology to resolve properties",
			Pos:     v.Pos(),
		}
	}
	prop, ok := ont.Property(propIRI)
	if !ok {
		return queryir.PropertyWithValue{}, &CompileError{
			Field:   field + ".property",
			Message: fmt.Sprintf("unknown property %q", propIRI),
			Pos:     v.LookupPath(cue.ParsePath("property")).Pos(),
		}
	}

	opName, err := requiredString(v, "operator", field+".operator")
	if err != nil {
		return queryir.PropertyWithValue{}, err
	}
	op, err := ir.ParseComparisonOperator(opName)
	if err != nil {
		return queryir.PropertyWithValue{}, &CompileError{Field: field + ".operator", Message: err.Error(), Pos: v.Pos()}
	}

	var value ir.Value
	if valVal := v.LookupPath(cue.ParsePath("value")); valVal.Exists() {
		value, err = compileValue(field+".value", valVal, prop)
		if err != nil {
			return queryir.PropertyWithValue{}, err
		}
	}

	sort := false
	if sortVal := v.LookupPath(cue.ParsePath("sort")); sortVal.Exists() {
		if sort, err = defaultOf(sortVal).Bool(); err != nil {
			return queryir.PropertyWithValue{}, formatCUEError(err)
		}
	}

	return queryir.NewPropertyWithValue(prop, queryir.NewComparison(op, value), sort), nil
}

// compileValue builds a literal or an IRI. A literal without a type takes
// the simple datatype of prop's object type.
func compileValue(field string, v cue.Value, prop queryir.PropertyDefinition) (ir.Value, error) {
	if iriVal := v.LookupPath(cue.ParsePath("iri")); iriVal.Exists() {
		iri, err := iriVal.String()
		if err != nil {
			return nil, formatCUEError(err)
		}
		return ir.NewIRI(iri), nil
	}

	literal, err := requiredString(v, "literal", field+".literal")
	if err != nil {
		return nil, err
	}
	datatype, err := optionalString(v, "type")
	if err != nil {
		return nil, err
	}
	if datatype == "" {
		simple, ok := ir.SimpleType(prop.ObjectType)
		if !ok {
			return nil, &CompileError{
				Field:   field + ".type",
				Message: fmt.Sprintf("no default datatype for %s values, set type explicitly", prop.ObjectType),
				Pos:     v.Pos(),
			}
		}
		datatype = simple
	}
	return ir.NewValueLiteral(literal, datatype), nil
}

// defaultOf resolves a disjunction to its default when it has one.
func defaultOf(v cue.Value) cue.Value {
	if d, ok := v.Default(); ok {
		return d
	}
	return v
}

func requiredString(v cue.Value, path, field string) (string, error) {
	val := v.LookupPath(cue.ParsePath(path))
	if !val.Exists() {
		return "", &CompileError{Field: field, Message: field + " is required", Pos: v.Pos()}
	}
	s, err := val.String()
	if err != nil {
		return "", formatCUEError(err)
	}
	return s, nil
}

func optionalString(v cue.Value, path string) (string, error) {
	val := v.LookupPath(cue.ParsePath(path))
	if !val.Exists() {
		return "", nil
	}
	s, err := val.String()
	if err != nil {
		return "", formatCUEError(err)
	}
	return s, nil
}

func stringList(v cue.Value, path string) ([]string, error) {
	val := v.LookupPath(cue.ParsePath(path))
	if !val.Exists() {
		return nil, nil
	}
	iter, err := defaultOf(val).List()
	if err != nil {
		return nil, formatCUEError(err)
	}
	var out []string
	for iter.Next() {
		s, err := iter.Value().String()
		if err != nil {
			return nil, formatCUEError(err)
		}
		out = append(out, s)
	}
	return out, nil
}
