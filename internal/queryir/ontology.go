package queryir

import (
	"fmt"
	"slices"
)

// Ontology is the excerpt of an ontology a search is built against: its
// resource classes and the properties that can be searched on.
type Ontology struct {
	IRI             string
	ResourceClasses []string
	Properties      map[string]PropertyDefinition
}

// NewOntology builds an ontology from a list of properties. Duplicate
// property IRIs are rejected.
func NewOntology(iri string, classes []string, props []PropertyDefinition) (*Ontology, error) {
	o := &Ontology{
		IRI:             iri,
		ResourceClasses: slices.Clone(classes),
		Properties:      make(map[string]PropertyDefinition, len(props)),
	}
	for _, p := range props {
		if _, dup := o.Properties[p.IRI]; dup {
			return nil, fmt.Errorf("duplicate property %q in ontology %q", p.IRI, iri)
		}
		o.Properties[p.IRI] = p
	}
	return o, nil
}

// Property looks up a property by IRI.
func (o *Ontology) Property(iri string) (PropertyDefinition, bool) {
	p, ok := o.Properties[iri]
	return p, ok
}

// HasResourceClass reports whether iri is one of the ontology's classes.
func (o *Ontology) HasResourceClass(iri string) bool {
	return slices.Contains(o.ResourceClasses, iri)
}

// PropertyIRIs returns the property IRIs in sorted order.
func (o *Ontology) PropertyIRIs() []string {
	iris := make([]string, 0, len(o.Properties))
	for iri := range o.Properties {
		iris = append(iris, iri)
	}
	slices.Sort(iris)
	return iris
}
