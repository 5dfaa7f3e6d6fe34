// Package compiler turns CUE search request documents into queryir values.
//
// A request document holds an optional ontology excerpt and one search:
//
//	ontology: {
//		iri: "http://0.0.0.0:3333/ontology/0001/anything/v2"
//		classes: ["http://0.0.0.0:3333/ontology/0001/anything/v2#Thing"]
//		properties: [{
//			iri:         "http://0.0.0.0:3333/ontology/0001/anything/v2#hasInteger"
//			object_type: "http://api.knora.org/ontology/knora-api/v2#IntValue"
//		}]
//	}
//	search: {
//		mode:           "advanced"
//		resource_class: "http://0.0.0.0:3333/ontology/0001/anything/v2#Thing"
//		selections: [{
//			property: "http://0.0.0.0:3333/ontology/0001/anything/v2#hasInteger"
//			operator: "Equals"
//			value: literal: "3"
//			sort: true
//		}]
//	}
//	offset: 0
//
// The document is unified with the embedded #Request schema before any Go
// value is built, so shape errors carry CUE source positions. Selections
// name properties by IRI; the compiler resolves them against the ontology.
// A literal without a type takes the simple datatype of its property.
package compiler
