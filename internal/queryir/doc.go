// Package queryir provides the search model that the Gravsearch generator
// compiles.
//
// A search is described by an explicit, immutable record rather than a
// captured closure, so it can be stored and regenerated with a different
// offset:
//
//	[search form] → [Query record] → querysparql.Generate(record, offset)
//	                      ↓
//	              [pagination slot]
//
// RECORD TYPES:
//
// Query is a sealed interface using the marker method pattern. Only types
// in this package implement it:
//   - AdvancedSearch: ordered property selections plus an optional
//     resource class restriction
//   - ExpertSearch: a user-written Gravsearch template
//   - FulltextSearch: a search term with optional class/project limits
//
// Example:
//
//	switch q := query.(type) {
//	case AdvancedSearch:
//	    // compile selections
//	case ExpertSearch:
//	    // append offset to template
//	case FulltextSearch:
//	    // build request path
//	}
//
// SELECTION ORDER:
//
// Selections are positional. The Nth selection (0-indexed) always binds
// ?propValN, and sort-flagged selections appear in ORDER BY in input
// order.
//
// VALUE KINDS:
//
// Classify maps a PropertyDefinition to a ValueKind; SupportedOperators
// is the closed (kind, operator) table. Both the validator and the
// generator consult it, so an unsupported pairing is rejected before any
// query text is produced.
package queryir
