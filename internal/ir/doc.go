// Package ir provides the foundational value types for Gravsearch generation.
//
// This package contains leaf types only. All other internal packages
// import ir; ir imports nothing internal.
//
// Key design constraints:
//   - Value is sealed: only ValueLiteral and IRI implement it
//   - ComparisonOperator is a closed enumeration
//   - Knora vocabulary IRIs live in vocab.go, never inlined elsewhere
//   - Content hashes use canonical JSON (sorted keys, NFC strings, no floats)
package ir
