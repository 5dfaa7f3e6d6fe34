package queryir

import (
	"errors"
	"fmt"
)

// GenerationError reports a search that cannot be compiled into a query.
//
// Generation errors are contract violations, not runtime conditions:
//   - Unsupported value kind: object type unknown, or value of the wrong shape
//   - Unsupported operator: no compilation strategy for (kind, operator)
//   - Invalid offset: negative page offset
//   - Empty search: nothing to search for
//   - Invalid IRI: an IRI that cannot be written between angle brackets
type GenerationError struct {
	// Code identifies the error category.
	Code GenerationErrorCode

	// Message is a human-readable description.
	Message string

	// Index is the position of the offending selection, or -1.
	Index int

	// Property is the IRI of the offending property, if any.
	Property string
}

// GenerationErrorCode categorizes generation errors.
type GenerationErrorCode string

const (
	// ErrCodeUnsupportedValueKind indicates a property or value that matches
	// no known literal, list node or link category.
	ErrCodeUnsupportedValueKind GenerationErrorCode = "UNSUPPORTED_VALUE_KIND"

	// ErrCodeUnsupportedOperator indicates an operator the value kind
	// cannot be compared with.
	ErrCodeUnsupportedOperator GenerationErrorCode = "UNSUPPORTED_OPERATOR"

	// ErrCodeInvalidOffset indicates a negative offset.
	ErrCodeInvalidOffset GenerationErrorCode = "INVALID_OFFSET"

	// ErrCodeEmptySearch indicates a search with no restriction at all.
	ErrCodeEmptySearch GenerationErrorCode = "EMPTY_SEARCH"

	// ErrCodeInvalidIRI indicates an IRI containing characters a SPARQL
	// IRI reference cannot hold.
	ErrCodeInvalidIRI GenerationErrorCode = "INVALID_IRI"
)

// Error implements the error interface.
func (e *GenerationError) Error() string {
	if e.Index >= 0 && e.Property != "" {
		return fmt.Sprintf("%s: %s (selection=%d, property=%s)", e.Code, e.Message, e.Index, e.Property)
	}
	if e.Property != "" {
		return fmt.Sprintf("%s: %s (property=%s)", e.Code, e.Message, e.Property)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// withIndex returns a copy of e positioned at selection i.
func (e *GenerationError) withIndex(i int) *GenerationError {
	cp := *e
	cp.Index = i
	return &cp
}

func hasCode(err error, code GenerationErrorCode) bool {
	var ge *GenerationError
	if errors.As(err, &ge) {
		return ge.Code == code
	}
	return false
}

// IsUnsupportedValueKind returns true if err is an unsupported value kind error.
// Uses errors.As to handle wrapped errors.
func IsUnsupportedValueKind(err error) bool {
	return hasCode(err, ErrCodeUnsupportedValueKind)
}

// IsUnsupportedOperator returns true if err is an unsupported operator error.
func IsUnsupportedOperator(err error) bool {
	return hasCode(err, ErrCodeUnsupportedOperator)
}

// IsInvalidOffset returns true if err is an invalid offset error.
func IsInvalidOffset(err error) bool {
	return hasCode(err, ErrCodeInvalidOffset)
}

// IsEmptySearch returns true if err is an empty search error.
func IsEmptySearch(err error) bool {
	return hasCode(err, ErrCodeEmptySearch)
}

// IsInvalidIRI returns true if err is an invalid IRI error.
func IsInvalidIRI(err error) bool {
	return hasCode(err, ErrCodeInvalidIRI)
}

// NewUnsupportedValueKindError creates a GenerationError for an
// unclassifiable property or a value of the wrong shape.
func NewUnsupportedValueKindError(index int, property, message string) *GenerationError {
	return &GenerationError{
		Code:     ErrCodeUnsupportedValueKind,
		Message:  message,
		Index:    index,
		Property: property,
	}
}

// NewUnsupportedOperatorError creates a GenerationError for an operator the
// kind has no compilation strategy for.
func NewUnsupportedOperatorError(index int, property string, op fmt.Stringer, kind ValueKind) *GenerationError {
	return &GenerationError{
		Code:     ErrCodeUnsupportedOperator,
		Message:  fmt.Sprintf("operator %q cannot be applied to %s values", op.String(), kind),
		Index:    index,
		Property: property,
	}
}

// NewInvalidOffsetError creates a GenerationError for a negative offset.
func NewInvalidOffsetError(offset int) *GenerationError {
	return &GenerationError{
		Code:    ErrCodeInvalidOffset,
		Message: fmt.Sprintf("offset must be non-negative, got %d", offset),
		Index:   -1,
	}
}

// NewEmptySearchError creates a GenerationError for a search with nothing
// to search for.
func NewEmptySearchError(message string) *GenerationError {
	return &GenerationError{
		Code:    ErrCodeEmptySearch,
		Message: message,
		Index:   -1,
	}
}

// NewInvalidIRIError creates a GenerationError for an IRI that would break
// out of its angle brackets. what names the IRI's role in the search.
func NewInvalidIRIError(index int, property, what, iri string) *GenerationError {
	return &GenerationError{
		Code:     ErrCodeInvalidIRI,
		Message:  fmt.Sprintf("%s %q is not a valid IRI", what, iri),
		Index:    index,
		Property: property,
	}
}
