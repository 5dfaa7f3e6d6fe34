package compiler

import (
	"fmt"

	"github.com/roach88/gravsearch/internal/queryir"
)

// Validation error codes (E100-E199)
const (
	// General validation errors (E100)
	ErrUnsupportedRequest = "E100" // request is nil or carries no search

	// Search errors (E101-E109)
	ErrEmptySearch          = "E101" // nothing to search for
	ErrUnsupportedValueKind = "E102" // property or value of an unsupported kind
	ErrUnsupportedOperator  = "E103" // operator not applicable to the value kind
	ErrInvalidOffset        = "E104" // negative page offset
	ErrInvalidIRI           = "E105" // IRI that cannot be written between angle brackets
)

// ValidationError represents a request validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s: %s", e.Code, e.Field, e.Message)
}

// Validate checks a compiled request and returns every error found
// (does not fail-fast) together with non-fatal warnings.
func Validate(req *Request) ([]ValidationError, []string) {
	if req == nil || req.Search == nil {
		return []ValidationError{{
			Field:   "search",
			Message: "request has no search",
			Code:    ErrUnsupportedRequest,
		}}, []string{}
	}

	errs := []ValidationError{}
	if req.Offset < 0 {
		errs = append(errs, fromGenerationError(queryir.NewInvalidOffsetError(req.Offset)))
	}

	result := queryir.Validate(req.Search)
	for _, ge := range result.Errors {
		errs = append(errs, fromGenerationError(ge))
	}

	return errs, result.Warnings
}

func fromGenerationError(ge *queryir.GenerationError) ValidationError {
	field := "search"
	switch {
	case ge.Code == queryir.ErrCodeInvalidOffset:
		field = "offset"
	case ge.Code == queryir.ErrCodeInvalidIRI && ge.Index < 0:
		field = "search.resource_class"
	case ge.Index >= 0:
		field = fmt.Sprintf("search.selections[%d]", ge.Index)
	}

	return ValidationError{
		Field:   field,
		Message: ge.Message,
		Code:    codeFor(ge.Code),
	}
}

func codeFor(code queryir.GenerationErrorCode) string {
	switch code {
	case queryir.ErrCodeEmptySearch:
		return ErrEmptySearch
	case queryir.ErrCodeUnsupportedValueKind:
		return ErrUnsupportedValueKind
	case queryir.ErrCodeUnsupportedOperator:
		return ErrUnsupportedOperator
	case queryir.ErrCodeInvalidOffset:
		return ErrInvalidOffset
	case queryir.ErrCodeInvalidIRI:
		return ErrInvalidIRI
	default:
		return ErrUnsupportedRequest
	}
}
