package queryir

import (
	"errors"
	"fmt"
	"strings"

	"github.com/roach88/gravsearch/internal/ir"
)

// ValidationResult contains the outcome of checking a search record.
//
// Errors make the record uncompilable. Warnings flag searches that compile
// but probably do not do what the user meant.
type ValidationResult struct {
	// IsValid is true when Errors is empty.
	IsValid bool

	// Errors lists every problem that would make generation fail.
	Errors []*GenerationError

	// Warnings lists suspicious but compilable constructs.
	Warnings []string
}

// Validate checks q the way a search form does before submitting it.
//
// Unlike the generator, which stops at the first problem, Validate
// reports every problem it finds. Rules:
//  1. An advanced search needs a resource class or at least one selection
//  2. The resource class, when set, must be a valid IRI
//  3. Every selection must pass CheckSelection
//  4. Expert templates and fulltext terms must not be blank
//
// Validate is a pure function with no side effects.
func Validate(q Query) ValidationResult {
	v := &validator{
		errors:   []*GenerationError{},
		warnings: []string{},
	}
	v.validateQuery(q)

	return ValidationResult{
		IsValid:  len(v.errors) == 0,
		Errors:   v.errors,
		Warnings: v.warnings,
	}
}

// validator accumulates problems during traversal.
type validator struct {
	errors   []*GenerationError
	warnings []string
}

func (v *validator) addWarning(format string, args ...any) {
	v.warnings = append(v.warnings, fmt.Sprintf(format, args...))
}

func (v *validator) addError(err error) {
	var ge *GenerationError
	if errors.As(err, &ge) {
		v.errors = append(v.errors, ge)
		return
	}
	v.errors = append(v.errors, &GenerationError{Code: ErrCodeUnsupportedValueKind, Message: err.Error(), Index: -1})
}

func (v *validator) validateQuery(q Query) {
	switch query := deref(q).(type) {
	case nil:
		v.addError(NewEmptySearchError("no search given"))
	case AdvancedSearch:
		v.validateAdvanced(query)
	case ExpertSearch:
		if isBlank(query.Template) {
			v.addError(NewEmptySearchError("expert search template is empty"))
		}
	case FulltextSearch:
		if isBlank(query.Term) {
			v.addError(NewEmptySearchError("fulltext search term is empty"))
		}
	default:
		v.addError(NewEmptySearchError(fmt.Sprintf("unknown query type: %T", q)))
	}
}

func (v *validator) validateAdvanced(s AdvancedSearch) {
	// Rule 1: the form refuses to submit an unrestricted search
	if s.ResourceClassIRI == "" && len(s.Selections) == 0 {
		v.addError(NewEmptySearchError("select a resource class or at least one property"))
	}

	// Rule 2: the resource class is written between angle brackets
	if err := CheckResourceClass(s.ResourceClassIRI); err != nil {
		v.addError(err)
	}

	for i, sel := range s.Selections {
		kind, err := CheckSelection(i, sel)
		if err != nil {
			v.addError(err)
			continue
		}
		v.validateSelectionHints(i, sel, kind)
	}
}

// validateSelectionHints flags compilable selections whose output is
// likely unintended.
func (v *validator) validateSelectionHints(i int, sel PropertyWithValue, kind ValueKind) {
	if sel.Value.Operator == ir.Exists && sel.Value.Value != nil {
		v.addWarning("selection %d (%s): value is ignored by operator Exists", i, sel.Property.IRI)
	}

	if lit, ok := sel.Value.Value.(ir.ValueLiteral); ok && sel.Value.Operator != ir.Exists {
		if want, known := ir.SimpleType(sel.Property.ObjectType); known && lit.Type != want {
			v.addWarning("selection %d (%s): literal type <%s> differs from expected <%s>",
				i, sel.Property.IRI, lit.Type, want)
		}
	}

	if kind == KindResource && sel.UseAsSortCriterion && sel.Value.Operator != ir.Exists {
		v.addWarning("selection %d (%s): sorting by a link compared to a fixed resource orders by a constant",
			i, sel.Property.IRI)
	}
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
