package querysparql

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/roach88/gravsearch/internal/ir"
	"github.com/roach88/gravsearch/internal/queryir"
)

// Generate renders q at offset. It has no side effects.
func Generate(q queryir.Query, offset int) (string, error) {
	if offset < 0 {
		return "", queryir.NewInvalidOffsetError(offset)
	}
	if q == nil {
		return "", fmt.Errorf("cannot generate nil query")
	}

	switch query := q.(type) {
	case queryir.AdvancedSearch:
		return generateAdvanced(query, offset)
	case *queryir.AdvancedSearch:
		if query == nil {
			return "", fmt.Errorf("cannot generate nil advanced search")
		}
		return generateAdvanced(*query, offset)
	case queryir.ExpertSearch:
		return generateExpert(query, offset), nil
	case *queryir.ExpertSearch:
		if query == nil {
			return "", fmt.Errorf("cannot generate nil expert search")
		}
		return generateExpert(*query, offset), nil
	case queryir.FulltextSearch:
		return generateFulltext(query, offset), nil
	case *queryir.FulltextSearch:
		if query == nil {
			return "", fmt.Errorf("cannot generate nil fulltext search")
		}
		return generateFulltext(*query, offset), nil
	default:
		return "", fmt.Errorf("unsupported query type: %T", q)
	}
}

// offsetClause is the trailing OFFSET line shared by every Gravsearch form.
func offsetClause(offset int) string {
	return "\nOFFSET " + strconv.Itoa(offset) + "\n"
}

// generateAdvanced compiles property selections into a CONSTRUCT/WHERE
// query. The resource class and selections are checked up front so
// nothing is emitted for an invalid search.
func generateAdvanced(s queryir.AdvancedSearch, offset int) (string, error) {
	if err := queryir.CheckResourceClass(s.ResourceClassIRI); err != nil {
		return "", err
	}

	returnStatements := make([]string, 0, len(s.Selections))
	sortVars := make([]string, 0)
	var restrictions strings.Builder

	for i, sel := range s.Selections {
		kind, err := queryir.CheckSelection(i, sel)
		if err != nil {
			return "", err
		}

		frag := compileSelection(i, sel, kind)
		if frag.returnStatement != "" {
			returnStatements = append(returnStatements, frag.returnStatement)
		}
		restrictions.WriteString(frag.where)
		if sel.UseAsSortCriterion {
			sortVars = append(sortVars, frag.propValue)
		}
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(ir.KnoraPrefixDeclaration)
	b.WriteString("\nCONSTRUCT {\n\n?mainRes knora-api:isMainResource true .\n\n")
	b.WriteString(strings.Join(returnStatements, "\n"))
	b.WriteString("\n\n} WHERE {\n\n?mainRes a knora-api:Resource .\n\n")
	if s.ResourceClassIRI != "" {
		b.WriteString("?mainRes a <" + s.ResourceClassIRI + "> .")
	}
	b.WriteString("\n\n")
	b.WriteString(restrictions.String())
	b.WriteString("\n\n}\n")
	if len(sortVars) > 0 {
		b.WriteString("\nORDER BY " + strings.Join(sortVars, " ") + "\n")
	}
	b.WriteString(offsetClause(offset))

	return b.String(), nil
}

// selectionFragment is the compiled output of one selection.
type selectionFragment struct {
	// propValue is ?propValN, or the target IRI for a link compared to a
	// fixed resource.
	propValue string

	// returnStatement is the CONSTRUCT triple, empty for negated links.
	returnStatement string

	// where is the WHERE block contribution.
	where string
}

// compileSelection expects sel to have passed queryir.CheckSelection.
func compileSelection(i int, sel queryir.PropertyWithValue, kind queryir.ValueKind) selectionFragment {
	op := sel.Value.Operator

	frag := selectionFragment{propValue: "?propVal" + strconv.Itoa(i)}
	if kind == queryir.KindResource && op != ir.Exists {
		frag.propValue = sel.Value.Value.ToSparql()
	}

	statement := "?mainRes <" + sel.Property.IRI + "> " + frag.propValue + " ."

	var pattern string
	if kind == queryir.KindResource && op == ir.NotEquals {
		// No link to the excluded resource is asserted, so nothing is
		// returned for it.
		pattern = "FILTER NOT EXISTS {\n" + statement + "\n\n\n}"
	} else {
		frag.returnStatement = statement
		pattern = "\n" + statement + "\n\n\n"
	}

	frag.where = pattern + "\n" + compileRestriction(frag.propValue, sel, kind) + "\n"
	return frag
}

// compileRestriction returns the value comparison for a selection, or ""
// when the pattern alone expresses it.
func compileRestriction(propValue string, sel queryir.PropertyWithValue, kind queryir.ValueKind) string {
	op := sel.Value.Operator
	if kind == queryir.KindResource || op == ir.Exists {
		return ""
	}

	value := sel.Value.Value.ToSparql()
	literal := propValue + "Literal"
	valueAs, _ := ir.ValueAsPredicate(sel.Property.ObjectType)

	switch {
	case op == ir.Like:
		return propValue + " <" + valueAs + "> " + literal + "\n" +
			"FILTER regex(" + literal + ", " + value + `, "i")`

	case op == ir.Match:
		return "FILTER <" + ir.MatchText + ">(" + propValue + ", " + value + ")"

	case kind == queryir.KindDate:
		return "FILTER(" + ir.KnoraToSimpleDateFunction + "(" + propValue + ") " + op.Symbol() + " " + value + ")"

	case kind == queryir.KindListNode:
		restriction := propValue + " <" + ir.ListValueAsListNode + "> " + value + "\n"
		if op == ir.NotEquals {
			return "FILTER NOT EXISTS {\n" +
				strings.Repeat(" ", 32) + restriction + "\n" +
				strings.Repeat(" ", 28) + "}"
		}
		return restriction

	default:
		return propValue + " <" + valueAs + "> " + literal + "\n" +
			"FILTER(" + literal + " " + op.Symbol() + " " + value + ")"
	}
}

// generateExpert appends the offset to a user-written template.
func generateExpert(s queryir.ExpertSearch, offset int) string {
	return strings.TrimRight(s.Template, "\n") + "\n" + offsetClause(offset)
}

// generateFulltext renders the request path of a fulltext search.
func generateFulltext(s queryir.FulltextSearch, offset int) string {
	params := url.Values{}
	params.Set("offset", strconv.Itoa(offset))
	if s.LimitToResourceClass != "" {
		params.Set("limitToResourceClass", s.LimitToResourceClass)
	}
	if s.LimitToProject != "" {
		params.Set("limitToProject", s.LimitToProject)
	}
	return "/v2/search/" + url.PathEscape(s.Term) + "?" + params.Encode()
}
