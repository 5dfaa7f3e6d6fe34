package queryir

import (
	"encoding/json"
	"fmt"

	"github.com/roach88/gravsearch/internal/ir"
)

// recordEnvelope is the stored JSON shape of a Query.
type recordEnvelope struct {
	Mode   string          `json:"mode"`
	Search json.RawMessage `json:"search"`
}

// MarshalQuery encodes q as {"mode": ..., "search": ...}.
func MarshalQuery(q Query) ([]byte, error) {
	mode, err := Mode(q)
	if err != nil {
		return nil, err
	}
	body, err := json.Marshal(deref(q))
	if err != nil {
		return nil, fmt.Errorf("encode %s search: %w", mode, err)
	}
	return json.Marshal(recordEnvelope{Mode: mode, Search: body})
}

// UnmarshalQuery decodes a record produced by MarshalQuery.
func UnmarshalQuery(data []byte) (Query, error) {
	var env recordEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decode search record: %w", err)
	}
	switch env.Mode {
	case ModeAdvanced:
		var s AdvancedSearch
		if err := json.Unmarshal(env.Search, &s); err != nil {
			return nil, fmt.Errorf("decode advanced search: %w", err)
		}
		return s, nil
	case ModeExpert:
		var s ExpertSearch
		if err := json.Unmarshal(env.Search, &s); err != nil {
			return nil, fmt.Errorf("decode expert search: %w", err)
		}
		return s, nil
	case ModeFulltext:
		var s FulltextSearch
		if err := json.Unmarshal(env.Search, &s); err != nil {
			return nil, fmt.Errorf("decode fulltext search: %w", err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown search mode %q", env.Mode)
	}
}

// Canonical returns the canonical object form of q used for hashing.
// Selection order is significant and preserved.
func Canonical(q Query) (map[string]any, error) {
	switch s := deref(q).(type) {
	case AdvancedSearch:
		sels := make([]any, len(s.Selections))
		for i, sel := range s.Selections {
			sels[i] = canonicalSelection(sel)
		}
		return map[string]any{
			"mode":           ModeAdvanced,
			"resource_class": s.ResourceClassIRI,
			"selections":     sels,
		}, nil
	case ExpertSearch:
		return map[string]any{
			"mode":     ModeExpert,
			"template": s.Template,
		}, nil
	case FulltextSearch:
		return map[string]any{
			"mode":                    ModeFulltext,
			"term":                    s.Term,
			"limit_to_resource_class": s.LimitToResourceClass,
			"limit_to_project":        s.LimitToProject,
		}, nil
	default:
		return nil, fmt.Errorf("unsupported query type: %T", q)
	}
}

func canonicalSelection(sel PropertyWithValue) map[string]any {
	obj := map[string]any{
		"property":    sel.Property.IRI,
		"object_type": sel.Property.ObjectType,
		"is_link":     sel.Property.IsLinkProperty,
		"operator":    string(sel.Value.Operator),
		"sort":        sel.UseAsSortCriterion,
	}
	switch v := sel.Value.Value.(type) {
	case ir.ValueLiteral:
		obj["value"] = map[string]any{"literal": v.Value, "type": v.Type}
	case *ir.ValueLiteral:
		obj["value"] = map[string]any{"literal": v.Value, "type": v.Type}
	case ir.IRI:
		obj["value"] = map[string]any{"iri": v.IRI}
	case *ir.IRI:
		obj["value"] = map[string]any{"iri": v.IRI}
	}
	return obj
}

// ID returns the content-addressed identity of q. Resubmitting an
// identical search yields the same ID.
func ID(q Query) (string, error) {
	obj, err := Canonical(q)
	if err != nil {
		return "", err
	}
	return ir.SearchID(obj)
}
