// Package bridge maps Documents to and from JSON and YAML for
// interop with external tooling.  The mapping is structural: context
// and refs become objects, sections become objects keyed by id with
// schema and rows.  Key order inside objects is not preserved, which
// is fine for structural equality but not for byte-level round trips.
package bridge

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/goccy/go-yaml"

	"github.com/najmus-sakib-hossain/dx-go/ir"
)

// refMarker keys the single-field object a reference value becomes.
const refMarker = "$ref"

// MarshalJSON renders a Document as a JSON object.
func MarshalJSON(doc *ir.Document) ([]byte, error) {
	return json.Marshal(ToAny(doc))
}

// UnmarshalJSON rebuilds a Document from MarshalJSON output.  Entry
// order follows sorted keys.
func UnmarshalJSON(data []byte) (*ir.Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return FromAny(v)
}

// MarshalYAML renders a Document as YAML.
func MarshalYAML(doc *ir.Document) ([]byte, error) {
	return yaml.Marshal(ToAny(doc))
}

// UnmarshalYAML rebuilds a Document from MarshalYAML output.
func UnmarshalYAML(data []byte) (*ir.Document, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return FromAny(v)
}

// ToAny converts a Document to plain maps and slices.
func ToAny(doc *ir.Document) map[string]any {
	root := map[string]any{}
	if len(doc.Context) > 0 {
		ctx := make(map[string]any, len(doc.Context))
		for _, e := range doc.Context {
			ctx[e.Key] = valueToAny(e.Value)
		}
		root["context"] = ctx
	}
	if len(doc.Refs) > 0 {
		refs := make(map[string]any, len(doc.Refs))
		for _, r := range doc.Refs {
			refs[r.Key] = r.Value
		}
		root["refs"] = refs
	}
	if len(doc.Sections) > 0 {
		secs := make(map[string]any, len(doc.Sections))
		for i := range doc.Sections {
			sec := &doc.Sections[i]
			rows := make([]any, len(sec.Rows))
			for r, row := range sec.Rows {
				vals := make([]any, len(row))
				for c, v := range row {
					vals[c] = valueToAny(v)
				}
				rows[r] = vals
			}
			schema := make([]any, len(sec.Schema))
			for c, col := range sec.Schema {
				schema[c] = col
			}
			secs[string(sec.ID)] = map[string]any{
				"schema": schema,
				"rows":   rows,
			}
		}
		root["sections"] = secs
	}
	return root
}

func valueToAny(v ir.Value) any {
	switch v.Kind {
	case ir.StringKind:
		return v.Str
	case ir.IntKind:
		return v.Int
	case ir.FloatKind:
		return v.Float
	case ir.BoolKind:
		return v.Bool
	case ir.RefKind:
		return map[string]any{refMarker: v.Str}
	case ir.ArrayKind:
		items := make([]any, len(v.Arr))
		for i := range v.Arr {
			items[i] = valueToAny(v.Arr[i])
		}
		return items
	default:
		return nil
	}
}

// FromAny converts plain maps and slices back to a Document.
func FromAny(v any) (*ir.Document, error) {
	root, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("expected object at document root, got %T", v)
	}
	doc := ir.NewDocument()

	if ctx, ok := root["context"].(map[string]any); ok {
		for _, key := range sortedKeys(ctx) {
			val, err := valueFromAny(ctx[key])
			if err != nil {
				return nil, fmt.Errorf("context %q: %w", key, err)
			}
			doc.Set(key, val)
		}
	}
	if refs, ok := root["refs"].(map[string]any); ok {
		for _, key := range sortedKeys(refs) {
			s, ok := refs[key].(string)
			if !ok {
				return nil, fmt.Errorf("ref %q: expected string, got %T", key, refs[key])
			}
			doc.SetRef(key, s)
		}
	}
	if secs, ok := root["sections"].(map[string]any); ok {
		for _, key := range sortedKeys(secs) {
			sec, err := sectionFromAny(key, secs[key])
			if err != nil {
				return nil, err
			}
			doc.AddSection(sec)
		}
	}
	return doc, nil
}

func sectionFromAny(key string, v any) (ir.Section, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return ir.Section{}, fmt.Errorf("section %q: expected object, got %T", key, v)
	}
	ids := []rune(key)
	if len(ids) != 1 {
		return ir.Section{}, fmt.Errorf("section %q: id must be a single character", key)
	}
	sec := ir.Section{ID: ids[0]}

	schema, ok := obj["schema"].([]any)
	if !ok {
		return ir.Section{}, fmt.Errorf("section %q: missing schema", key)
	}
	for _, col := range schema {
		s, ok := col.(string)
		if !ok {
			return ir.Section{}, fmt.Errorf("section %q: schema entry %v is not a string", key, col)
		}
		sec.Schema = append(sec.Schema, s)
	}
	rows, _ := obj["rows"].([]any)
	for ri, rv := range rows {
		cells, ok := rv.([]any)
		if !ok {
			return ir.Section{}, fmt.Errorf("section %q row %d: expected array, got %T", key, ri, rv)
		}
		row := make([]ir.Value, len(cells))
		for ci, cv := range cells {
			val, err := valueFromAny(cv)
			if err != nil {
				return ir.Section{}, fmt.Errorf("section %q row %d: %w", key, ri, err)
			}
			row[ci] = val
		}
		sec.Rows = append(sec.Rows, row)
	}
	return sec, nil
}

func valueFromAny(v any) (ir.Value, error) {
	switch x := v.(type) {
	case nil:
		return ir.Null(), nil
	case string:
		return ir.FromString(x), nil
	case bool:
		return ir.FromBool(x), nil
	case int:
		return ir.FromInt(int64(x)), nil
	case int64:
		return ir.FromInt(x), nil
	case uint64:
		return ir.FromInt(int64(x)), nil
	case float64:
		return ir.FromFloat(x), nil
	case json.Number:
		if n, err := x.Int64(); err == nil {
			return ir.FromInt(n), nil
		}
		f, err := x.Float64()
		if err != nil {
			return ir.Value{}, fmt.Errorf("bad number %q", x)
		}
		return ir.FromFloat(f), nil
	case []any:
		items := make([]ir.Value, len(x))
		for i := range x {
			item, err := valueFromAny(x[i])
			if err != nil {
				return ir.Value{}, err
			}
			items[i] = item
		}
		return ir.FromArray(items...), nil
	case map[string]any:
		if ref, ok := x[refMarker].(string); ok && len(x) == 1 {
			return ir.FromRef(ref), nil
		}
		return ir.Value{}, fmt.Errorf("unexpected object value %v", x)
	default:
		return ir.Value{}, fmt.Errorf("unsupported value type %T", v)
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
