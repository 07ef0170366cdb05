package ir

import "fmt"

// ResolveRefs returns a new Document with every RefKind value replaced
// by the referenced string.  Resolution is a name lookup against
// d.Refs; there is no graph traversal and no cycle risk.
func ResolveRefs(d *Document) (*Document, error) {
	res := d.Clone()
	for i := range res.Context {
		v, err := resolveValue(res.Context[i].Value, d)
		if err != nil {
			return nil, err
		}
		res.Context[i].Value = v
	}
	for i := range res.Sections {
		for j, row := range res.Sections[i].Rows {
			for k := range row {
				v, err := resolveValue(row[k], d)
				if err != nil {
					return nil, err
				}
				res.Sections[i].Rows[j][k] = v
			}
		}
	}
	return res, nil
}

func resolveValue(v Value, d *Document) (Value, error) {
	switch v.Kind {
	case RefKind:
		s, ok := d.GetRef(v.Str)
		if !ok {
			return Value{}, fmt.Errorf("%w: ^%s", ErrUndefinedRef, v.Str)
		}
		return FromString(s), nil
	case ArrayKind:
		for i := range v.Arr {
			rv, err := resolveValue(v.Arr[i], d)
			if err != nil {
				return Value{}, err
			}
			v.Arr[i] = rv
		}
		return v, nil
	default:
		return v, nil
	}
}
