package compact

import (
	"strconv"
	"strings"

	"github.com/najmus-sakib-hossain/dx-go/ir"
)

// Serialize renders a Document to the compact surface.  Keys are
// abbreviated where a mapping exists; entries are emitted in document
// order, so output is deterministic for a given Document.
func Serialize(doc *ir.Document, opts ...Option) string {
	o := newOptions(opts)

	refs := doc.Refs
	if o.autoRefs {
		refs = append(append([]ir.Ref(nil), refs...), autoRefs(doc, o)...)
	}

	var b strings.Builder
	for _, e := range doc.Context {
		b.WriteString(o.dict.Compress(e.Key))
		b.WriteByte('|')
		b.WriteString(serializeValue(e.Value, refs, o))
		b.WriteByte('\n')
	}
	for _, r := range refs {
		b.WriteString("#:")
		b.WriteString(r.Key)
		b.WriteByte('|')
		b.WriteString(r.Value)
		b.WriteByte('\n')
	}
	for _, sec := range doc.Sections {
		b.WriteByte('#')
		b.WriteRune(sec.ID)
		b.WriteByte('(')
		for i, col := range sec.Schema {
			if i > 0 {
				b.WriteByte('|')
			}
			b.WriteString(o.dict.Compress(col))
		}
		b.WriteString(")\n")
		for _, row := range sec.Rows {
			for i, v := range row {
				if i > 0 {
					b.WriteByte('|')
				}
				b.WriteString(serializeValue(v, refs, o))
			}
			b.WriteByte('\n')
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func serializeValue(v ir.Value, refs []ir.Ref, o *options) string {
	switch v.Kind {
	case ir.BoolKind:
		if v.Bool {
			return "+"
		}
		return "-"
	case ir.NullKind:
		return "~"
	case ir.RefKind:
		return "^" + v.Str
	case ir.IntKind, ir.FloatKind:
		return v.FormatNumber()
	case ir.StringKind:
		if o.autoRefs {
			for i := range refs {
				if refs[i].Value == v.Str {
					return "^" + refs[i].Key
				}
			}
		}
		return quote(v.Str)
	case ir.ArrayKind:
		items := make([]string, len(v.Arr))
		for i := range v.Arr {
			items[i] = serializeItem(v.Arr[i], refs, o)
		}
		return "*" + strings.Join(items, ",")
	default:
		return "~"
	}
}

// serializeItem renders one array element.  Nested arrays are
// bracketed so the outer comma split can recover them intact.
func serializeItem(v ir.Value, refs []ir.Ref, o *options) string {
	if v.Kind != ir.ArrayKind {
		return serializeValue(v, refs, o)
	}
	items := make([]string, len(v.Arr))
	for i := range v.Arr {
		items[i] = serializeItem(v.Arr[i], refs, o)
	}
	return "[" + strings.Join(items, ",") + "]"
}

// quote wraps strings that would otherwise misparse: sigil collisions,
// cell and array separators, numeric look-alikes, surrounding space.
func quote(s string) string {
	if needsQuote(s) {
		return strconv.Quote(s)
	}
	return s
}

func needsQuote(s string) bool {
	if s == "" || s == "+" || s == "-" || s == "~" {
		return true
	}
	switch s[0] {
	case '^', '*', '#', '"', '[':
		return true
	}
	if strings.ContainsAny(s, "|,\n") {
		return true
	}
	if s[0] == ' ' || s[len(s)-1] == ' ' {
		return true
	}
	if _, ok := ir.ParseNumber(s); ok {
		return true
	}
	return false
}

// autoRefs finds repeated long strings worth hoisting into reference
// definitions, keyed A, B, ... Z, AA, AB, ...
func autoRefs(doc *ir.Document, o *options) []ir.Ref {
	counts := map[string]int{}
	order := []string{}
	count := func(v ir.Value) {
		var walk func(ir.Value)
		walk = func(v ir.Value) {
			switch v.Kind {
			case ir.StringKind:
				if counts[v.Str] == 0 {
					order = append(order, v.Str)
				}
				counts[v.Str]++
			case ir.ArrayKind:
				for _, item := range v.Arr {
					walk(item)
				}
			}
		}
		walk(v)
	}
	for _, e := range doc.Context {
		count(e.Value)
	}
	for _, sec := range doc.Sections {
		for _, row := range sec.Rows {
			for _, v := range row {
				count(v)
			}
		}
	}

	taken := map[string]bool{}
	for _, r := range doc.Refs {
		taken[r.Key] = true
	}
	var (
		res []ir.Ref
		n   int
	)
	for _, s := range order {
		if len(s) < o.minRefLength || counts[s] < o.minRefCount {
			continue
		}
		key := refKey(n)
		for taken[key] {
			n++
			key = refKey(n)
		}
		n++
		res = append(res, ir.Ref{Key: key, Value: s})
	}
	return res
}

func refKey(n int) string {
	if n < 26 {
		return string(rune('A' + n))
	}
	return string(rune('A'+n/26-1)) + string(rune('A'+n%26))
}
