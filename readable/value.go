package readable

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/najmus-sakib-hossain/dx-go/ir"
)

// formatValue renders a config value.  Arrays are comma-separated
// without surrounding brackets; a single-element array keeps a
// trailing comma so it reads back as an array, and an empty array is
// the literal [].
func formatValue(v ir.Value) string {
	switch v.Kind {
	case ir.NullKind:
		return "null"
	case ir.BoolKind:
		if v.Bool {
			return "true"
		}
		return "false"
	case ir.IntKind, ir.FloatKind:
		return v.FormatNumber()
	case ir.RefKind:
		return "^" + v.Str
	case ir.ArrayKind:
		return formatArray(v.Arr, needsValueQuote)
	case ir.StringKind:
		return quoteIf(v.Str, needsValueQuote)
	default:
		return "null"
	}
}

func formatArray(items []ir.Value, needsQuote func(string) bool) string {
	if len(items) == 0 {
		return "[]"
	}
	parts := make([]string, len(items))
	for i := range items {
		parts[i] = formatItem(items[i], needsQuote)
	}
	if len(parts) == 1 {
		return parts[0] + ","
	}
	return strings.Join(parts, ", ")
}

// formatItem renders an array element.  Nested arrays get brackets so
// their commas do not split the outer array.
func formatItem(v ir.Value, needsQuote func(string) bool) string {
	if v.Kind == ir.ArrayKind {
		parts := make([]string, len(v.Arr))
		for i := range v.Arr {
			parts[i] = formatItem(v.Arr[i], needsQuote)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	}
	if v.Kind == ir.StringKind {
		return quoteIf(v.Str, needsQuote)
	}
	return formatValue(v)
}

// formatCell renders a table cell.  Booleans and null use the display
// symbols the table style is built around.
func formatCell(v ir.Value) string {
	switch v.Kind {
	case ir.BoolKind:
		if v.Bool {
			return "✓"
		}
		return "✗"
	case ir.NullKind:
		return "—"
	case ir.ArrayKind:
		return formatArray(v.Arr, needsCellQuote)
	case ir.StringKind:
		return quoteIf(v.Str, needsCellQuote)
	default:
		return formatValue(v)
	}
}

func quoteIf(s string, needsQuote func(string) bool) string {
	if needsQuote(s) {
		return strconv.Quote(s)
	}
	return s
}

func needsValueQuote(s string) bool {
	switch s {
	case "", "true", "false", "null", "[]":
		return true
	}
	switch s[0] {
	case '^', '"', '[', '#':
		return true
	}
	if strings.ContainsAny(s, ",\n") {
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

func needsCellQuote(s string) bool {
	switch s {
	case "✓", "✗", "—":
		return true
	}
	if strings.ContainsAny(s, "|│") {
		return true
	}
	if isDashRun(s) {
		return true
	}
	return needsValueQuote(s)
}

// isDashRun reports a non-empty all-dash string, which unquoted would
// read back as a table separator line.
func isDashRun(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r != '-' && r != '─' {
			return false
		}
	}
	return true
}

// parseValue reads a config value: quoted strings, numbers,
// true/false/null, ^ref, and unbracketed comma-separated arrays.
func parseValue(s string, ln int) (ir.Value, error) {
	s = strings.TrimSpace(s)
	switch s {
	case "":
		return ir.FromString(""), nil
	case "true":
		return ir.FromBool(true), nil
	case "false":
		return ir.FromBool(false), nil
	case "null":
		return ir.Null(), nil
	case "[]":
		return ir.FromArray(), nil
	}
	if strings.HasPrefix(s, "^") {
		return ir.FromRef(s[1:]), nil
	}
	if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
		return parseItems(s[1:len(s)-1], ln)
	}
	if parts := splitTop(s, ','); len(parts) > 1 {
		return parseParts(parts, ln)
	}
	if strings.HasPrefix(s, `"`) {
		u, err := strconv.Unquote(s)
		if err != nil {
			return ir.Value{}, fmt.Errorf("%w: %q at line %d", ErrValue, s, ln)
		}
		return ir.FromString(u), nil
	}
	if v, ok := ir.ParseNumber(s); ok {
		return v, nil
	}
	return ir.FromString(s), nil
}

// parseCell reads a table cell, which additionally understands the
// display symbols for booleans and null.
func parseCell(s string, ln int) (ir.Value, error) {
	switch strings.TrimSpace(s) {
	case "✓":
		return ir.FromBool(true), nil
	case "✗":
		return ir.FromBool(false), nil
	case "—":
		return ir.Null(), nil
	}
	return parseValue(s, ln)
}

func parseItems(inner string, ln int) (ir.Value, error) {
	inner = strings.TrimSpace(inner)
	if inner == "" {
		return ir.FromArray(), nil
	}
	return parseParts(splitTop(inner, ','), ln)
}

func parseParts(parts []string, ln int) (ir.Value, error) {
	// A trailing comma marks a deliberate array; drop the empty tail.
	if len(parts) > 1 && strings.TrimSpace(parts[len(parts)-1]) == "" {
		parts = parts[:len(parts)-1]
	}
	items := make([]ir.Value, len(parts))
	for i, p := range parts {
		v, err := parseValue(p, ln)
		if err != nil {
			return ir.Value{}, err
		}
		items[i] = v
	}
	return ir.FromArray(items...), nil
}

// splitTop splits on sep outside quoted regions and outside brackets.
func splitTop(s string, sep rune) []string {
	var (
		res     []string
		cur     strings.Builder
		depth   int
		quoted  bool
		escaped bool
	)
	for _, r := range s {
		switch {
		case escaped:
			cur.WriteRune(r)
			escaped = false
		case r == '\\' && quoted:
			cur.WriteRune(r)
			escaped = true
		case r == '"':
			quoted = !quoted
			cur.WriteRune(r)
		case quoted:
			cur.WriteRune(r)
		case r == '[':
			depth++
			cur.WriteRune(r)
		case r == ']':
			depth--
			cur.WriteRune(r)
		case r == sep && depth == 0:
			res = append(res, cur.String())
			cur.Reset()
		default:
			cur.WriteRune(r)
		}
	}
	return append(res, cur.String())
}
