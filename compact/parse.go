package compact

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/najmus-sakib-hossain/dx-go/ir"
)

// Parse reads the compact surface into a Document.  Keys are expanded
// to full form as they are read; the Document never stores an
// abbreviation.
func Parse(text string, opts ...Option) (*ir.Document, error) {
	o := newOptions(opts)
	doc := ir.NewDocument()
	var open *ir.Section

	for i, line := range strings.Split(text, "\n") {
		ln := i + 1
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		switch classify(line) {
		case lineComment:
			continue
		case lineContextBlock:
			if err := parseContextBlock(doc, line[len("#c:"):], ln, o); err != nil {
				return nil, err
			}
			open = nil
		case lineRef:
			key, val, err := parseRef(line[len("#:"):], ln)
			if err != nil {
				return nil, err
			}
			doc.SetRef(key, val)
		case lineSectionHeader:
			sec, err := parseSectionHeader(line, ln, o)
			if err != nil {
				return nil, err
			}
			doc.AddSection(sec)
			open = doc.Section(sec.ID)
		case lineRow:
			if open != nil {
				row, err := parseRow(line, len(open.Schema), ln)
				if err != nil {
					return nil, err
				}
				open.Rows = append(open.Rows, row)
				continue
			}
			key, val, err := parseContextPair(line, ln)
			if err != nil {
				return nil, err
			}
			doc.Set(o.dict.Expand(key), val)
		}
	}
	return doc, nil
}

type lineKind int

const (
	lineComment lineKind = iota
	lineContextBlock
	lineRef
	lineSectionHeader
	lineRow
)

// classify decides what a non-blank line is.  Anything starting with
// '#' that is not a recognized sigil degrades to a comment.
func classify(line string) lineKind {
	if line[0] != '#' {
		return lineRow
	}
	switch {
	case strings.HasPrefix(line, "#c:"):
		return lineContextBlock
	case strings.HasPrefix(line, "#:"):
		return lineRef
	}
	rs := []rune(line[1:])
	if len(rs) > 1 && rs[1] == '(' && !unicode.IsSpace(rs[0]) && strings.ContainsRune(line, ')') {
		return lineSectionHeader
	}
	return lineComment
}

// parseContextBlock handles the legacy "#c:k|v;k|v" form.
func parseContextBlock(doc *ir.Document, content string, ln int, o *options) error {
	for _, pair := range strings.Split(content, ";") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		key, val, err := parseContextPair(pair, ln)
		if err != nil {
			return err
		}
		doc.Set(o.dict.Expand(key), val)
	}
	return nil
}

func parseContextPair(line string, ln int) (string, ir.Value, error) {
	key, rest, ok := strings.Cut(line, "|")
	if !ok {
		return "", ir.Value{}, fmt.Errorf("%w: expected key|value at line %d: %q", ErrContext, ln, line)
	}
	val, err := parseValue(strings.TrimSpace(rest), ln)
	if err != nil {
		return "", ir.Value{}, err
	}
	return strings.TrimSpace(key), val, nil
}

func parseRef(content string, ln int) (string, string, error) {
	key, val, ok := strings.Cut(content, "|")
	if !ok {
		return "", "", fmt.Errorf("%w: expected key|value at line %d: %q", ErrReference, ln, content)
	}
	return strings.TrimSpace(key), strings.TrimSpace(val), nil
}

func parseSectionHeader(line string, ln int, o *options) (ir.Section, error) {
	id := []rune(line[1:])[0]
	start := strings.IndexByte(line, '(')
	end := strings.IndexByte(line, ')')
	if start < 0 || end < 0 || start >= end {
		return ir.Section{}, fmt.Errorf("%w: bad parentheses at line %d: %q", ErrSectionHeader, ln, line)
	}
	var schema []string
	for _, col := range strings.Split(line[start+1:end], "|") {
		col = strings.TrimSpace(col)
		if col == "" {
			continue
		}
		schema = append(schema, o.dict.Expand(col))
	}
	if len(schema) == 0 {
		return ir.Section{}, fmt.Errorf("%w: empty schema for section %q at line %d", ErrSectionHeader, id, ln)
	}
	return ir.Section{ID: id, Schema: schema}, nil
}

func parseRow(line string, arity, ln int) ([]ir.Value, error) {
	cells := splitCells(line, '|')
	if len(cells) != arity {
		return nil, fmt.Errorf("%w: expected %d values, got %d at line %d",
			ErrSchemaMismatch, arity, len(cells), ln)
	}
	row := make([]ir.Value, len(cells))
	for i, cell := range cells {
		v, err := parseValue(strings.TrimSpace(cell), ln)
		if err != nil {
			return nil, err
		}
		row[i] = v
	}
	return row, nil
}

// splitCells splits on sep outside of double-quoted regions.
func splitCells(line string, sep byte) []string {
	var (
		res     []string
		start   int
		quoted  bool
		escaped bool
	)
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case escaped:
			escaped = false
		case c == '\\' && quoted:
			escaped = true
		case c == '"':
			quoted = !quoted
		case c == sep && !quoted:
			res = append(res, line[start:i])
			start = i + 1
		}
	}
	return append(res, line[start:])
}

func parseValue(s string, ln int) (ir.Value, error) {
	switch {
	case s == "+":
		return ir.FromBool(true), nil
	case s == "-":
		return ir.FromBool(false), nil
	case s == "~":
		return ir.Null(), nil
	}
	if strings.HasPrefix(s, "^") {
		return ir.FromRef(s[1:]), nil
	}
	if strings.HasPrefix(s, "*") {
		return parseArray(s[1:], ln)
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

func parseArray(s string, ln int) (ir.Value, error) {
	if s == "" {
		return ir.FromArray(), nil
	}
	var items []ir.Value
	for _, item := range splitItems(s) {
		v, err := parseItem(strings.TrimSpace(item), ln)
		if err != nil {
			return ir.Value{}, err
		}
		items = append(items, v)
	}
	return ir.FromArray(items...), nil
}

// parseItem reads one array element; a bracketed item is a nested
// array.
func parseItem(s string, ln int) (ir.Value, error) {
	if strings.HasPrefix(s, "[") {
		if !strings.HasSuffix(s, "]") || len(s) < 2 {
			return ir.Value{}, fmt.Errorf("%w: unclosed bracket %q at line %d", ErrValue, s, ln)
		}
		return parseArray(strings.TrimSpace(s[1:len(s)-1]), ln)
	}
	return parseValue(s, ln)
}

// splitItems splits array content on commas outside quoted regions and
// outside bracketed nested arrays.
func splitItems(s string) []string {
	var (
		res     []string
		start   int
		depth   int
		quoted  bool
		escaped bool
	)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case escaped:
			escaped = false
		case c == '\\' && quoted:
			escaped = true
		case c == '"':
			quoted = !quoted
		case quoted:
		case c == '[':
			depth++
		case c == ']':
			depth--
		case c == ',' && depth == 0:
			res = append(res, s[start:i])
			start = i + 1
		}
	}
	return append(res, s[start:])
}
