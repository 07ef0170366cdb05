package readable

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/najmus-sakib-hossain/dx-go/ir"
)

type blockKind int

const (
	blockConfig blockKind = iota
	blockRefs
	blockData
)

type tableLine struct {
	text string
	ln   int
}

// Parse reads the readable surface into a Document.  Section headers
// are accepted as either the full name or the single-character id;
// keys may be abbreviated or full and are stored expanded.
func Parse(text string, opts ...Option) (*ir.Document, error) {
	o := newOptions(opts)
	doc := ir.NewDocument()

	cur := blockConfig
	var curID rune
	var table []tableLine

	flush := func() error {
		if len(table) == 0 {
			return nil
		}
		sec, err := parseSectionTable(curID, table, o)
		table = nil
		if err != nil {
			return err
		}
		if len(sec.Schema) > 0 {
			doc.AddSection(sec)
		}
		return nil
	}

	for i, raw := range strings.Split(text, "\n") {
		ln := i + 1
		line := strings.TrimSpace(raw)
		switch classify(line) {
		case lineBlank, lineComment, lineSummary:
			continue

		case lineSectionHeader:
			if err := flush(); err != nil {
				return nil, err
			}
			name := strings.TrimSpace(line[1 : len(line)-1])
			if name == "" {
				return nil, fmt.Errorf("%w: empty section name at line %d", ErrSectionHeader, ln)
			}
			switch strings.ToLower(name) {
			case "config", "configuration":
				cur = blockConfig
			case "references", "refs":
				cur = blockRefs
			default:
				cur = blockData
				curID = o.dict.SectionID(name)
			}

		case lineKeyValue:
			key, val, err := parseKeyValue(line, ln)
			if err != nil {
				return nil, err
			}
			switch cur {
			case blockConfig:
				doc.Set(o.dict.Expand(key), val)
			case blockRefs:
				if val.Kind != ir.StringKind {
					return nil, fmt.Errorf("%w: reference %q must be a string at line %d", ErrKeyValue, key, ln)
				}
				doc.SetRef(key, val.Str)
			case blockData:
				return nil, fmt.Errorf("%w: key-value line inside a data section at line %d", ErrParse, ln)
			}

		case lineTableBorder, lineTableCells:
			if cur != blockData {
				return nil, fmt.Errorf("%w: table line outside a data section at line %d", ErrParse, ln)
			}
			table = append(table, tableLine{text: line, ln: ln})

		case lineOther:
			if cur == blockData {
				return nil, fmt.Errorf("%w: unexpected content at line %d: %q", ErrParse, ln, line)
			}
			return nil, fmt.Errorf("%w: expected key = value at line %d: %q", ErrKeyValue, ln, line)
		}
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return doc, nil
}

func parseKeyValue(line string, ln int) (string, ir.Value, error) {
	key, rest, _ := strings.Cut(line, "=")
	key = strings.TrimSpace(key)
	if key == "" {
		return "", ir.Value{}, fmt.Errorf("%w: empty key at line %d", ErrKeyValue, ln)
	}
	val, err := parseValue(rest, ln)
	if err != nil {
		return "", ir.Value{}, err
	}
	return key, val, nil
}

// logicalLine is a table line after continuation re-joining: either a
// border (with its column-segment count) or a full row of cells.
type logicalLine struct {
	cells  []string
	ln     int
	border bool
	segs   int
}

func parseSectionTable(id rune, lines []tableLine, o *options) (ir.Section, error) {
	logs, err := joinTableLines(lines)
	if err != nil {
		return ir.Section{}, err
	}

	var header *logicalLine
	var rows []*logicalLine
	for i := range logs {
		if logs[i].border {
			continue
		}
		if header == nil {
			header = &logs[i]
		} else {
			rows = append(rows, &logs[i])
		}
	}
	if header == nil {
		return ir.Section{}, nil
	}

	// The first border group must agree with the header arity.
	segs, counting, done := 0, false, false
	for i := range logs {
		if logs[i].border && !done {
			segs += logs[i].segs
			counting = true
			continue
		}
		if counting {
			done = true
		}
	}
	if counting && segs != len(header.cells) {
		return ir.Section{}, fmt.Errorf("%w: border has %d columns, header has %d, near line %d",
			ErrTable, segs, len(header.cells), header.ln)
	}

	schema := make([]string, len(header.cells))
	for i, c := range header.cells {
		schema[i] = o.dict.Expand(c)
	}
	sec := ir.Section{ID: id, Schema: schema}
	for ri, lg := range rows {
		if len(lg.cells) != len(schema) {
			return ir.Section{}, fmt.Errorf("%w: row %d has %d values, schema has %d, at line %d",
				ErrSchemaMismatch, ri+1, len(lg.cells), len(schema), lg.ln)
		}
		row := make([]ir.Value, len(lg.cells))
		for i, cell := range lg.cells {
			v, err := parseCell(cell, lg.ln)
			if err != nil {
				return ir.Section{}, err
			}
			row[i] = v
		}
		sec.Rows = append(sec.Rows, row)
	}
	return sec, nil
}

// joinTableLines rebuilds logical lines from physical ones: a trailing
// continuation marker splices the next physical line's cells onto the
// current row.  A markdown separator row of dashes counts as a border.
func joinTableLines(lines []tableLine) ([]logicalLine, error) {
	var (
		logs      []logicalLine
		pending   []string
		pendingLn int
	)
	for _, tl := range lines {
		line := tl.text
		if classify(line) == lineTableBorder {
			if len(pending) > 0 {
				return nil, fmt.Errorf("%w: border interrupts a wrapped row at line %d", ErrTable, tl.ln)
			}
			logs = append(logs, logicalLine{border: true, segs: borderSegments(line), ln: tl.ln})
			continue
		}

		cont := strings.HasSuffix(line, contMark)
		if cont {
			line = strings.TrimRight(strings.TrimSuffix(line, contMark), " ")
		}
		sep := '|'
		if strings.HasPrefix(line, "│") {
			sep = '│'
		}
		if !strings.HasSuffix(line, string(sep)) || utf8.RuneCountInString(line) < 2 {
			return nil, fmt.Errorf("%w: mismatched borders at line %d: %q", ErrTable, tl.ln, line)
		}
		inner := strings.TrimSuffix(strings.TrimPrefix(line, string(sep)), string(sep))
		cells := splitTableCells(inner, sep)
		for i := range cells {
			cells[i] = strings.TrimSpace(cells[i])
		}
		if len(pending) == 0 {
			pendingLn = tl.ln
		}
		pending = append(pending, cells...)
		if !cont {
			lg := logicalLine{cells: pending, ln: pendingLn}
			if allDashes(lg.cells) {
				lg.border = true
				lg.segs = len(lg.cells)
				lg.cells = nil
			}
			logs = append(logs, lg)
			pending = nil
		}
	}
	if len(pending) > 0 {
		return nil, fmt.Errorf("%w: wrapped row never completed", ErrTable)
	}
	return logs, nil
}

func borderSegments(line string) int {
	if strings.HasPrefix(line, "+") {
		return strings.Count(line, "+") - 1
	}
	n := strings.Count(line, "┬") + strings.Count(line, "┼") + strings.Count(line, "┴")
	return n + 1
}

func allDashes(cells []string) bool {
	for _, c := range cells {
		if c == "" {
			return false
		}
		for _, r := range c {
			if r != '-' && r != '─' {
				return false
			}
		}
	}
	return len(cells) > 0
}

// splitTableCells splits on the border rune outside quoted regions.
func splitTableCells(inner string, sep rune) []string {
	var (
		res     []string
		cur     strings.Builder
		quoted  bool
		escaped bool
	)
	for _, r := range inner {
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
		case r == sep && !quoted:
			res = append(res, cur.String())
			cur.Reset()
		default:
			cur.WriteRune(r)
		}
	}
	return append(res, cur.String())
}
