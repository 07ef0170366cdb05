package readable

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/najmus-sakib-hossain/dx-go/ir"
)

// Format renders a Document to the readable surface.  Output is
// deterministic for a given Document and configuration, and parses
// back to a structurally equal Document.
func Format(doc *ir.Document, opts ...Option) string {
	o := newOptions(opts)
	var b strings.Builder

	if len(doc.Context) > 0 {
		banner(&b, "Configuration", o)
		writeBlockHeader(&b, "config", o)
		writeContext(&b, doc.Context, o)
		b.WriteByte('\n')
	}
	if len(doc.Refs) > 0 && o.refs {
		banner(&b, "References", o)
		writeBlockHeader(&b, "references", o)
		writeRefs(&b, doc.Refs, o)
		b.WriteByte('\n')
	}
	for i := range doc.Sections {
		sec := &doc.Sections[i]
		name := o.dict.SectionName(sec.ID)
		banner(&b, name, o)
		writeBlockHeader(&b, name, o)
		writeTable(&b, sec, o)
		if o.summaries && len(sec.Rows) > 0 {
			b.WriteByte('\n')
			writeSummary(&b, sec, o)
		}
		b.WriteByte('\n')
	}

	out := strings.TrimRight(b.String(), "\n")
	if out == "" {
		return ""
	}
	return out + "\n"
}

func banner(b *strings.Builder, title string, o *options) {
	if !o.banners {
		return
	}
	width := o.maxWidth
	if width <= 0 || width > 80 {
		width = 80
	}
	if width < 20 {
		width = 20
	}
	ch := "═"
	if o.style != StyleUnicode {
		ch = "="
	}
	upper := strings.ToUpper(title)
	pad := (width - utf8.RuneCountInString(upper)) / 2
	if pad < 0 {
		pad = 0
	}
	bar := "# " + strings.Repeat(ch, width)
	for _, line := range []string{bar, "# " + strings.Repeat(" ", pad) + upper, bar} {
		b.WriteString(paint(o, 0, CommentColor, line))
		b.WriteByte('\n')
	}
}

func writeBlockHeader(b *strings.Builder, name string, o *options) {
	b.WriteString(paint(o, 0, HeaderColor, "["+name+"]"))
	b.WriteByte('\n')
}

func writeContext(b *strings.Builder, entries []ir.Entry, o *options) {
	keys := make([]string, len(entries))
	maxLen := 0
	for i, e := range entries {
		keys[i] = e.Key
		if !o.expandKeys {
			keys[i] = o.dict.Compress(e.Key)
		}
		if n := utf8.RuneCountInString(keys[i]); n > maxLen {
			maxLen = n
		}
	}
	for i, e := range entries {
		pad := strings.Repeat(" ", maxLen-utf8.RuneCountInString(keys[i]))
		fmt.Fprintf(b, "%s%s = %s\n",
			paint(o, 0, KeyColor, keys[i]), pad,
			paint(o, e.Value.Kind, ValueColor, formatValue(e.Value)))
	}
}

func writeRefs(b *strings.Builder, refs []ir.Ref, o *options) {
	maxLen := 0
	for _, r := range refs {
		if n := utf8.RuneCountInString(r.Key); n > maxLen {
			maxLen = n
		}
	}
	for _, r := range refs {
		pad := strings.Repeat(" ", maxLen-utf8.RuneCountInString(r.Key))
		fmt.Fprintf(b, "%s%s = %s\n",
			paint(o, 0, KeyColor, r.Key), pad,
			paint(o, ir.StringKind, ValueColor, strconv.Quote(r.Value)))
	}
}

func writeTable(b *strings.Builder, sec *ir.Section, o *options) {
	cols := len(sec.Schema)
	if cols == 0 {
		return
	}
	g := o.style.glyphs()

	headers := make([]string, cols)
	widths := make([]int, cols)
	for i, c := range sec.Schema {
		headers[i] = o.dict.Expand(c)
		if !o.expandKeys {
			headers[i] = o.dict.Compress(c)
		}
		widths[i] = utf8.RuneCountInString(headers[i])
	}
	cells := make([][]string, len(sec.Rows))
	for r, row := range sec.Rows {
		cells[r] = make([]string, cols)
		for i, v := range row {
			s := formatCell(v)
			cells[r][i] = s
			if n := utf8.RuneCountInString(s); n > widths[i] {
				widths[i] = n
			}
		}
	}
	for i := range widths {
		if widths[i] < 3 {
			widths[i] = 3
		}
	}
	chunks := chunkColumns(widths, o.maxWidth)

	if g.hasTop {
		writeBorder(b, g.topL, g.topSep, g.topR, g.h, widths, chunks, o)
	}
	writeCells(b, headers, nil, widths, chunks, o)
	writeBorder(b, g.midL, g.midSep, g.midR, g.h, widths, chunks, o)
	for r := range sec.Rows {
		writeCells(b, cells[r], sec.Rows[r], widths, chunks, o)
	}
	if g.hasBottom {
		writeBorder(b, g.botL, g.botSep, g.botR, g.h, widths, chunks, o)
	}
}

func writeBorder(b *strings.Builder, l, sep, r, h string, widths []int, chunks []chunk, o *options) {
	for _, ch := range chunks {
		var line strings.Builder
		line.WriteString(l)
		for i := ch.lo; i < ch.hi; i++ {
			line.WriteString(strings.Repeat(h, widths[i]+2))
			if i < ch.hi-1 {
				line.WriteString(sep)
			} else {
				line.WriteString(r)
			}
		}
		b.WriteString(paint(o, 0, BorderColor, line.String()))
		b.WriteByte('\n')
	}
}

// writeCells emits one logical row (or the header, when row is nil)
// across its chunks, marking every non-final physical line.
func writeCells(b *strings.Builder, texts []string, row []ir.Value, widths []int, chunks []chunk, o *options) {
	g := o.style.glyphs()
	border := paint(o, 0, BorderColor, g.v)
	for ci, ch := range chunks {
		b.WriteString(border)
		for i := ch.lo; i < ch.hi; i++ {
			cell := padCell(texts[i], widths[i], cellAlign(row, i))
			if row == nil {
				cell = paint(o, 0, HeaderColor, cell)
			} else {
				cell = paint(o, row[i].Kind, ValueColor, cell)
			}
			b.WriteString(cell)
			b.WriteString(border)
		}
		if ci < len(chunks)-1 {
			b.WriteString(contMark)
		}
		b.WriteByte('\n')
	}
}

type align int

const (
	alignLeft align = iota
	alignRight
	alignCenter
)

func cellAlign(row []ir.Value, i int) align {
	if row == nil {
		return alignLeft
	}
	switch row[i].Kind {
	case ir.IntKind, ir.FloatKind:
		return alignRight
	case ir.BoolKind, ir.NullKind:
		return alignCenter
	}
	return alignLeft
}

func padCell(s string, width int, a align) string {
	pad := width - utf8.RuneCountInString(s)
	if pad < 0 {
		pad = 0
	}
	switch a {
	case alignRight:
		return " " + strings.Repeat(" ", pad) + s + " "
	case alignCenter:
		left := pad / 2
		return " " + strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left) + " "
	default:
		return " " + s + strings.Repeat(" ", pad) + " "
	}
}

func writeSummary(b *strings.Builder, sec *ir.Section, o *options) {
	parts := []string{fmt.Sprintf("Total: %d rows", len(sec.Rows))}
	for i, col := range sec.Schema {
		var (
			sum    float64
			saw    bool
			allInt = true
		)
		for _, row := range sec.Rows {
			switch row[i].Kind {
			case ir.IntKind:
				sum += float64(row[i].Int)
				saw = true
			case ir.FloatKind:
				sum += row[i].Float
				saw = true
				allInt = false
			}
		}
		if !saw {
			continue
		}
		name := o.dict.Expand(col)
		if !o.expandKeys {
			name = o.dict.Compress(col)
		}
		if allInt {
			parts = append(parts, fmt.Sprintf("%s sum: %d", name, int64(sum)))
		} else {
			parts = append(parts, fmt.Sprintf("%s sum: %.2f", name, sum))
		}
	}
	b.WriteString(paint(o, 0, SummaryColor, strings.Join(parts, " | ")))
	b.WriteByte('\n')
}
