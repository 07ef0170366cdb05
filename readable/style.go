package readable

import "fmt"

// TableStyle selects the border character set for data tables.
type TableStyle int

const (
	StyleUnicode TableStyle = iota
	StyleASCII
	StyleMarkdown
)

func (s TableStyle) String() string {
	switch s {
	case StyleUnicode:
		return "unicode"
	case StyleASCII:
		return "ascii"
	case StyleMarkdown:
		return "markdown"
	}
	return fmt.Sprintf("TableStyle(%d)", int(s))
}

// ParseStyle reads a style name as accepted on the command line.
func ParseStyle(s string) (TableStyle, error) {
	switch s {
	case "unicode", "":
		return StyleUnicode, nil
	case "ascii":
		return StyleASCII, nil
	case "markdown", "md":
		return StyleMarkdown, nil
	}
	return 0, fmt.Errorf("unknown table style %q", s)
}

type glyphSet struct {
	topL, topSep, topR string
	midL, midSep, midR string
	botL, botSep, botR string
	h, v               string
	hasTop, hasBottom  bool
}

func (s TableStyle) glyphs() glyphSet {
	switch s {
	case StyleASCII:
		return glyphSet{
			topL: "+", topSep: "+", topR: "+",
			midL: "+", midSep: "+", midR: "+",
			botL: "+", botSep: "+", botR: "+",
			h: "-", v: "|",
			hasTop: true, hasBottom: true,
		}
	case StyleMarkdown:
		return glyphSet{
			midL: "|", midSep: "|", midR: "|",
			h: "-", v: "|",
		}
	default:
		return glyphSet{
			topL: "┌", topSep: "┬", topR: "┐",
			midL: "├", midSep: "┼", midR: "┤",
			botL: "└", botSep: "┴", botR: "┘",
			h: "─", v: "│",
			hasTop: true, hasBottom: true,
		}
	}
}
