package readable

import "strings"

type lineKind int

const (
	lineBlank lineKind = iota
	lineComment
	lineSectionHeader
	lineTableBorder
	lineTableCells
	lineSummary
	lineKeyValue
	lineOther
)

// classify tags a trimmed line before dispatch.  Decorative banner
// lines fall under lineComment; anything '#'-prefixed does, so a
// malformed sigil degrades to a comment rather than an error.
func classify(line string) lineKind {
	switch {
	case line == "":
		return lineBlank
	case strings.HasPrefix(line, "#"):
		return lineComment
	case strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]"):
		return lineSectionHeader
	case strings.HasPrefix(line, "┌"),
		strings.HasPrefix(line, "├"),
		strings.HasPrefix(line, "└"),
		strings.HasPrefix(line, "+"):
		return lineTableBorder
	case strings.HasPrefix(line, "│"), strings.HasPrefix(line, "|"):
		return lineTableCells
	case strings.HasPrefix(line, "Total:"):
		return lineSummary
	case strings.Contains(line, "="):
		return lineKeyValue
	}
	return lineOther
}
