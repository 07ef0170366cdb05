// Package docdiff produces textual diffs between two Documents over
// their compact renderings, which are deterministic line-oriented
// text and so diff cleanly.
package docdiff

import (
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/najmus-sakib-hossain/dx-go/compact"
	"github.com/najmus-sakib-hossain/dx-go/ir"
)

// Diff returns the edits turning from into to.
func Diff(from, to *ir.Document) []diffpatch.Diff {
	a := compact.Serialize(from) + "\n"
	b := compact.Serialize(to) + "\n"
	cfg := diffpatch.New()
	// Line-mode diff: cheaper and reads better for row edits.
	ca, cb, lines := cfg.DiffLinesToChars(a, b)
	diffs := cfg.DiffMain(ca, cb, false)
	return cfg.DiffCharsToLines(diffs, lines)
}

// Pretty renders a diff with ANSI colors for terminal display.
func Pretty(from, to *ir.Document) string {
	cfg := diffpatch.New()
	return cfg.DiffPrettyText(Diff(from, to))
}

// Unified renders a diff in a +/- line prefix form.
func Unified(from, to *ir.Document) string {
	var out []byte
	for _, d := range Diff(from, to) {
		prefix := "  "
		switch d.Type {
		case diffpatch.DiffInsert:
			prefix = "+ "
		case diffpatch.DiffDelete:
			prefix = "- "
		}
		for _, line := range splitKeepNonEmpty(d.Text) {
			out = append(out, prefix...)
			out = append(out, line...)
			out = append(out, '\n')
		}
	}
	return string(out)
}

// Changed reports whether the two documents differ structurally.
func Changed(from, to *ir.Document) bool {
	return !from.Equal(to)
}

func splitKeepNonEmpty(text string) []string {
	var res []string
	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			if i > start {
				res = append(res, text[start:i])
			}
			start = i + 1
		}
	}
	if start < len(text) {
		res = append(res, text[start:])
	}
	return res
}
