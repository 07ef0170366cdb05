// Package query filters section rows with expressions evaluated per
// row, with schema columns bound as variables.  References resolve to
// their string values when the document defines them.
package query

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/najmus-sakib-hossain/dx-go/debug"
	"github.com/najmus-sakib-hossain/dx-go/ir"
)

// Filter returns a copy of the document in which the given section
// keeps only rows the expression evaluates true for.  Column names
// (full form) are in scope per row; _row is the zero-based row index.
func Filter(doc *ir.Document, sectionID rune, expression string) (*ir.Document, error) {
	sec := doc.Section(sectionID)
	if sec == nil {
		return nil, fmt.Errorf("no section %q", sectionID)
	}
	prg, err := Compile(expression)
	if err != nil {
		return nil, err
	}

	res := doc.Clone()
	out := res.Section(sectionID)
	out.Rows = out.Rows[:0]
	for i, row := range sec.Rows {
		keep, err := matchRow(prg, sec, doc, i, row)
		if err != nil {
			return nil, err
		}
		if keep {
			out.Rows = append(out.Rows, cloneRow(row))
		}
	}
	if debug.Query() {
		debug.Logf("query: %q kept %d of %d rows in section %q\n",
			expression, len(out.Rows), len(sec.Rows), string(sectionID))
	}
	return res, nil
}

// Count returns how many rows of a section match the expression.
func Count(doc *ir.Document, sectionID rune, expression string) (int, error) {
	sec := doc.Section(sectionID)
	if sec == nil {
		return 0, fmt.Errorf("no section %q", sectionID)
	}
	prg, err := Compile(expression)
	if err != nil {
		return 0, err
	}
	n := 0
	for i, row := range sec.Rows {
		keep, err := matchRow(prg, sec, doc, i, row)
		if err != nil {
			return 0, err
		}
		if keep {
			n++
		}
	}
	return n, nil
}

// Compile builds a row predicate.  Exposed so callers filtering many
// documents can reuse the program.
func Compile(expression string) (*vm.Program, error) {
	prg, err := expr.Compile(expression, expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", expression, err)
	}
	return prg, nil
}

func matchRow(prg *vm.Program, sec *ir.Section, doc *ir.Document, idx int, row []ir.Value) (bool, error) {
	env := make(map[string]any, len(sec.Schema)+1)
	env["_row"] = idx
	for c, col := range sec.Schema {
		env[col] = valueToAny(row[c], doc)
	}
	res, err := expr.Run(prg, env)
	if err != nil {
		return false, fmt.Errorf("row %d: %w", idx, err)
	}
	keep, ok := res.(bool)
	if !ok {
		return false, fmt.Errorf("row %d: expression returned %T, want bool", idx, res)
	}
	return keep, nil
}

func valueToAny(v ir.Value, doc *ir.Document) any {
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
		if s, ok := doc.GetRef(v.Str); ok {
			return s
		}
		return "^" + v.Str
	case ir.ArrayKind:
		items := make([]any, len(v.Arr))
		for i := range v.Arr {
			items[i] = valueToAny(v.Arr[i], doc)
		}
		return items
	default:
		return nil
	}
}

func cloneRow(row []ir.Value) []ir.Value {
	res := make([]ir.Value, len(row))
	for i := range row {
		res[i] = row[i].Clone()
	}
	return res
}
