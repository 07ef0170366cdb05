package patch

import (
	"testing"

	"github.com/najmus-sakib-hossain/dx-go/ir"
)

func baseDoc() *ir.Document {
	doc := ir.NewDocument()
	doc.Set("name", ir.FromString("demo"))
	doc.Set("version", ir.FromString("1.0.0"))
	doc.AddSection(ir.Section{
		ID:     'u',
		Schema: []string{"id", "name"},
		Rows:   [][]ir.Value{{ir.FromInt(1), ir.FromString("Alice")}},
	})
	return doc
}

func TestApplyReplacesContextValue(t *testing.T) {
	doc := baseDoc()
	out, err := Apply(doc, []byte(`[{"op": "replace", "path": "/context/version", "value": "2.0.0"}]`))
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := out.Get("version"); !v.Equal(ir.FromString("2.0.0")) {
		t.Errorf("version = %v", v)
	}
	// input untouched
	if v, _ := doc.Get("version"); !v.Equal(ir.FromString("1.0.0")) {
		t.Errorf("input mutated: version = %v", v)
	}
}

func TestApplyAddsRow(t *testing.T) {
	doc := baseDoc()
	out, err := Apply(doc, []byte(`[{"op": "add", "path": "/sections/u/rows/-", "value": [2, "Bob"]}]`))
	if err != nil {
		t.Fatal(err)
	}
	sec := out.Section('u')
	if len(sec.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(sec.Rows))
	}
	if !sec.Rows[1][1].Equal(ir.FromString("Bob")) {
		t.Errorf("row = %v", sec.Rows[1])
	}
}

func TestApplyRejectsArityBreak(t *testing.T) {
	doc := baseDoc()
	_, err := Apply(doc, []byte(`[{"op": "add", "path": "/sections/u/rows/-", "value": [2]}]`))
	if err == nil {
		t.Error("expected validation error for short row")
	}
}

func TestMerge(t *testing.T) {
	doc := baseDoc()
	out, err := Merge(doc, []byte(`{"context": {"name": "renamed", "owner": "team-x"}}`))
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := out.Get("name"); !v.Equal(ir.FromString("renamed")) {
		t.Errorf("name = %v", v)
	}
	if v, ok := out.Get("owner"); !ok || !v.Equal(ir.FromString("team-x")) {
		t.Errorf("owner = %v, %v", v, ok)
	}
}

func TestApplyBadPatch(t *testing.T) {
	if _, err := Apply(baseDoc(), []byte(`not json`)); err == nil {
		t.Error("expected decode error")
	}
}
