package compact

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/najmus-sakib-hossain/dx-go/ir"
)

func TestParseContext(t *testing.T) {
	doc, err := Parse("v|1.0.0\nnm|demo\nac|+")
	if err != nil {
		t.Fatal(err)
	}
	want := []ir.Entry{
		{Key: "version", Value: ir.FromString("1.0.0")},
		{Key: "name", Value: ir.FromString("demo")},
		{Key: "active", Value: ir.FromBool(true)},
	}
	if d := cmp.Diff(want, doc.Context); d != "" {
		t.Errorf("context mismatch (-want +got):\n%s", d)
	}
}

func TestParseLegacyContextBlock(t *testing.T) {
	doc, err := Parse("#c:nm|demo;vr|2")
	if err != nil {
		t.Fatal(err)
	}
	if got, ok := doc.Get("name"); !ok || !got.Equal(ir.FromString("demo")) {
		t.Errorf("name = %v, %v", got, ok)
	}
	if got, ok := doc.Get("version"); !ok || !got.Equal(ir.FromInt(2)) {
		t.Errorf("version = %v, %v", got, ok)
	}
}

func TestParseSection(t *testing.T) {
	in := strings.Join([]string{
		"#u(id|nm|em|ac)",
		"1|Alice|^A|+",
		"2|Bob|~|-",
	}, "\n")
	doc, err := Parse(in)
	if err != nil {
		t.Fatal(err)
	}
	sec := doc.Section('u')
	if sec == nil {
		t.Fatal("section u missing")
	}
	wantSchema := []string{"id", "name", "email", "active"}
	if d := cmp.Diff(wantSchema, sec.Schema); d != "" {
		t.Errorf("schema mismatch (-want +got):\n%s", d)
	}
	wantRows := [][]ir.Value{
		{ir.FromInt(1), ir.FromString("Alice"), ir.FromRef("A"), ir.FromBool(true)},
		{ir.FromInt(2), ir.FromString("Bob"), ir.Null(), ir.FromBool(false)},
	}
	if d := cmp.Diff(wantRows, sec.Rows); d != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", d)
	}
}

func TestParseValues(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want ir.Value
	}{
		{"+", ir.FromBool(true)},
		{"-", ir.FromBool(false)},
		{"~", ir.Null()},
		{"42", ir.FromInt(42)},
		{"-7", ir.FromInt(-7)},
		{"3.14", ir.FromFloat(3.14)},
		{"^B", ir.FromRef("B")},
		{"*1,2,3", ir.FromArray(ir.FromInt(1), ir.FromInt(2), ir.FromInt(3))},
		{"*", ir.FromArray()},
		{`"ok|fine"`, ir.FromString("ok|fine")},
		{`"42"`, ir.FromString("42")},
		{"plain", ir.FromString("plain")},
	} {
		got, err := parseValue(tc.in, 1)
		if err != nil {
			t.Errorf("parseValue(%q): %v", tc.in, err)
			continue
		}
		if !got.Equal(tc.want) {
			t.Errorf("parseValue(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	for _, tc := range []struct {
		name string
		in   string
		want error
	}{
		{"bare context", "just a key", ErrContext},
		{"arity short", "#u(id|nm)\n1", ErrSchemaMismatch},
		{"arity long", "#u(id)\n1|2", ErrSchemaMismatch},
		{"empty schema", "#u()", ErrSectionHeader},
		{"bad quote", `nm|"unterminated`, ErrValue},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.in)
			if !errors.Is(err, tc.want) {
				t.Errorf("Parse(%q) err = %v, want %v", tc.in, err, tc.want)
			}
			if !errors.Is(err, ErrParse) {
				t.Errorf("Parse(%q) err = %v, want it to wrap ErrParse", tc.in, err)
			}
		})
	}
}

func TestUnknownSigilIsComment(t *testing.T) {
	doc, err := Parse("# just a note\n#!shebang-ish\nnm|demo")
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Context) != 1 {
		t.Errorf("context len = %d, want 1", len(doc.Context))
	}
}

func TestRoundTrip(t *testing.T) {
	doc := ir.NewDocument()
	doc.Set("name", ir.FromString("inventory"))
	doc.Set("version", ir.FromString("1.0.0"))
	doc.Set("count", ir.FromInt(3))
	doc.Set("ratio", ir.FromFloat(2.0))
	doc.Set("tags", ir.FromArray(ir.FromString("a"), ir.FromString("b")))
	doc.Set("matrix", ir.FromArray(
		ir.FromInt(1),
		ir.FromArray(ir.FromInt(2), ir.FromInt(3)),
		ir.FromArray(),
	))
	doc.SetRef("A", "warehouse-east")
	doc.AddSection(ir.Section{
		ID:     'i',
		Schema: []string{"id", "name", "status", "location"},
		Rows: [][]ir.Value{
			{ir.FromInt(1), ir.FromString("bolt"), ir.FromBool(true), ir.FromRef("A")},
			{ir.FromInt(2), ir.FromString("nut, large"), ir.Null(), ir.FromString("42")},
		},
	})

	text := Serialize(doc)
	back, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse(Serialize(doc)): %v\n%s", err, text)
	}
	if !back.Equal(doc) {
		t.Errorf("round trip changed document\ntext:\n%s\ngot:  %+v\nwant: %+v", text, back, doc)
	}
}

func TestNonLetterSectionIDRoundTrip(t *testing.T) {
	doc := ir.NewDocument()
	doc.AddSection(ir.Section{
		ID:     '1',
		Schema: []string{"id"},
		Rows:   [][]ir.Value{{ir.FromInt(7)}},
	})
	if err := doc.Validate(); err != nil {
		t.Fatal(err)
	}

	text := Serialize(doc)
	if want := "#1(id)"; !strings.Contains(text, want) {
		t.Errorf("Serialize = %q, want it to contain %q", text, want)
	}
	back, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse(Serialize(doc)): %v\n%s", err, text)
	}
	if !back.Equal(doc) {
		t.Errorf("round trip changed document\ntext:\n%s", text)
	}
}

func TestNestedArrayRoundTrip(t *testing.T) {
	doc := ir.NewDocument()
	doc.Set("nested", ir.FromArray(
		ir.FromInt(1),
		ir.FromArray(ir.FromInt(2), ir.FromInt(3)),
	))
	doc.Set("deep", ir.FromArray(
		ir.FromArray(ir.FromArray(ir.FromString("x"))),
		ir.FromString("y,z"),
	))

	text := Serialize(doc)
	if want := "nested|*1,[2,3]"; !strings.Contains(text, want) {
		t.Errorf("Serialize = %q, want it to contain %q", text, want)
	}
	back, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse(Serialize(doc)): %v\n%s", err, text)
	}
	if !back.Equal(doc) {
		t.Errorf("round trip changed document\ntext:\n%s\ngot:  %+v\nwant: %+v", text, back, doc)
	}
}

func TestBracketStringStaysString(t *testing.T) {
	doc := ir.NewDocument()
	doc.Set("odd", ir.FromArray(ir.FromString("[not nested]")))
	back, err := Parse(Serialize(doc))
	if err != nil {
		t.Fatal(err)
	}
	if !back.Equal(doc) {
		t.Errorf("bracket-shaped string changed: %+v", back.Context)
	}
}

func TestSerializeAbbreviatesKeys(t *testing.T) {
	doc := ir.NewDocument()
	doc.Set("version", ir.FromString("1.0.0"))
	doc.Set("unmapped_key", ir.FromInt(1))
	got := Serialize(doc)
	want := "vr|1.0.0\nunmapped_key|1"
	if got != want {
		t.Errorf("Serialize = %q, want %q", got, want)
	}
}

func TestSerializeQuoting(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"has|pipe", `"has|pipe"`},
		{"has,comma", `"has,comma"`},
		{"42", `"42"`},
		{"+", `"+"`},
		{"", `""`},
		{"^caret", `"^caret"`},
		{" padded ", `" padded "`},
	} {
		got := serializeValue(ir.FromString(tc.in), nil, newOptions(nil))
		if got != tc.want {
			t.Errorf("serializeValue(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestAutoRefs(t *testing.T) {
	doc := ir.NewDocument()
	doc.AddSection(ir.Section{
		ID:     'u',
		Schema: []string{"name", "department"},
		Rows: [][]ir.Value{
			{ir.FromString("Alice"), ir.FromString("engineering")},
			{ir.FromString("Bob"), ir.FromString("engineering")},
			{ir.FromString("Cara"), ir.FromString("sales")},
		},
	})

	text := Serialize(doc, AutoRefs(true))
	if !strings.Contains(text, "#:A|engineering") {
		t.Fatalf("expected hoisted ref, got:\n%s", text)
	}
	if strings.Count(text, "engineering") != 1 {
		t.Errorf("expected single occurrence after hoisting, got:\n%s", text)
	}

	back, err := Parse(text)
	if err != nil {
		t.Fatal(err)
	}
	resolved, err := ir.ResolveRefs(back)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(doc.Sections, resolved.Sections); d != "" {
		t.Errorf("auto-ref round trip changed rows (-want +got):\n%s", d)
	}
}

func TestRefKey(t *testing.T) {
	for _, tc := range []struct {
		n    int
		want string
	}{
		{0, "A"}, {25, "Z"}, {26, "AA"}, {27, "AB"}, {51, "AZ"}, {52, "BA"},
	} {
		if got := refKey(tc.n); got != tc.want {
			t.Errorf("refKey(%d) = %q, want %q", tc.n, got, tc.want)
		}
	}
}
