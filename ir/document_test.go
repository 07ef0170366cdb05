package ir

import (
	"errors"
	"testing"
)

func sample() *Document {
	d := NewDocument()
	d.Set("name", FromString("demo"))
	d.Set("version", FromString("1.0.0"))
	d.SetRef("A", "warehouse-east")
	d.AddSection(Section{
		ID:     'u',
		Schema: []string{"id", "name"},
		Rows: [][]Value{
			{FromInt(1), FromString("Alice")},
			{FromInt(2), FromRef("A")},
		},
	})
	return d
}

func TestEqualIgnoresContextOrder(t *testing.T) {
	a, b := sample(), sample()
	b.Context[0], b.Context[1] = b.Context[1], b.Context[0]
	if !a.Equal(b) {
		t.Error("documents with reordered context should be equal")
	}
}

func TestEqualRowOrderSignificant(t *testing.T) {
	a, b := sample(), sample()
	sec := b.Section('u')
	sec.Rows[0], sec.Rows[1] = sec.Rows[1], sec.Rows[0]
	if a.Equal(b) {
		t.Error("documents with reordered rows should differ")
	}
}

func TestSetReplacesInPlace(t *testing.T) {
	d := sample()
	d.Set("name", FromString("other"))
	if len(d.Context) != 2 {
		t.Fatalf("context entries = %d, want 2", len(d.Context))
	}
	if v, _ := d.Get("name"); !v.Equal(FromString("other")) {
		t.Errorf("name = %v", v)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	a := sample()
	b := a.Clone()
	b.Set("name", FromString("changed"))
	b.Section('u').Rows[0][1] = FromString("Mallory")
	if v, _ := a.Get("name"); !v.Equal(FromString("demo")) {
		t.Error("clone mutation leaked into context")
	}
	if !a.Section('u').Rows[0][1].Equal(FromString("Alice")) {
		t.Error("clone mutation leaked into rows")
	}
}

func TestValidate(t *testing.T) {
	if err := sample().Validate(); err != nil {
		t.Fatalf("valid document: %v", err)
	}
	tests := []struct {
		name    string
		corrupt func(*Document)
	}{
		{"duplicate context key", func(d *Document) {
			d.Context = append(d.Context, Entry{Key: "name", Value: FromString("x")})
		}},
		{"duplicate ref key", func(d *Document) {
			d.Refs = append(d.Refs, Ref{Key: "A", Value: "y"})
		}},
		{"duplicate section id", func(d *Document) {
			d.Sections = append(d.Sections, Section{ID: 'u', Schema: []string{"id"}})
		}},
		{"empty schema", func(d *Document) {
			d.Sections = append(d.Sections, Section{ID: 'q'})
		}},
		{"whitespace section id", func(d *Document) {
			d.Sections = append(d.Sections, Section{ID: ' ', Schema: []string{"id"}})
		}},
		{"paren section id", func(d *Document) {
			d.Sections = append(d.Sections, Section{ID: '(', Schema: []string{"id"}})
		}},
		{"row arity", func(d *Document) {
			sec := d.Section('u')
			sec.Rows = append(sec.Rows, []Value{FromInt(3)})
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := sample()
			tc.corrupt(d)
			if err := d.Validate(); !errors.Is(err, ErrValidation) {
				t.Errorf("err = %v, want ErrValidation", err)
			}
		})
	}
}

func TestResolveRefs(t *testing.T) {
	d := sample()
	d.Set("locations", FromArray(FromRef("A"), FromString("remote")))
	res, err := ResolveRefs(d)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Section('u').Rows[1][1].Equal(FromString("warehouse-east")) {
		t.Errorf("row ref not resolved: %v", res.Section('u').Rows[1][1])
	}
	v, _ := res.Get("locations")
	if !v.Equal(FromArray(FromString("warehouse-east"), FromString("remote"))) {
		t.Errorf("array ref not resolved: %v", v)
	}
	// input untouched
	if !d.Section('u').Rows[1][1].Equal(FromRef("A")) {
		t.Error("input mutated")
	}
}

func TestResolveRefsUndefined(t *testing.T) {
	d := sample()
	d.Set("bad", FromRef("Z"))
	if _, err := ResolveRefs(d); !errors.Is(err, ErrUndefinedRef) {
		t.Errorf("err = %v, want ErrUndefinedRef", err)
	}
}
