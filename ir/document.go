package ir

// Entry is one context key/value pair.  Context keys are always stored
// in full form; abbreviation happens only at parse/format boundaries.
type Entry struct {
	Key   string
	Value Value
}

// Ref is one named reference definition.  Values elsewhere in the
// Document point at a Ref by key (RefKind), never by embedding.
type Ref struct {
	Key   string
	Value string
}

// Section is a homogeneous table.  Schema order defines row tuple
// positions; every row must have exactly len(Schema) values.
type Section struct {
	ID     rune
	Schema []string
	Rows   [][]Value
}

// Document is the canonical IR every format converts to and from.
// Entry order is preserved for output stability but is irrelevant to
// structural equality.
type Document struct {
	Context  []Entry
	Refs     []Ref
	Sections []Section
}

func NewDocument() *Document {
	return &Document{}
}

func (d *Document) IsEmpty() bool {
	return len(d.Context) == 0 && len(d.Refs) == 0 && len(d.Sections) == 0
}

// Get returns the context value for key, if present.
func (d *Document) Get(key string) (Value, bool) {
	for i := range d.Context {
		if d.Context[i].Key == key {
			return d.Context[i].Value, true
		}
	}
	return Value{}, false
}

// Set replaces the context value for key, appending if absent.
func (d *Document) Set(key string, v Value) {
	for i := range d.Context {
		if d.Context[i].Key == key {
			d.Context[i].Value = v
			return
		}
	}
	d.Context = append(d.Context, Entry{Key: key, Value: v})
}

// GetRef returns the reference value for key, if present.
func (d *Document) GetRef(key string) (string, bool) {
	for i := range d.Refs {
		if d.Refs[i].Key == key {
			return d.Refs[i].Value, true
		}
	}
	return "", false
}

// SetRef replaces the reference value for key, appending if absent.
func (d *Document) SetRef(key, value string) {
	for i := range d.Refs {
		if d.Refs[i].Key == key {
			d.Refs[i].Value = value
			return
		}
	}
	d.Refs = append(d.Refs, Ref{Key: key, Value: value})
}

// Section returns the section with the given id, or nil.
func (d *Document) Section(id rune) *Section {
	for i := range d.Sections {
		if d.Sections[i].ID == id {
			return &d.Sections[i]
		}
	}
	return nil
}

// AddSection appends a section, replacing any section with the same id.
func (d *Document) AddSection(s Section) {
	for i := range d.Sections {
		if d.Sections[i].ID == s.ID {
			d.Sections[i] = s
			return
		}
	}
	d.Sections = append(d.Sections, s)
}

func (d *Document) Clone() *Document {
	res := &Document{}
	if d.Context != nil {
		res.Context = make([]Entry, len(d.Context))
		for i := range d.Context {
			res.Context[i] = Entry{Key: d.Context[i].Key, Value: d.Context[i].Value.Clone()}
		}
	}
	if d.Refs != nil {
		res.Refs = make([]Ref, len(d.Refs))
		copy(res.Refs, d.Refs)
	}
	if d.Sections != nil {
		res.Sections = make([]Section, len(d.Sections))
		for i := range d.Sections {
			res.Sections[i] = d.Sections[i].Clone()
		}
	}
	return res
}

func (s Section) Clone() Section {
	res := Section{ID: s.ID}
	res.Schema = append([]string(nil), s.Schema...)
	res.Rows = make([][]Value, len(s.Rows))
	for i, row := range s.Rows {
		res.Rows[i] = make([]Value, len(row))
		for j := range row {
			res.Rows[i][j] = row[j].Clone()
		}
	}
	return res
}

// Equal reports structural equality: entry order within context, refs,
// and the section list is ignored, but schema and row order within a
// section is significant.
func (d *Document) Equal(o *Document) bool {
	if d == nil || o == nil {
		return d == o
	}
	if len(d.Context) != len(o.Context) ||
		len(d.Refs) != len(o.Refs) ||
		len(d.Sections) != len(o.Sections) {
		return false
	}
	for i := range d.Context {
		v, ok := o.Get(d.Context[i].Key)
		if !ok || !v.Equal(d.Context[i].Value) {
			return false
		}
	}
	for i := range d.Refs {
		v, ok := o.GetRef(d.Refs[i].Key)
		if !ok || v != d.Refs[i].Value {
			return false
		}
	}
	for i := range d.Sections {
		os := o.Section(d.Sections[i].ID)
		if os == nil || !d.Sections[i].Equal(*os) {
			return false
		}
	}
	return true
}

func (s Section) Equal(o Section) bool {
	if s.ID != o.ID || len(s.Schema) != len(o.Schema) || len(s.Rows) != len(o.Rows) {
		return false
	}
	for i := range s.Schema {
		if s.Schema[i] != o.Schema[i] {
			return false
		}
	}
	for i := range s.Rows {
		if len(s.Rows[i]) != len(o.Rows[i]) {
			return false
		}
		for j := range s.Rows[i] {
			if !s.Rows[i][j].Equal(o.Rows[i][j]) {
				return false
			}
		}
	}
	return true
}
