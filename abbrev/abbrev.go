// Package abbrev provides the bidirectional key abbreviation dictionary
// used at parse/format boundaries.  The Document itself always stores
// full keys; Expand and Compress are total functions with pass-through
// for unknown keys.
package abbrev

import "sync"

// Dict maps short keys to full key names and back.  A Dict is built
// once and read-only afterwards, so it is safe to share across
// concurrent conversions without locking.
type Dict struct {
	expand   map[string]string
	compress map[string]string

	sectionNames map[rune]string
	sectionIDs   map[string]rune
}

type Option func(*Dict)

// WithPair declares a bijective short/full pair.
func WithPair(short, full string) Option {
	return func(d *Dict) {
		d.expand[short] = full
		d.compress[full] = short
	}
}

// WithAlias declares an expand-only alias: short expands to full, but
// full keeps compressing to its canonical abbreviation.
func WithAlias(short, full string) Option {
	return func(d *Dict) {
		d.expand[short] = full
	}
}

// WithSection declares a section id/name pair used by the readable
// format, which accepts either form in headers.
func WithSection(id rune, name string) Option {
	return func(d *Dict) {
		d.sectionNames[id] = name
		d.sectionIDs[name] = id
	}
}

func New(opts ...Option) *Dict {
	d := &Dict{
		expand:       map[string]string{},
		compress:     map[string]string{},
		sectionNames: map[rune]string{},
		sectionIDs:   map[string]rune{},
	}
	for _, opt := range defaultPairs() {
		opt(d)
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

var defaultDict = sync.OnceValue(func() *Dict { return New() })

// Default returns the process-wide dictionary, built on first use.
func Default() *Dict { return defaultDict() }

// Expand returns the full form of an abbreviated key, or the key
// unchanged when no mapping exists.
func (d *Dict) Expand(key string) string {
	if full, ok := d.expand[key]; ok {
		return full
	}
	return key
}

// Compress returns the abbreviated form of a full key, or the key
// unchanged when no mapping exists.
func (d *Dict) Compress(key string) string {
	if short, ok := d.compress[key]; ok {
		return short
	}
	return key
}

func (d *Dict) HasShort(key string) bool {
	_, ok := d.expand[key]
	return ok
}

func (d *Dict) HasFull(key string) bool {
	_, ok := d.compress[key]
	return ok
}

// Pairs returns every declared full->short mapping.
func (d *Dict) Pairs() map[string]string {
	res := make(map[string]string, len(d.compress))
	for full, short := range d.compress {
		res[full] = short
	}
	return res
}

// SectionName returns the full section name for an id, falling back to
// the id itself when the section is undeclared.
func (d *Dict) SectionName(id rune) string {
	if name, ok := d.sectionNames[id]; ok {
		return name
	}
	return string(id)
}

// SectionID returns the single-rune id for a section name.  A
// single-rune name is its own id; longer undeclared names map to their
// first rune, lowercased.
func (d *Dict) SectionID(name string) rune {
	if id, ok := d.sectionIDs[name]; ok {
		return id
	}
	rs := []rune(name)
	switch {
	case len(rs) == 0:
		return 'x'
	case len(rs) == 1:
		return rs[0]
	}
	r := rs[0]
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	return r
}
