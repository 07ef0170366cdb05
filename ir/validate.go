package ir

import (
	"fmt"
	"unicode"
)

// Validate checks the Document invariants: unique context and ref keys,
// unique section ids drawn from the printable id rune space, and row
// arity matching the section schema.
func (d *Document) Validate() error {
	keys := make(map[string]bool, len(d.Context))
	for i := range d.Context {
		k := d.Context[i].Key
		if keys[k] {
			return fmt.Errorf("%w: duplicate context key %q", ErrValidation, k)
		}
		keys[k] = true
	}
	refs := make(map[string]bool, len(d.Refs))
	for i := range d.Refs {
		k := d.Refs[i].Key
		if refs[k] {
			return fmt.Errorf("%w: duplicate reference key %q", ErrValidation, k)
		}
		refs[k] = true
	}
	ids := make(map[rune]bool, len(d.Sections))
	for i := range d.Sections {
		s := &d.Sections[i]
		if !validSectionID(s.ID) {
			return fmt.Errorf("%w: section id %q is not a printable id rune", ErrValidation, s.ID)
		}
		if ids[s.ID] {
			return fmt.Errorf("%w: duplicate section id %q", ErrValidation, s.ID)
		}
		ids[s.ID] = true
		if len(s.Schema) == 0 {
			return fmt.Errorf("%w: section %q has an empty schema", ErrValidation, s.ID)
		}
		for j, row := range s.Rows {
			if len(row) != len(s.Schema) {
				return fmt.Errorf("%w: section %q row %d has %d values, schema has %d",
					ErrValidation, s.ID, j, len(row), len(s.Schema))
			}
		}
	}
	return nil
}

// validSectionID bounds ids to runes every surface can both emit and
// reparse in a section header.  Parentheses delimit the compact
// header's schema list and cannot double as ids.
func validSectionID(id rune) bool {
	return unicode.IsGraphic(id) && !unicode.IsSpace(id) && id != '(' && id != ')'
}
