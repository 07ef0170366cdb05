// Package dx converts structured documents between three surfaces
// sharing one canonical model: a readable form for editing (.dxh), a
// compact form for transmission (.dx), and a binary form for machine
// consumption (.dxb).  Every surface parses to an ir.Document and back
// without semantic loss.
package dx

import (
	"fmt"
	"strings"

	"github.com/najmus-sakib-hossain/dx-go/compact"
	"github.com/najmus-sakib-hossain/dx-go/debug"
	"github.com/najmus-sakib-hossain/dx-go/format"
	"github.com/najmus-sakib-hossain/dx-go/ir"
	"github.com/najmus-sakib-hossain/dx-go/readable"
	"github.com/najmus-sakib-hossain/dx-go/zero"
)

// Detect guesses which surface a byte slice carries.  Binary input is
// identified by its magic bytes; text input by its structural markers.
// Ambiguous text defaults to the compact form.
func Detect(data []byte) (f format.Format) {
	if debug.Detect() {
		defer func() { debug.Logf("detect: %s (%d bytes)\n", f, len(data)) }()
	}
	if len(data) >= 2 && data[0] == 0x5A && data[1] == 0x44 {
		return format.BinaryFormat
	}
	for _, raw := range strings.Split(string(data), "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		switch {
		case strings.HasPrefix(line, "["),
			strings.HasPrefix(line, "┌"),
			strings.HasPrefix(line, "│"):
			return format.ReadableFormat
		case strings.HasPrefix(line, "#"):
			// Sigil lines are compact; banner comments are readable.
			if strings.HasPrefix(line, "#:") || strings.HasPrefix(line, "#c:") {
				return format.CompactFormat
			}
			continue
		case strings.Contains(line, " = "):
			return format.ReadableFormat
		case strings.Contains(line, "|"):
			return format.CompactFormat
		case strings.Contains(line, "="):
			return format.ReadableFormat
		}
	}
	return format.CompactFormat
}

// Parse reads data in the given surface into a Document.
func Parse(data []byte, f format.Format) (*ir.Document, error) {
	if debug.Parse() {
		debug.Logf("parse: %d bytes of %s\n", len(data), f)
	}
	switch {
	case f.IsReadable():
		return readable.Parse(string(data))
	case f.IsCompact():
		return compact.Parse(string(data))
	case f.IsBinary():
		return zero.Decode(data)
	}
	return nil, fmt.Errorf("%w: %v", format.ErrBadFormat, f)
}

// Render writes a Document out in the given surface.
func Render(doc *ir.Document, f format.Format) ([]byte, error) {
	if debug.Serialize() {
		debug.Logf("render: %s of %s\n", f, debug.Doc{Document: doc})
	}
	switch {
	case f.IsReadable():
		return []byte(readable.Format(doc)), nil
	case f.IsCompact():
		return []byte(compact.Serialize(doc)), nil
	case f.IsBinary():
		return zero.Encode(doc), nil
	}
	return nil, fmt.Errorf("%w: %v", format.ErrBadFormat, f)
}

// Convert reparses data from one surface and renders it in another.
func Convert(data []byte, from, to format.Format) ([]byte, error) {
	doc, err := Parse(data, from)
	if err != nil {
		return nil, err
	}
	return Render(doc, to)
}
