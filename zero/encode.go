package zero

import (
	"encoding/binary"
	"math"

	"github.com/klauspost/compress/s2"

	"github.com/najmus-sakib-hossain/dx-go/ir"
)

// Value tags in the binary body.
const (
	tagNull byte = iota
	tagString
	tagInt
	tagFloat
	tagTrue
	tagFalse
	tagRef
	tagArray
)

type encodeOptions struct {
	compress bool
}

type EncodeOption func(*encodeOptions)

// Compressed makes Encode s2-compress the body and set the
// compression flag bit.  Decode handles both forms transparently.
func Compressed(v bool) EncodeOption {
	return func(o *encodeOptions) { o.compress = v }
}

// Encode serializes a Document to the binary form.
func Encode(doc *ir.Document, opts ...EncodeOption) []byte {
	var o encodeOptions
	for _, f := range opts {
		f(&o)
	}

	body := appendBody(nil, doc)

	var flags byte
	if o.compress {
		flags |= flagCompressed
		body = s2.Encode(nil, body)
	}
	out := make([]byte, 0, headerSize+len(body))
	out = append(out, magic0, magic1, version, flags)
	return append(out, body...)
}

func appendBody(b []byte, doc *ir.Document) []byte {
	b = binary.AppendUvarint(b, uint64(len(doc.Context)))
	for _, e := range doc.Context {
		b = appendString(b, e.Key)
		b = appendValue(b, e.Value)
	}
	b = binary.AppendUvarint(b, uint64(len(doc.Refs)))
	for _, r := range doc.Refs {
		b = appendString(b, r.Key)
		b = appendString(b, r.Value)
	}
	b = binary.AppendUvarint(b, uint64(len(doc.Sections)))
	for i := range doc.Sections {
		sec := &doc.Sections[i]
		b = binary.AppendUvarint(b, uint64(sec.ID))
		b = binary.AppendUvarint(b, uint64(len(sec.Schema)))
		for _, col := range sec.Schema {
			b = appendString(b, col)
		}
		b = binary.AppendUvarint(b, uint64(len(sec.Rows)))
		for _, row := range sec.Rows {
			for _, v := range row {
				b = appendValue(b, v)
			}
		}
	}
	return b
}

func appendString(b []byte, s string) []byte {
	b = binary.AppendUvarint(b, uint64(len(s)))
	return append(b, s...)
}

func appendValue(b []byte, v ir.Value) []byte {
	switch v.Kind {
	case ir.StringKind:
		b = append(b, tagString)
		return appendString(b, v.Str)
	case ir.IntKind:
		b = append(b, tagInt)
		return binary.AppendVarint(b, v.Int)
	case ir.FloatKind:
		b = append(b, tagFloat)
		return binary.LittleEndian.AppendUint64(b, math.Float64bits(v.Float))
	case ir.BoolKind:
		if v.Bool {
			return append(b, tagTrue)
		}
		return append(b, tagFalse)
	case ir.RefKind:
		b = append(b, tagRef)
		return appendString(b, v.Str)
	case ir.ArrayKind:
		b = append(b, tagArray)
		b = binary.AppendUvarint(b, uint64(len(v.Arr)))
		for _, item := range v.Arr {
			b = appendValue(b, item)
		}
		return b
	default:
		return append(b, tagNull)
	}
}
