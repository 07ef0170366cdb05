package zero

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/klauspost/compress/s2"

	"github.com/najmus-sakib-hossain/dx-go/ir"
)

// Decode reads the binary form back into a Document.
func Decode(data []byte) (*ir.Document, error) {
	if len(data) < headerSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrTruncated, len(data))
	}
	if data[0] != magic0 || data[1] != magic1 {
		return nil, fmt.Errorf("%w: % x", ErrMagic, data[:2])
	}
	if data[2] != version {
		return nil, fmt.Errorf("%w: 0x%02x", ErrVersion, data[2])
	}
	flags := data[3]
	body := data[headerSize:]
	if flags&flagCompressed != 0 {
		var err error
		body, err = s2.Decode(nil, body)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
		}
	}

	r := &reader{buf: body}
	doc := ir.NewDocument()

	n := r.count()
	for i := uint64(0); i < n && r.err == nil; i++ {
		key := r.string()
		val := r.value()
		doc.Context = append(doc.Context, ir.Entry{Key: key, Value: val})
	}
	n = r.count()
	for i := uint64(0); i < n && r.err == nil; i++ {
		key := r.string()
		val := r.string()
		doc.Refs = append(doc.Refs, ir.Ref{Key: key, Value: val})
	}
	n = r.count()
	for i := uint64(0); i < n && r.err == nil; i++ {
		sec := ir.Section{ID: rune(r.uvarint())}
		cols := r.count()
		for c := uint64(0); c < cols && r.err == nil; c++ {
			sec.Schema = append(sec.Schema, r.string())
		}
		rows := r.count()
		for j := uint64(0); j < rows && r.err == nil; j++ {
			row := make([]ir.Value, 0, cols)
			for c := uint64(0); c < cols && r.err == nil; c++ {
				row = append(row, r.value())
			}
			sec.Rows = append(sec.Rows, row)
		}
		doc.Sections = append(doc.Sections, sec)
	}
	if r.err != nil {
		return nil, r.err
	}
	if r.pos != len(r.buf) {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrCorrupt, len(r.buf)-r.pos)
	}
	return doc, nil
}

// reader tracks a cursor and the first error; after an error every
// read returns a zero value.
type reader struct {
	buf []byte
	pos int
	err error
}

func (r *reader) fail(err error) {
	if r.err == nil {
		r.err = err
	}
}

func (r *reader) uvarint() uint64 {
	if r.err != nil {
		return 0
	}
	v, n := binary.Uvarint(r.buf[r.pos:])
	if n <= 0 {
		r.fail(fmt.Errorf("%w: bad uvarint at offset %d", ErrCorrupt, r.pos))
		return 0
	}
	r.pos += n
	return v
}

// count reads an element count and bounds it by the bytes remaining,
// so corrupt input cannot drive huge allocations.
func (r *reader) count() uint64 {
	n := r.uvarint()
	if r.err == nil && n > uint64(len(r.buf)-r.pos) {
		r.fail(fmt.Errorf("%w: count %d exceeds remaining input at offset %d", ErrCorrupt, n, r.pos))
		return 0
	}
	return n
}

func (r *reader) varint() int64 {
	if r.err != nil {
		return 0
	}
	v, n := binary.Varint(r.buf[r.pos:])
	if n <= 0 {
		r.fail(fmt.Errorf("%w: bad varint at offset %d", ErrCorrupt, r.pos))
		return 0
	}
	r.pos += n
	return v
}

func (r *reader) byte() byte {
	if r.err != nil {
		return 0
	}
	if r.pos >= len(r.buf) {
		r.fail(fmt.Errorf("%w: at offset %d", ErrTruncated, r.pos))
		return 0
	}
	b := r.buf[r.pos]
	r.pos++
	return b
}

func (r *reader) string() string {
	n := r.uvarint()
	if r.err != nil {
		return ""
	}
	if uint64(len(r.buf)-r.pos) < n {
		r.fail(fmt.Errorf("%w: string of %d bytes at offset %d", ErrTruncated, n, r.pos))
		return ""
	}
	s := string(r.buf[r.pos : r.pos+int(n)])
	r.pos += int(n)
	return s
}

func (r *reader) value() ir.Value {
	switch tag := r.byte(); tag {
	case tagNull:
		return ir.Null()
	case tagString:
		return ir.FromString(r.string())
	case tagInt:
		return ir.FromInt(r.varint())
	case tagFloat:
		if uint64(len(r.buf)-r.pos) < 8 {
			r.fail(fmt.Errorf("%w: float at offset %d", ErrTruncated, r.pos))
			return ir.Value{}
		}
		bits := binary.LittleEndian.Uint64(r.buf[r.pos:])
		r.pos += 8
		return ir.FromFloat(math.Float64frombits(bits))
	case tagTrue:
		return ir.FromBool(true)
	case tagFalse:
		return ir.FromBool(false)
	case tagRef:
		return ir.FromRef(r.string())
	case tagArray:
		n := r.count()
		items := make([]ir.Value, 0, n)
		for i := uint64(0); i < n && r.err == nil; i++ {
			items = append(items, r.value())
		}
		return ir.FromArray(items...)
	default:
		r.fail(fmt.Errorf("%w: unknown value tag 0x%02x at offset %d", ErrCorrupt, tag, r.pos-1))
		return ir.Value{}
	}
}
