package zero

import (
	"errors"
	"testing"

	"github.com/najmus-sakib-hossain/dx-go/ir"
)

func sampleDoc() *ir.Document {
	doc := ir.NewDocument()
	doc.Set("name", ir.FromString("inventory"))
	doc.Set("count", ir.FromInt(-42))
	doc.Set("ratio", ir.FromFloat(2.5))
	doc.Set("active", ir.FromBool(true))
	doc.Set("missing", ir.Null())
	doc.Set("tags", ir.FromArray(ir.FromString("a"), ir.FromInt(2), ir.FromArray()))
	doc.SetRef("A", "warehouse-east")
	doc.AddSection(ir.Section{
		ID:     'u',
		Schema: []string{"id", "name", "location"},
		Rows: [][]ir.Value{
			{ir.FromInt(1), ir.FromString("Alice"), ir.FromRef("A")},
			{ir.FromInt(2), ir.FromString("Bob"), ir.Null()},
		},
	})
	return doc
}

func TestRoundTrip(t *testing.T) {
	doc := sampleDoc()
	for _, tc := range []struct {
		name string
		opts []EncodeOption
	}{
		{"plain", nil},
		{"compressed", []EncodeOption{Compressed(true)}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			data := Encode(doc, tc.opts...)
			back, err := Decode(data)
			if err != nil {
				t.Fatal(err)
			}
			if !back.Equal(doc) {
				t.Errorf("round trip changed document")
			}
		})
	}
}

func TestRoundTripEmpty(t *testing.T) {
	doc := ir.NewDocument()
	back, err := Decode(Encode(doc))
	if err != nil {
		t.Fatal(err)
	}
	if !back.IsEmpty() {
		t.Errorf("expected empty document, got %+v", back)
	}
}

func TestHeader(t *testing.T) {
	data := Encode(ir.NewDocument())
	if data[0] != 0x5A || data[1] != 0x44 {
		t.Errorf("magic = % x", data[:2])
	}
	if data[2] != 0x01 {
		t.Errorf("version = 0x%02x", data[2])
	}
	if data[3]&flagCompressed != 0 {
		t.Error("compression flag set without compression")
	}
	if c := Encode(ir.NewDocument(), Compressed(true)); c[3]&flagCompressed == 0 {
		t.Error("compression flag missing")
	}
}

func TestDecodeErrors(t *testing.T) {
	valid := Encode(sampleDoc())
	for _, tc := range []struct {
		name string
		data []byte
		want error
	}{
		{"empty", nil, ErrTruncated},
		{"short", []byte{0x5A}, ErrTruncated},
		{"bad magic", []byte{0x00, 0x00, 0x01, 0x00}, ErrMagic},
		{"bad version", []byte{0x5A, 0x44, 0x7F, 0x00}, ErrVersion},
		{"truncated body", valid[:len(valid)-3], ErrTruncated},
		{"trailing bytes", append(append([]byte{}, valid...), 0xFF), ErrCorrupt},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(tc.data)
			if !errors.Is(err, tc.want) {
				t.Errorf("Decode err = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestDecodeBadTag(t *testing.T) {
	doc := ir.NewDocument()
	doc.Set("k", ir.FromInt(1))
	data := Encode(doc)
	// context count, key "k", then the value tag
	data[len(data)-2] = 0x7F
	_, err := Decode(data)
	if !errors.Is(err, ErrCorrupt) {
		t.Errorf("Decode err = %v, want %v", err, ErrCorrupt)
	}
}
