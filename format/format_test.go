package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"r", ReadableFormat},
		{"readable", ReadableFormat},
		{"human", ReadableFormat},
		{"c", CompactFormat},
		{"compact", CompactFormat},
		{"b", BinaryFormat},
		{"binary", BinaryFormat},
	}
	for _, tc := range tests {
		got, err := ParseFormat(tc.in)
		if err != nil || got != tc.want {
			t.Errorf("ParseFormat(%q) = %v, %v; want %v", tc.in, got, err, tc.want)
		}
	}
	if _, err := ParseFormat("xml"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("ParseFormat(xml) err = %v, want ErrBadFormat", err)
	}
}

func TestSuffix(t *testing.T) {
	tests := []struct {
		f    Format
		want string
	}{
		{ReadableFormat, ".dxh"},
		{CompactFormat, ".dx"},
		{BinaryFormat, ".dxb"},
	}
	for _, tc := range tests {
		if got := tc.f.Suffix(); got != tc.want {
			t.Errorf("%v.Suffix() = %q, want %q", tc.f, got, tc.want)
		}
	}
}

func TestTextRoundTrip(t *testing.T) {
	for _, f := range AllFormats() {
		d, err := f.MarshalText()
		if err != nil {
			t.Fatalf("%v: %v", f, err)
		}
		var back Format
		if err := back.UnmarshalText(d); err != nil {
			t.Fatalf("%s: %v", d, err)
		}
		if back != f {
			t.Errorf("round trip %v gave %v", f, back)
		}
	}
}
