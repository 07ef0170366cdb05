// Package format enumerates the dx format surfaces.
package format

import (
	"errors"
	"fmt"
)

type Format int

const (
	ReadableFormat Format = iota
	CompactFormat
	BinaryFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	switch v {
	case "r", "readable", "human":
		return ReadableFormat, nil
	case "c", "compact":
		return CompactFormat, nil
	case "b", "binary":
		return BinaryFormat, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case ReadableFormat:
		return []byte("readable"), nil
	case CompactFormat:
		return []byte("compact"), nil
	case BinaryFormat:
		return []byte("binary"), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrBadFormat, int(f))
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsReadable() bool { return f == ReadableFormat }
func (f Format) IsCompact() bool  { return f == CompactFormat }
func (f Format) IsBinary() bool   { return f == BinaryFormat }

// Suffix returns the file extension for this format (including the dot).
func (f Format) Suffix() string {
	switch f {
	case ReadableFormat:
		return ".dxh"
	case CompactFormat:
		return ".dx"
	case BinaryFormat:
		return ".dxb"
	default:
		return ""
	}
}

// AllFormats returns all supported formats in preference order.
func AllFormats() []Format {
	return []Format{ReadableFormat, CompactFormat, BinaryFormat}
}
