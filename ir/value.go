package ir

import (
	"strconv"
	"strings"
)

type Kind int

const (
	NullKind Kind = iota
	StringKind
	IntKind
	FloatKind
	BoolKind
	RefKind
	ArrayKind
)

func Kinds() []Kind {
	return []Kind{NullKind, StringKind, IntKind, FloatKind, BoolKind, RefKind, ArrayKind}
}

func (k Kind) String() string {
	switch k {
	case NullKind:
		return "null"
	case StringKind:
		return "string"
	case IntKind:
		return "int"
	case FloatKind:
		return "float"
	case BoolKind:
		return "bool"
	case RefKind:
		return "ref"
	case ArrayKind:
		return "array"
	default:
		return "<invalid kind " + strconv.Itoa(int(k)) + ">"
	}
}

// Value is the tagged union over scalars, named references, and arrays.
// The zero Value is null.
type Value struct {
	Kind  Kind
	Str   string // StringKind value, RefKind key
	Int   int64
	Float float64
	Bool  bool
	Arr   []Value
}

func Null() Value {
	return Value{Kind: NullKind}
}

func FromString(v string) Value {
	return Value{Kind: StringKind, Str: v}
}

func FromInt(v int64) Value {
	return Value{Kind: IntKind, Int: v}
}

func FromFloat(v float64) Value {
	return Value{Kind: FloatKind, Float: v}
}

func FromBool(v bool) Value {
	return Value{Kind: BoolKind, Bool: v}
}

func FromRef(key string) Value {
	return Value{Kind: RefKind, Str: key}
}

func FromArray(vs ...Value) Value {
	return Value{Kind: ArrayKind, Arr: vs}
}

func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case NullKind:
		return true
	case StringKind, RefKind:
		return v.Str == o.Str
	case IntKind:
		return v.Int == o.Int
	case FloatKind:
		return v.Float == o.Float
	case BoolKind:
		return v.Bool == o.Bool
	case ArrayKind:
		if len(v.Arr) != len(o.Arr) {
			return false
		}
		for i := range v.Arr {
			if !v.Arr[i].Equal(o.Arr[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func (v Value) Clone() Value {
	if v.Kind != ArrayKind {
		return v
	}
	arr := make([]Value, len(v.Arr))
	for i := range v.Arr {
		arr[i] = v.Arr[i].Clone()
	}
	v.Arr = arr
	return v
}

// FormatNumber renders ints and floats the way every textual surface
// does.  Floats always carry a '.' or exponent so they re-parse as
// floats rather than ints.
func (v Value) FormatNumber() string {
	switch v.Kind {
	case IntKind:
		return strconv.FormatInt(v.Int, 10)
	case FloatKind:
		s := strconv.FormatFloat(v.Float, 'f', -1, 64)
		if !strings.ContainsAny(s, ".eE") {
			s += ".0"
		}
		return s
	default:
		return ""
	}
}

// ParseNumber classifies a literal as an int or float value.
func ParseNumber(s string) (Value, bool) {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return FromInt(i), true
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return FromFloat(f), true
	}
	return Value{}, false
}
