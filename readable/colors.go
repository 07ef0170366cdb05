package readable

import (
	"strings"

	"github.com/fatih/color"

	"github.com/najmus-sakib-hossain/dx-go/ir"
)

type Colorable struct {
	Kind ir.Kind
	Attr ColorAttr
}

type ColorAttr int

const (
	ValueColor ColorAttr = iota
	KeyColor
	HeaderColor
	BorderColor
	CommentColor
	SummaryColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}

	able := Colorable{Attr: ValueColor}
	able.Kind = ir.StringKind
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()
	able.Kind = ir.IntKind
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
	able.Kind = ir.FloatKind
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
	able.Kind = ir.BoolKind
	colors.Map[able] = color.CyanString
	able.Kind = ir.NullKind
	colors.Map[able] = color.RGB(168, 0, 196).SprintfFunc()
	able.Kind = ir.RefKind
	colors.Map[able] = color.RGB(196, 168, 128).SprintfFunc()

	colors.Map[Colorable{Attr: KeyColor}] = color.RGB(196, 96, 16).SprintfFunc()
	colors.Map[Colorable{Attr: HeaderColor}] = color.RGB(74, 92, 138).SprintfFunc()
	colors.Map[Colorable{Attr: BorderColor}] = color.RGB(96, 96, 96).SprintfFunc()
	colors.Map[Colorable{Attr: CommentColor}] = color.BlueString
	colors.Map[Colorable{Attr: SummaryColor}] = color.RGB(128, 128, 128).SprintfFunc()

	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(k ir.Kind, a ColorAttr, s string) string {
	return c.Get(k, a)(s)
}

func (c *Colors) Get(k ir.Kind, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Kind: k, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}

// paint applies a color when one is configured, after padding has been
// computed on the plain text.
func paint(o *options, k ir.Kind, a ColorAttr, s string) string {
	if o.colors == nil {
		return s
	}
	return o.colors.Color(k, a, s)
}
