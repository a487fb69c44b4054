package encode

import (
	"strings"

	"github.com/signadot/blockyaml/ir"

	"github.com/fatih/color"
)

// Colorable identifies a colorable piece of output. Kind is only
// meaningful for scalar values.
type Colorable struct {
	Type ir.Type
	Kind ir.Kind
	Attr ColorAttr
}

type ColorAttr int

const (
	KeyColor ColorAttr = iota
	SepColor
	ValueColor
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
	for _, t := range []ir.Type{ir.SequenceType, ir.MappingType} {
		colors.Map[Colorable{Type: t, Attr: SepColor}] = color.RGB(255, 0, 196).SprintfFunc()
	}
	colors.Map[Colorable{Type: ir.MappingType, Attr: KeyColor}] = color.RGB(128, 168, 196).SprintfFunc()

	able := Colorable{Type: ir.ScalarType, Attr: ValueColor}

	able.Kind = ir.NullKind
	colors.Map[able] = color.RGB(168, 0, 196).SprintfFunc()

	able.Kind = ir.BoolKind
	colors.Map[able] = color.CyanString

	able.Kind = ir.IntKind
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()

	able.Kind = ir.FloatKind
	colors.Map[able] = color.RGB(96, 196, 236).SprintfFunc()

	able.Kind = ir.StringKind
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()

	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(able Colorable, s string) string {
	return c.Get(able)(s)
}

func (c *Colors) Get(able Colorable) func(string, ...any) string {
	f := c.Map[able]
	if f == nil {
		return c.Default
	}
	return f
}
