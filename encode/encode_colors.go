package encode

import (
	"github.com/fatih/color"
)

type ColorAttr int

const (
	KeywordColor ColorAttr = iota
	NameColor
	FieldColor
	OrdinalColor
	TypeColor
	SepColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[ColorAttr]func(string, ...any) string
}

func NewColors() *Colors {
	return &Colors{
		Default: colorDefault,
		Map: map[ColorAttr]func(string, ...any) string{
			KeywordColor: color.RGB(74, 92, 138).SprintfFunc(),
			NameColor:    color.RGB(196, 96, 16).SprintfFunc(),
			FieldColor:   color.RGB(128, 168, 196).SprintfFunc(),
			OrdinalColor: color.RGB(128, 216, 236).SprintfFunc(),
			TypeColor:    color.CyanString,
			SepColor:     color.RGB(255, 0, 196).SprintfFunc(),
		},
	}
}

func (c *Colors) Color(attr ColorAttr, s string) string {
	fn := c.Map[attr]
	if fn == nil {
		fn = c.Default
	}
	return fn("%s", s)
}

func colorDefault(format string, args ...any) string {
	if format == "%s" && len(args) == 1 {
		if s, ok := args[0].(string); ok {
			return s
		}
	}
	return format
}
