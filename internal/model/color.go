package model

import (
	"fmt"
	"strings"
)

// Color is a display tag from a fixed palette.
type Color string

const (
	ColorBlue   Color = "blue"
	ColorPurple Color = "purple"
	ColorGreen  Color = "green"
	ColorRed    Color = "red"
)

var Palette = []Color{ColorBlue, ColorPurple, ColorGreen, ColorRed}

var colorHex = map[Color]string{
	ColorBlue:   "#3b82f6",
	ColorPurple: "#a855f7",
	ColorGreen:  "#22c55e",
	ColorRed:    "#ef4444",
}

// ParseColor accepts a palette name or its legacy class name ("bg-blue-500").
func ParseColor(s string) (Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.TrimSuffix(strings.TrimPrefix(name, "bg-"), "-500")

	c := Color(name)
	if _, ok := colorHex[c]; !ok {
		return "", fmt.Errorf("unknown color %q", s)
	}

	return c, nil
}

func (c Color) Valid() bool {
	_, ok := colorHex[c]
	return ok
}

// Hex returns the HTML color used to render the tag.
func (c Color) Hex() string {
	return colorHex[c]
}
