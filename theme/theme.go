// Package theme holds the light and dark palettes used to resolve the
// named box backgrounds of a style file.
package theme

import (
	"strconv"
	"strings"

	"github.com/polydome/fixedsizeedittext/boxedit"
	"github.com/polydome/fixedsizeedittext/draw"
)

type Palette struct {
	BoxFill      draw.Color
	BoxBorder    draw.Color
	BoxUnderline draw.Color
	Background   draw.Color
}

var (
	darkMode bool
	current  = lightPalette
)

var lightPalette = Palette{
	// Plan 9 defaults
	BoxFill:      draw.Paleyellow,
	BoxBorder:    draw.Yellowgreen,
	BoxUnderline: draw.Purpleblue,
	Background:   draw.White,
}

var darkPalette = Palette{
	BoxFill:      0x333333FF,
	BoxBorder:    0x888888FF,
	BoxUnderline: 0xEEEEEEFF,
	Background:   0x222222FF,
}

// SetDarkMode selects between the light and dark palettes.
func SetDarkMode(enabled bool) {
	darkMode = enabled
	if enabled {
		current = darkPalette
	} else {
		current = lightPalette
	}
}

// IsDarkMode reports the current mode.
func IsDarkMode() bool { return darkMode }

// Current returns the active colour palette.
func Current() Palette { return current }

// Resolver resolves box_background references against the current
// palette:
//
//	box        fill and border
//	filled     fill only
//	outline    border only
//	underline  a bar along the bottom
//	#rrggbb    fill in that colour
func Resolver(ref string) (boxedit.Drawable, bool) {
	p := Current()
	switch ref {
	case "box":
		return boxedit.NewShapeDrawable(p.BoxFill, p.BoxBorder, 1), true
	case "filled":
		return boxedit.NewShapeDrawable(p.BoxFill, draw.Notacolor, 0), true
	case "outline":
		return boxedit.NewShapeDrawable(draw.Notacolor, p.BoxBorder, 2), true
	case "underline":
		return boxedit.NewUnderlineDrawable(p.BoxUnderline, 3), true
	}
	if c, ok := ParseColour(ref); ok {
		return boxedit.NewShapeDrawable(c, draw.Notacolor, 0), true
	}
	return nil, false
}

// ParseColour parses #rrggbb as an opaque draw.Color.
func ParseColour(s string) (draw.Color, bool) {
	if !strings.HasPrefix(s, "#") || len(s) != 7 {
		return 0, false
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return 0, false
	}
	return draw.Color(v<<8 | 0xFF), true
}
