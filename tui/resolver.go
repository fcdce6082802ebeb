package tui

import (
	"github.com/polydome/fixedsizeedittext/boxedit"
	"github.com/polydome/fixedsizeedittext/draw"
	"github.com/polydome/fixedsizeedittext/theme"
)

// Box metrics in cells used when a style file does not set them.
const (
	DefaultBoxWidth  = 5
	DefaultBoxHeight = 3
	DefaultSpacing   = 1
)

// Resolver resolves box_background references like theme.Resolver
// but with strokes one cell thick.
func Resolver(ref string) (boxedit.Drawable, bool) {
	p := theme.Current()
	switch ref {
	case "box":
		return boxedit.NewShapeDrawable(p.BoxFill, p.BoxBorder, 1), true
	case "filled":
		return boxedit.NewShapeDrawable(p.BoxFill, draw.Notacolor, 0), true
	case "outline":
		return boxedit.NewShapeDrawable(draw.Notacolor, p.BoxBorder, 1), true
	case "underline":
		return boxedit.NewUnderlineDrawable(p.BoxUnderline, 1), true
	}
	if c, ok := theme.ParseColour(ref); ok {
		return boxedit.NewShapeDrawable(c, draw.Notacolor, 0), true
	}
	return nil, false
}

// CellAttributes returns a copy of a with the box sizes it leaves unset
// given in cells, and an outline background when none is named.
func CellAttributes(a *boxedit.Attributes) *boxedit.Attributes {
	var c boxedit.Attributes
	if a != nil {
		c = *a
	}
	if c.BoxWidth == nil {
		c.BoxWidth = boxedit.Int(DefaultBoxWidth)
	}
	if c.BoxHeight == nil {
		c.BoxHeight = boxedit.Int(DefaultBoxHeight)
	}
	if c.Spacing == nil {
		c.Spacing = boxedit.Int(DefaultSpacing)
	}
	if c.BoxBackground == nil {
		c.BoxBackground = boxedit.String("outline")
	}
	return &c
}
