// Package draw wraps the Plan 9 draw model behind interfaces so that a
// widget can be driven by devdraw, an off-screen raster or a mock.
package draw

import "image"

// Display is the part of a devdraw connection a widget and its host
// use: the screen, the stock colours, fonts and colour allocation.
type Display interface {
	ScreenImage() Image
	White() Image
	Black() Image
	Opaque() Image
	Transparent() Image

	InitKeyboard() *Keyboardctl
	InitMouse() *Mousectl
	OpenFont(name string) (Font, error)
	DefaultFont() Font
	AllocImage(r image.Rectangle, pix Pix, repl bool, val Color) (Image, error)
	Attach(ref int) error
	Flush() error
}

// Image is a drawing target or paint source. Replicated 1×1 images
// act as solid colours.
type Image interface {
	Display() Display
	Pix() Pix
	R() image.Rectangle

	Draw(r image.Rectangle, src, mask Image, p1 image.Point)
	Border(r image.Rectangle, n int, color Image, sp image.Point)
	String(pt image.Point, src Image, sp image.Point, f Font, s string) image.Point
	Free() error
}

// Font measures and names a font. Widths are in pixels, or cells for
// a terminal display.
type Font interface {
	Name() string
	Height() int
	RunesWidth(r []rune) int
	StringWidth(s string) int
}

// displayImpl implements the Display interface.
type displayImpl struct {
	*drawDisplay
}

var _ = Display((*displayImpl)(nil))

func (d *displayImpl) ScreenImage() Image { return &imageImpl{d.drawDisplay.ScreenImage} }
func (d *displayImpl) White() Image       { return &imageImpl{d.drawDisplay.White} }
func (d *displayImpl) Black() Image       { return &imageImpl{d.drawDisplay.Black} }
func (d *displayImpl) Opaque() Image      { return &imageImpl{d.drawDisplay.Opaque} }
func (d *displayImpl) Transparent() Image { return &imageImpl{d.drawDisplay.Transparent} }
func (d *displayImpl) DefaultFont() Font  { return &fontImpl{d.drawDisplay.DefaultFont} }

func (d *displayImpl) OpenFont(name string) (Font, error) {
	f, err := d.drawDisplay.OpenFont(name)
	if err != nil {
		return nil, err
	}
	return &fontImpl{f}, nil
}

func (d *displayImpl) AllocImage(r image.Rectangle, pix Pix, repl bool, val Color) (Image, error) {
	i, err := d.drawDisplay.AllocImage(r, pix, repl, val)
	if err != nil {
		return nil, err
	}
	return &imageImpl{i}, nil
}

// imageImpl implements the Image interface.
type imageImpl struct {
	*drawImage
}

var _ = Image((*imageImpl)(nil))

func (dst *imageImpl) Display() Display   { return &displayImpl{dst.drawImage.Display} }
func (dst *imageImpl) Pix() Pix           { return dst.drawImage.Pix }
func (dst *imageImpl) R() image.Rectangle { return dst.drawImage.R }

func (dst *imageImpl) Draw(r image.Rectangle, src, mask Image, p1 image.Point) {
	dst.drawImage.Draw(r, toDrawImage(src), toDrawImage(mask), p1)
}

func (dst *imageImpl) Border(r image.Rectangle, n int, color Image, sp image.Point) {
	dst.drawImage.Border(r, n, toDrawImage(color), sp)
}

func (dst *imageImpl) String(pt image.Point, src Image, sp image.Point, f Font, s string) image.Point {
	return dst.drawImage.String(pt, toDrawImage(src), sp, f.(*fontImpl).drawFont, s)
}

func toDrawImage(i Image) *drawImage {
	if i == nil {
		return nil
	}
	return i.(*imageImpl).drawImage
}

type fontImpl struct {
	*drawFont
}

func (f *fontImpl) Name() string { return f.drawFont.Name }
func (f *fontImpl) Height() int  { return f.drawFont.Height }

// WithAlpha replaces the alpha of the opaque colour c, scaling its
// channels so the result stays premultiplied.
func WithAlpha(c Color, alpha uint8) Color {
	r, g, b, _ := RGBA(c)
	scale := func(v uint8) Color { return Color(uint32(v) * uint32(alpha) / 255) }
	return scale(r)<<24 | scale(g)<<16 | scale(b)<<8 | Color(alpha)
}

// RGBA splits c into 8-bit channels.
func RGBA(c Color) (r, g, b, a uint8) {
	return uint8(c >> 24), uint8(c >> 16), uint8(c >> 8), uint8(c)
}
