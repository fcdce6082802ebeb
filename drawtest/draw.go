// Package drawtest contains a mock draw.Display that records the
// operations issued against it, for testing widgets without devdraw.
package drawtest

import (
	"fmt"
	"image"
	"io"
	"sync"
	"unicode/utf8"

	"github.com/polydome/fixedsizeedittext/draw"
)

var _ = draw.Display((*mockDisplay)(nil))

const (
	fwidth  = 10
	fheight = 16
)

// GettableDrawOps display implementations can provide a list of the
// executed draw ops.
type GettableDrawOps interface {
	DrawOps() []string
	Clear()

	// SVGDrawOps writes the accumulated draw ops to w as a single SVG
	// picture of the rectangle of interest.
	SVGDrawOps(w io.Writer) error
}

// mockDisplay implements draw.Display.
type mockDisplay struct {
	mu          sync.Mutex
	drawops     []string
	svgdrawops  []string
	screenimage draw.Image
	font        draw.Font

	// rectofi is the rectangle of interest.
	rectofi image.Rectangle
}

// NewDisplay returns a mock draw.Display whose SVG output is drawn
// with respect to rectofi.
func NewDisplay(rectofi image.Rectangle) draw.Display {
	md := &mockDisplay{
		rectofi: rectofi,
		font:    NewFont(fwidth, fheight),
	}
	md.screenimage = newimageimpl(md, "screen", draw.Notacolor, image.Rect(0, 0, 800, 600))
	return md
}

func (d *mockDisplay) ScreenImage() draw.Image {
	return d.screenimage
}

func (d *mockDisplay) White() draw.Image {
	return newimageimpl(d, "white", draw.White, image.Rectangle{})
}
func (d *mockDisplay) Black() draw.Image {
	return newimageimpl(d, "black", draw.Black, image.Rectangle{})
}
func (d *mockDisplay) Opaque() draw.Image {
	return newimageimpl(d, "opaque", draw.Opaque, image.Rectangle{})
}
func (d *mockDisplay) Transparent() draw.Image {
	return newimageimpl(d, "transparent", draw.Transparent, image.Rectangle{})
}
func (d *mockDisplay) InitKeyboard() *draw.Keyboardctl { return &draw.Keyboardctl{} }
func (d *mockDisplay) InitMouse() *draw.Mousectl       { return &draw.Mousectl{} }

// OpenFont always succeeds with the fixed-width mock font so that
// recorded positions are easy to compute by hand.
func (d *mockDisplay) OpenFont(name string) (draw.Font, error) { return d.font, nil }
func (d *mockDisplay) DefaultFont() draw.Font                  { return d.font }

func (d *mockDisplay) AllocImage(r image.Rectangle, pix draw.Pix, repl bool, val draw.Color) (draw.Image, error) {
	return &mockImage{
		d:    d,
		r:    r,
		c:    val,
		repl: repl,
	}, nil
}

func (d *mockDisplay) Attach(ref int) error { return nil }
func (d *mockDisplay) Flush() error         { return nil }

func (d *mockDisplay) DrawOps() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.drawops...)
}

func (d *mockDisplay) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.drawops = nil
	d.svgdrawops = nil
}

func (d *mockDisplay) SVGDrawOps(w io.Writer) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return singlesvgfile(w, d.svgdrawops, d.rectofi)
}

func (d *mockDisplay) record(op, svg string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.drawops = append(d.drawops, op)
	if svg != "" {
		d.svgdrawops = append(d.svgdrawops, svg)
	}
}

var _ = draw.Image((*mockImage)(nil))

// mockImage implements draw.Image.
type mockImage struct {
	r    image.Rectangle
	d    *mockDisplay
	n    string
	c    draw.Color
	repl bool
}

// newimageimpl creates a new mockImage. Use Notacolor for the situation
// where the name of the image takes precedence.
func newimageimpl(d *mockDisplay, name string, c draw.Color, r image.Rectangle) draw.Image {
	return &mockImage{
		r: r,
		d: d,
		c: c,
		n: name,
	}
}

// NewImage returns a mock draw.Image with the given bounds.
func NewImage(display draw.Display, name string, r image.Rectangle) draw.Image {
	d := display.(*mockDisplay)
	return newimageimpl(d, name, draw.Notacolor, r)
}

func (i *mockImage) Display() draw.Display { return i.d }
func (i *mockImage) Pix() draw.Pix         { return 0 }
func (i *mockImage) R() image.Rectangle    { return i.r }

func imagename(img draw.Image) string {
	if m, ok := img.(*mockImage); ok {
		return m.N()
	}
	return "nil"
}

func (i *mockImage) Draw(r image.Rectangle, src, mask draw.Image, p1 image.Point) {
	srcname := imagename(src)
	op := fmt.Sprintf("%s <- fill %v src: %s", i.N(), r, srcname)
	if mask != nil {
		op = fmt.Sprintf("%s <- draw %v src: %s mask: %s p1: %v", i.N(), r, srcname, imagename(mask), p1)
	}
	i.d.record(op, fillsvg(r, htmlcolour(src)))
}

func (i *mockImage) Border(r image.Rectangle, n int, color draw.Image, sp image.Point) {
	op := fmt.Sprintf("%s <- border %v thick: %d color: %s", i.N(), r, n, imagename(color))
	i.d.record(op, bordersvg(r, n, htmlcolour(color)))
}

func (i *mockImage) String(pt image.Point, src draw.Image, sp image.Point, f draw.Font, s string) image.Point {
	op := fmt.Sprintf("%s <- string %q atpoint: %v fill: %s", i.N(), s, pt, imagename(src))
	i.d.record(op, stringsvg(pt, f.Height(), s))
	return pt.Add(image.Pt(f.StringWidth(s), 0))
}

func (i *mockImage) Free() error { return nil }

// N returns a nicename for the image colour.
func (i *mockImage) N() string {
	name := i.n
	if i.c != draw.Notacolor {
		name = NiceColourName(i.c)
	}
	if i.repl {
		name += ",tiled"
	}
	return name
}

func htmlcolour(img draw.Image) string {
	m, ok := img.(*mockImage)
	if !ok || m.c == draw.Notacolor {
		return "white"
	}
	return fmt.Sprintf("#%06x", uint32(m.c)>>8)
}

var _ = draw.Font((*mockFont)(nil))

// mockFont implements draw.Font as a fixed width font.
type mockFont struct {
	width, height int
}

// NewFont returns a draw.Font that mocks a fixed-width font.
func NewFont(width, height int) draw.Font {
	return &mockFont{
		width:  width,
		height: height,
	}
}

const MockFontName = "/lib/font/bit/lucsans/euro.8.font"

func (f *mockFont) Name() string             { return MockFontName }
func (f *mockFont) Height() int              { return f.height }
func (f *mockFont) RunesWidth(r []rune) int  { return f.width * len(r) }
func (f *mockFont) StringWidth(s string) int { return f.width * utf8.RuneCountInString(s) }
