// Package raster implements draw.Display on an in-memory image so that
// widgets can be rendered without a window, to PNG files or into
// toolkits that accept images.
package raster

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"sync"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/polydome/fixedsizeedittext/draw"
)

var _ = draw.Display((*Display)(nil))

// Display is an off-screen draw.Display whose screen is an *image.RGBA.
// Drawing, font loading and encoding are serialised so another goroutine
// may snapshot the screen while a host draws.
type Display struct {
	mu     sync.Mutex
	screen *Image
	fonts  map[string]*Font
}

// NewDisplay returns a Display with a screen of bounds r filled with
// background.
func NewDisplay(r image.Rectangle, background draw.Color) *Display {
	d := &Display{fonts: make(map[string]*Font)}
	d.screen = d.newimage(r, false, background)
	return d
}

func (d *Display) newimage(r image.Rectangle, repl bool, val draw.Color) *Image {
	i := &Image{d: d, r: r, repl: repl, col: rgba(val)}
	if repl {
		return i
	}
	i.rgba = image.NewRGBA(r)
	if val != draw.Notacolor {
		xdraw.Draw(i.rgba, r, image.NewUniform(i.col), image.Point{}, xdraw.Src)
	}
	return i
}

func rgba(c draw.Color) color.RGBA {
	r, g, b, a := draw.RGBA(c)
	return color.RGBA{R: r, G: g, B: b, A: a}
}

func (d *Display) ScreenImage() draw.Image         { return d.screen }
func (d *Display) White() draw.Image               { return d.newimage(image.Rect(0, 0, 1, 1), true, draw.White) }
func (d *Display) Black() draw.Image               { return d.newimage(image.Rect(0, 0, 1, 1), true, draw.Black) }
func (d *Display) Opaque() draw.Image              { return d.newimage(image.Rect(0, 0, 1, 1), true, draw.Opaque) }
func (d *Display) Transparent() draw.Image         { return d.newimage(image.Rect(0, 0, 1, 1), true, draw.Transparent) }
func (d *Display) InitKeyboard() *draw.Keyboardctl { return &draw.Keyboardctl{} }
func (d *Display) InitMouse() *draw.Mousectl       { return &draw.Mousectl{} }
func (d *Display) Attach(ref int) error            { return nil }
func (d *Display) Flush() error                    { return nil }

// OpenFont opens a /mnt/font/<Family>/<size>a/font name from the Go
// font families. Faces are cached by name.
func (d *Display) OpenFont(name string) (draw.Font, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if f, ok := d.fonts[name]; ok {
		return f, nil
	}
	f, err := openfont(name)
	if err != nil {
		return nil, err
	}
	d.fonts[name] = f
	return f, nil
}

// DefaultFont returns GoRegular at 13 pixels.
func (d *Display) DefaultFont() draw.Font {
	f, err := d.OpenFont(DefaultFontName)
	if err != nil {
		// The Go fonts are compiled in.
		panic(err)
	}
	return f
}

func (d *Display) AllocImage(r image.Rectangle, pix draw.Pix, repl bool, val draw.Color) (draw.Image, error) {
	return d.newimage(r, repl, val), nil
}

// Screen returns the pixels of the screen image.
func (d *Display) Screen() *image.RGBA { return d.screen.rgba }

// EncodePNG writes the screen to w as a PNG.
func (d *Display) EncodePNG(w io.Writer) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return png.Encode(w, d.screen.rgba)
}

// Snapshot returns a copy of the screen.
func (d *Display) Snapshot() *image.RGBA {
	d.mu.Lock()
	defer d.mu.Unlock()
	m := image.NewRGBA(d.screen.r)
	copy(m.Pix, d.screen.rgba.Pix)
	return m
}

var _ = draw.Image((*Image)(nil))

// Image is either a replicated colour or a block of pixels.
type Image struct {
	d    *Display
	r    image.Rectangle
	repl bool
	col  color.RGBA
	rgba *image.RGBA
}

func (i *Image) Display() draw.Display { return i.d }
func (i *Image) Pix() draw.Pix         { return 0 }
func (i *Image) R() image.Rectangle    { return i.r }
func (i *Image) Free() error           { return nil }

// source returns what to composite from i.
func (i *Image) source() image.Image {
	if i.repl || i.rgba == nil {
		return image.NewUniform(i.col)
	}
	return i.rgba
}

func source(img draw.Image) image.Image {
	if img == nil {
		return nil
	}
	if ri, ok := img.(*Image); ok {
		return ri.source()
	}
	return nil
}

// Draw composites src over i in r through mask, with p1 in src and mask
// aligned with r.Min.
func (i *Image) Draw(r image.Rectangle, src, mask draw.Image, p1 image.Point) {
	i.d.mu.Lock()
	defer i.d.mu.Unlock()
	i.draw(r, src, mask, p1)
}

func (i *Image) draw(r image.Rectangle, src, mask draw.Image, p1 image.Point) {
	s := source(src)
	if i.rgba == nil || s == nil {
		return
	}
	if m := source(mask); m != nil {
		xdraw.DrawMask(i.rgba, r, s, p1, m, p1, xdraw.Over)
		return
	}
	xdraw.Draw(i.rgba, r, s, p1, xdraw.Over)
}

// Border draws an n pixel border inside r, or outside it for negative n.
func (i *Image) Border(r image.Rectangle, n int, col draw.Image, sp image.Point) {
	if n < 0 {
		r = r.Inset(n)
		n = -n
	}
	if n == 0 {
		return
	}
	i.d.mu.Lock()
	defer i.d.mu.Unlock()
	i.draw(image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+n), col, nil, sp)
	i.draw(image.Rect(r.Min.X, r.Max.Y-n, r.Max.X, r.Max.Y), col, nil, sp)
	i.draw(image.Rect(r.Min.X, r.Min.Y+n, r.Min.X+n, r.Max.Y-n), col, nil, sp)
	i.draw(image.Rect(r.Max.X-n, r.Min.Y+n, r.Max.X, r.Max.Y-n), col, nil, sp)
}

// String draws s with its cell's top left corner at pt and returns the
// point just past it.
func (i *Image) String(pt image.Point, src draw.Image, sp image.Point, f draw.Font, s string) image.Point {
	rf, ok := f.(*Font)
	if !ok {
		return pt
	}
	i.d.mu.Lock()
	defer i.d.mu.Unlock()
	if srcimg := source(src); i.rgba != nil && srcimg != nil {
		d := font.Drawer{
			Dst:  i.rgba,
			Src:  srcimg,
			Face: rf.face,
			Dot:  fixed.P(pt.X, pt.Y+rf.ascent),
		}
		d.DrawString(s)
	}
	return pt.Add(image.Pt(rf.StringWidth(s), 0))
}
