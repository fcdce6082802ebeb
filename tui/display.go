// Package tui hosts a box input in a terminal. Display is a draw.Display
// whose pixels are character cells; Model runs it under bubbletea.
package tui

import (
	"fmt"
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/polydome/fixedsizeedittext/draw"
)

type cell struct {
	r      rune
	fg, bg draw.Color
}

var blank = cell{r: ' ', fg: draw.Notacolor, bg: draw.Notacolor}

var _ = draw.Display((*Display)(nil))

// Display is a grid of cells. Fills set the background of cells, borders
// are drawn with box drawing characters and strings put one rune in each
// cell.
type Display struct {
	screen *Image
}

func NewDisplay(width, height int) *Display {
	d := new(Display)
	d.Resize(width, height)
	return d
}

// Resize replaces the screen with a blank one of the given size.
func (d *Display) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	r := image.Rect(0, 0, width, height)
	d.screen = &Image{d: d, r: r, col: draw.Notacolor, cells: make([]cell, r.Dx()*r.Dy())}
	d.screen.clear()
}

func (d *Display) colour(c draw.Color) *Image {
	return &Image{d: d, r: image.Rect(0, 0, 1, 1), repl: true, col: c}
}

func (d *Display) ScreenImage() draw.Image         { return d.screen }
func (d *Display) White() draw.Image               { return d.colour(draw.White) }
func (d *Display) Black() draw.Image               { return d.colour(draw.Black) }
func (d *Display) Opaque() draw.Image              { return d.colour(draw.Opaque) }
func (d *Display) Transparent() draw.Image         { return d.colour(draw.Transparent) }
func (d *Display) InitKeyboard() *draw.Keyboardctl { return &draw.Keyboardctl{} }
func (d *Display) InitMouse() *draw.Mousectl       { return &draw.Mousectl{} }
func (d *Display) Attach(ref int) error            { return nil }
func (d *Display) Flush() error                    { return nil }

// OpenFont returns the terminal's font whatever name is asked for.
func (d *Display) OpenFont(name string) (draw.Font, error) {
	return &Font{name: name}, nil
}

func (d *Display) DefaultFont() draw.Font {
	return &Font{name: "cell"}
}

// AllocImage only makes colours: off-screen cell images are not
// supported, so every image is a replicated val.
func (d *Display) AllocImage(r image.Rectangle, pix draw.Pix, repl bool, val draw.Color) (draw.Image, error) {
	return d.colour(val), nil
}

// Plain returns the screen as text without colour.
func (d *Display) Plain() string {
	var b strings.Builder
	s := d.screen
	for y := s.r.Min.Y; y < s.r.Max.Y; y++ {
		if y > s.r.Min.Y {
			b.WriteByte('\n')
		}
		for x := s.r.Min.X; x < s.r.Max.X; x++ {
			b.WriteRune(s.at(x, y).r)
		}
	}
	return b.String()
}

// Render returns the screen as lines of runs styled with lipgloss.
func (d *Display) Render() string {
	var b strings.Builder
	s := d.screen
	for y := s.r.Min.Y; y < s.r.Max.Y; y++ {
		if y > s.r.Min.Y {
			b.WriteByte('\n')
		}
		var run []rune
		var style cell
		for x := s.r.Min.X; x < s.r.Max.X; x++ {
			c := s.at(x, y)
			if len(run) > 0 && (c.fg != style.fg || c.bg != style.bg) {
				b.WriteString(cellstyle(style).Render(string(run)))
				run = run[:0]
			}
			style = *c
			run = append(run, c.r)
		}
		if len(run) > 0 {
			b.WriteString(cellstyle(style).Render(string(run)))
		}
	}
	return b.String()
}

func cellstyle(c cell) lipgloss.Style {
	st := lipgloss.NewStyle()
	if c.fg != draw.Notacolor {
		st = st.Foreground(lipgloss.Color(hex(c.fg)))
	}
	if c.bg != draw.Notacolor {
		st = st.Background(lipgloss.Color(hex(c.bg)))
	}
	return st
}

func hex(c draw.Color) string {
	r, g, b, _ := draw.RGBA(c)
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

var _ = draw.Image((*Image)(nil))

// Image is the screen or a colour.
type Image struct {
	d     *Display
	r     image.Rectangle
	repl  bool
	col   draw.Color
	cells []cell
}

func (i *Image) Display() draw.Display { return i.d }
func (i *Image) Pix() draw.Pix         { return 0 }
func (i *Image) R() image.Rectangle    { return i.r }
func (i *Image) Free() error           { return nil }

func (i *Image) clear() {
	for j := range i.cells {
		i.cells[j] = blank
	}
}

func (i *Image) at(x, y int) *cell {
	return &i.cells[(y-i.r.Min.Y)*i.r.Dx()+(x-i.r.Min.X)]
}

// paint returns the colour img paints with, or false if it paints
// nothing.
func paint(img draw.Image) (draw.Color, bool) {
	ci, ok := img.(*Image)
	if !ok || ci.cells != nil {
		return 0, false
	}
	if _, _, _, a := draw.RGBA(ci.col); a == 0 {
		return 0, false
	}
	return ci.col, true
}

// Draw sets the background of the cells in r and blanks them.
func (i *Image) Draw(r image.Rectangle, src, mask draw.Image, p1 image.Point) {
	c, ok := paint(src)
	if !ok || i.cells == nil {
		return
	}
	r = r.Intersect(i.r)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			*i.at(x, y) = cell{r: ' ', fg: draw.Notacolor, bg: c}
		}
	}
}

// Border outlines r with box drawing characters in col. A cell is as
// thick as a border gets, so n only selects inside or outside.
func (i *Image) Border(r image.Rectangle, n int, col draw.Image, sp image.Point) {
	c, ok := paint(col)
	if !ok || i.cells == nil || n == 0 || r.Empty() {
		return
	}
	if n < 0 {
		r = r.Inset(-1)
	}
	last := r.Max.Sub(image.Pt(1, 1))
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if !image.Pt(x, y).In(i.r) {
				continue
			}
			ch := borderrune(x, y, r.Min, last)
			if ch == 0 {
				continue
			}
			p := i.at(x, y)
			p.r = ch
			p.fg = c
		}
	}
}

// borderrune returns the box drawing character at (x, y) on the outline
// from first to last inclusive, or 0 inside it.
func borderrune(x, y int, first, last image.Point) rune {
	top, bottom := y == first.Y, y == last.Y
	left, right := x == first.X, x == last.X
	switch {
	case first.Y == last.Y:
		return '─'
	case first.X == last.X:
		return '│'
	case top && left:
		return '┌'
	case top && right:
		return '┐'
	case bottom && left:
		return '└'
	case bottom && right:
		return '┘'
	case top || bottom:
		return '─'
	case left || right:
		return '│'
	}
	return 0
}

// String puts the runes of s in consecutive cells from pt in the
// colour of src, keeping the cells' backgrounds.
func (i *Image) String(pt image.Point, src draw.Image, sp image.Point, f draw.Font, s string) image.Point {
	c, ok := paint(src)
	for _, r := range s {
		if ok && i.cells != nil && pt.In(i.r) {
			p := i.at(pt.X, pt.Y)
			p.r = r
			p.fg = c
		}
		pt.X += lipgloss.Width(string(r))
	}
	return pt
}

// Font measures in cells.
type Font struct {
	name string
}

func (f *Font) Name() string             { return f.name }
func (f *Font) Height() int              { return 1 }
func (f *Font) StringWidth(s string) int { return lipgloss.Width(s) }
func (f *Font) RunesWidth(r []rune) int  { return lipgloss.Width(string(r)) }
