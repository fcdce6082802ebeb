package boxedit

import (
	"image"
	"log"

	"github.com/polydome/fixedsizeedittext/draw"
)

// Drawable is something that can paint itself into a rectangle, such as
// the background of each box. The widget moves one Drawable from box to
// box with SetBounds.
type Drawable interface {
	Bounds() image.Rectangle
	SetBounds(r image.Rectangle)
	Draw(dst draw.Image)
}

// colourcache lazily allocates the single pixel replicated images used
// as paint sources. A Drawable belongs to one widget on one display.
type colourcache struct {
	images map[draw.Color]draw.Image
}

func (c *colourcache) get(dst draw.Image, col draw.Color) draw.Image {
	if i, ok := c.images[col]; ok {
		return i
	}
	i, err := dst.Display().AllocImage(image.Rect(0, 0, 1, 1), dst.Pix(), true, col)
	if err != nil {
		log.Printf("boxedit: can't allocate colour %x: %v", uint32(col), err)
		return nil
	}
	if c.images == nil {
		c.images = make(map[draw.Color]draw.Image)
	}
	c.images[col] = i
	return i
}

// ShapeDrawable fills its bounds and strokes a border inside them.
// Either part is skipped when its colour is draw.Notacolor or, for the
// border, when StrokeWidth is not positive.
type ShapeDrawable struct {
	Fill        draw.Color
	Border      draw.Color
	StrokeWidth int

	bounds image.Rectangle
	cache  colourcache
}

func NewShapeDrawable(fill, border draw.Color, stroke int) *ShapeDrawable {
	return &ShapeDrawable{Fill: fill, Border: border, StrokeWidth: stroke}
}

func (s *ShapeDrawable) Bounds() image.Rectangle     { return s.bounds }
func (s *ShapeDrawable) SetBounds(r image.Rectangle) { s.bounds = r }

func (s *ShapeDrawable) Draw(dst draw.Image) {
	if s.bounds.Empty() {
		return
	}
	if s.Fill != draw.Notacolor {
		if src := s.cache.get(dst, s.Fill); src != nil {
			dst.Draw(s.bounds, src, nil, image.Point{})
		}
	}
	if s.Border != draw.Notacolor && s.StrokeWidth > 0 {
		if src := s.cache.get(dst, s.Border); src != nil {
			dst.Border(s.bounds, s.StrokeWidth, src, image.Point{})
		}
	}
}

// UnderlineDrawable draws a bar along the bottom of its bounds.
type UnderlineDrawable struct {
	Colour    draw.Color
	Thickness int

	bounds image.Rectangle
	cache  colourcache
}

func NewUnderlineDrawable(col draw.Color, thickness int) *UnderlineDrawable {
	return &UnderlineDrawable{Colour: col, Thickness: thickness}
}

func (u *UnderlineDrawable) Bounds() image.Rectangle     { return u.bounds }
func (u *UnderlineDrawable) SetBounds(r image.Rectangle) { u.bounds = r }

func (u *UnderlineDrawable) Draw(dst draw.Image) {
	if u.bounds.Empty() || u.Thickness <= 0 {
		return
	}
	r := u.bounds
	if r.Dy() > u.Thickness {
		r.Min.Y = r.Max.Y - u.Thickness
	}
	if src := u.cache.get(dst, u.Colour); src != nil {
		dst.Draw(r, src, nil, image.Point{})
	}
}
