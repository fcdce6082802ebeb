// Package boxedit implements a fixed length text input that draws each
// character centred in its own box, for PIN and one time code entry.
//
// A Widget is a view.View built on view.TextView. The host measures it,
// commits a size, feeds it text through the text model and asks it to
// draw; all of that happens on the host's UI goroutine.
package boxedit

import (
	"image"

	"github.com/polydome/fixedsizeedittext/draw"
	"github.com/polydome/fixedsizeedittext/view"
)

// Sentinel fills the slots past the end of the text.
const Sentinel rune = 0

var _ view.View = (*Widget)(nil)

type Widget struct {
	view.TextView

	prefs      *Preferences
	props      *Properties
	characters []rune

	paint    *textPaint
	textRect image.Rectangle
}

// New returns a Widget styled by opts. With no options it uses
// DefaultPreferences.
func New(opts ...Option) *Widget {
	w := new(Widget)
	// The base view reports its initial empty text before any of the
	// fields below exist. isReady keeps that from being applied.
	w.TextView.Init(w)

	o := new(options)
	for _, opt := range opts {
		opt(o)
	}

	var prefs Preferences
	if o.prefs != nil {
		prefs = sanitised(*o.prefs)
	} else {
		prefs = PreferencesFromAttributes(o.attrs, o.resolve)
	}
	w.prefs = &prefs
	w.characters = make([]rune, prefs.Length)
	w.props = propertiesFromPreferences(w.prefs)
	return w
}

func sanitised(p Preferences) Preferences {
	if p.Length < 1 {
		p.Length = DefaultLength
	}
	p.BoxWidth = nonnegative(p.BoxWidth)
	p.BoxHeight = nonnegative(p.BoxHeight)
	p.Spacing = nonnegative(p.Spacing)
	return p
}

// isReady reports whether construction has finished.
func (w *Widget) isReady() bool { return w.props != nil }

// Preferences returns the resolved style.
func (w *Widget) Preferences() Preferences { return *w.prefs }

// Properties returns the box metrics currently used for drawing.
func (w *Widget) Properties() Properties { return *w.props }

// Characters returns a copy of the character slots.
func (w *Widget) Characters() []rune {
	return append([]rune(nil), w.characters...)
}

// Measure sizes each axis from the preferred box metrics under the
// parent's constraints.
func (w *Widget) Measure(width, height view.MeasureSpec) image.Point {
	return image.Pt(
		width.Resolve(w.prefs.NaturalWidth()),
		height.Resolve(w.prefs.NaturalHeight()),
	)
}

// SizeChanged fits the boxes into the committed size.
func (w *Widget) SizeChanged(nw, nh, oldw, oldh int) {
	w.props.adjustBoxSize(w.prefs, nw, nh)
}

// TextChanged copies the first Length runes of text into the slots,
// pads the rest with Sentinel and asks for a redraw. Before construction
// has finished the change is left to the base view.
func (w *Widget) TextChanged(text []rune, start, before, after int) {
	if !w.isReady() {
		w.TextView.TextChanged(text, start, before, after)
		return
	}

	for i := range w.characters {
		if i < len(text) {
			w.characters[i] = text[i]
		} else {
			w.characters[i] = Sentinel
		}
	}
	w.Invalidate()
}

// Draw paints Length boxes left to right starting at the view's left
// edge and the top of clip, each with its character.
func (w *Widget) Draw(dst draw.Image, clip image.Rectangle) {
	if !w.isReady() {
		return
	}
	if w.paint == nil {
		w.paint = newTextPaint(dst.Display())
	}

	x := w.Rect().Min.X
	box := image.Rect(x, clip.Min.Y, x+w.props.BoxWidth, clip.Min.Y+w.props.BoxHeight)
	step := image.Pt(w.props.BoxWidth+w.props.Spacing, 0)

	bg := w.prefs.BoxBackground
	for i := range w.characters {
		if i > 0 {
			box = box.Add(step)
		}
		if bg != nil {
			bg.SetBounds(box)
			bg.Draw(dst)
		}
		w.drawCharacter(dst, box, i)
	}
}

// drawCharacter places the glyph for slot i in box by gravity and draws
// it anchored at the centre of the placed rectangle. A Sentinel slot is
// drawn as the empty string.
func (w *Widget) drawCharacter(dst draw.Image, box image.Rectangle, i int) {
	s := string(w.characters[i])
	if w.characters[i] == Sentinel {
		s = ""
	}
	gw, gh := w.paint.measure(s)
	w.textRect = w.prefs.BoxGravity.Apply(gw, gh, box, 0, 0)

	c := w.textRect.Min.Add(w.textRect.Max).Div(2)
	pt := image.Pt(c.X-gw/2, c.Y-gh/2)
	dst.String(pt, w.paint.color, image.Point{}, w.paint.font, s)
}
