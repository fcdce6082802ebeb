package view

import (
	"image"

	"github.com/polydome/fixedsizeedittext/buffer"
	"github.com/polydome/fixedsizeedittext/draw"
)

// TextView is the base for views that present an editable text model.
// Widgets embed it and shadow the methods they specialise.
type TextView struct {
	editable    *buffer.Editable
	rect        image.Rectangle
	textlen     int
	invalid     bool
	invalidator func()
}

// Init installs a fresh empty editable and registers owner as its
// observer. Installing the editable reports a text change to owner
// straight away, before any of owner's own construction that follows
// Init has happened.
func (t *TextView) Init(owner buffer.Observer) {
	t.editable = buffer.NewEditable("")
	t.editable.AddObserver(owner)
	t.editable.SetText("")
}

// Editable returns the text model.
func (t *TextView) Editable() *buffer.Editable { return t.editable }

// SetText replaces the text.
func (t *TextView) SetText(s string) { t.editable.SetText(s) }

// Text returns the current text.
func (t *TextView) Text() string { return t.editable.String() }

// TextChanged is the default handling of a text change: remember the
// length and ask for a redraw.
func (t *TextView) TextChanged(text []rune, start, before, after int) {
	t.textlen = len(text)
	t.Invalidate()
}

// SetInvalidator sets the function the host wants called whenever the
// view needs to be redrawn.
func (t *TextView) SetInvalidator(f func()) { t.invalidator = f }

// Invalidate marks the view as needing a redraw.
func (t *TextView) Invalidate() {
	t.invalid = true
	if t.invalidator != nil {
		t.invalidator()
	}
}

// Invalid reports whether Invalidate has been called since the last
// Validate.
func (t *TextView) Invalid() bool { return t.invalid }

// Validate clears the invalid flag. Hosts call it after drawing.
func (t *TextView) Validate() { t.invalid = false }

// Rect returns the view's rectangle.
func (t *TextView) Rect() image.Rectangle { return t.rect }

// SetRect places the view.
func (t *TextView) SetRect(r image.Rectangle) { t.rect = r }

// Measure asks for nothing beyond what the parent insists on.
func (t *TextView) Measure(width, height MeasureSpec) image.Point {
	return image.Pt(width.Resolve(0), height.Resolve(0))
}

func (t *TextView) SizeChanged(w, h, oldw, oldh int) {}

func (t *TextView) Draw(dst draw.Image, clip image.Rectangle) {}
