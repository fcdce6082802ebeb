// Package fynehost puts a box input in a fyne window. The widget is
// drawn off-screen by the raster package and shown as a canvas.Raster.
package fynehost

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/polydome/fixedsizeedittext/boxedit"
	"github.com/polydome/fixedsizeedittext/draw"
	"github.com/polydome/fixedsizeedittext/raster"
	"github.com/polydome/fixedsizeedittext/theme"
	"github.com/polydome/fixedsizeedittext/view"
)

// ringAlpha is the opacity of the focus ring.
const ringAlpha = 0xC0

var (
	_ fyne.Widget    = (*Entry)(nil)
	_ fyne.Focusable = (*Entry)(nil)
	_ fyne.Tappable  = (*Entry)(nil)
)

// Entry is a fyne widget that edits the text of a boxedit.Widget.
type Entry struct {
	widget.BaseWidget

	// OnChanged is called with the text after every edit.
	OnChanged func(string)
	// OnSubmitted is called when return is typed with every box filled.
	OnSubmitted func(string)

	box     *boxedit.Widget
	host    *view.Host
	display *raster.Display
	focused bool
}

func NewEntry(box *boxedit.Widget) *Entry {
	e := &Entry{
		box:  box,
		host: view.NewHost(box),
	}
	e.ExtendBaseWidget(e)
	box.SetInvalidator(e.Refresh)
	return e
}

// Text returns the typed text.
func (e *Entry) Text() string { return e.box.Text() }

// SetText replaces the typed text.
func (e *Entry) SetText(s string) {
	e.box.SetText(s)
	e.changed()
}

func (e *Entry) changed() {
	if e.OnChanged != nil {
		e.OnChanged(e.box.Text())
	}
}

func (e *Entry) full() bool {
	return e.box.Editable().Nr() >= e.box.Preferences().Length
}

func (e *Entry) CreateRenderer() fyne.WidgetRenderer {
	r := &entryRenderer{e: e}
	r.raster = canvas.NewRaster(e.render)
	return r
}

// render draws the box input into a w×h pixel image.
func (e *Entry) render(w, h int) image.Image {
	bg := theme.Current().Background
	r := image.Rect(0, 0, w, h)
	if e.display == nil || e.display.Screen().Bounds() != r {
		e.display = raster.NewDisplay(r, bg)
	} else if fill, err := e.display.AllocImage(image.Rect(0, 0, 1, 1), 0, true, bg); err == nil {
		e.display.ScreenImage().Draw(r, fill, nil, image.Point{})
	}

	e.host.Layout(image.Point{},
		view.MakeMeasureSpec(w, view.AtMost),
		view.MakeMeasureSpec(h, view.AtMost))
	e.host.Draw(e.display.ScreenImage())

	if e.focused {
		if ring, err := e.display.AllocImage(image.Rect(0, 0, 1, 1), 0, true, draw.WithAlpha(theme.Current().BoxUnderline, ringAlpha)); err == nil {
			e.display.ScreenImage().Border(r, 1, ring, image.Point{})
		}
	}
	return e.display.Snapshot()
}

func (e *Entry) minSize() fyne.Size {
	p := e.box.Preferences()
	return fyne.NewSize(float32(p.NaturalWidth()), float32(p.NaturalHeight()))
}

func (e *Entry) Tapped(*fyne.PointEvent) {
	if c := fyne.CurrentApp().Driver().CanvasForObject(e); c != nil {
		c.Focus(e)
	}
}

func (e *Entry) FocusGained() {
	e.focused = true
	e.Refresh()
}

func (e *Entry) FocusLost() {
	e.focused = false
	e.Refresh()
}

// TypedRune appends r unless every box is already filled.
func (e *Entry) TypedRune(r rune) {
	if e.full() {
		return
	}
	e.box.Editable().Append(string(r))
	e.changed()
}

func (e *Entry) TypedKey(ev *fyne.KeyEvent) {
	switch ev.Name {
	case fyne.KeyBackspace, fyne.KeyDelete:
		if e.box.Editable().Nr() == 0 {
			return
		}
		e.box.Editable().Backspace()
		e.changed()
	case fyne.KeyReturn, fyne.KeyEnter:
		if e.full() && e.OnSubmitted != nil {
			e.OnSubmitted(e.box.Text())
		}
	}
}

type entryRenderer struct {
	e      *Entry
	raster *canvas.Raster
}

func (r *entryRenderer) Layout(size fyne.Size) {
	r.raster.Resize(size)
	r.raster.Move(fyne.NewPos(0, 0))
}

func (r *entryRenderer) MinSize() fyne.Size { return r.e.minSize() }

func (r *entryRenderer) Refresh() { r.raster.Refresh() }

func (r *entryRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.raster}
}

func (r *entryRenderer) Destroy() {}
