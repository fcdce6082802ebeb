package view

import (
	"image"

	"github.com/polydome/fixedsizeedittext/draw"
)

// Host runs the layout protocol for a single root view: measure under
// the given constraints, commit the size, notify on change, place, and
// draw clipped to the destination.
type Host struct {
	view View
	size image.Point
	rect image.Rectangle
}

func NewHost(v View) *Host {
	return &Host{view: v}
}

// Layout measures the view and places it with its top left corner at
// origin. It returns the view's rectangle.
func (h *Host) Layout(origin image.Point, width, height MeasureSpec) image.Rectangle {
	sz := h.view.Measure(width, height)
	if sz.X < 0 {
		sz.X = 0
	}
	if sz.Y < 0 {
		sz.Y = 0
	}
	if old := h.size; sz != old {
		h.size = sz
		h.view.SizeChanged(sz.X, sz.Y, old.X, old.Y)
	}
	h.rect = image.Rectangle{Min: origin, Max: origin.Add(sz)}
	h.view.SetRect(h.rect)
	return h.rect
}

// Size returns the committed size from the last Layout.
func (h *Host) Size() image.Point { return h.size }

// Rect returns the view's rectangle from the last Layout.
func (h *Host) Rect() image.Rectangle { return h.rect }

// Draw paints the view onto dst, clipped to dst's bounds. Views that
// track invalidation are validated afterwards.
func (h *Host) Draw(dst draw.Image) {
	clip := h.rect.Intersect(dst.R())
	if clip.Empty() {
		return
	}
	h.view.Draw(dst, clip)
	if v, ok := h.view.(interface{ Validate() }); ok {
		v.Validate()
	}
}
