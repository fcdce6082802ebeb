// Package view is the small host toolkit contract that widgets are
// written against: a two pass layout (measure, then size and position),
// a base text view that owns an editable text model, and invalidation.
package view

import (
	"image"

	"github.com/polydome/fixedsizeedittext/draw"
)

// View is the capability set a host drives.
type View interface {
	// Measure returns the size the view wants given the parent's
	// constraints on each axis.
	Measure(width, height MeasureSpec) image.Point

	// SizeChanged is called after the committed size differs from the
	// previous one. The old size is zero on the first layout.
	SizeChanged(w, h, oldw, oldh int)

	// SetRect places the view in the coordinates of the image it is
	// drawn on.
	SetRect(r image.Rectangle)

	// Draw paints the view onto dst. clip is the part of the view's
	// rectangle that is visible in dst.
	Draw(dst draw.Image, clip image.Rectangle)
}
