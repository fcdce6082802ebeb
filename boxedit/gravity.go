package boxedit

import (
	"fmt"
	"image"
	"strings"
)

// Gravity places a w×h object inside a container rectangle. Each axis
// is described by four bits: specified, pull before (left/top), pull
// after (right/bottom) and clip.
type Gravity int

const (
	axisSpecified  = 0x1
	axisPullBefore = 0x2
	axisPullAfter  = 0x4
	axisClip       = 0x8

	axisXShift = 0
	axisYShift = 4
)

const (
	NoGravity Gravity = 0

	CenterHorizontal Gravity = axisSpecified << axisXShift
	Left             Gravity = (axisPullBefore | axisSpecified) << axisXShift
	Right            Gravity = (axisPullAfter | axisSpecified) << axisXShift
	FillHorizontal   Gravity = Left | Right
	ClipHorizontal   Gravity = axisClip << axisXShift

	CenterVertical Gravity = axisSpecified << axisYShift
	Top            Gravity = (axisPullBefore | axisSpecified) << axisYShift
	Bottom         Gravity = (axisPullAfter | axisSpecified) << axisYShift
	FillVertical   Gravity = Top | Bottom
	ClipVertical   Gravity = axisClip << axisYShift

	Center = CenterHorizontal | CenterVertical
	Fill   = FillHorizontal | FillVertical
)

var gravitynames = []struct {
	name string
	g    Gravity
}{
	{"center", Center},
	{"center_horizontal", CenterHorizontal},
	{"center_vertical", CenterVertical},
	{"fill", Fill},
	{"fill_horizontal", FillHorizontal},
	{"fill_vertical", FillVertical},
	{"left", Left},
	{"right", Right},
	{"top", Top},
	{"bottom", Bottom},
	{"clip_horizontal", ClipHorizontal},
	{"clip_vertical", ClipVertical},
}

// ParseGravity combines the |-separated flag names in s. Unknown names
// are reported in the error but the valid ones are still returned.
func ParseGravity(s string) (Gravity, error) {
	var g Gravity
	var unknown []string
	for _, f := range strings.Split(s, "|") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "" {
			continue
		}
		found := false
		for _, n := range gravitynames {
			if n.name == f {
				g |= n.g
				found = true
				break
			}
		}
		if !found {
			unknown = append(unknown, f)
		}
	}
	if len(unknown) > 0 {
		return g, fmt.Errorf("unknown gravity %s", strings.Join(unknown, ", "))
	}
	return g, nil
}

func (g Gravity) String() string {
	if g == NoGravity {
		return "none"
	}
	var parts []string
	switch g & FillHorizontal {
	case FillHorizontal:
		parts = append(parts, "fill_horizontal")
	case Left:
		parts = append(parts, "left")
	case Right:
		parts = append(parts, "right")
	case CenterHorizontal:
		parts = append(parts, "center_horizontal")
	}
	switch g & FillVertical {
	case FillVertical:
		parts = append(parts, "fill_vertical")
	case Top:
		parts = append(parts, "top")
	case Bottom:
		parts = append(parts, "bottom")
	case CenterVertical:
		parts = append(parts, "center_vertical")
	}
	if g&ClipHorizontal != 0 {
		parts = append(parts, "clip_horizontal")
	}
	if g&ClipVertical != 0 {
		parts = append(parts, "clip_vertical")
	}
	return strings.Join(parts, "|")
}

// Apply returns the rectangle of a w×h object placed in container
// according to g. xadj and yadj offset the result away from the edge
// being pulled towards.
func (g Gravity) Apply(w, h int, container image.Rectangle, xadj, yadj int) image.Rectangle {
	var out image.Rectangle
	out.Min.X, out.Max.X = g.axis(axisXShift, w, container.Min.X, container.Max.X, xadj)
	out.Min.Y, out.Max.Y = g.axis(axisYShift, h, container.Min.Y, container.Max.Y, yadj)
	return out
}

func (g Gravity) axis(shift uint, size, lo, hi, adj int) (int, int) {
	clip := int(g)&(axisClip<<shift) == axisClip<<shift
	var a, b int

	switch int(g) & ((axisPullBefore | axisPullAfter) << shift) {
	case 0:
		a = lo + (hi-lo-size)/2 + adj
		b = a + size
		if clip {
			if a < lo {
				a = lo
			}
			if b > hi {
				b = hi
			}
		}
	case axisPullBefore << shift:
		a = lo + adj
		b = a + size
		if clip && b > hi {
			b = hi
		}
	case axisPullAfter << shift:
		b = hi - adj
		a = b - size
		if clip && a < lo {
			a = lo
		}
	default:
		a = lo + adj
		b = hi + adj
	}
	return a, b
}
