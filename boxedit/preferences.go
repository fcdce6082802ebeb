package boxedit

import "log"

const (
	DefaultLength    = 4
	DefaultBoxWidth  = 48
	DefaultBoxHeight = 56
	DefaultSpacing   = 8
	DefaultGravity   = Center
)

// DrawableResolver turns a box_background reference into a Drawable.
type DrawableResolver func(ref string) (Drawable, bool)

// Preferences are the widget's style, resolved once at construction.
type Preferences struct {
	Length        int
	BoxWidth      int
	BoxHeight     int
	Spacing       int
	BoxBackground Drawable // may be nil
	BoxGravity    Gravity
}

// DefaultPreferences is what a widget built without attributes uses.
func DefaultPreferences() Preferences {
	return Preferences{
		Length:     DefaultLength,
		BoxWidth:   DefaultBoxWidth,
		BoxHeight:  DefaultBoxHeight,
		Spacing:    DefaultSpacing,
		BoxGravity: DefaultGravity,
	}
}

// PreferencesFromAttributes resolves a, falling back to the defaults for
// anything absent or unusable. It never fails.
func PreferencesFromAttributes(a *Attributes, resolve DrawableResolver) Preferences {
	p := DefaultPreferences()
	if a == nil {
		return p
	}

	if a.Length != nil {
		if *a.Length >= 1 {
			p.Length = *a.Length
		} else {
			log.Printf("boxedit: length %d is less than 1, using %d", *a.Length, DefaultLength)
		}
	}
	if a.BoxWidth != nil {
		p.BoxWidth = nonnegative(*a.BoxWidth)
	}
	if a.BoxHeight != nil {
		p.BoxHeight = nonnegative(*a.BoxHeight)
	}
	if a.Spacing != nil {
		p.Spacing = nonnegative(*a.Spacing)
	}

	if a.BoxBackground != nil && *a.BoxBackground != "" {
		if d, ok := resolvedrawable(resolve, *a.BoxBackground); ok {
			p.BoxBackground = d
		} else {
			log.Printf("boxedit: can't resolve box_background %q", *a.BoxBackground)
		}
	}

	if a.BoxGravity != nil {
		g, err := ParseGravity(*a.BoxGravity)
		if err != nil {
			log.Printf("boxedit: box_gravity: %v", err)
		}
		if g != NoGravity {
			p.BoxGravity = g
		}
	}
	return p
}

func resolvedrawable(resolve DrawableResolver, ref string) (Drawable, bool) {
	if resolve == nil {
		return nil, false
	}
	d, ok := resolve(ref)
	return d, ok && d != nil
}

// NaturalWidth is the width of every box and the gaps between them.
func (p Preferences) NaturalWidth() int {
	return p.Length*p.BoxWidth + (p.Length-1)*p.Spacing
}

// NaturalHeight is the height of a box.
func (p Preferences) NaturalHeight() int {
	return p.BoxHeight
}

func nonnegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
