package boxedit

import "math"

// Properties are the box metrics actually used for drawing. They start
// as the Preferences and shrink to fit the committed size.
type Properties struct {
	BoxWidth  int
	BoxHeight int
	Spacing   int
}

func propertiesFromPreferences(p *Preferences) *Properties {
	return &Properties{
		BoxWidth:  p.BoxWidth,
		BoxHeight: p.BoxHeight,
		Spacing:   p.Spacing,
	}
}

// adjustBoxSize fits the boxes into maxWidth×maxHeight. Box width and
// spacing are scaled by the same factor when the natural width does not
// fit; the box height is capped. The result depends only on prefs and
// the committed size so repeating it is a no-op.
func (props *Properties) adjustBoxSize(prefs *Preferences, maxWidth, maxHeight int) {
	props.BoxWidth = prefs.BoxWidth
	props.Spacing = prefs.Spacing

	if natural := prefs.NaturalWidth(); natural > maxWidth {
		scale := float64(maxWidth) / float64(natural)
		props.Spacing = scaled(prefs.Spacing, scale)
		props.BoxWidth = scaled(prefs.BoxWidth, scale)
	}

	props.BoxHeight = prefs.BoxHeight
	if props.BoxHeight > maxHeight {
		props.BoxHeight = nonnegative(maxHeight)
	}
}

func scaled(v int, scale float64) int {
	return nonnegative(int(math.Round(float64(v) * scale)))
}

// Width is the drawn width of all boxes and gaps for length boxes.
func (props Properties) Width(length int) int {
	return length*props.BoxWidth + (length-1)*props.Spacing
}
