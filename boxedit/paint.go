package boxedit

import (
	"log"

	"github.com/polydome/fixedsizeedittext/draw"
)

// GlyphFontName is the font every box's character is drawn in. It is
// a fontsrv name so devdraw scales it to a fixed 30 pixels.
const GlyphFontName = "/mnt/font/GoRegular/30a/font"

// textPaint is the one text style shared by all boxes. It is not
// configurable: black, fixed size, anchored at its centre.
type textPaint struct {
	font  draw.Font
	color draw.Image
}

func newTextPaint(d draw.Display) *textPaint {
	f, err := d.OpenFont(GlyphFontName)
	if err != nil {
		log.Printf("boxedit: can't open %s, using the default font: %v", GlyphFontName, err)
		f = d.DefaultFont()
	}
	return &textPaint{
		font:  f,
		color: d.Black(),
	}
}

// measure returns the size of the cell that s occupies.
func (p *textPaint) measure(s string) (int, int) {
	return p.font.StringWidth(s), p.font.Height()
}
