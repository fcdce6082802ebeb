// Boxsnap renders a box input styled by a style file to a PNG.
package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"os"

	"github.com/polydome/fixedsizeedittext/boxedit"
	"github.com/polydome/fixedsizeedittext/raster"
	"github.com/polydome/fixedsizeedittext/theme"
	"github.com/polydome/fixedsizeedittext/view"
)

var styleflag = flag.String("style", "", "Style attribute file (TOML)")
var textflag = flag.String("text", "", "Text to show in the boxes")
var widthflag = flag.Int("w", 320, "Image width")
var heightflag = flag.Int("h", 80, "Image height")
var modeflag = flag.String("mode", "atmost", "Measure mode for both axes: exactly, atmost or unspecified")
var outflag = flag.String("o", "boxes.png", "Output file")
var darkflag = flag.Bool("dark", false, "Use the dark palette")
var bgflag = flag.String("bg", "box", "Box background when the style file names none")

type snapshot struct {
	style      string
	background string
	text       string
	width      int
	height     int
	mode       view.Mode
	out        string
}

func main() {
	flag.Parse()
	theme.SetDarkMode(*darkflag)

	mode, err := view.ParseMode(*modeflag)
	if err != nil {
		log.Fatalf("boxsnap: %v", err)
	}
	s := snapshot{
		style:      *styleflag,
		background: *bgflag,
		text:       *textflag,
		width:      *widthflag,
		height:     *heightflag,
		mode:       mode,
		out:        *outflag,
	}
	if err := s.write(); err != nil {
		log.Fatalf("boxsnap: %v", err)
	}
}

// render lays out and draws the widget on a fresh raster display.
func (s *snapshot) render() (*raster.Display, *boxedit.Widget, error) {
	if s.width <= 0 || s.height <= 0 {
		return nil, nil, fmt.Errorf("bad image size %dx%d", s.width, s.height)
	}
	var attrs *boxedit.Attributes
	if s.style != "" {
		a, err := boxedit.LoadAttributes(s.style)
		if err != nil {
			return nil, nil, err
		}
		attrs = a
	}
	if attrs == nil {
		attrs = new(boxedit.Attributes)
	}
	if attrs.BoxBackground == nil && s.background != "" {
		attrs.BoxBackground = boxedit.String(s.background)
	}
	w := boxedit.New(boxedit.WithAttributes(attrs), boxedit.WithDrawableResolver(theme.Resolver))
	w.SetText(s.text)

	d := raster.NewDisplay(image.Rect(0, 0, s.width, s.height), theme.Current().Background)
	h := view.NewHost(w)
	h.Layout(image.Point{}, view.MakeMeasureSpec(s.width, s.mode), view.MakeMeasureSpec(s.height, s.mode))
	h.Draw(d.ScreenImage())
	return d, w, nil
}

func (s *snapshot) write() error {
	d, _, err := s.render()
	if err != nil {
		return err
	}
	f, err := os.Create(s.out)
	if err != nil {
		return fmt.Errorf("creating %s: %w", s.out, err)
	}
	if err := d.EncodePNG(f); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", s.out, err)
	}
	return f.Close()
}
