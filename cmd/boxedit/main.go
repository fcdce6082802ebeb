// Boxedit opens a devdraw window holding a box input, and prints the
// entry to standard output once every box is filled and return is typed.
package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"unicode"

	"github.com/polydome/fixedsizeedittext/boxedit"
	"github.com/polydome/fixedsizeedittext/draw"
	"github.com/polydome/fixedsizeedittext/theme"
	"github.com/polydome/fixedsizeedittext/view"
)

const margin = 10

var fontflag = flag.String("f", "/lib/font/bit/lucsans/euro.8.font", "Default font")
var winsize = flag.String("W", "400x120", "Window Size (WidthxHeight)")
var styleflag = flag.String("style", "", "Style attribute file (TOML)")
var darkflag = flag.Bool("dark", false, "Use the dark palette")
var bgflag = flag.String("bg", "box", "Box background when the style file names none")

func main() {
	flag.Parse()
	theme.SetDarkMode(*darkflag)

	var attrs *boxedit.Attributes
	if *styleflag != "" {
		a, err := boxedit.LoadAttributes(*styleflag)
		if err != nil {
			log.Fatalf("boxedit: %v", err)
		}
		attrs = a
	}
	if attrs == nil {
		attrs = new(boxedit.Attributes)
	}
	if attrs.BoxBackground == nil {
		attrs.BoxBackground = bgflag
	}
	w := boxedit.New(boxedit.WithAttributes(attrs), boxedit.WithDrawableResolver(theme.Resolver))

	draw.Main(func(dev *draw.Device) {
		display, err := dev.NewDisplay(nil, *fontflag, "boxedit", *winsize)
		if err != nil {
			log.Fatalf("can't open display: %v", err)
		}
		if text, ok := run(display, w); ok {
			fmt.Println(text)
		}
	})
}

// run edits w until the entry is submitted or abandoned. It returns the
// text and whether it was submitted.
func run(display draw.Display, w *boxedit.Widget) (string, bool) {
	if err := display.Attach(draw.Refnone); err != nil {
		log.Fatalf("failed to attach to window: %v", err)
	}
	mousectl := display.InitMouse()
	keyboardctl := display.InitKeyboard()
	host := view.NewHost(w)
	ed := w.Editable()

	redraw := func() {
		screen := display.ScreenImage()
		if bg, err := display.AllocImage(image.Rect(0, 0, 1, 1), screen.Pix(), true, theme.Current().Background); err == nil {
			screen.Draw(screen.R(), bg, nil, image.Point{})
			bg.Free()
		}
		r := screen.R().Inset(margin)
		host.Layout(r.Min,
			view.MakeMeasureSpec(r.Dx(), view.AtMost),
			view.MakeMeasureSpec(r.Dy(), view.AtMost))
		host.Draw(screen)
		if err := display.Flush(); err != nil {
			log.Printf("flush: %v", err)
		}
	}
	redraw()

	for {
		select {
		case <-mousectl.Resize:
			if err := display.Attach(draw.Refnone); err != nil {
				log.Fatalf("failed to attach to window: %v", err)
			}
			redraw()
		case <-mousectl.C:
		case r := <-keyboardctl.C:
			switch {
			case r == draw.KeyDelete || r == draw.KeyEscape:
				return ed.String(), false
			case r == draw.KeyBackspace:
				ed.Backspace()
			case r == '\n' || r == '\r':
				if ed.Nr() >= w.Preferences().Length {
					return ed.String(), true
				}
			case unicode.IsPrint(r) && ed.Nr() < w.Preferences().Length:
				ed.Append(string(r))
			}
			if w.Invalid() {
				redraw()
			}
		}
	}
}
