// Boxfyne shows a box input in a fyne window and prints the entry to
// standard output when it is submitted.
package main

import (
	"flag"
	"fmt"
	"log"
	"unicode/utf8"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/polydome/fixedsizeedittext/boxedit"
	"github.com/polydome/fixedsizeedittext/fynehost"
	"github.com/polydome/fixedsizeedittext/theme"
)

var styleflag = flag.String("style", "", "Style attribute file (TOML)")
var darkflag = flag.Bool("dark", false, "Use the dark palette")
var bgflag = flag.String("bg", "box", "Box background when the style file names none")

func main() {
	flag.Parse()
	theme.SetDarkMode(*darkflag)

	attrs := new(boxedit.Attributes)
	if *styleflag != "" {
		a, err := boxedit.LoadAttributes(*styleflag)
		if err != nil {
			log.Fatalf("boxfyne: %v", err)
		}
		attrs = a
	}
	if attrs.BoxBackground == nil {
		attrs.BoxBackground = bgflag
	}
	w := boxedit.New(boxedit.WithAttributes(attrs), boxedit.WithDrawableResolver(theme.Resolver))
	length := w.Preferences().Length

	a := app.New()
	win := a.NewWindow("boxfyne")

	status := widget.NewLabel(fmt.Sprintf("0/%d", length))
	entry := fynehost.NewEntry(w)
	entry.OnChanged = func(s string) {
		status.SetText(fmt.Sprintf("%d/%d", utf8.RuneCountInString(s), length))
	}
	entry.OnSubmitted = func(s string) {
		fmt.Println(s)
		a.Quit()
	}

	win.SetContent(container.NewVBox(entry, status))
	win.Resize(fyne.NewSize(400, 150))
	win.Canvas().Focus(entry)
	win.ShowAndRun()
}
