// Boxtui runs a box input in the terminal and prints the entry to
// standard output once every box is filled and enter is pressed.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/polydome/fixedsizeedittext/boxedit"
	"github.com/polydome/fixedsizeedittext/theme"
	"github.com/polydome/fixedsizeedittext/tui"
)

var styleflag = flag.String("style", "", "Style attribute file (TOML); sizes are in cells")
var darkflag = flag.Bool("dark", false, "Use the dark palette")
var titleflag = flag.String("title", "Enter code", "Title shown above the boxes")
var logflag = flag.String("log", "", "Write log messages to this file")

func main() {
	flag.Parse()
	theme.SetDarkMode(*darkflag)

	var attrs *boxedit.Attributes
	if *styleflag != "" {
		a, err := boxedit.LoadAttributes(*styleflag)
		if err != nil {
			log.Fatalf("boxtui: %v", err)
		}
		attrs = a
	}

	// The terminal belongs to bubbletea from here on.
	if *logflag != "" {
		f, err := tea.LogToFile(*logflag, "boxtui")
		if err != nil {
			log.Fatalf("boxtui: %v", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	w := boxedit.New(
		boxedit.WithAttributes(tui.CellAttributes(attrs)),
		boxedit.WithDrawableResolver(tui.Resolver),
	)
	m := tui.NewModel(w)
	m.Title = *titleflag

	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		log.Fatalf("boxtui: %v", err)
	}
	if fm, ok := final.(tui.Model); ok && fm.Submitted() {
		fmt.Println(fm.Text())
	}
}
