package drawtest

import (
	"html/template"
	"image"
	"io"
	"log"
	"strings"
)

var tmpl *template.Template

// init creates a single template with multiple sub-templates.
func init() {
	tmpl = template.New("svgout")
	template.Must(tmpl.New("Fill").Parse(filltemplate))
	template.Must(tmpl.New("Border").Parse(bordertemplate))
	template.Must(tmpl.New("String").Parse(stringtemplate))
	template.Must(tmpl.New("Final").Parse(finalfiletemplate))
}

func execute(name string, args interface{}) string {
	swr := new(strings.Builder)
	if err := tmpl.ExecuteTemplate(swr, name, args); err != nil {
		log.Printf("can't run the template %s on %v because %v\n", name, args, err)
	}
	return swr.String()
}

type Fillargs struct {
	Rect   image.Rectangle
	Colour string
}

const filltemplate = `<rect x="{{.Rect.Min.X}}" y="{{.Rect.Min.Y}}" width="{{.Rect.Dx}}" height="{{.Rect.Dy}}" fill="{{.Colour}}"/>`

func fillsvg(r image.Rectangle, colour string) string {
	return execute("Fill", Fillargs{Rect: r, Colour: colour})
}

type Borderargs struct {
	Rect   image.Rectangle
	Thick  int
	Colour string
}

const bordertemplate = `<rect x="{{.Rect.Min.X}}" y="{{.Rect.Min.Y}}" width="{{.Rect.Dx}}" height="{{.Rect.Dy}}" fill="none" stroke="{{.Colour}}" stroke-width="{{.Thick}}"/>`

func bordersvg(r image.Rectangle, n int, colour string) string {
	return execute("Border", Borderargs{Rect: r, Thick: n, Colour: colour})
}

type Stringargs struct {
	X, Y int
	S    string
}

// Plan 9 draws strings from the top left corner of the cell, SVG from
// the baseline.
const stringtemplate = `<text x="{{.X}}" y="{{.Y}}" fill="black" class="small">{{.S}}</text>`

func stringsvg(pt image.Point, height int, s string) string {
	return execute("String", Stringargs{X: pt.X, Y: pt.Y + height - 2, S: s})
}

const finalfiletemplate = `<html lang="en-US">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width">
</head>
<body>
<svg viewBox="{{.ViewBox.Min.X}} {{.ViewBox.Min.Y}} {{.ViewBox.Dx}} {{.ViewBox.Dy}}" xmlns="http://www.w3.org/2000/svg">
<style>
	.small { font: 14px monospace; }
</style>
<rect x="{{.ScreenBox.Min.X}}" y="{{.ScreenBox.Min.Y}}" width="{{.ScreenBox.Dx}}" height="{{.ScreenBox.Dy}}" fill="none" stroke="grey"/>
{{range .Fragments}}{{.}}
{{end -}}
</svg>
</body>
</html>
`

type Finalfileargs struct {
	// Becomes the viewBox property of the generated SVG.
	ViewBox image.Rectangle

	// The rectangle of interest.
	ScreenBox image.Rectangle

	Fragments []template.HTML
}

const padding = 10

// singlesvgfile writes a single HTML file to w containing every draw op
// overlaid on the rectangle of interest.
func singlesvgfile(w io.Writer, subops []string, rectofi image.Rectangle) error {
	frags := make([]template.HTML, 0, len(subops))
	for _, s := range subops {
		frags = append(frags, template.HTML(s))
	}
	return tmpl.ExecuteTemplate(w, "Final", Finalfileargs{
		ViewBox:   rectofi.Inset(-padding),
		ScreenBox: rectofi,
		Fragments: frags,
	})
}
