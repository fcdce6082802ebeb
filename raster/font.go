package raster

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/polydome/fixedsizeedittext/draw"
)

// DefaultFontName is used for Display.DefaultFont.
const DefaultFontName = "/mnt/font/GoRegular/13a/font"

var ttfs = map[string][]byte{
	"GoRegular": goregular.TTF,
	"GoBold":    gobold.TTF,
	"GoItalic":  goitalic.TTF,
	"GoMono":    gomono.TTF,
}

var _ = draw.Font((*Font)(nil))

// Font implements draw.Font over a font.Face.
type Font struct {
	name   string
	face   font.Face
	height int
	ascent int
}

// parsefontname splits a fontsrv style name, /mnt/font/GoRegular/30a/font,
// into the family and pixel size.
func parsefontname(name string) (string, int, error) {
	f := strings.Split(strings.Trim(name, "/"), "/")
	if len(f) != 5 || f[0] != "mnt" || f[1] != "font" || f[4] != "font" {
		return "", 0, fmt.Errorf("raster: %q is not a /mnt/font name", name)
	}
	size, err := strconv.Atoi(strings.TrimSuffix(f[3], "a"))
	if err != nil || size <= 0 {
		return "", 0, fmt.Errorf("raster: bad size in font name %q", name)
	}
	return f[2], size, nil
}

func openfont(name string) (*Font, error) {
	family, size, err := parsefontname(name)
	if err != nil {
		return nil, err
	}
	ttf, ok := ttfs[family]
	if !ok {
		return nil, fmt.Errorf("raster: no font family %q", family)
	}
	otf, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("raster: parsing %s: %w", family, err)
	}
	face, err := opentype.NewFace(otf, &opentype.FaceOptions{Size: float64(size), DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("raster: face for %s: %w", name, err)
	}
	m := face.Metrics()
	return &Font{
		name:   name,
		face:   face,
		height: m.Ascent.Ceil() + m.Descent.Ceil(),
		ascent: m.Ascent.Ceil(),
	}, nil
}

func (f *Font) Name() string { return f.name }
func (f *Font) Height() int  { return f.height }

// StringWidth returns the advance of s rounded to whole pixels.
func (f *Font) StringWidth(s string) int {
	return font.MeasureString(f.face, s).Round()
}

func (f *Font) RunesWidth(r []rune) int {
	return f.StringWidth(string(r))
}
