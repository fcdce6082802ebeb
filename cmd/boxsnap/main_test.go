package main

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/polydome/fixedsizeedittext/boxedit"
	"github.com/polydome/fixedsizeedittext/view"
)

func writestyle(t *testing.T, s string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "style.toml")
	if err := os.WriteFile(p, []byte(s), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestRenderFromStyle(t *testing.T) {
	style := writestyle(t, `
length = 6
box_width = 20
box_height = 30
spacing = 4
box_background = "#ff0000"
`)
	s := snapshot{style: style, text: "12", width: 200, height: 40, mode: view.AtMost}
	d, w, err := s.render()
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got := len(w.Characters()); got != 6 {
		t.Errorf("got %d slots, want 6", got)
	}
	if diff := cmp.Diff(boxedit.Properties{BoxWidth: 20, BoxHeight: 30, Spacing: 4}, w.Properties()); diff != "" {
		t.Errorf("Properties mismatch (-want +got):\n%s", diff)
	}
	red := color.RGBA{0xFF, 0, 0, 0xFF}
	if got := d.Screen().RGBAAt(1, 1); got != red {
		t.Errorf("first box pixel = %v, want %v", got, red)
	}
	// The sixth box ends at 6*20+5*4.
	if got := d.Screen().RGBAAt(139, 1); got != red {
		t.Errorf("last box pixel = %v, want %v", got, red)
	}
	if got := d.Screen().RGBAAt(141, 1); got == red {
		t.Errorf("pixel past the boxes is red")
	}
}

func TestRenderShrinks(t *testing.T) {
	s := snapshot{text: "1234", width: 108, height: 80, mode: view.AtMost, background: "filled"}
	_, w, err := s.render()
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if diff := cmp.Diff(boxedit.Properties{BoxWidth: 24, BoxHeight: 56, Spacing: 4}, w.Properties()); diff != "" {
		t.Errorf("Properties mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderErrors(t *testing.T) {
	for _, s := range []snapshot{
		{width: 0, height: 10},
		{width: 10, height: 10, style: filepath.Join(t.TempDir(), "missing.toml")},
		{width: 10, height: 10, style: writestyle(t, "length = [")},
	} {
		if _, _, err := s.render(); err == nil {
			t.Errorf("render(%+v) succeeded", s)
		}
	}
}

func TestWrite(t *testing.T) {
	out := filepath.Join(t.TempDir(), "boxes.png")
	s := snapshot{text: "42", width: 240, height: 70, mode: view.Exactly, out: out}
	if err := s.write(); err != nil {
		t.Fatalf("write: %v", err)
	}
	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decoding %s: %v", out, err)
	}
	if got, want := img.Bounds(), image.Rect(0, 0, 240, 70); got != want {
		t.Errorf("bounds = %v, want %v", got, want)
	}
}

func TestShippedStyles(t *testing.T) {
	for _, tc := range []struct {
		file   string
		length int
	}{
		{"pin.toml", 4},
		{"otp.toml", 6},
	} {
		s := snapshot{style: filepath.Join("..", "..", "styles", tc.file), text: "123", width: 400, height: 80, mode: view.AtMost}
		_, w, err := s.render()
		if err != nil {
			t.Errorf("%s: %v", tc.file, err)
			continue
		}
		p := w.Preferences()
		if p.Length != tc.length || p.BoxBackground == nil {
			t.Errorf("%s: length %d background %v", tc.file, p.Length, p.BoxBackground)
		}
	}
}
