package fynehost

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/google/go-cmp/cmp"

	"github.com/polydome/fixedsizeedittext/boxedit"
	"github.com/polydome/fixedsizeedittext/draw"
)

func newEntry(t *testing.T, length int) *Entry {
	t.Helper()
	a := test.NewApp()
	t.Cleanup(a.Quit)

	prefs := boxedit.DefaultPreferences()
	prefs.Length = length
	prefs.BoxBackground = boxedit.NewShapeDrawable(draw.Paleyellow, draw.Notacolor, 0)
	return NewEntry(boxedit.New(boxedit.WithPreferences(prefs)))
}

func TestTyping(t *testing.T) {
	e := newEntry(t, 4)
	var changes []string
	e.OnChanged = func(s string) { changes = append(changes, s) }

	test.Type(e, "12345")
	e.TypedKey(&fyne.KeyEvent{Name: fyne.KeyBackspace})

	if got := e.Text(); got != "123" {
		t.Errorf("Text() = %q, want 123", got)
	}
	want := []string{"1", "12", "123", "1234", "123"}
	if diff := cmp.Diff(want, changes); diff != "" {
		t.Errorf("OnChanged mismatch (-want +got):\n%s", diff)
	}
}

func TestBackspaceOnEmpty(t *testing.T) {
	e := newEntry(t, 4)
	called := false
	e.OnChanged = func(string) { called = true }
	e.TypedKey(&fyne.KeyEvent{Name: fyne.KeyBackspace})
	if called {
		t.Errorf("backspace on an empty entry reported a change")
	}
}

func TestSubmit(t *testing.T) {
	e := newEntry(t, 2)
	var submitted []string
	e.OnSubmitted = func(s string) { submitted = append(submitted, s) }

	test.Type(e, "7")
	e.TypedKey(&fyne.KeyEvent{Name: fyne.KeyReturn})
	test.Type(e, "8")
	e.TypedKey(&fyne.KeyEvent{Name: fyne.KeyReturn})

	if diff := cmp.Diff([]string{"78"}, submitted); diff != "" {
		t.Errorf("OnSubmitted mismatch (-want +got):\n%s", diff)
	}
}

func TestMinSize(t *testing.T) {
	e := newEntry(t, 4)
	r := test.WidgetRenderer(e)
	if got, want := r.MinSize(), fyne.NewSize(4*48+3*8, 56); got != want {
		t.Errorf("MinSize() = %v, want %v", got, want)
	}
}

func TestRender(t *testing.T) {
	e := newEntry(t, 4)
	e.SetText("5")

	img := e.render(300, 80)
	if got := img.Bounds().Size(); got.X != 300 || got.Y != 80 {
		t.Fatalf("render size = %v", got)
	}
	if got, want := color.RGBAModel.Convert(img.At(1, 1)), (color.RGBA{0xFF, 0xFF, 0xAA, 0xFF}); got != want {
		t.Errorf("first box pixel = %v, want %v", got, want)
	}
	if got := color.RGBAModel.Convert(img.At(299, 1)).(color.RGBA); got.R != 0xFF || got.B != 0xFF {
		t.Errorf("pixel past the boxes = %v, want the light background", got)
	}

	// Narrower than the boxes: they shrink to fit.
	e.render(108, 80)
	if got, want := e.box.Properties().BoxWidth, 24; got != want {
		t.Errorf("BoxWidth after shrinking = %d, want %d", got, want)
	}
}

func TestFocusRing(t *testing.T) {
	e := newEntry(t, 4)
	e.FocusGained()
	img := e.render(300, 80)
	got := color.RGBAModel.Convert(img.At(150, 79)).(color.RGBA)
	if got.R == 0xFF && got.G == 0xFF && got.B == 0xFF {
		t.Errorf("focused entry has no ring at the bottom edge")
	}
	if got == (color.RGBA{0x88, 0x88, 0xCC, 0xFF}) {
		t.Errorf("focus ring is opaque, want it blended with the background")
	}
	e.FocusLost()
	img = e.render(300, 80)
	if got = color.RGBAModel.Convert(img.At(150, 79)).(color.RGBA); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("unfocused entry bottom edge = %v, want white", got)
	}
}
