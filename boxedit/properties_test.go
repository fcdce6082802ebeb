package boxedit

import (
	"math"
	"testing"

	"github.com/polydome/fixedsizeedittext/view"
)

func TestAtMostHalvesBoxes(t *testing.T) {
	w := New(WithPreferences(Preferences{Length: 4, BoxWidth: 16, BoxHeight: 20, Spacing: 12, BoxGravity: Center}))
	if got := w.Preferences().NaturalWidth(); got != 100 {
		t.Fatalf("natural width %d, want 100", got)
	}

	h := view.NewHost(w)
	r := h.Layout(origin, view.MakeMeasureSpec(50, view.AtMost), view.MakeMeasureSpec(100, view.AtMost))
	if got, want := r.Dx(), 50; got != want {
		t.Errorf("committed width %d, want %d", got, want)
	}
	if got, want := r.Dy(), 20; got != want {
		t.Errorf("committed height %d, want %d", got, want)
	}
	if got, want := w.Properties(), (Properties{BoxWidth: 8, BoxHeight: 20, Spacing: 6}); got != want {
		t.Errorf("properties %+v, want %+v", got, want)
	}
}

func TestAdjustBoxSizeScalesTogether(t *testing.T) {
	for _, prefs := range []Preferences{
		{Length: 4, BoxWidth: 48, BoxHeight: 56, Spacing: 8},
		{Length: 6, BoxWidth: 37, BoxHeight: 40, Spacing: 11},
		{Length: 1, BoxWidth: 30, BoxHeight: 30, Spacing: 100},
		{Length: 5, BoxWidth: 20, BoxHeight: 20, Spacing: 0},
	} {
		natural := prefs.NaturalWidth()
		for maxw := 1; maxw < natural; maxw++ {
			props := propertiesFromPreferences(&prefs)
			props.adjustBoxSize(&prefs, maxw, 1000)

			scale := float64(maxw) / float64(natural)
			if d := math.Abs(float64(props.BoxWidth) - float64(prefs.BoxWidth)*scale); d > 0.5 {
				t.Errorf("%+v at %d: box width %d is not %v scaled", prefs, maxw, props.BoxWidth, scale)
			}
			if d := math.Abs(float64(props.Spacing) - float64(prefs.Spacing)*scale); d > 0.5 {
				t.Errorf("%+v at %d: spacing %d is not %v scaled", prefs, maxw, props.Spacing, scale)
			}
			if d := props.Width(prefs.Length) - maxw; d > prefs.Length || -d > prefs.Length {
				t.Errorf("%+v at %d: drawn width %d is not within rounding", prefs, maxw, props.Width(prefs.Length))
			}
			if props.BoxWidth > prefs.BoxWidth || props.Spacing > prefs.Spacing {
				t.Errorf("%+v at %d: properties %+v grew", prefs, maxw, props)
			}
		}
	}
}

func TestAdjustBoxSizeCapsHeight(t *testing.T) {
	prefs := Preferences{Length: 4, BoxWidth: 10, BoxHeight: 56, Spacing: 2}
	for _, maxh := range []int{0, 1, 30, 56, 57, 200} {
		props := propertiesFromPreferences(&prefs)
		props.adjustBoxSize(&prefs, 1000, maxh)
		if props.BoxHeight > maxh {
			t.Errorf("height %d exceeds %d", props.BoxHeight, maxh)
		}
		if props.BoxHeight > prefs.BoxHeight {
			t.Errorf("height %d exceeds preferred %d", props.BoxHeight, prefs.BoxHeight)
		}
		if props.BoxWidth != 10 || props.Spacing != 2 {
			t.Errorf("width changed with room to spare: %+v", props)
		}
	}
}

func TestAdjustBoxSizeIdempotent(t *testing.T) {
	prefs := Preferences{Length: 6, BoxWidth: 37, BoxHeight: 40, Spacing: 11}
	for _, size := range [][2]int{{100, 20}, {251, 39}, {400, 400}, {0, 0}} {
		props := propertiesFromPreferences(&prefs)
		props.adjustBoxSize(&prefs, size[0], size[1])
		once := *props
		props.adjustBoxSize(&prefs, size[0], size[1])
		if *props != once {
			t.Errorf("%v: second adjustment changed %+v to %+v", size, once, *props)
		}
	}
}

func TestGrowingBackRestoresPreferences(t *testing.T) {
	w := New(WithPreferences(Preferences{Length: 4, BoxWidth: 16, BoxHeight: 20, Spacing: 12}))
	w.SizeChanged(50, 10, 0, 0)
	w.SizeChanged(200, 200, 50, 10)
	if got, want := w.Properties(), (Properties{BoxWidth: 16, BoxHeight: 20, Spacing: 12}); got != want {
		t.Errorf("properties %+v, want %+v", got, want)
	}
}
