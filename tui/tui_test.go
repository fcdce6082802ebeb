package tui

import (
	"image"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"

	"github.com/polydome/fixedsizeedittext/boxedit"
	"github.com/polydome/fixedsizeedittext/draw"
)

func newWidget(t *testing.T, a *boxedit.Attributes) *boxedit.Widget {
	t.Helper()
	return boxedit.New(
		boxedit.WithAttributes(CellAttributes(a)),
		boxedit.WithDrawableResolver(Resolver),
	)
}

func TestBorder(t *testing.T) {
	d := NewDisplay(6, 4)
	s := d.ScreenImage()
	s.Border(image.Rect(0, 0, 4, 3), 1, d.Black(), image.Point{})
	s.Border(image.Rect(4, 3, 6, 4), 1, d.Black(), image.Point{})

	want := strings.Join([]string{
		"┌──┐  ",
		"│  │  ",
		"└──┘  ",
		"    ──",
	}, "\n")
	if diff := cmp.Diff(want, d.Plain()); diff != "" {
		t.Errorf("Border mismatch (-want +got):\n%s", diff)
	}
}

func TestDrawAndString(t *testing.T) {
	d := NewDisplay(5, 1)
	s := d.ScreenImage()
	fill, _ := d.AllocImage(image.Rect(0, 0, 1, 1), 0, true, draw.Paleyellow)
	s.String(image.Pt(0, 0), d.Black(), image.Point{}, d.DefaultFont(), "abcdef")
	s.Draw(image.Rect(1, 0, 3, 1), fill, nil, image.Point{})
	end := s.String(image.Pt(2, 0), d.Black(), image.Point{}, d.DefaultFont(), "Z")

	if got, want := d.Plain(), "a Zde"; got != want {
		t.Errorf("Plain() = %q, want %q", got, want)
	}
	if end != image.Pt(3, 0) {
		t.Errorf("String returned %v, want (3,0)", end)
	}
	if got := d.screen.at(2, 0); got.bg != draw.Paleyellow || got.fg != draw.Black {
		t.Errorf("cell (2,0) = %+v, want black on pale yellow", got)
	}

	tr := d.Transparent()
	s.Draw(s.R(), tr, nil, image.Point{})
	if got, want := d.Plain(), "a Zde"; got != want {
		t.Errorf("transparent fill changed the screen to %q", got)
	}
}

func TestFontMeasuresCells(t *testing.T) {
	f := NewDisplay(1, 1).DefaultFont()
	if f.Height() != 1 {
		t.Errorf("Height() = %d, want 1", f.Height())
	}
	if got := f.StringWidth("1234"); got != 4 {
		t.Errorf("StringWidth(1234) = %d, want 4", got)
	}
	if got := f.RunesWidth([]rune("日本")); got != 4 {
		t.Errorf("RunesWidth(日本) = %d, want 4", got)
	}
}

func TestCellAttributes(t *testing.T) {
	a := CellAttributes(&boxedit.Attributes{BoxWidth: boxedit.Int(7)})
	if *a.BoxWidth != 7 || *a.BoxHeight != DefaultBoxHeight || *a.Spacing != DefaultSpacing {
		t.Errorf("CellAttributes = %d %d %d", *a.BoxWidth, *a.BoxHeight, *a.Spacing)
	}
	if *a.BoxBackground != "outline" {
		t.Errorf("BoxBackground = %q, want outline", *a.BoxBackground)
	}
	if a := CellAttributes(nil); *a.BoxWidth != DefaultBoxWidth {
		t.Errorf("CellAttributes(nil).BoxWidth = %d", *a.BoxWidth)
	}
}

func TestResolver(t *testing.T) {
	for _, ref := range []string{"box", "filled", "outline", "underline", "#102030"} {
		if _, ok := Resolver(ref); !ok {
			t.Errorf("Resolver(%q) failed", ref)
		}
	}
	if _, ok := Resolver("hatched"); ok {
		t.Errorf("Resolver(hatched) succeeded")
	}
	u, _ := Resolver("underline")
	if got := u.(*boxedit.UnderlineDrawable).Thickness; got != 1 {
		t.Errorf("underline thickness = %d, want 1", got)
	}
}

func typeRunes(m tea.Model, s string) tea.Model {
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return m
}

func TestModelTyping(t *testing.T) {
	var m tea.Model = NewModel(newWidget(t, nil))
	m, _ = m.Update(tea.WindowSizeMsg{Width: 30, Height: 10})
	m = typeRunes(m, "12345")
	m.View()

	tm := m.(Model)
	if got := tm.Text(); got != "1234" {
		t.Errorf("Text() = %q, want 1234", got)
	}
	want := strings.Join([]string{
		" ┌───┐ ┌───┐ ┌───┐ ┌───┐      ",
		" │ 1 │ │ 2 │ │ 3 │ │ 4 │      ",
		" └───┘ └───┘ └───┘ └───┘      ",
	}, "\n")
	if diff := cmp.Diff(want, tm.Screen()); diff != "" {
		t.Errorf("screen mismatch (-want +got):\n%s", diff)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	m.View()
	tm = m.(Model)
	if got := tm.Text(); got != "12" {
		t.Errorf("Text() after backspaces = %q, want 12", got)
	}
	if got, want := strings.Split(tm.Screen(), "\n")[1], " │ 1 │ │ 2 │ │   │ │   │      "; got != want {
		t.Errorf("middle row = %q, want %q", got, want)
	}
}

func TestModelSubmit(t *testing.T) {
	var m tea.Model = NewModel(newWidget(t, &boxedit.Attributes{Length: boxedit.Int(2)}))

	m = typeRunes(m, "9")
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil || m.(Model).Submitted() {
		t.Fatalf("enter on an incomplete entry submitted it")
	}

	m = typeRunes(m, "8")
	m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil || !m.(Model).Submitted() {
		t.Fatalf("enter on a complete entry did not submit")
	}
	if got := m.(Model).Text(); got != "98" {
		t.Errorf("Text() = %q, want 98", got)
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(newWidget(t, nil))
	for _, k := range []tea.KeyType{tea.KeyCtrlC, tea.KeyEsc} {
		if _, cmd := m.Update(tea.KeyMsg{Type: k}); cmd == nil {
			t.Errorf("key %v did not quit", k)
		}
	}
}

func TestModelShrinksToWindow(t *testing.T) {
	var m tea.Model = NewModel(newWidget(t, nil))
	m, _ = m.Update(tea.WindowSizeMsg{Width: 14, Height: 10})
	m.View()

	// 23 cells of boxes squeezed into 12 scale by 12/23.
	props := m.(Model).widget.Properties()
	if diff := cmp.Diff(boxedit.Properties{BoxWidth: 3, BoxHeight: 3, Spacing: 1}, props); diff != "" {
		t.Errorf("Properties mismatch (-want +got):\n%s", diff)
	}
}
