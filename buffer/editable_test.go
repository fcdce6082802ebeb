package buffer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type change struct {
	Text                 string
	Start, Before, After int
}

type recorder struct {
	changes []change
}

func (r *recorder) TextChanged(text []rune, start, before, after int) {
	r.changes = append(r.changes, change{string(text), start, before, after})
}

func TestEditableNotifies(t *testing.T) {
	tests := []struct {
		name string
		edit func(e *Editable)
		want []change
	}{
		{
			name: "append",
			edit: func(e *Editable) { e.Append("34") },
			want: []change{{"1234", 2, 0, 2}},
		},
		{
			name: "insert in the middle",
			edit: func(e *Editable) { e.InsertAt(1, []rune("x")) },
			want: []change{{"1x2", 1, 0, 1}},
		},
		{
			name: "backspace",
			edit: func(e *Editable) { e.Backspace() },
			want: []change{{"1", 1, 1, 0}},
		},
		{
			name: "delete clamps",
			edit: func(e *Editable) { e.DeleteAt(-4, 40) },
			want: []change{{"", 0, 2, 0}},
		},
		{
			name: "empty edit is silent",
			edit: func(e *Editable) { e.InsertAt(1, nil) },
			want: nil,
		},
		{
			name: "set text always notifies",
			edit: func(e *Editable) { e.SetText("12") },
			want: []change{{"12", 0, 2, 2}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := NewEditable("12")
			r := &recorder{}
			e.AddObserver(r)
			tc.edit(e)
			if diff := cmp.Diff(tc.want, r.changes); diff != "" {
				t.Errorf("changes mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEditableObservers(t *testing.T) {
	e := NewEditable("")
	a, b := &recorder{}, &recorder{}
	e.AddObserver(a)
	e.AddObserver(a)
	e.AddObserver(b)

	e.Append("é")
	if err := e.DelObserver(a); err != nil {
		t.Fatalf("DelObserver: %v", err)
	}
	if err := e.DelObserver(a); err == nil {
		t.Error("second DelObserver should fail")
	}
	e.Backspace()

	if got, want := len(a.changes), 1; got != want {
		t.Errorf("a saw %d changes, want %d", got, want)
	}
	if got, want := len(b.changes), 2; got != want {
		t.Errorf("b saw %d changes, want %d", got, want)
	}
	if got := e.String(); got != "" {
		t.Errorf("String() = %q, want empty", got)
	}
}

func TestRunesIsACopy(t *testing.T) {
	e := NewEditable("ab")
	r := e.Runes()
	r[0] = 'z'
	if got := e.String(); got != "ab" {
		t.Errorf("String() = %q after mutating the copy", got)
	}
	if got := e.Nr(); got != 2 {
		t.Errorf("Nr() = %d, want 2", got)
	}
}
