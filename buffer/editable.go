// Package buffer provides the editable text model that backs a text
// view. Every mutation is reported to the registered observers with the
// complete new text.
package buffer

import (
	"fmt"
	"unicode/utf8"
)

// Editable is a rune buffer that notifies its observers of each edit.
// It is not safe for concurrent use; views own it on the UI goroutine.
type Editable struct {
	r         []rune
	observers []Observer
}

// NewEditable returns an Editable holding s. No notification is sent
// for the initial contents.
func NewEditable(s string) *Editable {
	return &Editable{r: []rune(s)}
}

// AddObserver adds o as an observer for edits to this Editable.
func (e *Editable) AddObserver(o Observer) {
	for _, x := range e.observers {
		if x == o {
			return
		}
	}
	e.observers = append(e.observers, o)
}

// DelObserver removes o as an observer for edits to this Editable.
func (e *Editable) DelObserver(o Observer) error {
	for i, x := range e.observers {
		if x == o {
			e.observers = append(e.observers[:i], e.observers[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("can't find observer in Editable.DelObserver")
}

// Nr returns the number of runes.
func (e *Editable) Nr() int { return len(e.r) }

// String returns the text as a string.
func (e *Editable) String() string { return string(e.r) }

// Runes returns a copy of the text.
func (e *Editable) Runes() []rune {
	return append([]rune(nil), e.r...)
}

// Replace replaces the runes in [q0, q1) with s. Out of range offsets
// are clamped to the buffer.
func (e *Editable) Replace(q0, q1 int, s []rune) {
	q0 = clamp(q0, 0, len(e.r))
	q1 = clamp(q1, q0, len(e.r))
	if q0 == q1 && len(s) == 0 {
		return
	}

	nr := make([]rune, 0, len(e.r)-(q1-q0)+len(s))
	nr = append(nr, e.r[:q0]...)
	nr = append(nr, s...)
	nr = append(nr, e.r[q1:]...)
	e.r = nr

	e.changed(q0, q1-q0, len(s))
}

// InsertAt inserts s at q0.
func (e *Editable) InsertAt(q0 int, s []rune) {
	e.Replace(q0, q0, s)
}

// DeleteAt deletes the runes in [q0, q1).
func (e *Editable) DeleteAt(q0, q1 int) {
	e.Replace(q0, q1, nil)
}

// Append adds s to the end of the text.
func (e *Editable) Append(s string) {
	e.InsertAt(len(e.r), []rune(s))
}

// Backspace deletes the last rune, if any.
func (e *Editable) Backspace() {
	if len(e.r) > 0 {
		e.DeleteAt(len(e.r)-1, len(e.r))
	}
}

// SetText replaces the whole text with s. Observers are always told,
// even if s is the current text, since views use this to reset state.
func (e *Editable) SetText(s string) {
	before := len(e.r)
	e.r = make([]rune, 0, utf8.RuneCountInString(s))
	e.r = append(e.r, []rune(s)...)
	e.changed(0, before, len(e.r))
}

func (e *Editable) changed(start, before, after int) {
	for _, o := range e.observers {
		o.TextChanged(e.Runes(), start, before, after)
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
