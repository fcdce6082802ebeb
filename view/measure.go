package view

import "fmt"

// Mode is the constraint a parent places on one axis of a child during
// the measure pass.
type Mode int

const (
	// Unspecified lets the child be whatever size it wants.
	Unspecified Mode = iota
	// AtMost lets the child be as large as it wants up to Size.
	AtMost
	// Exactly forces the child to Size.
	Exactly
)

func (m Mode) String() string {
	switch m {
	case Unspecified:
		return "unspecified"
	case AtMost:
		return "atmost"
	case Exactly:
		return "exactly"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode is the inverse of Mode.String.
func ParseMode(s string) (Mode, error) {
	for _, m := range []Mode{Unspecified, AtMost, Exactly} {
		if m.String() == s {
			return m, nil
		}
	}
	return Unspecified, fmt.Errorf("unknown measure mode %q", s)
}

// MeasureSpec is a single axis constraint.
type MeasureSpec struct {
	Mode Mode
	Size int
}

func MakeMeasureSpec(size int, mode Mode) MeasureSpec {
	if size < 0 {
		size = 0
	}
	return MeasureSpec{Mode: mode, Size: size}
}

func (s MeasureSpec) String() string {
	return fmt.Sprintf("%v %d", s.Mode, s.Size)
}

// Resolve picks the committed size for a child whose natural size on
// this axis is natural.
func (s MeasureSpec) Resolve(natural int) int {
	switch s.Mode {
	case Exactly:
		return s.Size
	case AtMost:
		if natural > s.Size {
			return s.Size
		}
		return natural
	case Unspecified:
		return natural
	}
	return 0
}
