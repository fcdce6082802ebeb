package boxedit

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Attributes is the construction time style attribute set. Every field
// is optional; nil means the attribute was not given.
//
// A style file is TOML:
//
//	length = 6
//	box_width = 40
//	box_height = 52
//	spacing = 6
//	box_background = "outline"
//	box_gravity = "center_horizontal|bottom"
type Attributes struct {
	Length        *int    `toml:"length"`
	BoxWidth      *int    `toml:"box_width"`
	BoxHeight     *int    `toml:"box_height"`
	Spacing       *int    `toml:"spacing"`
	BoxBackground *string `toml:"box_background"`
	BoxGravity    *string `toml:"box_gravity"`
}

// ParseAttributes decodes a TOML style file. Keys it does not know are
// ignored.
func ParseAttributes(data []byte) (*Attributes, error) {
	var a Attributes
	if err := toml.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("parsing style attributes: %w", err)
	}
	return &a, nil
}

// LoadAttributes reads and decodes the style file at path.
func LoadAttributes(path string) (*Attributes, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading style attributes: %w", err)
	}
	return ParseAttributes(b)
}

// Int and String make optional attribute values.
func Int(v int) *int          { return &v }
func String(v string) *string { return &v }
