package palette

import (
	"errors"
	"fmt"
)

// MinAccents is the smallest accent palette a scheme may carry.
const MinAccents = 2

// Scheme is a named board palette: an ordered list of accent colors used for
// dark squares plus one color for every light square.
// A Scheme is immutable; accessors hand out copies.
type Scheme struct {
	key     string
	name    string
	accents []Color
	light   Color
}

// NewScheme validates and builds a Scheme. The accents slice is copied.
func NewScheme(key, name string, accents []Color, light Color) (Scheme, error) {
	if key == "" {
		return Scheme{}, errors.New("palette: scheme key is empty")
	}
	if len(accents) < MinAccents {
		return Scheme{}, fmt.Errorf("palette: scheme %q has %d accent colors, need at least %d",
			key, len(accents), MinAccents)
	}
	if name == "" {
		name = key
	}

	cp := make([]Color, len(accents))
	copy(cp, accents)

	return Scheme{
		key:     key,
		name:    name,
		accents: cp,
		light:   light,
	}, nil
}

// Key returns the registry key, e.g. "rainbow".
func (s Scheme) Key() string { return s.key }

// Name returns the human-readable display name.
func (s Scheme) Name() string { return s.name }

// Len returns the number of accent colors.
func (s Scheme) Len() int { return len(s.accents) }

// Accent returns the i-th accent color.
func (s Scheme) Accent(i int) Color { return s.accents[i] }

// Accents returns a copy of the accent colors in order.
func (s Scheme) Accents() []Color {
	cp := make([]Color, len(s.accents))
	copy(cp, s.accents)
	return cp
}

// LightSquare returns the fill for light squares.
func (s Scheme) LightSquare() Color { return s.light }

// IsZero reports whether s is the zero Scheme.
func (s Scheme) IsZero() bool { return s.key == "" }
