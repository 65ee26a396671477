package dot

import (
	"fmt"
	"math"
	"strings"

	"github.com/matzehuels/dotkit/pkg/errors"
)

// Color is a single color: an X11/SVG color name, an RGB(A) value or an
// HSV triple.
type Color struct {
	spec string
}

// Common named colors.
var (
	Black       = NamedColor("black")
	White       = NamedColor("white")
	Red         = NamedColor("red")
	Green       = NamedColor("green")
	Blue        = NamedColor("blue")
	Yellow      = NamedColor("yellow")
	Orange      = NamedColor("orange")
	Gray        = NamedColor("gray")
	LightGrey   = NamedColor("lightgrey")
	Transparent = NamedColor("transparent")
)

// NamedColor returns the color with the given scheme name, for example
// "lightblue" or "/accent3/2".
func NamedColor(name string) Color { return Color{spec: name} }

// RGB returns an opaque color from 8-bit channels.
func RGB(r, g, b uint8) Color { return Color{spec: fmt.Sprintf("#%02x%02x%02x", r, g, b)} }

// RGBA returns a color with alpha from 8-bit channels.
func RGBA(r, g, b, a uint8) Color {
	return Color{spec: fmt.Sprintf("#%02x%02x%02x%02x", r, g, b, a)}
}

// HSV returns a color from hue, saturation and value, each in [0, 1].
func HSV(h, s, v float64) (Color, error) {
	for _, c := range []struct {
		name string
		v    float64
	}{{"hue", h}, {"saturation", s}, {"value", v}} {
		if err := checkUnit(c.name, c.v); err != nil {
			return Color{}, err
		}
	}
	return Color{spec: fmt.Sprintf("%.3f %.3f %.3f", h, s, v)}, nil
}

func checkUnit(name string, v float64) error {
	if math.IsNaN(v) || v < 0 || v > 1 {
		return errors.New(errors.ErrCodeInvalidValue, "invalid %s: %v, expected between 0.0 and 1.0", name, v)
	}
	return nil
}

// String returns the color specification without quotes.
func (c Color) String() string { return c.spec }

// IsZero reports whether c was never set.
func (c Color) IsZero() bool { return c.spec == "" }

func (c Color) DOT() string { return quoteString(c.spec) }
func (Color) value()        {}

// And starts a color list with c followed by next, without fractions.
func (c Color) And(next Color) ColorList { return NewColorList(c).And(next) }

// Then starts a color list with c, switching to next at the given fraction.
func (c Color) Then(fraction float64, next Color) ColorList {
	return NewColorList(c).Then(fraction, next)
}

// ColorList is an ordered chain of colors with optional transition
// fractions, used for gradients and striped fills.
//
// A fraction belongs to the link into the following color and is written
// after the preceding one, so red.Then(0.3, blue) renders as "red;0.30:blue".
// ColorList values are immutable; And and Then return extended copies.
// The first invalid fraction is remembered and reported by Err and by every
// attribute constructor that receives the list.
type ColorList struct {
	entries []colorEntry
	err     error
}

type colorEntry struct {
	color       Color
	fraction    float64
	hasFraction bool
}

// NewColorList starts a list with a single color.
func NewColorList(first Color) ColorList {
	return ColorList{entries: []colorEntry{{color: first}}}
}

// And returns a copy of l extended with next, without a fraction.
func (l ColorList) And(next Color) ColorList {
	return l.with(colorEntry{color: next})
}

// Then returns a copy of l extended with next, reached at fraction.
// fraction must lie in [0, 1].
func (l ColorList) Then(fraction float64, next Color) ColorList {
	if l.err == nil {
		if err := checkUnit("color fraction", fraction); err != nil {
			l.err = err
		}
	}
	return l.with(colorEntry{color: next, fraction: fraction, hasFraction: true})
}

func (l ColorList) with(e colorEntry) ColorList {
	l.entries = append(l.entries[:len(l.entries):len(l.entries)], e)
	return l
}

// Len returns the number of colors in the list.
func (l ColorList) Len() int { return len(l.entries) }

// Err returns the first validation error recorded while building l.
func (l ColorList) Err() error { return l.err }

func (l ColorList) validate(name string) error {
	if l.err != nil {
		return errors.Wrap(errors.ErrCodeInvalidValue, l.err, "invalid '%s' attribute", name)
	}
	if len(l.entries) == 0 {
		return errors.New(errors.ErrCodeInvalidValue, "invalid '%s' attribute: empty color list", name)
	}
	return nil
}

// String returns the list specification without quotes.
func (l ColorList) String() string {
	var b strings.Builder
	for i, e := range l.entries {
		if i > 0 {
			b.WriteByte(':')
		}
		b.WriteString(e.color.spec)
		if i+1 < len(l.entries) && l.entries[i+1].hasFraction {
			fmt.Fprintf(&b, ";%.2f", l.entries[i+1].fraction)
		}
	}
	return b.String()
}

func (l ColorList) DOT() string { return quoteString(l.String()) }
func (ColorList) value()        {}
