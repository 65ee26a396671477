package dot

import (
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/dotkit/pkg/errors"
)

// Value is the right-hand side of an attribute assignment.
//
// The set of value kinds is closed: text, numbers, booleans, enumerated
// tokens, colors and color lists, points, ports, layer ranges and raw blobs
// (HTML-like labels and xdot drawing operations).
type Value interface {
	// DOT returns the value exactly as it is written after '=' in DOT output.
	DOT() string
	value()
}

// Text is free text. It is always emitted quoted.
type Text string

func (t Text) DOT() string { return quoteString(string(t)) }
func (Text) value()        {}

// Float is a real number rendered without locale or exponent.
type Float float64

func (f Float) DOT() string { return formatFloat(float64(f)) }
func (Float) value()        {}

// Int is an integer value.
type Int int

func (i Int) DOT() string { return strconv.Itoa(int(i)) }
func (Int) value()        {}

// Bool renders as the literal true or false.
type Bool bool

func (b Bool) DOT() string { return strconv.FormatBool(bool(b)) }
func (Bool) value()        {}

// HTML is an HTML-like label. It is emitted between angle brackets and is
// never quoted or escaped.
type HTML string

func (h HTML) DOT() string { return "<" + string(h) + ">" }
func (HTML) value()        {}

// XDot is a list of xdot drawing operations, emitted as one quoted blob.
type XDot []string

func (x XDot) DOT() string { return quoteString(strings.Join(x, " ")) }
func (XDot) value()        {}

// formatFloat renders v with '.' as separator, no grouping and no exponent.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Point is a 2D or 3D coordinate. Delta points are prefixed with '+' in
// output, which tells the engine to add the value to a default.
type Point struct {
	coords []float64
	delta  bool
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point { return Point{coords: []float64{x, y}} }

// Pt3 returns the point (x, y, z).
func Pt3(x, y, z float64) Point { return Point{coords: []float64{x, y, z}} }

// Delta returns a copy of p marked as an increment.
func (p Point) Delta() Point {
	return Point{coords: append([]float64(nil), p.coords...), delta: true}
}

// IsDelta reports whether p is rendered with a leading '+'.
func (p Point) IsDelta() bool { return p.delta }

// Coords returns a copy of the point coordinates.
func (p Point) Coords() []float64 { return append([]float64(nil), p.coords...) }

func (p Point) DOT() string {
	parts := make([]string, len(p.coords))
	for i, c := range p.coords {
		parts[i] = formatFloat(c)
	}
	s := strings.Join(parts, ",")
	if p.delta {
		s = "+" + s
	}
	return quoteString(s)
}
func (Point) value() {}

func (p Point) validate(name string) error {
	if len(p.coords) == 0 {
		return errors.New(errors.ErrCodeInvalidValue, "invalid '%s' attribute: point needs at least one coordinate", name)
	}
	for _, c := range p.coords {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return errors.New(errors.ErrCodeInvalidValue, "invalid '%s' attribute: coordinate %v is not finite", name, c)
		}
	}
	return nil
}

// Compass is a compass point on a node or port boundary.
type Compass string

// Compass points.
const (
	CompassN      Compass = "n"
	CompassNE     Compass = "ne"
	CompassE      Compass = "e"
	CompassSE     Compass = "se"
	CompassS      Compass = "s"
	CompassSW     Compass = "sw"
	CompassW      Compass = "w"
	CompassNW     Compass = "nw"
	CompassCenter Compass = "c"
	CompassAny    Compass = "_"
	compassUnset  Compass = ""
)

// Valid reports whether c is one of the compass points the engine knows.
func (c Compass) Valid() bool {
	switch c {
	case CompassN, CompassNE, CompassE, CompassSE, CompassS, CompassSW, CompassW, CompassNW, CompassCenter, CompassAny:
		return true
	}
	return false
}

func (c Compass) DOT() string {
	if c.Valid() {
		return string(c)
	}
	return Quote(string(c))
}
func (Compass) value() {}

// Port names a record or HTML port, optionally with a compass point.
// A Port with only a compass point refers to the node boundary itself.
type Port struct {
	Name    string
	Compass Compass
}

// PortName returns a port without compass point.
func PortName(name string) Port { return Port{Name: name} }

// PortAt returns a port with a compass point.
func PortAt(name string, c Compass) Port { return Port{Name: name, Compass: c} }

// CompassPort returns a port that consists of a compass point only.
func CompassPort(c Compass) Port { return Port{Compass: c} }

// IsZero reports whether p names neither a port nor a compass point.
func (p Port) IsZero() bool { return p.Name == "" && p.Compass == compassUnset }

// ref renders the port as it follows a node id in a statement.
func (p Port) ref() string {
	switch {
	case p.Name == "":
		return p.Compass.DOT()
	case p.Compass == compassUnset:
		return Quote(p.Name)
	default:
		return Quote(p.Name) + ":" + p.Compass.DOT()
	}
}

func (p Port) DOT() string {
	switch {
	case p.Name == "":
		return p.Compass.DOT()
	case p.Compass == compassUnset:
		return Quote(p.Name)
	default:
		return quoteString(p.Name + ":" + string(p.Compass))
	}
}

func (p Port) validate(name string) error {
	if p.IsZero() {
		return errors.New(errors.ErrCodeInvalidValue, "invalid '%s' attribute: empty port", name)
	}
	if p.Compass != compassUnset && !p.Compass.Valid() {
		return errors.New(errors.ErrCodeInvalidValue, "invalid '%s' attribute: unknown compass point %q", name, p.Compass)
	}
	return nil
}
func (Port) value() {}

// Default layer separators used by the engine.
const (
	DefaultLayerSep     = ":"
	DefaultLayerListSep = ","
)

// LayerRange selects layers by name, number or inclusive range.
type LayerRange struct {
	listSep  string
	rangeSep string
	parts    []string
}

// NewLayerRange starts an empty layer range using the default separators.
func NewLayerRange() LayerRange {
	return LayerRange{listSep: DefaultLayerListSep, rangeSep: DefaultLayerSep}
}

// NewLayerRangeSep starts an empty layer range using custom separators. Only
// the first character of each separator is used, matching the engine's rules.
func NewLayerRangeSep(listSep, rangeSep string) LayerRange {
	return LayerRange{listSep: firstChar(listSep, DefaultLayerListSep), rangeSep: firstChar(rangeSep, DefaultLayerSep)}
}

func firstChar(s, fallback string) string {
	for _, r := range s {
		return string(r)
	}
	return fallback
}

// Include returns a copy of r that also selects layer.
func (r LayerRange) Include(layer string) LayerRange {
	r.parts = append(r.parts[:len(r.parts):len(r.parts)], layer)
	return r
}

// IncludeN returns a copy of r that also selects layer number n.
func (r LayerRange) IncludeN(n int) LayerRange { return r.Include(strconv.Itoa(n)) }

// Span returns a copy of r that also selects all layers from first to last.
func (r LayerRange) Span(first, last string) LayerRange {
	return r.Include(first + r.rangeSep + last)
}

// SpanN is Span for numbered layers.
func (r LayerRange) SpanN(first, last int) LayerRange {
	return r.Span(strconv.Itoa(first), strconv.Itoa(last))
}

func (r LayerRange) DOT() string { return quoteString(strings.Join(r.parts, r.listSep)) }
func (LayerRange) value()        {}

// AllLayers is the layer name that selects every layer.
const AllLayers = "all"
