package dot

import (
	"math"
	"strings"

	"github.com/matzehuels/dotkit/pkg/errors"
)

// Attribute is a named value together with the capability tag that says
// which element kinds it may be attached to.
type Attribute struct {
	name       string
	value      Value
	capability Capability
}

// Custom returns an attribute the catalog does not cover. It is accepted by
// Apply on any element whose kind is in c.
func Custom(name string, v Value, c Capability) (Attribute, error) {
	switch {
	case strings.TrimSpace(name) == "":
		return Attribute{}, errors.New(errors.ErrCodeInvalidValue, "attribute name cannot be empty")
	case v == nil:
		return Attribute{}, errors.New(errors.ErrCodeInvalidValue, "invalid '%s' attribute: missing value", name)
	case c == 0 || c&^CapGSNE != 0:
		return Attribute{}, errors.New(errors.ErrCodeInvalidValue, "invalid '%s' attribute: bad capability %08b", name, uint8(c))
	}
	return Attribute{name: name, value: v, capability: c}, nil
}

func newAttribute(name string, v Value, c Capability) Attribute {
	return Attribute{name: name, value: v, capability: c}
}

// Name returns the attribute name.
func (a Attribute) Name() string { return a.name }

// Value returns the attribute value.
func (a Attribute) Value() Value { return a.value }

// Capability returns the element kinds the attribute is defined for.
func (a Attribute) Capability() Capability { return a.capability }

// IsZero reports whether a is the zero Attribute.
func (a Attribute) IsZero() bool { return a.name == "" || a.value == nil }

// String renders the attribute as name=value.
func (a Attribute) String() string { return Quote(a.name) + "=" + a.value.DOT() }

// Attributes is the ordered attribute list of one statement. Values are
// immutable: Add returns an extended copy. Duplicate names are kept, the
// engine applies the last one.
type Attributes struct {
	list []Attribute
}

// Add returns a copy of s with attrs appended. Zero attributes are skipped.
func (s Attributes) Add(attrs ...Attribute) Attributes {
	list := s.list[:len(s.list):len(s.list)]
	for _, a := range attrs {
		if !a.IsZero() {
			list = append(list, a)
		}
	}
	return Attributes{list: list}
}

// Len returns the number of attributes.
func (s Attributes) Len() int { return len(s.list) }

// All returns a copy of the attributes in insertion order.
func (s Attributes) All() []Attribute { return append([]Attribute(nil), s.list...) }

// Render returns "" for an empty list and " [a=1,b=2]" otherwise.
func (s Attributes) Render() string {
	if len(s.list) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(" [")
	for i, a := range s.list {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(a.String())
	}
	b.WriteByte(']')
	return b.String()
}

// unwrap converts typed attributes into their untyped form.
func unwrap[T Attr](attrs []T) []Attribute {
	out := make([]Attribute, 0, len(attrs))
	for _, a := range attrs {
		if any(a) != nil {
			out = append(out, a.Attribute())
		}
	}
	return out
}

// checkAll verifies that every attribute may be attached to kind k.
func checkAll(k Kind, attrs []Attribute) error {
	for _, a := range attrs {
		if a.IsZero() {
			return errors.New(errors.ErrCodeInvalidValue, "cannot attach an empty attribute to a %s", k)
		}
		if err := a.capability.check(a, k); err != nil {
			return err
		}
	}
	return nil
}

// Value domain checks used by the attribute constructors. Each one names the
// attribute and the violated bound.

func checkFinite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return errors.New(errors.ErrCodeInvalidValue, "invalid '%s' attribute: %v, expected a finite number", name, v)
	}
	return nil
}

func checkNonNegative(name string, v float64) error {
	if err := checkFinite(name, v); err != nil {
		return err
	}
	if v < 0 {
		return errors.New(errors.ErrCodeInvalidValue, "invalid '%s' attribute: %s, expected non negative number", name, formatFloat(v))
	}
	return nil
}

func checkPositive(name string, v float64) error {
	if err := checkFinite(name, v); err != nil {
		return err
	}
	if v <= 0 {
		return errors.New(errors.ErrCodeInvalidValue, "invalid '%s' attribute: %s, expected positive number", name, formatFloat(v))
	}
	return nil
}

func checkMinimum(name string, v, min float64) error {
	if err := checkFinite(name, v); err != nil {
		return err
	}
	if v < min {
		return errors.New(errors.ErrCodeInvalidValue, "invalid '%s' attribute: %s, expected minimum %s", name, formatFloat(v), formatFloat(min))
	}
	return nil
}

func checkRange(name string, v, min, max int) error {
	if v < min || v > max {
		return errors.New(errors.ErrCodeInvalidValue, "invalid '%s' attribute: %d, expected between %d and %d", name, v, min, max)
	}
	return nil
}

func checkNonNegativeInt(name string, v int) error {
	if v < 0 {
		return errors.New(errors.ErrCodeInvalidValue, "invalid '%s' attribute: %d, expected non negative integer", name, v)
	}
	return nil
}

func checkColor(name string, c Color) error {
	if c.IsZero() {
		return errors.New(errors.ErrCodeInvalidValue, "invalid '%s' attribute: empty color", name)
	}
	return nil
}

func errorf(name, format string, args ...any) error {
	return errors.New(errors.ErrCodeInvalidValue, "invalid '"+name+"' attribute: "+format, args...)
}
