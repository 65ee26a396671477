package dot

import (
	"math"
	"strings"
	"testing"

	"github.com/matzehuels/dotkit/pkg/errors"
)

func TestValidatedConstructors(t *testing.T) {
	tests := []struct {
		name    string
		build   func() error
		wantErr bool
	}{
		{"fontsize minimum", func() error { _, err := FontSize(1); return err }, false},
		{"fontsize below minimum", func() error { _, err := FontSize(0.5); return err }, true},
		{"fontsize NaN", func() error { _, err := FontSize(math.NaN()); return err }, true},
		{"penwidth zero", func() error { _, err := PenWidth(0); return err }, false},
		{"penwidth negative", func() error { _, err := PenWidth(-1); return err }, true},
		{"width too small", func() error { _, err := Width(0); return err }, true},
		{"height minimum", func() error { _, err := Height(0.02); return err }, false},
		{"dim lower bound", func() error { _, err := Dim(2); return err }, false},
		{"dim upper bound", func() error { _, err := Dim(10); return err }, false},
		{"dim below range", func() error { _, err := Dim(1); return err }, true},
		{"dimen above range", func() error { _, err := Dimen(11); return err }, true},
		{"distortion minimum", func() error { _, err := Distortion(-100); return err }, false},
		{"distortion below minimum", func() error { _, err := Distortion(-100.5); return err }, true},
		{"sides too few", func() error { _, err := Sides(2); return err }, true},
		{"minlen negative", func() error { _, err := MinLen(-1); return err }, true},
		{"weight infinite", func() error { _, err := Weight(math.Inf(1)); return err }, true},
		{"area zero", func() error { _, err := Area(0); return err }, true},
		{"peripheries negative", func() error { _, err := Peripheries(-1); return err }, true},
		{"label scheme range", func() error { _, err := Scheme(4); return err }, true},
		{"arrowhead empty", func() error { _, err := ArrowHead(ArrowType{}); return err }, true},
		{"arrowhead too long", func() error {
			_, err := ArrowHead(ArrowType{ArrowDot, ArrowDot, ArrowDot, ArrowDot, ArrowDot})
			return err
		}, true},
		{"arrowtail four shapes", func() error {
			_, err := ArrowTail(ArrowType{ArrowDot, ArrowDot, ArrowDot, ArrowNormal})
			return err
		}, false},
		{"headport empty", func() error { _, err := HeadPort(Port{}); return err }, true},
		{"tailport bad compass", func() error { _, err := TailPort(PortAt("p", "up")); return err }, true},
		{"color empty", func() error { _, err := Colored(Color{}); return err }, true},
		{"color list bad fraction", func() error { _, err := ColoredList(Red.Then(1.5, Blue)); return err }, true},
		{"color list empty", func() error { _, err := FillColorList(ColorList{}); return err }, true},
		{"packmode zero count", func() error { _, err := Packing(PackArray.Count(0)); return err }, true},
		{"packmode count twice", func() error { _, err := Packing(PackArray.Count(2).Count(3)); return err }, true},
		{"packmode empty", func() error { _, err := Packing(PackMode{}); return err }, true},
		{"layers separator in name", func() error { _, err := Layers("a", "b:c"); return err }, true},
		{"layer empty range", func() error { _, err := Layer(NewLayerRange()); return err }, true},
		{"pos empty", func() error { _, err := Pos(Point{}); return err }, true},
		{"size", func() error { _, err := Size(Pt(7.5, 10)); return err }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.build()
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidValue) {
				t.Errorf("code = %s, want %s", errors.GetCode(err), errors.ErrCodeInvalidValue)
			}
		})
	}
}

func TestValidationMessageNamesBound(t *testing.T) {
	_, err := Dim(11)
	want := "invalid 'dim' attribute: 11, expected between 2 and 10"
	if got := errors.UserMessage(err); got != want {
		t.Errorf("message = %q, want %q", got, want)
	}

	_, err = FontSize(0.5)
	want = "invalid 'fontsize' attribute: 0.5, expected minimum 1"
	if got := errors.UserMessage(err); got != want {
		t.Errorf("message = %q, want %q", got, want)
	}
}

func TestHSV(t *testing.T) {
	c, err := HSV(0.5, 1, 0.25)
	if err != nil {
		t.Fatalf("HSV: %v", err)
	}
	if got := c.String(); got != "0.500 1.000 0.250" {
		t.Errorf("HSV = %q", got)
	}
	if _, err := HSV(1.2, 0, 0); !errors.Is(err, errors.ErrCodeInvalidValue) {
		t.Errorf("HSV out of range: got %v", err)
	}
}

func TestColorList(t *testing.T) {
	l := Red.Then(0.3, Blue).Then(0.4, Green)
	if err := l.Err(); err != nil {
		t.Fatalf("Err() = %v", err)
	}
	if got := l.DOT(); got != `"red;0.30:blue;0.40:green"` {
		t.Errorf("DOT() = %s", got)
	}

	a, err := ColoredList(l)
	if err != nil {
		t.Fatalf("ColoredList: %v", err)
	}
	if got := a.Attribute().String(); got != `color="red;0.30:blue;0.40:green"` {
		t.Errorf("attribute = %s", got)
	}
}

func TestColorListWithoutFractions(t *testing.T) {
	if got := Black.And(White).And(Red).String(); got != "black:white:red" {
		t.Errorf("String() = %q", got)
	}
}

func TestColorListStickyError(t *testing.T) {
	l := Red.Then(-0.1, Blue).Then(0.5, Green)
	if l.Err() == nil {
		t.Fatal("expected error for negative fraction")
	}
	if l.Len() != 3 {
		t.Errorf("Len() = %d, want 3", l.Len())
	}
}

func TestColorListImmutable(t *testing.T) {
	base := NewColorList(Red)
	a := base.And(Blue)
	b := base.And(Green)
	if base.String() != "red" || a.String() != "red:blue" || b.String() != "red:green" {
		t.Errorf("lists share state: base=%s a=%s b=%s", base, a, b)
	}
}

func TestMust(t *testing.T) {
	if got := Must(FontSize(12)).Attribute().String(); got != "fontsize=12" {
		t.Errorf("Must = %s", got)
	}

	defer func() {
		if recover() == nil {
			t.Error("Must did not panic on error")
		}
	}()
	Must(FontSize(0))
}

func TestCustom(t *testing.T) {
	a, err := Custom("peripheries", Int(2), CapN)
	if err != nil {
		t.Fatalf("Custom: %v", err)
	}
	if a.String() != "peripheries=2" || a.Capability() != CapN {
		t.Errorf("Custom = %s (%s)", a, a.Capability())
	}

	for _, tt := range []struct {
		name  string
		attr  string
		value Value
		cap   Capability
	}{
		{"empty name", " ", Int(1), CapN},
		{"nil value", "x", nil, CapN},
		{"no capability", "x", Int(1), 0},
		{"unknown bits", "x", Int(1), Capability(0x80)},
	} {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Custom(tt.attr, tt.value, tt.cap); !errors.Is(err, errors.ErrCodeInvalidValue) {
				t.Errorf("Custom error = %v", err)
			}
		})
	}
}

func TestParse(t *testing.T) {
	a, err := Parse("label", "hello world")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if a.String() != `label="hello world"` || a.Capability() != CapGSNE {
		t.Errorf("Parse = %s (%s)", a, a.Capability())
	}

	a, err = Parse("label", "<<b>x</b>>")
	if err != nil {
		t.Fatalf("Parse html: %v", err)
	}
	if a.String() != "label=<<b>x</b>>" {
		t.Errorf("Parse html = %s", a)
	}

	if _, err := Parse("nosuchattr", "1"); !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("unknown attribute error = %v", err)
	}
}

func TestParseChecksValues(t *testing.T) {
	tests := []struct {
		name    string
		attr    string
		raw     string
		wantErr bool
	}{
		{"fontsize", "fontsize", "10", false},
		{"fontsize below minimum", "fontsize", "-3", true},
		{"fontsize not a number", "fontsize", "large", true},
		{"sides", "sides", "5", false},
		{"sides below range", "sides", "1", true},
		{"sides fraction", "sides", "4.5", true},
		{"shape", "shape", "box", false},
		{"shape without constant", "shape", "star", false},
		{"shape unknown", "shape", "no such shape", true},
		{"rankdir", "rankdir", "LR", false},
		{"rankdir unknown", "rankdir", "L R", true},
		{"dir", "dir", "x]", true},
		{"splines bool", "splines", "true", false},
		{"splines empty", "splines", "", false},
		{"splines unknown", "splines", "wavy", true},
		{"style list", "style", "rounded,filled", false},
		{"style unknown", "style", "rounded,glowing", true},
		{"arrowhead combined", "arrowhead", "odotnormal", false},
		{"arrowhead modifiers", "arrowhead", "lteeoldiamond", false},
		{"arrowhead unknown", "arrowhead", "pointy", true},
		{"arrowhead too many", "arrowhead", "dotdotdotdotdot", true},
		{"packmode array", "packmode", "array_t3", false},
		{"packmode unknown", "packmode", "array_x", true},
		{"headport", "headport", "p:s", false},
		{"headport bad compass", "headport", "p:up", true},
		{"bool yes", "compound", "yes", false},
		{"bool unknown", "compound", "maybe", true},
		{"empty color", "color", " ", true},
		{"weight negative", "weight", "-1", true},
		{"free text unchecked", "tooltip", "<anything>", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.attr, tt.raw)
			if tt.wantErr && !errors.Is(err, errors.ErrCodeInvalidValue) {
				t.Errorf("Parse(%q, %q) error = %v, want INVALID_VALUE", tt.attr, tt.raw, err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Parse(%q, %q) unexpected error: %v", tt.attr, tt.raw, err)
			}
		})
	}
}

func TestParseNamesBound(t *testing.T) {
	_, err := Parse("fontsize", "-3")
	want := "invalid 'fontsize' attribute: -3, expected minimum 1"
	if got := errors.UserMessage(err); got != want {
		t.Errorf("message = %q, want %q", got, want)
	}
}

func TestParseHTMLOnlyForLabels(t *testing.T) {
	a, err := Parse("tooltip", "<b>")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if a.String() != `tooltip="<b>"` {
		t.Errorf("Parse = %s", a)
	}
}

func TestParseAcceptsConstructorValues(t *testing.T) {
	for _, a := range sampleAttrs() {
		attr := a.Attribute()
		raw := strings.Trim(attr.Value().DOT(), `"`)
		if _, err := Parse(attr.Name(), raw); err != nil {
			t.Errorf("Parse(%q, %q): %v", attr.Name(), raw, err)
		}
	}
}

func TestAttributesRender(t *testing.T) {
	var s Attributes
	if got := s.Render(); got != "" {
		t.Errorf("empty Render() = %q", got)
	}

	s = s.Add(Label("a").Attribute(), Attribute{}, Must(Weight(2)).Attribute(), Label("b").Attribute())
	if got := s.Render(); got != ` [label="a",weight=2,label="b"]` {
		t.Errorf("Render() = %q", got)
	}
	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3 (zero attribute skipped, duplicates kept)", s.Len())
	}
}
