package dot

import (
	"math"
	"testing"

	"github.com/matzehuels/dotkit/pkg/errors"
)

func TestValueDOT(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"float integral", Float(2), "2"},
		{"float fraction", Float(0.25), "0.25"},
		{"float negative", Float(-1.5), "-1.5"},
		{"int", Int(7), "7"},
		{"bool true", Bool(true), "true"},
		{"bool false", Bool(false), "false"},
		{"html", HTML("<b>x</b>"), "<<b>x</b>>"},
		{"xdot", XDot{"c 7 -#ff0000", "E 0 0 10 10"}, `"c 7 -#ff0000 E 0 0 10 10"`},
		{"point", Pt(1, 2.5), `"1,2.5"`},
		{"point 3d", Pt3(1, 2, 3), `"1,2,3"`},
		{"delta point", Pt(1, 2).Delta(), `"+1,2"`},
		{"compass", CompassNE, "ne"},
		{"port", PortName("p1"), "p1"},
		{"port with compass", PortAt("p1", CompassS), `"p1:s"`},
		{"compass port", CompassPort(CompassW), "w"},
		{"rgb", RGB(255, 0, 16), `"#ff0010"`},
		{"rgba", RGBA(0, 0, 0, 128), `"#00000080"`},
		{"named color", LightGrey, `"lightgrey"`},
		{"shape", ShapeBox, "box"},
		{"style list", StyleList{StyleFilled, StyleRounded}, `"filled,rounded"`},
		{"arrow", ArrowType{ArrowODot, ArrowNormal}, "odotnormal"},
		{"rankdir", RankDirLR, "LR"},
		{"label scheme", LabelScheme(2), "2"},
		{"layer range", NewLayerRange().Include("a").SpanN(2, 4), `"a,2:4"`},
		{"layer range custom", NewLayerRangeSep(";|", " ").Include("a").Include("b"), `"a;b"`},
		{"pack array", PackArray.Align(PackTop).Count(3), `"array_t3"`},
		{"pack array_c", PackArrayC.Align(PackLeft), `"array_cl"`},
		{"pack node", PackNode, `"node"`},
		{"rankdir outside catalog", RankDir("L R"), `"L R"`},
		{"splines empty", Splines(""), `""`},
		{"dir with bracket", DirType("x]"), `"x]"`},
		{"labelloc", LabelLocTop, "t"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.DOT(); got != tt.want {
				t.Errorf("DOT() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestNamedColorQuoting(t *testing.T) {
	// Color specs are text values, so even bare words are quoted.
	if got := Red.DOT(); got != `"red"` {
		t.Errorf("Red.DOT() = %s, want %q", got, "red")
	}
}

func TestPointValidate(t *testing.T) {
	if err := Pt(1, 2).validate("pos"); err != nil {
		t.Errorf("valid point: %v", err)
	}
	if err := (Point{}).validate("pos"); !errors.Is(err, errors.ErrCodeInvalidValue) {
		t.Errorf("empty point: got %v, want INVALID_VALUE", err)
	}
	if err := Pt(math.Inf(1), 0).validate("pos"); !errors.Is(err, errors.ErrCodeInvalidValue) {
		t.Errorf("infinite point: got %v, want INVALID_VALUE", err)
	}
}

func TestLayerRangeImmutable(t *testing.T) {
	base := NewLayerRange().Include("a")
	x := base.Include("x")
	y := base.Include("y")
	if x.DOT() != `"a,x"` || y.DOT() != `"a,y"` || base.DOT() != `"a"` {
		t.Errorf("layer ranges share state: base=%s x=%s y=%s", base.DOT(), x.DOT(), y.DOT())
	}
}
