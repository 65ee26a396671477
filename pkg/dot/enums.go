package dot

import (
	"strconv"
	"strings"

	"github.com/matzehuels/dotkit/pkg/errors"
)

// Enumerated attribute values. Each type renders with the spelling the
// engine expects.

// DirType is the value of the dir edge attribute.
type DirType string

const (
	DirForward DirType = "forward"
	DirBack    DirType = "back"
	DirBoth    DirType = "both"
	DirNone    DirType = "none"
)

func (d DirType) DOT() string { return Quote(string(d)) }
func (DirType) value()        {}

// RankDir is the value of the rankdir graph attribute.
type RankDir string

const (
	RankDirTB RankDir = "TB"
	RankDirLR RankDir = "LR"
	RankDirBT RankDir = "BT"
	RankDirRL RankDir = "RL"
)

func (r RankDir) DOT() string { return Quote(string(r)) }
func (RankDir) value()        {}

// RankType is the value of the rank subgraph attribute.
type RankType string

const (
	RankSame   RankType = "same"
	RankMin    RankType = "min"
	RankSource RankType = "source"
	RankMax    RankType = "max"
	RankSink   RankType = "sink"
)

func (r RankType) DOT() string { return Quote(string(r)) }
func (RankType) value()        {}

// FixedSize is the value of the fixedsize node attribute.
type FixedSize string

const (
	FixedSizeTrue  FixedSize = "true"
	FixedSizeFalse FixedSize = "false"
	FixedSizeShape FixedSize = "shape"
)

func (f FixedSize) DOT() string { return Quote(string(f)) }
func (FixedSize) value()        {}

// FontNames controls how font names are written to SVG output.
type FontNames string

const (
	FontNamesSVG FontNames = "svg"
	FontNamesPS  FontNames = "ps"
	FontNamesHD  FontNames = "hd"
)

func (f FontNames) DOT() string { return Quote(string(f)) }
func (FontNames) value()        {}

// LabelJust is the horizontal justification of graph and cluster labels.
type LabelJust string

const (
	LabelJustCenter LabelJust = "c"
	LabelJustRight  LabelJust = "r"
	LabelJustLeft   LabelJust = "l"
)

func (l LabelJust) DOT() string { return Quote(string(l)) }
func (LabelJust) value()        {}

// LabelLoc is the vertical placement of labels.
type LabelLoc string

const (
	LabelLocCenter LabelLoc = "c"
	LabelLocTop    LabelLoc = "t"
	LabelLocBottom LabelLoc = "b"
)

func (l LabelLoc) DOT() string { return Quote(string(l)) }
func (LabelLoc) value()        {}

// LabelScheme selects how neato treats node labels.
type LabelScheme int

const (
	LabelSchemeNone      LabelScheme = 0
	LabelSchemeNeighbor  LabelScheme = 1
	LabelSchemeOldCenter LabelScheme = 2
	LabelSchemeTwoSteps  LabelScheme = 3
)

func (l LabelScheme) DOT() string { return strconv.Itoa(int(l)) }
func (LabelScheme) value()        {}

// Mode is the optimization mode used by neato.
type Mode string

const (
	ModeMajor  Mode = "major"
	ModeKK     Mode = "KK"
	ModeSGD    Mode = "sgd"
	ModeHier   Mode = "hier"
	ModeIpsep  Mode = "ipsep"
	ModeSpring Mode = "spring"
	ModeMaxent Mode = "maxent"
)

func (m Mode) DOT() string { return Quote(string(m)) }
func (Mode) value()        {}

// Model selects how neato computes the distance matrix.
type Model string

const (
	ModelShortPath Model = "shortpath"
	ModelCircuit   Model = "circuit"
	ModelSubset    Model = "subset"
	ModelMDS       Model = "mds"
)

func (m Model) DOT() string { return Quote(string(m)) }
func (Model) value()        {}

// OutputOrder controls the order in which elements are drawn.
type OutputOrder string

const (
	OutputBreadthFirst OutputOrder = "breadthfirst"
	OutputNodesFirst   OutputOrder = "nodesfirst"
	OutputEdgesFirst   OutputOrder = "edgesfirst"
)

func (o OutputOrder) DOT() string { return Quote(string(o)) }
func (OutputOrder) value()        {}

// Ordering constrains the left-to-right order of edges.
type Ordering string

const (
	OrderingIn  Ordering = "in"
	OrderingOut Ordering = "out"
)

func (o Ordering) DOT() string { return Quote(string(o)) }
func (Ordering) value()        {}

// Splines selects how edges are drawn.
type Splines string

const (
	SplinesNone     Splines = "none"
	SplinesLine     Splines = "line"
	SplinesPolyline Splines = "polyline"
	SplinesCurved   Splines = "curved"
	SplinesOrtho    Splines = "ortho"
	SplinesSpline   Splines = "spline"
)

func (s Splines) DOT() string { return Quote(string(s)) }
func (Splines) value()        {}

// Shape is a node shape.
type Shape string

const (
	ShapeBox           Shape = "box"
	ShapeRect          Shape = "rect"
	ShapeEllipse       Shape = "ellipse"
	ShapeOval          Shape = "oval"
	ShapeCircle        Shape = "circle"
	ShapePoint         Shape = "point"
	ShapeEgg           Shape = "egg"
	ShapeTriangle      Shape = "triangle"
	ShapePlainText     Shape = "plaintext"
	ShapePlain         Shape = "plain"
	ShapeDiamond       Shape = "diamond"
	ShapeTrapezium     Shape = "trapezium"
	ShapeParallelogram Shape = "parallelogram"
	ShapeHouse         Shape = "house"
	ShapePentagon      Shape = "pentagon"
	ShapeHexagon       Shape = "hexagon"
	ShapeOctagon       Shape = "octagon"
	ShapeDoubleCircle  Shape = "doublecircle"
	ShapeMdiamond      Shape = "Mdiamond"
	ShapeMsquare       Shape = "Msquare"
	ShapeRecord        Shape = "record"
	ShapeMrecord       Shape = "Mrecord"
	ShapeNone          Shape = "none"
	ShapeNote          Shape = "note"
	ShapeTab           Shape = "tab"
	ShapeFolder        Shape = "folder"
	ShapeBox3D         Shape = "box3d"
	ShapeComponent     Shape = "component"
	ShapeCylinder      Shape = "cylinder"
)

func (s Shape) DOT() string { return Quote(string(s)) }
func (Shape) value()        {}

// Style is a single drawing style. Several styles are combined with Styled.
type Style string

const (
	StyleSolid     Style = "solid"
	StyleDashed    Style = "dashed"
	StyleDotted    Style = "dotted"
	StyleBold      Style = "bold"
	StyleInvis     Style = "invis"
	StyleFilled    Style = "filled"
	StyleRounded   Style = "rounded"
	StyleDiagonals Style = "diagonals"
	StyleStriped   Style = "striped"
	StyleWedged    Style = "wedged"
	StyleRadial    Style = "radial"
	StyleTapered   Style = "tapered"
)

// StyleList is a comma separated list of styles.
type StyleList []Style

func (s StyleList) DOT() string {
	parts := make([]string, len(s))
	for i, st := range s {
		parts[i] = string(st)
	}
	return quoteString(strings.Join(parts, ","))
}
func (StyleList) value() {}

// ArrowShape is a primitive arrow shape, optionally combined with the
// modifiers "o" (open) and "l"/"r" (clip to one side).
type ArrowShape string

const (
	ArrowNormal   ArrowShape = "normal"
	ArrowInv      ArrowShape = "inv"
	ArrowDot      ArrowShape = "dot"
	ArrowODot     ArrowShape = "odot"
	ArrowInvDot   ArrowShape = "invdot"
	ArrowNone     ArrowShape = "none"
	ArrowTee      ArrowShape = "tee"
	ArrowEmpty    ArrowShape = "empty"
	ArrowDiamond  ArrowShape = "diamond"
	ArrowODiamond ArrowShape = "odiamond"
	ArrowBox      ArrowShape = "box"
	ArrowOBox     ArrowShape = "obox"
	ArrowOpen     ArrowShape = "open"
	ArrowHalfOpen ArrowShape = "halfopen"
	ArrowCrow     ArrowShape = "crow"
	ArrowVee      ArrowShape = "vee"
	ArrowCurve    ArrowShape = "curve"
	ArrowICurve   ArrowShape = "icurve"
)

// maxArrowShapes is the number of shapes the engine accepts in one arrow.
const maxArrowShapes = 4

// ArrowType is a sequence of up to four arrow shapes.
type ArrowType []ArrowShape

func (a ArrowType) DOT() string {
	var b strings.Builder
	for _, s := range a {
		b.WriteString(string(s))
	}
	return Quote(b.String())
}
func (ArrowType) value() {}

func (a ArrowType) validate(name string) error {
	if len(a) == 0 || len(a) > maxArrowShapes {
		return errors.New(errors.ErrCodeInvalidValue, "invalid '%s' attribute: %d arrow shapes, expected between 1 and %d", name, len(a), maxArrowShapes)
	}
	return nil
}

// PackAlign is an alignment flag for array pack modes.
type PackAlign string

const (
	PackTop    PackAlign = "t"
	PackBottom PackAlign = "b"
	PackLeft   PackAlign = "l"
	PackRight  PackAlign = "r"
)

// PackMode is the value of the packmode graph attribute.
type PackMode struct {
	mode  string
	align string
	count int
	err   error
}

// Pack modes.
var (
	PackNode   = PackMode{mode: "node"}
	PackClust  = PackMode{mode: "clust"}
	PackGraph  = PackMode{mode: "graph"}
	PackArray  = PackMode{mode: "array"}
	PackArrayC = PackMode{mode: "array_c"}
)

// Count returns a copy of p that packs count items per row or column.
// count must be positive and may be set only once.
func (p PackMode) Count(count int) PackMode {
	switch {
	case p.err != nil:
	case count <= 0:
		p.err = errors.New(errors.ErrCodeInvalidValue, "invalid packmode count: %d, expected positive integer", count)
	case p.count != 0 && p.count != count:
		p.err = errors.New(errors.ErrCodeInvalidValue, "invalid packmode count: already set to %d", p.count)
	default:
		p.count = count
	}
	return p
}

// Align returns a copy of p with an additional alignment flag.
func (p PackMode) Align(a PackAlign) PackMode {
	p.align += string(a)
	return p
}

func (p PackMode) String() string {
	v := p.mode
	if p.align != "" && !strings.Contains(v, "_") {
		v += "_"
	}
	v += p.align
	if p.count > 0 {
		v += strconv.Itoa(p.count)
	}
	return v
}

func (p PackMode) DOT() string { return Quote(p.String()) }
func (PackMode) value()        {}

func (p PackMode) validate(name string) error {
	if p.err != nil {
		return errors.Wrap(errors.ErrCodeInvalidValue, p.err, "invalid '%s' attribute", name)
	}
	if p.mode == "" {
		return errors.New(errors.ErrCodeInvalidValue, "invalid '%s' attribute: empty pack mode", name)
	}
	return nil
}
