package dot

import "strings"

// Must returns v or panics if err is non-nil. It is meant for attribute
// values that are known to be valid at compile time:
//
//	n := dot.NewNode("a").With(dot.Must(dot.FontSize(12)))
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Labels and text.

// Label sets the text label of any element.
func Label(s string) AttrGSNE { return AttrGSNE{newAttribute("label", Text(s), CapGSNE)} }

// LabelHTML sets an HTML-like label. The markup is emitted between angle
// brackets without escaping.
func LabelHTML(markup string) AttrGSNE { return AttrGSNE{newAttribute("label", HTML(markup), CapGSNE)} }

// XLabel sets an external label placed near a node or edge.
func XLabel(s string) AttrNE { return AttrNE{newAttribute("xlabel", Text(s), CapNE)} }

// HeadLabel sets the label drawn near the head of an edge.
func HeadLabel(s string) AttrE { return AttrE{newAttribute("headlabel", Text(s), CapE)} }

// TailLabel sets the label drawn near the tail of an edge.
func TailLabel(s string) AttrE { return AttrE{newAttribute("taillabel", Text(s), CapE)} }

func LabelJustify(j LabelJust) AttrGS { return AttrGS{newAttribute("labeljust", j, CapGS)} }

func LabelLocation(l LabelLoc) AttrGSN { return AttrGSN{newAttribute("labelloc", l, CapGSN)} }

func LabelAngle(deg float64) (AttrE, error) {
	if err := checkMinimum("labelangle", deg, -180); err != nil {
		return AttrE{}, err
	}
	return AttrE{newAttribute("labelangle", Float(deg), CapE)}, nil
}

func LabelDistance(d float64) (AttrE, error) {
	if err := checkNonNegative("labeldistance", d); err != nil {
		return AttrE{}, err
	}
	return AttrE{newAttribute("labeldistance", Float(d), CapE)}, nil
}

func LabelFloat(b bool) AttrE { return AttrE{newAttribute("labelfloat", Bool(b), CapE)} }

func NoJustify(b bool) AttrGSN { return AttrGSN{newAttribute("nojustify", Bool(b), CapGSN)} }

// Scheme sets the sfdp label treatment, 0 to 3.
func Scheme(s LabelScheme) (AttrG, error) {
	if err := checkRange("label_scheme", int(s), 0, 3); err != nil {
		return AttrG{}, err
	}
	return AttrG{newAttribute("label_scheme", s, CapG)}, nil
}

// Fonts.

// FontSize sets the font size in points. The engine's minimum is 1.
func FontSize(pt float64) (AttrGSNE, error) {
	if err := checkMinimum("fontsize", pt, 1); err != nil {
		return AttrGSNE{}, err
	}
	return AttrGSNE{newAttribute("fontsize", Float(pt), CapGSNE)}, nil
}

func FontName(name string) AttrGSNE { return AttrGSNE{newAttribute("fontname", Text(name), CapGSNE)} }

func FontColor(c Color) (AttrGSNE, error) {
	if err := checkColor("fontcolor", c); err != nil {
		return AttrGSNE{}, err
	}
	return AttrGSNE{newAttribute("fontcolor", c, CapGSNE)}, nil
}

func FontPath(path string) AttrG { return AttrG{newAttribute("fontpath", Text(path), CapG)} }

func FontNaming(f FontNames) AttrG { return AttrG{newAttribute("fontnames", f, CapG)} }

func LabelFontSize(pt float64) (AttrE, error) {
	if err := checkMinimum("labelfontsize", pt, 1); err != nil {
		return AttrE{}, err
	}
	return AttrE{newAttribute("labelfontsize", Float(pt), CapE)}, nil
}

func LabelFontName(name string) AttrE {
	return AttrE{newAttribute("labelfontname", Text(name), CapE)}
}

// Colors.

// Colored sets the drawing color of a cluster, node or edge.
func Colored(c Color) (AttrSNE, error) {
	if err := checkColor("color", c); err != nil {
		return AttrSNE{}, err
	}
	return AttrSNE{newAttribute("color", c, CapSNE)}, nil
}

// ColoredList sets a multi-color drawing color, used for parallel edges
// and gradients.
func ColoredList(l ColorList) (AttrSNE, error) {
	if err := l.validate("color"); err != nil {
		return AttrSNE{}, err
	}
	return AttrSNE{newAttribute("color", l, CapSNE)}, nil
}

func FillColor(c Color) (AttrSNE, error) {
	if err := checkColor("fillcolor", c); err != nil {
		return AttrSNE{}, err
	}
	return AttrSNE{newAttribute("fillcolor", c, CapSNE)}, nil
}

func FillColorList(l ColorList) (AttrSNE, error) {
	if err := l.validate("fillcolor"); err != nil {
		return AttrSNE{}, err
	}
	return AttrSNE{newAttribute("fillcolor", l, CapSNE)}, nil
}

func BgColor(c Color) (AttrGS, error) {
	if err := checkColor("bgcolor", c); err != nil {
		return AttrGS{}, err
	}
	return AttrGS{newAttribute("bgcolor", c, CapGS)}, nil
}

func BgColorList(l ColorList) (AttrGS, error) {
	if err := l.validate("bgcolor"); err != nil {
		return AttrGS{}, err
	}
	return AttrGS{newAttribute("bgcolor", l, CapGS)}, nil
}

func PenColor(c Color) (AttrS, error) {
	if err := checkColor("pencolor", c); err != nil {
		return AttrS{}, err
	}
	return AttrS{newAttribute("pencolor", c, CapS)}, nil
}

func LabelFontColor(c Color) (AttrE, error) {
	if err := checkColor("labelfontcolor", c); err != nil {
		return AttrE{}, err
	}
	return AttrE{newAttribute("labelfontcolor", c, CapE)}, nil
}

// GradientAngle sets the angle of a linear fill gradient in degrees.
func GradientAngle(deg int) AttrGSN {
	return AttrGSN{newAttribute("gradientangle", Int(deg), CapGSN)}
}

// ColorScheme sets the color scheme used to resolve color names.
func ColorScheme(name string) AttrGSNE {
	return AttrGSNE{newAttribute("colorscheme", Text(name), CapGSNE)}
}

// Shapes and geometry.

func NodeShape(s Shape) AttrN { return AttrN{newAttribute("shape", s, CapN)} }

// Styled sets one or more drawing styles.
func Styled(first Style, rest ...Style) AttrGSNE {
	styles := append(StyleList{first}, rest...)
	return AttrGSNE{newAttribute("style", styles, CapGSNE)}
}

func PenWidth(pt float64) (AttrSNE, error) {
	if err := checkNonNegative("penwidth", pt); err != nil {
		return AttrSNE{}, err
	}
	return AttrSNE{newAttribute("penwidth", Float(pt), CapSNE)}, nil
}

// Width sets the node width in inches. The engine's minimum is 0.01.
func Width(in float64) (AttrN, error) {
	if err := checkMinimum("width", in, 0.01); err != nil {
		return AttrN{}, err
	}
	return AttrN{newAttribute("width", Float(in), CapN)}, nil
}

// Height sets the node height in inches. The engine's minimum is 0.02.
func Height(in float64) (AttrN, error) {
	if err := checkMinimum("height", in, 0.02); err != nil {
		return AttrN{}, err
	}
	return AttrN{newAttribute("height", Float(in), CapN)}, nil
}

func Fixed(f FixedSize) AttrN { return AttrN{newAttribute("fixedsize", f, CapN)} }

func Regular(b bool) AttrN { return AttrN{newAttribute("regular", Bool(b), CapN)} }

// Sides sets the number of sides of a polygon shaped node.
func Sides(n int) (AttrN, error) {
	if err := checkRange("sides", n, 3, 100); err != nil {
		return AttrN{}, err
	}
	return AttrN{newAttribute("sides", Int(n), CapN)}, nil
}

func Distortion(v float64) (AttrN, error) {
	if err := checkMinimum("distortion", v, -100); err != nil {
		return AttrN{}, err
	}
	return AttrN{newAttribute("distortion", Float(v), CapN)}, nil
}

func Skew(v float64) (AttrN, error) {
	if err := checkMinimum("skew", v, -100); err != nil {
		return AttrN{}, err
	}
	return AttrN{newAttribute("skew", Float(v), CapN)}, nil
}

func Peripheries(n int) (AttrSN, error) {
	if err := checkNonNegativeInt("peripheries", n); err != nil {
		return AttrSN{}, err
	}
	return AttrSN{newAttribute("peripheries", Int(n), CapSN)}, nil
}

func Margin(in float64) (AttrGSN, error) {
	if err := checkNonNegative("margin", in); err != nil {
		return AttrGSN{}, err
	}
	return AttrGSN{newAttribute("margin", Float(in), CapGSN)}, nil
}

// Area sets the preferred area of a node or cluster for patchwork.
func Area(v float64) (AttrSN, error) {
	if err := checkPositive("area", v); err != nil {
		return AttrSN{}, err
	}
	return AttrSN{newAttribute("area", Float(v), CapSN)}, nil
}

// Pos sets the node position. Combined with Pin, neato keeps it fixed.
func Pos(p Point) (AttrN, error) {
	if err := p.validate("pos"); err != nil {
		return AttrN{}, err
	}
	return AttrN{newAttribute("pos", p, CapN)}, nil
}

func Pin(b bool) AttrN { return AttrN{newAttribute("pin", Bool(b), CapN)} }

func Image(path string) AttrN { return AttrN{newAttribute("image", Text(path), CapN)} }

func Group(name string) AttrN { return AttrN{newAttribute("group", Text(name), CapN)} }

// Size sets the maximum drawing size in inches.
func Size(p Point) (AttrG, error) {
	if err := p.validate("size"); err != nil {
		return AttrG{}, err
	}
	return AttrG{newAttribute("size", p, CapG)}, nil
}

func DPI(v float64) (AttrG, error) {
	if err := checkNonNegative("dpi", v); err != nil {
		return AttrG{}, err
	}
	return AttrG{newAttribute("dpi", Float(v), CapG)}, nil
}

func Centered(b bool) AttrG { return AttrG{newAttribute("center", Bool(b), CapG)} }

func Rotate(deg int) AttrG { return AttrG{newAttribute("rotate", Int(deg), CapG)} }

func Pad(in float64) (AttrG, error) {
	if err := checkNonNegative("pad", in); err != nil {
		return AttrG{}, err
	}
	return AttrG{newAttribute("pad", Float(in), CapG)}, nil
}

// Layout.

// Layout selects the layout engine by name, overriding the one used to
// render the file.
func Layout(engine string) AttrG { return AttrG{newAttribute("layout", Text(engine), CapG)} }

func LayoutDir(r RankDir) AttrG { return AttrG{newAttribute("rankdir", r, CapG)} }

func LayoutMode(m Mode) AttrG { return AttrG{newAttribute("mode", m, CapG)} }

func DistanceModel(m Model) AttrG { return AttrG{newAttribute("model", m, CapG)} }

func SplinesMode(s Splines) AttrG { return AttrG{newAttribute("splines", s, CapG)} }

func Output(o OutputOrder) AttrG { return AttrG{newAttribute("outputorder", o, CapG)} }

func Order(o Ordering) AttrGN { return AttrGN{newAttribute("ordering", o, CapGN)} }

// RankSep sets the minimum distance between ranks in inches.
func RankSep(in float64) (AttrG, error) {
	if err := checkMinimum("ranksep", in, 0.02); err != nil {
		return AttrG{}, err
	}
	return AttrG{newAttribute("ranksep", Float(in), CapG)}, nil
}

// NodeSep sets the minimum space between adjacent nodes in inches.
func NodeSep(in float64) (AttrG, error) {
	if err := checkMinimum("nodesep", in, 0.02); err != nil {
		return AttrG{}, err
	}
	return AttrG{newAttribute("nodesep", Float(in), CapG)}, nil
}

func ESep(p Point) (AttrG, error) {
	if err := p.validate("esep"); err != nil {
		return AttrG{}, err
	}
	return AttrG{newAttribute("esep", p, CapG)}, nil
}

func Dim(n int) (AttrG, error) {
	if err := checkRange("dim", n, 2, 10); err != nil {
		return AttrG{}, err
	}
	return AttrG{newAttribute("dim", Int(n), CapG)}, nil
}

func Dimen(n int) (AttrG, error) {
	if err := checkRange("dimen", n, 2, 10); err != nil {
		return AttrG{}, err
	}
	return AttrG{newAttribute("dimen", Int(n), CapG)}, nil
}

func Compound(b bool) AttrG { return AttrG{newAttribute("compound", Bool(b), CapG)} }

func Concentrate(b bool) AttrG { return AttrG{newAttribute("concentrate", Bool(b), CapG)} }

func NewRank(b bool) AttrG { return AttrG{newAttribute("newrank", Bool(b), CapG)} }

func Pack(b bool) AttrG { return AttrG{newAttribute("pack", Bool(b), CapG)} }

// Packing sets how connected components are packed together.
func Packing(p PackMode) (AttrG, error) {
	if err := p.validate("packmode"); err != nil {
		return AttrG{}, err
	}
	return AttrG{newAttribute("packmode", p, CapG)}, nil
}

func Rank(r RankType) AttrS { return AttrS{newAttribute("rank", r, CapS)} }

// Cluster marks a subgraph as a cluster without the cluster_ name prefix.
func Cluster(b bool) AttrS { return AttrS{newAttribute("cluster", Bool(b), CapS)} }

func SortV(n int) (AttrGSN, error) {
	if err := checkNonNegativeInt("sortv", n); err != nil {
		return AttrGSN{}, err
	}
	return AttrGSN{newAttribute("sortv", Int(n), CapGSN)}, nil
}

// Layers declares the layer names of the graph in order. Names must not
// contain the layer separator.
func Layers(first string, rest ...string) (AttrG, error) {
	names := append([]string{first}, rest...)
	for _, n := range names {
		if n == "" || strings.ContainsAny(n, DefaultLayerSep) {
			return AttrG{}, errorf("layers", "invalid layer name %q", n)
		}
	}
	return AttrG{newAttribute("layers", Text(strings.Join(names, DefaultLayerSep)), CapG)}, nil
}

func LayerSep(sep string) AttrG { return AttrG{newAttribute("layersep", Text(sep), CapG)} }

func LayerListSep(sep string) AttrG {
	return AttrG{newAttribute("layerlistsep", Text(sep), CapG)}
}

// Layer places a cluster, node or edge on the selected layers.
func Layer(r LayerRange) (AttrSNE, error) {
	if len(r.parts) == 0 {
		return AttrSNE{}, errorf("layer", "empty layer range")
	}
	return AttrSNE{newAttribute("layer", r, CapSNE)}, nil
}

// LayerSelect restricts output to the selected layers.
func LayerSelect(r LayerRange) (AttrG, error) {
	if len(r.parts) == 0 {
		return AttrG{}, errorf("layerselect", "empty layer range")
	}
	return AttrG{newAttribute("layerselect", r, CapG)}, nil
}

// Edges.

func EdgeDir(d DirType) AttrE { return AttrE{newAttribute("dir", d, CapE)} }

func ArrowHead(a ArrowType) (AttrE, error) {
	if err := a.validate("arrowhead"); err != nil {
		return AttrE{}, err
	}
	return AttrE{newAttribute("arrowhead", a, CapE)}, nil
}

func ArrowTail(a ArrowType) (AttrE, error) {
	if err := a.validate("arrowtail"); err != nil {
		return AttrE{}, err
	}
	return AttrE{newAttribute("arrowtail", a, CapE)}, nil
}

func ArrowSize(scale float64) (AttrE, error) {
	if err := checkNonNegative("arrowsize", scale); err != nil {
		return AttrE{}, err
	}
	return AttrE{newAttribute("arrowsize", Float(scale), CapE)}, nil
}

func HeadPort(p Port) (AttrE, error) {
	if err := p.validate("headport"); err != nil {
		return AttrE{}, err
	}
	return AttrE{newAttribute("headport", p, CapE)}, nil
}

func TailPort(p Port) (AttrE, error) {
	if err := p.validate("tailport"); err != nil {
		return AttrE{}, err
	}
	return AttrE{newAttribute("tailport", p, CapE)}, nil
}

// LHead clips the edge at the boundary of the named cluster. Requires
// Compound(true) on the graph.
func LHead(cluster string) AttrE { return AttrE{newAttribute("lhead", Text(cluster), CapE)} }

// LTail is LHead for the tail end.
func LTail(cluster string) AttrE { return AttrE{newAttribute("ltail", Text(cluster), CapE)} }

func Constraint(b bool) AttrE { return AttrE{newAttribute("constraint", Bool(b), CapE)} }

func Decorate(b bool) AttrE { return AttrE{newAttribute("decorate", Bool(b), CapE)} }

func SameHead(group string) AttrE { return AttrE{newAttribute("samehead", Text(group), CapE)} }

func SameTail(group string) AttrE { return AttrE{newAttribute("sametail", Text(group), CapE)} }

func MinLen(ranks int) (AttrE, error) {
	if err := checkNonNegativeInt("minlen", ranks); err != nil {
		return AttrE{}, err
	}
	return AttrE{newAttribute("minlen", Int(ranks), CapE)}, nil
}

func Weight(w float64) (AttrE, error) {
	if err := checkNonNegative("weight", w); err != nil {
		return AttrE{}, err
	}
	return AttrE{newAttribute("weight", Float(w), CapE)}, nil
}

// Output metadata.

func Tooltip(s string) AttrGSNE { return AttrGSNE{newAttribute("tooltip", Text(s), CapGSNE)} }

func URL(u string) AttrGSNE { return AttrGSNE{newAttribute("URL", Text(u), CapGSNE)} }

func Href(u string) AttrGSNE { return AttrGSNE{newAttribute("href", Text(u), CapGSNE)} }

func Target(t string) AttrGSNE { return AttrGSNE{newAttribute("target", Text(t), CapGSNE)} }

// ID sets the identifier used for the element in SVG and image map output.
func ID(id string) AttrGSNE { return AttrGSNE{newAttribute("id", Text(id), CapGSNE)} }

func Class(c string) AttrGSNE { return AttrGSNE{newAttribute("class", Text(c), CapGSNE)} }

func Comment(s string) AttrGNE { return AttrGNE{newAttribute("comment", Text(s), CapGNE)} }

func Charset(name string) AttrG { return AttrG{newAttribute("charset", Text(name), CapG)} }

// Background draws xdot operations beneath the graph.
func Background(ops XDot) AttrG { return AttrG{newAttribute("_background", ops, CapG)} }
