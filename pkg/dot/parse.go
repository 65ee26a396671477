package dot

import (
	"strconv"
	"strings"

	"github.com/matzehuels/dotkit/pkg/errors"
)

// Parse builds a catalog attribute from its textual value, as found in
// document files. A label value wrapped in angle brackets becomes an HTML
// label, anything else is emitted as quoted text.
//
// Attributes with a numeric domain or a fixed set of spellings are checked
// against the same bounds the typed constructors apply, so a document cannot
// produce a value the constructors would reject.
func Parse(name, raw string) (Attribute, error) {
	c, ok := known[name]
	if !ok {
		return Attribute{}, errors.New(errors.ErrCodeNotFound, "unknown attribute '%s'", name)
	}
	if htmlLabels[name] && len(raw) >= 2 && strings.HasPrefix(raw, "<") && strings.HasSuffix(raw, ">") {
		return newAttribute(name, HTML(raw[1:len(raw)-1]), c), nil
	}
	if check, ok := valueChecks[name]; ok {
		if err := check(name, raw); err != nil {
			return Attribute{}, err
		}
	}
	return newAttribute(name, Text(raw), c), nil
}

// htmlLabels are the attributes that accept HTML-like markup.
var htmlLabels = map[string]bool{
	"label":     true,
	"xlabel":    true,
	"headlabel": true,
	"taillabel": true,
}

// valueCheck reports whether raw is an acceptable value for attribute name.
type valueCheck func(name, raw string) error

// valueChecks covers the catalog attributes with a restricted domain.
// Free-form attributes such as text, points and margins are absent.
var valueChecks = map[string]valueCheck{
	"area":           floatCheck(Area),
	"arrowhead":      arrowCheck,
	"arrowsize":      floatCheck(ArrowSize),
	"arrowtail":      arrowCheck,
	"bgcolor":        colorCheck,
	"center":         boolCheck,
	"cluster":        boolCheck,
	"color":          colorCheck,
	"compound":       boolCheck,
	"concentrate":    boolCheck,
	"constraint":     boolCheck,
	"decorate":       boolCheck,
	"dim":            intCheck(Dim),
	"dimen":          intCheck(Dimen),
	"dir":            oneOf(DirForward, DirBack, DirBoth, DirNone),
	"distortion":     floatCheck(Distortion),
	"dpi":            floatCheck(DPI),
	"fillcolor":      colorCheck,
	"fixedsize":      either(oneOf(FixedSizeShape), boolCheck),
	"fontcolor":      colorCheck,
	"fontnames":      oneOf(FontNamesSVG, FontNamesPS, FontNamesHD, FontNames("gd"), FontNames("")),
	"fontsize":       floatCheck(FontSize),
	"gradientangle":  intCheck(func(n int) (AttrGSN, error) { return GradientAngle(n), nil }),
	"headport":       portCheck,
	"height":         floatCheck(Height),
	"label_scheme":   intCheck(func(n int) (AttrG, error) { return Scheme(LabelScheme(n)) }),
	"labelangle":     floatCheck(LabelAngle),
	"labeldistance":  floatCheck(LabelDistance),
	"labelfloat":     boolCheck,
	"labelfontcolor": colorCheck,
	"labelfontsize":  floatCheck(LabelFontSize),
	"labeljust":      oneOf(LabelJustLeft, LabelJustRight, LabelJustCenter),
	"labelloc":       oneOf(LabelLocTop, LabelLocCenter, LabelLocBottom),
	"minlen":         intCheck(MinLen),
	"mode":           oneOf(ModeMajor, ModeKK, ModeSGD, ModeHier, ModeIpsep, ModeSpring, ModeMaxent),
	"model":          oneOf(ModelShortPath, ModelCircuit, ModelSubset, ModelMDS),
	"newrank":        boolCheck,
	"nodesep":        floatCheck(NodeSep),
	"nojustify":      boolCheck,
	"ordering":       oneOf(OrderingIn, OrderingOut, Ordering("")),
	"outputorder":    oneOf(OutputBreadthFirst, OutputNodesFirst, OutputEdgesFirst),
	"pack":           boolCheck,
	"packmode":       packCheck,
	"pencolor":       colorCheck,
	"penwidth":       floatCheck(PenWidth),
	"peripheries":    intCheck(Peripheries),
	"pin":            boolCheck,
	"rank":           oneOf(RankSame, RankMin, RankSource, RankMax, RankSink),
	"rankdir":        oneOf(RankDirTB, RankDirLR, RankDirBT, RankDirRL),
	"regular":        boolCheck,
	"rotate":         intCheck(func(n int) (AttrG, error) { return Rotate(n), nil }),
	"shape":          oneOf(shapeNames...),
	"sides":          intCheck(Sides),
	"skew":           floatCheck(Skew),
	"sortv":          intCheck(SortV),
	"splines":        either(oneOf(SplinesNone, SplinesLine, SplinesPolyline, SplinesCurved, SplinesOrtho, SplinesSpline, Splines("compound"), Splines("")), boolCheck),
	"style":          styleCheck,
	"tailport":       portCheck,
	"weight":         floatCheck(Weight),
	"width":          floatCheck(Width),
}

// shapeNames is every node shape the engine knows, including the ones
// without a Shape constant.
var shapeNames = []Shape{
	"box", "polygon", "ellipse", "oval", "circle", "point", "egg", "triangle",
	"plaintext", "plain", "diamond", "trapezium", "parallelogram", "house",
	"pentagon", "hexagon", "septagon", "octagon", "doublecircle",
	"doubleoctagon", "tripleoctagon", "invtriangle", "invtrapezium", "invhouse",
	"Mdiamond", "Msquare", "Mcircle", "rect", "rectangle", "square", "star",
	"none", "underline", "cylinder", "note", "tab", "folder", "box3d",
	"component", "promoter", "cds", "terminator", "utr", "primersite",
	"restrictionsite", "fivepoverhang", "threepoverhang", "noverhang",
	"assembly", "signature", "insulator", "ribosite", "rnastab",
	"proteasesite", "proteinstab", "rpromoter", "rarrow", "larrow",
	"lpromoter", "record", "Mrecord",
}

var styleNames = []Style{
	StyleSolid, StyleDashed, StyleDotted, StyleBold, StyleInvis, StyleFilled,
	StyleRounded, StyleDiagonals, StyleStriped, StyleWedged, StyleRadial,
	StyleTapered,
}

// arrowNames are the primitive arrow shapes, plus the older spellings the
// engine still accepts.
var arrowNames = []string{
	"box", "crow", "curve", "icurve", "diamond", "dot", "inv", "none",
	"normal", "tee", "vee", "ediamond", "open", "halfopen", "empty",
	"invempty", "invdot", "invodot",
}

func floatCheck[T any](build func(float64) (T, error)) valueCheck {
	return func(name, raw string) error {
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return errorf(name, "%q, expected a number", raw)
		}
		_, err = build(v)
		return err
	}
}

func intCheck[T any](build func(int) (T, error)) valueCheck {
	return func(name, raw string) error {
		v, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return errorf(name, "%q, expected an integer", raw)
		}
		_, err = build(v)
		return err
	}
}

func oneOf[T ~string](values ...T) valueCheck {
	return func(name, raw string) error {
		for _, v := range values {
			if raw == string(v) {
				return nil
			}
		}
		names := make([]string, 0, len(values))
		for _, v := range values {
			if v != "" {
				names = append(names, string(v))
			}
		}
		if len(names) > 8 {
			return errorf(name, "unknown value %q", raw)
		}
		return errorf(name, "%q, expected one of %s", raw, strings.Join(names, ", "))
	}
}

// either accepts raw when any of the checks does and reports the first
// check's error otherwise.
func either(first valueCheck, rest ...valueCheck) valueCheck {
	return func(name, raw string) error {
		err := first(name, raw)
		if err == nil {
			return nil
		}
		for _, c := range rest {
			if c(name, raw) == nil {
				return nil
			}
		}
		return err
	}
}

// boolCheck accepts the engine's boolean spellings: true, false, yes, no in
// any case, or an integer.
func boolCheck(name, raw string) error {
	switch strings.ToLower(raw) {
	case "true", "false", "yes", "no":
		return nil
	}
	if _, err := strconv.Atoi(raw); err == nil {
		return nil
	}
	return errorf(name, "%q, expected true or false", raw)
}

func colorCheck(name, raw string) error {
	if strings.TrimSpace(raw) == "" {
		return errorf(name, "empty color")
	}
	return nil
}

func styleCheck(name, raw string) error {
	if raw == "" {
		return nil
	}
	check := oneOf(styleNames...)
	for _, s := range strings.Split(raw, ",") {
		s = strings.TrimSpace(s)
		if strings.HasPrefix(s, "setlinewidth(") {
			continue
		}
		if err := check(name, s); err != nil {
			return err
		}
	}
	return nil
}

func portCheck(name, raw string) error {
	if raw == "" {
		return errorf(name, "empty port")
	}
	if i := strings.LastIndexByte(raw, ':'); i >= 0 {
		if c := Compass(raw[i+1:]); !c.Valid() {
			return errorf(name, "unknown compass point %q", c)
		}
	}
	return nil
}

func arrowCheck(name, raw string) error {
	if n, ok := arrowShapes(raw); !ok || n == 0 || n > maxArrowShapes {
		return errorf(name, "%q is not an arrow type", raw)
	}
	return nil
}

// arrowShapes splits s into primitive shapes, each with optional "o" and
// "l" or "r" modifiers, and returns how many it found.
func arrowShapes(s string) (int, bool) {
	if s == "" {
		return 0, true
	}
	for _, mod := range []string{"", "o", "l", "r", "ol", "or"} {
		if !strings.HasPrefix(s, mod) {
			continue
		}
		t := s[len(mod):]
		for _, a := range arrowNames {
			if !strings.HasPrefix(t, a) {
				continue
			}
			if n, ok := arrowShapes(t[len(a):]); ok {
				return n + 1, true
			}
		}
	}
	return 0, false
}

func packCheck(name, raw string) error {
	switch raw {
	case "node", "clust", "graph":
		return nil
	}
	rest, ok := strings.CutPrefix(raw, "array")
	if ok && strings.HasPrefix(rest, "_") {
		rest = strings.TrimLeft(rest[1:], "ctblru")
	}
	if ok && rest != "" {
		n, err := strconv.Atoi(rest)
		ok = err == nil && n > 0
	}
	if !ok {
		return errorf(name, "%q is not a pack mode", raw)
	}
	return nil
}
