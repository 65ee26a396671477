package dot

import "sort"

// known maps every attribute name in the catalog to its capability tag.
var known = map[string]Capability{
	"URL":            CapGSNE,
	"_background":    CapG,
	"area":           CapSN,
	"arrowhead":      CapE,
	"arrowsize":      CapE,
	"arrowtail":      CapE,
	"bgcolor":        CapGS,
	"center":         CapG,
	"charset":        CapG,
	"class":          CapGSNE,
	"cluster":        CapS,
	"color":          CapSNE,
	"colorscheme":    CapGSNE,
	"comment":        CapGNE,
	"compound":       CapG,
	"concentrate":    CapG,
	"constraint":     CapE,
	"decorate":       CapE,
	"dim":            CapG,
	"dimen":          CapG,
	"dir":            CapE,
	"distortion":     CapN,
	"dpi":            CapG,
	"esep":           CapG,
	"fillcolor":      CapSNE,
	"fixedsize":      CapN,
	"fontcolor":      CapGSNE,
	"fontname":       CapGSNE,
	"fontnames":      CapG,
	"fontpath":       CapG,
	"fontsize":       CapGSNE,
	"gradientangle":  CapGSN,
	"group":          CapN,
	"headlabel":      CapE,
	"headport":       CapE,
	"height":         CapN,
	"href":           CapGSNE,
	"id":             CapGSNE,
	"image":          CapN,
	"label":          CapGSNE,
	"label_scheme":   CapG,
	"labelangle":     CapE,
	"labeldistance":  CapE,
	"labelfloat":     CapE,
	"labelfontcolor": CapE,
	"labelfontname":  CapE,
	"labelfontsize":  CapE,
	"labeljust":      CapGS,
	"labelloc":       CapGSN,
	"layer":          CapSNE,
	"layerlistsep":   CapG,
	"layerselect":    CapG,
	"layersep":       CapG,
	"layout":         CapG,
	"lhead":          CapE,
	"ltail":          CapE,
	"margin":         CapGSN,
	"minlen":         CapE,
	"mode":           CapG,
	"model":          CapG,
	"newrank":        CapG,
	"nodesep":        CapG,
	"nojustify":      CapGSN,
	"ordering":       CapGN,
	"outputorder":    CapG,
	"pack":           CapG,
	"packmode":       CapG,
	"pad":            CapG,
	"pencolor":       CapS,
	"penwidth":       CapSNE,
	"peripheries":    CapSN,
	"pin":            CapN,
	"pos":            CapN,
	"rank":           CapS,
	"rankdir":        CapG,
	"ranksep":        CapG,
	"regular":        CapN,
	"rotate":         CapG,
	"samehead":       CapE,
	"sametail":       CapE,
	"shape":          CapN,
	"sides":          CapN,
	"size":           CapG,
	"skew":           CapN,
	"sortv":          CapGSN,
	"splines":        CapG,
	"style":          CapGSNE,
	"taillabel":      CapE,
	"tailport":       CapE,
	"target":         CapGSNE,
	"tooltip":        CapGSNE,
	"weight":         CapE,
	"width":          CapN,
	"xlabel":         CapNE,
}

// Lookup returns the capability tag of a catalog attribute.
func Lookup(name string) (Capability, bool) {
	c, ok := known[name]
	return c, ok
}

// KnownNames returns the sorted names of all catalog attributes.
func KnownNames() []string {
	names := make([]string, 0, len(known))
	for n := range known {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
