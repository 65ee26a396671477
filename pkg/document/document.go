// Package document describes graphs in YAML, TOML or JSON and builds them
// into [dot.Graph] values.
//
// A document lists attributes by their Graphviz names. Every attribute goes
// through the runtime capability check of the dot package, so a document that
// sets a graph-only attribute on a node fails to build with a path to the
// offending entry:
//
//	id: G
//	directed: true
//	attrs: {rankdir: LR}
//	defaults:
//	  node: {shape: box}
//	nodes:
//	  - id: a
//	    attrs: {label: Start}
//	edges:
//	  - {from: a, to: b, attrs: {label: next}}
//	subgraphs:
//	  - id: core
//	    cluster: true
//	    nodes: [{id: b}]
//
// Within a scope statements are emitted in a fixed order: attributes,
// defaults, nodes, subgraphs, edges. Attribute maps are sorted by name.
package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v2"

	"github.com/matzehuels/dotkit/pkg/dot"
	"github.com/matzehuels/dotkit/pkg/errors"
)

// Format is a document encoding.
type Format string

const (
	YAML Format = "yaml"
	TOML Format = "toml"
	JSON Format = "json"
)

// Attrs maps attribute names to scalar values. Numbers and booleans are
// accepted and converted to their DOT spelling.
type Attrs map[string]any

// Defaults holds default attribute blocks.
type Defaults struct {
	Graph Attrs `yaml:"graph" toml:"graph" json:"graph"`
	Node  Attrs `yaml:"node" toml:"node" json:"node"`
	Edge  Attrs `yaml:"edge" toml:"edge" json:"edge"`
}

// Node is a node entry.
type Node struct {
	ID    string `yaml:"id" toml:"id" json:"id"`
	Port  string `yaml:"port" toml:"port" json:"port"`
	Attrs Attrs  `yaml:"attrs" toml:"attrs" json:"attrs"`
}

// Edge is an edge entry between two node identifiers.
type Edge struct {
	From     string `yaml:"from" toml:"from" json:"from"`
	FromPort string `yaml:"from_port" toml:"from_port" json:"from_port"`
	To       string `yaml:"to" toml:"to" json:"to"`
	ToPort   string `yaml:"to_port" toml:"to_port" json:"to_port"`
	Attrs    Attrs  `yaml:"attrs" toml:"attrs" json:"attrs"`
}

// Subgraph is a nested scope. An empty ID makes it anonymous.
type Subgraph struct {
	ID        string     `yaml:"id" toml:"id" json:"id"`
	Cluster   bool       `yaml:"cluster" toml:"cluster" json:"cluster"`
	Attrs     Attrs      `yaml:"attrs" toml:"attrs" json:"attrs"`
	Defaults  Defaults   `yaml:"defaults" toml:"defaults" json:"defaults"`
	Nodes     []Node     `yaml:"nodes" toml:"nodes" json:"nodes"`
	Edges     []Edge     `yaml:"edges" toml:"edges" json:"edges"`
	Subgraphs []Subgraph `yaml:"subgraphs" toml:"subgraphs" json:"subgraphs"`
}

// Document is the root of a graph description.
type Document struct {
	ID        string     `yaml:"id" toml:"id" json:"id"`
	Strict    bool       `yaml:"strict" toml:"strict" json:"strict"`
	Directed  bool       `yaml:"directed" toml:"directed" json:"directed"`
	Attrs     Attrs      `yaml:"attrs" toml:"attrs" json:"attrs"`
	Defaults  Defaults   `yaml:"defaults" toml:"defaults" json:"defaults"`
	Nodes     []Node     `yaml:"nodes" toml:"nodes" json:"nodes"`
	Edges     []Edge     `yaml:"edges" toml:"edges" json:"edges"`
	Subgraphs []Subgraph `yaml:"subgraphs" toml:"subgraphs" json:"subgraphs"`
}

// DetectFormat returns the encoding implied by a file extension.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	case ".json":
		return JSON, nil
	}
	return "", errors.New(errors.ErrCodeInvalidDocument, "cannot infer document format from %q (use .yaml, .toml or .json)", path)
}

// Decode parses data in the given format.
func Decode(data []byte, format Format) (Document, error) {
	var doc Document
	var err error
	switch format {
	case YAML:
		err = yaml.UnmarshalStrict(data, &doc)
	case TOML:
		var md toml.MetaData
		md, err = toml.Decode(string(data), &doc)
		if err == nil && len(md.Undecoded()) > 0 {
			err = fmt.Errorf("unknown field %s", md.Undecoded()[0])
		}
	case JSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&doc)
	default:
		return doc, errors.New(errors.ErrCodeInvalidDocument, "unsupported document format %q", format)
	}
	if err != nil {
		return doc, errors.Wrap(errors.ErrCodeInvalidDocument, err, "decode %s", format)
	}
	return doc, nil
}

// Load reads and decodes the document at path.
func Load(path string) (Document, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return Document{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, errors.Wrap(errors.ErrCodeNotFound, err, "read document")
	}
	return Decode(data, format)
}

// Build converts doc into a graph.
func (doc Document) Build() (dot.Graph, error) {
	g := dot.NewGraph(doc.ID)
	g, err := g.WithDirected(doc.Directed)
	if err != nil {
		return g, err
	}
	if g, err = g.WithStrict(doc.Strict); err != nil {
		return g, err
	}

	attrs, err := buildAttrs("attrs", doc.Attrs)
	if err != nil {
		return g, err
	}
	if g, err = g.Apply(attrs...); err != nil {
		return g, docErr("attrs", err)
	}

	stmts := make([]dot.GraphStatement, 0, 1)
	if len(doc.Defaults.Graph) > 0 {
		attrs, err := buildAttrs("defaults.graph", doc.Defaults.Graph)
		if err != nil {
			return g, err
		}
		block, err := dot.NewGraphBlock(attrs...)
		if err != nil {
			return g, docErr("defaults.graph", err)
		}
		stmts = append(stmts, block)
	}

	body, err := buildScope("", doc.Defaults, doc.Nodes, doc.Subgraphs, doc.Edges)
	if err != nil {
		return g, err
	}
	for _, st := range body {
		stmts = append(stmts, st)
	}
	return g.Add(stmts...), nil
}

func buildSubgraph(path string, s Subgraph) (dot.Subgraph, error) {
	var sg dot.Subgraph
	switch {
	case s.Cluster:
		sg = dot.NewCluster(s.ID)
	case s.ID == "":
		sg = dot.AnonymousSubgraph()
	default:
		sg = dot.NewSubgraph(s.ID)
	}

	attrs, err := buildAttrs(path+".attrs", s.Attrs)
	if err != nil {
		return sg, err
	}
	if sg, err = sg.Apply(attrs...); err != nil {
		return sg, docErr(path+".attrs", err)
	}

	stmts := make([]dot.SubgraphStatement, 0, 1)
	if len(s.Defaults.Graph) > 0 {
		blockPath := path + ".defaults.graph"
		attrs, err := buildAttrs(blockPath, s.Defaults.Graph)
		if err != nil {
			return sg, err
		}
		block, err := dot.NewClusterBlock(attrs...)
		if err != nil {
			return sg, docErr(blockPath, err)
		}
		stmts = append(stmts, block)
	}

	body, err := buildScope(path+".", s.Defaults, s.Nodes, s.Subgraphs, s.Edges)
	if err != nil {
		return sg, err
	}
	for _, st := range body {
		stmts = append(stmts, st)
	}
	return sg.Add(stmts...), nil
}

// buildScope builds the statements shared by documents and subgraphs. The
// "graph" defaults block is left to the caller because its statement type
// depends on the scope.
func buildScope(prefix string, defaults Defaults, nodes []Node, subgraphs []Subgraph, edges []Edge) ([]dot.ScopeStatement, error) {
	var out []dot.ScopeStatement

	for _, block := range []struct {
		name  string
		kind  dot.Kind
		attrs Attrs
	}{
		{"node", dot.KindNode, defaults.Node},
		{"edge", dot.KindEdge, defaults.Edge},
	} {
		if len(block.attrs) == 0 {
			continue
		}
		path := prefix + "defaults." + block.name
		attrs, err := buildAttrs(path, block.attrs)
		if err != nil {
			return nil, err
		}
		d, err := dot.NewDefaults(block.kind, attrs...)
		if err != nil {
			return nil, docErr(path, err)
		}
		out = append(out, d)
	}

	for i, n := range nodes {
		path := fmt.Sprintf("%snodes[%d]", prefix, i)
		node, err := buildNode(path, n.ID, n.Port)
		if err != nil {
			return nil, err
		}
		attrs, err := buildAttrs(path+".attrs", n.Attrs)
		if err != nil {
			return nil, err
		}
		if node, err = node.Apply(attrs...); err != nil {
			return nil, docErr(path+".attrs", err)
		}
		out = append(out, node)
	}

	for i, s := range subgraphs {
		sg, err := buildSubgraph(fmt.Sprintf("%ssubgraphs[%d]", prefix, i), s)
		if err != nil {
			return nil, err
		}
		out = append(out, sg)
	}

	for i, e := range edges {
		path := fmt.Sprintf("%sedges[%d]", prefix, i)
		from, err := buildNode(path+".from", e.From, e.FromPort)
		if err != nil {
			return nil, err
		}
		to, err := buildNode(path+".to", e.To, e.ToPort)
		if err != nil {
			return nil, err
		}
		attrs, err := buildAttrs(path+".attrs", e.Attrs)
		if err != nil {
			return nil, err
		}
		edge, err := dot.NewEdge(from, to).Apply(attrs...)
		if err != nil {
			return nil, docErr(path+".attrs", err)
		}
		out = append(out, edge)
	}
	return out, nil
}

func buildNode(path, id, port string) (dot.Node, error) {
	if id == "" {
		return dot.Node{}, errors.New(errors.ErrCodeInvalidDocument, "%s: missing node id", path)
	}
	n := dot.NewNode(id)
	if port == "" {
		return n, nil
	}
	p, err := ParsePort(port)
	if err != nil {
		return n, docErr(path+".port", err)
	}
	if n, err = n.WithPort(p); err != nil {
		return n, docErr(path+".port", err)
	}
	return n, nil
}

// ParsePort parses "name", "name:compass" or a bare compass point.
func ParsePort(s string) (dot.Port, error) {
	var p dot.Port
	if i := strings.LastIndexByte(s, ':'); i >= 0 {
		p = dot.PortAt(s[:i], dot.Compass(s[i+1:]))
	} else if c := dot.Compass(s); c.Valid() {
		p = dot.CompassPort(c)
	} else {
		p = dot.PortName(s)
	}
	if p.Compass != "" && !p.Compass.Valid() {
		return p, errors.New(errors.ErrCodeInvalidValue, "unknown compass point %q in port %q", p.Compass, s)
	}
	if p.IsZero() {
		return p, errors.New(errors.ErrCodeInvalidValue, "empty port")
	}
	return p, nil
}

func buildAttrs(path string, m Attrs) ([]dot.Attribute, error) {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]dot.Attribute, 0, len(names))
	for _, name := range names {
		raw, err := scalar(m[name])
		if err != nil {
			return nil, errors.New(errors.ErrCodeInvalidDocument, "%s.%s: %v", path, name, err)
		}
		a, err := dot.Parse(name, raw)
		if err != nil {
			return nil, docErr(path+"."+name, err)
		}
		out = append(out, a)
	}
	return out, nil
}

func scalar(v any) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case bool:
		return strconv.FormatBool(x), nil
	case int:
		return strconv.Itoa(x), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), nil
	case nil:
		return "", fmt.Errorf("missing value")
	}
	return "", fmt.Errorf("expected a scalar, got %T", v)
}

func docErr(path string, err error) error {
	return errors.Wrap(errors.ErrCodeInvalidDocument, err, "%s", path)
}
