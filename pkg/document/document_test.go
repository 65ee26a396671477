package document

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/dotkit/pkg/errors"
)

const yamlDoc = `
id: G
directed: true
attrs:
  rankdir: LR
defaults:
  node: {shape: box, fontsize: 10}
nodes:
  - id: a
    attrs: {label: Start}
  - id: b
    port: "out:s"
edges:
  - {from: a, to: b, attrs: {label: next, weight: 2}}
subgraphs:
  - id: core
    cluster: true
    attrs: {label: Core}
    nodes: [{id: c}]
    edges: [{from: c, to: a}]
`

const wantDOT = `digraph G {
  rankdir="LR"
  node [fontsize="10",shape="box"]
  a [label="Start"]
  b:out:s
  subgraph "cluster_core" {
    label="Core"
    c
    c -> a
  }
  a -> b [label="next",weight="2"]
}`

func TestBuildYAML(t *testing.T) {
	doc, err := Decode([]byte(yamlDoc), YAML)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	g, err := doc.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if got := g.String(); got != wantDOT {
		t.Errorf("String() =\n%s\nwant\n%s", got, wantDOT)
	}
}

func TestBuildTOML(t *testing.T) {
	src := `
id = "G"
directed = true

[attrs]
rankdir = "LR"

[defaults.node]
shape = "box"
fontsize = 10

[[nodes]]
id = "a"
attrs = { label = "Start" }

[[nodes]]
id = "b"
port = "out:s"

[[edges]]
from = "a"
to = "b"
attrs = { label = "next", weight = 2 }

[[subgraphs]]
id = "core"
cluster = true
attrs = { label = "Core" }
nodes = [{ id = "c" }]
edges = [{ from = "c", to = "a" }]
`
	doc, err := Decode([]byte(src), TOML)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	g, err := doc.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if got := g.String(); got != wantDOT {
		t.Errorf("String() =\n%s\nwant\n%s", got, wantDOT)
	}
}

func TestBuildJSON(t *testing.T) {
	src := `{
		"id": "G", "directed": true,
		"attrs": {"rankdir": "LR"},
		"defaults": {"node": {"shape": "box", "fontsize": 10}},
		"nodes": [{"id": "a", "attrs": {"label": "Start"}}, {"id": "b", "port": "out:s"}],
		"edges": [{"from": "a", "to": "b", "attrs": {"label": "next", "weight": 2}}],
		"subgraphs": [{"id": "core", "cluster": true, "attrs": {"label": "Core"},
			"nodes": [{"id": "c"}], "edges": [{"from": "c", "to": "a"}]}]
	}`
	doc, err := Decode([]byte(src), JSON)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	g, err := doc.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if got := g.String(); got != wantDOT {
		t.Errorf("String() =\n%s\nwant\n%s", got, wantDOT)
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name     string
		yaml     string
		wantPath string
		wantMsg  string
	}{
		{
			name:     "graph attribute on node",
			yaml:     "nodes: [{id: a, attrs: {rankdir: LR}}]",
			wantPath: "nodes[0].attrs",
			wantMsg:  "cannot be attached to a node",
		},
		{
			name:     "edge attribute as node default",
			yaml:     "defaults: {node: {weight: 2}}",
			wantPath: "defaults.node",
			wantMsg:  "cannot be attached to a node",
		},
		{
			name:     "unknown attribute",
			yaml:     "attrs: {colour: red}",
			wantPath: "attrs.colour",
			wantMsg:  "unknown attribute",
		},
		{
			name:     "nested subgraph attribute",
			yaml:     "subgraphs: [{id: s, subgraphs: [{id: t, attrs: {shape: box}}]}]",
			wantPath: "subgraphs[0].subgraphs[0].attrs",
			wantMsg:  "cannot be attached to a subgraph",
		},
		{
			name:     "missing edge endpoint",
			yaml:     "edges: [{from: a}]",
			wantPath: "edges[0].to",
			wantMsg:  "missing node id",
		},
		{
			name:     "bad compass",
			yaml:     "nodes: [{id: a, port: 'p:up'}]",
			wantPath: "nodes[0].port",
			wantMsg:  "unknown compass point",
		},
		{
			name:     "fontsize below minimum",
			yaml:     "defaults: {node: {fontsize: -3}}",
			wantPath: "defaults.node.fontsize",
			wantMsg:  "expected minimum 1",
		},
		{
			name:     "sides out of range",
			yaml:     "nodes: [{id: a, attrs: {sides: 1}}]",
			wantPath: "nodes[0].attrs.sides",
			wantMsg:  "expected between 3 and 100",
		},
		{
			name:     "unknown shape",
			yaml:     "nodes: [{id: a, attrs: {shape: no such shape}}]",
			wantPath: "nodes[0].attrs.shape",
			wantMsg:  "unknown value",
		},
		{
			name:     "graph defaults inside a subgraph",
			yaml:     "subgraphs: [{id: s, defaults: {graph: {rankdir: LR}}}]",
			wantPath: "subgraphs[0].defaults.graph",
			wantMsg:  "cannot be attached to a subgraph",
		},
		{
			name:     "cluster defaults at the root",
			yaml:     "defaults: {graph: {rank: same}}",
			wantPath: "defaults.graph",
			wantMsg:  "cannot be attached to a graph",
		},
		{
			name:     "bad edge port compass",
			yaml:     "edges: [{from: a, from_port: 'p:bogus', to: b}]",
			wantPath: "edges[0].from.port",
			wantMsg:  "unknown compass point",
		},
		{
			name:     "non scalar value",
			yaml:     "attrs: {label: [a, b]}",
			wantPath: "attrs.label",
			wantMsg:  "expected a scalar",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Decode([]byte(tt.yaml), YAML)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			_, err = doc.Build()
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, errors.ErrCodeInvalidDocument) {
				t.Errorf("code = %s", errors.GetCode(err))
			}
			if !strings.Contains(err.Error(), tt.wantPath) || !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error = %v, want path %q and %q", err, tt.wantPath, tt.wantMsg)
			}
		})
	}
}

func TestBuildScopedGraphDefaults(t *testing.T) {
	src := `
defaults:
  graph: {rankdir: LR}
subgraphs:
  - id: row
    defaults:
      graph: {rank: same}
    nodes: [{id: a}, {id: b}]
`
	doc, err := Decode([]byte(src), YAML)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	g, err := doc.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	want := "graph {\n" +
		"  graph [rankdir=\"LR\"]\n" +
		"  subgraph row {\n" +
		"    graph [rank=\"same\"]\n" +
		"    a\n" +
		"    b\n" +
		"  }\n" +
		"}"
	if got := g.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
}

func TestDecodeRejectsUnknownFields(t *testing.T) {
	tests := []struct {
		format Format
		src    string
	}{
		{YAML, "name: G"},
		{TOML, `name = "G"`},
		{JSON, `{"name": "G"}`},
	}
	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			if _, err := Decode([]byte(tt.src), tt.format); !errors.Is(err, errors.ErrCodeInvalidDocument) {
				t.Errorf("error = %v, want INVALID_DOCUMENT", err)
			}
		})
	}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"g.yaml", YAML, false},
		{"g.YML", YAML, false},
		{"dir/g.toml", TOML, false},
		{"g.json", JSON, false},
		{"g.dot", "", true},
	}
	for _, tt := range tests {
		got, err := DetectFormat(tt.path)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("DetectFormat(%q) = %q, %v", tt.path, got, err)
		}
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "g.yaml")
	if err := os.WriteFile(path, []byte(yamlDoc), 0644); err != nil {
		t.Fatal(err)
	}
	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if doc.ID != "G" || len(doc.Nodes) != 2 || len(doc.Subgraphs) != 1 {
		t.Errorf("Load = %+v", doc)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("missing file error = %v", err)
	}
}

func TestParsePort(t *testing.T) {
	tests := []struct {
		in      string
		name    string
		compass string
		wantErr bool
	}{
		{"p", "p", "", false},
		{"p:ne", "p", "ne", false},
		{"s", "", "s", false},
		{"p:q", "", "", true},
		{":", "", "", true},
	}
	for _, tt := range tests {
		p, err := ParsePort(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePort(%q) error = %v", tt.in, err)
			continue
		}
		if err == nil && (p.Name != tt.name || string(p.Compass) != tt.compass) {
			t.Errorf("ParsePort(%q) = %+v", tt.in, p)
		}
	}
}

func TestExamplesBuild(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("..", "..", "examples", "*.*"))
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) == 0 {
		t.Skip("no examples found")
	}
	for _, path := range paths {
		t.Run(filepath.Base(path), func(t *testing.T) {
			doc, err := Load(path)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			g, err := doc.Build()
			if err != nil {
				t.Fatalf("Build: %v", err)
			}
			if !strings.HasPrefix(g.String(), "digraph ") {
				t.Errorf("unexpected output:\n%s", g)
			}
		})
	}
}
