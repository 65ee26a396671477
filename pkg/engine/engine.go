// Package engine turns DOT text into rendered output by running a Graphviz
// layout engine.
//
// # Renderers
//
// [Renderer] is implemented by:
//   - [Exec], which runs the Graphviz "dot" binary as a subprocess
//   - [Embedded], which renders in-process with goccy/go-graphviz
//   - [Cached], which wraps another Renderer with a [cache.Cache]
//
// Every call takes a context. Exec additionally applies its own timeout and
// kills the engine process when either expires.
//
// # Errors
//
// Failures carry codes from pkg/errors: ErrCodeInvalidEngine and
// ErrCodeInvalidFormat for bad requests, ErrCodeEngineNotFound when the binary
// is missing, ErrCodeTimeout when the deadline passes and a
// *errors.ProcessError with the engine's diagnostics when it exits non-zero.
package engine

import (
	"context"
	"slices"
	"strings"

	"github.com/matzehuels/dotkit/pkg/cache"
	"github.com/matzehuels/dotkit/pkg/dot"
	"github.com/matzehuels/dotkit/pkg/errors"
)

// Engine is a Graphviz layout algorithm.
type Engine string

const (
	Dot       Engine = "dot"
	Neato     Engine = "neato"
	FDP       Engine = "fdp"
	SFDP      Engine = "sfdp"
	Circo     Engine = "circo"
	Twopi     Engine = "twopi"
	Nop       Engine = "nop"
	Nop2      Engine = "nop2"
	Osage     Engine = "osage"
	Patchwork Engine = "patchwork"
)

var engines = []Engine{Dot, Neato, FDP, SFDP, Circo, Twopi, Nop, Nop2, Osage, Patchwork}

// Engines returns all known layout engines.
func Engines() []Engine { return slices.Clone(engines) }

// Valid reports whether e is a known layout engine.
func (e Engine) Valid() bool { return slices.Contains(engines, e) }

func (e Engine) String() string { return string(e) }

// ParseEngine returns the engine named s, ignoring case.
func ParseEngine(s string) (Engine, error) {
	e := Engine(strings.ToLower(strings.TrimSpace(s)))
	if !e.Valid() {
		return "", errors.New(errors.ErrCodeInvalidEngine, "unknown layout engine %q", s)
	}
	return e, nil
}

// Format is a Graphviz output format.
type Format string

const (
	SVG   Format = "svg"
	PNG   Format = "png"
	JPG   Format = "jpg"
	PDF   Format = "pdf"
	PS    Format = "ps"
	GIF   Format = "gif"
	JSON  Format = "json"
	Plain Format = "plain"
	XDot  Format = "xdot"
	Canon Format = "canon"
	DOT   Format = "dot"
)

var formats = map[Format]struct {
	contentType string
	binary      bool
}{
	SVG:   {"image/svg+xml", false},
	PNG:   {"image/png", true},
	JPG:   {"image/jpeg", true},
	PDF:   {"application/pdf", true},
	PS:    {"application/postscript", false},
	GIF:   {"image/gif", true},
	JSON:  {"application/json", false},
	Plain: {"text/plain; charset=utf-8", false},
	XDot:  {"text/vnd.graphviz; charset=utf-8", false},
	Canon: {"text/vnd.graphviz; charset=utf-8", false},
	DOT:   {"text/vnd.graphviz; charset=utf-8", false},
}

// Formats returns all known output formats in sorted order.
func Formats() []Format {
	out := make([]Format, 0, len(formats))
	for f := range formats {
		out = append(out, f)
	}
	slices.Sort(out)
	return out
}

// Valid reports whether f is a known output format.
func (f Format) Valid() bool {
	_, ok := formats[f]
	return ok
}

func (f Format) String() string { return string(f) }

// ContentType returns the MIME type of the rendered output.
func (f Format) ContentType() string { return formats[f].contentType }

// Binary reports whether the output is not text.
func (f Format) Binary() bool { return formats[f].binary }

// Ext returns the file extension, including the dot.
func (f Format) Ext() string { return "." + string(f) }

// ParseFormat returns the format named s, ignoring case. "jpeg" is accepted
// as an alias for jpg and "gv" for dot.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case "jpeg":
		f = JPG
	case "gv":
		f = DOT
	}
	if !f.Valid() {
		return "", errors.New(errors.ErrCodeInvalidFormat, "unknown output format %q", s)
	}
	return f, nil
}

// ParseFormats parses a comma separated list of formats. Duplicates are
// dropped and an empty list yields def.
func ParseFormats(s string, def Format) ([]Format, error) {
	var out []Format
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		f, err := ParseFormat(part)
		if err != nil {
			return nil, err
		}
		if !slices.Contains(out, f) {
			out = append(out, f)
		}
	}
	if len(out) == 0 {
		out = []Format{def}
	}
	return out, nil
}

// Request is one render job.
type Request struct {
	Engine Engine
	Format Format
	Source []byte
}

// Validate checks the engine, format and source of r.
func (r Request) Validate() error {
	if !r.Engine.Valid() {
		return errors.New(errors.ErrCodeInvalidEngine, "unknown layout engine %q", r.Engine)
	}
	if !r.Format.Valid() {
		return errors.New(errors.ErrCodeInvalidFormat, "unknown output format %q", r.Format)
	}
	if len(strings.TrimSpace(string(r.Source))) == 0 {
		return errors.New(errors.ErrCodeInvalidDocument, "empty DOT source")
	}
	return nil
}

// key returns the artifact cache key for r.
func (r Request) key(k cache.Keyer) string {
	return k.ArtifactKey(cache.Hash(r.Source), cache.ArtifactKeyOpts{
		Engine: string(r.Engine),
		Format: string(r.Format),
	})
}

// Renderer renders DOT source with a layout engine.
type Renderer interface {
	Render(ctx context.Context, req Request) ([]byte, error)
}

// RenderGraph serializes g and renders it with r.
func RenderGraph(ctx context.Context, r Renderer, g dot.Graph, e Engine, f Format) ([]byte, error) {
	return r.Render(ctx, Request{Engine: e, Format: f, Source: []byte(g.String())})
}
