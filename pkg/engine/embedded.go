package engine

import (
	"bytes"
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/dotkit/pkg/errors"
	"github.com/matzehuels/dotkit/pkg/observability"
)

// Embedded renders in-process with the WebAssembly build of Graphviz that
// ships with go-graphviz. It needs no installed binaries but supports fewer
// engines and formats than Exec.
type Embedded struct {
	Logger *log.Logger
}

// NewEmbedded returns an in-process renderer.
func NewEmbedded(logger *log.Logger) *Embedded {
	return &Embedded{Logger: logger}
}

var embeddedLayouts = map[Engine]graphviz.Layout{
	Dot:       graphviz.DOT,
	Neato:     graphviz.NEATO,
	FDP:       graphviz.FDP,
	SFDP:      graphviz.SFDP,
	Circo:     graphviz.CIRCO,
	Twopi:     graphviz.TWOPI,
	Osage:     graphviz.OSAGE,
	Patchwork: graphviz.PATCHWORK,
}

var embeddedFormats = map[Format]graphviz.Format{
	SVG: graphviz.SVG,
	PNG: graphviz.PNG,
	JPG: graphviz.JPG,
	DOT: graphviz.XDOT,
}

// Supports reports whether the embedded Graphviz can render req.
func (e *Embedded) Supports(req Request) bool {
	_, okLayout := embeddedLayouts[req.Engine]
	_, okFormat := embeddedFormats[req.Format]
	return okLayout && okFormat
}

// Render lays out and renders req in-process.
func (e *Embedded) Render(ctx context.Context, req Request) (out []byte, err error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	layout, ok := embeddedLayouts[req.Engine]
	if !ok {
		return nil, errors.New(errors.ErrCodeUnsupported, "engine %q is not available in embedded mode", req.Engine)
	}
	format, ok := embeddedFormats[req.Format]
	if !ok {
		return nil, errors.New(errors.ErrCodeUnsupported, "format %q is not available in embedded mode", req.Format)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	observability.Render().OnRenderStart(ctx, string(req.Engine), string(req.Format), len(req.Source))
	defer func() {
		observability.Render().OnRenderComplete(ctx, string(req.Engine), string(req.Format), time.Since(start), err)
	}()

	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()
	gv.SetLayout(layout)

	g, err := graphviz.ParseBytes(req.Source)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render %s", req.Format)
	}
	e.logger().Debug("embedded render finished", "engine", req.Engine, "format", req.Format, "bytes", buf.Len())
	return buf.Bytes(), nil
}

// Check parses src with the embedded Graphviz and reports syntax errors.
func Check(src []byte) error {
	g, err := graphviz.ParseBytes(src)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidDocument, err, "parse DOT")
	}
	return g.Close()
}

func (e *Embedded) logger() *log.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return log.Default()
}

var _ Renderer = (*Embedded)(nil)
