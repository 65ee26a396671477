package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/dotkit/pkg/engine"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	engine   string // layout engine, default from config
	formats  string // comma separated output formats, default from config
	output   string // output file (one format) or base path (several)
	noCache  bool   // bypass the artifact cache
	embedded bool   // render in-process instead of running Graphviz
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [document|file.dot]",
		Short: "Render a graph document or DOT file with Graphviz",
		Long: `Render a graph document or DOT file with a Graphviz layout engine.

Several formats may be requested at once (-f svg,png); they are rendered
concurrently and written next to the input, or to the base path given with -o.
Results are cached according to the [cache] section of the configuration.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("embedded") {
				c.Config.Engine.Embedded = opts.embedded
			}
			return c.runRender(cmd.Context(), args[0], opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.Flags().StringVarP(&opts.engine, "engine", "e", "", "layout engine: "+joinEngines()+" (default from config)")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s), comma-separated (default from config)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format), base path (multiple) or - for stdout")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.embedded, "embedded", false, "use the embedded Graphviz instead of the dot binary")

	return cmd
}

func joinEngines() string {
	names := make([]string, 0, len(engine.Engines()))
	for _, e := range engine.Engines() {
		names = append(names, e.String())
	}
	return strings.Join(names, ", ")
}

func (c *CLI) runRender(ctx context.Context, input string, opts renderOpts, stdout, stderr io.Writer) error {
	defEngine, defFormat, err := c.defaults()
	if err != nil {
		return err
	}
	eng := defEngine
	if opts.engine != "" {
		if eng, err = engine.ParseEngine(opts.engine); err != nil {
			return err
		}
	}
	formats, err := engine.ParseFormats(opts.formats, defFormat)
	if err != nil {
		return err
	}
	if opts.output == "-" && len(formats) > 1 {
		return fmt.Errorf("cannot write %d formats to stdout", len(formats))
	}
	var paths []string
	if opts.output != "-" {
		paths = outputPaths(input, opts.output, formats)
		if err := checkOverwrite(input, paths); err != nil {
			return err
		}
	}

	src, err := loadSource(input)
	if err != nil {
		return err
	}

	r, closeCache, err := c.newRenderer(ctx, opts.noCache)
	if err != nil {
		return fmt.Errorf("initialize renderer: %w", err)
	}
	defer closeCache()

	prog := newProgress(c.Logger)
	spinner := newSpinner(ctx, stderr, fmt.Sprintf("Rendering with %s...", eng))
	spinner.Start()

	results, err := renderAll(ctx, r, eng, formats, src)
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()

	if opts.output == "-" {
		_, err := stdout.Write(results[0])
		return err
	}

	for i, path := range paths {
		if err := os.WriteFile(path, results[i], 0o644); err != nil {
			return err
		}
	}
	prog.done(fmt.Sprintf("Rendered %s with %s", input, eng))
	for _, path := range paths {
		printFile(stderr, path)
	}
	return nil
}

// checkOverwrite fails if any output path names the input file. It runs
// before rendering, so a refused command leaves no output behind.
func checkOverwrite(input string, paths []string) error {
	in := absPath(input)
	for _, p := range paths {
		if absPath(p) == in {
			return fmt.Errorf("refusing to overwrite input %s", input)
		}
	}
	return nil
}

func absPath(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return filepath.Clean(p)
}

// renderAll renders src once per format, concurrently. Results are in the
// order of formats. The first failure cancels the remaining renders.
func renderAll(ctx context.Context, r engine.Renderer, eng engine.Engine, formats []engine.Format, src []byte) ([][]byte, error) {
	results := make([][]byte, len(formats))
	g, gctx := errgroup.WithContext(ctx)
	for i, f := range formats {
		g.Go(func() error {
			out, err := r.Render(gctx, engine.Request{Engine: eng, Format: f, Source: src})
			if err != nil {
				return fmt.Errorf("render %s: %w", f, err)
			}
			loggerFromContext(ctx).Debug("Rendered", "format", f, "bytes", len(out))
			results[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// outputPaths derives one output file per format.
//
// Without -o the input path with its extension replaced is used. A single
// format with -o writes exactly there. Several formats treat -o as a base
// path, dropping a trailing format extension.
func outputPaths(input, output string, formats []engine.Format) []string {
	if output != "" && len(formats) == 1 {
		return []string{output}
	}
	base := basePath(output, input)
	paths := make([]string, len(formats))
	for i, f := range formats {
		paths[i] = base + f.Ext()
	}
	return paths
}

// basePath strips a known format extension from output, or the extension of
// input when output is empty.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if _, err := engine.ParseFormat(strings.TrimPrefix(ext, ".")); ext != "" && err == nil {
		return strings.TrimSuffix(output, ext)
	}
	return output
}
