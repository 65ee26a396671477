package engine

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/dotkit/pkg/errors"
	"github.com/matzehuels/dotkit/pkg/observability"
)

// DefaultTimeout bounds a single engine run when no timeout is configured.
const DefaultTimeout = 30 * time.Second

// binaryName is the Graphviz driver. Layouts other than dot are selected with
// -K so every engine is reachable through one binary.
const binaryName = "dot"

// killGrace is how long a killed engine may take to close its pipes.
const killGrace = 2 * time.Second

// Exec renders by running the Graphviz binary as a subprocess. The DOT
// source is written to its stdin and the output read from its stdout.
type Exec struct {
	// Dir is the directory holding the Graphviz binaries. When empty the
	// binary is looked up in PATH.
	Dir string

	// Timeout bounds each run. Zero means DefaultTimeout; a negative value
	// disables the limit so only the caller's context applies.
	Timeout time.Duration

	Logger *log.Logger
}

// NewExec returns an Exec for the binaries in dir.
func NewExec(dir string, timeout time.Duration, logger *log.Logger) *Exec {
	return &Exec{Dir: dir, Timeout: timeout, Logger: logger}
}

// Binary resolves the path of the Graphviz driver.
func (x *Exec) Binary() (string, error) {
	name := binaryName
	if x.Dir != "" {
		name = filepath.Join(x.Dir, binaryName)
	}
	path, err := exec.LookPath(name)
	if err != nil {
		where := "PATH"
		if x.Dir != "" {
			where = x.Dir
		}
		return "", errors.Wrap(errors.ErrCodeEngineNotFound, err, "graphviz %q not found in %s", binaryName, where)
	}
	return path, nil
}

// Render runs the engine for req. The process is killed when ctx is done or
// the timeout passes. A non-zero exit is returned as *errors.ProcessError
// and never retried.
func (x *Exec) Render(ctx context.Context, req Request) (out []byte, err error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	bin, err := x.Binary()
	if err != nil {
		return nil, err
	}

	timeout := x.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	runCtx := ctx
	if timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	start := time.Now()
	observability.Render().OnRenderStart(ctx, string(req.Engine), string(req.Format), len(req.Source))
	defer func() {
		observability.Render().OnRenderComplete(ctx, string(req.Engine), string(req.Format), time.Since(start), err)
	}()

	cmd := exec.CommandContext(runCtx, bin, "-K"+string(req.Engine), "-T"+string(req.Format))
	cmd.Stdin = bytes.NewReader(req.Source)
	cmd.WaitDelay = killGrace

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	x.logger().Debug("running layout engine", "bin", bin, "engine", req.Engine, "format", req.Format, "bytes", len(req.Source))

	runErr := cmd.Run()
	switch {
	case runErr == nil:
		if stderr.Len() > 0 {
			x.logger().Warn("layout engine warnings", "engine", req.Engine, "stderr", stderr.String())
		}
		x.logger().Debug("layout engine finished", "engine", req.Engine, "bytes", stdout.Len(), "elapsed", time.Since(start).Round(time.Millisecond))
		return stdout.Bytes(), nil
	case ctx.Err() != nil:
		return nil, fmt.Errorf("render %s: %w", req.Engine, ctx.Err())
	case stderrors.Is(runCtx.Err(), context.DeadlineExceeded):
		return nil, errors.New(errors.ErrCodeTimeout, "%s did not finish within %s", req.Engine, timeout)
	}

	var exitErr *exec.ExitError
	if stderrors.As(runErr, &exitErr) {
		return nil, &errors.ProcessError{
			Command:  bin + " -K" + string(req.Engine),
			ExitCode: exitErr.ExitCode(),
			Stderr:   stderr.String(),
		}
	}
	return nil, errors.Wrap(errors.ErrCodeInternal, runErr, "run %s", bin)
}

func (x *Exec) logger() *log.Logger {
	if x.Logger != nil {
		return x.Logger
	}
	return log.Default()
}

var _ Renderer = (*Exec)(nil)
