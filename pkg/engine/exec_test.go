package engine

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/dotkit/pkg/errors"
)

// fakeGraphviz installs a shell script named "dot" in a temp dir and
// returns the dir.
func fakeGraphviz(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake engine is a shell script")
	}
	dir := t.TempDir()
	script := "#!/bin/sh\n" + body + "\n"
	if err := os.WriteFile(filepath.Join(dir, "dot"), []byte(script), 0755); err != nil {
		t.Fatal(err)
	}
	return dir
}

func svgRequest() Request {
	return Request{Engine: Neato, Format: SVG, Source: []byte("graph { a -- b }")}
}

func TestExecRender(t *testing.T) {
	dir := fakeGraphviz(t, `echo "$1 $2"; cat`)
	x := NewExec(dir, time.Second, nil)

	out, err := x.Render(context.Background(), svgRequest())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := "-Kneato -Tsvg\ngraph { a -- b }"
	if string(out) != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestExecProcessError(t *testing.T) {
	dir := fakeGraphviz(t, `cat >/dev/null; echo "Error: <stdin>: syntax error in line 1" >&2; exit 3`)
	x := NewExec(dir, time.Second, nil)

	_, err := x.Render(context.Background(), svgRequest())
	var pe *errors.ProcessError
	if !stderrors.As(err, &pe) {
		t.Fatalf("error = %v, want *ProcessError", err)
	}
	if pe.ExitCode != 3 {
		t.Errorf("ExitCode = %d, want 3", pe.ExitCode)
	}
	if !strings.Contains(pe.Stderr, "syntax error in line 1") {
		t.Errorf("Stderr = %q", pe.Stderr)
	}
	if !errors.Is(err, errors.ErrCodeProcess) {
		t.Errorf("code = %s", errors.GetCode(err))
	}
}

func TestExecTimeout(t *testing.T) {
	dir := fakeGraphviz(t, `exec sleep 10`)
	x := NewExec(dir, 100*time.Millisecond, nil)

	start := time.Now()
	_, err := x.Render(context.Background(), svgRequest())
	if !errors.Is(err, errors.ErrCodeTimeout) {
		t.Fatalf("error = %v, want TIMEOUT", err)
	}
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Errorf("engine not killed, took %s", elapsed)
	}
}

func TestExecCancel(t *testing.T) {
	dir := fakeGraphviz(t, `exec sleep 10`)
	x := NewExec(dir, -1, nil)

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(100*time.Millisecond, cancel)

	_, err := x.Render(ctx, svgRequest())
	if !stderrors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
}

func TestExecBinaryNotFound(t *testing.T) {
	x := NewExec(t.TempDir(), time.Second, nil)
	_, err := x.Render(context.Background(), svgRequest())
	if !errors.Is(err, errors.ErrCodeEngineNotFound) {
		t.Fatalf("error = %v, want ENGINE_NOT_FOUND", err)
	}
}

func TestExecInvalidRequest(t *testing.T) {
	x := NewExec(t.TempDir(), time.Second, nil)
	_, err := x.Render(context.Background(), Request{Engine: "bogus", Format: SVG, Source: []byte("graph {}")})
	if !errors.Is(err, errors.ErrCodeInvalidEngine) {
		t.Fatalf("error = %v, want INVALID_ENGINE", err)
	}
}
