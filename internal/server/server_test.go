package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/dotkit/pkg/engine"
	"github.com/matzehuels/dotkit/pkg/errors"
	"github.com/matzehuels/dotkit/pkg/observability"
)

// fakeRenderer echoes the request or returns a fixed error.
type fakeRenderer struct {
	mu   sync.Mutex
	err  error
	last engine.Request
}

func (f *fakeRenderer) Render(ctx context.Context, req engine.Request) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.last = req
	if f.err != nil {
		return nil, f.err
	}
	return []byte(string(req.Engine) + "/" + string(req.Format) + ":" + string(req.Source)), nil
}

func newTestServer(r engine.Renderer, opts Options) *Server {
	return New(r, opts, log.New(io.Discard))
}

func TestRender(t *testing.T) {
	fake := &fakeRenderer{}
	srv := newTestServer(fake, Options{})

	tests := []struct {
		name       string
		query      string
		wantBody   string
		wantType   string
		wantEngine engine.Engine
		wantFormat engine.Format
	}{
		{"defaults", "", "dot/svg:digraph{a}", "image/svg+xml", engine.Dot, engine.SVG},
		{"explicit", "?engine=neato&format=png", "neato/png:digraph{a}", "image/png", engine.Neato, engine.PNG},
		{"format alias", "?format=jpeg", "dot/jpg:digraph{a}", "image/jpeg", engine.Dot, engine.JPG},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/render"+tt.query, strings.NewReader("digraph{a}"))
			rec := httptest.NewRecorder()
			srv.Handler().ServeHTTP(rec, req)

			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
			}
			if got := rec.Body.String(); got != tt.wantBody {
				t.Errorf("body = %q, want %q", got, tt.wantBody)
			}
			if got := rec.Header().Get("Content-Type"); !strings.HasPrefix(got, tt.wantType) {
				t.Errorf("Content-Type = %q, want %q", got, tt.wantType)
			}
			if fake.last.Engine != tt.wantEngine || fake.last.Format != tt.wantFormat {
				t.Errorf("request = %s/%s", fake.last.Engine, fake.last.Format)
			}
		})
	}
}

func TestRenderErrors(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		body       string
		renderErr  error
		wantStatus int
		wantCode   errors.Code
	}{
		{"bad engine", "?engine=nope", "digraph{}", nil, http.StatusBadRequest, errors.ErrCodeInvalidEngine},
		{"bad format", "?format=bmp", "digraph{}", nil, http.StatusBadRequest, errors.ErrCodeInvalidFormat},
		{"empty body", "", "  ", nil, http.StatusBadRequest, errors.ErrCodeInvalidDocument},
		{
			name:       "process failure",
			body:       "digraph{",
			renderErr:  &errors.ProcessError{Command: "dot", ExitCode: 1, Stderr: "syntax error in line 1"},
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   errors.ErrCodeProcess,
		},
		{
			name:       "timeout",
			body:       "digraph{}",
			renderErr:  errors.New(errors.ErrCodeTimeout, "dot did not finish within 1s"),
			wantStatus: http.StatusGatewayTimeout,
			wantCode:   errors.ErrCodeTimeout,
		},
		{
			name:       "engine missing",
			body:       "digraph{}",
			renderErr:  errors.New(errors.ErrCodeEngineNotFound, "dot not found"),
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   errors.ErrCodeEngineNotFound,
		},
		{
			name:       "unexpected",
			body:       "digraph{}",
			renderErr:  io.ErrUnexpectedEOF,
			wantStatus: http.StatusInternalServerError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(&fakeRenderer{err: tt.renderErr}, Options{})
			req := httptest.NewRequest(http.MethodPost, "/v1/render"+tt.query, strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			srv.Handler().ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tt.wantStatus, rec.Body)
			}
			var resp errorResponse
			if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
				t.Fatalf("decode error body: %v", err)
			}
			if resp.Code != string(tt.wantCode) {
				t.Errorf("code = %q, want %q", resp.Code, tt.wantCode)
			}
			if resp.RequestID == "" {
				t.Error("missing request id")
			}
		})
	}
}

func TestRenderProcessErrorIncludesStderr(t *testing.T) {
	srv := newTestServer(&fakeRenderer{err: &errors.ProcessError{Command: "dot", ExitCode: 1, Stderr: "syntax error"}}, Options{})
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/render", strings.NewReader("digraph{")))

	var resp errorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp.Stderr != "syntax error" {
		t.Errorf("stderr = %q", resp.Stderr)
	}
}

func TestRenderBodyLimit(t *testing.T) {
	srv := newTestServer(&fakeRenderer{}, Options{MaxBodyBytes: 8})
	rec := httptest.NewRecorder()
	body := bytes.NewReader([]byte("digraph { a -> b }"))
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/render", body))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestRenderMethodNotAllowed(t *testing.T) {
	srv := newTestServer(&fakeRenderer{}, Options{})
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/render", nil))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}

func TestHealth(t *testing.T) {
	srv := newTestServer(&fakeRenderer{}, Options{})
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp healthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp.Status != "ok" || resp.Version == "" {
		t.Errorf("health = %+v", resp)
	}
	if got := rec.Header().Get("Server"); !strings.HasPrefix(got, "dotkit/") {
		t.Errorf("Server header = %q", got)
	}
}

func TestEngines(t *testing.T) {
	srv := newTestServer(&fakeRenderer{}, Options{DefaultEngine: engine.Neato, DefaultFormat: engine.PNG})
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/engines", nil))

	var resp enginesResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Engines) != len(engine.Engines()) || len(resp.Formats) != len(engine.Formats()) {
		t.Errorf("engines = %v, formats = %v", resp.Engines, resp.Formats)
	}
	if resp.Default.Engine != engine.Neato || resp.Default.Format != engine.PNG {
		t.Errorf("default = %+v", resp.Default)
	}
}

func TestRequestID(t *testing.T) {
	srv := newTestServer(&fakeRenderer{}, Options{})

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	generated := rec.Header().Get(HeaderRequestID)
	if len(generated) != 36 {
		t.Errorf("generated id = %q", generated)
	}

	const id = "6f1c2d4e-8a9b-4c3d-9e8f-0a1b2c3d4e5f"
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(HeaderRequestID, id)
	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	if got := rec.Header().Get(HeaderRequestID); got != id {
		t.Errorf("id = %q, want %q", got, id)
	}

	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(HeaderRequestID, "not a uuid")
	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	if got := rec.Header().Get(HeaderRequestID); got == "not a uuid" {
		t.Error("malformed client id was echoed")
	}
}

type recordingServerHooks struct {
	observability.NoopServerHooks
	mu       sync.Mutex
	statuses []int
}

func (h *recordingServerHooks) OnResponse(_ context.Context, _, _ string, status int, _ time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.statuses = append(h.statuses, status)
}

func TestServerHooks(t *testing.T) {
	hooks := &recordingServerHooks{}
	observability.SetServerHooks(hooks)
	t.Cleanup(observability.Reset)

	srv := newTestServer(&fakeRenderer{}, Options{})
	srv.Handler().ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))
	srv.Handler().ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/v1/render?engine=x", strings.NewReader("g")))

	if len(hooks.statuses) != 2 || hooks.statuses[0] != http.StatusOK || hooks.statuses[1] != http.StatusBadRequest {
		t.Errorf("statuses = %v", hooks.statuses)
	}
}

func TestStatusFor(t *testing.T) {
	if got := statusFor(context.DeadlineExceeded); got != http.StatusGatewayTimeout {
		t.Errorf("deadline = %d", got)
	}
	if got := statusFor(errors.New(errors.ErrCodeUnsupported, "x")); got != http.StatusBadRequest {
		t.Errorf("unsupported = %d", got)
	}
}

func TestListenAndServeShutdown(t *testing.T) {
	srv := newTestServer(&fakeRenderer{}, Options{Addr: "127.0.0.1:0"})
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.ListenAndServe(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("ListenAndServe() = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
