// Package server exposes DOT rendering over HTTP.
//
// Routes:
//
//	POST /v1/render?engine=dot&format=svg   body: DOT source
//	GET  /v1/engines                         supported engines and formats
//	GET  /healthz                            build information
//
// Render errors map to status codes by error code: invalid engine, format or
// source yield 400, a failing layout process 422, a timeout 504 and a missing
// engine binary 503.
package server

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/dotkit/pkg/buildinfo"
	"github.com/matzehuels/dotkit/pkg/engine"
	"github.com/matzehuels/dotkit/pkg/errors"
)

// DefaultMaxBodyBytes bounds request bodies when Options leaves it unset.
const DefaultMaxBodyBytes = 1 << 20

const shutdownTimeout = 5 * time.Second

// Options configures a Server.
type Options struct {
	Addr          string
	MaxBodyBytes  int64
	DefaultEngine engine.Engine
	DefaultFormat engine.Format
}

// Server serves render requests with a single Renderer.
type Server struct {
	renderer engine.Renderer
	opts     Options
	logger   *log.Logger
	router   chi.Router
}

// New builds a server. Zero option fields fall back to dot, svg and
// DefaultMaxBodyBytes.
func New(r engine.Renderer, opts Options, logger *log.Logger) *Server {
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if opts.DefaultEngine == "" {
		opts.DefaultEngine = engine.Dot
	}
	if opts.DefaultFormat == "" {
		opts.DefaultFormat = engine.SVG
	}
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{renderer: r, opts: opts, logger: logger}
	s.router = s.routes()
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(serverHeader)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/engines", s.handleEngines)
		r.Post("/render", s.handleRender)
	})
	return r
}

// ListenAndServe serves on opts.Addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.opts.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Server listening", "addr", s.opts.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if stderrors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

type healthResponse struct {
	Status string `json:"status"`
	buildinfo.Info
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Info: buildinfo.Get()})
}

type enginesResponse struct {
	Engines []engine.Engine `json:"engines"`
	Formats []engine.Format `json:"formats"`
	Default struct {
		Engine engine.Engine `json:"engine"`
		Format engine.Format `json:"format"`
	} `json:"default"`
}

func (s *Server) handleEngines(w http.ResponseWriter, r *http.Request) {
	resp := enginesResponse{Engines: engine.Engines(), Formats: engine.Formats()}
	resp.Default.Engine = s.opts.DefaultEngine
	resp.Default.Format = s.opts.DefaultFormat
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRequest(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	out, err := s.renderer.Render(r.Context(), req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", req.Format.ContentType())
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out)
}

func (s *Server) parseRequest(w http.ResponseWriter, r *http.Request) (engine.Request, error) {
	req := engine.Request{Engine: s.opts.DefaultEngine, Format: s.opts.DefaultFormat}

	q := r.URL.Query()
	if v := q.Get("engine"); v != "" {
		e, err := engine.ParseEngine(v)
		if err != nil {
			return req, err
		}
		req.Engine = e
	}
	if v := q.Get("format"); v != "" {
		f, err := engine.ParseFormat(v)
		if err != nil {
			return req, err
		}
		req.Format = f
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.opts.MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			return req, errors.New(errors.ErrCodeInvalidDocument, "request body exceeds %d bytes", tooLarge.Limit)
		}
		return req, errors.Wrap(errors.ErrCodeInvalidDocument, err, "read request body")
	}
	req.Source = body
	return req, req.Validate()
}

type errorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	Stderr    string `json:"stderr,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	resp := errorResponse{
		Error:     errors.UserMessage(err),
		Code:      string(errors.GetCode(err)),
		RequestID: RequestID(r.Context()),
	}
	var pe *errors.ProcessError
	if stderrors.As(err, &pe) {
		resp.Stderr = pe.Stderr
	}
	if status >= http.StatusInternalServerError {
		s.logger.Error("Render failed", "id", resp.RequestID, "err", err)
	} else {
		s.logger.Debug("Render rejected", "id", resp.RequestID, "err", err)
	}
	writeJSON(w, status, resp)
}

// statusFor maps an error to an HTTP status by its code.
func statusFor(err error) int {
	if stderrors.Is(err, context.DeadlineExceeded) {
		return http.StatusGatewayTimeout
	}
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidEngine, errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidDocument,
		errors.ErrCodeInvalidValue, errors.ErrCodeUnsupported:
		return http.StatusBadRequest
	case errors.ErrCodeProcess:
		return http.StatusUnprocessableEntity
	case errors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	case errors.ErrCodeEngineNotFound:
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
