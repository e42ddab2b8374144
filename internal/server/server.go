// Package server exposes the conversion pipeline over HTTP. The converter is
// injected as a function so handlers can be tested without the Figma API.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	figmarender "github.com/hellenic-development/figma-render"
	"github.com/hellenic-development/figma-render/pkg/figma"
)

// ConvertFunc runs the fetch-and-convert pipeline. Production wiring passes
// figmarender.Run; tests pass a stub.
type ConvertFunc func(opts figmarender.Options) (*figmarender.Result, error)

// Server handles HTTP conversion requests.
type Server struct {
	logger       *log.Logger
	convert      ConvertFunc
	defaultToken string
}

// New creates a Server. defaultToken is used for requests that carry no token
// of their own; empty means every request must supply one.
func New(logger *log.Logger, convert ConvertFunc, defaultToken string) *Server {
	return &Server{
		logger:       logger,
		convert:      convert,
		defaultToken: defaultToken,
	}
}

// Router builds the HTTP routing table.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(s.withRequestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Post("/api/convert", s.handleConvert)

	return r
}

// ListenAndServe starts the server on addr and blocks until it exits.
func (s *Server) ListenAndServe(addr string) error {
	s.logger.Info("listening", "addr", addr)
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}

type convertRequest struct {
	URL     string   `json:"url"`
	Token   string   `json:"token,omitempty"`
	NodeIDs []string `json:"nodeIds,omitempty"`
	Title   string   `json:"title,omitempty"`
}

type convertResponse struct {
	FileName   string `json:"fileName"`
	Markup     string `json:"markup"`
	Stylesheet string `json:"stylesheet"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	var req convertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	if req.URL == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "url is required"})
		return
	}
	if _, err := figma.ExtractFileKey(req.URL); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	token := req.Token
	if token == "" {
		token = s.defaultToken
	}
	if token == "" {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "no access token provided"})
		return
	}

	result, err := s.convert(figmarender.Options{
		AccessToken: token,
		FileURL:     req.URL,
		NodeIDs:     req.NodeIDs,
		PageTitle:   req.Title,
	})
	if err != nil {
		s.logger.Error("conversion failed", "id", requestID(r.Context()), "err", err)
		// Input was already validated, so a pipeline failure means the
		// upstream fetch (or Figma itself) misbehaved.
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, convertResponse{
		FileName:   result.FileName,
		Markup:     result.Markup,
		Stylesheet: result.Stylesheet,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

type ctxKey int

const requestIDKey ctxKey = 0

func requestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}

// withRequestID attaches a request ID, honoring one supplied by a proxy.
func (s *Server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, id)))
	})
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"id", requestID(r.Context()),
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start).Round(time.Millisecond),
		)
	})
}
