// Package server exposes the analyzer over HTTP/1.1. The transport owns no
// analysis logic: it is composed with an analyze capability and an optional
// history store, decodes the request envelope, and writes the result
// documents back out. Routes are matched exactly on (method, path) — a
// method mismatch is a 404, the same as the original route table.
package server

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	bigo "github.com/blukebill/BigO"
	"github.com/blukebill/BigO/internal/store"
)

// AnalyzeFunc is the capability the transport is composed with.
type AnalyzeFunc func(ctx context.Context, language, code string) (*bigo.Result, error)

// Server routes parse requests to the analyze capability.
type Server struct {
	analyze AnalyzeFunc
	history *store.Store
	logw    io.Writer
	routes  []route
}

type route struct {
	method  string
	path    string
	handler http.HandlerFunc
}

// Option configures a Server.
type Option func(*Server)

// WithHistory records every successful parse in the given store and enables
// GET /history.
func WithHistory(s *store.Store) Option {
	return func(srv *Server) {
		srv.history = s
	}
}

// WithLogWriter redirects the request log. Defaults to stderr.
func WithLogWriter(w io.Writer) Option {
	return func(srv *Server) {
		srv.logw = w
	}
}

// New builds a Server around the analyze capability.
func New(analyze AnalyzeFunc, opts ...Option) *Server {
	srv := &Server{analyze: analyze, logw: os.Stderr}
	for _, opt := range opts {
		opt(srv)
	}

	srv.routes = []route{
		{http.MethodGet, "/health", srv.handleHealth},
		{http.MethodPost, "/parse", srv.handleParse},
	}
	if srv.history != nil {
		srv.routes = append(srv.routes, route{http.MethodGet, "/history", srv.handleHistory})
	}
	return srv
}

// ServeHTTP dispatches against the route table.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	fmt.Fprintf(s.logw, "[http] %s %s\n", r.Method, r.URL.Path)
	for _, rt := range s.routes {
		if rt.method == r.Method && rt.path == r.URL.Path {
			rt.handler(w, r)
			return
		}
	}
	writeJSON(w, http.StatusNotFound, errorBody{Error: "not found"})
}

// ListenAndServe serves on addr until the listener fails.
func (s *Server) ListenAndServe(addr string) error {
	fmt.Fprintf(s.logw, "[http] listening on %s\n", addr)
	hs := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}
	if err := hs.ListenAndServe(); err != nil {
		return fmt.Errorf("server: listen on %s: %w", addr, err)
	}
	return nil
}

// parseRequest is the POST /parse envelope. Pointers distinguish absent keys
// from empty strings: a missing language defaults to "c", missing code to "".
type parseRequest struct {
	Language *string `json:"language"`
	Code     *string `json:"code"`
}

type errorBody struct {
	Error string `json:"error"`
}

type healthBody struct {
	Status string `json:"status"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthBody{Status: "ok"})
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid JSON"})
		return
	}

	var req parseRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid JSON"})
		return
	}

	language := "c"
	if req.Language != nil {
		language = *req.Language
	}
	code := ""
	if req.Code != nil {
		code = *req.Code
	}

	res, err := s.analyze(r.Context(), language, code)
	if err != nil {
		fmt.Fprintf(s.logw, "[http] analyze error: %v\n", err)
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "internal error"})
		return
	}

	s.record(language, code, res)
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid limit"})
			return
		}
		limit = n
	}

	entries, err := s.history.RecentAnalyses(limit)
	if err != nil {
		fmt.Fprintf(s.logw, "[http] history error: %v\n", err)
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "internal error"})
		return
	}
	if entries == nil {
		entries = []store.Analysis{}
	}
	writeJSON(w, http.StatusOK, entries)
}

// record persists one analysis when a history store is configured. Failures
// are logged, never surfaced to the client.
func (s *Server) record(language, code string, res *bigo.Result) {
	if s.history == nil {
		return
	}

	summary, err := json.Marshal(res.Summary)
	if err != nil {
		fmt.Fprintf(s.logw, "[http] record: %v\n", err)
		return
	}

	recursive := 0
	for _, fn := range res.Summary.Functions {
		if fn.IsRecursive {
			recursive++
		}
	}

	_, err = s.history.InsertAnalysis(&store.Analysis{
		Language:       language,
		Hash:           fmt.Sprintf("%x", sha256.Sum256([]byte(code))),
		LineCount:      strings.Count(code, "\n") + 1,
		RootType:       res.AST.RootType,
		FunctionCount:  len(res.Summary.Functions),
		LoopCount:      len(res.Summary.Loops),
		RecursiveCount: recursive,
		Summary:        string(summary),
		CreatedAt:      time.Now().UTC(),
	})
	if err != nil {
		fmt.Fprintf(s.logw, "[http] record: %v\n", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
