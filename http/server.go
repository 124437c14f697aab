package http

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/progscout/progscout"
)

// ShutdownTimeout bounds graceful shutdown on Close.
const ShutdownTimeout = 5 * time.Second

// Server serves the read-only JSON API over the stored program corpus.
type Server struct {
	ln     net.Listener
	server *http.Server
	router chi.Router

	Addr string

	ProgramService  progscout.ProgramService
	SnapshotService progscout.SnapshotService
}

// NewServer creates a Server with its routes registered. The services
// must be set before Open or ServeHTTP is called.
func NewServer() *Server {
	s := &Server{
		server: &http.Server{},
		router: chi.NewRouter(),
	}

	s.router.Use(middleware.Recoverer)
	s.router.Get("/health", s.handleHealth)
	s.router.Get("/programs", s.handleProgramList)
	s.router.Get("/programs/{id}", s.handleProgramShow)
	s.router.Get("/stats", s.handleStats)

	s.server.Handler = s.router
	return s
}

// ServeHTTP implements http.Handler, mainly for tests.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Open begins listening on Addr and serves in a goroutine.
func (s *Server) Open() (err error) {
	if s.Addr == "" {
		s.Addr = ":8080"
	}
	if s.ln, err = net.Listen("tcp", s.Addr); err != nil {
		return err
	}

	go func() {
		_ = s.server.Serve(s.ln)
	}()
	return nil
}

// Close gracefully shuts the server down.
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// URL returns the base URL of the listening server.
func (s *Server) URL() string {
	if s.ln == nil {
		return ""
	}
	return "http://" + s.ln.Addr().String()
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleProgramList(w http.ResponseWriter, r *http.Request) {
	filter := filterFromQuery(r)

	programs, err := s.ProgramService.FindPrograms(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	if programs == nil {
		programs = []*progscout.Program{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"programs": programs})
}

func (s *Server) handleProgramShow(w http.ResponseWriter, r *http.Request) {
	program, err := s.ProgramService.FindProgramByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, program)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.ProgramService.Stats(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	out := map[string]any{
		"programs": stats.Programs,
		"approved": stats.Approved,
		"sources":  stats.Sources,
	}
	if s.SnapshotService != nil {
		if domains, err := s.SnapshotService.CountDomains(r.Context()); err == nil {
			out["snapshotDomains"] = domains
		}
	}
	writeJSON(w, http.StatusOK, out)
}

// filterFromQuery maps list query parameters to a ProgramFilter.
func filterFromQuery(r *http.Request) progscout.ProgramFilter {
	var filter progscout.ProgramFilter
	q := r.URL.Query()

	if v := q.Get("type"); v != "" {
		typ := progscout.Type(v)
		filter.Type = &typ
	}
	if v := q.Get("mode"); v != "" {
		mode := progscout.Mode(v)
		filter.Mode = &mode
	}
	if v := q.Get("cost"); v != "" {
		cost := v
		filter.Cost = &cost
	}
	if v := q.Get("country"); v != "" {
		country := v
		filter.CountryContains = &country
	}
	if v := q.Get("city"); v != "" {
		city := v
		filter.CityContains = &city
	}
	if v, err := strconv.Atoi(q.Get("offset")); err == nil && v > 0 {
		filter.Offset = v
	}
	filter.Limit = 50
	if v, err := strconv.Atoi(q.Get("limit")); err == nil && v > 0 && v <= 500 {
		filter.Limit = v
	}
	return filter
}

// writeError maps domain error codes to HTTP status codes.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch progscout.ErrorCode(err) {
	case progscout.EINVALID:
		status = http.StatusBadRequest
	case progscout.ENOTFOUND:
		status = http.StatusNotFound
	case progscout.ECONFLICT:
		status = http.StatusConflict
	}
	writeJSON(w, status, map[string]string{"error": progscout.ErrorMessage(err)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
