package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/solardome/mpg-dashboard/internal/config"
	"github.com/solardome/mpg-dashboard/internal/dataset"
	"github.com/solardome/mpg-dashboard/internal/report"
	"github.com/solardome/mpg-dashboard/internal/styling"
)

// Server wires the dataset, the filter/aggregate engine and the styling
// manager behind the HTTP surface.
type Server struct {
	store   *dataset.Store
	cfg     config.Config
	manager *styling.Manager
	styles  *styling.StyleStore
	log     *report.AuditLogger
	runID   string
}

func New(store *dataset.Store, cfg config.Config, manager *styling.Manager, styles *styling.StyleStore, log *report.AuditLogger) *Server {
	return &Server{
		store:   store,
		cfg:     cfg,
		manager: manager,
		styles:  styles,
		log:     log,
		runID:   uuid.NewString(),
	}
}

// RunID identifies this server process in the page footer and the run log.
func (s *Server) RunID() string {
	return s.runID
}

// Handler builds the route tree.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.auditRequests)

	r.Get("/", s.handleIndex)
	r.Get("/charts/scatter", s.handleScatterChart)
	r.Get("/charts/bar", s.handleBarChart)
	r.Post("/styling", s.handleStyling)
	r.Get("/api/records", s.handleRecords)
	r.Get("/healthz", s.handleHealthz)

	return r
}

// auditRequests logs one run-log line per request. Styling lifecycle events
// are logged separately by the manager.
func (s *Server) auditRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.log.Info("http.request", map[string]interface{}{
			"method":      r.Method,
			"path":        r.URL.Path,
			"status":      ww.Status(),
			"duration_ms": time.Since(start).Milliseconds(),
		})
	})
}
