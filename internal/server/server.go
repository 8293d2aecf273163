package server

import (
	"log/slog"
	"math/rand"
	"net/http"
	"time"

	"github.com/adrianistaken/time-tracker/internal/repository"
	"github.com/adrianistaken/time-tracker/internal/service"
)

// Server is the HTTP boundary. View routes return JSON view models;
// mutations redirect. All routes except /login require a resolved user.
type Server struct {
	projects service.ProjectService
	sessions service.SessionService
	stats    service.StatsService
	users    repository.UserRepo
	rng      *rand.Rand
	logger   *slog.Logger
	mux      *http.ServeMux
}

func New(projects service.ProjectService, sessions service.SessionService, stats service.StatsService, users repository.UserRepo, rng *rand.Rand, logger *slog.Logger) *Server {
	s := &Server{
		projects: projects,
		sessions: sessions,
		stats:    stats,
		users:    users,
		rng:      rng,
		logger:   logger,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /login", s.handleLoginPage)
	mux.HandleFunc("POST /login", s.handleLogin)

	mux.HandleFunc("GET /{$}", s.withUser(s.handleEntry))
	mux.HandleFunc("GET /dashboard", s.withUser(s.handleDashboard))

	mux.HandleFunc("GET /session/{id}", s.withUser(s.handleSessionShow))
	mux.HandleFunc("POST /sessions/start", s.withUser(s.handleSessionStart))
	mux.HandleFunc("POST /session/{id}/stop", s.withUser(s.handleSessionStop))

	mux.HandleFunc("POST /projects", s.withUser(s.handleProjectStore))
	mux.HandleFunc("PUT /projects/{id}", s.withUser(s.handleProjectUpdate))
	mux.HandleFunc("POST /projects/{id}/archive", s.withUser(s.handleProjectArchive))
	mux.HandleFunc("POST /projects/{id}/unarchive", s.withUser(s.handleProjectUnarchive))

	s.mux = mux
}

func (s *Server) Handler() http.Handler {
	return s.logRequests(s.mux)
}

// statusRecorder captures the response status for request logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Info("http_request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(started).Milliseconds(),
		)
	})
}
