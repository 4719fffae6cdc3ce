// Package monitor exposes the HTTP interface for observing a crawl run.
package monitor

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/lookuply/webcrawler/internal/metrics"
	"github.com/lookuply/webcrawler/internal/pipeline"
)

// Server serves health, Prometheus metrics, and live crawl statistics.
type Server struct {
	router chi.Router
	stats  *pipeline.Stats
	logger *zap.Logger
	http   *http.Server
}

// NewServer constructs a Server with routes mounted.
func NewServer(addr string, stats *pipeline.Stats, logger *zap.Logger) *Server {
	s := &Server{
		stats:  stats,
		logger: logger,
	}
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.healthz)
	r.Handle("/metrics", metrics.Handler())
	r.Get("/stats", s.getStats)

	s.router = r
	s.http = &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Handler returns the router for use with http.Server.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves until Shutdown is called. It logs and returns on listener
// errors; callers usually run it in its own goroutine.
func (s *Server) Start() {
	s.logger.Info("monitor listening", zap.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.logger.Error("monitor server failed", zap.Error(err))
	}
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

func (s *Server) healthz(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) getStats(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.stats.Snapshot())
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Warn("failed to encode response", zap.Error(err))
	}
}
