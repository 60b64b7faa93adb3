// Package http exposes the check-digit lookup service plus health and
// metrics endpoints.
package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/palletworks/station-data-tools/internal/domain"
	"github.com/palletworks/station-data-tools/internal/observability"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Dataset serves check-digit lookups against the seeded station data.
type Dataset interface {
	Lookup(ctx context.Context, code string) (digit string, found bool, err error)
	CheckReadiness(ctx context.Context) error
}

// Server exposes lookup, health, readiness, and metrics HTTP endpoints.
type Server struct {
	httpServer *http.Server
	dataset    Dataset
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewServer creates an HTTP server with /v1/checkdigit, /healthz, /readyz,
// and /metrics routes.
func NewServer(addr string, dataset Dataset, metrics *observability.Metrics, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		dataset: dataset,
		metrics: metrics,
		logger:  logger,
	}

	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", s.handleReady)
	mux.HandleFunc("GET /v1/checkdigit", s.handleCheckDigit)
	mux.Handle("GET /metrics", promhttp.Handler())

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := s.dataset.CheckReadiness(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "not ready",
			"error":  err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

// lookupResponse mirrors the mobile app's lookup result shape.
type lookupResponse struct {
	Code       string `json:"code"`
	Normalized string `json:"normalized"`
	CheckDigit string `json:"check_digit,omitempty"`
	Found      bool   `json:"found"`
}

func (s *Server) handleCheckDigit(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	if code == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing code parameter"})
		return
	}

	normalized := domain.NormalizeCode(code)
	resp := lookupResponse{Code: code, Normalized: normalized}

	// A non-canonical normalization result means the input shape was not
	// recognized; by contract that is a miss, not an error.
	if !domain.IsCanonical(normalized) {
		s.metrics.LookupRequests.WithLabelValues("unrecognized").Inc()
		writeJSON(w, http.StatusNotFound, resp)
		return
	}

	digit, found, err := s.dataset.Lookup(r.Context(), normalized)
	if err != nil {
		s.metrics.LookupRequests.WithLabelValues("error").Inc()
		s.logger.Error("lookup failed", "code", normalized, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "lookup failed"})
		return
	}
	if !found {
		s.metrics.LookupRequests.WithLabelValues("miss").Inc()
		writeJSON(w, http.StatusNotFound, resp)
		return
	}

	s.metrics.LookupRequests.WithLabelValues("hit").Inc()
	resp.CheckDigit = digit
	resp.Found = true
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response
}
