package handlers

import (
	"log/slog"
	nethttp "net/http"
	"sync/atomic"

	"github.com/preston-bernstein/datefmt-service/internal/app/formatter"
)

// Handler wires HTTP routes to the formatter service.
type Handler struct {
	svc      *formatter.Service
	logger   *slog.Logger
	draining atomic.Bool
}

// NewHandler constructs a Handler with defaults.
func NewHandler(svc *formatter.Service, logger *slog.Logger) *Handler {
	return &Handler{
		svc:    svc,
		logger: logger,
	}
}

// SetDraining flips readiness off while the server shuts down.
func (h *Handler) SetDraining(draining bool) {
	h.draining.Store(draining)
}

// ServeHTTP dispatches without a mux; NewRouter is preferred.
func (h *Handler) ServeHTTP(w nethttp.ResponseWriter, r *nethttp.Request) {
	switch r.URL.Path {
	case "/health":
		h.Health(w, r)
	case "/ready":
		h.Ready(w, r)
	case "/format":
		h.Format(w, r)
	case "/tokens":
		h.Tokens(w, r)
	default:
		writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if h.draining.Load() {
		writeError(w, r, nethttp.StatusServiceUnavailable, "draining", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
}
