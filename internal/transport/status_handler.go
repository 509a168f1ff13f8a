// Package transport exposes the HTTP status and control endpoints.
package transport

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/goodnatureofminers/redundant-peer-sync/internal/scheduler"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

// HealthStatus is reported by /health.
type HealthStatus string

// HealthStatusHealthy is the only status the process reports while serving.
const HealthStatusHealthy HealthStatus = "healthy"

type healthResponse struct {
	Status HealthStatus `json:"status"`
}

type statusResponse struct {
	Sources []scheduler.SourceStatus `json:"sources"`
}

type triggerResponse struct {
	Source string `json:"source"`
	Ran    bool   `json:"ran"`
	Error  string `json:"error,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// StatusHandler serves the sync state of every source.
type StatusHandler struct {
	scheduler Scheduler
	logger    *zap.Logger
}

// NewStatusHandler returns a StatusHandler instance.
func NewStatusHandler(s Scheduler, logger *zap.Logger) *StatusHandler {
	return &StatusHandler{
		scheduler: s,
		logger:    logger.Named("http"),
	}
}

// Health reports server health.
func (h *StatusHandler) Health(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, healthResponse{Status: HealthStatusHealthy})
}

// Status lists every source with its cursor and last cycle result.
func (h *StatusHandler) Status(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, statusResponse{Sources: h.scheduler.Snapshot()})
}

// Sync runs one cycle for the source named by the "source" query parameter.
// It answers 409 when a cycle for that source is already running.
func (h *StatusHandler) Sync(w http.ResponseWriter, r *http.Request) {
	source := r.URL.Query().Get("source")
	if source == "" {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "source is required"})
		return
	}

	ran, err := h.scheduler.Trigger(r.Context(), source)
	switch {
	case errors.Is(err, scheduler.ErrUnknownSource):
		h.writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case err != nil:
		h.logger.Warn("manual sync failed", zap.String("source", source), zap.Error(err))
		h.writeJSON(w, http.StatusBadGateway, triggerResponse{Source: source, Ran: ran, Error: err.Error()})
	case !ran:
		h.writeJSON(w, http.StatusConflict, triggerResponse{Source: source})
	default:
		h.writeJSON(w, http.StatusOK, triggerResponse{Source: source, Ran: true})
	}
}

func (h *StatusHandler) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("write response", zap.Error(err))
	}
}

// NewHandler routes the status endpoints and /metrics behind CORS.
func NewHandler(h *StatusHandler) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", h.Health)
	mux.HandleFunc("GET /status", h.Status)
	mux.HandleFunc("POST /sync", h.Sync)
	mux.Handle("/metrics", promhttp.Handler())
	return cors.Default().Handler(mux)
}
