package rest

import (
	"context"
	"net/http"
	"time"
)

const (
	healthServiceName = "site-backend"
	healthPingTimeout = 3 * time.Second
)

var healthStartedAt = time.Now()

// dbPinger defines the minimal interface for DB health checks.
type dbPinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the liveness, readiness and full health probes.
type HealthHandler struct {
	db      dbPinger
	version string
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(db dbPinger, version string) *HealthHandler {
	return &HealthHandler{db: db, version: version}
}

// HealthResponse is the JSON response for /health, /ready and /live.
type HealthResponse struct {
	Status     string                `json:"status"`
	Service    string                `json:"service"`
	Version    string                `json:"version,omitempty"`
	Uptime     string                `json:"uptime,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// checkDatabase pings the pool and reports the component status with the
// observed round-trip latency.
func (h *HealthHandler) checkDatabase(ctx context.Context) (CompStatus, bool) {
	ctx, cancel := context.WithTimeout(ctx, healthPingTimeout)
	defer cancel()

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		return CompStatus{Status: "down"}, false
	}
	return CompStatus{Status: "ok", Latency: time.Since(start).String()}, true
}

// Live is the liveness probe. Always returns 200: the process is up.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Service:   healthServiceName,
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe. The service is ready iff the database
// answers a ping: 200 if OK, 503 if not.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{
		Status:    "ok",
		Service:   healthServiceName,
		Timestamp: time.Now(),
	}

	status := http.StatusOK
	if _, ok := h.checkDatabase(r.Context()); !ok {
		resp.Status = "down"
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, resp)
}

// Health is the full health check: per-component status with latency,
// build version and process uptime.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	components := make(map[string]CompStatus)
	overallStatus := "ok"
	status := http.StatusOK

	dbStatus, ok := h.checkDatabase(r.Context())
	components["database"] = dbStatus
	if !ok {
		overallStatus = "down"
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, HealthResponse{
		Status:     overallStatus,
		Service:    healthServiceName,
		Version:    h.version,
		Uptime:     time.Since(healthStartedAt).Round(time.Second).String(),
		Components: components,
		Timestamp:  time.Now(),
	})
}
