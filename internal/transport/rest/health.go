package rest

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"time"
)

// dbPingTimeout bounds the readiness probe so a wedged pool cannot hang
// the load balancer's check.
const dbPingTimeout = 3 * time.Second

type checkResult struct {
	OK        bool   `json:"ok"`
	LatencyMs int64  `json:"latency_ms"`
	Error     string `json:"error,omitempty"`
}

type healthReport struct {
	Status    string                 `json:"status"`
	CheckedAt time.Time              `json:"checked_at"`
	Checks    map[string]checkResult `json:"checks"`
}

type HealthHandler struct {
	db *sql.DB
}

func NewHealthHandler(db *sql.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// pingHandler is the liveness probe; it never touches dependencies.
func (h *HealthHandler) pingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "OK"})
}

// healthCheckHandler is the readiness probe; it pings the database and
// reports per-check latency.
func (h *HealthHandler) healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), dbPingTimeout)
	defer cancel()

	start := time.Now()
	pingErr := h.db.PingContext(ctx)

	dbCheck := checkResult{
		OK:        pingErr == nil,
		LatencyMs: time.Since(start).Milliseconds(),
	}
	if pingErr != nil {
		dbCheck.Error = pingErr.Error()
	}

	report := healthReport{
		Status:    "healthy",
		CheckedAt: time.Now().UTC(),
		Checks:    map[string]checkResult{"database": dbCheck},
	}

	statusCode := http.StatusOK
	if !dbCheck.OK {
		report.Status = "unhealthy"
		statusCode = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(report)
}
