package httpadapter

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type healthResponse struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// handleHealth reports that the process is up.
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.ok(w, r, healthResponse{Status: "healthy", Timestamp: time.Now().UTC().Format(time.RFC3339)})
}

// handleReady checks Postgres and Redis. Any failing dependency answers
// 503.
func (h *Handler) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]string, 2)
	healthy := true
	if h.db != nil {
		if err := h.checkDatabase(ctx); err != nil {
			h.logger.Warn("database health check failed", zap.Error(err))
			checks["database"] = "unhealthy"
			healthy = false
		} else {
			checks["database"] = "healthy"
		}
	}
	if h.rdb != nil {
		if err := h.rdb.Ping(ctx).Err(); err != nil {
			h.logger.Warn("redis health check failed", zap.Error(err))
			checks["redis"] = "unhealthy"
			healthy = false
		} else {
			checks["redis"] = "healthy"
		}
	}

	now := time.Now().UTC().Format(time.RFC3339)
	if !healthy {
		h.fail(w, r, http.StatusServiceUnavailable, "service unavailable", map[string]any{
			"status":    "unhealthy",
			"timestamp": now,
			"checks":    checks,
		})
		return
	}
	h.ok(w, r, healthResponse{Status: "healthy", Timestamp: now, Checks: checks})
}

func (h *Handler) checkDatabase(ctx context.Context) error {
	if err := h.db.PingContext(ctx); err != nil {
		return err
	}
	var one int
	return h.db.QueryRowContext(ctx, "SELECT 1").Scan(&one)
}
