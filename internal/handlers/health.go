package handlers

import (
	"net/http"
	"time"

	"github.com/uptrace/bun"
	"go.uber.org/zap"

	"github.com/Sudarshan-Hegde/Agri-SR-AL-Net/internal/catalog"
)

type HealthHandler struct {
	db   *bun.DB
	logr *zap.Logger
}

func NewHealthHandler(db *bun.DB, logr *zap.Logger) *HealthHandler {
	return &HealthHandler{db: db, logr: logr}
}

// GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	out := map[string]any{
		"status":          "ok",
		"catalog_version": catalog.Version,
		"time":            time.Now().UTC().Format(time.RFC3339),
	}

	dbStatus := "ok"
	if h.db == nil {
		dbStatus = "not configured"
	} else if err := h.db.PingContext(r.Context()); err != nil {
		h.logr.Warn("health check: database unreachable", zap.Error(err))
		dbStatus = "unreachable"
		out["status"] = "degraded"
	}
	out["database"] = dbStatus

	writeJSON(w, http.StatusOK, out)
}
