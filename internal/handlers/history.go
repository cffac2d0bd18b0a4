package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Sudarshan-Hegde/Agri-SR-AL-Net/internal/services"
)

type HistoryHandler struct {
	service *services.HistoryService
	logr    *zap.Logger
}

func NewHistoryHandler(svc *services.HistoryService, logr *zap.Logger) *HistoryHandler {
	return &HistoryHandler{service: svc, logr: logr}
}

// GET /analyses?kind=area&limit=50&offset=0
func (h *HistoryHandler) ListAnalyses(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	kind := q.Get("kind")
	limit := parseIntOr(q.Get("limit"), 50)
	offset := parseIntOr(q.Get("offset"), 0)

	records, err := h.service.ListAnalyses(r.Context(), kind, limit, offset)
	if err != nil {
		h.logr.Error("failed to list analyses", zap.Error(err))
		http.Error(w, "failed to list analyses", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"count": len(records),
		"data":  records,
	})
}

// GET /analyses/{id}
func (h *HistoryHandler) GetAnalysis(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid analysis id", http.StatusBadRequest)
		return
	}

	record, err := h.service.GetAnalysis(r.Context(), id)
	if err != nil {
		http.Error(w, "analysis not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

// GET /analyses/stats/classes
func (h *HistoryHandler) ClassCounts(w http.ResponseWriter, r *http.Request) {
	counts, err := h.service.ClassCounts(r.Context())
	if err != nil {
		h.logr.Error("failed to count classes", zap.Error(err))
		http.Error(w, "failed to count classes", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, counts)
}
