package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Sudarshan-Hegde/Agri-SR-AL-Net/internal/catalog"
	"github.com/Sudarshan-Hegde/Agri-SR-AL-Net/internal/utils"
)

type CatalogHandler struct {
	catalog *catalog.Catalog
	logr    *zap.Logger
}

func NewCatalogHandler(cat *catalog.Catalog, logr *zap.Logger) *CatalogHandler {
	return &CatalogHandler{catalog: cat, logr: logr}
}

// GET /crops?category=grain,vegetable
func (h *CatalogHandler) ListCrops(w http.ResponseWriter, r *http.Request) {
	categories := utils.ParseQueryList(r.URL.Query(), "category")

	crops := h.catalog.All()
	if len(categories) > 0 {
		crops = h.catalog.ByCategory(categories)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"version": catalog.Version,
		"count":   len(crops),
		"crops":   crops,
	})
}

// GET /crops/{id}
func (h *CatalogHandler) GetCrop(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	crop, err := h.catalog.Get(id)
	if err != nil {
		http.Error(w, "crop not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, crop)
}
