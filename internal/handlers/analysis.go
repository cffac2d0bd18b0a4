package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/Sudarshan-Hegde/Agri-SR-AL-Net/internal/geo"
	"github.com/Sudarshan-Hegde/Agri-SR-AL-Net/internal/services"
)

// knownClasses is the label set the inference model is trained on.
var knownClasses = []string{
	"Arable Land",
	"Forest",
	"Grassland",
	"Urban Area",
	"Water Body",
}

type AnalysisHandler struct {
	service *services.AnalysisService
	logr    *zap.Logger
}

func NewAnalysisHandler(svc *services.AnalysisService, logr *zap.Logger) *AnalysisHandler {
	return &AnalysisHandler{service: svc, logr: logr}
}

type pointReq struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type areaReq struct {
	Coordinates []geo.Coordinate `json:"coordinates"`
}

func validCoordinate(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

// POST /analyze
func (h *AnalysisHandler) AnalyzePoint(w http.ResponseWriter, r *http.Request) {
	var req pointReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}
	if !validCoordinate(req.Lat, req.Lng) {
		http.Error(w, "coordinates out of range", http.StatusBadRequest)
		return
	}

	result, err := h.service.AnalyzePoint(r.Context(), geo.Coordinate{Lat: req.Lat, Lng: req.Lng})
	if err != nil {
		h.logr.Error("point analysis failed", zap.Error(err),
			zap.Float64("lat", req.Lat), zap.Float64("lng", req.Lng))
		http.Error(w, "analysis failed", http.StatusBadGateway)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// POST /analyze/area
func (h *AnalysisHandler) AnalyzeArea(w http.ResponseWriter, r *http.Request) {
	var req areaReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}
	if len(req.Coordinates) < 3 {
		http.Error(w, "polygon requires at least 3 coordinates", http.StatusBadRequest)
		return
	}
	for _, c := range req.Coordinates {
		if !validCoordinate(c.Lat, c.Lng) {
			http.Error(w, "coordinates out of range", http.StatusBadRequest)
			return
		}
	}

	analysis, err := h.service.AnalyzeArea(r.Context(), geo.Polygon(req.Coordinates))
	if err != nil {
		h.logr.Error("area analysis failed", zap.Error(err),
			zap.Int("vertices", len(req.Coordinates)))
		http.Error(w, "analysis failed", http.StatusBadGateway)
		return
	}
	writeJSON(w, http.StatusOK, analysis)
}

// POST /crops/suggest
func (h *AnalysisHandler) SuggestCrops(w http.ResponseWriter, r *http.Request) {
	var req services.SuggestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}
	if !validCoordinate(req.Lat, req.Lng) {
		http.Error(w, "coordinates out of range", http.StatusBadRequest)
		return
	}

	pkg, err := h.service.SuggestCrops(r.Context(), req)
	if err != nil {
		h.logr.Error("crop suggestion failed", zap.Error(err))
		http.Error(w, "suggestion failed", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, pkg)
}

// GET /classes
func (h *AnalysisHandler) GetLandClasses(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"classes": knownClasses,
		"count":   len(knownClasses),
	})
}
