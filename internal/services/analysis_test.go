package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"go.uber.org/zap"

	"github.com/Sudarshan-Hegde/Agri-SR-AL-Net/internal/catalog"
	"github.com/Sudarshan-Hegde/Agri-SR-AL-Net/internal/clients"
	"github.com/Sudarshan-Hegde/Agri-SR-AL-Net/internal/geo"
	"github.com/Sudarshan-Hegde/Agri-SR-AL-Net/internal/models"
)

// fakeInference classifies every coordinate with a fixed label, failing
// every failEvery-th call when set. Predict is called concurrently.
type fakeInference struct {
	class     string
	failEvery int

	mu    sync.Mutex
	calls int
}

func (f *fakeInference) Predict(ctx context.Context, c geo.Coordinate, zoom int) (*models.PredictionSample, error) {
	f.mu.Lock()
	f.calls++
	n := f.calls
	f.mu.Unlock()

	if f.failEvery > 0 && n%f.failEvery == 0 {
		return nil, errors.New("model unavailable")
	}
	return &models.PredictionSample{LandClass: f.class, Confidence: 0.9}, nil
}

type fakeClimate struct {
	vitals *clients.ClimateVitals
	err    error
}

func (f *fakeClimate) GetClimate(ctx context.Context, lat, lng float64) (*clients.ClimateVitals, error) {
	return f.vitals, f.err
}

func testOptions() AnalysisOptions {
	return AnalysisOptions{
		MinSamples:           5,
		MaxSamples:           50,
		InferenceConcurrency: 4,
		TopK:                 10,
		DefaultAvgTempC:      20,
		DefaultRainfallMm:    800,
	}
}

func newTestService(inference clients.InferenceProvider, climate clients.ClimateProvider) *AnalysisService {
	return NewAnalysisService(nil, inference, climate, catalog.Load(), testOptions(), zap.NewNop())
}

func TestAnalyzePoint(t *testing.T) {
	svc := newTestService(&fakeInference{class: "Forest"}, nil)

	result, err := svc.AnalyzePoint(context.Background(), geo.Coordinate{Lat: 12.9, Lng: 77.5})
	if err != nil {
		t.Fatalf("AnalyzePoint error: %v", err)
	}
	if result.DominantClass != "Forest" {
		t.Errorf("DominantClass = %q, want Forest", result.DominantClass)
	}
	if result.SampleCount != 1 {
		t.Errorf("SampleCount = %d, want 1", result.SampleCount)
	}
}

func TestAnalyzePointFailure(t *testing.T) {
	svc := newTestService(&fakeInference{class: "Forest", failEvery: 1}, nil)

	if _, err := svc.AnalyzePoint(context.Background(), geo.Coordinate{}); err == nil {
		t.Error("expected an error when the single prediction fails")
	}
}

func TestAnalyzeArea(t *testing.T) {
	svc := newTestService(&fakeInference{class: "Grassland"}, nil)
	polygon := geo.Polygon{
		{Lat: 0, Lng: 0},
		{Lat: 0, Lng: 0.01},
		{Lat: 0.01, Lng: 0.01},
		{Lat: 0.01, Lng: 0},
	}

	analysis, err := svc.AnalyzeArea(context.Background(), polygon)
	if err != nil {
		t.Fatalf("AnalyzeArea error: %v", err)
	}
	if analysis.Result.DominantClass != "Grassland" {
		t.Errorf("DominantClass = %q, want Grassland", analysis.Result.DominantClass)
	}
	if analysis.Result.SampleCount != len(analysis.Samples) {
		t.Errorf("SampleCount = %d, want one prediction per sample (%d)",
			analysis.Result.SampleCount, len(analysis.Samples))
	}
	if analysis.AreaHectares <= 0 || analysis.PerimeterKm <= 0 {
		t.Errorf("geometry summary not populated: %+v", analysis)
	}
	if analysis.ZoomLevel != 14 {
		t.Errorf("ZoomLevel = %d for %f km^2, want 14", analysis.ZoomLevel, analysis.AreaKm2)
	}
}

func TestAnalyzeAreaPartialFailures(t *testing.T) {
	svc := newTestService(&fakeInference{class: "Forest", failEvery: 3}, nil)
	polygon := geo.Polygon{
		{Lat: 0, Lng: 0},
		{Lat: 0, Lng: 0.01},
		{Lat: 0.01, Lng: 0.01},
		{Lat: 0.01, Lng: 0},
	}

	analysis, err := svc.AnalyzeArea(context.Background(), polygon)
	if err != nil {
		t.Fatalf("AnalyzeArea error: %v", err)
	}
	if analysis.Result.SampleCount >= len(analysis.Samples) {
		t.Errorf("SampleCount = %d with failures, want fewer than %d samples",
			analysis.Result.SampleCount, len(analysis.Samples))
	}
	if analysis.Result.DominantClass != "Forest" {
		t.Errorf("DominantClass = %q, failures should not change the verdict", analysis.Result.DominantClass)
	}
}

func TestSuggestCrops(t *testing.T) {
	climate := &fakeClimate{vitals: &clients.ClimateVitals{AvgTempC: 26, AnnualRainfallMm: 1400}}
	svc := newTestService(&fakeInference{class: "Arable Land"}, climate)

	pkg, err := svc.SuggestCrops(context.Background(), SuggestionRequest{
		Lat: 12.9, Lng: 77.5,
		LandClass:        "Arable Land",
		FarmSizeHectares: 2,
		RiskTolerance:    "medium",
	})
	if err != nil {
		t.Fatalf("SuggestCrops error: %v", err)
	}

	if pkg.Status != "" {
		t.Fatalf("unexpected degraded status %q", pkg.Status)
	}
	if pkg.ClimateZone != "tropical" {
		t.Errorf("ClimateZone = %q, want tropical at 12.9N", pkg.ClimateZone)
	}
	if pkg.SoilType != "loamy" {
		t.Errorf("SoilType = %q, want the loamy default for arable land", pkg.SoilType)
	}
	if len(pkg.TopSuggestions) == 0 {
		t.Fatal("no suggestions for favourable conditions")
	}
	if len(pkg.TopSuggestions) > testOptions().TopK {
		t.Errorf("got %d suggestions, cap is %d", len(pkg.TopSuggestions), testOptions().TopK)
	}
	if pkg.RotationPlan == nil || pkg.SeasonalCalendar == nil || pkg.MarketInsights == nil {
		t.Error("decision package incomplete")
	}
	for i, rec := range pkg.TopSuggestions {
		if rec.Rank != i+1 {
			t.Errorf("rank at index %d = %d", i, rec.Rank)
		}
	}
}

func TestSuggestCropsDefaults(t *testing.T) {
	svc := newTestService(&fakeInference{class: "Forest"}, &fakeClimate{err: errors.New("offline")})

	pkg, err := svc.SuggestCrops(context.Background(), SuggestionRequest{Lat: 48.8, Lng: 2.3})
	if err != nil {
		t.Fatalf("SuggestCrops error: %v", err)
	}
	// provider failure falls back to defaults, request defaults applied
	if pkg.FarmSizeHectares != 1.0 {
		t.Errorf("FarmSizeHectares = %f, want default 1.0", pkg.FarmSizeHectares)
	}
	if pkg.RiskTolerance != "medium" {
		t.Errorf("RiskTolerance = %q, want default medium", pkg.RiskTolerance)
	}
	if pkg.ClimateZone != "temperate" {
		t.Errorf("ClimateZone = %q, want temperate at 48.8N", pkg.ClimateZone)
	}
}

func TestSuggestCropsFallbackMode(t *testing.T) {
	// an empty catalog leaves nothing above the suitability floor
	svc := NewAnalysisService(nil, &fakeInference{class: "Urban Area"},
		&fakeClimate{err: errors.New("offline")}, &catalog.Catalog{}, testOptions(), zap.NewNop())

	pkg, err := svc.SuggestCrops(context.Background(), SuggestionRequest{
		Lat: 70, Lng: 25, LandClass: "Urban Area",
	})
	if err != nil {
		t.Fatalf("SuggestCrops error: %v", err)
	}

	if pkg.Status != "fallback_mode" {
		t.Fatalf("Status = %q, want fallback_mode", pkg.Status)
	}
	if pkg.RotationPlan == nil || pkg.RotationPlan.Status == "" {
		t.Error("fallback rotation plan missing its status")
	}
	if pkg.MarketInsights == nil || pkg.MarketInsights.Status == "" {
		t.Error("fallback market insights missing its status")
	}
	if pkg.SeasonalCalendar == nil {
		t.Error("fallback calendar missing")
	}
}

func TestFallbackSuggestions(t *testing.T) {
	svc := newTestService(&fakeInference{class: "Forest"}, nil)

	tests := []struct {
		lat   float64
		wants []string
	}{
		{10, []string{"Rice", "Sugarcane", "Corn (Maize)"}},
		{-30, []string{"Corn (Maize)", "Soybeans", "Cotton"}},
		{52, []string{"Wheat", "Sunflower", "Canola (Rapeseed)"}},
	}
	for _, tt := range tests {
		recs := svc.fallbackSuggestions(tt.lat)
		if len(recs) != len(tt.wants) {
			t.Fatalf("lat %f: got %d suggestions, want %d", tt.lat, len(recs), len(tt.wants))
		}
		for i, want := range tt.wants {
			if recs[i].CropName != want {
				t.Errorf("lat %f: rank %d = %q, want %q", tt.lat, i+1, recs[i].CropName, want)
			}
			if recs[i].Rank != i+1 {
				t.Errorf("lat %f: rank field = %d, want %d", tt.lat, recs[i].Rank, i+1)
			}
		}
	}
}
