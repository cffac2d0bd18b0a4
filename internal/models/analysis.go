package models

import "github.com/Sudarshan-Hegde/Agri-SR-AL-Net/internal/geo"

// PredictionSample is one land-classification result for a single sample
// coordinate, produced by the external inference endpoint.
type PredictionSample struct {
	LandClass  string             `json:"land_class"`
	Confidence float64            `json:"confidence"`
	PerClass   map[string]float64 `json:"predictions,omitempty"`
}

// ClassShare is one land class's slice of an aggregated sample set.
type ClassShare struct {
	Class         string  `json:"class"`
	Percentage    float64 `json:"percentage"`     // 2 decimals
	Count         int     `json:"count"`
	AvgConfidence float64 `json:"avg_confidence"` // 3 decimals
}

// AggregatedResult is the area-level verdict over all sample predictions.
// Distribution is ordered descending by percentage.
type AggregatedResult struct {
	DominantClass string       `json:"dominant_class"`
	Confidence    float64      `json:"confidence"`
	Distribution  []ClassShare `json:"class_distribution"`
	SampleCount   int          `json:"sample_count"`
}

// ClimateContext describes the inferred growing conditions at a location.
type ClimateContext struct {
	Zone                string  `json:"climate_zone"` // tropical | subtropical | temperate | cold
	AvgTemperatureC     float64 `json:"avg_temperature_c"`
	AnnualRainfallMm    float64 `json:"annual_rainfall_mm"`
	Hemisphere          string  `json:"hemisphere"`
	GrowingSeasonMonths int     `json:"growing_season_months"`
}

// SoilContext is the soil profile inferred from the dominant land class.
type SoilContext struct {
	PrimaryType     string   `json:"primary_type"`
	Fertility       string   `json:"fertility"` // low | medium | high
	Drainage        string   `json:"drainage"`  // poor | good | excellent | variable
	CompatibleTypes []string `json:"suitable_for"`
}

// AreaAnalysis bundles the geometry summary and aggregated verdict for a
// polygon request.
type AreaAnalysis struct {
	AreaHectares float64           `json:"area_hectares"`
	AreaKm2      float64           `json:"area_km2"`
	PerimeterKm  float64           `json:"perimeter_km"`
	ZoomLevel    int               `json:"zoom_level"`
	Centroid     geo.Coordinate    `json:"centroid"`
	Samples      []geo.Coordinate  `json:"samples"`
	Result       *AggregatedResult `json:"result"`
}
