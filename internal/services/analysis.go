package services

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/uptrace/bun"
	"go.uber.org/zap"

	"github.com/Sudarshan-Hegde/Agri-SR-AL-Net/internal/catalog"
	"github.com/Sudarshan-Hegde/Agri-SR-AL-Net/internal/clients"
	"github.com/Sudarshan-Hegde/Agri-SR-AL-Net/internal/geo"
	"github.com/Sudarshan-Hegde/Agri-SR-AL-Net/internal/models"
)

// AnalysisOptions carries the tunables the pipeline reads from config.
type AnalysisOptions struct {
	MinSamples           int
	MaxSamples           int
	InferenceConcurrency int
	TopK                 int
	DefaultAvgTempC      float64
	DefaultRainfallMm    float64
}

// AnalysisService runs the full decision pipeline: polygon → samples →
// per-sample predictions → aggregated land class → crop scoring →
// recommendation package. The geometry, aggregation and scoring steps are
// pure; only the provider calls suspend on I/O.
type AnalysisService struct {
	db        *bun.DB
	inference clients.InferenceProvider
	climate   clients.ClimateProvider
	sampler   *geo.Sampler
	scorer    *Scorer
	catalog   *catalog.Catalog
	opts      AnalysisOptions
	logr      *zap.Logger
}

func NewAnalysisService(
	db *bun.DB,
	inference clients.InferenceProvider,
	climate clients.ClimateProvider,
	cat *catalog.Catalog,
	opts AnalysisOptions,
	logr *zap.Logger,
) *AnalysisService {
	if opts.InferenceConcurrency < 1 {
		opts.InferenceConcurrency = 1
	}
	return &AnalysisService{
		db:        db,
		inference: inference,
		climate:   climate,
		sampler:   geo.NewSampler(opts.MinSamples, opts.MaxSamples),
		scorer:    NewScorer(cat),
		catalog:   cat,
		opts:      opts,
		logr:      logr,
	}
}

// AnalyzePoint classifies a single coordinate at the wide-context zoom.
func (s *AnalysisService) AnalyzePoint(ctx context.Context, c geo.Coordinate) (*models.AggregatedResult, error) {
	zoom := geo.SelectZoom(0, false)
	pred, err := s.inference.Predict(ctx, c, zoom)
	if err != nil {
		return nil, fmt.Errorf("classify point: %w", err)
	}
	result := Aggregate([]models.PredictionSample{*pred})
	s.recordAnalysis(ctx, "point", c, 0, result, nil)
	return result, nil
}

// AnalyzeArea samples a polygon and aggregates per-sample predictions into
// one regional verdict. Individual prediction failures are dropped and
// surface only as a reduced sample count.
func (s *AnalysisService) AnalyzeArea(ctx context.Context, polygon geo.Polygon) (*models.AreaAnalysis, error) {
	areaKm2 := polygon.AreaKm2()
	zoom := geo.SelectZoom(areaKm2, true)
	samples := s.sampler.Generate(polygon)

	predictions := s.predictAll(ctx, samples, zoom)
	result := Aggregate(predictions)

	analysis := &models.AreaAnalysis{
		AreaHectares: round2(polygon.AreaHectares()),
		AreaKm2:      areaKm2,
		PerimeterKm:  round2(polygon.Perimeter()),
		ZoomLevel:    zoom,
		Centroid:     polygon.Centroid(),
		Samples:      samples,
		Result:       result,
	}

	s.recordAnalysis(ctx, "area", polygon.Centroid(), analysis.AreaHectares, result, nil)
	return analysis, nil
}

// predictAll fans the inference calls out across a bounded worker set and
// collects the successes. The call returns only once every sample has
// either produced a prediction or failed.
func (s *AnalysisService) predictAll(ctx context.Context, samples []geo.Coordinate, zoom int) []models.PredictionSample {
	results := make([]*models.PredictionSample, len(samples))

	sem := make(chan struct{}, s.opts.InferenceConcurrency)
	var wg sync.WaitGroup
	for i, c := range samples {
		wg.Add(1)
		go func(i int, c geo.Coordinate) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			pred, err := s.inference.Predict(ctx, c, zoom)
			if err != nil {
				s.logr.Warn("sample prediction failed",
					zap.Float64("lat", c.Lat), zap.Float64("lng", c.Lng), zap.Error(err))
				return
			}
			results[i] = pred
		}(i, c)
	}
	wg.Wait()

	// keep the sample ordering, dropping failures
	predictions := make([]models.PredictionSample, 0, len(samples))
	for _, p := range results {
		if p != nil {
			predictions = append(predictions, *p)
		}
	}
	return predictions
}

// SuggestionRequest is the caller-facing input to crop recommendation.
type SuggestionRequest struct {
	Lat              float64 `json:"lat"`
	Lng              float64 `json:"lng"`
	LandClass        string  `json:"land_class"`
	FarmSizeHectares float64 `json:"farm_size_hectares"`
	RiskTolerance    string  `json:"risk_tolerance"`
}

// SuggestCrops scores the catalog against the inferred climate and soil
// context and assembles the full decision package. Provider failures
// degrade to configured climate defaults; an empty eligible set degrades
// to latitude-band fallback suggestions with an explicit status.
func (s *AnalysisService) SuggestCrops(ctx context.Context, req SuggestionRequest) (*models.SuggestionPackage, error) {
	if req.FarmSizeHectares <= 0 {
		req.FarmSizeHectares = 1.0
	}
	if req.RiskTolerance == "" {
		req.RiskTolerance = "medium"
	}

	avgTemp := s.opts.DefaultAvgTempC
	rainfall := s.opts.DefaultRainfallMm
	if s.climate != nil {
		if vitals, err := s.climate.GetClimate(ctx, req.Lat, req.Lng); err != nil {
			s.logr.Warn("climate fetch failed, using defaults", zap.Error(err))
		} else {
			avgTemp = vitals.AvgTempC
			rainfall = vitals.AnnualRainfallMm
		}
	}

	climate := BuildClimateContext(req.Lat, avgTemp, rainfall)
	soil := InferSoilContext(req.LandClass)

	scored := s.scorer.Score(climate, soil, req.FarmSizeHectares, req.RiskTolerance)

	pkg := &models.SuggestionPackage{
		Location:         map[string]float64{"lat": req.Lat, "lng": req.Lng},
		FarmSizeHectares: req.FarmSizeHectares,
		ClimateZone:      climate.Zone,
		SoilType:         soil.PrimaryType,
		RiskTolerance:    req.RiskTolerance,
		AnalyzedAt:       time.Now().UTC().Format(time.RFC3339),
	}

	if len(scored) == 0 {
		pkg.Status = "fallback_mode"
		pkg.TopSuggestions = s.fallbackSuggestions(req.Lat)
		pkg.RotationPlan = &models.RotationPlan{Status: "Insufficient data for rotation plan"}
		pkg.MarketInsights = &models.MarketInsights{Status: "Insufficient data for market insights"}
		pkg.SeasonalCalendar = &models.SeasonalCalendar{
			Spring: []string{}, Summer: []string{}, Fall: []string{}, Winter: []string{},
		}
	} else {
		pkg.TopSuggestions = FormatRecommendations(scored, s.opts.TopK)
		pkg.RotationPlan = BuildRotationPlan(scored)
		pkg.SeasonalCalendar = BuildSeasonalCalendar(scored)
		pkg.MarketInsights = BuildMarketInsights(scored)
	}

	var topCrop *string
	if len(pkg.TopSuggestions) > 0 {
		name := pkg.TopSuggestions[0].CropName
		topCrop = &name
	}
	landClass := req.LandClass
	if landClass == "" {
		landClass = UnknownClass
	}
	s.recordAnalysis(ctx, "suggest", geo.Coordinate{Lat: req.Lat, Lng: req.Lng}, 0,
		&models.AggregatedResult{DominantClass: landClass}, topCrop)

	return pkg, nil
}

// fallbackSuggestions returns a basic latitude-band recommendation when
// detailed scoring produced nothing viable.
func (s *AnalysisService) fallbackSuggestions(lat float64) []models.Recommendation {
	var ids []string
	switch absLat := math.Abs(lat); {
	case absLat < 23.5:
		ids = []string{"rice", "sugarcane", "corn"}
	case absLat < 35:
		ids = []string{"corn", "soybeans", "cotton"}
	default:
		ids = []string{"wheat", "sunflower", "canola"}
	}

	recs := make([]models.Recommendation, 0, len(ids))
	for i, id := range ids {
		crop, err := s.catalog.Get(id)
		if err != nil {
			continue
		}
		recs = append(recs, models.Recommendation{
			Rank:     i + 1,
			CropName: crop.Name,
			Category: crop.Category,
		})
	}
	return recs
}

// recordAnalysis persists a summary row. Persistence failures are logged,
// never surfaced to the caller.
func (s *AnalysisService) recordAnalysis(
	ctx context.Context,
	kind string,
	location geo.Coordinate,
	areaHectares float64,
	result *models.AggregatedResult,
	topCrop *string,
) {
	if s.db == nil {
		return
	}
	rec := &models.AnalysisRecord{
		Kind:          kind,
		Lat:           location.Lat,
		Lng:           location.Lng,
		AreaHectares:  areaHectares,
		DominantClass: result.DominantClass,
		Confidence:    result.Confidence,
		SampleCount:   result.SampleCount,
		TopCrop:       topCrop,
		CreatedAt:     time.Now().UTC(),
	}
	if _, err := s.db.NewInsert().Model(rec).Exec(ctx); err != nil {
		s.logr.Warn("failed to record analysis", zap.Error(err))
	}
}
