package services

import (
	"sort"
	"strings"

	"github.com/Sudarshan-Hegde/Agri-SR-AL-Net/internal/catalog"
	"github.com/Sudarshan-Hegde/Agri-SR-AL-Net/internal/models"
)

// Crops with a combined suitability at or below this floor are excluded
// from results entirely.
const suitabilityFloor = 0.3

// Component weights for the combined suitability score.
const (
	climateWeight = 0.35
	soilWeight    = 0.35
	riskWeight    = 0.30
)

// riskMatrix maps farmer risk tolerance × crop risk level to a 0-1 factor.
var riskMatrix = map[string]map[string]float64{
	"low":    {"low": 1.0, "medium": 0.9, "high": 0.6, "very high": 0.4},
	"medium": {"low": 0.9, "medium": 1.0, "high": 0.8, "very high": 0.6},
	"high":   {"low": 0.7, "medium": 0.9, "high": 1.0, "very high": 0.9},
}

// Scorer ranks the crop catalog against an inferred climate and soil
// context. It is stateless apart from the read-only catalog and safe for
// concurrent use.
type Scorer struct {
	catalog *catalog.Catalog
}

func NewScorer(cat *catalog.Catalog) *Scorer {
	return &Scorer{catalog: cat}
}

// Score evaluates every catalog entry and returns the crops that clear the
// suitability floor, sorted descending by profit score.
func (s *Scorer) Score(
	climate models.ClimateContext,
	soil models.SoilContext,
	farmSizeHectares float64,
	riskTolerance string,
) []models.ScoredCrop {
	var scored []models.ScoredCrop
	for _, crop := range s.catalog.All() {
		sc := scoreCrop(crop, climate, soil, farmSizeHectares, riskTolerance)
		if sc.SuitabilityScore > suitabilityFloor {
			scored = append(scored, sc)
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].ProfitScore > scored[j].ProfitScore
	})
	return scored
}

func scoreCrop(
	crop models.CropProfile,
	climate models.ClimateContext,
	soil models.SoilContext,
	farmSize float64,
	riskTolerance string,
) models.ScoredCrop {
	climateScore := climateFit(crop, climate)
	soilScore := soilFit(crop, soil)
	riskScore := riskFit(crop, riskTolerance)

	suitability := climateScore*climateWeight + soilScore*soilWeight + riskScore*riskWeight

	grossRevenue := crop.YieldKgPerHectare * crop.PriceINRPerKg
	netProfit := grossRevenue - crop.InvestmentPerHaINR
	roi := netProfit / crop.InvestmentPerHaINR * 100

	// Composite ranking key: rewards crops that are simultaneously
	// suitable, high-ROI and high-absolute-profit. Not a probability and
	// may be negative.
	profitScore := suitability * (roi / 100) * (netProfit / 10000)

	return models.ScoredCrop{
		Crop:             crop,
		ClimateScore:     round2(climateScore),
		SoilScore:        round2(soilScore),
		RiskScore:        round2(riskScore),
		SuitabilityScore: round2(suitability),
		ProfitScore:      round2(profitScore),

		GrossRevenuePerHa: round2(grossRevenue),
		NetProfitPerHa:    round2(netProfit),
		ROIPercent:        round1(roi),
		TotalInvestment:   round2(crop.InvestmentPerHaINR * farmSize),
		TotalProfit:       round2(netProfit * farmSize),
		PaybackMonths:     crop.GrowingMonths,
	}
}

// climateFit scores temperature (0.4), rainfall (0.4) and zone membership
// (0.2). Outside-range values decay linearly rather than dropping to zero.
func climateFit(crop models.CropProfile, climate models.ClimateContext) float64 {
	var score float64

	temp := climate.AvgTemperatureC
	if crop.TempMinC <= temp && temp <= crop.TempMaxC {
		score += 0.4
	} else {
		deviation := temp - crop.TempMaxC
		if d := crop.TempMinC - temp; d > deviation {
			deviation = d
		}
		score += maxFloat(0, 0.4-deviation/20)
	}

	rain := climate.AnnualRainfallMm
	if crop.MinRainfallMm <= rain && rain <= crop.MaxRainfallMm {
		score += 0.4
	} else {
		deviation := rain - crop.MaxRainfallMm
		if rain < crop.MinRainfallMm {
			deviation = crop.MinRainfallMm - rain
		}
		score += maxFloat(0, 0.4-deviation/1000)
	}

	for _, zone := range crop.ClimateZones {
		if zone == climate.Zone {
			score += 0.2
			break
		}
	}

	return minFloat(1.0, score)
}

// soilFit scores type overlap (0.6, or 0.3 partial credit when both sides
// carry a loam-family type), fertility (0.3/0.2) and a drainage bonus
// (0.1) when the crop's drainage need matches the inferred drainage.
func soilFit(crop models.CropProfile, soil models.SoilContext) float64 {
	var score float64

	overlap := false
	for _, have := range soil.CompatibleTypes {
		for _, want := range crop.SoilTypes {
			if have == want {
				overlap = true
				break
			}
		}
		if overlap {
			break
		}
	}
	if overlap {
		score += 0.6
	} else if containsLoam(soil.CompatibleTypes) && containsLoam(crop.SoilTypes) {
		score += 0.3
	}

	switch soil.Fertility {
	case "high":
		score += 0.3
	case "medium":
		score += 0.2
	}

	if hasSoilType(crop.SoilTypes, "well-drained") {
		if soil.Drainage == "good" || soil.Drainage == "excellent" {
			score += 0.1
		}
	} else if hasSoilType(crop.SoilTypes, "waterlogged") {
		if soil.Drainage == "poor" {
			score += 0.1
		}
	}

	return minFloat(1.0, score)
}

func riskFit(crop models.CropProfile, riskTolerance string) float64 {
	if row, ok := riskMatrix[riskTolerance]; ok {
		if v, ok := row[crop.RiskLevel]; ok {
			return v
		}
	}
	return 0.7
}

func containsLoam(types []string) bool {
	for _, t := range types {
		if strings.Contains(t, "loam") {
			return true
		}
	}
	return false
}

func hasSoilType(types []string, want string) bool {
	for _, t := range types {
		if t == want {
			return true
		}
	}
	return false
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
