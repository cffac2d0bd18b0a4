package services

import (
	"math"
	"strings"

	"github.com/Sudarshan-Hegde/Agri-SR-AL-Net/internal/models"
)

// BuildClimateContext derives growing conditions from latitude and the
// (possibly defaulted) weather observations. The climate zone comes from
// absolute latitude bands; growing season length from the zone.
func BuildClimateContext(lat float64, avgTempC, annualRainfallMm float64) models.ClimateContext {
	absLat := math.Abs(lat)

	var zone string
	switch {
	case absLat < 23.5:
		zone = "tropical"
	case absLat < 35:
		zone = "subtropical"
	case absLat < 50:
		zone = "temperate"
	default:
		zone = "cold"
	}

	hemisphere := "northern"
	if lat < 0 {
		hemisphere = "southern"
	}

	return models.ClimateContext{
		Zone:                zone,
		AvgTemperatureC:     avgTempC,
		AnnualRainfallMm:    annualRainfallMm,
		Hemisphere:          hemisphere,
		GrowingSeasonMonths: growingSeasonMonths(zone, absLat),
	}
}

func growingSeasonMonths(zone string, absLat float64) int {
	switch zone {
	case "tropical":
		return 12
	case "subtropical":
		return 10
	default:
		if absLat < 45 {
			return 6
		}
		return 4
	}
}

// soil families: a primary soil type implies a compatibility set used for
// matching against crop requirements. Ordered, because a type can belong
// to more than one family and the first match wins.
var soilFamilies = [][]string{
	{"loamy", "fertile", "well-drained", "sandy loam", "clay loam"},
	{"sandy", "sandy loam", "well-drained"},
	{"clay", "clay loam", "waterlogged"},
	{"fertile", "loamy", "rich organic", "well-drained"},
}

// InferSoilContext maps a land-class label onto a soil profile by keyword
// matching. Unmatched labels get the loamy/medium/good default.
func InferSoilContext(landClass string) models.SoilContext {
	lc := strings.ToLower(landClass)

	var primary, fertility, drainage string
	switch {
	case strings.Contains(lc, "forest") || strings.Contains(lc, "tree"):
		primary, fertility, drainage = "loamy", "high", "good"
	case strings.Contains(lc, "crop") || strings.Contains(lc, "cultivated"):
		primary, fertility, drainage = "fertile", "high", "good"
	case strings.Contains(lc, "grass") || strings.Contains(lc, "shrub"):
		primary, fertility, drainage = "sandy loam", "medium", "good"
	case strings.Contains(lc, "water") || strings.Contains(lc, "flooded"):
		primary, fertility, drainage = "clay", "medium", "poor"
	case strings.Contains(lc, "urban") || strings.Contains(lc, "built"):
		primary, fertility, drainage = "disturbed", "low", "variable"
	case strings.Contains(lc, "bare") || strings.Contains(lc, "sparse"):
		primary, fertility, drainage = "sandy", "low", "excellent"
	default:
		primary, fertility, drainage = "loamy", "medium", "good"
	}

	return models.SoilContext{
		PrimaryType:     primary,
		Fertility:       fertility,
		Drainage:        drainage,
		CompatibleTypes: compatibleSoilTypes(primary),
	}
}

func compatibleSoilTypes(primary string) []string {
	for _, family := range soilFamilies {
		for _, t := range family {
			if t == primary {
				return family
			}
		}
	}
	return []string{primary, "loamy", "well-drained"}
}
