// Package catalog holds the fixed crop reference table used by the
// suitability scorer. The table is loaded once at process start and shared
// read-only across requests.
package catalog

import (
	"fmt"

	"github.com/Sudarshan-Hegde/Agri-SR-AL-Net/internal/models"
)

// Version identifies the crop table revision baked into this build.
const Version = "2024.1"

type Catalog struct {
	crops []models.CropProfile
	byID  map[string]int
}

// Load builds the catalog. Entries keep their declaration order, which is
// also the iteration order used by the scorer.
func Load() *Catalog {
	c := &Catalog{byID: make(map[string]int, len(crops))}
	c.crops = crops
	for i, cp := range crops {
		c.byID[cp.ID] = i
	}
	return c
}

// All returns the full crop list. Callers must not mutate it.
func (c *Catalog) All() []models.CropProfile {
	return c.crops
}

// Get returns the profile for a crop id.
func (c *Catalog) Get(id string) (models.CropProfile, error) {
	i, ok := c.byID[id]
	if !ok {
		return models.CropProfile{}, fmt.Errorf("unknown crop %q", id)
	}
	return c.crops[i], nil
}

// ByCategory filters the catalog by category names (case-sensitive, as
// stored). Empty filter returns everything.
func (c *Catalog) ByCategory(categories []string) []models.CropProfile {
	if len(categories) == 0 {
		return c.crops
	}
	wanted := make(map[string]struct{}, len(categories))
	for _, cat := range categories {
		wanted[cat] = struct{}{}
	}
	var out []models.CropProfile
	for _, cp := range c.crops {
		if _, ok := wanted[cp.Category]; ok {
			out = append(out, cp)
		}
	}
	return out
}

// Len reports the number of catalog entries.
func (c *Catalog) Len() int { return len(c.crops) }

// All prices in INR. Yields and costs are per-hectare averages.
var crops = []models.CropProfile{
	// High-value cash crops
	{
		ID: "saffron", Name: "Saffron", Category: "Spice",
		YieldKgPerHectare: 8, PriceINRPerKg: 124500, InvestmentPerHaINR: 996000,
		GrowingMonths: 6, TempMinC: 15, TempMaxC: 25,
		MinRainfallMm: 150, MaxRainfallMm: 400,
		SoilTypes:    []string{"loamy", "sandy loam", "well-drained"},
		ClimateZones: []string{"temperate", "subtropical"},
		WaterRequirement: "low", LaborIntensity: "high", RiskLevel: "high",
	},
	{
		ID: "vanilla", Name: "Vanilla", Category: "Spice",
		YieldKgPerHectare: 400, PriceINRPerKg: 49800, InvestmentPerHaINR: 664000,
		GrowingMonths: 36, TempMinC: 21, TempMaxC: 32,
		MinRainfallMm: 2000, MaxRainfallMm: 3500,
		SoilTypes:    []string{"rich organic", "loamy", "well-drained"},
		ClimateZones: []string{"tropical"},
		WaterRequirement: "high", LaborIntensity: "very high", RiskLevel: "high",
	},

	// Premium vegetables
	{
		ID: "cherry_tomatoes", Name: "Cherry Tomatoes (Premium)", Category: "Vegetable",
		YieldKgPerHectare: 40000, PriceINRPerKg: 249, InvestmentPerHaINR: 415000,
		GrowingMonths: 4, TempMinC: 18, TempMaxC: 27,
		MinRainfallMm: 400, MaxRainfallMm: 800,
		SoilTypes:    []string{"loamy", "sandy loam", "fertile"},
		ClimateZones: []string{"temperate", "subtropical", "tropical"},
		WaterRequirement: "medium", LaborIntensity: "medium", RiskLevel: "medium",
	},
	{
		ID: "bell_peppers", Name: "Bell Peppers (Capsicum)", Category: "Vegetable",
		YieldKgPerHectare: 35000, PriceINRPerKg: 207, InvestmentPerHaINR: 373500,
		GrowingMonths: 5, TempMinC: 20, TempMaxC: 30,
		MinRainfallMm: 500, MaxRainfallMm: 900,
		SoilTypes:    []string{"loamy", "well-drained"},
		ClimateZones: []string{"temperate", "subtropical", "tropical"},
		WaterRequirement: "medium", LaborIntensity: "medium", RiskLevel: "low",
	},
	{
		ID: "broccoli", Name: "Broccoli", Category: "Vegetable",
		YieldKgPerHectare: 20000, PriceINRPerKg: 166, InvestmentPerHaINR: 249000,
		GrowingMonths: 3, TempMinC: 15, TempMaxC: 23,
		MinRainfallMm: 400, MaxRainfallMm: 700,
		SoilTypes:    []string{"fertile", "loamy", "well-drained"},
		ClimateZones: []string{"temperate"},
		WaterRequirement: "medium", LaborIntensity: "medium", RiskLevel: "low",
	},

	// Staple grains
	{
		ID: "wheat", Name: "Wheat", Category: "Grain",
		YieldKgPerHectare: 3000, PriceINRPerKg: 24, InvestmentPerHaINR: 41500,
		GrowingMonths: 6, TempMinC: 12, TempMaxC: 25,
		MinRainfallMm: 300, MaxRainfallMm: 750,
		SoilTypes:    []string{"loamy", "clay loam", "fertile"},
		ClimateZones: []string{"temperate", "subtropical"},
		WaterRequirement: "low", LaborIntensity: "low", RiskLevel: "low",
	},
	{
		ID: "rice", Name: "Rice", Category: "Grain",
		YieldKgPerHectare: 4500, PriceINRPerKg: 37, InvestmentPerHaINR: 66400,
		GrowingMonths: 5, TempMinC: 20, TempMaxC: 35,
		MinRainfallMm: 1000, MaxRainfallMm: 2500,
		SoilTypes:    []string{"clay", "clay loam", "waterlogged"},
		ClimateZones: []string{"tropical", "subtropical"},
		WaterRequirement: "very high", LaborIntensity: "medium", RiskLevel: "low",
	},
	{
		ID: "corn", Name: "Corn (Maize)", Category: "Grain",
		YieldKgPerHectare: 5000, PriceINRPerKg: 20, InvestmentPerHaINR: 49800,
		GrowingMonths: 4, TempMinC: 18, TempMaxC: 32,
		MinRainfallMm: 500, MaxRainfallMm: 1000,
		SoilTypes:    []string{"loamy", "fertile", "well-drained"},
		ClimateZones: []string{"temperate", "subtropical", "tropical"},
		WaterRequirement: "medium", LaborIntensity: "low", RiskLevel: "low",
	},

	// Oilseeds
	{
		ID: "sunflower", Name: "Sunflower", Category: "Oilseed",
		YieldKgPerHectare: 2000, PriceINRPerKg: 49, InvestmentPerHaINR: 33200,
		GrowingMonths: 4, TempMinC: 20, TempMaxC: 30,
		MinRainfallMm: 400, MaxRainfallMm: 700,
		SoilTypes:    []string{"loamy", "sandy loam", "well-drained"},
		ClimateZones: []string{"temperate", "subtropical"},
		WaterRequirement: "low", LaborIntensity: "low", RiskLevel: "low",
	},
	{
		ID: "canola", Name: "Canola (Rapeseed)", Category: "Oilseed",
		YieldKgPerHectare: 2500, PriceINRPerKg: 45, InvestmentPerHaINR: 37350,
		GrowingMonths: 6, TempMinC: 10, TempMaxC: 20,
		MinRainfallMm: 400, MaxRainfallMm: 650,
		SoilTypes:    []string{"loamy", "well-drained"},
		ClimateZones: []string{"temperate"},
		WaterRequirement: "medium", LaborIntensity: "low", RiskLevel: "low",
	},

	// High-value fruits
	{
		ID: "strawberries", Name: "Strawberries", Category: "Fruit",
		YieldKgPerHectare: 25000, PriceINRPerKg: 415, InvestmentPerHaINR: 664000,
		GrowingMonths: 6, TempMinC: 15, TempMaxC: 26,
		MinRainfallMm: 500, MaxRainfallMm: 800,
		SoilTypes:    []string{"sandy loam", "loamy", "well-drained"},
		ClimateZones: []string{"temperate", "subtropical"},
		WaterRequirement: "medium", LaborIntensity: "high", RiskLevel: "medium",
	},
	{
		ID: "blueberries", Name: "Blueberries", Category: "Fruit",
		YieldKgPerHectare: 8000, PriceINRPerKg: 664, InvestmentPerHaINR: 996000,
		GrowingMonths: 24, TempMinC: 15, TempMaxC: 25,
		MinRainfallMm: 600, MaxRainfallMm: 1200,
		SoilTypes:    []string{"acidic", "sandy loam", "well-drained"},
		ClimateZones: []string{"temperate"},
		WaterRequirement: "medium", LaborIntensity: "high", RiskLevel: "medium",
	},

	// Legumes
	{
		ID: "soybeans", Name: "Soybeans", Category: "Legume",
		YieldKgPerHectare: 2800, PriceINRPerKg: 41, InvestmentPerHaINR: 41500,
		GrowingMonths: 5, TempMinC: 20, TempMaxC: 30,
		MinRainfallMm: 500, MaxRainfallMm: 900,
		SoilTypes:    []string{"loamy", "fertile", "well-drained"},
		ClimateZones: []string{"temperate", "subtropical"},
		WaterRequirement: "medium", LaborIntensity: "low", RiskLevel: "low",
	},
	{
		ID: "chickpeas", Name: "Chickpeas", Category: "Legume",
		YieldKgPerHectare: 1500, PriceINRPerKg: 99, InvestmentPerHaINR: 33200,
		GrowingMonths: 5, TempMinC: 15, TempMaxC: 30,
		MinRainfallMm: 300, MaxRainfallMm: 600,
		SoilTypes:    []string{"loamy", "clay loam", "well-drained"},
		ClimateZones: []string{"temperate", "subtropical", "tropical"},
		WaterRequirement: "low", LaborIntensity: "low", RiskLevel: "low",
	},

	// Cash crops
	{
		ID: "cotton", Name: "Cotton", Category: "Fiber",
		YieldKgPerHectare: 1800, PriceINRPerKg: 149, InvestmentPerHaINR: 83000,
		GrowingMonths: 6, TempMinC: 21, TempMaxC: 35,
		MinRainfallMm: 500, MaxRainfallMm: 1000,
		SoilTypes:    []string{"loamy", "clay loam", "fertile"},
		ClimateZones: []string{"subtropical", "tropical"},
		WaterRequirement: "medium", LaborIntensity: "medium", RiskLevel: "medium",
	},
	{
		ID: "sugarcane", Name: "Sugarcane", Category: "Industrial",
		YieldKgPerHectare: 70000, PriceINRPerKg: 4, InvestmentPerHaINR: 124500,
		GrowingMonths: 12, TempMinC: 20, TempMaxC: 35,
		MinRainfallMm: 1500, MaxRainfallMm: 2500,
		SoilTypes:    []string{"loamy", "clay loam", "fertile"},
		ClimateZones: []string{"tropical", "subtropical"},
		WaterRequirement: "high", LaborIntensity: "medium", RiskLevel: "low",
	},

	// Niche herbs
	{
		ID: "basil", Name: "Basil (Fresh)", Category: "Herb",
		YieldKgPerHectare: 12000, PriceINRPerKg: 498, InvestmentPerHaINR: 249000,
		GrowingMonths: 3, TempMinC: 18, TempMaxC: 30,
		MinRainfallMm: 400, MaxRainfallMm: 600,
		SoilTypes:    []string{"loamy", "well-drained", "fertile"},
		ClimateZones: []string{"temperate", "subtropical", "tropical"},
		WaterRequirement: "medium", LaborIntensity: "high", RiskLevel: "medium",
	},
	{
		ID: "lavender", Name: "Lavender", Category: "Herb",
		YieldKgPerHectare: 3000, PriceINRPerKg: 1245, InvestmentPerHaINR: 415000,
		GrowingMonths: 24, TempMinC: 15, TempMaxC: 30,
		MinRainfallMm: 300, MaxRainfallMm: 600,
		SoilTypes:    []string{"sandy loam", "well-drained", "alkaline"},
		ClimateZones: []string{"temperate", "subtropical"},
		WaterRequirement: "low", LaborIntensity: "medium", RiskLevel: "low",
	},
}
