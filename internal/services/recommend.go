package services

import (
	"fmt"

	"github.com/Sudarshan-Hegde/Agri-SR-AL-Net/internal/models"
)

// rotationBenefits keys a fixed textual benefit by crop category.
var rotationBenefits = map[string]string{
	"Legume":    "Fixes nitrogen in soil",
	"Grain":     "Builds organic matter",
	"Vegetable": "Quick cash crop",
	"Oilseed":   "Deep root system improves soil",
	"Herb":      "Pest control through diversity",
	"Fruit":     "Long-term investment",
}

// FormatRecommendations turns scored crops into the ranked presentational
// view, capped at topK.
func FormatRecommendations(scored []models.ScoredCrop, topK int) []models.Recommendation {
	if len(scored) > topK {
		scored = scored[:topK]
	}
	recs := make([]models.Recommendation, 0, len(scored))
	for i, sc := range scored {
		cycles := harvestCyclesPerYear(sc.Crop.GrowingMonths)
		recs = append(recs, models.Recommendation{
			Rank:                 i + 1,
			CropName:             sc.Crop.Name,
			Category:             sc.Crop.Category,
			SuitabilityPercent:   round1(sc.SuitabilityScore * 100),
			NetProfitPerHaINR:    sc.NetProfitPerHa,
			ROIPercent:           sc.ROIPercent,
			InvestmentPerHaINR:   sc.Crop.InvestmentPerHaINR,
			GrowingMonths:        sc.Crop.GrowingMonths,
			HarvestCyclesPerYear: cycles,
			AnnualProfitINR:      round2(sc.NetProfitPerHa * float64(cycles)),
			WaterRequirement:     sc.Crop.WaterRequirement,
			LaborIntensity:       sc.Crop.LaborIntensity,
			RiskLevel:            sc.Crop.RiskLevel,
			KeyAdvantages:        cropAdvantages(sc),
			SuccessTips:          successTips(sc.Crop),
		})
	}
	return recs
}

func harvestCyclesPerYear(growingMonths int) int {
	if growingMonths <= 0 {
		return 1
	}
	cycles := 12 / growingMonths
	if cycles < 1 {
		return 1
	}
	return cycles
}

// cropAdvantages picks up to four selling points for a scored crop.
func cropAdvantages(sc models.ScoredCrop) []string {
	var advantages []string
	if sc.ROIPercent > 100 {
		advantages = append(advantages, fmt.Sprintf("Excellent ROI of %.0f%%", sc.ROIPercent))
	}
	if sc.Crop.GrowingMonths <= 4 {
		advantages = append(advantages, "Quick harvest - fast returns")
	}
	if sc.Crop.RiskLevel == "low" {
		advantages = append(advantages, "Low risk - reliable income")
	}
	if sc.Crop.WaterRequirement == "low" {
		advantages = append(advantages, "Water-efficient - lower costs")
	}
	if sc.Crop.LaborIntensity == "low" {
		advantages = append(advantages, "Low labor requirements")
	}
	if sc.ClimateScore >= 0.8 {
		advantages = append(advantages, "Highly suitable for local climate")
	}
	if sc.Crop.PriceINRPerKg > 2 {
		advantages = append(advantages, "High market value")
	}
	if len(advantages) > 4 {
		advantages = advantages[:4]
	}
	return advantages
}

// successTips picks up to three growing tips for a crop.
func successTips(crop models.CropProfile) []string {
	var tips []string
	if crop.WaterRequirement == "high" {
		tips = append(tips, "Ensure consistent irrigation system")
	}
	if crop.LaborIntensity == "high" || crop.LaborIntensity == "very high" {
		tips = append(tips, "Plan for adequate labor during harvest")
	}
	if crop.RiskLevel == "high" || crop.RiskLevel == "very high" {
		tips = append(tips, "Consider crop insurance")
	}
	if hasSoilType(crop.SoilTypes, "well-drained") {
		tips = append(tips, "Ensure proper drainage to prevent waterlogging")
	}
	tips = append(tips, fmt.Sprintf("Optimal temperature: %.0f-%.0f°C", crop.TempMinC, crop.TempMaxC))
	if len(tips) > 3 {
		tips = tips[:3]
	}
	return tips
}

// BuildRotationPlan sequences the top-3 crops in ranked order. Fewer than
// two eligible crops degrades to an explicit insufficient-data result.
func BuildRotationPlan(top []models.ScoredCrop) *models.RotationPlan {
	if len(top) > 3 {
		top = top[:3]
	}
	if len(top) < 2 {
		return &models.RotationPlan{Status: "Insufficient data for rotation plan"}
	}

	sequence := make([]models.RotationStep, 0, len(top))
	totalMonths := 0
	for _, sc := range top {
		benefit, ok := rotationBenefits[sc.Crop.Category]
		if !ok {
			benefit = "Diversifies production"
		}
		sequence = append(sequence, models.RotationStep{
			Crop:           sc.Crop.Name,
			DurationMonths: sc.Crop.GrowingMonths,
			Category:       sc.Crop.Category,
			Benefit:        benefit,
		})
		totalMonths += sc.Crop.GrowingMonths
	}

	return &models.RotationPlan{
		RotationType:     "Sequential high-profit rotation",
		Sequence:         sequence,
		TotalCycleMonths: totalMonths,
		Benefits: []string{
			"Maximizes annual profit",
			"Reduces pest and disease pressure",
			"Maintains soil fertility",
			"Diversifies income streams",
		},
	}
}

// BuildSeasonalCalendar buckets the top-5 crops into planting seasons by
// simple temperature-range membership. A crop can land in several seasons.
func BuildSeasonalCalendar(top []models.ScoredCrop) *models.SeasonalCalendar {
	if len(top) > 5 {
		top = top[:5]
	}
	cal := &models.SeasonalCalendar{
		Spring: []string{},
		Summer: []string{},
		Fall:   []string{},
		Winter: []string{},
	}
	for _, sc := range top {
		lo, hi := sc.Crop.TempMinC, sc.Crop.TempMaxC
		if 15 <= lo && lo <= 25 {
			cal.Spring = append(cal.Spring, sc.Crop.Name)
			cal.Fall = append(cal.Fall, sc.Crop.Name)
		}
		if 20 <= hi && hi <= 35 {
			cal.Summer = append(cal.Summer, sc.Crop.Name)
		}
		if lo < 15 {
			cal.Winter = append(cal.Winter, sc.Crop.Name)
		}
	}
	return cal
}

// BuildMarketInsights aggregates the top-3 portfolio economics with static
// advisory text.
func BuildMarketInsights(top []models.ScoredCrop) *models.MarketInsights {
	if len(top) > 3 {
		top = top[:3]
	}
	if len(top) < 2 {
		return &models.MarketInsights{Status: "Insufficient data for market insights"}
	}

	var totalInvestment, totalProfit, roiSum float64
	for _, sc := range top {
		totalInvestment += sc.TotalInvestment
		totalProfit += sc.TotalProfit
		roiSum += sc.ROIPercent
	}

	return &models.MarketInsights{
		PortfolioStrategy:   "Diversified high-profit approach",
		TotalInvestmentINR:  round2(totalInvestment),
		ExpectedProfitINR:   round2(totalProfit),
		PortfolioROIPercent: round1(roiSum / float64(len(top))),
		MarketTrends: []string{
			"Premium vegetables show strong demand",
			"Organic certification can increase prices by 20-30%",
			"Direct-to-consumer sales improve margins",
		},
		RiskMitigation: []string{
			"Diversify across multiple crops",
			"Stagger planting dates",
			"Build relationships with multiple buyers",
			"Consider value-added processing",
		},
	}
}
