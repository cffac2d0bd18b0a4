package models

// CropProfile is one static catalog entry. Loaded once at process start
// and never mutated; all prices are INR.
type CropProfile struct {
	ID                  string   `json:"id"`
	Name                string   `json:"name"`
	Category            string   `json:"category"`
	YieldKgPerHectare   float64  `json:"avg_yield_kg_per_hectare"`
	PriceINRPerKg       float64  `json:"avg_market_price_inr_per_kg"`
	InvestmentPerHaINR  float64  `json:"investment_cost_inr_per_hectare"`
	GrowingMonths       int      `json:"growing_months"`
	TempMinC            float64  `json:"optimal_temp_min_c"`
	TempMaxC            float64  `json:"optimal_temp_max_c"`
	MinRainfallMm       float64  `json:"min_rainfall_mm"`
	MaxRainfallMm       float64  `json:"max_rainfall_mm"`
	SoilTypes           []string `json:"soil_types"`
	ClimateZones        []string `json:"climate_zones"`
	WaterRequirement    string   `json:"water_requirement"`
	LaborIntensity      string   `json:"labor_intensity"`
	RiskLevel           string   `json:"risk_level"`
}

// ScoredCrop is a catalog entry plus the per-request scoring breakdown.
// Created per request and discarded once the response is built.
type ScoredCrop struct {
	Crop CropProfile `json:"crop"`

	ClimateScore     float64 `json:"climate_score"`
	SoilScore        float64 `json:"soil_score"`
	RiskScore        float64 `json:"risk_score"`
	SuitabilityScore float64 `json:"suitability_score"`
	ProfitScore      float64 `json:"profit_score"`

	GrossRevenuePerHa float64 `json:"gross_revenue_per_hectare"`
	NetProfitPerHa    float64 `json:"net_profit_per_hectare"`
	ROIPercent        float64 `json:"roi_percentage"`
	TotalInvestment   float64 `json:"total_investment_inr"`
	TotalProfit       float64 `json:"total_profit_inr"`
	PaybackMonths     int     `json:"payback_months"`
}

// Recommendation is the ranked, presentational view of a ScoredCrop.
type Recommendation struct {
	Rank                  int      `json:"rank"`
	CropName              string   `json:"crop_name"`
	Category              string   `json:"category"`
	SuitabilityPercent    float64  `json:"suitability_percentage"`
	NetProfitPerHaINR     float64  `json:"expected_profit_per_hectare_inr"`
	ROIPercent            float64  `json:"roi_percentage"`
	InvestmentPerHaINR    float64  `json:"investment_required_inr"`
	GrowingMonths         int      `json:"growing_period_months"`
	HarvestCyclesPerYear  int      `json:"harvest_cycles_per_year"`
	AnnualProfitINR       float64  `json:"annual_profit_potential_inr"`
	WaterRequirement      string   `json:"water_requirement"`
	LaborIntensity        string   `json:"labor_intensity"`
	RiskLevel             string   `json:"risk_level"`
	KeyAdvantages         []string `json:"key_advantages"`
	SuccessTips           []string `json:"success_tips"`
}

// RotationStep is one crop slot in a rotation plan.
type RotationStep struct {
	Crop           string `json:"crop"`
	DurationMonths int    `json:"duration_months"`
	Category       string `json:"category"`
	Benefit        string `json:"benefit"`
}

// RotationPlan sequences the top crops for soil health and profit. Status
// is set instead of a sequence when too few crops cleared the floor.
type RotationPlan struct {
	Status           string         `json:"status,omitempty"`
	RotationType     string         `json:"rotation_type,omitempty"`
	Sequence         []RotationStep `json:"sequence,omitempty"`
	TotalCycleMonths int            `json:"total_cycle_months,omitempty"`
	Benefits         []string       `json:"benefits,omitempty"`
}

// SeasonalCalendar buckets crop names into planting seasons. A crop may
// appear in more than one season.
type SeasonalCalendar struct {
	Spring []string `json:"spring_mar_may"`
	Summer []string `json:"summer_jun_aug"`
	Fall   []string `json:"fall_sep_nov"`
	Winter []string `json:"winter_dec_feb"`
}

// MarketInsights aggregates portfolio economics across the top crops.
type MarketInsights struct {
	Status              string   `json:"status,omitempty"`
	PortfolioStrategy   string   `json:"portfolio_strategy,omitempty"`
	TotalInvestmentINR  float64  `json:"total_investment_required_inr"`
	ExpectedProfitINR   float64  `json:"expected_annual_profit_inr"`
	PortfolioROIPercent float64  `json:"portfolio_roi_percentage"`
	MarketTrends        []string `json:"market_trends,omitempty"`
	RiskMitigation      []string `json:"risk_mitigation,omitempty"`
}

// SuggestionPackage is the full decision package for one request.
type SuggestionPackage struct {
	Location         map[string]float64 `json:"location"`
	FarmSizeHectares float64            `json:"farm_size_hectares"`
	ClimateZone      string             `json:"climate_zone"`
	SoilType         string             `json:"soil_type"`
	RiskTolerance    string             `json:"risk_tolerance"`
	Status           string             `json:"status,omitempty"`
	TopSuggestions   []Recommendation   `json:"top_suggestions"`
	RotationPlan     *RotationPlan      `json:"crop_rotation_plan"`
	SeasonalCalendar *SeasonalCalendar  `json:"seasonal_calendar"`
	MarketInsights   *MarketInsights    `json:"market_insights"`
	AnalyzedAt       string             `json:"analysis_timestamp"`
}
