package services

import (
	"reflect"
	"testing"
)

func TestBuildClimateContextZones(t *testing.T) {
	tests := []struct {
		lat            string
		latVal         float64
		wantZone       string
		wantHemisphere string
		wantSeason     int
	}{
		{"equator", 0, "tropical", "northern", 12},
		{"tropic edge", 23.4, "tropical", "northern", 12},
		{"subtropics", 28.6, "subtropical", "northern", 10},
		{"southern temperate", -40, "temperate", "southern", 6},
		{"high temperate", 48, "temperate", "northern", 4},
		{"cold", 60, "cold", "northern", 4},
	}
	for _, tt := range tests {
		got := BuildClimateContext(tt.latVal, 18, 900)
		if got.Zone != tt.wantZone {
			t.Errorf("%s: Zone = %q, want %q", tt.lat, got.Zone, tt.wantZone)
		}
		if got.Hemisphere != tt.wantHemisphere {
			t.Errorf("%s: Hemisphere = %q, want %q", tt.lat, got.Hemisphere, tt.wantHemisphere)
		}
		if got.GrowingSeasonMonths != tt.wantSeason {
			t.Errorf("%s: GrowingSeasonMonths = %d, want %d", tt.lat, got.GrowingSeasonMonths, tt.wantSeason)
		}
	}
}

func TestBuildClimateContextPassesObservations(t *testing.T) {
	got := BuildClimateContext(12.9, 26.5, 1100)
	if got.AvgTemperatureC != 26.5 || got.AnnualRainfallMm != 1100 {
		t.Errorf("observations not carried through: %+v", got)
	}
}

func TestInferSoilContext(t *testing.T) {
	tests := []struct {
		landClass     string
		wantPrimary   string
		wantFertility string
		wantDrainage  string
	}{
		{"Forest", "loamy", "high", "good"},
		// "Arable Land" has no matching keyword and takes the default
		// profile, same as any unrecognized label.
		{"Arable Land", "loamy", "medium", "good"},
		{"cultivated cropland", "fertile", "high", "good"},
		{"Grassland", "sandy loam", "medium", "good"},
		{"Water Body", "clay", "medium", "poor"},
		{"Urban Area", "disturbed", "low", "variable"},
		{"bare soil", "sandy", "low", "excellent"},
		{"Glacier", "loamy", "medium", "good"}, // no keyword match
	}
	for _, tt := range tests {
		got := InferSoilContext(tt.landClass)
		if got.PrimaryType != tt.wantPrimary {
			t.Errorf("%q: PrimaryType = %q, want %q", tt.landClass, got.PrimaryType, tt.wantPrimary)
		}
		if got.Fertility != tt.wantFertility {
			t.Errorf("%q: Fertility = %q, want %q", tt.landClass, got.Fertility, tt.wantFertility)
		}
		if got.Drainage != tt.wantDrainage {
			t.Errorf("%q: Drainage = %q, want %q", tt.landClass, got.Drainage, tt.wantDrainage)
		}
		if len(got.CompatibleTypes) == 0 {
			t.Errorf("%q: no compatible types", tt.landClass)
		}
	}
}

func TestCompatibleSoilTypesFirstFamilyWins(t *testing.T) {
	// "sandy loam" belongs to more than one family; resolution must be
	// stable across runs.
	want := compatibleSoilTypes("sandy loam")
	for i := 0; i < 10; i++ {
		if got := compatibleSoilTypes("sandy loam"); !reflect.DeepEqual(got, want) {
			t.Fatalf("family lookup unstable: %v vs %v", got, want)
		}
	}
	if want[0] != "loamy" {
		t.Errorf("sandy loam resolved to family %v, want the loamy family first", want)
	}
}

func TestCompatibleSoilTypesUnknownPrimary(t *testing.T) {
	got := compatibleSoilTypes("disturbed")
	if len(got) == 0 || got[0] != "disturbed" {
		t.Errorf("unknown primary should lead its own set, got %v", got)
	}
}
