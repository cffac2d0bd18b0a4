package catalog

import "testing"

func TestLoad(t *testing.T) {
	c := Load()
	if c.Len() != 18 {
		t.Errorf("Len = %d, want 18", c.Len())
	}
	if len(c.All()) != c.Len() {
		t.Errorf("All returned %d entries, want %d", len(c.All()), c.Len())
	}
}

func TestGet(t *testing.T) {
	c := Load()

	rice, err := c.Get("rice")
	if err != nil {
		t.Fatalf("Get(rice) error: %v", err)
	}
	if rice.Name != "Rice" || rice.Category != "Grain" {
		t.Errorf("rice = %+v", rice)
	}

	if _, err := c.Get("moon_wheat"); err == nil {
		t.Error("Get on unknown id should error")
	}
}

func TestByCategory(t *testing.T) {
	c := Load()

	grains := c.ByCategory([]string{"Grain"})
	if len(grains) != 3 {
		t.Errorf("got %d grains, want 3", len(grains))
	}
	for _, cp := range grains {
		if cp.Category != "Grain" {
			t.Errorf("%s leaked into grain filter", cp.ID)
		}
	}

	mixed := c.ByCategory([]string{"Spice", "Herb"})
	if len(mixed) != 4 {
		t.Errorf("got %d spices+herbs, want 4", len(mixed))
	}

	if got := c.ByCategory(nil); len(got) != c.Len() {
		t.Errorf("empty filter returned %d entries, want all", len(got))
	}

	if got := c.ByCategory([]string{"Mineral"}); len(got) != 0 {
		t.Errorf("unknown category returned %d entries, want 0", len(got))
	}
}

func TestEntriesAreSane(t *testing.T) {
	for _, cp := range Load().All() {
		if cp.ID == "" || cp.Name == "" || cp.Category == "" {
			t.Errorf("incomplete entry: %+v", cp)
		}
		if cp.YieldKgPerHectare <= 0 || cp.PriceINRPerKg <= 0 || cp.InvestmentPerHaINR <= 0 {
			t.Errorf("%s: non-positive economics", cp.ID)
		}
		if cp.GrowingMonths <= 0 {
			t.Errorf("%s: non-positive growing period", cp.ID)
		}
		if cp.TempMinC >= cp.TempMaxC {
			t.Errorf("%s: inverted temperature range", cp.ID)
		}
		if cp.MinRainfallMm >= cp.MaxRainfallMm {
			t.Errorf("%s: inverted rainfall range", cp.ID)
		}
		if len(cp.SoilTypes) == 0 || len(cp.ClimateZones) == 0 {
			t.Errorf("%s: missing soil or climate requirements", cp.ID)
		}
	}
}
