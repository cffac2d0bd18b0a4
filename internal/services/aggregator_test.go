package services

import (
	"math"
	"testing"

	"github.com/Sudarshan-Hegde/Agri-SR-AL-Net/internal/models"
)

func sample(class string, confidence float64) models.PredictionSample {
	return models.PredictionSample{LandClass: class, Confidence: confidence}
}

func TestAggregateEmpty(t *testing.T) {
	got := Aggregate(nil)
	if got.DominantClass != UnknownClass {
		t.Errorf("DominantClass = %q, want %q", got.DominantClass, UnknownClass)
	}
	if got.Confidence != 0 || got.SampleCount != 0 {
		t.Errorf("empty aggregate = %+v, want zeroed", got)
	}
	if got.Distribution == nil || len(got.Distribution) != 0 {
		t.Errorf("Distribution = %v, want empty non-nil slice", got.Distribution)
	}
}

func TestAggregateMajority(t *testing.T) {
	samples := []models.PredictionSample{
		sample("Forest", 0.9),
		sample("Forest", 0.8),
		sample("Forest", 0.85),
		sample("Grassland", 0.7),
		sample("Urban Area", 0.6),
	}

	got := Aggregate(samples)

	if got.DominantClass != "Forest" {
		t.Fatalf("DominantClass = %q, want Forest", got.DominantClass)
	}
	if got.Confidence != 0.85 {
		t.Errorf("Confidence = %f, want 0.85", got.Confidence)
	}
	if got.SampleCount != 5 {
		t.Errorf("SampleCount = %d, want 5", got.SampleCount)
	}

	if len(got.Distribution) != 3 {
		t.Fatalf("Distribution has %d entries, want 3", len(got.Distribution))
	}
	if got.Distribution[0].Class != "Forest" || got.Distribution[0].Percentage != 60.0 {
		t.Errorf("top share = %+v, want Forest at 60.0", got.Distribution[0])
	}
	if got.Distribution[0].Count != 3 {
		t.Errorf("Forest count = %d, want 3", got.Distribution[0].Count)
	}

	var pctSum float64
	for _, sh := range got.Distribution {
		pctSum += sh.Percentage
	}
	if math.Abs(pctSum-100) > 0.1 {
		t.Errorf("percentages sum to %f, want ~100", pctSum)
	}
}

func TestAggregateTieFirstSeenWins(t *testing.T) {
	samples := []models.PredictionSample{
		sample("Grassland", 0.5),
		sample("Forest", 0.9),
		sample("Forest", 0.9),
		sample("Grassland", 0.5),
	}
	got := Aggregate(samples)
	if got.DominantClass != "Grassland" {
		t.Errorf("tie broke to %q, want the first-seen Grassland", got.DominantClass)
	}
}

func TestAggregateEmptyLabelBecomesUnknown(t *testing.T) {
	got := Aggregate([]models.PredictionSample{sample("", 0.4)})
	if got.DominantClass != UnknownClass {
		t.Errorf("DominantClass = %q, want %q", got.DominantClass, UnknownClass)
	}
}

func TestAggregateDistributionSorted(t *testing.T) {
	samples := []models.PredictionSample{
		sample("Water Body", 0.8),
		sample("Forest", 0.9),
		sample("Forest", 0.9),
		sample("Forest", 0.9),
		sample("Water Body", 0.8),
	}
	got := Aggregate(samples)
	for i := 1; i < len(got.Distribution); i++ {
		if got.Distribution[i].Percentage > got.Distribution[i-1].Percentage {
			t.Errorf("distribution not descending at index %d: %+v", i, got.Distribution)
		}
	}
}

func TestAggregateConfidenceRounding(t *testing.T) {
	// 0.3333... should round to 3 decimals
	samples := []models.PredictionSample{
		sample("Forest", 0.3),
		sample("Forest", 0.3),
		sample("Forest", 0.4),
	}
	got := Aggregate(samples)
	if got.Confidence != 0.333 {
		t.Errorf("Confidence = %f, want 0.333", got.Confidence)
	}
}
