package services

import (
	"math"
	"sort"

	"github.com/Sudarshan-Hegde/Agri-SR-AL-Net/internal/models"
)

// UnknownClass is the sentinel dominant class for an empty sample set.
const UnknownClass = "Unknown"

// Aggregate reduces per-sample land classifications into one area verdict.
// The dominant class is the one with the highest count; ties go to the
// class seen first in the input, which matches the upstream model's
// behavior and keeps results stable across runs. Empty input yields the
// Unknown sentinel, never an error.
func Aggregate(samples []models.PredictionSample) *models.AggregatedResult {
	if len(samples) == 0 {
		return &models.AggregatedResult{
			DominantClass: UnknownClass,
			Confidence:    0.0,
			Distribution:  []models.ClassShare{},
			SampleCount:   0,
		}
	}

	counts := make(map[string]int)
	confidences := make(map[string][]float64)
	var order []string // first-seen order, for the tie-break

	for _, s := range samples {
		class := s.LandClass
		if class == "" {
			class = UnknownClass
		}
		if _, seen := counts[class]; !seen {
			order = append(order, class)
		}
		counts[class]++
		confidences[class] = append(confidences[class], s.Confidence)
	}

	total := len(samples)
	shares := make([]models.ClassShare, 0, len(order))
	dominant := order[0]
	for _, class := range order {
		count := counts[class]
		var sum float64
		for _, c := range confidences[class] {
			sum += c
		}
		shares = append(shares, models.ClassShare{
			Class:         class,
			Percentage:    round2(float64(count) / float64(total) * 100),
			Count:         count,
			AvgConfidence: round3(sum / float64(count)),
		})
		if count > counts[dominant] {
			dominant = class
		}
	}

	sort.SliceStable(shares, func(i, j int) bool {
		return shares[i].Percentage > shares[j].Percentage
	})

	var dominantConfidence float64
	for _, sh := range shares {
		if sh.Class == dominant {
			dominantConfidence = sh.AvgConfidence
			break
		}
	}

	return &models.AggregatedResult{
		DominantClass: dominant,
		Confidence:    dominantConfidence,
		Distribution:  shares,
		SampleCount:   total,
	}
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
