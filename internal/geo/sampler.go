package geo

import "math"

// Grid spacing clamps, in degrees (~55 m to ~1.1 km).
const (
	minSpacingDeg     = 0.0005
	maxSpacingDeg     = 0.01
	defaultSpacingDeg = 0.001
	degPerKm          = 1.0 / 111.0
)

// Sampler generates interior sample grids for polygons at an area-adaptive
// density. The zero value is not usable; construct with NewSampler.
type Sampler struct {
	MinSamples int
	MaxSamples int
}

func NewSampler(minSamples, maxSamples int) *Sampler {
	return &Sampler{MinSamples: minSamples, MaxSamples: maxSamples}
}

// targetSampleCount picks a sample count tier for the polygon area.
func (s *Sampler) targetSampleCount(areaKm2 float64) int {
	switch {
	case areaKm2 < 0.01: // under a hectare
		return s.MinSamples
	case areaKm2 < 0.5:
		return minInt(15, s.MaxSamples)
	case areaKm2 < 2.0:
		return minInt(30, s.MaxSamples)
	default:
		return s.MaxSamples
	}
}

// GridSpacingDegrees converts the target density to a lattice step in
// degrees, clamped so tiny polygons don't explode the candidate count and
// huge ones don't starve it.
func GridSpacingDegrees(areaKm2 float64, targetSamples int) float64 {
	if areaKm2 <= 0 || targetSamples <= 0 {
		return defaultSpacingDeg
	}
	spacingKm := math.Sqrt(areaKm2 / float64(targetSamples))
	spacing := spacingKm * degPerKm
	return math.Max(minSpacingDeg, math.Min(spacing, maxSpacingDeg))
}

// Generate emits interior sample coordinates for the polygon. Candidates
// come from a regular lattice over the bounding box filtered by Contains.
// If fewer than MinSamples survive, the centroid is appended as a
// guaranteed-interior extra (the set may therefore exceed MinSamples by
// one). Oversized sets are reduced to exactly MaxSamples by evenly spaced
// index selection, keeping the spatial spread and the run deterministic.
// Polygons with fewer than 3 vertices yield an empty set.
func (s *Sampler) Generate(p Polygon) []Coordinate {
	if len(p) < 3 {
		return nil
	}

	bounds := p.Bounds()
	areaKm2 := p.AreaKm2()
	spacing := GridSpacingDegrees(areaKm2, s.targetSampleCount(areaKm2))

	var samples []Coordinate
	for lat := bounds.MinLat; lat <= bounds.MaxLat; lat += spacing {
		for lng := bounds.MinLng; lng <= bounds.MaxLng; lng += spacing {
			c := Coordinate{Lat: lat, Lng: lng}
			if p.Contains(c) {
				samples = append(samples, c)
			}
		}
	}

	if len(samples) < s.MinSamples {
		samples = append(samples, p.Centroid())
	}

	if len(samples) > s.MaxSamples {
		samples = downsampleEven(samples, s.MaxSamples)
	}

	return samples
}

// downsampleEven keeps exactly n entries at evenly spaced indices across
// the ordered list.
func downsampleEven(samples []Coordinate, n int) []Coordinate {
	if n >= len(samples) {
		return samples
	}
	if n <= 1 {
		return samples[:1]
	}
	picked := make([]Coordinate, 0, n)
	step := float64(len(samples)-1) / float64(n-1)
	for i := 0; i < n; i++ {
		picked = append(picked, samples[int(float64(i)*step)])
	}
	return picked
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
