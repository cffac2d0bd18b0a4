package geo

import (
	"reflect"
	"testing"
)

func TestGridSpacingClamped(t *testing.T) {
	tests := []struct {
		name    string
		areaKm2 float64
		target  int
		want    float64
	}{
		{"zero area uses default", 0, 10, defaultSpacingDeg},
		{"zero target uses default", 1.0, 0, defaultSpacingDeg},
		{"tiny area clamps to min", 0.0001, 50, minSpacingDeg},
		{"huge area clamps to max", 10000, 5, maxSpacingDeg},
	}
	for _, tt := range tests {
		if got := GridSpacingDegrees(tt.areaKm2, tt.target); got != tt.want {
			t.Errorf("%s: GridSpacingDegrees(%f, %d) = %f, want %f",
				tt.name, tt.areaKm2, tt.target, got, tt.want)
		}
	}

	// unclamped middle ground stays within the clamp window
	got := GridSpacingDegrees(1.24, 30)
	if got <= minSpacingDeg || got >= maxSpacingDeg {
		t.Errorf("GridSpacingDegrees(1.24, 30) = %f, want inside (%f, %f)",
			got, minSpacingDeg, maxSpacingDeg)
	}
}

func TestSamplerGenerate(t *testing.T) {
	s := NewSampler(5, 50)
	p := squareAt(0, 0, 0.01) // ~1.24 km^2

	samples := s.Generate(p)
	if len(samples) == 0 {
		t.Fatal("no samples for a viable polygon")
	}
	if len(samples) > s.MaxSamples {
		t.Errorf("got %d samples, max is %d", len(samples), s.MaxSamples)
	}

	centroid := p.Centroid()
	for _, c := range samples {
		if !p.Contains(c) && c != centroid {
			t.Errorf("sample %+v outside polygon", c)
		}
	}
}

func TestSamplerGenerateDeterministic(t *testing.T) {
	s := NewSampler(5, 50)
	p := squareAt(12.9, 77.5, 0.02)

	first := s.Generate(p)
	second := s.Generate(p)
	if !reflect.DeepEqual(first, second) {
		t.Error("repeated sampling of the same polygon diverged")
	}
}

func TestSamplerGenerateTinyPolygonAddsCentroid(t *testing.T) {
	s := NewSampler(5, 50)
	p := squareAt(0, 0, 0.0001) // ~1.2e-4 km^2, below grid resolution

	samples := s.Generate(p)
	if len(samples) == 0 {
		t.Fatal("tiny polygon produced no samples")
	}
	if len(samples) >= s.MinSamples+1 {
		t.Errorf("tiny polygon yielded %d samples, expected sparse set", len(samples))
	}

	centroid := p.Centroid()
	found := false
	for _, c := range samples {
		if c == centroid {
			found = true
			break
		}
	}
	if !found {
		t.Error("centroid not appended for under-sampled polygon")
	}
}

func TestSamplerGenerateDownsamples(t *testing.T) {
	s := NewSampler(5, 50)
	p := squareAt(0, 0, 0.05) // ~31 km^2, lattice exceeds MaxSamples

	samples := s.Generate(p)
	if len(samples) != s.MaxSamples {
		t.Errorf("got %d samples, want exactly %d after downsampling", len(samples), s.MaxSamples)
	}
}

func TestSamplerGenerateDegenerate(t *testing.T) {
	s := NewSampler(5, 50)
	if got := s.Generate(Polygon{{Lat: 0, Lng: 0}, {Lat: 1, Lng: 1}}); got != nil {
		t.Errorf("Generate on 2-vertex polygon = %v, want nil", got)
	}
}

func TestDownsampleEven(t *testing.T) {
	in := make([]Coordinate, 10)
	for i := range in {
		in[i] = Coordinate{Lat: float64(i), Lng: 0}
	}

	out := downsampleEven(in, 4)
	if len(out) != 4 {
		t.Fatalf("len = %d, want 4", len(out))
	}
	// endpoints always survive
	if out[0] != in[0] || out[3] != in[9] {
		t.Errorf("endpoints not preserved: %+v", out)
	}

	if got := downsampleEven(in, 20); len(got) != 10 {
		t.Errorf("n >= len should be identity, got %d", len(got))
	}
	if got := downsampleEven(in, 1); len(got) != 1 || got[0] != in[0] {
		t.Errorf("n = 1 should keep the first entry, got %+v", got)
	}
}

func TestSelectZoom(t *testing.T) {
	tests := []struct {
		areaKm2   float64
		isPolygon bool
		want      int
	}{
		{0, false, 15},
		{100, false, 15},
		{0.005, true, 17},
		{0.05, true, 16},
		{0.5, true, 15},
		{5, true, 14},
	}
	for _, tt := range tests {
		if got := SelectZoom(tt.areaKm2, tt.isPolygon); got != tt.want {
			t.Errorf("SelectZoom(%f, %v) = %d, want %d", tt.areaKm2, tt.isPolygon, got, tt.want)
		}
	}
}
