package geo

import "math"

const (
	earthRadiusKm = 6371.0
	metersPerDeg  = 111320.0 // meters per degree latitude
)

// Coordinate is a WGS84 (lat, lng) pair in degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Polygon is an ordered ring of coordinates, implicitly closed.
// Callers are responsible for passing simple (non-self-intersecting) rings.
type Polygon []Coordinate

// BoundingBox is the axis-aligned extent of a polygon.
type BoundingBox struct {
	MinLat float64
	MaxLat float64
	MinLng float64
	MaxLng float64
}

// Distance returns the great-circle distance between a and b in kilometers
// (haversine on a spherical Earth, no ellipsoid correction).
func Distance(a, b Coordinate) float64 {
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(a.Lat*math.Pi/180)*math.Cos(b.Lat*math.Pi/180)*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return earthRadiusKm * c
}

// Bounds returns the bounding box of p. Zero value for empty polygons.
func (p Polygon) Bounds() BoundingBox {
	if len(p) == 0 {
		return BoundingBox{}
	}
	b := BoundingBox{
		MinLat: p[0].Lat, MaxLat: p[0].Lat,
		MinLng: p[0].Lng, MaxLng: p[0].Lng,
	}
	for _, c := range p[1:] {
		b.MinLat = math.Min(b.MinLat, c.Lat)
		b.MaxLat = math.Max(b.MaxLat, c.Lat)
		b.MinLng = math.Min(b.MinLng, c.Lng)
		b.MaxLng = math.Max(b.MaxLng, c.Lng)
	}
	return b
}

// Centroid returns the arithmetic mean of the polygon's vertices.
func (p Polygon) Centroid() Coordinate {
	if len(p) == 0 {
		return Coordinate{}
	}
	var lat, lng float64
	for _, c := range p {
		lat += c.Lat
		lng += c.Lng
	}
	n := float64(len(p))
	return Coordinate{Lat: lat / n, Lng: lng / n}
}

// areaM2 projects the ring to a local planar frame centered on the vertex
// centroid and applies the Shoelace formula. The planar approximation is
// only meant for field-to-farm scale regions.
func (p Polygon) areaM2() float64 {
	if len(p) < 3 {
		return 0
	}
	center := p.Centroid()
	latToM := metersPerDeg
	lngToM := metersPerDeg * math.Cos(center.Lat*math.Pi/180)

	xs := make([]float64, len(p))
	ys := make([]float64, len(p))
	for i, c := range p {
		xs[i] = (c.Lng - center.Lng) * lngToM
		ys[i] = (c.Lat - center.Lat) * latToM
	}

	var area float64
	n := len(p)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += xs[i] * ys[j]
		area -= xs[j] * ys[i]
	}
	return math.Abs(area) / 2
}

// AreaKm2 returns the polygon area in square kilometers, 0 for <3 vertices.
func (p Polygon) AreaKm2() float64 {
	return p.areaM2() / 1_000_000
}

// AreaHectares returns the polygon area in hectares, 0 for <3 vertices.
func (p Polygon) AreaHectares() float64 {
	return p.areaM2() / 10_000
}

// Perimeter returns the ring length in kilometers, closing the last vertex
// back to the first. 0 for <3 vertices.
func (p Polygon) Perimeter() float64 {
	if len(p) < 3 {
		return 0
	}
	var total float64
	for i := range p {
		total += Distance(p[i], p[(i+1)%len(p)])
	}
	return total
}

// Contains reports whether pt lies inside the polygon using the even-odd
// ray-casting rule. Points exactly on an edge may be classified either way.
func (p Polygon) Contains(pt Coordinate) bool {
	n := len(p)
	if n < 3 {
		return false
	}
	inside := false
	j := n - 1
	for i := 0; i < n; i++ {
		pi, pj := p[i], p[j]
		if (pi.Lng > pt.Lng) != (pj.Lng > pt.Lng) {
			xInt := (pj.Lat-pi.Lat)*(pt.Lng-pi.Lng)/(pj.Lng-pi.Lng) + pi.Lat
			if pt.Lat < xInt {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}
