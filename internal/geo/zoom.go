package geo

// SelectZoom maps a region size to an imagery detail level. Single-point
// analysis always uses a wider-context level; polygon analysis gets finer
// detail the smaller the area.
func SelectZoom(areaKm2 float64, isPolygon bool) int {
	if !isPolygon {
		return 15
	}
	switch {
	case areaKm2 < 0.01: // under a hectare
		return 17
	case areaKm2 < 0.1:
		return 16
	case areaKm2 < 1.0:
		return 15
	default:
		return 14
	}
}
