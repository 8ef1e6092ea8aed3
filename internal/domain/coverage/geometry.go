package coverage

import "math"

// ringContains reports whether the point is strictly inside the ring using
// the even-odd rule: a ray cast in the +lng direction from the point flips
// in/out on every edge crossing. Rings with fewer than 3 vertices never
// contain anything.
func ringContains(ring []GeoPoint, p GeoPoint) bool {
	if len(ring) < 3 {
		return false
	}

	inside := false
	j := len(ring) - 1
	for i := 0; i < len(ring); i++ {
		vi, vj := ring[i], ring[j]
		if (vi.Lat > p.Lat) != (vj.Lat > p.Lat) {
			crossLng := (vj.Lng-vi.Lng)*(p.Lat-vi.Lat)/(vj.Lat-vi.Lat) + vi.Lng
			if p.Lng < crossLng {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

// ringDistance returns the minimum Euclidean distance in degree-space from
// the point to the ring's boundary segments. This is deliberately not
// geodesic: at city scale the flat approximation is sufficient for the
// tolerance buffer, and callers must not assume metric accuracy.
func ringDistance(ring []GeoPoint, p GeoPoint) float64 {
	if len(ring) < 2 {
		return math.Inf(1)
	}

	min := math.Inf(1)
	j := len(ring) - 1
	for i := 0; i < len(ring); i++ {
		if d := segmentDistance(ring[j], ring[i], p); d < min {
			min = d
		}
		j = i
	}
	return min
}

// segmentDistance returns the distance from p to the segment a-b in
// degree-space.
func segmentDistance(a, b, p GeoPoint) float64 {
	ax, ay := a.Lng, a.Lat
	bx, by := b.Lng, b.Lat
	px, py := p.Lng, p.Lat

	dx, dy := bx-ax, by-ay
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return math.Hypot(px-ax, py-ay)
	}

	t := ((px-ax)*dx + (py-ay)*dy) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	return math.Hypot(px-(ax+t*dx), py-(ay+t*dy))
}
