package coverage

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRingContains(t *testing.T) {
	ring := []GeoPoint{
		{Lat: 0, Lng: 0},
		{Lat: 0, Lng: 1},
		{Lat: 1, Lng: 1},
		{Lat: 1, Lng: 0},
	}

	tests := []struct {
		name  string
		point GeoPoint
		want  bool
	}{
		{"center", GeoPoint{Lat: 0.5, Lng: 0.5}, true},
		{"near corner inside", GeoPoint{Lat: 0.01, Lng: 0.01}, true},
		{"outside right", GeoPoint{Lat: 0.5, Lng: 1.5}, false},
		{"outside above", GeoPoint{Lat: 1.5, Lng: 0.5}, false},
		{"far away", GeoPoint{Lat: 5, Lng: 5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ringContains(ring, tt.point))
		})
	}
}

func TestRingContains_DegenerateRing(t *testing.T) {
	assert.False(t, ringContains(nil, GeoPoint{}))
	assert.False(t, ringContains([]GeoPoint{{Lat: 0, Lng: 0}, {Lat: 1, Lng: 1}}, GeoPoint{Lat: 0.5, Lng: 0.5}))
}

func TestRingContains_ConcavePolygon(t *testing.T) {
	// L-shaped ring: the notch at the top right is outside.
	ring := []GeoPoint{
		{Lat: 0, Lng: 0},
		{Lat: 0, Lng: 2},
		{Lat: 1, Lng: 2},
		{Lat: 1, Lng: 1},
		{Lat: 2, Lng: 1},
		{Lat: 2, Lng: 0},
	}

	assert.True(t, ringContains(ring, GeoPoint{Lat: 0.5, Lng: 0.5}))
	assert.True(t, ringContains(ring, GeoPoint{Lat: 0.5, Lng: 1.5}))
	assert.False(t, ringContains(ring, GeoPoint{Lat: 1.5, Lng: 1.5}), "notch is outside the L")
}

func TestSegmentDistance(t *testing.T) {
	a := GeoPoint{Lat: 0, Lng: 0}
	b := GeoPoint{Lat: 0, Lng: 1}

	// Perpendicular to the middle of the segment.
	assert.InDelta(t, 0.5, segmentDistance(a, b, GeoPoint{Lat: 0.5, Lng: 0.5}), 1e-9)

	// Beyond an endpoint: distance to the endpoint itself.
	assert.InDelta(t, math.Hypot(0.5, 0.5), segmentDistance(a, b, GeoPoint{Lat: 0.5, Lng: 1.5}), 1e-9)

	// Degenerate zero-length segment.
	assert.InDelta(t, 1.0, segmentDistance(a, a, GeoPoint{Lat: 0, Lng: 1}), 1e-9)
}

func TestRingDistance(t *testing.T) {
	ring := []GeoPoint{
		{Lat: 0, Lng: 0},
		{Lat: 0, Lng: 1},
		{Lat: 1, Lng: 1},
		{Lat: 1, Lng: 0},
	}

	// Just outside the lng=1 edge.
	assert.InDelta(t, 0.01, ringDistance(ring, GeoPoint{Lat: 0.5, Lng: 1.01}), 1e-9)

	// Degenerate ring has no boundary to measure against.
	assert.True(t, math.IsInf(ringDistance([]GeoPoint{{Lat: 0, Lng: 0}}, GeoPoint{}), 1))
}
