package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridepool/ridepool/internal/pkg/models"
)

func TestHaversineDistance(t *testing.T) {
	testCases := []struct {
		name      string
		a         models.Coordinate
		b         models.Coordinate
		expected  float64 // meters
		tolerance float64
	}{
		{
			name:      "zero distance",
			a:         models.Coordinate{Latitude: 13.7563, Longitude: 100.5018},
			b:         models.Coordinate{Latitude: 13.7563, Longitude: 100.5018},
			expected:  0,
			tolerance: 0.001,
		},
		{
			name:      "Bangkok center to nearby pickup",
			a:         models.Coordinate{Latitude: 13.7563, Longitude: 100.5018},
			b:         models.Coordinate{Latitude: 13.80, Longitude: 100.55},
			expected:  7200,
			tolerance: 400,
		},
		{
			name:      "Bangkok to Ayutthaya",
			a:         models.Coordinate{Latitude: 13.7563, Longitude: 100.5018},
			b:         models.Coordinate{Latitude: 14.3691, Longitude: 100.5876},
			expected:  68700,
			tolerance: 2000,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := HaversineDistance(tc.a, tc.b)
			assert.InDelta(t, tc.expected, got, tc.tolerance)
		})
	}
}

func TestPrefilterPrecision(t *testing.T) {
	assert.Equal(t, uint(4), PrefilterPrecision(10000, 0))  // 10 km at the equator
	assert.Equal(t, uint(3), PrefilterPrecision(25000, 0))  // 25 km
	assert.Equal(t, uint(3), PrefilterPrecision(100000, 0)) // 100 km
	assert.Equal(t, uint(5), PrefilterPrecision(1000, 0))   // 1 km

	// Cells narrow away from the equator, so the same radius needs a
	// coarser precision at mid latitudes.
	assert.Equal(t, uint(4), PrefilterPrecision(10000, 13.7563))
	assert.Equal(t, uint(4), PrefilterPrecision(4000, 45.0))
	assert.Equal(t, uint(5), PrefilterPrecision(4000, 0))

	// Near the poles no precision gives cover; callers skip the prefilter.
	assert.Equal(t, uint(0), PrefilterPrecision(10000, 89.9))
	assert.Equal(t, uint(0), PrefilterPrecision(10000, -90))
}

func TestCoverageNeverExcludesPointsWithinRadius(t *testing.T) {
	testCases := []struct {
		name   string
		query  models.Coordinate
		radius float64 // meters
		inside []models.Coordinate
	}{
		{
			name:   "near the equator",
			query:  models.Coordinate{Latitude: 13.7563, Longitude: 100.5018},
			radius: 10000,
			inside: []models.Coordinate{
				{Latitude: 13.80, Longitude: 100.55},
				{Latitude: 13.76, Longitude: 100.50},
				{Latitude: 13.70, Longitude: 100.46},
			},
		},
		{
			name:   "mid latitude, points near the cell edge",
			query:  models.Coordinate{Latitude: 45.0, Longitude: -169.97946875},
			radius: 4000,
			inside: []models.Coordinate{
				// Almost the full radius due west, where longitude
				// degrees span fewer meters than at the equator.
				{Latitude: 45.0, Longitude: -169.97946875 - 3900/(metersPerDegreeLat*math.Cos(45*math.Pi/180))},
				{Latitude: 45.034, Longitude: -169.97946875},
				{Latitude: 44.975, Longitude: -169.95},
			},
		},
		{
			name:   "high latitude",
			query:  models.Coordinate{Latitude: 64.13, Longitude: -21.82},
			radius: 10000,
			inside: []models.Coordinate{
				{Latitude: 64.13, Longitude: -22.02},
				{Latitude: 64.05, Longitude: -21.90},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			precision := PrefilterPrecision(tc.radius, tc.query.Latitude)
			if precision == 0 {
				t.Fatalf("no coverage precision for radius %v at latitude %v", tc.radius, tc.query.Latitude)
			}
			cells := CoverageCells(tc.query, precision)

			// Points inside the radius must always pass the prefilter.
			for _, p := range tc.inside {
				require.LessOrEqual(t, HaversineDistance(tc.query, p), tc.radius, "fixture point %+v drifted outside the radius", p)
				assert.True(t, InCoverage(p, cells, precision), "point %+v within radius rejected by prefilter", p)
			}
		})
	}

	// A point far outside the coverage ring is rejected.
	query := models.Coordinate{Latitude: 13.7563, Longitude: 100.5018}
	precision := PrefilterPrecision(10000, query.Latitude)
	cells := CoverageCells(query, precision)
	far := models.Coordinate{Latitude: 14.3691, Longitude: 100.5876}
	assert.False(t, InCoverage(far, cells, precision))
}
