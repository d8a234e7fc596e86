package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"

	"github.com/ridepool/ridepool/internal/pkg/models"
)

// Earth's radius in meters for the spherical approximation
const earthRadiusMeters = 6371000.0

// HaversineDistance calculates the great-circle distance in meters between
// two coordinates given in degrees.
func HaversineDistance(a, b models.Coordinate) float64 {
	lat1 := toRadians(a.Latitude)
	lon1 := toRadians(a.Longitude)
	lat2 := toRadians(b.Latitude)
	lon2 := toRadians(b.Longitude)

	dLat := lat2 - lat1
	dLon := lon2 - lon1

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusMeters * c
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// Minimum geohash cell dimension in meters per precision, measured at
// the equator. A point within radius r of a query point is guaranteed to
// fall in the query's cell or one of its eight neighbors as long as r
// does not exceed the cell's smaller dimension.
var geohashCellMinDimension = []float64{
	4992600, // precision 1
	624100,  // precision 2
	156000,  // precision 3
	19500,   // precision 4
	4890,    // precision 5
	610,     // precision 6
}

// Approximate meters spanned by one degree of latitude
const metersPerDegreeLat = 111320.0

// PrefilterPrecision returns the highest geohash precision whose cells,
// together with their eight neighbors, still cover the given radius
// around a query point at the given latitude. Cell widths shrink with
// the cosine of the latitude, so the radius is scaled up before the
// lookup; the scale uses the latitude edge of the radius, where cells
// are narrowest. Returns 0 when no precision gives cover; callers must
// then skip the prefilter entirely.
func PrefilterPrecision(radiusMeters, latitude float64) uint {
	edgeLat := math.Abs(latitude) + radiusMeters/metersPerDegreeLat
	if edgeLat >= 90 {
		return 0
	}
	effective := radiusMeters / math.Cos(toRadians(edgeLat))

	var precision uint
	for i, minDim := range geohashCellMinDimension {
		if effective <= minDim {
			precision = uint(i + 1)
		} else {
			break
		}
	}
	return precision
}

// CoverageCells returns the geohash cell of the query point plus its eight
// neighbors at the given precision. Candidates outside this set cannot be
// within the radius the precision was derived from.
func CoverageCells(point models.Coordinate, precision uint) map[string]struct{} {
	center := geohash.EncodeWithPrecision(point.Latitude, point.Longitude, precision)
	cells := map[string]struct{}{center: {}}
	for _, n := range geohash.Neighbors(center) {
		cells[n] = struct{}{}
	}
	return cells
}

// InCoverage reports whether the candidate point falls inside the coverage
// cell set at the given precision.
func InCoverage(point models.Coordinate, cells map[string]struct{}, precision uint) bool {
	cell := geohash.EncodeWithPrecision(point.Latitude, point.Longitude, precision)
	_, ok := cells[cell]
	return ok
}
