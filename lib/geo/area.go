package geo

import (
	"errors"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/geojson"
)

// SquareMetersPerAcre converts between the geodesic area and acreage shown to
// users. 1 acre = 4046.86 m².
const (
	SquareMetersPerAcre = 4046.86
	AcresPerSquareMeter = 0.000247105
	SquareFeetPerMeter  = 10.7639
	FeetPerMeter        = 3.28084
)

var ErrTooFewVertices = errors.New("polygon needs at least 3 vertices")

// ParseBoundary decodes a GeoJSON geometry into a polygon.
func ParseBoundary(data []byte) (orb.Polygon, error) {
	g, err := geojson.UnmarshalGeometry(data)
	if err != nil {
		return nil, err
	}
	poly, ok := g.Geometry().(orb.Polygon)
	if !ok {
		return nil, errors.New("boundary must be a GeoJSON Polygon")
	}
	if len(poly) == 0 {
		return nil, ErrTooFewVertices
	}
	return poly, nil
}

// AreaSquareMeters computes the enclosed geodesic area of a polygon's outer
// ring. Self-intersecting rings are not validated; the library's result is
// accepted as-is.
func AreaSquareMeters(poly orb.Polygon) (float64, error) {
	if distinctVertices(poly) < 3 {
		return 0, ErrTooFewVertices
	}
	return math.Abs(geo.Area(poly)), nil
}

// AreaAcres converts the polygon's area to acres, rounded to two decimals.
// Callers must clear any stored acreage when ErrTooFewVertices is returned.
func AreaAcres(poly orb.Polygon) (float64, error) {
	m2, err := AreaSquareMeters(poly)
	if err != nil {
		return 0, err
	}
	return Round2(m2 * AcresPerSquareMeter), nil
}

// Centroid returns the arithmetic mean of the outer ring's points, closing
// vertex included. Not area-weighted; it only provides rough coordinates for
// the analysis prompt.
func Centroid(poly orb.Polygon) orb.Point {
	ring := poly[0]
	if len(ring) == 0 {
		return orb.Point{}
	}
	var lon, lat float64
	for _, p := range ring {
		lon += p[0]
		lat += p[1]
	}
	n := float64(len(ring))
	return orb.Point{lon / n, lat / n}
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// distinctVertices counts ring vertices excluding the closing duplicate.
func distinctVertices(poly orb.Polygon) int {
	if len(poly) == 0 {
		return 0
	}
	ring := poly[0]
	n := len(ring)
	if n > 1 && ring[0] == ring[n-1] {
		n--
	}
	return n
}
