package geo

import (
	"errors"
	"math"
	"testing"

	"github.com/paulmach/orb"
)

// squareAt builds a closed square ring of the given side length (degrees)
// with its southwest corner at lng/lat.
func squareAt(lng, lat, side float64) orb.Polygon {
	return orb.Polygon{orb.Ring{
		{lng, lat},
		{lng + side, lat},
		{lng + side, lat + side},
		{lng, lat + side},
		{lng, lat},
	}}
}

func TestParseBoundary(t *testing.T) {
	data := []byte(`{"type":"Polygon","coordinates":[[[0,0],[0.001,0],[0.001,0.001],[0,0.001],[0,0]]]}`)
	poly, err := ParseBoundary(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(poly) != 1 || len(poly[0]) != 5 {
		t.Fatalf("unexpected polygon shape: %v", poly)
	}

	if _, err := ParseBoundary([]byte(`{"type":"Point","coordinates":[0,0]}`)); err == nil {
		t.Fatal("expected error for non-polygon geometry")
	}
	if _, err := ParseBoundary([]byte(`not json`)); err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestAreaAcresOneAcreSquare(t *testing.T) {
	// A square with side sqrt(4046.86) m at the equator enclosing ~1 acre.
	side := math.Sqrt(SquareMetersPerAcre) / 111319.49
	acres, err := AreaAcres(squareAt(0, 0, side))
	if err != nil {
		t.Fatalf("area: %v", err)
	}
	if math.Abs(acres-1.00) > 0.01 {
		t.Fatalf("expected ~1.00 acres, got %v", acres)
	}
}

func TestAreaAcresRounded(t *testing.T) {
	acres, err := AreaAcres(squareAt(-80.2, 25.7, 0.001))
	if err != nil {
		t.Fatalf("area: %v", err)
	}
	if acres != Round2(acres) {
		t.Fatalf("expected a two-decimal result, got %v", acres)
	}
	if acres <= 0 {
		t.Fatalf("expected a positive area, got %v", acres)
	}
}

func TestAreaTooFewVertices(t *testing.T) {
	// Two distinct vertices plus the closing duplicate cannot enclose area.
	line := orb.Polygon{orb.Ring{{0, 0}, {0.001, 0}, {0, 0}}}
	if _, err := AreaAcres(line); !errors.Is(err, ErrTooFewVertices) {
		t.Fatalf("expected ErrTooFewVertices, got %v", err)
	}
	if _, err := AreaSquareMeters(orb.Polygon{orb.Ring{}}); !errors.Is(err, ErrTooFewVertices) {
		t.Fatalf("expected ErrTooFewVertices for empty ring, got %v", err)
	}
}

func TestAreaWindingOrderIgnored(t *testing.T) {
	cw := orb.Polygon{orb.Ring{{0, 0}, {0, 0.001}, {0.001, 0.001}, {0.001, 0}, {0, 0}}}
	ccw := squareAt(0, 0, 0.001)

	a1, err := AreaSquareMeters(cw)
	if err != nil {
		t.Fatalf("area: %v", err)
	}
	a2, err := AreaSquareMeters(ccw)
	if err != nil {
		t.Fatalf("area: %v", err)
	}
	if a1 != a2 {
		t.Fatalf("winding order changed the area: %v vs %v", a1, a2)
	}
}

func TestCentroidIsRingMean(t *testing.T) {
	// Mean over all ring points including the closing vertex: the first
	// point counts twice.
	poly := orb.Polygon{orb.Ring{{0, 0}, {4, 0}, {4, 4}, {0, 4}, {0, 0}}}
	c := Centroid(poly)
	if math.Abs(c[0]-1.6) > 1e-9 || math.Abs(c[1]-1.6) > 1e-9 {
		t.Fatalf("expected centroid (1.6, 1.6), got %v", c)
	}
}

func TestRound2(t *testing.T) {
	cases := []struct {
		in, out float64
	}{
		{1.004, 1.00},
		{1.006, 1.01},
		{3.14159, 3.14},
		{-2.346, -2.35},
		{0, 0},
	}
	for _, tc := range cases {
		if got := Round2(tc.in); math.Abs(got-tc.out) > 1e-9 {
			t.Errorf("Round2(%v) = %v, want %v", tc.in, got, tc.out)
		}
	}
}
