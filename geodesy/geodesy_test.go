package geodesy

import (
	"math"
	"testing"
)

func TestInverseDirectRoundTrip(t *testing.T) {
	lonA, latA := -122.4194, 37.7749
	lonB, latB := -122.0, 38.0

	az, _, dist, err := Inverse(lonA, latA, lonB, latB)
	if err != nil {
		t.Fatalf("Inverse: %v", err)
	}

	gotLon, gotLat, _, err := Direct(lonA, latA, az, dist)
	if err != nil {
		t.Fatalf("Direct: %v", err)
	}

	if math.Abs(gotLon-lonB) > 1e-6 || math.Abs(gotLat-latB) > 1e-6 {
		t.Errorf("round trip mismatch: got (%v,%v) want (%v,%v)", gotLon, gotLat, lonB, latB)
	}
}

func TestInverseCoincidentPoints(t *testing.T) {
	_, _, dist, err := Inverse(10, 10, 10, 10)
	if err != nil {
		t.Fatalf("Inverse: %v", err)
	}
	if dist != 0 {
		t.Errorf("expected zero distance for coincident points, got %v", dist)
	}
}

func TestInverseNonFinite(t *testing.T) {
	_, _, _, err := Inverse(math.NaN(), 0, 1, 1)
	if err == nil {
		t.Fatal("expected error for NaN input")
	}
}

func TestDistanceMApprox(t *testing.T) {
	// One degree of longitude at the equator is about 111.3km.
	d, err := DistanceM(0, 0, 1, 0)
	if err != nil {
		t.Fatalf("DistanceM: %v", err)
	}
	if d < 110000 || d > 112000 {
		t.Errorf("expected ~111.3km, got %v", d)
	}
}

func TestTangentRoundTrip(t *testing.T) {
	tp := NewTangent(-122.0, 37.0)
	x, y := tp.ToLocal(-121.999, 37.001)
	lon, lat := tp.FromLocal(x, y)
	if math.Abs(lon-(-121.999)) > 1e-9 || math.Abs(lat-37.001) > 1e-9 {
		t.Errorf("tangent round trip mismatch: got (%v,%v)", lon, lat)
	}
}
