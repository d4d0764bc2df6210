// Package primitives defines the geometric value types the rest of the
// geometry core is built from: Point2/Point3, Segment, Ray, Line,
// Rectangle, and the Contour/Polygon aggregate types.
package primitives

import (
	"math"

	"github.com/flightgear-scenery/tgcore/geodesy"
)

// Point2 is a geodetic coordinate: longitude in [-180,180), latitude
// in [-90,90]. Values are normalized on construction.
type Point2 struct {
	Lon, Lat float64
}

// NewPoint2 normalizes lon into [-180,180) and clamps lat into
// [-90,90] before returning the value.
func NewPoint2(lon, lat float64) Point2 {
	lon = math.Mod(lon+180, 360)
	if lon < 0 {
		lon += 360
	}
	lon -= 180
	if lat > 90 {
		lat = 90
	}
	if lat < -90 {
		lat = -90
	}
	return Point2{Lon: lon, Lat: lat}
}

// Equal reports exact equality (no epsilon).
func (p Point2) Equal(o Point2) bool { return p.Lon == o.Lon && p.Lat == o.Lat }

// ApproxEqual reports whether p and o are within eps degrees of each
// other on both axes.
func (p Point2) ApproxEqual(o Point2, eps float64) bool {
	return math.Abs(p.Lon-o.Lon) <= eps && math.Abs(p.Lat-o.Lat) <= eps
}

// Point3 is a Point2 plus an elevation in meters.
type Point3 struct {
	Point2
	Elevation float64
}

// NewPoint3 builds a Point3 from a geodetic point and an elevation.
func NewPoint3(p Point2, elevationM float64) Point3 {
	return Point3{Point2: p, Elevation: elevationM}
}

// ECEF converts a Point3 to earth-centered-earth-fixed Cartesian
// coordinates on the WGS84 ellipsoid, used for face-normal math.
func (p Point3) ECEF() (x, y, z float64) {
	const a = geodesy.EquatorialRadiusM
	const f = geodesy.Flattening
	e2 := f * (2 - f)

	latR := p.Lat * math.Pi / 180
	lonR := p.Lon * math.Pi / 180
	sinLat := math.Sin(latR)
	n := a / math.Sqrt(1-e2*sinLat*sinLat)

	x = (n + p.Elevation) * math.Cos(latR) * math.Cos(lonR)
	y = (n + p.Elevation) * math.Cos(latR) * math.Sin(lonR)
	z = (n*(1-e2) + p.Elevation) * sinLat
	return x, y, z
}
