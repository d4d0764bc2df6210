package primitives

import "math"

// Rectangle is an axis-aligned bounding box in geodetic coordinates.
type Rectangle struct {
	Min, Max Point2
}

// EmptyRectangle returns a Rectangle in an inverted state such that
// the first ExpandToInclude call establishes real bounds.
func EmptyRectangle() Rectangle {
	return Rectangle{
		Min: Point2{Lon: math.Inf(1), Lat: math.Inf(1)},
		Max: Point2{Lon: math.Inf(-1), Lat: math.Inf(-1)},
	}
}

// ExpandToInclude grows the rectangle to include p.
func (r Rectangle) ExpandToInclude(p Point2) Rectangle {
	if p.Lon < r.Min.Lon {
		r.Min.Lon = p.Lon
	}
	if p.Lat < r.Min.Lat {
		r.Min.Lat = p.Lat
	}
	if p.Lon > r.Max.Lon {
		r.Max.Lon = p.Lon
	}
	if p.Lat > r.Max.Lat {
		r.Max.Lat = p.Lat
	}
	return r
}

// Contains reports whether p lies within the rectangle (inclusive).
func (r Rectangle) Contains(p Point2) bool {
	return p.Lon >= r.Min.Lon && p.Lon <= r.Max.Lon && p.Lat >= r.Min.Lat && p.Lat <= r.Max.Lat
}

// Intersects reports whether r and o overlap.
func (r Rectangle) Intersects(o Rectangle) bool {
	return r.Min.Lon <= o.Max.Lon && r.Max.Lon >= o.Min.Lon &&
		r.Min.Lat <= o.Max.Lat && r.Max.Lat >= o.Min.Lat
}
