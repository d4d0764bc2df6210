package clipper

import (
	cl "github.com/CWBudde/Go-Clipper2"
	"github.com/flightgear-scenery/tgcore/geodesy"
	"github.com/flightgear-scenery/tgcore/primitives"
	"github.com/flightgear-scenery/tgcore/tgerr"
)

// Expand grows poly outward by distanceM meters via Clipper2's
// polygon-offset (Minkowski-sum-with-a-disk) engine, used for the
// airport base/clearing polygons (20m/50m rings). A zero-area polygon
// expands to empty rather than an arbitrary sliver.
func Expand(poly primitives.Polygon, distanceM float64) (primitives.Polygon, error) {
	if poly.IsEmpty() || poly.Outer().SignedArea() == 0 {
		return primitives.Polygon{}, nil
	}

	// Clipper2 works in the fixed-point local frame; convert the
	// meters offset to that frame's units via the polygon's own
	// reference latitude so the offset distance stays isotropic.
	ref := poly.Outer().At(0)
	tangent := geodesy.NewTangent(ref.Lon, ref.Lat)
	_, edgeLat := tangent.FromLocal(0, 1)
	stepM, err := geodesy.DistanceM(ref.Lon, ref.Lat, ref.Lon, edgeLat)
	if err != nil || stepM == 0 {
		return primitives.Polygon{}, tgerr.Wrap(tgerr.KindNumericalDegenerate, "clipper.Expand", err)
	}
	metersPerDegLat := stepM / (edgeLat - ref.Lat)
	deltaDeg := distanceM / metersPerDegLat
	deltaFixed := deltaDeg * Scale

	off := cl.NewClipperOffset()
	off.AddPaths(toPaths64(poly), cl.Round, cl.ClosedPolygon)

	var solution cl.Paths64
	if err := off.Execute(deltaFixed, &solution); err != nil {
		return primitives.Polygon{}, tgerr.Wrap(tgerr.KindNumericalDegenerate, "clipper.Expand", err)
	}

	return pathsToPolygon(solution), nil
}
