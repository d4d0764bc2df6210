// Package airport composes airport pavement polygons from bezier
// contours into textured, clipped, and based-out geometry ready for
// tessellation, following the ClosedPoly construction sequence.
package airport

import "github.com/flightgear-scenery/tgcore/tgerr"

// materialForSurfaceType maps an apt.dat pavement surface-type code to
// the scenery material name, per the original ClosedPoly::BuildBtg
// switch. Unknown codes are a malformed-input error here rather than
// the original's exit(1).
func materialForSurfaceType(surfaceType int) (string, error) {
	switch surfaceType {
	case 1:
		return "pa_tiedown", nil
	case 2:
		return "pc_tiedown", nil
	case 3, 4, 5, 12, 13, 14, 15:
		return "grass_rwy", nil
	default:
		return "", tgerr.New(tgerr.KindMalformedInput, "airport.materialForSurfaceType", "unknown surface type")
	}
}
