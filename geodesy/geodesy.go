// Package geodesy implements the WGS84 ellipsoidal direct and inverse
// problems plus a local tangent-plane frame, the one piece of math
// every higher-level package (bezier, airport, isect, mesh) is built
// on top of.
//
// All functions are pure and fail only on non-finite input, which is
// a programmer error rather than a data error.
package geodesy

import (
	"math"

	"github.com/flightgear-scenery/tgcore/tgerr"
)

// WGS84 ellipsoid constants.
const (
	EquatorialRadiusM = 6378137.0
	Flattening        = 1.0 / 298.257223563
	PolarRadiusM      = EquatorialRadiusM * (1 - Flattening)
)

func checkFinite(op string, vs ...float64) error {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return tgerr.New(tgerr.KindInvariantViolation, op, "non-finite coordinate")
		}
	}
	return nil
}

// Inverse solves the geodesic inverse problem on the WGS84 ellipsoid:
// given two points in degrees, returns the forward azimuth at a, the
// back azimuth at b (looking from b back to a, in [0,360)), and the
// ellipsoidal distance in meters. Implements Vincenty's
// formula, iterating to 1e-12 radians.
func Inverse(lonA, latA, lonB, latB float64) (azAB, azBA, distM float64, err error) {
	if err := checkFinite("geodesy.Inverse", lonA, latA, lonB, latB); err != nil {
		return 0, 0, 0, err
	}

	a := EquatorialRadiusM
	f := Flattening
	b := PolarRadiusM

	phi1 := deg2rad(latA)
	phi2 := deg2rad(latB)
	L := deg2rad(lonB - lonA)

	U1 := math.Atan((1 - f) * math.Tan(phi1))
	U2 := math.Atan((1 - f) * math.Tan(phi2))
	sinU1, cosU1 := math.Sincos(U1)
	sinU2, cosU2 := math.Sincos(U2)

	if sinU1 == sinU2 && cosU1 == cosU2 && L == 0 {
		return 0, 180, 0, nil
	}

	lambda := L
	var sinSigma, cosSigma, sigma, sinAlpha, cosSqAlpha, cos2SigmaM float64
	for i := 0; i < 200; i++ {
		sinLambda, cosLambda := math.Sincos(lambda)
		sinSigma = math.Sqrt(math.Pow(cosU2*sinLambda, 2) + math.Pow(cosU1*sinU2-sinU1*cosU2*cosLambda, 2))
		if sinSigma == 0 {
			return 0, 180, 0, nil // coincident points
		}
		cosSigma = sinU1*sinU2 + cosU1*cosU2*cosLambda
		sigma = math.Atan2(sinSigma, cosSigma)
		sinAlpha = cosU1 * cosU2 * sinLambda / sinSigma
		cosSqAlpha = 1 - sinAlpha*sinAlpha
		if cosSqAlpha != 0 {
			cos2SigmaM = cosSigma - 2*sinU1*sinU2/cosSqAlpha
		} else {
			cos2SigmaM = 0 // equatorial line
		}
		C := f / 16 * cosSqAlpha * (4 + f*(4-3*cosSqAlpha))
		lambdaPrev := lambda
		lambda = L + (1-C)*f*sinAlpha*(sigma+C*sinSigma*(cos2SigmaM+C*cosSigma*(-1+2*cos2SigmaM*cos2SigmaM)))
		if math.Abs(lambda-lambdaPrev) < 1e-12 {
			break
		}
	}

	uSq := cosSqAlpha * (a*a - b*b) / (b * b)
	A := 1 + uSq/16384*(4096+uSq*(-768+uSq*(320-175*uSq)))
	B := uSq / 1024 * (256 + uSq*(-128+uSq*(74-47*uSq)))
	deltaSigma := B * sinSigma * (cos2SigmaM + B/4*(cosSigma*(-1+2*cos2SigmaM*cos2SigmaM)-
		B/6*cos2SigmaM*(-3+4*sinSigma*sinSigma)*(-3+4*cos2SigmaM*cos2SigmaM)))

	distM = b * A * (sigma - deltaSigma)

	sinLambda, cosLambda := math.Sincos(lambda)
	alpha1 := math.Atan2(cosU2*sinLambda, cosU1*sinU2-sinU1*cosU2*cosLambda)
	alpha2 := math.Atan2(cosU1*sinLambda, -sinU1*cosU2+cosU1*sinU2*cosLambda)

	azAB = normalizeDeg(rad2deg(alpha1))
	azBA = normalizeDeg(rad2deg(alpha2) + 180)
	return azAB, azBA, distM, nil
}

// Direct solves the geodesic direct problem: given a start point in
// degrees, a forward azimuth in degrees, and a distance in meters,
// returns the destination point and the back azimuth (looking from
// the destination back to the start, in [0,360)). Implements
// Vincenty's direct formula.
func Direct(lon, lat, azimuthDeg, distM float64) (destLon, destLat, backAzimuthDeg float64, err error) {
	if err := checkFinite("geodesy.Direct", lon, lat, azimuthDeg, distM); err != nil {
		return 0, 0, 0, err
	}

	a := EquatorialRadiusM
	f := Flattening
	b := PolarRadiusM

	alpha1 := deg2rad(azimuthDeg)
	sinAlpha1, cosAlpha1 := math.Sincos(alpha1)

	tanU1 := (1 - f) * math.Tan(deg2rad(lat))
	cosU1 := 1 / math.Sqrt(1+tanU1*tanU1)
	sinU1 := tanU1 * cosU1

	sigma1 := math.Atan2(tanU1, cosAlpha1)
	sinAlpha := cosU1 * sinAlpha1
	cosSqAlpha := 1 - sinAlpha*sinAlpha

	uSq := cosSqAlpha * (a*a - b*b) / (b * b)
	A := 1 + uSq/16384*(4096+uSq*(-768+uSq*(320-175*uSq)))
	B := uSq / 1024 * (256 + uSq*(-128+uSq*(74-47*uSq)))

	sigma := distM / (b * A)
	var sinSigma, cosSigma, cos2SigmaM float64
	for i := 0; i < 200; i++ {
		cos2SigmaM = math.Cos(2*sigma1 + sigma)
		sinSigma, cosSigma = math.Sincos(sigma)
		deltaSigma := B * sinSigma * (cos2SigmaM + B/4*(cosSigma*(-1+2*cos2SigmaM*cos2SigmaM)-
			B/6*cos2SigmaM*(-3+4*sinSigma*sinSigma)*(-3+4*cos2SigmaM*cos2SigmaM)))
		sigmaPrev := sigma
		sigma = distM/(b*A) + deltaSigma
		if math.Abs(sigma-sigmaPrev) < 1e-12 {
			break
		}
	}

	sinSigma, cosSigma = math.Sincos(sigma)
	tmp := sinU1*sinSigma - cosU1*cosSigma*cosAlpha1
	lat2 := math.Atan2(sinU1*cosSigma+cosU1*sinSigma*cosAlpha1, (1-f)*math.Sqrt(sinAlpha*sinAlpha+tmp*tmp))
	lambda := math.Atan2(sinSigma*sinAlpha1, cosU1*cosSigma-sinU1*sinSigma*cosAlpha1)
	C := f / 16 * cosSqAlpha * (4 + f*(4-3*cosSqAlpha))
	L := lambda - (1-C)*f*sinAlpha*(sigma+C*sinSigma*(cos2SigmaM+C*cosSigma*(-1+2*cos2SigmaM*cos2SigmaM)))

	destLon = normalizeLon(lon + rad2deg(L))
	destLat = rad2deg(lat2)

	alpha2 := math.Atan2(sinAlpha, -tmp)
	backAzimuthDeg = normalizeDeg(rad2deg(alpha2) + 180)
	return destLon, destLat, backAzimuthDeg, nil
}

// CourseDeg returns the initial great-circle/geodesic course in
// degrees from (lonA,latA) to (lonB,latB).
func CourseDeg(lonA, latA, lonB, latB float64) (float64, error) {
	az, _, _, err := Inverse(lonA, latA, lonB, latB)
	return az, err
}

// DistanceM returns the ellipsoidal distance in meters between two
// geodetic points.
func DistanceM(lonA, latA, lonB, latB float64) (float64, error) {
	_, _, d, err := Inverse(lonA, latA, lonB, latB)
	return d, err
}

func deg2rad(d float64) float64 { return d * math.Pi / 180 }
func rad2deg(r float64) float64 { return r * 180 / math.Pi }

func normalizeDeg(d float64) float64 {
	d = math.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	return d
}

func normalizeLon(d float64) float64 {
	d = math.Mod(d+180, 360)
	if d < 0 {
		d += 360
	}
	return d - 180
}
