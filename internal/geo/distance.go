package geo

import (
	"math"

	"github.com/paulmach/orb"
)

// EarthRadiusMeters is the mean earth radius used for great-circle distance.
// orb/geo uses the WGS84 equatorial radius; proximity radii are defined against the mean radius.
const EarthRadiusMeters = 6371000.0

// Distance returns the haversine distance in meters between two coordinates given in degrees.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := deg2rad(lat1)
	phi2 := deg2rad(lat2)
	dPhi := deg2rad(lat2 - lat1)
	dLambda := deg2rad(lon2 - lon1)

	sinPhi := math.Sin(dPhi / 2)
	sinLambda := math.Sin(dLambda / 2)
	h := sinPhi*sinPhi + math.Cos(phi1)*math.Cos(phi2)*sinLambda*sinLambda

	// rounding can push h a hair above 1 for antipodal points
	h = math.Min(1, h)

	return 2 * EarthRadiusMeters * math.Asin(math.Sqrt(h))
}

// DistanceBetween is Distance on orb points (X=lon, Y=lat).
func DistanceBetween(a, b orb.Point) float64 {
	return Distance(a.Lat(), a.Lon(), b.Lat(), b.Lon())
}

func deg2rad(d float64) float64 {
	return d * math.Pi / 180.0
}
