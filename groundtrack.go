package orbital

import (
	"math"
	"time"
)

// GeodeticPoint is a point on (or above) the spherical Earth. Latitude and
// longitude are in degrees, altitude in km.
type GeodeticPoint struct {
	Latitude  float64
	Longitude float64
	Altitude  float64
}

// GroundTrack samples the sub-satellite point over numOrbits Keplerian
// periods at pointsPerOrbit samples per orbit, so the returned path has
// exactly numOrbits*pointsPerOrbit points. The track is generated fresh on
// every call and never memoized: a caller redrawing the same overlay each
// frame is expected to cache it.
func GroundTrack(o *Orbit, numOrbits, pointsPerOrbit int) []GeodeticPoint {
	step := o.PeriodSeconds() / float64(pointsPerOrbit)
	track := make([]GeodeticPoint, 0, numOrbits*pointsPerOrbit)
	for k := 0; k < numOrbits*pointsPerOrbit; k++ {
		s := Propagate(o, float64(k)*step)
		track = append(track, GeodeticPoint{s.Latitude, s.Longitude, s.Altitude})
	}
	return track
}

// SubsolarPoint returns the geodetic point (degrees) directly beneath the
// Sun at the given time. The declination comes from a cosine-of-day-of-year
// model and the longitude from the UTC hour angle. No equation-of-time
// correction is applied: the model is within about two degrees, which is
// fine for a training visualization and unsuitable for operations.
func SubsolarPoint(dt time.Time) (lat, lon float64) {
	dt = dt.UTC()
	δ := -Earth.tilt * math.Cos(2*math.Pi*(float64(dt.YearDay())+10)/365.25)
	hours := float64(dt.Hour()) + float64(dt.Minute())/60 + float64(dt.Second())/3600
	return δ, wrapΔλ((12 - hours) * 15 * deg2rad) / deg2rad
}

// Terminator samples numPoints points along the day/night boundary at the
// given time: the great circle 90° away from the subsolar point, walked by
// bearing with the spherical destination formula.
func Terminator(dt time.Time, numPoints int) []GeodeticPoint {
	subLat, subLon := SubsolarPoint(dt)
	sinφs, cosφs := math.Sincos(subLat * deg2rad)
	λs := subLon * deg2rad

	boundary := make([]GeodeticPoint, 0, numPoints)
	for k := 0; k < numPoints; k++ {
		ψ := 2 * math.Pi * float64(k) / float64(numPoints)
		sinψ, cosψ := math.Sincos(ψ)
		// Destination at angular distance 90°: sin(c)=1, cos(c)=0.
		φ := math.Asin(cosφs * cosψ)
		λ := λs + math.Atan2(sinψ*cosφs, -sinφs*math.Sin(φ))
		boundary = append(boundary, GeodeticPoint{φ / deg2rad, wrapΔλ(λ) / deg2rad, 0})
	}
	return boundary
}
