package orbital

import (
	"fmt"
	"math"
	"time"
)

// State is the satellite state derived from an element set and an elapsed
// time: inertial position and velocity (km, km/s), the geodetic sub-satellite
// point on a spherical Earth, and the advanced true anomaly. States are
// recomputed fresh on every call and never persisted.
type State struct {
	R, V      []float64
	Latitude  float64 // degrees, [-90, 90]
	Longitude float64 // degrees, [-180, 180]
	Altitude  float64 // km above the mean Earth radius
	ν         float64 // true anomaly in radians, [0, 2π)
}

// TrueAnomaly returns the true anomaly at this state in degrees.
func (s State) TrueAnomaly() float64 {
	return Rad2deg(s.ν)
}

// String implements the Stringer interface.
func (s State) String() string {
	return fmt.Sprintf("lat=%.4f lon=%.4f alt=%.1f ν=%.3f", s.Latitude, s.Longitude, s.Altitude, s.TrueAnomaly())
}

// Propagate advances the orbit by Δt seconds past its epoch under two-body
// dynamics and returns the resulting state. The element set itself is not
// modified. Degenerate elements (a <= 0, e >= 1) are not defended against:
// this runs once per animation frame and validation belongs at the data
// entry boundary.
func Propagate(o *Orbit, Δt float64) State {
	cfg := engineConfig()
	// Mean anomaly at epoch from the supplied true anomaly, then advance.
	E0 := EccentricFromTrueAnomaly(o.ν, o.e)
	M := MeanFromEccentric(E0, o.e) + o.MeanMotion()*Δt
	E := SolveKepler(M, o.e, cfg.KeplerTolerance, cfg.KeplerMaxIterations)
	ν := math.Mod(TrueAnomalyFromEccentric(E, o.e), 2*math.Pi)
	if ν < 0 {
		ν += 2 * math.Pi
	}

	// Perifocal position and velocity, then a single 3-1-3 rotation into ECI.
	// The in-plane z component is always zero for a Keplerian orbit.
	r := o.a * (1 - o.e*math.Cos(E))
	p := o.SemiParameter()
	sinν, cosν := math.Sincos(ν)
	R := PQW2ECI(o.i, o.ω, o.Ω, []float64{r * cosν, r * sinν, 0})
	V := PQW2ECI(o.i, o.ω, o.Ω, []float64{-math.Sqrt(o.Origin.μ/p) * sinν, math.Sqrt(o.Origin.μ/p) * (o.e + cosν), 0})

	// Earth-fixed frame at the wall-clock time of this state.
	θgst := GMST(o.Epoch.Add(time.Duration(Δt * float64(time.Second))))
	ecef := ECI2ECEF(R, θgst)
	horiz := math.Hypot(ecef[0], ecef[1])

	return State{
		R:         R,
		V:         V,
		Latitude:  math.Atan2(ecef[2], horiz) / deg2rad,
		Longitude: math.Atan2(ecef[1], ecef[0]) / deg2rad,
		Altitude:  norm(ecef) - o.Origin.MeanRadius,
		ν:         ν,
	}
}
