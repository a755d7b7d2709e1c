package orbital

import "math"

const (
	// KeplerTolerance is the default convergence tolerance on Kepler's equation.
	KeplerTolerance = 1e-10
	// KeplerMaxIterations caps the Newton-Raphson loop. The solver converges in
	// about five iterations for e < 0.9, so the cap is a termination guarantee,
	// not an expected path.
	KeplerMaxIterations = 50
)

// SolveKepler solves Kepler's equation M = E - e*sin(E) for the eccentric
// anomaly E via Newton-Raphson, seeded with E0 = M. All angles are in radians.
// If the iteration cap is reached, the best estimate so far is returned:
// non-convergence is not signaled.
func SolveKepler(M, e, tol float64, maxIter int) float64 {
	E := M
	for i := 0; i < maxIter; i++ {
		f := E - e*math.Sin(E) - M
		if math.Abs(f) < tol {
			break
		}
		E -= f / (1 - e*math.Cos(E))
	}
	return E
}

// EccentricAnomaly solves Kepler's equation with the package defaults.
func EccentricAnomaly(M, e float64) float64 {
	return SolveKepler(M, e, KeplerTolerance, KeplerMaxIterations)
}

// TrueAnomalyFromEccentric converts an eccentric anomaly to a true anomaly via
// the half-angle arctangent identity, which is stable for all e in [0,1).
func TrueAnomalyFromEccentric(E, e float64) float64 {
	sE, cE := math.Sincos(E / 2)
	return math.Atan2(math.Sqrt(1+e)*sE, math.Sqrt(1-e)*cE) * 2
}

// EccentricFromTrueAnomaly converts a true anomaly to an eccentric anomaly.
func EccentricFromTrueAnomaly(ν, e float64) float64 {
	sν, cν := math.Sincos(ν / 2)
	return math.Atan2(math.Sqrt(1-e)*sν, math.Sqrt(1+e)*cν) * 2
}

// MeanFromEccentric returns the mean anomaly for the given eccentric anomaly.
func MeanFromEccentric(E, e float64) float64 {
	return E - e*math.Sin(E)
}
