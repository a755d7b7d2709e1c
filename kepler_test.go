package orbital

import (
	"math"
	"testing"

	"github.com/gonum/floats"
)

func TestSolveKeplerConvergence(t *testing.T) {
	for e := 0.0; e <= 0.95; e += 0.05 {
		for M := 0.0; M < 2*math.Pi; M += 0.1 {
			E := SolveKepler(M, e, KeplerTolerance, KeplerMaxIterations)
			if resid := math.Abs(E - e*math.Sin(E) - M); resid > 1e-9 {
				t.Fatalf("e=%.2f M=%.2f: residual %.3e", e, M, resid)
			}
		}
	}
}

func TestSolveKeplerCircular(t *testing.T) {
	for M := 0.0; M < 2*math.Pi; M += 0.25 {
		if E := SolveKepler(M, 0, KeplerTolerance, KeplerMaxIterations); !floats.EqualWithinAbs(E, M, 1e-14) {
			t.Fatalf("for e=0, E must equal M (M=%f, E=%f)", M, E)
		}
	}
}

func TestSolveKeplerCapTerminates(t *testing.T) {
	// Near-parabolic with a tiny cap: the solver must return its best
	// estimate instead of hanging or failing.
	E := SolveKepler(0.1, 0.999, 1e-16, 2)
	if math.IsNaN(E) || math.IsInf(E, 0) {
		t.Fatalf("capped solve returned %f", E)
	}
}

func TestAnomalyConversions(t *testing.T) {
	for _, e := range []float64{0.0001, 0.1, 0.5, 0.9} {
		for ν := 0.0; ν < 2*math.Pi; ν += 0.2 {
			E := EccentricFromTrueAnomaly(ν, e)
			back := TrueAnomalyFromEccentric(E, e)
			if ok, err := anglesEqual(ν, back); !ok {
				t.Fatalf("e=%.4f ν=%.2f: %s", e, ν, err)
			}
			M := MeanFromEccentric(E, e)
			E2 := EccentricAnomaly(M, e)
			if ok, err := anglesEqual(E, E2); !ok {
				t.Fatalf("e=%.4f E=%.2f: %s", e, E, err)
			}
		}
	}
}
