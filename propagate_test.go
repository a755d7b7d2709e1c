package orbital

import (
	"math"
	"testing"
	"time"

	"github.com/gonum/floats"
)

// issOrbit is the canonical trainer scenario: a near-circular 400 km LEO.
func issOrbit() *Orbit {
	return NewOrbitFromOE(6771, 0.0001, 51.6, 0, 0, 0, time.Unix(0, 0).UTC(), Earth)
}

func TestPropagateQuarterPeriod(t *testing.T) {
	o := issOrbit()
	s := Propagate(o, o.PeriodSeconds()/4)
	if !floats.EqualWithinAbs(s.TrueAnomaly(), 90, 0.1) {
		t.Fatalf("true anomaly after a quarter period: %f", s.TrueAnomaly())
	}
	if !floats.EqualWithinAbs(s.Altitude, 400, 5) {
		t.Fatalf("altitude after a quarter period: %f", s.Altitude)
	}
}

func TestPropagateFullPeriod(t *testing.T) {
	o := issOrbit()
	s := Propagate(o, o.PeriodSeconds())
	if ok, err := anglesEqual(0, s.ν); !ok {
		t.Fatalf("true anomaly after one period: %s", err)
	}
	if !floats.EqualWithinAbs(norm(s.R), o.RNorm(), 1) {
		t.Fatalf("radius after one period: %f vs %f", norm(s.R), o.RNorm())
	}
}

func TestPropagateZeroOffsetMatchesEpochVectors(t *testing.T) {
	o := NewOrbitFromOE(36126.64283, 0.83280, 87.874925, 227.891253, 53.378089, 92.335027, testEpoch, Earth)
	s := Propagate(o, 0)
	if !vectorsEqual(s.R, o.R()) {
		t.Fatalf("R mismatch at Δt=0:\n%+v\n%+v", s.R, o.R())
	}
	if !vectorsEqual(s.V, o.V()) {
		t.Fatalf("V mismatch at Δt=0:\n%+v\n%+v", s.V, o.V())
	}
}

func TestPropagateVisViva(t *testing.T) {
	o := issOrbit()
	for _, frac := range []float64{0, 0.1, 0.25, 0.62, 0.97} {
		s := Propagate(o, frac*o.PeriodSeconds())
		expected := math.Sqrt(2*(Earth.GM()/norm(s.R)) - Earth.GM()/6771)
		if !floats.EqualWithinRel(norm(s.V), expected, 1e-6) {
			t.Fatalf("frac=%.2f: |V|=%f, vis-viva says %f", frac, norm(s.V), expected)
		}
	}
}

func TestPropagateGeodeticBounds(t *testing.T) {
	o := issOrbit()
	step := o.PeriodSeconds() / 64
	for k := 0; k < 64*2; k++ {
		s := Propagate(o, float64(k)*step)
		if math.Abs(s.Latitude) > 51.7 {
			t.Fatalf("latitude %f exceeds the inclination", s.Latitude)
		}
		if s.Longitude < -180 || s.Longitude > 180 {
			t.Fatalf("longitude %f out of range", s.Longitude)
		}
		if s.Altitude < 390 || s.Altitude > 410 {
			t.Fatalf("near-circular altitude drifted to %f", s.Altitude)
		}
	}
}

func TestGMSTReferenceEpoch(t *testing.T) {
	// At J2000.0 (2000-01-01 12:00 UT) GMST is 280.46062 degrees.
	θ := GMST(time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC))
	if !floats.EqualWithinAbs(Rad2deg(θ), 280.46062, 1e-4) {
		t.Fatalf("GMST at J2000: %f degrees", Rad2deg(θ))
	}
	// One sidereal day later the angle must come back around.
	θ2 := GMST(time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC).Add(time.Duration(86164.0905 * float64(time.Second))))
	if ok, err := anglesEqual(θ, θ2); !ok {
		t.Fatalf("GMST not periodic over a sidereal day: %s", err)
	}
}
