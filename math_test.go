package orbital

import (
	"math"
	"testing"

	"github.com/gonum/floats"
)

func TestCross(t *testing.T) {
	i := []float64{1, 0, 0}
	j := []float64{0, 1, 0}
	k := []float64{0, 0, 1}
	if !vectorsEqual(cross(i, j), k) {
		t.Fatal("i x j != k")
	}
	if !vectorsEqual(cross(j, k), i) {
		t.Fatal("j x k != i")
	}
	if !vectorsEqual(cross([]float64{2, 3, 4}, []float64{5, 6, 7}), []float64{-3, 6, -3}) {
		t.Fatal("cross fail")
	}
	// From Vallado
	if !vectorsEqual(cross([]float64{6524.834, 6862.875, 6448.296}, []float64{4.901327, 5.533756, -1.976341}), []float64{-4.924667792015100e4, 4.450050424118601e4, 0.246964476137900e4}) {
		t.Fatal("cross fail")
	}
}

func TestNormUnitDot(t *testing.T) {
	v := []float64{3, 4, 0}
	if !floats.EqualWithinAbs(norm(v), 5, 1e-12) {
		t.Fatalf("norm=%f", norm(v))
	}
	if !vectorsEqual(unit(v), []float64{0.6, 0.8, 0}) {
		t.Fatal("unit fail")
	}
	if !vectorsEqual(unit([]float64{0, 0, 0}), []float64{0, 0, 0}) {
		t.Fatal("unit of nil vector must be nil")
	}
	if !floats.EqualWithinAbs(dot([]float64{1, 2, 3}, []float64{4, -5, 6}), 12, 1e-12) {
		t.Fatal("dot fail")
	}
	if sign(-3) != -1 || sign(3) != 1 || sign(0) != 1 {
		t.Fatal("sign fail")
	}
}

func TestDegRad(t *testing.T) {
	for _, deg := range []float64{0, 30, 90, 180, 270, 359.5} {
		if !floats.EqualWithinAbs(Rad2deg(Deg2rad(deg)), deg, 1e-10) {
			t.Fatalf("deg=%f does not round trip", deg)
		}
	}
	if !floats.EqualWithinAbs(Deg2rad(-90), 1.5*math.Pi, 1e-12) {
		t.Fatal("negative degrees must wrap positive")
	}
	if !floats.EqualWithinAbs(Rad2deg(-math.Pi/2), 270, 1e-12) {
		t.Fatal("negative radians must wrap positive")
	}
}

func TestSphericalCartesian(t *testing.T) {
	a := []float64{7000, math.Pi / 3, math.Pi / 5}
	if !vectorsEqual(Cartesian2Spherical(Spherical2Cartesian(a)), a) {
		t.Fatal("spherical <-> cartesian round trip fail")
	}
	if !vectorsEqual(Spherical2Cartesian([]float64{0, 0, 0}), []float64{0, 0, 0}) {
		t.Fatal("zero spherical vector fail")
	}
}

func TestLerp(t *testing.T) {
	if lerp(2, 4, 0) != 2 || lerp(2, 4, 1) != 4 || lerp(2, 4, 0.5) != 3 {
		t.Fatal("lerp fail")
	}
}
