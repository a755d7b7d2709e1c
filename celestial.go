package orbital

import "fmt"

// CelestialObject defines the central body of a propagation.
// Only Earth is defined: the trainer never leaves Earth orbit. The J2
// coefficient is declared for completeness but unused by the two-body
// propagator.
type CelestialObject struct {
	Name       string
	Radius     float64 // equatorial radius in km
	MeanRadius float64 // volumetric mean radius in km, used for geodetic conversions
	μ          float64
	tilt       float64 // Axial tilt
	J2         float64
}

// GM returns μ (which is unexported because it's a lowercase letter)
func (c CelestialObject) GM() float64 {
	return c.μ
}

// J returns the perturbing J_n factor for the provided n.
func (c CelestialObject) J(n uint8) float64 {
	if n == 2 {
		return c.J2
	}
	return 0.0
}

// String implements the Stringer interface.
func (c CelestialObject) String() string {
	return c.Name + " body"
}

// Equals returns whether the provided celestial object is the same.
func (c *CelestialObject) Equals(b CelestialObject) bool {
	return c.Name == b.Name && c.Radius == b.Radius && c.μ == b.μ && c.J2 == b.J2
}

// CelestialObjectFromString returns the object from its name.
func CelestialObjectFromString(name string) (CelestialObject, error) {
	if name == "Earth" || name == "earth" {
		return Earth, nil
	}
	return CelestialObject{}, fmt.Errorf("undefined body '%s'", name)
}

/* Definitions */

// Earth is home.
var Earth = CelestialObject{"Earth", 6378.1363, 6371.0, 3.98600433e5, 23.4, 1082.6269e-6}
