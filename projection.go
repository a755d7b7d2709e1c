package orbital

import "math"

// ScreenPoint is the result of projecting a geodetic point onto a canvas.
// X and Y are in pixels with the origin at the top left corner (screen
// convention, y grows downward). Visible reports whether the point lies
// inside the projection's domain; an invisible point still carries the
// raw projected coordinates. Scale is the local foreshortening factor,
// handy when sizing markers.
type ScreenPoint struct {
	X, Y    float64
	Visible bool
	Scale   float64
}

// Mode tags which projection(s) the rendering layer should evaluate for
// a given altitude.
type Mode uint8

const (
	// ModeSinusoidal is the low-altitude flat map view.
	ModeSinusoidal Mode = iota + 1
	// ModeTransitioning means both projections apply, cross-faded by ViewBlend.
	ModeTransitioning
	// ModeOrthographic is the high-altitude space view.
	ModeOrthographic
)

func (m Mode) String() string {
	switch m {
	case ModeSinusoidal:
		return "sinusoidal"
	case ModeTransitioning:
		return "transitioning"
	case ModeOrthographic:
		return "orthographic"
	default:
		return "unknown"
	}
}

// wrapΔλ wraps a longitude difference into [-π, π].
func wrapΔλ(Δλ float64) float64 {
	m := math.Mod(Δλ+math.Pi, 2*math.Pi)
	if m < 0 {
		m += 2 * math.Pi
	}
	return m - math.Pi
}

// mapRadius returns the pixel radius which fits a whole sinusoidal map
// (2π wide, π tall) on the canvas.
func mapRadius(width, height float64) float64 {
	return math.Min(width/(2*math.Pi), height/math.Pi)
}

// ProjectSinusoidal projects a geodetic point (degrees) onto a sinusoidal
// (equal-area pseudocylindrical) map centered on the centerLon meridian.
// Every latitude/longitude maps somewhere on this projection, so the
// result is always visible.
func ProjectSinusoidal(lat, lon, centerLon, width, height float64) ScreenPoint {
	φ := lat * deg2rad
	Δλ := wrapΔλ((lon - centerLon) * deg2rad)
	r := mapRadius(width, height)
	return ScreenPoint{
		X:       width/2 + r*Δλ*math.Cos(φ),
		Y:       height/2 - r*φ,
		Visible: true,
		Scale:   1,
	}
}

// SinusoidalInverse returns the geodetic point (degrees) under the given
// pixel, or ok=false when the pixel lies outside the map: above ±90°
// latitude, or beyond the cosine lobe at that latitude. At the poles the
// meridian scale collapses, so the central meridian is returned rather
// than dividing by a vanishing cos(φ).
func SinusoidalInverse(x, y, centerLon, width, height float64) (lat, lon float64, ok bool) {
	r := mapRadius(width, height)
	φ := (height/2 - y) / r
	// The tolerance keeps the pole row itself invertible despite rounding.
	if math.Abs(φ) > math.Pi/2+1e-12 {
		return 0, 0, false
	}
	cosφ := math.Cos(φ)
	if cosφ < 1e-10 {
		// Pole: every x collapses onto the central meridian.
		return φ / deg2rad, centerLon, true
	}
	Δλ := (x - width/2) / (r * cosφ)
	if math.Abs(Δλ) > math.Pi {
		return 0, 0, false
	}
	return φ / deg2rad, wrapΔλ(centerLon*deg2rad+Δλ) / deg2rad, true
}

// ProjectOrthographic projects a geodetic point (degrees) onto an
// orthographic space view centered on the satellite nadir
// (centerLat, centerLon). Visibility is two-stage: points on the far
// hemisphere are invisible, and so are near-hemisphere points beyond the
// satellite's sensing horizon asin(R/(R+altitude)). A higher altitude
// therefore widens the visible disk, asymptotically up to the full
// hemisphere. Scale carries the cosine foreshortening toward the limb.
func ProjectOrthographic(lat, lon, centerLat, centerLon, altitude, width, height float64) ScreenPoint {
	φ := lat * deg2rad
	φ0 := centerLat * deg2rad
	Δλ := wrapΔλ((lon - centerLon) * deg2rad)
	sinφ, cosφ := math.Sincos(φ)
	sinφ0, cosφ0 := math.Sincos(φ0)
	sinΔλ, cosΔλ := math.Sincos(Δλ)

	// Cosine of the angular distance from the view center.
	cosc := sinφ0*sinφ + cosφ0*cosφ*cosΔλ

	visible := cosc >= 0
	if visible {
		// Beyond the horizon circle the ground point cannot see the
		// satellite (and vice versa): cos(π/2 - horizonAngle) = R/(R+alt).
		visible = cosc >= Earth.MeanRadius/(Earth.MeanRadius+altitude)
	}

	r := diskRadius(width, height)
	return ScreenPoint{
		X:       width/2 + r*cosφ*sinΔλ,
		Y:       height/2 - r*(cosφ0*sinφ-sinφ0*cosφ*cosΔλ),
		Visible: visible,
		Scale:   math.Max(cosc, 0),
	}
}

// OrthographicInverse returns the geodetic point (degrees) under the given
// pixel of an orthographic view, or ok=false when the pixel falls outside
// the projected Earth disk.
func OrthographicInverse(x, y, centerLat, centerLon, width, height float64) (lat, lon float64, ok bool) {
	r := diskRadius(width, height)
	dx := x - width/2
	dy := height/2 - y
	ρ := math.Hypot(dx, dy)
	if ρ > r {
		return 0, 0, false
	}
	φ0 := centerLat * deg2rad
	sinφ0, cosφ0 := math.Sincos(φ0)
	if ρ == 0 {
		return centerLat, centerLon, true
	}
	c := math.Asin(ρ / r)
	sinc, cosc := math.Sincos(c)
	φ := math.Asin(cosc*sinφ0 + dy*sinc*cosφ0/ρ)
	λ := centerLon*deg2rad + math.Atan2(dx*sinc, ρ*cosc*cosφ0-dy*sinc*sinφ0)
	return φ / deg2rad, wrapΔλ(λ) / deg2rad, true
}

// diskRadius returns the pixel radius of the projected Earth disk.
func diskRadius(width, height float64) float64 {
	return math.Min(width, height) / 2
}

// ProjectEquirectangular is the trivial plate carrée mapping of the whole
// globe onto the canvas. It is bijective and always visible, which makes
// it the projection-agnostic intermediate for texture sampling.
func ProjectEquirectangular(lat, lon, width, height float64) ScreenPoint {
	return ScreenPoint{
		X:       (wrapΔλ(lon*deg2rad)/deg2rad + 180) / 360 * width,
		Y:       (90 - lat) / 180 * height,
		Visible: true,
		Scale:   1,
	}
}

// EquirectangularInverse inverts ProjectEquirectangular. Pixels outside the
// canvas have no geodetic preimage.
func EquirectangularInverse(x, y, width, height float64) (lat, lon float64, ok bool) {
	if x < 0 || x > width || y < 0 || y > height {
		return 0, 0, false
	}
	return 90 - y/height*180, x/width*360 - 180, true
}

// ViewBlend returns the sinusoidal-to-orthographic blend weight for the
// given altitude (km): exactly 0 at or below the start threshold, exactly 1
// at or above the end threshold, and a smoothstep (3t² - 2t³) in between.
// Continuous and monotone non-decreasing across the band.
func ViewBlend(altitude float64) float64 {
	cfg := engineConfig()
	t := (altitude - cfg.BlendStartKm) / (cfg.BlendEndKm - cfg.BlendStartKm)
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return t * t * (3 - 2*t)
}

// ProjectionMode classifies the altitude against the same thresholds as
// ViewBlend, so the tag and the weight can never drift apart.
func ProjectionMode(altitude float64) Mode {
	cfg := engineConfig()
	switch {
	case altitude <= cfg.BlendStartKm:
		return ModeSinusoidal
	case altitude >= cfg.BlendEndKm:
		return ModeOrthographic
	default:
		return ModeTransitioning
	}
}
