package orbital

import "time"

// ViewPoint couples a projected satellite position with the blend state the
// rendering layer needs to compose the two map views.
type ViewPoint struct {
	Point ScreenPoint
	Mode  Mode
	Blend float64 // 0 = pure sinusoidal, 1 = pure orthographic
	State State
}

// Overlay is the static geometry drawn under the satellite marker: the
// projected ground track, the day/night terminator, and the blend state
// they were projected with.
type Overlay struct {
	Track      []ScreenPoint
	Terminator []ScreenPoint
	Mode       Mode
	Blend      float64
}

// OverlayOptions control overlay sampling. The zero value picks the
// configured defaults.
type OverlayOptions struct {
	NumOrbits        int
	PointsPerOrbit   int
	TerminatorPoints int
	CenterLon        float64 // central meridian of the sinusoidal view, degrees
}

func (opts OverlayOptions) withDefaults() OverlayOptions {
	cfg := engineConfig()
	if opts.NumOrbits == 0 {
		opts.NumOrbits = cfg.NumOrbits
	}
	if opts.PointsPerOrbit == 0 {
		opts.PointsPerOrbit = cfg.PointsPerOrbit
	}
	if opts.TerminatorPoints == 0 {
		opts.TerminatorPoints = cfg.TerminatorPoints
	}
	return opts
}

// ProjectState propagates the orbit by Δt seconds and projects the
// sub-satellite point onto the canvas under the altitude-selected
// projection. In the transition band the sinusoidal and orthographic
// positions are lerped by the blend weight; renderers which prefer an
// opacity cross-fade can instead evaluate both projections themselves,
// using Mode and Blend.
func ProjectState(o *Orbit, Δt, centerLon, width, height float64) ViewPoint {
	s := Propagate(o, Δt)
	w := ViewBlend(s.Altitude)
	return ViewPoint{
		Point: projectBlended(s.Latitude, s.Longitude, s, w, centerLon, width, height),
		Mode:  ProjectionMode(s.Altitude),
		Blend: w,
		State: s,
	}
}

// GenerateOverlay builds the overlay geometry for the orbit at Δt seconds
// past epoch: the ground track over the configured number of orbits and the
// terminator at the wall-clock time of the view, both projected the same
// way as ProjectState so the layers line up.
func GenerateOverlay(o *Orbit, Δt, width, height float64, opts OverlayOptions) Overlay {
	opts = opts.withDefaults()
	view := Propagate(o, Δt)
	w := ViewBlend(view.Altitude)

	track := GroundTrack(o, opts.NumOrbits, opts.PointsPerOrbit)
	projected := make([]ScreenPoint, len(track))
	for k, pt := range track {
		projected[k] = projectBlended(pt.Latitude, pt.Longitude, view, w, opts.CenterLon, width, height)
	}

	boundary := Terminator(o.Epoch.Add(time.Duration(Δt*float64(time.Second))), opts.TerminatorPoints)
	terminator := make([]ScreenPoint, len(boundary))
	for k, pt := range boundary {
		terminator[k] = projectBlended(pt.Latitude, pt.Longitude, view, w, opts.CenterLon, width, height)
	}

	return Overlay{
		Track:      projected,
		Terminator: terminator,
		Mode:       ProjectionMode(view.Altitude),
		Blend:      w,
	}
}

// projectBlended projects one geodetic point under the current blend state.
// The orthographic view is always centered on the nadir of the view state.
// While transitioning, positions are lerped and a point stays visible only
// where both projections can show it.
func projectBlended(lat, lon float64, view State, w float64, centerLon, width, height float64) ScreenPoint {
	if w <= 0 {
		return ProjectSinusoidal(lat, lon, centerLon, width, height)
	}
	ortho := ProjectOrthographic(lat, lon, view.Latitude, view.Longitude, view.Altitude, width, height)
	if w >= 1 {
		return ortho
	}
	sinu := ProjectSinusoidal(lat, lon, centerLon, width, height)
	return ScreenPoint{
		X:       lerp(sinu.X, ortho.X, w),
		Y:       lerp(sinu.Y, ortho.Y, w),
		Visible: sinu.Visible && ortho.Visible,
		Scale:   lerp(sinu.Scale, ortho.Scale, w),
	}
}
