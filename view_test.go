package orbital

import (
	"testing"

	"github.com/gonum/floats"
)

func viewOrbit(altitude float64) *Orbit {
	return NewOrbitFromOE(Earth.MeanRadius+altitude, 0, 51.6, 10, 5, 0, testEpoch, Earth)
}

func TestProjectStateLowAltitude(t *testing.T) {
	o := viewOrbit(400)
	vp := ProjectState(o, 0, 0, 1024, 512)
	if vp.Mode != ModeSinusoidal {
		t.Fatalf("expected sinusoidal mode, got %s", vp.Mode)
	}
	if vp.Blend != 0 {
		t.Fatalf("expected zero blend, got %f", vp.Blend)
	}
	want := ProjectSinusoidal(vp.State.Latitude, vp.State.Longitude, 0, 1024, 512)
	if !floats.EqualWithinAbs(vp.Point.X, want.X, 1e-9) || !floats.EqualWithinAbs(vp.Point.Y, want.Y, 1e-9) {
		t.Fatalf("blended point diverged from sinusoidal: %+v vs %+v", vp.Point, want)
	}
}

func TestProjectStateHighAltitude(t *testing.T) {
	o := viewOrbit(10000)
	vp := ProjectState(o, 0, 0, 1024, 512)
	if vp.Mode != ModeOrthographic {
		t.Fatalf("expected orthographic mode, got %s", vp.Mode)
	}
	if vp.Blend != 1 {
		t.Fatalf("expected full blend, got %f", vp.Blend)
	}
	// The view is centered on the nadir, so the satellite sits at the
	// middle of the disk at full scale.
	if !vp.Point.Visible {
		t.Fatal("nadir point must be visible")
	}
	if !floats.EqualWithinAbs(vp.Point.X, 512, 1e-9) || !floats.EqualWithinAbs(vp.Point.Y, 256, 1e-9) {
		t.Fatalf("nadir point off center: %+v", vp.Point)
	}
	if !floats.EqualWithinAbs(vp.Point.Scale, 1, 1e-9) {
		t.Fatalf("nadir scale: %f", vp.Point.Scale)
	}
}

func TestProjectStateTransitionLerp(t *testing.T) {
	o := viewOrbit(2500)
	vp := ProjectState(o, 0, 0, 1024, 512)
	if vp.Mode != ModeTransitioning {
		t.Fatalf("expected transitioning mode, got %s", vp.Mode)
	}
	if vp.Blend <= 0 || vp.Blend >= 1 {
		t.Fatalf("blend out of the open interval: %f", vp.Blend)
	}
	s := vp.State
	sinu := ProjectSinusoidal(s.Latitude, s.Longitude, 0, 1024, 512)
	ortho := ProjectOrthographic(s.Latitude, s.Longitude, s.Latitude, s.Longitude, s.Altitude, 1024, 512)
	if !floats.EqualWithinAbs(vp.Point.X, lerp(sinu.X, ortho.X, vp.Blend), 1e-9) {
		t.Fatalf("X not lerped: %+v", vp.Point)
	}
	if !floats.EqualWithinAbs(vp.Point.Y, lerp(sinu.Y, ortho.Y, vp.Blend), 1e-9) {
		t.Fatalf("Y not lerped: %+v", vp.Point)
	}
	if !vp.Point.Visible {
		t.Fatal("the nadir stays visible through the transition")
	}
}

func TestGenerateOverlayLengths(t *testing.T) {
	o := viewOrbit(400)
	ov := GenerateOverlay(o, 0, 1024, 512, OverlayOptions{NumOrbits: 2, PointsPerOrbit: 30, TerminatorPoints: 24})
	if len(ov.Track) != 60 {
		t.Fatalf("track samples: %d", len(ov.Track))
	}
	if len(ov.Terminator) != 24 {
		t.Fatalf("terminator samples: %d", len(ov.Terminator))
	}
	if ov.Mode != ModeSinusoidal || ov.Blend != 0 {
		t.Fatalf("overlay blend state: %s %f", ov.Mode, ov.Blend)
	}
}

func TestGenerateOverlayDefaults(t *testing.T) {
	o := viewOrbit(400)
	ov := GenerateOverlay(o, 0, 1024, 512, OverlayOptions{})
	cfg := engineConfig()
	if len(ov.Track) != cfg.NumOrbits*cfg.PointsPerOrbit {
		t.Fatalf("default track samples: %d", len(ov.Track))
	}
	if len(ov.Terminator) != cfg.TerminatorPoints {
		t.Fatalf("default terminator samples: %d", len(ov.Terminator))
	}
}
