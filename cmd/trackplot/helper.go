package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	orbital "github.com/growthwithcoding/TR41-GroundCTRL-sub005"
)

const dateFormat = "2006-01-02 15:04:05"

// loadScenario reads the orbit and overlay sampling from a scenario TOML file:
//
//	[orbit]
//	sma = 6771.0      # km
//	ecc = 0.0001
//	inc = 51.6        # degrees
//	raan = 0.0
//	argp = 0.0
//	nu = 0.0
//	epoch = "2026-08-26 00:00:00"  # UTC
//
//	[overlay]
//	orbits = 3
//	points_per_orbit = 120
//	terminator_points = 180
func loadScenario(path string) (*orbital.Orbit, orbital.OverlayOptions, error) {
	v := viper.New()
	v.SetConfigName(strings.Replace(path, ".toml", "", 1))
	v.AddConfigPath(".")
	v.SetDefault("overlay.orbits", 3)
	v.SetDefault("overlay.points_per_orbit", 120)
	v.SetDefault("overlay.terminator_points", 180)
	if err := v.ReadInConfig(); err != nil {
		return nil, orbital.OverlayOptions{}, err
	}

	epoch := time.Now().UTC()
	if raw := v.GetString("orbit.epoch"); raw != "" {
		parsed, err := time.Parse(dateFormat, raw)
		if err != nil {
			return nil, orbital.OverlayOptions{}, fmt.Errorf("invalid orbit.epoch: %s", err)
		}
		epoch = parsed
	}

	o := orbital.NewOrbitFromOE(
		v.GetFloat64("orbit.sma"),
		v.GetFloat64("orbit.ecc"),
		v.GetFloat64("orbit.inc"),
		v.GetFloat64("orbit.raan"),
		v.GetFloat64("orbit.argp"),
		v.GetFloat64("orbit.nu"),
		epoch,
		orbital.Earth,
	)
	opts := orbital.OverlayOptions{
		NumOrbits:        v.GetInt("overlay.orbits"),
		PointsPerOrbit:   v.GetInt("overlay.points_per_orbit"),
		TerminatorPoints: v.GetInt("overlay.terminator_points"),
	}
	return o, opts, nil
}
