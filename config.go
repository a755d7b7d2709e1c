package orbital

import (
	"os"
	"sync"

	"github.com/spf13/viper"
)

var (
	cfgOnce sync.Once
	config  _engineconfig
)

// _engineconfig is a "hidden" struct, just use `engineConfig`.
// It only carries policy knobs: the physical constants stay compile-time.
type _engineconfig struct {
	BlendStartKm        float64 // altitude where the sinusoidal view starts fading
	BlendEndKm          float64 // altitude where the orthographic view fully takes over
	KeplerTolerance     float64
	KeplerMaxIterations int
	PointsPerOrbit      int // default ground track sampling resolution
	NumOrbits           int // default number of orbits in a ground track
	TerminatorPoints    int // default day/night boundary resolution
}

// engineConfig returns the engine configuration. Defaults apply when the
// `GROUNDCTRL_CONFIG` environment variable is unset or no conf.toml is found:
// unlike physical constants, the blend thresholds are presentation policy and
// may legitimately be tuned per deployment.
func engineConfig() _engineconfig {
	cfgOnce.Do(func() {
		v := viper.New()
		v.SetDefault("blend.start_km", 2000.0)
		v.SetDefault("blend.end_km", 3000.0)
		v.SetDefault("kepler.tolerance", KeplerTolerance)
		v.SetDefault("kepler.max_iterations", KeplerMaxIterations)
		v.SetDefault("overlay.points_per_orbit", 90)
		v.SetDefault("overlay.num_orbits", 3)
		v.SetDefault("overlay.terminator_points", 180)

		if confPath := os.Getenv("GROUNDCTRL_CONFIG"); confPath != "" {
			v.SetConfigName("conf")
			v.AddConfigPath(confPath)
			// A missing or broken file silently keeps the defaults.
			_ = v.ReadInConfig()
		}

		config = _engineconfig{
			BlendStartKm:        v.GetFloat64("blend.start_km"),
			BlendEndKm:          v.GetFloat64("blend.end_km"),
			KeplerTolerance:     v.GetFloat64("kepler.tolerance"),
			KeplerMaxIterations: v.GetInt("kepler.max_iterations"),
			PointsPerOrbit:      v.GetInt("overlay.points_per_orbit"),
			NumOrbits:           v.GetInt("overlay.num_orbits"),
			TerminatorPoints:    v.GetInt("overlay.terminator_points"),
		}
	})
	return config
}
