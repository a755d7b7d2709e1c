package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	kitlog "github.com/go-kit/kit/log"
	"github.com/spf13/viper"

	orbital "github.com/growthwithcoding/TR41-GroundCTRL-sub005"
)

// statevec propagates a scenario orbit and prints the resulting state
// vectors, geodetic point, and view blend classification.

const (
	defaultScenario = "~~unset~~"
	dateFormat      = "2006-01-02 15:04:05"
)

var (
	scenario string
	elapsed  float64
)

func init() {
	flag.StringVar(&scenario, "scenario", defaultScenario, "orbit scenario TOML file")
	flag.Float64Var(&elapsed, "elapsed", 0, "seconds past the scenario epoch")
}

func main() {
	flag.Parse()
	logger := kitlog.With(kitlog.NewLogfmtLogger(os.Stderr), "cmd", "statevec")
	if scenario == defaultScenario {
		logger.Log("err", "no scenario provided")
		os.Exit(1)
	}

	v := viper.New()
	v.SetConfigName(strings.Replace(scenario, ".toml", "", 1))
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		logger.Log("scenario", scenario, "err", err)
		os.Exit(1)
	}
	epoch := time.Now().UTC()
	if raw := v.GetString("orbit.epoch"); raw != "" {
		parsed, err := time.Parse(dateFormat, raw)
		if err != nil {
			logger.Log("scenario", scenario, "err", err)
			os.Exit(1)
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

	s := orbital.Propagate(o, elapsed)
	fmt.Printf("orbit:    %s\n", o)
	fmt.Printf("period:   %s\n", o.Period())
	fmt.Printf("epoch+Δt: %s\n", epoch.Add(time.Duration(elapsed*float64(time.Second))).Format(dateFormat))
	fmt.Printf("R (km):   [%.3f %.3f %.3f]\n", s.R[0], s.R[1], s.R[2])
	fmt.Printf("V (km/s): [%.6f %.6f %.6f]\n", s.V[0], s.V[1], s.V[2])
	fmt.Printf("geodetic: %s\n", s)
	fmt.Printf("view:     mode=%s blend=%.3f\n", orbital.ProjectionMode(s.Altitude), orbital.ViewBlend(s.Altitude))
}
