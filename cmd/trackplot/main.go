package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	kitlog "github.com/go-kit/kit/log"

	orbital "github.com/growthwithcoding/TR41-GroundCTRL-sub005"
)

// trackplot reads an orbit scenario, generates the ground track and
// terminator overlay, and writes them as an SVG world map and a CSV table.

const defaultScenario = "~~unset~~"

var (
	scenario  string
	elapsed   float64
	width     float64
	height    float64
	centerLon float64
	outPrefix string
)

func init() {
	flag.StringVar(&scenario, "scenario", defaultScenario, "orbit scenario TOML file")
	flag.Float64Var(&elapsed, "elapsed", 0, "seconds past the scenario epoch")
	flag.Float64Var(&width, "width", 1024, "canvas width in pixels")
	flag.Float64Var(&height, "height", 512, "canvas height in pixels")
	flag.Float64Var(&centerLon, "meridian", 0, "central meridian of the sinusoidal view, degrees")
	flag.StringVar(&outPrefix, "out", "", "output file prefix (defaults to the scenario name)")
}

func main() {
	flag.Parse()
	logger := kitlog.With(kitlog.NewLogfmtLogger(os.Stderr), "cmd", "trackplot")
	if scenario == defaultScenario {
		logger.Log("err", "no scenario provided")
		os.Exit(1)
	}
	o, opts, err := loadScenario(scenario)
	if err != nil {
		logger.Log("scenario", scenario, "err", err)
		os.Exit(1)
	}
	opts.CenterLon = centerLon
	if outPrefix == "" {
		outPrefix = strings.Replace(scenario, ".toml", "", 1)
	}

	logger.Log("orbit", o.String(), "period", o.Period())

	vp := orbital.ProjectState(o, elapsed, centerLon, width, height)
	ov := orbital.GenerateOverlay(o, elapsed, width, height, opts)
	logger.Log("mode", ov.Mode, "blend", fmt.Sprintf("%.3f", ov.Blend),
		"lat", fmt.Sprintf("%.3f", vp.State.Latitude),
		"lon", fmt.Sprintf("%.3f", vp.State.Longitude),
		"alt", fmt.Sprintf("%.1f", vp.State.Altitude))

	svgName := outPrefix + ".svg"
	if err := os.WriteFile(svgName, []byte(orbital.OverlaySVG(ov, vp, width, height)), 0644); err != nil {
		logger.Log("file", svgName, "err", err)
		os.Exit(1)
	}
	csvName := outPrefix + ".csv"
	f, err := os.Create(csvName)
	if err != nil {
		logger.Log("file", csvName, "err", err)
		os.Exit(1)
	}
	defer f.Close()
	if err := orbital.ExportGroundTrackCSV(f, o, opts.NumOrbits, opts.PointsPerOrbit); err != nil {
		logger.Log("file", csvName, "err", err)
		os.Exit(1)
	}
	logger.Log("svg", svgName, "csv", csvName)
}
