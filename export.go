package orbital

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/soniakeys/meeus/julian"
)

// ExportGroundTrackCSV writes the ground track of the provided orbit as CSV
// with one row per sample: julian day, latitude, longitude and altitude.
// The sampling mirrors GroundTrack so the rows line up with the overlay.
func ExportGroundTrackCSV(w io.Writer, o *Orbit, numOrbits, pointsPerOrbit int) error {
	out := csv.NewWriter(w)
	if err := out.Write([]string{"jd", "latitude_deg", "longitude_deg", "altitude_km"}); err != nil {
		return err
	}
	step := o.PeriodSeconds() / float64(pointsPerOrbit)
	for k := 0; k < numOrbits*pointsPerOrbit; k++ {
		Δt := float64(k) * step
		s := Propagate(o, Δt)
		jd := julian.TimeToJD(o.Epoch.Add(time.Duration(Δt * float64(time.Second))))
		row := []string{
			strconv.FormatFloat(jd, 'f', 8, 64),
			strconv.FormatFloat(s.Latitude, 'f', 6, 64),
			strconv.FormatFloat(s.Longitude, 'f', 6, 64),
			strconv.FormatFloat(s.Altitude, 'f', 3, 64),
		}
		if err := out.Write(row); err != nil {
			return err
		}
	}
	out.Flush()
	return out.Error()
}
