package orbital

import (
	"math"
	"time"

	"github.com/soniakeys/meeus/julian"
)

const j2000 = 2451545.0

// GMST returns the Greenwich Mean Sidereal Time in radians at the given UTC time.
// Uses the IAU-82 model (Vallado Eq 3-47): the result is computed in seconds of
// time from Julian centuries of UT1 past J2000.0, then normalized to [0, 2π).
func GMST(dt time.Time) float64 {
	tUT1 := (julian.TimeToJD(dt.UTC()) - j2000) / 36525.0
	// 876600 hours = 3155760000 seconds.
	gmstSec := 67310.54841 +
		(3155760000.0+8640184.812866)*tUT1 +
		0.093104*math.Pow(tUT1, 2) -
		6.2e-6*math.Pow(tUT1, 3)
	gmstSec = math.Mod(gmstSec, 86400)
	if gmstSec < 0 {
		gmstSec += 86400
	}
	return gmstSec * (2 * math.Pi) / 86400
}
