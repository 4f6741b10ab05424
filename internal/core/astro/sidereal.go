package astro

import (
	"math"

	"kundali/internal/core/angle"
	perr "kundali/internal/platform/errors"
)

// GMST returns Greenwich mean sidereal time in degrees for a UT1 Julian day
func GMST(jdUT1 float64) float64 {
	d := jdUT1 - J2000
	t := Centuries(jdUT1)
	g := 280.46061837 + 360.98564736629*d + 0.000387933*t*t - t*t*t/38710000.0
	return angle.Normalize(g)
}

// LST returns local sidereal time in degrees at an east positive longitude
// the wrap runs in the hour domain, matching the conventional sidereal time
// definition and keeping rounding quiet near the 0/360 boundary
func LST(jdUT1, lonDeg float64) (float64, error) {
	if math.IsNaN(lonDeg) || math.IsInf(lonDeg, 0) {
		return 0, perr.InvalidArgf("longitude must be finite, got %v", lonDeg)
	}
	h := angle.NormalizeHours(GMST(jdUT1)/15 + lonDeg/15)
	return h * 15, nil
}
