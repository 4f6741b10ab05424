package astro

import "kundali/internal/core/angle"

// PrecessLongitude shifts a J2000 ecliptic longitude onto the mean equinox
// of date, general precession in longitude per IAU 1976. t is Julian
// centuries of TT since J2000
func PrecessLongitude(lonDeg, t float64) float64 {
	return angle.Normalize(lonDeg + (5029.0966*t+1.11113*t*t)/3600)
}
