package astro

import (
	"kundali/internal/core/angle"
	perr "kundali/internal/platform/errors"
)

// HouseOf returns the 1 based house whose forward arc
// [cusp[i], cusp[i+1]) contains the sidereal longitude, handling arcs that
// cross 0 Aries
// exactly one house matches for any longitude when the cusp ring is intact,
// if none does the function returns house 1 together with an invariant
// error so callers can log the breach and still serve the chart
func HouseOf(lonDeg float64, cusps [12]float64) (int, error) {
	lon := angle.Normalize(lonDeg)
	for i := 0; i < 12; i++ {
		if angle.OnForwardArc(lon, cusps[i], cusps[(i+1)%12]) {
			return i + 1, nil
		}
	}
	return 1, perr.Invariantf("longitude %.6f matched no cusp arc in %v", lon, cusps)
}
