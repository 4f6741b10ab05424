// Package timescale converts civil timestamps into the UT1 and TT Julian
// days the chart formulas consume
//
// UT1 is approximated by UTC, which stays within 0.9 seconds by the leap
// second rule. TT is UT1 plus the delta T polynomial fit per era after
// Espenak and Meeus. The supported civil span is inherited from the
// planetary ephemeris the built in provider's elements were fit against
package timescale

import (
	"math"
	"time"

	"kundali/internal/core/ephem"
	perr "kundali/internal/platform/errors"
)

// Supported civil span, inclusive on both ends
var (
	MinCivil = time.Date(1899, time.July, 29, 0, 0, 0, 0, time.UTC)
	MaxCivil = time.Date(2053, time.October, 9, 0, 0, 0, 0, time.UTC)
)

// InRange reports whether civil lies inside the supported span
func InRange(civil time.Time) bool {
	return !civil.Before(MinCivil) && !civil.After(MaxCivil)
}

// Convert resolves civil into an Instant, failing outside the supported span
func Convert(civil time.Time) (ephem.Instant, error) {
	if !InRange(civil) {
		return ephem.Instant{}, perr.EphemerisRangef(
			"timestamp %s is outside the supported ephemeris span %s to %s",
			civil.UTC().Format(time.RFC3339),
			MinCivil.Format(time.DateOnly),
			MaxCivil.Format(time.DateOnly),
		)
	}
	jd := JulianDay(civil)
	return ephem.Instant{
		Civil:     civil,
		JulianUT1: jd,
		JulianTT:  jd + DeltaT(civil)/86400.0,
	}, nil
}

// JulianDay returns the Julian day for t on the Gregorian calendar
func JulianDay(t time.Time) float64 {
	u := t.UTC()
	y := u.Year()
	m := int(u.Month())
	d := float64(u.Day()) + dayFraction(u)
	if m <= 2 {
		y--
		m += 12
	}
	a := y / 100
	b := 2 - a + a/4
	return math.Floor(365.25*float64(y+4716)) +
		math.Floor(30.6001*float64(m+1)) +
		d + float64(b) - 1524.5
}

func dayFraction(u time.Time) float64 {
	s := float64(u.Second()) + float64(u.Nanosecond())/1e9
	return (float64(u.Hour()) + float64(u.Minute())/60 + s/3600) / 24
}

// DeltaT approximates TT minus UT1 in seconds at the given civil time
// piecewise polynomial fit per era after Espenak and Meeus, covering the
// supported span with continuous joins
func DeltaT(t time.Time) float64 {
	y := decimalYear(t)
	switch {
	case y < 1900:
		u := y - 1860
		return 7.62 + 0.5737*u - 0.251754*u*u + 0.01680668*u*u*u -
			0.0004473624*u*u*u*u + u*u*u*u*u/233174
	case y < 1920:
		u := y - 1900
		return -2.79 + 1.494119*u - 0.0598939*u*u + 0.0061966*u*u*u - 0.000197*u*u*u*u
	case y < 1941:
		u := y - 1920
		return 21.20 + 0.84493*u - 0.076100*u*u + 0.0020936*u*u*u
	case y < 1961:
		u := y - 1950
		return 29.07 + 0.407*u - u*u/233 + u*u*u/2547
	case y < 1986:
		u := y - 1975
		return 45.45 + 1.067*u - u*u/260 - u*u*u/718
	case y < 2005:
		u := y - 2000
		return 63.86 + 0.3345*u - 0.060374*u*u + 0.0017275*u*u*u +
			0.000651814*u*u*u*u + 0.00002373599*u*u*u*u*u
	case y < 2050:
		u := y - 2000
		return 62.92 + 0.32217*u + 0.005589*u*u
	default:
		u := (y - 1820) / 100
		return -20 + 32*u*u - 0.5628*(2150-y)
	}
}

func decimalYear(t time.Time) float64 {
	u := t.UTC()
	return float64(u.Year()) + (float64(int(u.Month()))-0.5)/12
}
