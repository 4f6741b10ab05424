package kepler

import (
	"math"

	"kundali/internal/core/angle"
)

const auKM = 149597870.7

// moonPosition returns the geocentric ecliptic longitude and latitude of
// date in degrees plus the distance in au, t in centuries TT
//
// Truncated lunar theory over the mean elements: the leading equation of
// the centre terms plus evection, variation, the annual equation and the
// larger second order corrections. Worst case error stays under a quarter
// degree in longitude which holds sign and house boundaries except within
// that band of a cusp
func moonPosition(t float64) (lonDeg, latDeg, distAU float64) {
	// mean longitude, elongation, solar and lunar anomalies, latitude argument
	lp := angle.Normalize(218.3164477 + 481267.88123421*t - 0.0015786*t*t)
	d := angle.Rad(angle.Normalize(297.8501921 + 445267.1114034*t - 0.0018819*t*t))
	m := angle.Rad(angle.Normalize(357.5291092 + 35999.0502909*t))
	mp := angle.Rad(angle.Normalize(134.9633964 + 477198.8675055*t + 0.0087414*t*t))
	f := angle.Rad(angle.Normalize(93.2720950 + 483202.0175233*t - 0.0036539*t*t))

	lon := lp +
		6.288774*math.Sin(mp) +
		1.274027*math.Sin(2*d-mp) +
		0.658314*math.Sin(2*d) +
		0.213618*math.Sin(2*mp) -
		0.185116*math.Sin(m) -
		0.114332*math.Sin(2*f) +
		0.058793*math.Sin(2*d-2*mp) +
		0.057066*math.Sin(2*d-m-mp) +
		0.053322*math.Sin(2*d+mp) +
		0.045758*math.Sin(2*d-m) -
		0.040923*math.Sin(m-mp) -
		0.034720*math.Sin(d) -
		0.030383*math.Sin(m+mp)

	lat := 5.128122*math.Sin(f) +
		0.280602*math.Sin(mp+f) +
		0.277693*math.Sin(mp-f) +
		0.173237*math.Sin(2*d-f) +
		0.055413*math.Sin(2*d+f-mp) +
		0.046271*math.Sin(2*d-f-mp)

	distKM := 385000.56 -
		20905.355*math.Cos(mp) -
		3699.111*math.Cos(2*d-mp) -
		2955.968*math.Cos(2*d) -
		569.925*math.Cos(2*mp)

	return angle.Normalize(lon), lat, distKM / auKM
}
