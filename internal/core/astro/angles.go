package astro

import (
	"math"

	"kundali/internal/core/angle"
	perr "kundali/internal/platform/errors"
)

// MaxChartLatitude bounds |latitude| for the ascendant formula
// the formula needs tan(latitude) which is undefined at the poles
const MaxChartLatitude = 90.0

// Cardinals holds the four chart angles in degrees, tropical unless a
// caller has already shifted them sidereal
type Cardinals struct {
	AscDeg  float64
	MCDeg   float64
	DescDeg float64
	ICDeg   float64
}

// ComputeCardinals derives the ascendant and midheaven from the local
// sidereal time taken as RAMC, the geographic latitude and the obliquity
// atan2 keeps the quadrant right across all four quadrants of RAMC, a plain
// tangent form flips 180 degrees at certain latitudes
func ComputeCardinals(ramcDeg, latDeg, oblDeg float64) (Cardinals, error) {
	if math.IsNaN(latDeg) || math.Abs(latDeg) >= MaxChartLatitude {
		return Cardinals{}, perr.PolarLatitudef(
			"latitude %v is outside the computable band, the ascendant is undefined at |latitude| >= %v",
			latDeg, MaxChartLatitude,
		)
	}

	ramc := angle.Rad(ramcDeg)
	eps := angle.Rad(oblDeg)
	phi := angle.Rad(latDeg)

	asc := angle.Deg(math.Atan2(
		math.Cos(ramc),
		-(math.Sin(ramc)*math.Cos(eps) + math.Tan(phi)*math.Sin(eps)),
	))
	mc := angle.Deg(math.Atan2(
		math.Sin(ramc)*math.Cos(eps),
		math.Cos(ramc),
	))

	c := Cardinals{
		AscDeg: angle.Normalize(asc),
		MCDeg:  angle.Normalize(mc),
	}
	c.DescDeg = angle.Normalize(c.AscDeg + 180)
	c.ICDeg = angle.Normalize(c.MCDeg + 180)
	return c, nil
}

// Sidereal shifts all four angles by the ayanamsa
func (c Cardinals) Sidereal(ayanamsaDeg float64) Cardinals {
	return Cardinals{
		AscDeg:  angle.Normalize(c.AscDeg - ayanamsaDeg),
		MCDeg:   angle.Normalize(c.MCDeg - ayanamsaDeg),
		DescDeg: angle.Normalize(c.DescDeg - ayanamsaDeg),
		ICDeg:   angle.Normalize(c.ICDeg - ayanamsaDeg),
	}
}
