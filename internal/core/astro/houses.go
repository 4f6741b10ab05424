package astro

import (
	"kundali/internal/core/angle"
	perr "kundali/internal/platform/errors"
)

// HouseSystem selects how the twelve cusps are derived from the cardinals
type HouseSystem string

// Supported house systems
const (
	// HouseEqual spaces all cusps 30 degrees from the ascendant
	HouseEqual HouseSystem = "equal"
	// HouseSripati trisects each quadrant between consecutive cardinals
	HouseSripati HouseSystem = "sripati"
)

// HouseSystems returns the supported systems in display order
func HouseSystems() []HouseSystem {
	return []HouseSystem{HouseEqual, HouseSripati}
}

// ParseHouseSystem validates a system name from config or a request
func ParseHouseSystem(s string) (HouseSystem, error) {
	switch HouseSystem(s) {
	case HouseEqual:
		return HouseEqual, nil
	case HouseSripati:
		return HouseSripati, nil
	}
	return "", perr.InvalidArgf("unknown house system %q, want one of %v", s, HouseSystems())
}

// Cusps returns the twelve house cusps for the cardinal angles under system
// index 0 holds house 1
func Cusps(system HouseSystem, c Cardinals) ([12]float64, error) {
	switch system {
	case HouseEqual:
		return equalCusps(c.AscDeg), nil
	case HouseSripati:
		return sripatiCusps(c), nil
	}
	return [12]float64{}, perr.InvalidArgf("unknown house system %q", system)
}

func equalCusps(ascDeg float64) [12]float64 {
	var out [12]float64
	for i := range out {
		out[i] = angle.Normalize(ascDeg + float64(i)*30)
	}
	return out
}

// sripatiCusps pins houses 1, 4, 7 and 10 to the ascendant, imum coeli,
// descendant and midheaven, then trisects each quadrant along its forward
// arc so cusps stay on the right side of 0 Aries when a quadrant straddles it
func sripatiCusps(c Cardinals) [12]float64 {
	var out [12]float64
	out[0] = angle.Normalize(c.AscDeg)
	out[3] = angle.Normalize(c.ICDeg)
	out[6] = angle.Normalize(c.DescDeg)
	out[9] = angle.Normalize(c.MCDeg)

	trisect(&out, 0, 3)
	trisect(&out, 3, 6)
	trisect(&out, 6, 9)
	trisect(&out, 9, 0)
	return out
}

// trisect fills the two cusps after corner a on the forward arc toward
// corner b
func trisect(cusps *[12]float64, a, b int) {
	arc := angle.ForwardArc(cusps[a], cusps[b])
	cusps[a+1] = angle.Normalize(cusps[a] + arc/3)
	cusps[a+2] = angle.Normalize(cusps[a] + 2*arc/3)
}
