// Package zodiac maps ecliptic longitudes onto the twelve sidereal signs
package zodiac

import (
	"math"

	"kundali/internal/core/angle"
)

// Sign identifies one of the twelve signs, zero based from Aries
type Sign int

// Signs in zodiacal order, each spanning 30 degrees
const (
	Aries Sign = iota
	Taurus
	Gemini
	Cancer
	Leo
	Virgo
	Libra
	Scorpio
	Sagittarius
	Capricorn
	Aquarius
	Pisces
)

var names = [...]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// SignOf returns the sign containing the given longitude
// the longitude is normalized first so exactly 360 lands in Aries
func SignOf(deg float64) Sign {
	return Sign(int(angle.Normalize(deg) / 30))
}

// DegreeInSign returns the offset of deg within its sign, in [0,30)
func DegreeInSign(deg float64) float64 {
	return math.Mod(angle.Normalize(deg), 30)
}

// String returns the English sign name
func (s Sign) String() string {
	if s < Aries || s > Pisces {
		return "Unknown"
	}
	return names[s]
}

// Number returns the conventional 1 based sign number, Aries = 1
func (s Sign) Number() int { return int(s) + 1 }
