package astro

import (
	"math"

	"kundali/internal/core/angle"
	perr "kundali/internal/platform/errors"
)

// AyanamsaModel selects the precession correction formula
type AyanamsaModel string

// Supported ayanamsa models
const (
	// AyanamsaLahiri is the Chitrapaksha polynomial model
	AyanamsaLahiri AyanamsaModel = "lahiri"
	// AyanamsaEpoch accumulates a fixed precession rate from 285.0 CE
	AyanamsaEpoch AyanamsaModel = "epoch"
)

// AyanamsaModels returns the supported models in display order
func AyanamsaModels() []AyanamsaModel {
	return []AyanamsaModel{AyanamsaLahiri, AyanamsaEpoch}
}

// ParseAyanamsaModel validates a model name from config or a request
func ParseAyanamsaModel(s string) (AyanamsaModel, error) {
	switch AyanamsaModel(s) {
	case AyanamsaLahiri:
		return AyanamsaLahiri, nil
	case AyanamsaEpoch:
		return AyanamsaEpoch, nil
	}
	return "", perr.InvalidArgf("unknown ayanamsa model %q, want one of %v", s, AyanamsaModels())
}

// Ayanamsa returns the precession offset in degrees at a TT Julian day
// under the given model, normalized to [0,360)
// nutation applies only to the epoch rate model and is ignored otherwise
func Ayanamsa(model AyanamsaModel, jdTT float64, nutation bool) (float64, error) {
	switch model {
	case AyanamsaLahiri:
		return angle.Normalize(lahiriAyanamsa(Centuries(jdTT))), nil
	case AyanamsaEpoch:
		return angle.Normalize(epochRateAyanamsa(jdTT, nutation)), nil
	}
	return 0, perr.InvalidArgf("unknown ayanamsa model %q", model)
}

// lahiriAyanamsa evaluates the Chitrapaksha polynomial at t centuries TT
// the split linear and quadratic terms mirror how the constants were
// derived, do not fold them
func lahiriAyanamsa(t float64) float64 {
	return 24.007689 +
		0.000305*t +
		0.000000041*t*t +
		1.396342*t +
		0.000000018*t*t
}

const (
	epochYearCE       = 285.0
	precessionPerYear = 50.23885 // arcsec
)

// epochRateAyanamsa accumulates precessionPerYear from epochYearCE, with an
// optional short period nutation term
func epochRateAyanamsa(jdTT float64, nutation bool) float64 {
	years := 2000.0 + (jdTT-J2000)/365.25 - epochYearCE
	ay := years * precessionPerYear / 3600.0
	if nutation {
		ay += nutationLonArcsec(Centuries(jdTT)) / 3600.0
	}
	return ay
}

// nutationLonArcsec approximates nutation in longitude with four harmonics
// in the lunar node, solar and lunar mean longitudes
func nutationLonArcsec(t float64) float64 {
	om := angle.Rad(meanNodeDeg(t))
	ls := angle.Rad(280.4665 + 36000.7698*t)
	lm := angle.Rad(218.3165 + 481267.8813*t)
	return -17.20*math.Sin(om) -
		1.32*math.Sin(2*ls) -
		0.23*math.Sin(2*lm) +
		0.21*math.Sin(2*om)
}
