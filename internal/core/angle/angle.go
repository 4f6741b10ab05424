// Package angle provides circular arithmetic for ecliptic longitudes
// All values are degrees unless the name says hours
package angle

import (
	"fmt"
	"math"
)

// Normalize maps deg into [0,360)
// the result is strictly below 360 even when float addition lands on it
func Normalize(deg float64) float64 {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	if d >= 360 {
		d -= 360
	}
	return d
}

// NormalizeHours maps h into [0,24)
func NormalizeHours(h float64) float64 {
	v := math.Mod(h, 24)
	if v < 0 {
		v += 24
	}
	if v >= 24 {
		v -= 24
	}
	return v
}

// ForwardArc returns the arc from a to b measured in the direction of
// increasing longitude, in [0,360) even when b sits numerically behind a
func ForwardArc(a, b float64) float64 {
	return Normalize(b - a)
}

// OnForwardArc reports whether deg lies on the forward arc [from, to)
// spans that straddle the 0 Aries point are handled
func OnForwardArc(deg, from, to float64) bool {
	d := Normalize(deg)
	f := Normalize(from)
	t := Normalize(to)
	if f <= t {
		return d >= f && d < t
	}
	return d >= f || d < t
}

// Separation returns the smallest distance between two longitudes, in [0,180]
func Separation(a, b float64) float64 {
	d := math.Abs(Normalize(a) - Normalize(b))
	if d > 180 {
		d = 360 - d
	}
	return d
}

// Rad converts degrees to radians
func Rad(deg float64) float64 { return deg * math.Pi / 180 }

// Deg converts radians to degrees
func Deg(rad float64) float64 { return rad * 180 / math.Pi }

// DMS is a sexagesimal breakdown of a decimal degree value
type DMS struct {
	Degrees int     `json:"degrees"`
	Minutes int     `json:"minutes"`
	Seconds float64 `json:"seconds"`
}

// ToDMS splits deg into truncated degrees and minutes with seconds rounded
// to two decimals
// minutes are never rounded up into the degree field
func ToDMS(deg float64) DMS {
	d := int(deg)
	mf := (deg - float64(d)) * 60
	m := int(mf)
	s := math.Round((mf-float64(m))*60*100) / 100
	return DMS{Degrees: d, Minutes: m, Seconds: s}
}

// String renders the conventional notation, eg 15° 23' 45.67"
func (d DMS) String() string {
	return fmt.Sprintf("%d° %d' %g\"", d.Degrees, d.Minutes, d.Seconds)
}
