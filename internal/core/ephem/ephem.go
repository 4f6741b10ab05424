// Package ephem defines the ephemeris provider seam used by the chart pipeline
//
// A provider owns the messy parts of positional astronomy: time scale
// conversion (civil to UT1 and TT Julian days) and geocentric apparent
// tropical ecliptic positions for the seven directly observed bodies.
// Rahu and Ketu are derived downstream and are never observed here.
package ephem

import (
	"context"
	"time"
)

// Body identifies a directly observable chart body
type Body string

// The seven observed bodies in canonical chart order
const (
	Sun     Body = "Sun"
	Moon    Body = "Moon"
	Mars    Body = "Mars"
	Mercury Body = "Mercury"
	Jupiter Body = "Jupiter"
	Venus   Body = "Venus"
	Saturn  Body = "Saturn"
)

// Observed returns the observable bodies in canonical chart order
func Observed() []Body {
	return []Body{Sun, Moon, Mars, Mercury, Jupiter, Venus, Saturn}
}

// Valid reports whether b names an observable body
func (b Body) Valid() bool {
	switch b {
	case Sun, Moon, Mars, Mercury, Jupiter, Venus, Saturn:
		return true
	}
	return false
}

// Instant is one moment expressed in the time scales the formulas consume
// UT1 drives sidereal time and TT drives orbital motion and precession
type Instant struct {
	Civil     time.Time
	JulianUT1 float64
	JulianTT  float64
}

// Position is a geocentric apparent ecliptic position in the tropical
// frame of date, longitudes in [0,360), latitudes in degrees
type Position struct {
	LonDeg float64
	LatDeg float64
	// DistAU is the geocentric distance where the provider knows it, else 0
	DistAU float64
}

// Provider supplies time scale conversion and body positions
// Implementations are opened once at process start and must be safe for
// concurrent reads thereafter
type Provider interface {
	// TimeScales resolves a civil timestamp into UT1 and TT Julian days
	// fails when civil lies outside Bounds
	TimeScales(ctx context.Context, civil time.Time) (Instant, error)

	// Observe returns the tropical ecliptic position of body at t
	Observe(ctx context.Context, t Instant, body Body) (Position, error)

	// Bounds reports the civil span the provider covers, inclusive
	Bounds() (min, max time.Time)

	// Ping verifies the provider is usable, for readiness checks
	Ping(ctx context.Context) error

	// Source names the provider for logs and metric labels
	Source() string
}
