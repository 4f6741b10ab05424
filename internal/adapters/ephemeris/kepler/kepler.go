// Package kepler provides the built in ephemeris computed from embedded
// Keplerian elements
//
// Planets come from heliocentric elements with per century rates, solved
// through the Kepler equation and subtracted against the Earth Moon
// barycenter, then precessed onto the equinox of date. The Sun is the
// reversed barycenter vector and the Moon has its own truncated theory.
// Accuracy runs a few arcminutes for planets and under a quarter degree
// for the Moon, fine for sign and house work away from cusp boundaries
package kepler

import (
	"context"
	_ "embed"
	"strings"
	"time"

	"kundali/internal/adapters/ephemeris/timescale"
	"kundali/internal/core/astro"
	"kundali/internal/core/ephem"
	perr "kundali/internal/platform/errors"
)

//go:embed bodies.yaml
var bodiesYAML []byte

// Provider computes geocentric tropical positions from the embedded catalog
// parsed once at Open and never mutated, concurrent reads need no locking
type Provider struct {
	cat map[string]Elements
}

// Open parses the embedded catalog and returns a ready Provider
func Open() (*Provider, error) {
	cat, err := loadCatalog(bodiesYAML)
	if err != nil {
		return nil, err
	}
	return &Provider{cat: cat}, nil
}

// Source names this provider for logs and metric labels
func (p *Provider) Source() string { return "kepler" }

// Bounds reports the supported civil span, inclusive
func (p *Provider) Bounds() (time.Time, time.Time) {
	return timescale.MinCivil, timescale.MaxCivil
}

// TimeScales resolves civil into UT1 and TT Julian days
func (p *Provider) TimeScales(_ context.Context, civil time.Time) (ephem.Instant, error) {
	return timescale.Convert(civil)
}

// Ping verifies the catalog solves, used by readiness checks
func (p *Provider) Ping(ctx context.Context) error {
	inst, err := p.TimeScales(ctx, time.Date(2000, time.January, 1, 12, 0, 0, 0, time.UTC))
	if err != nil {
		return err
	}
	_, err = p.Observe(ctx, inst, ephem.Sun)
	return err
}

// Observe returns the tropical ecliptic position of body at t
func (p *Provider) Observe(_ context.Context, t ephem.Instant, body ephem.Body) (ephem.Position, error) {
	if !body.Valid() {
		return ephem.Position{}, perr.InvalidArgf("unknown body %q", body)
	}
	if !timescale.InRange(t.Civil) {
		return ephem.Position{}, perr.EphemerisRangef(
			"instant %s is outside the supported ephemeris span %s to %s",
			t.Civil.UTC().Format(time.RFC3339),
			timescale.MinCivil.Format(time.DateOnly),
			timescale.MaxCivil.Format(time.DateOnly),
		)
	}

	tc := astro.Centuries(t.JulianTT)

	if body == ephem.Moon {
		lon, lat, dist := moonPosition(tc)
		return ephem.Position{LonDeg: lon, LatDeg: lat, DistAU: dist}, nil
	}

	earth := heliocentric(p.cat["earth"], tc)

	var geo vec3
	if body == ephem.Sun {
		geo = earth.neg()
	} else {
		el, ok := p.cat[strings.ToLower(string(body))]
		if !ok {
			return ephem.Position{}, perr.Invariantf("catalog carries no elements for %q", body)
		}
		geo = heliocentric(el, tc).sub(earth)
	}

	lon, lat, dist := eclipticLonLat(geo)
	return ephem.Position{
		LonDeg: astro.PrecessLongitude(lon, tc),
		LatDeg: lat,
		DistAU: dist,
	}, nil
}
