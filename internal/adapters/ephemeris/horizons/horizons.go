// Package horizons provides an ephemeris provider backed by the JPL
// Horizons API
//
// One observer table row is requested per body and instant, geocentric
// ecliptic longitude and latitude referred to J2000, then precessed onto
// the equinox of date. Accuracy is that of the JPL integrated ephemerides,
// far beyond the built in element theory, at the cost of a network round
// trip per body
package horizons

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"kundali/internal/adapters/ephemeris/timescale"
	"kundali/internal/core/astro"
	"kundali/internal/core/ephem"
	perr "kundali/internal/platform/errors"
	"kundali/internal/platform/logger"
)

const (
	baseURLDefault   = "https://ssd.jpl.nasa.gov/api/horizons.api"
	defaultTimeout   = 15 * time.Second
	defaultUA        = "kundali-api"
	defaultMaxRetry  = 4
	defaultRetryBase = 500 * time.Millisecond
)

// command maps observed bodies onto Horizons target ids
var command = map[ephem.Body]string{
	ephem.Sun:     "10",
	ephem.Moon:    "301",
	ephem.Mercury: "199",
	ephem.Venus:   "299",
	ephem.Mars:    "499",
	ephem.Jupiter: "599",
	ephem.Saturn:  "699",
}

// Options configures the Provider
type Options struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration

	// Retry config for transient and rate limited responses
	MaxRetries int
	RetryBase  time.Duration
}

// Provider is a minimal Horizons observer table client
type Provider struct {
	http  *http.Client
	opts  Options
	log   logger.Logger
	now   func() time.Time
	sleep func(time.Duration)
}

// New creates a Provider with sane defaults
func New(o Options) *Provider {
	if o.BaseURL == "" {
		o.BaseURL = baseURLDefault
	}
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.MaxRetries <= 0 {
		o.MaxRetries = defaultMaxRetry
	}
	if o.RetryBase <= 0 {
		o.RetryBase = defaultRetryBase
	}
	return &Provider{
		http:  &http.Client{Timeout: o.Timeout},
		opts:  o,
		log:   *logger.Named("horizons"),
		now:   time.Now,
		sleep: time.Sleep,
	}
}

// Source reports the provider name used in logs and chart responses
func (p *Provider) Source() string { return "horizons" }

// Bounds reports the supported civil span, inclusive
//
// Horizons itself reaches millennia further but the shared time scale
// conversion is the binding constraint
func (p *Provider) Bounds() (time.Time, time.Time) {
	return timescale.MinCivil, timescale.MaxCivil
}

// TimeScales resolves a civil instant into Julian UT1 and TT
func (p *Provider) TimeScales(_ context.Context, civil time.Time) (ephem.Instant, error) {
	return timescale.Convert(civil)
}

// Ping fetches one Sun row so readiness reflects the remote service
func (p *Provider) Ping(ctx context.Context) error {
	inst, err := p.TimeScales(ctx, time.Date(2000, time.January, 1, 12, 0, 0, 0, time.UTC))
	if err != nil {
		return err
	}
	_, err = p.Observe(ctx, inst, ephem.Sun)
	return err
}

// Observe returns the tropical ecliptic position of body at t
func (p *Provider) Observe(ctx context.Context, t ephem.Instant, body ephem.Body) (ephem.Position, error) {
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

	raw, err := p.fetch(ctx, observerQuery(command[body], t.JulianUT1))
	if err != nil {
		return ephem.Position{}, err
	}
	row, err := parseObserverTable(raw)
	if err != nil {
		return ephem.Position{}, err
	}
	// the table echoes the requested epoch, a mismatch means a wrong row
	if diff := row.JD - t.JulianUT1; diff > 2e-4 || diff < -2e-4 {
		return ephem.Position{}, perr.Invariantf("horizons row epoch %v does not match requested %v", row.JD, t.JulianUT1)
	}

	tc := astro.Centuries(t.JulianTT)
	return ephem.Position{
		LonDeg: astro.PrecessLongitude(row.LonDeg, tc),
		LatDeg: row.LatDeg,
		DistAU: row.DistAU,
	}, nil
}

// observerQuery builds the query string for one geocentric observer row
// Values are single quoted per the Horizons API convention
func observerQuery(id string, jdUT float64) string {
	q := url.Values{}
	q.Set("format", "text")
	q.Set("COMMAND", quoted(id))
	q.Set("OBJ_DATA", quoted("NO"))
	q.Set("MAKE_EPHEM", quoted("YES"))
	q.Set("EPHEM_TYPE", quoted("OBSERVER"))
	q.Set("CENTER", quoted("500@399"))
	q.Set("TLIST", quoted(strconv.FormatFloat(jdUT, 'f', 8, 64)))
	q.Set("TLIST_TYPE", quoted("JD"))
	q.Set("CAL_FORMAT", quoted("JD"))
	q.Set("ANG_FORMAT", quoted("DEG"))
	q.Set("CSV_FORMAT", quoted("YES"))
	// 20 is observer range, 31 is observer ecliptic longitude and latitude
	q.Set("QUANTITIES", quoted("20,31"))
	return q.Encode()
}

func quoted(v string) string { return "'" + v + "'" }
