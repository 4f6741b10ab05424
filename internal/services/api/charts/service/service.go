// Package service computes sidereal charts from the ephemeris provider
package service

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"

	"kundali/internal/core/angle"
	"kundali/internal/core/astro"
	"kundali/internal/core/ephem"
	"kundali/internal/core/zodiac"
	perr "kundali/internal/platform/errors"
	"kundali/internal/platform/logger"
	"kundali/internal/platform/metrics"
	"kundali/internal/services/api/charts/domain"
)

// Defaults are the strategies used when a request does not override them
type Defaults struct {
	Ayanamsa astro.AyanamsaModel
	Houses   astro.HouseSystem
	Nodes    astro.NodeModel
	Nutation bool
}

// Service defines the charts service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the charts service
type Svc struct {
	eph      ephem.Provider
	defaults Defaults
	metrics  *metrics.Collector
	log      logger.Logger
}

// New constructs a charts service
func New(eph ephem.Provider, defaults Defaults, m *metrics.Collector) *Svc {
	if eph == nil {
		panic("charts.Service requires a non nil ephemeris provider")
	}
	return &Svc{eph: eph, defaults: defaults, metrics: m, log: *logger.Named("charts")}
}

// modelSet is the resolved strategy selection for one chart
// a chart never mixes models, overrides resolve before any math runs
type modelSet struct {
	ayanamsa astro.AyanamsaModel
	houses   astro.HouseSystem
	nodes    astro.NodeModel
}

// Compute builds the full chart for one birth moment and location
func (s *Svc) Compute(ctx context.Context, in domain.ComputeInput) (domain.ComputeOutput, error) {
	models, err := s.resolveModels(in)
	if err != nil {
		return domain.ComputeOutput{}, err
	}

	started := time.Now()
	out, err := s.compute(ctx, in, models)
	status := "ok"
	if err != nil {
		status = "error"
	}
	s.metrics.RecordChart(status, string(models.houses), string(models.ayanamsa), time.Since(started))
	return out, err
}

func (s *Svc) resolveModels(in domain.ComputeInput) (modelSet, error) {
	m := modelSet{ayanamsa: s.defaults.Ayanamsa, houses: s.defaults.Houses, nodes: s.defaults.Nodes}
	var err error
	if in.AyanamsaModel != "" {
		if m.ayanamsa, err = astro.ParseAyanamsaModel(in.AyanamsaModel); err != nil {
			return modelSet{}, err
		}
	}
	if in.HouseSystem != "" {
		if m.houses, err = astro.ParseHouseSystem(in.HouseSystem); err != nil {
			return modelSet{}, err
		}
	}
	if in.NodeModel != "" {
		if m.nodes, err = astro.ParseNodeModel(in.NodeModel); err != nil {
			return modelSet{}, err
		}
	}
	return m, nil
}

func (s *Svc) compute(ctx context.Context, in domain.ComputeInput, models modelSet) (domain.ComputeOutput, error) {
	birth, err := parseBirth(in.BirthDatetime)
	if err != nil {
		return domain.ComputeOutput{}, err
	}
	if err := checkGeo(in.Latitude, in.Longitude); err != nil {
		return domain.ComputeOutput{}, err
	}

	inst, err := s.eph.TimeScales(ctx, birth)
	if err != nil {
		return domain.ComputeOutput{}, err
	}

	ayan, err := astro.Ayanamsa(models.ayanamsa, inst.JulianTT, s.defaults.Nutation)
	if err != nil {
		return domain.ComputeOutput{}, err
	}

	ramc, err := astro.LST(inst.JulianUT1, in.Longitude)
	if err != nil {
		return domain.ComputeOutput{}, err
	}

	tropical, err := astro.ComputeCardinals(ramc, in.Latitude, astro.MeanObliquity(inst.JulianTT))
	if err != nil {
		return domain.ComputeOutput{}, err
	}
	cardinals := tropical.Sidereal(ayan)

	cusps, err := astro.Cusps(models.houses, cardinals)
	if err != nil {
		return domain.ComputeOutput{}, err
	}

	positions, err := s.observeAll(ctx, inst)
	if err != nil {
		return domain.ComputeOutput{}, err
	}

	return domain.ComputeOutput{
		ChartID:       uuid.NewString(),
		Name:          in.Name,
		BirthDatetime: in.BirthDatetime,
		Latitude:      in.Latitude,
		Longitude:     in.Longitude,
		AyanamsaDeg:   round4(ayan),
		Ascendant: domain.Ascendant{
			DecimalDeg: round4(cardinals.AscDeg),
			DMS:        angle.ToDMS(cardinals.AscDeg).String(),
			Sign:       zodiac.SignOf(cardinals.AscDeg).String(),
			House:      1,
		},
		HouseCusps: renderCusps(cusps),
		Planets:    s.planets(positions, models.nodes, inst, ayan, cusps),
		Models: domain.Models{
			AyanamsaModel: string(models.ayanamsa),
			HouseSystem:   string(models.houses),
			NodeModel:     string(models.nodes),
			Source:        s.eph.Source(),
		},
	}, nil
}

// Options lists the strategies, bodies, and civil span this deployment serves
func (s *Svc) Options(_ context.Context) (domain.OptionsOutput, error) {
	min, max := s.eph.Bounds()

	observed := ephem.Observed()
	bodies := make([]string, 0, len(observed)+2)
	for _, b := range observed {
		bodies = append(bodies, string(b))
	}
	bodies = append(bodies, "Rahu", "Ketu")

	return domain.OptionsOutput{
		AyanamsaModels: modelNames(astro.AyanamsaModels()),
		HouseSystems:   modelNames(astro.HouseSystems()),
		NodeModels:     modelNames(astro.NodeModels()),
		Bodies:         bodies,
		Defaults: domain.Models{
			AyanamsaModel: string(s.defaults.Ayanamsa),
			HouseSystem:   string(s.defaults.Houses),
			NodeModel:     string(s.defaults.Nodes),
			Source:        s.eph.Source(),
		},
		EphemerisSpan: domain.Span{
			Min: min.UTC().Format(time.RFC3339),
			Max: max.UTC().Format(time.RFC3339),
		},
	}, nil
}

// observeAll fetches the seven observed bodies, nodes are derived later
func (s *Svc) observeAll(ctx context.Context, inst ephem.Instant) (map[ephem.Body]ephem.Position, error) {
	observed := ephem.Observed()
	out := make(map[ephem.Body]ephem.Position, len(observed))
	for _, body := range observed {
		started := time.Now()
		pos, err := s.eph.Observe(ctx, inst, body)
		s.metrics.RecordObserve(string(body), s.eph.Source(), time.Since(started), err)
		if err != nil {
			return nil, err
		}
		out[body] = pos
	}
	return out, nil
}

// planets renders the nine graha rows in display order
func (s *Svc) planets(
	positions map[ephem.Body]ephem.Position,
	nodes astro.NodeModel,
	inst ephem.Instant,
	ayan float64,
	cusps [12]float64,
) []domain.Planet {
	observed := ephem.Observed()
	out := make([]domain.Planet, 0, len(observed)+2)
	for _, body := range observed {
		lon := angle.Normalize(positions[body].LonDeg - ayan)
		out = append(out, s.planetRow(string(body), lon, cusps))
	}

	var rahuTropical float64
	if nodes == astro.NodeTrue {
		moon := positions[ephem.Moon]
		rahuTropical = astro.TrueNode(moon.LonDeg, moon.LatDeg)
	} else {
		rahuTropical = astro.MeanNode(inst.JulianTT)
	}
	rahu := angle.Normalize(rahuTropical - ayan)
	out = append(out, s.planetRow("Rahu", rahu, cusps))
	out = append(out, s.planetRow("Ketu", angle.Normalize(rahu+180), cusps))
	return out
}

func (s *Svc) planetRow(name string, lonDeg float64, cusps [12]float64) domain.Planet {
	house, err := astro.HouseOf(lonDeg, cusps)
	if err != nil {
		// a data integrity bug, the chart still renders with house 1
		s.log.Error().
			Err(err).
			Str("body", name).
			Float64("longitude", lonDeg).
			Floats64("cusps", cusps[:]).
			Msg("house placement fell through")
	}
	return domain.Planet{
		Body:        name,
		SiderealDeg: round4(lonDeg),
		DMS:         angle.ToDMS(lonDeg).String(),
		Sign:        zodiac.SignOf(lonDeg).String(),
		House:       house,
	}
}

func renderCusps(cusps [12]float64) []domain.HouseCusp {
	out := make([]domain.HouseCusp, 0, len(cusps))
	for i, c := range cusps {
		out = append(out, domain.HouseCusp{
			House:      i + 1,
			DecimalDeg: round4(c),
			DMS:        angle.ToDMS(c).String(),
			Sign:       zodiac.SignOf(c).String(),
		})
	}
	return out
}

// parseBirth resolves the civil birth moment, the UTC offset is mandatory
func parseBirth(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, perr.Wrapf(err, perr.ErrorCodeInvalidTime,
			"birth_datetime %q is not RFC3339 with a UTC offset", s)
	}
	return t, nil
}

// checkGeo enforces the documented coordinate ranges
// exactly polar latitudes pass here and fail later with the polar error
func checkGeo(lat, lon float64) error {
	if lat < -90 || lat > 90 {
		return perr.OutOfRangef("latitude %v is outside -90..90", lat)
	}
	if lon < -180 || lon > 360 {
		return perr.OutOfRangef("longitude %v is outside -180..360", lon)
	}
	return nil
}

func round4(x float64) float64 { return math.Round(x*1e4) / 1e4 }

func modelNames[T ~string](models []T) []string {
	out := make([]string, 0, len(models))
	for _, m := range models {
		out = append(out, string(m))
	}
	return out
}
