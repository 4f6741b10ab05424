// @title         Kundali API
// @version       1.0
// @description   Sidereal chart computation service

package main

import (
	"context"
	"strings"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"kundali/internal/adapters/ephemeris/horizons"
	"kundali/internal/adapters/ephemeris/kepler"
	"kundali/internal/core/ephem"
	"kundali/internal/platform/config"
	"kundali/internal/platform/logger"
	"kundali/internal/platform/metrics"
	phttp "kundali/internal/platform/net/http"

	"kundali/internal/services/api"
)

func main() {
	// .env is optional, deployments usually set the environment directly
	_ = godotenv.Load()

	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")
	ephCfg := root.Prefix("CORE_EPHEM_") // ephemeris backend lives under CORE_EPHEM_*

	// bring up logging early
	l := logger.Get()

	eph, err := openProvider(ephCfg)
	if err != nil {
		l.Panic().Err(err).Msg("ephemeris open failed")
	}
	l.Info().Str("source", eph.Source()).Msg("ephemeris ready")

	// chart and observe counters land on the default prometheus registry
	col := metrics.New(prometheus.DefaultRegisterer)

	// http server (reads CORE_API_API_PORT)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config:         apiCfg,
			Ephem:          eph,
			Metrics:        col,
			Logger:         l,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", true),
		},
	)

	// scrape endpoint stays off the versioned API prefix
	srv.Router().Handle("/metrics", metrics.Handler())

	// run
	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}

// openProvider picks the ephemeris backend from CORE_EPHEM_SOURCE
// kepler computes positions in process, horizons asks the JPL service
func openProvider(cfg config.Conf) (ephem.Provider, error) {
	switch strings.ToLower(cfg.MayEnum("SOURCE", "kepler", "kepler", "horizons")) {
	case "horizons":
		return horizons.New(horizons.Options{
			BaseURL:    cfg.MayString("HORIZONS_BASE_URL", ""),
			UserAgent:  cfg.MayString("HORIZONS_USER_AGENT", ""),
			Timeout:    cfg.MayDuration("HORIZONS_TIMEOUT", 0),
			MaxRetries: cfg.MayInt("HORIZONS_MAX_RETRIES", 0),
			RetryBase:  cfg.MayDuration("HORIZONS_RETRY_BASE", 0),
		}), nil
	default:
		return kepler.Open()
	}
}
