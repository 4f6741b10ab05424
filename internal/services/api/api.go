// Package api provides the HTTP API for the application
package api

import (
	"kundali/internal/core/ephem"
	"kundali/internal/platform/config"
	"kundali/internal/platform/logger"
	"kundali/internal/platform/metrics"
	phttp "kundali/internal/platform/net/http"

	"kundali/internal/modkit"
	"kundali/internal/modkit/httpkit"
	"kundali/internal/modkit/module"
	"kundali/internal/modkit/swaggerkit"

	chartsmod "kundali/internal/services/api/charts/module"
	metamod "kundali/internal/services/api/meta/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Ephem          ephem.Provider
	Metrics        *metrics.Collector
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg:     opt.Config,
		Ephem:   opt.Ephem,
		Metrics: opt.Metrics,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}

	mods := []module.Module{
		metamod.New(deps),
		chartsmod.New(deps),
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
