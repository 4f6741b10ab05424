// Package http provides http transport for charts
package http

import (
	stdhttp "net/http"

	"kundali/internal/modkit/httpkit"
	"kundali/internal/services/api/charts/domain"
	svc "kundali/internal/services/api/charts/service"
)

// Register mounts chart endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// compute a chart from birth data
	httpkit.PostJSON[domain.ComputeInput](r, "/", h.compute)

	// supported strategies, bodies, and the ephemeris span
	httpkit.Get(r, "/options", h.options)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /charts Charts chartsCompute
// @Summary Compute a sidereal chart
// @Description Ascendant, twelve house cusps, and nine graha positions for a birth moment and location
// @Tags Charts
// @Accept json
// @Produce json
// @Param payload body domain.ComputeInput true "Birth data"
// @Success 200 {object} domain.ComputeOutput "ok"
// @Router /charts [post]
func (h *handlers) compute(r *stdhttp.Request, in domain.ComputeInput) (any, error) {
	return h.svc.Compute(r.Context(), in)
}

// swagger:route GET /charts/options Charts chartsOptions
// @Summary Supported models, bodies, and ephemeris span
// @Tags Charts
// @Produce json
// @Success 200 {object} domain.OptionsOutput "ok"
// @Router /charts/options [get]
func (h *handlers) options(r *stdhttp.Request) (any, error) {
	return h.svc.Options(r.Context())
}
