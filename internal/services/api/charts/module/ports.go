package module

import (
	"context"

	"kundali/internal/services/api/charts/domain"
	chartssvc "kundali/internal/services/api/charts/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

type adaptChartsPort struct{ svc chartssvc.Service }

// Compute builds a chart from birth data
func (a adaptChartsPort) Compute(ctx context.Context, in domain.ComputeInput) (domain.ComputeOutput, error) {
	return a.svc.Compute(ctx, in)
}

// Options lists the supported strategies, bodies, and ephemeris span
func (a adaptChartsPort) Options(ctx context.Context) (domain.OptionsOutput, error) {
	return a.svc.Options(ctx)
}
