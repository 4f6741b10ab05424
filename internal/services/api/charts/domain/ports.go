package domain

import "context"

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Compute(ctx context.Context, in ComputeInput) (ComputeOutput, error)
	Options(ctx context.Context) (OptionsOutput, error)
}
