// Package modkit provides module wiring and core deps
package modkit

import (
	"kundali/internal/core/ephem"
	"kundali/internal/platform/config"
	"kundali/internal/platform/logger"
	"kundali/internal/platform/metrics"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log     logger.Logger
	Cfg     config.Conf
	Ephem   ephem.Provider
	Metrics *metrics.Collector
}

// ZeroOK returns true when deps are safe to use with zero values in tests
// consumers should still nil check for optional collaborators
func (d Deps) ZeroOK() bool { return true }
