package astro

import (
	"math"

	"kundali/internal/core/angle"
	perr "kundali/internal/platform/errors"
)

// NodeModel selects how the lunar ascending node longitude is derived
// the two models land close but are not equal and must never be mixed
// within one chart
type NodeModel string

// Supported node models
const (
	// NodeMean evaluates the precessing mean node polynomial
	NodeMean NodeModel = "mean"
	// NodeTrue derives the instantaneous node from the observed Moon
	NodeTrue NodeModel = "true"
)

// NodeModels returns the supported models in display order
func NodeModels() []NodeModel {
	return []NodeModel{NodeMean, NodeTrue}
}

// ParseNodeModel validates a model name from config or a request
func ParseNodeModel(s string) (NodeModel, error) {
	switch NodeModel(s) {
	case NodeMean:
		return NodeMean, nil
	case NodeTrue:
		return NodeTrue, nil
	}
	return "", perr.InvalidArgf("unknown node model %q, want one of %v", s, NodeModels())
}

// meanNodeDeg evaluates the mean node polynomial at t centuries TT
func meanNodeDeg(t float64) float64 {
	return 125.04452 - 1934.136261*t + 0.0020708*t*t
}

// MeanNode returns the tropical longitude of the mean ascending node at a
// TT Julian day
func MeanNode(jdTT float64) float64 {
	return angle.Normalize(meanNodeDeg(Centuries(jdTT)))
}

// TrueNode derives the tropical ascending node from the Moon's observed
// ecliptic longitude and latitude in degrees
func TrueNode(moonLonDeg, moonLatDeg float64) float64 {
	lon := angle.Rad(moonLonDeg)
	lat := angle.Rad(moonLatDeg)
	node := lon - math.Atan2(math.Tan(lat), math.Sin(lon))
	return angle.Normalize(angle.Deg(node))
}
