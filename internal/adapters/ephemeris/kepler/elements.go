package kepler

import (
	"gopkg.in/yaml.v3"

	perr "kundali/internal/platform/errors"
)

// Elements are heliocentric Keplerian elements at J2000 together with their
// per Julian century rates
type Elements struct {
	A    float64 `yaml:"a"`    // semi major axis, au
	E    float64 `yaml:"e"`    // eccentricity
	I    float64 `yaml:"i"`    // inclination, deg
	L    float64 `yaml:"l"`    // mean longitude, deg
	Peri float64 `yaml:"peri"` // longitude of perihelion, deg
	Node float64 `yaml:"node"` // longitude of ascending node, deg

	ARate    float64 `yaml:"a_rate"`
	ERate    float64 `yaml:"e_rate"`
	IRate    float64 `yaml:"i_rate"`
	LRate    float64 `yaml:"l_rate"`
	PeriRate float64 `yaml:"peri_rate"`
	NodeRate float64 `yaml:"node_rate"`
}

type catalogFile struct {
	Bodies map[string]Elements `yaml:"bodies"`
}

// the heliocentric bodies every catalog must carry, the earth entry holds
// the Earth Moon barycenter used for the geocentric subtraction
var requiredBodies = []string{"mercury", "venus", "earth", "mars", "jupiter", "saturn"}

// loadCatalog parses the embedded element catalog and checks completeness
func loadCatalog(raw []byte) (map[string]Elements, error) {
	var f catalogFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "orbital element catalog is malformed")
	}
	if len(f.Bodies) == 0 {
		return nil, perr.Internalf("orbital element catalog carries no bodies")
	}
	for _, name := range requiredBodies {
		el, ok := f.Bodies[name]
		if !ok {
			return nil, perr.Internalf("orbital element catalog is missing %q", name)
		}
		if el.A <= 0 || el.E < 0 || el.E >= 1 {
			return nil, perr.Internalf("orbital elements for %q are out of band: a=%v e=%v", name, el.A, el.E)
		}
	}
	return f.Bodies, nil
}
