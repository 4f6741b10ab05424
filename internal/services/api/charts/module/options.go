package module

import (
	"strings"

	"kundali/internal/core/astro"
	"kundali/internal/platform/config"
	chartssvc "kundali/internal/services/api/charts/service"
)

// FromConfig reads the strategy defaults from the service scoped config
// (CORE_API_AYANAMSA_MODEL and friends), requests may override per call
func FromConfig(cfg config.Conf) chartssvc.Defaults {
	return chartssvc.Defaults{
		Ayanamsa: must(astro.ParseAyanamsaModel(lower(cfg.MayEnum("AYANAMSA_MODEL", "lahiri", "lahiri", "epoch")))),
		Houses:   must(astro.ParseHouseSystem(lower(cfg.MayEnum("HOUSE_SYSTEM", "equal", "equal", "sripati")))),
		Nodes:    must(astro.ParseNodeModel(lower(cfg.MayEnum("NODE_MODEL", "true", "mean", "true")))),
		Nutation: cfg.MayBool("AYANAMSA_NUTATION", false),
	}
}

func lower(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

// must converts a parse failure into a startup panic
// MayEnum already screened the value so this only trips on a code bug
func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
