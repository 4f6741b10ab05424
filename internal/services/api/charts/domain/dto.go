// Package domain holds DTOs for charts http and service contracts
package domain

// Birth data comes in as civil time plus geographic coordinates
// The offset in birth_datetime is required, a bare local time is rejected

// ComputeInput is the birth data a chart is computed from
type ComputeInput struct {
	Name          string  `json:"name" validate:"required,min=1,max=120" example:"Ada"`
	BirthDatetime string  `json:"birth_datetime" validate:"required" example:"1990-06-15T17:30:00+05:30"`
	Latitude      float64 `json:"latitude" example:"28.6139"`
	Longitude     float64 `json:"longitude" example:"77.2090"`

	// optional per request strategy overrides, config supplies the defaults
	AyanamsaModel string `json:"ayanamsa_model,omitempty" example:"lahiri"`
	HouseSystem   string `json:"house_system,omitempty" example:"equal"`
	NodeModel     string `json:"node_model,omitempty" example:"true"`
}

// Ascendant is the rising point, always the start of house 1
type Ascendant struct {
	DecimalDeg float64 `json:"decimal_deg" example:"15.2345"`
	DMS        string  `json:"dms" example:"15° 14' 4.2\""`
	Sign       string  `json:"sign" example:"Aries"`
	House      int     `json:"house" example:"1"`
}

// HouseCusp is one of the twelve house boundaries
type HouseCusp struct {
	House      int     `json:"house" example:"1"`
	DecimalDeg float64 `json:"decimal_deg" example:"100.5"`
	DMS        string  `json:"dms" example:"100° 30' 0\""`
	Sign       string  `json:"sign" example:"Cancer"`
}

// Planet is one graha position, the lunar nodes included
type Planet struct {
	Body        string  `json:"body" example:"Sun"`
	SiderealDeg float64 `json:"sidereal_deg" example:"245.1234"`
	DMS         string  `json:"dms" example:"245° 7' 24.24\""`
	Sign        string  `json:"sign" example:"Sagittarius"`
	House       int     `json:"house" example:"5"`
}

// Models echoes the strategies a chart was computed with
type Models struct {
	AyanamsaModel string `json:"ayanamsa_model" example:"lahiri"`
	HouseSystem   string `json:"house_system" example:"equal"`
	NodeModel     string `json:"node_model" example:"true"`
	Source        string `json:"source" example:"kepler"`
}

// ComputeOutput is the full chart payload
type ComputeOutput struct {
	ChartID       string      `json:"chart_id" example:"7b0d5f36-9c3a-4e6f-a1d2-b59f6a3f1c20"`
	Name          string      `json:"name" example:"Ada"`
	BirthDatetime string      `json:"birth_datetime" example:"1990-06-15T17:30:00+05:30"`
	Latitude      float64     `json:"latitude" example:"28.6139"`
	Longitude     float64     `json:"longitude" example:"77.2090"`
	AyanamsaDeg   float64     `json:"ayanamsa_deg" example:"23.6541"`
	Ascendant     Ascendant   `json:"ascendant"`
	HouseCusps    []HouseCusp `json:"house_cusps"`
	Planets       []Planet    `json:"planets"`
	Models        Models      `json:"models"`
}

// Span is the inclusive civil range the ephemeris provider accepts
type Span struct {
	Min string `json:"min" example:"1899-07-29T00:00:00Z"`
	Max string `json:"max" example:"2053-10-09T23:59:59Z"`
}

// OptionsOutput lists the strategies and bodies this deployment supports
type OptionsOutput struct {
	AyanamsaModels []string `json:"ayanamsa_models" example:"lahiri,epoch"`
	HouseSystems   []string `json:"house_systems" example:"equal,sripati"`
	NodeModels     []string `json:"node_models" example:"mean,true"`
	Bodies         []string `json:"bodies"`
	Defaults       Models   `json:"defaults"`
	EphemerisSpan  Span     `json:"ephemeris_span"`
}
