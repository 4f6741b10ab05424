// Package astro implements the sidereal chart formulas
//
// Pipeline order
// 1 Resolve the birth instant into UT1 and TT Julian days (provider owned)
// 2 Greenwich then local sidereal time from UT1
// 3 Mean obliquity and ayanamsa from TT
// 4 Tropical ascendant and midheaven from RAMC, latitude and obliquity
// 5 House cusps under the selected system
// 6 Sidereal shift of every tropical longitude by the ayanamsa
// 7 House placement along the cusp ring
//
// Angles are degrees everywhere, time arguments are Julian days. The
// formula strategies (ayanamsa model, house system, node model) are explicit
// enums selected by the caller and never mixed within one chart
package astro

// J2000 is the Julian day of the standard epoch, 2000 January 1.5 TT
const J2000 = 2451545.0

// Centuries returns Julian centuries elapsed since J2000 at jd
func Centuries(jd float64) float64 { return (jd - J2000) / 36525.0 }
