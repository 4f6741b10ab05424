package kepler

import (
	"math"

	"kundali/internal/core/angle"
)

// vec3 is a rectangular ecliptic vector in au
type vec3 struct{ x, y, z float64 }

func (v vec3) sub(o vec3) vec3 { return vec3{v.x - o.x, v.y - o.y, v.z - o.z} }

func (v vec3) neg() vec3 { return vec3{-v.x, -v.y, -v.z} }

// solveKepler returns the eccentric anomaly for mean anomaly m, radians
// Danby starter then Newton refinement, e below 1 assumed
func solveKepler(m, e float64) float64 {
	ea := m + e*math.Sin(m)*(1+e*math.Cos(m))
	for i := 0; i < 12; i++ {
		f := ea - e*math.Sin(ea) - m
		if math.Abs(f) < 1e-13 {
			break
		}
		ea -= f / (1 - e*math.Cos(ea))
	}
	return ea
}

// heliocentric returns the J2000 ecliptic position for the elements
// propagated t centuries from J2000
func heliocentric(el Elements, t float64) vec3 {
	a := el.A + t*el.ARate
	e := el.E + t*el.ERate
	inc := angle.Rad(el.I + t*el.IRate)
	l := angle.Normalize(el.L + t*el.LRate)
	peri := angle.Normalize(el.Peri + t*el.PeriRate)
	node := angle.Normalize(el.Node + t*el.NodeRate)

	m := angle.Rad(angle.Normalize(l - peri))
	w := angle.Rad(angle.Normalize(peri - node))
	om := angle.Rad(node)

	ea := solveKepler(m, e)

	// true anomaly and radius from the eccentric anomaly
	v := 2 * math.Atan2(
		math.Sqrt(1+e)*math.Sin(ea/2),
		math.Sqrt(1-e)*math.Cos(ea/2),
	)
	r := a * (1 - e*math.Cos(ea))

	// in plane position, then rotate by perihelion argument, inclination
	// and node onto the ecliptic
	xo := r * math.Cos(v)
	yo := r * math.Sin(v)

	xp := xo*math.Cos(w) - yo*math.Sin(w)
	yp := xo*math.Sin(w) + yo*math.Cos(w)

	ye := yp * math.Cos(inc)
	ze := yp * math.Sin(inc)

	return vec3{
		x: xp*math.Cos(om) - ye*math.Sin(om),
		y: xp*math.Sin(om) + ye*math.Cos(om),
		z: ze,
	}
}

// eclipticLonLat converts a rectangular vector into spherical longitude and
// latitude in degrees plus the distance in au
func eclipticLonLat(v vec3) (lonDeg, latDeg, distAU float64) {
	rxy := math.Hypot(v.x, v.y)
	lonDeg = angle.Normalize(angle.Deg(math.Atan2(v.y, v.x)))
	latDeg = angle.Deg(math.Atan2(v.z, rxy))
	distAU = math.Sqrt(v.x*v.x + v.y*v.y + v.z*v.z)
	return lonDeg, latDeg, distAU
}
