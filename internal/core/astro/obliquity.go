package astro

// MeanObliquity returns the mean obliquity of the ecliptic in degrees for a
// TT Julian day
func MeanObliquity(jdTT float64) float64 {
	t := Centuries(jdTT)
	return 23.439291111 - 0.0130041666667*t - 0.0000001639*t*t + 0.0000005036*t*t*t
}
