package timescale

import (
	"math"
	"testing"
	"time"

	perr "kundali/internal/platform/errors"
)

func near(t *testing.T, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Fatalf("got %v, want %v within %v", got, want, tol)
	}
}

func TestJulianDay_KnownDates(t *testing.T) {
	cases := []struct {
		in   time.Time
		want float64
	}{
		{time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC), 2451545.0},
		{time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC), 2451179.5},
		{time.Date(1987, 6, 19, 12, 0, 0, 0, time.UTC), 2446966.0},
		{time.Date(1988, 1, 27, 0, 0, 0, 0, time.UTC), 2447187.5},
		{time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC), 2415020.5},
	}
	for _, c := range cases {
		near(t, JulianDay(c.in), c.want, 1e-8)
	}
}

func TestJulianDay_NormalizesZoneToUTC(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)
	local := time.Date(2000, 1, 1, 17, 30, 0, 0, ist) // 12:00 UTC
	near(t, JulianDay(local), 2451545.0, 1e-8)
}

func TestJulianDay_DayFraction(t *testing.T) {
	base := JulianDay(time.Date(1990, 5, 15, 0, 0, 0, 0, time.UTC))
	sixAM := JulianDay(time.Date(1990, 5, 15, 6, 0, 0, 0, time.UTC))
	near(t, sixAM-base, 0.25, 1e-10)
}

func TestDeltaT_ByEra(t *testing.T) {
	cases := []struct {
		y    time.Time
		want float64
		tol  float64
	}{
		// published delta T runs about -3s near 1900 and 64s near 2000
		{time.Date(1899, 8, 1, 0, 0, 0, 0, time.UTC), -3, 3},
		{time.Date(1910, 6, 1, 0, 0, 0, 0, time.UTC), 10, 4},
		{time.Date(1930, 6, 1, 0, 0, 0, 0, time.UTC), 24, 3},
		{time.Date(1955, 6, 1, 0, 0, 0, 0, time.UTC), 31, 3},
		{time.Date(1975, 6, 1, 0, 0, 0, 0, time.UTC), 45.5, 2},
		{time.Date(1990, 5, 15, 0, 0, 0, 0, time.UTC), 56.9, 2},
		{time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC), 63.8, 1},
		{time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC), 71.6, 3},
		{time.Date(2053, 10, 1, 0, 0, 0, 0, time.UTC), 99, 3},
	}
	for _, c := range cases {
		near(t, DeltaT(c.y), c.want, c.tol)
	}
}

func TestDeltaT_ContinuousAtEraJoins(t *testing.T) {
	joins := []time.Time{
		time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(1920, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(1941, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(1961, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(1986, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2005, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2050, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	for _, j := range joins {
		before := DeltaT(j.AddDate(0, -1, 0))
		after := DeltaT(j.AddDate(0, 1, 0))
		if math.Abs(after-before) > 2.5 {
			t.Fatalf("delta T jumps %.2fs across %s", after-before, j.Format(time.DateOnly))
		}
	}
}

func TestConvert_ScalesAreOrderedAndOffsetByDeltaT(t *testing.T) {
	civil := time.Date(1990, 5, 15, 10, 30, 0, 0, time.FixedZone("IST", 5*3600+1800))
	inst, err := Convert(civil)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if inst.JulianTT <= inst.JulianUT1 {
		t.Fatalf("TT %v must sit after UT1 %v this era", inst.JulianTT, inst.JulianUT1)
	}
	near(t, (inst.JulianTT-inst.JulianUT1)*86400, DeltaT(civil), 1e-6)
	if !inst.Civil.Equal(civil) {
		t.Fatalf("instant keeps the civil time, got %v", inst.Civil)
	}
}

func TestConvert_RejectsOutsideSupportedSpan(t *testing.T) {
	cases := []time.Time{
		time.Date(1899, 7, 28, 23, 59, 59, 0, time.UTC),
		time.Date(1850, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2053, 10, 9, 0, 0, 1, 0, time.UTC),
		time.Date(2100, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	for _, c := range cases {
		_, err := Convert(c)
		if err == nil {
			t.Fatalf("expected range error for %s", c)
		}
		if !perr.IsCode(err, perr.ErrorCodeEphemerisRange) {
			t.Fatalf("expected ephemeris range code for %s, got %v", c, err)
		}
	}
}

func TestConvert_AcceptsTheSpanEdges(t *testing.T) {
	for _, c := range []time.Time{MinCivil, MaxCivil} {
		if _, err := Convert(c); err != nil {
			t.Fatalf("edge %s must convert, got %v", c, err)
		}
	}
}
