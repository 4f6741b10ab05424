package horizons

import (
	"bufio"
	"bytes"
	"strconv"
	"strings"

	perr "kundali/internal/platform/errors"
)

// observerRow is one data line of a Horizons observer table
type observerRow struct {
	JD     float64
	LonDeg float64
	LatDeg float64
	DistAU float64
}

// parseObserverTable extracts the first row between the $$SOE and $$EOE
// markers, locating columns through the CSV header printed above the block.
// The footer legend repeats the column names so the header is only taken
// before any data has been seen
func parseObserverTable(raw []byte) (observerRow, error) {
	var header, data []string
	in := false

	sc := bufio.NewScanner(bytes.NewReader(raw))
	for sc.Scan() {
		line := sc.Text()
		switch {
		case strings.HasPrefix(line, "$$SOE"):
			in = true
		case strings.HasPrefix(line, "$$EOE"):
			in = false
		case in:
			if data == nil && strings.TrimSpace(line) != "" {
				data = splitCSV(line)
			}
		case data == nil && strings.Contains(line, "ObsEcLon"):
			header = splitCSV(line)
		}
	}
	if err := sc.Err(); err != nil {
		return observerRow{}, perr.Wrapf(err, perr.ErrorCodeUnknown, "horizons response scan failed")
	}
	if header == nil {
		return observerRow{}, perr.Internalf("horizons response carries no observer header: %s", snippet(raw))
	}
	if data == nil {
		return observerRow{}, perr.Internalf("horizons response carries no data rows: %s", snippet(raw))
	}

	di := colIndex(header, "delta")
	loni := colIndex(header, "ObsEcLon")
	lati := colIndex(header, "ObsEcLat")
	if di < 0 || loni < 0 || lati < 0 {
		return observerRow{}, perr.Internalf("horizons header is missing expected columns: %s", strings.Join(header, ","))
	}

	var row observerRow
	var err error
	if row.JD, err = field(data, 0); err != nil {
		return observerRow{}, err
	}
	if row.DistAU, err = field(data, di); err != nil {
		return observerRow{}, err
	}
	if row.LonDeg, err = field(data, loni); err != nil {
		return observerRow{}, err
	}
	if row.LatDeg, err = field(data, lati); err != nil {
		return observerRow{}, err
	}
	return row, nil
}

func field(cols []string, i int) (float64, error) {
	if i >= len(cols) {
		return 0, perr.Internalf("horizons row is short, no column %d", i)
	}
	v, err := strconv.ParseFloat(cols[i], 64)
	if err != nil {
		return 0, perr.Wrapf(err, perr.ErrorCodeUnknown, "horizons column %d is not numeric", i)
	}
	return v, nil
}

func splitCSV(line string) []string {
	parts := strings.Split(line, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func colIndex(header []string, name string) int {
	for i, h := range header {
		if h == name {
			return i
		}
	}
	return -1
}

func snippet(raw []byte) string {
	s := strings.TrimSpace(string(raw))
	if len(s) > 200 {
		s = s[:200]
	}
	return s
}
