package kepler

import (
	"math"
	"strings"
	"testing"
)

const tinyCatalog = `bodies:
  mercury: {a: 0.387, e: 0.205, i: 7.0, l: 252.2, peri: 77.4, node: 48.3}
  venus: {a: 0.723, e: 0.006, i: 3.4, l: 181.9, peri: 131.6, node: 76.7}
  earth: {a: 1.000, e: 0.016, i: 0.0, l: 100.4, peri: 102.9, node: 0.0}
  mars: {a: 1.523, e: 0.093, i: 1.8, l: 355.4, peri: 336.0, node: 49.6}
  jupiter: {a: 5.202, e: 0.048, i: 1.3, l: 34.4, peri: 14.7, node: 100.5}
  saturn: {a: 9.536, e: 0.053, i: 2.5, l: 49.9, peri: 92.6, node: 113.7}
`

func TestLoadCatalog_Embedded(t *testing.T) {
	cat, err := loadCatalog(bodiesYAML)
	if err != nil {
		t.Fatalf("loadCatalog: %v", err)
	}
	for _, name := range requiredBodies {
		if _, ok := cat[name]; !ok {
			t.Fatalf("embedded catalog is missing %q", name)
		}
	}

	earth := cat["earth"]
	if math.Abs(earth.A-1.0) > 0.01 {
		t.Fatalf("earth semi major axis %v, want about 1 au", earth.A)
	}
	if earth.E <= 0 || earth.E >= 0.05 {
		t.Fatalf("earth eccentricity %v out of band", earth.E)
	}
	if earth.LRate < 35999 || earth.LRate > 36001 {
		t.Fatalf("earth mean longitude rate %v, want about 36000 deg per century", earth.LRate)
	}
}

func TestLoadCatalog_Tiny(t *testing.T) {
	cat, err := loadCatalog([]byte(tinyCatalog))
	if err != nil {
		t.Fatalf("loadCatalog: %v", err)
	}
	if cat["saturn"].A != 9.536 {
		t.Fatalf("saturn a = %v", cat["saturn"].A)
	}
}

func TestLoadCatalog_MalformedYAML(t *testing.T) {
	if _, err := loadCatalog([]byte("bodies: [broken")); err == nil {
		t.Fatal("want parse error, got nil")
	}
}

func TestLoadCatalog_Empty(t *testing.T) {
	if _, err := loadCatalog([]byte("bodies: {}")); err == nil {
		t.Fatal("want error for empty catalog, got nil")
	}
}

func TestLoadCatalog_MissingBody(t *testing.T) {
	raw := strings.Replace(tinyCatalog, "saturn", "titan", 1)
	_, err := loadCatalog([]byte(raw))
	if err == nil || !strings.Contains(err.Error(), "missing") {
		t.Fatalf("err = %v, want missing body error", err)
	}
}

func TestLoadCatalog_RefusesHyperbolicOrbit(t *testing.T) {
	raw := strings.Replace(tinyCatalog, "e: 0.016", "e: 1.2", 1)
	_, err := loadCatalog([]byte(raw))
	if err == nil || !strings.Contains(err.Error(), "out of band") {
		t.Fatalf("err = %v, want out of band error", err)
	}
}
