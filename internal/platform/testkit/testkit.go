// Package testkit provides testing helpers
package testkit

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// MustPanic asserts that fn panics
func MustPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic, got none")
		}
	}()
	fn()
}

// MustNotPanic asserts that fn does not panic
func MustNotPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("unexpected panic: %v", r)
		}
	}()
	fn()
}

// MustContain asserts that haystack contains needle. If not, writes haystack to logger_test_output.txt for debugging
func MustContain(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		tmpfile := filepath.Join(t.TempDir(), "logger_test_output.txt")
		_ = os.WriteFile(tmpfile, []byte(haystack), 0o600)
		t.Fatalf("expected output to contain %q\n\nfull output written to %s", needle, tmpfile)
	}
}

// MustNearAngle asserts two angles in degrees agree within tol, measured on the circle
// so 359.999 and 0.001 are close, not 359.998 apart
func MustNearAngle(t *testing.T, got, want, tol float64) {
	t.Helper()
	d := math.Mod(math.Abs(got-want), 360)
	if d > 180 {
		d = 360 - d
	}
	if d > tol {
		t.Fatalf("angle %.9f not within %v of %.9f (circular delta %.9f)", got, tol, want, d)
	}
}

// MustNear asserts two scalars agree within tol
func MustNear(t *testing.T, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Fatalf("value %.9f not within %v of %.9f", got, tol, want)
	}
}
