// Package testutil provides shared test utilities and fixtures.
//
// This package centralises common test helpers to reduce code duplication
// across test files and improve test maintainability.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/banshee-data/axisroll/internal/grid"
)

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil.
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

// AssertGridEqual fails the test if the grids differ in shape or in any
// plane, reporting the first differing plane.
func AssertGridEqual[T any](t *testing.T, want, got *grid.Grid[T]) {
	t.Helper()
	w0, w1, w2 := want.Shape()
	g0, g1, g2 := got.Shape()
	if w0 != g0 || w1 != g1 || w2 != g2 {
		t.Fatalf("shape = (%d, %d, %d), want (%d, %d, %d)", g0, g1, g2, w0, w1, w2)
	}
	for k := 0; k < w2; k++ {
		wp, _ := want.Plane(k)
		gp, _ := got.Plane(k)
		if diff := cmp.Diff(wp, gp); diff != "" {
			t.Fatalf("plane %d mismatch (-want +got):\n%s", k, diff)
		}
	}
}

// WriteFile writes content to name inside a fresh temp dir and returns the path.
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
