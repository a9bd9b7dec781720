// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestCubicInterpolate_Endpoints(t *testing.T) {
	t.Parallel()

	// At x=0 the spline passes through y1, at x=1 through y2
	got := CubicInterpolate(0.1, 0.4, 0.8, 0.9, 0)
	if math.Abs(float64(got-0.4)) > 1e-6 {
		t.Errorf("CubicInterpolate(x=0) = %v, want 0.4", got)
	}

	got = CubicInterpolate(0.1, 0.4, 0.8, 0.9, 1)
	if math.Abs(float64(got-0.8)) > 1e-6 {
		t.Errorf("CubicInterpolate(x=1) = %v, want 0.8", got)
	}
}

func TestCubicInterpolate_Constant(t *testing.T) {
	t.Parallel()

	// A constant signal interpolates to the same constant everywhere
	for _, x := range []float32{0, 0.25, 0.5, 0.75, 1} {
		got := CubicInterpolate(0.5, 0.5, 0.5, 0.5, x)
		if math.Abs(float64(got-0.5)) > 1e-6 {
			t.Errorf("CubicInterpolate(constant, x=%v) = %v, want 0.5", x, got)
		}
	}
}

func TestCubicInterpolate_Linear(t *testing.T) {
	t.Parallel()

	// Catmull-Rom reproduces linear ramps exactly
	got := CubicInterpolate(0.0, 0.1, 0.2, 0.3, 0.5)
	if math.Abs(float64(got-0.15)) > 1e-6 {
		t.Errorf("CubicInterpolate(linear, x=0.5) = %v, want 0.15", got)
	}
}

func TestCubicInterpolate_Midpoint(t *testing.T) {
	t.Parallel()

	// Symmetric neighborhood: midpoint stays between y1 and y2
	got := CubicInterpolate(0.0, 0.2, 0.8, 1.0, 0.5)
	if got < 0.2 || got > 0.8 {
		t.Errorf("CubicInterpolate midpoint = %v, want within [0.2, 0.8]", got)
	}
}

func BenchmarkCubicInterpolate(b *testing.B) {
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_ = CubicInterpolate(0.1, 0.2, 0.3, 0.4, 0.5)
	}
}
