package core

import (
	"math"
	"testing"
)

func TestVecArithmetic(t *testing.T) {
	a := V(3, 4)
	b := V(1, 1)

	if got := a.Add(b); got != V(4, 5) {
		t.Errorf("Add() = %v, expected (4, 5)", got)
	}
	if got := a.Sub(b); got != V(2, 3) {
		t.Errorf("Sub() = %v, expected (2, 3)", got)
	}
	if got := a.Scale(2); got != V(6, 8) {
		t.Errorf("Scale() = %v, expected (6, 8)", got)
	}
	if a.Len() != 5 {
		t.Errorf("Len() = %f, expected 5", a.Len())
	}
	if d := V(0, 0).Dist(a); d != 5 {
		t.Errorf("Dist() = %f, expected 5", d)
	}
}

func TestPolar(t *testing.T) {
	v := Polar(math.Pi/2, 2)
	if math.Abs(v.X) > 1e-12 || math.Abs(v.Y-2) > 1e-12 {
		t.Errorf("Polar(pi/2, 2) = %v, expected (0, 2)", v)
	}
	if math.Abs(v.Angle()-math.Pi/2) > 1e-12 {
		t.Errorf("Angle() = %f, expected pi/2", v.Angle())
	}
}

func TestOffset(t *testing.T) {
	tests := []struct {
		name   string
		in     Offset
		finite bool
	}{
		{"zero", Offset{}, true},
		{"regular", Offset{X: 0.3, Y: -0.7}, true},
		{"nan x", Offset{X: math.NaN()}, false},
		{"inf y", Offset{Y: math.Inf(-1)}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.in.IsFinite() != tc.finite {
				t.Errorf("IsFinite() = %v, expected %v", tc.in.IsFinite(), tc.finite)
			}
		})
	}

	clamped := Offset{X: 7, Y: -9}.Clamp(2)
	if clamped != (Offset{X: 2, Y: -2}) {
		t.Errorf("Clamp(2) = %v, expected (2, -2)", clamped)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}

	if r.Right() != 30 || r.Bottom() != 25 {
		t.Errorf("edges = (%d, %d), expected (30, 25)", r.Right(), r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestApproach(t *testing.T) {
	if got := Approach(0, 100, 0.25); got != 25 {
		t.Errorf("Approach(0, 100, 0.25) = %f, expected 25", got)
	}
	if got := Approach(50, 50, 0.25); got != 50 {
		t.Errorf("Approach at target should stay, got %f", got)
	}
}
