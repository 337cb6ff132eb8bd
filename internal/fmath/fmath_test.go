// SPDX-License-Identifier: Unlicense OR MIT

package fmath

import "testing"

func TestMinMax(t *testing.T) {
	if got := Min[float32](3, -1, 2); got != -1 {
		t.Errorf("Min = %v, want -1", got)
	}
	if got := Max[float32](3, -1, 2); got != 3 {
		t.Errorf("Max = %v, want 3", got)
	}
	if got := Min(1.5); got != 1.5 {
		t.Errorf("Min of a single value = %v, want 1.5", got)
	}
}

func TestNear(t *testing.T) {
	if !Near(float32(0.1)+0.2, 0.3, 1e-6) {
		t.Error("0.1+0.2 not near 0.3")
	}
	if Near(1.0, 1.1, 1e-3) {
		t.Error("1.0 near 1.1")
	}
}

func TestRounding(t *testing.T) {
	tests := []struct {
		v                  float32
		floor, ceil, round int
	}{
		{1.5, 1, 2, 2},
		{-1.5, -2, -1, -2},
		{2, 2, 2, 2},
		{0.25, 0, 1, 0},
	}
	for _, tc := range tests {
		if got := Floor(tc.v); got != tc.floor {
			t.Errorf("Floor(%v) = %d, want %d", tc.v, got, tc.floor)
		}
		if got := Ceil(tc.v); got != tc.ceil {
			t.Errorf("Ceil(%v) = %d, want %d", tc.v, got, tc.ceil)
		}
		if got := Round(tc.v); got != tc.round {
			t.Errorf("Round(%v) = %d, want %d", tc.v, got, tc.round)
		}
	}
}
