// SPDX-License-Identifier: Unlicense OR MIT

// Package fmath contains float helpers shared by the geometry packages.
package fmath

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Min returns the smallest of its arguments.
func Min[T constraints.Float](v T, vs ...T) T {
	for _, w := range vs {
		if w < v {
			v = w
		}
	}
	return v
}

// Max returns the largest of its arguments.
func Max[T constraints.Float](v T, vs ...T) T {
	for _, w := range vs {
		if w > v {
			v = w
		}
	}
	return v
}

// Abs returns the absolute value of v.
func Abs[T constraints.Float](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// Near reports whether a and b differ by less than tol.
func Near[T constraints.Float](a, b, tol T) bool {
	return Abs(a-b) < tol
}

// Floor returns the greatest integer value less than or equal to v.
func Floor[T constraints.Float](v T) int {
	return int(math.Floor(float64(v)))
}

// Ceil returns the least integer value greater than or equal to v.
func Ceil[T constraints.Float](v T) int {
	return int(math.Ceil(float64(v)))
}

// Round returns the nearest integer, rounding half away from zero.
func Round[T constraints.Float](v T) int {
	return int(math.Round(float64(v)))
}
