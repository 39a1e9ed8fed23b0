//go:build tinygo && !baremetal

package fmath

import "math"

// Freestanding targets with an OS runtime still link the standard
// library routines.

// Sqrt returns the square root of x.
func Sqrt(x float64) float64 { return math.Sqrt(x) }

// Sin returns the sine of x radians.
func Sin(x float64) float64 { return math.Sin(x) }

// Cos returns the cosine of x radians.
func Cos(x float64) float64 { return math.Cos(x) }
