//go:build tinygo && baremetal

package fmath

// Baremetal softfloat targets avoid pulling in libm; the software
// implementations are allocation-free and accurate to roughly 1e-9
// over the range the algebra produces.

// Sqrt returns the square root of x.
func Sqrt(x float64) float64 { return softSqrt(x) }

// Sin returns the sine of x radians; NaN for |x| >= 2^62, past which
// no reduction is possible.
func Sin(x float64) float64 { return softSin(x) }

// Cos returns the cosine of x radians; NaN for |x| >= 2^62, past which
// no reduction is possible.
func Cos(x float64) float64 { return softCos(x) }
