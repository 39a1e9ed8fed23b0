package fmath

import "math"

// Software numeric routines for targets without libm. Compiled
// everywhere so the hosted tests can validate them against the
// standard library; only the baremetal backend links them in.

const (
	pi     = 3.14159265358979323846
	halfPi = pi / 2
	twoPi  = 2 * pi

	// maxAngle bounds the angle reduction: beyond it x/twoPi leaves
	// the exact int64 range and the spacing between adjacent float64
	// values already exceeds a full turn.
	maxAngle = 1 << 62

	nan = 0x7FF8000000000001
)

// Abs returns |x| by clearing the sign bit; shared by every backend.
func Abs(x float64) float64 {
	return math.Float64frombits(math.Float64bits(x) &^ (1 << 63))
}

// softSqrt seeds an estimate by halving the exponent bits and refines
// it with four Newton iterations.
func softSqrt(x float64) float64 {
	switch {
	case x != x || x < 0:
		return math.Float64frombits(nan)
	case x == 0:
		return x
	case x > math.MaxFloat64: // +Inf
		return x
	}
	y := math.Float64frombits(math.Float64bits(x)>>1 + 0x1FF8000000000000)
	for i := 0; i < 4; i++ {
		y = (y + x/y) / 2
	}
	return y
}

// softSin reduces x into [-pi/2, pi/2] and evaluates a degree-13
// Taylor polynomial; worst-case error at the fold boundary is below
// 1e-9. Arguments with magnitude maxAngle or above cannot be reduced
// and yield NaN.
func softSin(x float64) float64 {
	if x != x || Abs(x) >= maxAngle {
		return math.Float64frombits(nan)
	}
	r := x - twoPi*floor(x/twoPi+0.5)
	if r > halfPi {
		r = pi - r
	} else if r < -halfPi {
		r = -pi - r
	}
	return sinPoly(r)
}

// softCos is softSin shifted by a quarter turn.
func softCos(x float64) float64 {
	return softSin(x + halfPi)
}

// sinPoly evaluates sin on [-pi/2, pi/2].
func sinPoly(x float64) float64 {
	x2 := x * x
	return x * (1 + x2*(-1.0/6+x2*(1.0/120+x2*(-1.0/5040+x2*(1.0/362880+x2*(-1.0/39916800+x2*(1.0/6227020800)))))))
}

// floor for the argument range of the angle reduction; the maxAngle
// guard keeps |x| far below 2^63 so the int64 conversion is exact.
func floor(x float64) float64 {
	t := float64(int64(x))
	if t > x {
		t--
	}
	return t
}
