// Package approx provides tolerance-based float comparison policies
// for validating algebraic identities. Policies are consumed by tests
// and callers; algebra operations themselves stay exact.
package approx

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Policy reports whether two values are equal under some tolerance
// strategy.
type Policy[T constraints.Float] func(a, b T) bool

// Abs compares the raw difference against a fixed tolerance.
func Abs[T constraints.Float](tol T) Policy[T] {
	return func(a, b T) bool {
		return abs(a-b) <= tol
	}
}

// Rel scales the tolerance by the larger operand magnitude. Values
// within the fixed tolerance of each other pass outright so that
// comparisons near zero remain meaningful.
func Rel[T constraints.Float](tol T) Policy[T] {
	return func(a, b T) bool {
		d := abs(a - b)
		if d <= tol {
			return true
		}
		m := abs(a)
		if mb := abs(b); mb > m {
			m = mb
		}
		return d <= tol*m
	}
}

// Ulps compares float64 values by their distance in representable
// steps, defined over finite values only: an infinity is equal to
// itself and nothing else, even though +Inf sits one bit pattern above
// MaxFloat64. Values of opposite sign are equal only if exactly equal
// (covering +0 and -0); NaN is unequal to everything including itself.
func Ulps(n uint64) Policy[float64] {
	return func(a, b float64) bool {
		if a != a || b != b {
			return false
		}
		if math.IsInf(a, 0) || math.IsInf(b, 0) {
			return a == b
		}
		if math.Signbit(a) != math.Signbit(b) {
			return a == b
		}
		ua, ub := math.Float64bits(a), math.Float64bits(b)
		if ua > ub {
			ua, ub = ub, ua
		}
		return ub-ua <= n
	}
}

// Ulps32 is Ulps for float32 values.
func Ulps32(n uint32) Policy[float32] {
	return func(a, b float32) bool {
		if a != a || b != b {
			return false
		}
		if math.IsInf(float64(a), 0) || math.IsInf(float64(b), 0) {
			return a == b
		}
		if math.Signbit(float64(a)) != math.Signbit(float64(b)) {
			return a == b
		}
		ua, ub := math.Float32bits(a), math.Float32bits(b)
		if ua > ub {
			ua, ub = ub, ua
		}
		return ub-ua <= n
	}
}

// Eq reports whether a and b are equal element-wise under p.
func Eq[T constraints.Float](a, b []T, p Policy[T]) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !p(a[i], b[i]) {
			return false
		}
	}
	return true
}

func abs[T constraints.Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}
