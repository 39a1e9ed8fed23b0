// Package blade encodes the basis blades of low-dimensional Euclidean
// geometric algebras as bitmasks and derives the blade product sign table.
package blade

import "math/bits"

// Basis vector masks. A blade is the xor of its basis vectors; bit i
// set means e(i+1) participates. The scalar blade is the zero mask.
const (
	E1 uint8 = 1 << iota
	E2
	E3

	// I2 and I3 are the pseudoscalars of the 2D and 3D algebras.
	I2 = E1 | E2
	I3 = E1 | E2 | E3
)

// N is the number of blades covered by the sign table; both supported
// algebras index into the same table, the 2D algebra using masks below 4.
const N = 8

// Grade returns the number of independent basis vectors of b.
func Grade(b uint8) int {
	return bits.OnesCount8(b)
}

// signs memoizes the product sign for every blade pair.
var signs [N][N]float64

func init() {
	for a := 0; a < N; a++ {
		for b := 0; b < N; b++ {
			signs[a][b] = signOf(uint8(a), uint8(b))
		}
	}
}

// signOf counts the transpositions needed to interleave the basis
// vectors of a with those of b into canonical order; each contributes
// a factor of -1. Basis vectors square to +1 so shared vectors cancel
// out of the mask without a sign penalty.
func signOf(a, b uint8) float64 {
	a >>= 1
	n := 0
	for a != 0 {
		n += bits.OnesCount8(a & b)
		a >>= 1
	}
	if n&1 == 0 {
		return 1
	}
	return -1
}

// Sign returns the sign of the geometric product of blades a and b
// under the Euclidean metric; always +1 or -1. The product blade is a^b.
func Sign(a, b uint8) float64 {
	return signs[a][b]
}

// Filter reports whether the blade pair (a, b) contributes to a
// product derived from the geometric product accumulation.
type Filter func(a, b uint8) bool

// All keeps every term, giving the geometric product.
func All(a, b uint8) bool { return true }

// Outer keeps independent blades only; the result grade is
// Grade(a)+Grade(b) and any shared basis vector annihilates the term.
func Outer(a, b uint8) bool { return a&b == 0 }

// Inner keeps the grade-lowering complement of Outer: terms whose
// result grade is |Grade(a)-Grade(b)|.
func Inner(a, b uint8) bool {
	d := Grade(a) - Grade(b)
	if d < 0 {
		d = -d
	}
	return Grade(a^b) == d
}

// LeftContract keeps terms where a is contained in b.
func LeftContract(a, b uint8) bool { return a&b == a }

// RightContract keeps terms where b is contained in a.
func RightContract(a, b uint8) bool { return a&b == b }

// ScalarPart keeps grade-0 results only.
func ScalarPart(a, b uint8) bool { return a == b }

// Product accumulates the blade-pair products of coefficient tuples a
// and b into dst, keeping the terms keep admits:
//
//	dst[i^j] += a[i] * b[j] * Sign(i, j)
//
// All tuples must have the same length, a power of two no greater
// than N. The geometric, outer, and inner products are views of this
// one accumulation under different filters, which is what guarantees
// ab = a·b + a^b for vector operands.
func Product(dst, a, b []float64, keep Filter) {
	for i := range a {
		if a[i] == 0 {
			continue
		}
		for j := range b {
			if b[j] == 0 || !keep(uint8(i), uint8(j)) {
				continue
			}
			dst[i^j] += a[i] * b[j] * signs[i][j]
		}
	}
}
