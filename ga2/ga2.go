// Package ga2 implements the two-dimensional Euclidean geometric
// algebra over float64 coefficients.
package ga2

import (
	"errors"
	"fmt"

	"golang.org/x/image/math/f32"

	"dasa.cc/ga/approx"
	"dasa.cc/ga/blade"
	"dasa.cc/ga/fmath"
)

// ErrDegenerateNorm is reported by Normalize and Inverse when the
// operation would divide by a vanishing magnitude.
var ErrDegenerateNorm = errors.New("degenerate norm")

// eps bounds magnitudes treated as zero by Normalize and Inverse.
const eps = 1e-12

// Multivector is a fixed tuple of blade coefficients in mask order
// {1, e1, e2, e12}; the coefficient index is the blade bitmask. The
// zero value is the zero multivector. Operations return new values.
type Multivector [4]float64

// New constructs a multivector from the full coefficient tuple.
func New(s, e1, e2, e12 float64) Multivector {
	return Multivector{s, e1, e2, e12}
}

// Scalar returns the grade-0 multivector s.
func Scalar(s float64) Multivector {
	return Multivector{s}
}

// Vector returns the grade-1 multivector x*e1 + y*e2.
func Vector(x, y float64) Multivector {
	return Multivector{0, x, y, 0}
}

// Bivector returns s*(ei^ej) for 1-based basis indices; orientation is
// resolved by the sign engine, so Bivector(2, 1, s) == Bivector(1, 2, -s).
// Repeated or out-of-range indices give the zero multivector.
func Bivector(i, j int, s float64) Multivector {
	var m Multivector
	if i < 1 || i > 2 || j < 1 || j > 2 || i == j {
		return m
	}
	a, b := uint8(1)<<(i-1), uint8(1)<<(j-1)
	m[a^b] = s * blade.Sign(a, b)
	return m
}

// Pseudoscalar returns the unit area element e12.
func Pseudoscalar() Multivector {
	return Multivector{0, 0, 0, 1}
}

// InvPseudoscalar returns the inverse area element -e12.
func InvPseudoscalar() Multivector {
	return Multivector{0, 0, 0, -1}
}

// FromVec2 promotes a graphics vector to a grade-1 multivector.
func FromVec2(v f32.Vec2) Multivector {
	return Vector(float64(v[0]), float64(v[1]))
}

// Vec2 returns the grade-1 part as a graphics vector.
func (a Multivector) Vec2() f32.Vec2 {
	return f32.Vec2{float32(a[blade.E1]), float32(a[blade.E2])}
}

// IsZero reports whether every coefficient is exactly zero.
func (a Multivector) IsZero() bool {
	return a == Multivector{}
}

// Add returns a + b componentwise.
func (a Multivector) Add(b Multivector) Multivector {
	for i, v := range b {
		a[i] += v
	}
	return a
}

// Sub returns a - b componentwise.
func (a Multivector) Sub(b Multivector) Multivector {
	for i, v := range b {
		a[i] -= v
	}
	return a
}

// Neg returns -a.
func (a Multivector) Neg() Multivector {
	for i, v := range a {
		a[i] = -v
	}
	return a
}

// Scale returns a with every coefficient multiplied by s.
func (a Multivector) Scale(s float64) Multivector {
	for i, v := range a {
		a[i] = v * s
	}
	return a
}

// Div returns a with every coefficient divided by s.
func (a Multivector) Div(s float64) Multivector {
	return a.Scale(1 / s)
}

// product runs the shared blade accumulation under keep.
func (a Multivector) product(b Multivector, keep blade.Filter) Multivector {
	var c Multivector
	blade.Product(c[:], a[:], b[:], keep)
	return c
}

// Mul returns the geometric product ab.
func (a Multivector) Mul(b Multivector) Multivector {
	return a.product(b, blade.All)
}

// Wedge returns the outer product a^b; zero whenever the operands
// share a basis direction, so v.Wedge(v) vanishes for any vector v.
func (a Multivector) Wedge(b Multivector) Multivector {
	return a.product(b, blade.Outer)
}

// Dot returns the inner product a·b, the grade-lowering complement of
// Wedge; for two vectors it is the Euclidean dot product as a scalar
// multivector.
func (a Multivector) Dot(b Multivector) Multivector {
	return a.product(b, blade.Inner)
}

// Lc returns the left contraction of a onto b.
func (a Multivector) Lc(b Multivector) Multivector {
	return a.product(b, blade.LeftContract)
}

// Rc returns the right contraction of a by b.
func (a Multivector) Rc(b Multivector) Multivector {
	return a.product(b, blade.RightContract)
}

// ScalarProduct returns the grade-0 part of rev(a)*b, the sum of
// pairwise coefficient products.
func (a Multivector) ScalarProduct(b Multivector) float64 {
	return a.Rev().product(b, blade.ScalarPart)[0]
}

// Commutator returns (ab - ba)/2.
func (a Multivector) Commutator(b Multivector) Multivector {
	return a.Mul(b).Sub(b.Mul(a)).Scale(0.5)
}

// Anticommutator returns (ab + ba)/2.
func (a Multivector) Anticommutator(b Multivector) Multivector {
	return a.Mul(b).Add(b.Mul(a)).Scale(0.5)
}

// Grade projects onto grade k; grades outside [0, 2] are zero.
func (a Multivector) Grade(k int) Multivector {
	var c Multivector
	for i, v := range a {
		if blade.Grade(uint8(i)) == k {
			c[i] = v
		}
	}
	return c
}

// Rev reverses the basis-vector factors of every blade, flipping
// grade-k coefficients by (-1)^(k(k-1)/2).
func (a Multivector) Rev() Multivector {
	for i, v := range a {
		if blade.Grade(uint8(i))%4 > 1 {
			a[i] = -v
		}
	}
	return a
}

// Invol is the grade involution, flipping odd-grade coefficients.
func (a Multivector) Invol() Multivector {
	for i, v := range a {
		if blade.Grade(uint8(i))%2 == 1 {
			a[i] = -v
		}
	}
	return a
}

// Conj is the Clifford conjugate, the composition of Rev and Invol:
// grade-k coefficients flip by (-1)^(k(k+1)/2).
func (a Multivector) Conj() Multivector {
	for i, v := range a {
		if k := blade.Grade(uint8(i)) % 4; k == 1 || k == 2 {
			a[i] = -v
		}
	}
	return a
}

// Dual returns the orthogonal complement a*inv(e12).
func (a Multivector) Dual() Multivector {
	return a.Mul(InvPseudoscalar())
}

// NormSq returns the squared norm, the grade-0 part of rev(a)*a;
// non-negative under the Euclidean metric.
func (a Multivector) NormSq() float64 {
	var n float64
	for _, v := range a {
		n += v * v
	}
	return n
}

// Norm returns the norm of a.
func (a Multivector) Norm() float64 {
	return fmath.Sqrt(a.NormSq())
}

// Normalize scales a to unit norm. A near-zero multivector has no
// meaningful direction and is rejected with ErrDegenerateNorm rather
// than producing non-finite coefficients.
func (a Multivector) Normalize() (Multivector, error) {
	n := a.Norm()
	if n < eps {
		return Multivector{}, fmt.Errorf("ga2: normalize: %w", ErrDegenerateNorm)
	}
	return a.Scale(1 / n), nil
}

// NormalizeTo scales a to the given norm.
func (a Multivector) NormalizeTo(m float64) (Multivector, error) {
	u, err := a.Normalize()
	if err != nil {
		return u, err
	}
	return u.Scale(m), nil
}

// DistanceSq returns the squared norm of a - b.
func (a Multivector) DistanceSq(b Multivector) float64 {
	return a.Sub(b).NormSq()
}

// Distance returns the norm of a - b.
func (a Multivector) Distance(b Multivector) float64 {
	return a.Sub(b).Norm()
}

// Inverse returns the multiplicative inverse conj(a)/(a*conj(a))0,
// which in dimension two is both the left and the right inverse. The
// denominator vanishes for zero divisors such as 1+e1, reported as
// ErrDegenerateNorm.
func (a Multivector) Inverse() (Multivector, error) {
	conj := a.Conj()
	den := a.Mul(conj)[0]
	if fmath.Abs(den) < eps {
		return Multivector{}, fmt.Errorf("ga2: inverse: %w", ErrDegenerateNorm)
	}
	return conj.Div(den), nil
}

// IsInvertible reports whether Inverse succeeds for a.
func (a Multivector) IsInvertible() bool {
	return fmath.Abs(a.Mul(a.Conj())[0]) >= eps
}

// ApproxEq reports componentwise equality under the comparison policy.
func (a Multivector) ApproxEq(b Multivector, p approx.Policy[float64]) bool {
	return approx.Eq(a[:], b[:], p)
}

func (a Multivector) String() string {
	return fmt.Sprintf("%g + %ge1 + %ge2 + %ge12", a[0], a[1], a[2], a[3])
}
