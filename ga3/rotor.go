package ga3

import (
	"fmt"

	"dasa.cc/ga/blade"
	"dasa.cc/ga/fmath"
)

// Rotor is a unit-norm, even-grade multivector applied to operands by
// the sandwich product. The defined type keeps transformation
// operators out of general multivector arithmetic; convert explicitly
// when a rotor must be treated as a value.
type Rotor Multivector

// Exp maps a bivector generator onto a rotor. Every bivector in three
// dimensions is simple, so with theta the magnitude of the bivector
// part B the rotor is cos(theta) + sin(theta)*(B/theta), rotating by
// 2*theta in the plane of B; a near-zero generator gives the identity
// rotor. Grades other than 2 in the argument are ignored.
func Exp(b Multivector) Rotor {
	e12, e13, e23 := b[blade.I2], b[blade.E1|blade.E3], b[blade.E2|blade.E3]
	theta := fmath.Sqrt(e12*e12 + e13*e13 + e23*e23)
	if theta < eps {
		return Rotor(Scalar(1))
	}
	s := fmath.Sin(theta) / theta
	var m Multivector
	m[0] = fmath.Cos(theta)
	m[blade.I2] = s * e12
	m[blade.E1|blade.E3] = s * e13
	m[blade.E2|blade.E3] = s * e23
	return Rotor(m)
}

// NewRotor returns the rotor rotating by angle radians in the plane of
// the given bivector, which need not be unit. A degenerate plane is
// reported as ErrDegenerateNorm.
func NewRotor(angle float64, plane Multivector) (Rotor, error) {
	unit, err := plane.Grade(2).Normalize()
	if err != nil {
		return Rotor(Scalar(1)), fmt.Errorf("ga3: rotor: %w", ErrDegenerateNorm)
	}
	return Exp(unit.Scale(angle / 2)), nil
}

// Apply rotates v by the sandwich product. Grades and norms are
// preserved; vectors in the rotor's plane rotate by twice the
// generator angle and the orthogonal complement is fixed.
func (r Rotor) Apply(v Multivector) Multivector {
	m := Multivector(r)
	return m.Rev().Mul(v).Mul(m)
}

// Compose returns the single rotor equivalent to applying r first and
// s second; rotor composition is the geometric product, not addition.
func (r Rotor) Compose(s Rotor) Rotor {
	return Rotor(Multivector(r).Mul(Multivector(s)))
}

// Rev returns the reverse of r, which for a unit rotor is its inverse.
func (r Rotor) Rev() Rotor {
	return Rotor(Multivector(r).Rev())
}

// Norm returns the norm of r; 1 up to rounding for any rotor built by
// Exp.
func (r Rotor) Norm() float64 {
	return Multivector(r).Norm()
}

func (r Rotor) String() string {
	return fmt.Sprintf("Rotor(%s)", Multivector(r))
}
