package ga2

import (
	"fmt"

	"dasa.cc/ga/fmath"
)

// Rotor is a unit-norm, even-grade multivector applied to operands by
// the sandwich product. The defined type keeps transformation
// operators out of general multivector arithmetic; convert explicitly
// when a rotor must be treated as a value.
type Rotor Multivector

// Exp maps a bivector generator onto a rotor. With theta the magnitude
// of the bivector part B, the rotor is cos(theta) + sin(theta)*(B/theta)
// and rotates by 2*theta in the plane of B; a near-zero generator gives
// the identity rotor. Grades other than 2 in the argument are ignored.
func Exp(b Multivector) Rotor {
	theta := fmath.Abs(b[3])
	if theta < eps {
		return Rotor(Scalar(1))
	}
	s := fmath.Sin(theta) / theta
	return Rotor(Multivector{fmath.Cos(theta), 0, 0, s * b[3]})
}

// NewRotor returns the rotor rotating by angle radians in the e12
// plane, carrying e1 toward e2 for positive angles.
func NewRotor(angle float64) Rotor {
	return Exp(Multivector{0, 0, 0, angle / 2})
}

// Apply rotates v by the sandwich product. Grades and norms are
// preserved; a vector in the rotor's plane rotates by twice the
// generator angle.
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
