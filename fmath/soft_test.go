package fmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAbs(t *testing.T) {
	assert.Equal(t, 1.5, Abs(-1.5))
	assert.Equal(t, 1.5, Abs(1.5))
	assert.Equal(t, 0.0, Abs(math.Copysign(0, -1)))
	assert.False(t, math.Signbit(Abs(math.Copysign(0, -1))))
	assert.Equal(t, math.Inf(1), Abs(math.Inf(-1)))
	assert.True(t, math.IsNaN(Abs(math.NaN())))
}

func TestSoftSqrt(t *testing.T) {
	for _, x := range []float64{1e-8, 0.25, 0.5, 1, 2, 3, 4, 49, 1e6, 1e12, 12345.6789} {
		want := math.Sqrt(x)
		have := softSqrt(x)
		assert.InEpsilon(t, want, have, 1e-12, "sqrt(%v) = %v, want %v", x, have, want)
	}

	assert.Equal(t, 0.0, softSqrt(0))
	assert.Equal(t, math.Inf(1), softSqrt(math.Inf(1)))
	assert.True(t, math.IsNaN(softSqrt(-1)))
	assert.True(t, math.IsNaN(softSqrt(math.NaN())))
}

func TestSoftSin(t *testing.T) {
	for x := -10.0; x <= 10; x += 0.0937 {
		assert.InDelta(t, math.Sin(x), softSin(x), 1e-8, "sin(%v)", x)
	}
	assert.Equal(t, 0.0, softSin(0))
	assert.InDelta(t, 1, softSin(math.Pi/2), 1e-9)
	assert.True(t, math.IsNaN(softSin(math.NaN())))

	// beyond the reducible range the result is NaN, never garbage
	for _, x := range []float64{1 << 62, -(1 << 62), 1e300, math.Inf(1), math.Inf(-1)} {
		assert.True(t, math.IsNaN(softSin(x)), "sin(%g)", x)
	}
	assert.False(t, math.IsNaN(softSin(math.Nextafter(1<<62, 0))))
}

func TestSoftCos(t *testing.T) {
	for x := -10.0; x <= 10; x += 0.0937 {
		assert.InDelta(t, math.Cos(x), softCos(x), 1e-8, "cos(%v)", x)
	}
	assert.InDelta(t, 1, softCos(0), 1e-9)
	assert.InDelta(t, -1, softCos(math.Pi), 1e-9)
	assert.True(t, math.IsNaN(softCos(1e300)))
	assert.True(t, math.IsNaN(softCos(math.NaN())))
}

func TestHostedBackends(t *testing.T) {
	assert.Equal(t, math.Sqrt(2), Sqrt(2))
	assert.Equal(t, math.Sin(0.7), Sin(0.7))
	assert.Equal(t, math.Cos(0.7), Cos(0.7))
}
