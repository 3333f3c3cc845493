package vhzmath

import "github.com/orsinium-labs/tinymath"

// Pi is kept single-precision throughout rather than truncated from
// math.Pi, since every caller here works in float32.
const Pi float32 = 3.1415927

// sqrt3 is used often enough in the abc<->complex transforms to cache
// it rather than call tinymath.Sqrt(3) on every tick.
var sqrt3 = tinymath.Sqrt(3)

// ABCToComplex maps three phase quantities onto a single complex space
// vector using the amplitude-invariant Clarke transform:
//
//	z = (2/3)*a - (1/3)*(b+c) + j*(1/sqrt3)*(b-c)
func ABCToComplex(x [3]float32) Complex32 {
	a, b, c := x[0], x[1], x[2]
	return Complex32{
		Re: (2.0/3.0)*a - (b+c)/3.0,
		Im: (b - c) / sqrt3,
	}
}

// ComplexToABC is the inverse of ABCToComplex with zero zero-sequence
// component:
//
//	a = Re(z)
//	b = 0.5*(-Re(z) + sqrt3*Im(z))
//	c = 0.5*(-Re(z) - sqrt3*Im(z))
func ComplexToABC(z Complex32) [3]float32 {
	return [3]float32{
		z.Re,
		0.5 * (-z.Re + sqrt3*z.Im),
		0.5 * (-z.Re - sqrt3*z.Im),
	}
}

// Wrap folds theta into [-pi, pi), idempotent: Wrap(Wrap(x)) == Wrap(x).
//
// Implemented with Floor rather than a modulo operator so it holds for
// negative theta too: (theta+pi) mod 2*pi, computed as a-n*floor(a/n).
func Wrap(theta float32) float32 {
	const twoPi = 2 * Pi
	shifted := theta + Pi
	wrapped := shifted - twoPi*tinymath.Floor(shifted/twoPi)
	return wrapped - Pi
}
