// Package vhzmath implements the complex-scalar algebra and the
// three-phase/space-vector transforms shared by the rate limiter, the
// PWM modulator, and the V/Hz controller.
//
// A "complex" quantity here is a space vector: an ordered (real,
// imaginary) pair representing a rotating field, not a general-purpose
// numeric type. Arithmetic is float32 throughout, matching the
// single-precision budget of the control loop.
package vhzmath

import "github.com/orsinium-labs/tinymath"

// Complex32 is a minimal complex value type, float32 in, float32 out,
// sized for a single control tick on an FPU-less microcontroller.
type Complex32 struct {
	Re, Im float32
}

// Zero is the additive identity, spelled out for readability at call
// sites that zero-initialize controller state.
var Zero = Complex32{}

// New builds a Complex32 from its real and imaginary parts.
func New(re, im float32) Complex32 {
	return Complex32{Re: re, Im: im}
}

// Real lifts a real scalar into the complex plane.
func Real(re float32) Complex32 {
	return Complex32{Re: re}
}

func (z Complex32) Add(w Complex32) Complex32 {
	return Complex32{Re: z.Re + w.Re, Im: z.Im + w.Im}
}

func (z Complex32) Sub(w Complex32) Complex32 {
	return Complex32{Re: z.Re - w.Re, Im: z.Im - w.Im}
}

// MulReal scales z by a real factor.
func (z Complex32) MulReal(k float32) Complex32 {
	return Complex32{Re: z.Re * k, Im: z.Im * k}
}

func (z Complex32) Mul(w Complex32) Complex32 {
	return Complex32{
		Re: z.Re*w.Re - z.Im*w.Im,
		Im: z.Re*w.Im + z.Im*w.Re,
	}
}

func (z Complex32) Conj() Complex32 {
	return Complex32{Re: z.Re, Im: -z.Im}
}

// Abs2 is the squared magnitude, cheaper than Abs and exact where a
// caller only needs to compare against zero (see the degenerate-flux
// guard in the stator-frequency estimator).
func (z Complex32) Abs2() float32 {
	return z.Re*z.Re + z.Im*z.Im
}

func (z Complex32) Abs() float32 {
	return tinymath.Sqrt(z.Abs2())
}

// Arg returns the angle of z in (-pi, pi], matching atan2's range.
func (z Complex32) Arg() float32 {
	return tinymath.Atan2(z.Im, z.Re)
}

// Cis returns exp(j*theta) = (cos theta, sin theta), the unit rotation
// used throughout the controller for frame transforms and delay
// compensation.
func Cis(theta float32) Complex32 {
	return Complex32{Re: tinymath.Cos(theta), Im: tinymath.Sin(theta)}
}

// Rotate returns z rotated by theta radians, i.e. Cis(theta).Mul(z).
func Rotate(theta float32, z Complex32) Complex32 {
	return Cis(theta).Mul(z)
}
