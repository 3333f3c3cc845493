package pwm

import (
	"github.com/orsinium-labs/tinymath"

	"tinygo.org/x/vhzdrive/vhzmath"
)

// SixStepOvermodulation folds the stator-coordinate voltage reference
// towards the hexagon vertices of the switching-state space when the
// requested magnitude exceeds what linear SVPWM can realize, extending
// the usable voltage range at the cost of waveform linearity near the
// DC-bus limit.
func SixStepOvermodulation(uSRef vhzmath.Complex32, uDC float32) vhzmath.Complex32 {
	r := tinymath.Min(uSRef.Abs(), (2.0/3.0)*uDC)

	if tinymath.Sqrt(3)*r <= uDC {
		return uSRef
	}

	theta := uSRef.Arg()
	sector := tinymath.Floor(3 * theta / vhzmath.Pi)
	theta0 := theta - sector*vhzmath.Pi/3

	alphaG := vhzmath.Pi/6 - tinymath.Acos(uDC/(tinymath.Sqrt(3)*r))

	switch {
	case alphaG <= theta0 && theta0 <= vhzmath.Pi/6:
		theta0 = alphaG
	case vhzmath.Pi/6 <= theta0 && theta0 <= vhzmath.Pi/3-alphaG:
		theta0 = vhzmath.Pi/3 - alphaG
	}

	return vhzmath.Cis(theta0 + sector*vhzmath.Pi/3).MulReal(r)
}

// DutyRatiosFromStator converts a stator-coordinate voltage reference
// into three duty ratios in [0, 1] via symmetrical SVPWM: zero-sequence
// injection followed by a minimum-phase-error magnitude clip.
func DutyRatiosFromStator(uSRef vhzmath.Complex32, uDC float32) [3]float32 {
	uABC := vhzmath.ComplexToABC(uSRef)

	maxU := max3(uABC)
	minU := min3(uABC)
	u0 := 0.5 * (maxU + minU)
	for i := range uABC {
		uABC[i] -= u0
	}

	m := (2 / uDC) * max3(uABC)
	if m > 1 {
		for i := range uABC {
			uABC[i] /= m
		}
	}

	var dABC [3]float32
	for i := range uABC {
		d := uABC[i]/uDC + 0.5
		// The magnitude clip above keeps d mathematically within
		// [0, 1]; clamp anyway so floating-point rounding at the
		// boundary never pushes a ratio outside the interval.
		dABC[i] = vhzmath.Clamp(d, 0, 1)
	}
	return dABC
}

func max3(x [3]float32) float32 {
	m := x[0]
	if x[1] > m {
		m = x[1]
	}
	if x[2] > m {
		m = x[2]
	}
	return m
}

func min3(x [3]float32) float32 {
	m := x[0]
	if x[1] < m {
		m = x[1]
	}
	if x[2] < m {
		m = x[2]
	}
	return m
}
