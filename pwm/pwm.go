// Package pwm implements the space-vector PWM modulator: delay
// compensation, optional six-step overmodulation, zero-sequence
// injection, magnitude clipping, and the realized-voltage feedback the
// V/Hz controller's integrators need to see what the inverter actually
// produced.
package pwm

import "tinygo.org/x/vhzdrive/vhzmath"

// Modulator holds the per-tick PWM state: whether six-step
// overmodulation is enabled, and the realizable-voltage history from
// which RealizedVoltage is computed.
type Modulator struct {
	IsSixStep bool

	// RealizedVoltage is the midpoint estimate of what the inverter
	// produced over the last two ticks, exposed so a V/Hz controller
	// (or a test) can read back what the modulator believes actually
	// reached the motor.
	RealizedVoltage vhzmath.Complex32

	uRefLimOld vhzmath.Complex32
}

// NewModulator returns a zero-initialized Modulator.
func NewModulator(isSixStep bool) *Modulator {
	return &Modulator{IsSixStep: isSixStep}
}

// DutyRatios computes the duty ratios for one PWM period and commits
// the realized-voltage feedback used by the next call. tS is the
// sample period, uRef the voltage reference in synchronous coordinates,
// uDC the DC-bus voltage (must be > 0), theta the current stator-flux
// angle, and w the angular speed of the synchronous frame.
func (m *Modulator) DutyRatios(tS float32, uRef vhzmath.Complex32, uDC, theta, w float32) [3]float32 {
	dABC, uRefLim := m.Output(tS, uRef, uDC, theta, w)
	m.Update(uRefLim)
	return dABC
}

// Output computes the duty ratios and the realizable voltage reference
// without mutating modulator state, so callers can inspect what would
// be committed before calling Update.
func (m *Modulator) Output(tS float32, uRef vhzmath.Complex32, uDC, theta, w float32) ([3]float32, vhzmath.Complex32) {
	// Advance the angle by the compute delay (tS) plus half the PWM
	// (zero-order-hold) delay (0.5*tS).
	thetaComp := theta + 1.5*tS*w

	uSRef := vhzmath.Rotate(thetaComp, uRef)

	if m.IsSixStep {
		uSRef = SixStepOvermodulation(uSRef, uDC)
	}

	dABC := DutyRatiosFromStator(uSRef, uDC)

	uSRefLim := vhzmath.ABCToComplex(dABC).MulReal(uDC)
	uRefLim := vhzmath.Rotate(-thetaComp, uSRefLim)

	return dABC, uRefLim
}

// Update commits uRefLim as the realizable voltage for this tick and
// recomputes RealizedVoltage as the midpoint between this tick and the
// last.
func (m *Modulator) Update(uRefLim vhzmath.Complex32) {
	m.RealizedVoltage = m.uRefLimOld.Add(uRefLim).MulReal(0.5)
	m.uRefLimOld = uRefLim
}
