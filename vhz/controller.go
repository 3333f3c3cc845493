// Package vhz implements the V/Hz (scalar) induction-motor controller:
// a dynamic stator-frequency/slip estimator in rotor-flux coordinates,
// current-feedback voltage synthesis, and the tick orchestrator that
// sequences the rate limiter and PWM modulator around them.
package vhz

import (
	"tinygo.org/x/vhzdrive/pwm"
	"tinygo.org/x/vhzdrive/ratelimiter"
	"tinygo.org/x/vhzdrive/vhzmath"
)

// Model is the sensing contract the controller is generic over: most
// recent phase currents and DC-bus voltage, in engineering units.
type Model interface {
	PhaseCurrents() [3]float32
	DCBusVoltage() float32
}

// Drive is the actuation contract: map three duty ratios in [0, 1]
// onto hardware PWM duty registers.
type Drive interface {
	Drive(dutyRatios [3]float32)
}

// Controller holds the state mutated every tick: integrated
// current/slip references, stator-flux angle, and the rate limiter /
// PWM modulator sub-states.
type Controller struct {
	cfg            Config
	alphaI, alphaF float32

	iSRef  vhzmath.Complex32
	wRRef  vhzmath.Complex32
	thetaS float32

	tPrev   float32
	hasTick bool

	rate *ratelimiter.Limiter
	mod  *pwm.Modulator
}

// NewController builds a zero-initialized Controller: i_s_ref =
// w_r_ref = 0, theta_s = 0, modulator state zero, and no previous tick
// recorded yet.
func NewController(cfg Config) *Controller {
	alphaI, alphaF := cfg.resolveAlphas()
	return &Controller{
		cfg:    cfg,
		alphaI: alphaI,
		alphaF: alphaF,
		rate:   ratelimiter.New(cfg.RateLimit),
		mod:    pwm.NewModulator(cfg.IsSixStep),
	}
}

// ThetaS reports the current stator-flux angle, always in [-pi, pi).
func (c *Controller) ThetaS() float32 { return c.thetaS }

// RealizedVoltage reports the PWM modulator's realized-voltage
// estimate from the last tick.
func (c *Controller) RealizedVoltage() vhzmath.Complex32 { return c.mod.RealizedVoltage }

// StatorFreq computes the dynamic stator frequency and the slip
// estimate. When the squared magnitude of the reference rotor flux is
// <= 0 it returns (0, 0) rather than dividing by zero.
func (c *Controller) StatorFreq(wSRef, iS vhzmath.Complex32) (wS, wR vhzmath.Complex32) {
	psiRRef := c.cfg.PsiSRef.Sub(c.iSRef.MulReal(c.cfg.LSgm))
	psiRRefSqr := psiRRef.Abs2()

	if psiRRefSqr <= 0 {
		return vhzmath.Zero, vhzmath.Zero
	}

	wRReal := c.cfg.RR * iS.Mul(psiRRef.Conj()).Im / psiRRefSqr
	wR = vhzmath.Real(wRReal)
	wS = wSRef.Add(c.cfg.KW.Mul(c.wRRef.Sub(wR)))
	return wS, wR
}

// VoltageReference synthesizes the stator voltage reference from the
// dynamic stator frequency and the measured current. iS is taken as a
// complex scalar rather than a real one, since it is always the
// rotor-flux-frame current produced earlier in Tick and is used here
// only in subtraction against the complex current reference.
func (c *Controller) VoltageReference(wS, iS vhzmath.Complex32) vhzmath.Complex32 {
	iSdNom := c.cfg.PsiSRef.MulReal(1 / (c.cfg.LM + c.cfg.LSgm))

	// Operating-point current for RI compensation: nominal d-axis
	// current plus (1 + j*Im(i_s_ref)): a unit real term and the
	// imaginary part of the integrated current reference.
	iSRef0 := iSdNom.Add(vhzmath.New(1, c.iSRef.Im))

	// k = k_u * l_sgm * (r_r/l_m + j*w_s); the stator resistance term
	// is deliberately left out of k to avoid voltage-saturation
	// instability at low speed.
	jWs := vhzmath.New(0, 1).Mul(wS)
	kTerm := vhzmath.Real(c.cfg.RR / c.cfg.LM).Add(jWs).MulReal(c.cfg.KU * c.cfg.LSgm)

	term1 := iSRef0.MulReal(c.cfg.RS)
	term2 := jWs.Mul(c.cfg.PsiSRef)
	term3 := kTerm.Mul(c.iSRef.Sub(iS))

	return term1.Add(term2).Add(term3)
}

// Tick runs one full control cycle, in order: rate-limits the
// frequency reference, rotates the measured current into rotor-flux
// coordinates, estimates the dynamic stator/slip frequency,
// synthesizes the voltage reference, computes duty ratios via PWM, and
// integrates controller state. Modulator state commits before the
// next tick reads it, and the stator angle wraps only after
// integration.
//
// t is the absolute sample time in seconds; the sample period tS is
// derived as t - t_prev. On the very first call tS is undefined (there
// is no previous tick), so the caller-supplied t on that first call is
// used directly as tS — i.e. the first tick's sample period must equal
// its own timestamp (typically satisfied by calling Tick with t set to
// the intended first-tick period, not wall-clock zero).
func (c *Controller) Tick(iSABC [3]float32, uDC, wMRefIn, t float32) [3]float32 {
	tS := t
	if c.hasTick {
		tS = t - c.tPrev
	}
	c.tPrev = t
	c.hasTick = true

	wMRef := c.rate.Limit32(tS, wMRefIn)

	iS := vhzmath.Rotate(-c.thetaS, vhzmath.ABCToComplex(iSABC))

	wSRef := vhzmath.Real(wMRef).Add(c.wRRef)

	wS, wR := c.StatorFreq(wSRef, iS)

	uSRef := c.VoltageReference(wS, iS)

	dABC := c.mod.DutyRatios(tS, uSRef, uDC, c.thetaS, wS.Re)

	c.iSRef = c.iSRef.Add(iS.Sub(c.iSRef).MulReal(tS * c.alphaI))
	c.wRRef = c.wRRef.Add(wR.Sub(c.wRRef).MulReal(tS * c.alphaF))

	c.thetaS += tS * wS.Re
	c.thetaS = vhzmath.Wrap(c.thetaS)

	return dABC
}

// Run is the tick orchestrator's convenience wrapper: read sensors
// through m, advance the controller, and write the resulting duty
// ratios to d.
func (c *Controller) Run(m Model, d Drive, wMRef, t float32) {
	dABC := c.Tick(m.PhaseCurrents(), m.DCBusVoltage(), wMRef, t)
	d.Drive(dABC)
}
