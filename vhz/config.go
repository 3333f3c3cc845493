package vhz

import "tinygo.org/x/vhzdrive/vhzmath"

// Config holds the motor/controller parameters that are constant after
// construction. There is no fluent builder: a plain struct with a
// DefaultConfig factory is enough for the handful of fields here.
type Config struct {
	// RS, RR are the stator and rotor resistances, ohms.
	RS, RR float32
	// LM, LSgm are the magnetizing and leakage inductances, henries.
	LM, LSgm float32
	// KU is the scalar RI-compensation gain (dimensionless).
	KU float32
	// KW is the complex slip-compensation gain.
	KW vhzmath.Complex32
	// PsiSRef is the complex stator-flux reference, p.u.
	PsiSRef vhzmath.Complex32
	// RateLimit bounds |dw/dt| of the frequency reference, rad/s^2.
	RateLimit float32
	// IsSixStep enables six-step overmodulation in the PWM modulator.
	IsSixStep bool
	// AlphaI, AlphaF are the current/flux integrator bandwidths. Zero
	// means "derive from w_rb = RR*(LM+LSgm)/(LSgm*LM)".
	AlphaI, AlphaF float32
}

// DefaultConfig returns a reasonable set of parameter defaults for a
// small induction motor.
func DefaultConfig() Config {
	return Config{
		RS:        3.7,
		RR:        2.1,
		LM:        0.224,
		LSgm:      0.21,
		KU:        1.0,
		KW:        vhzmath.New(4, 1),
		PsiSRef:   vhzmath.New(1.04, 1.0),
		RateLimit: 2 * vhzmath.Pi * 120,
		IsSixStep: false,
	}
}

// resolveAlphas fills in AlphaI/AlphaF from w_rb when the caller left
// them at zero, and returns the resolved (alphaI, alphaF) pair.
func (cfg Config) resolveAlphas() (alphaI, alphaF float32) {
	alphaI, alphaF = cfg.AlphaI, cfg.AlphaF
	if alphaI == 0 || alphaF == 0 {
		wRB := 0.1 * cfg.RR * (cfg.LM + cfg.LSgm) / (cfg.LSgm * cfg.LM)
		if alphaI == 0 {
			alphaI = wRB
		}
		if alphaF == 0 {
			alphaF = wRB
		}
	}
	return alphaI, alphaF
}
