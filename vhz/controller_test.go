package vhz

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"tinygo.org/x/vhzdrive/vhzmath"
)

func approxEqual(a, b, eps float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}

const tS = 250e-6

func Test_Tick_zero_reference_zero_current(t *testing.T) {
	c := qt.New(t)

	ctl := NewController(DefaultConfig())
	d := ctl.Tick([3]float32{0, 0, 0}, 540, 0, tS)

	for _, di := range d {
		c.Assert(approxEqual(di, 0.5, 1e-3), qt.IsTrue)
	}
}

func Test_Tick_duty_ratios_always_in_unit_interval(t *testing.T) {
	c := qt.New(t)

	ctl := NewController(DefaultConfig())
	tNow := float32(0)
	for i := 0; i < 500; i++ {
		tNow += tS
		d := ctl.Tick([3]float32{0.1, -0.05, -0.05}, 540, 2*vhzmath.Pi*50, tNow)
		for _, di := range d {
			c.Assert(di >= 0 && di <= 1, qt.IsTrue)
		}
	}
}

func Test_Tick_theta_stays_in_range(t *testing.T) {
	c := qt.New(t)

	ctl := NewController(DefaultConfig())
	tNow := float32(0)
	for i := 0; i < 2000; i++ {
		tNow += tS
		ctl.Tick([3]float32{0, 0, 0}, 540, 2*vhzmath.Pi*50, tNow)
		th := ctl.ThetaS()
		c.Assert(th >= -vhzmath.Pi && th < vhzmath.Pi, qt.IsTrue)
	}
}

func Test_StatorFreq_degenerate_flux_returns_zero(t *testing.T) {
	c := qt.New(t)

	cfg := DefaultConfig()
	cfg.PsiSRef = vhzmath.Zero
	ctl := NewController(cfg)
	// i_s_ref starts at zero too, so psi_r_ref = psi_s_ref - l_sgm*i_s_ref = 0.

	wS, wR := ctl.StatorFreq(vhzmath.Real(100), vhzmath.New(1, 1))
	c.Assert(wS, qt.Equals, vhzmath.Zero)
	c.Assert(wR, qt.Equals, vhzmath.Zero)
}

func Test_Tick_finite_with_degenerate_flux(t *testing.T) {
	c := qt.New(t)

	cfg := DefaultConfig()
	cfg.PsiSRef = vhzmath.Zero
	ctl := NewController(cfg)

	d := ctl.Tick([3]float32{0, 0, 0}, 540, 100, tS)
	for _, di := range d {
		c.Assert(di >= 0 && di <= 1, qt.IsTrue)
	}
}

func Test_Run_reads_sensors_and_drives_actuator(t *testing.T) {
	c := qt.New(t)

	ctl := NewController(DefaultConfig())
	m := fakeModel{currents: [3]float32{0, 0, 0}, vdc: 540}
	var drv fakeDrive

	ctl.Run(&m, &drv, 0, tS)

	c.Assert(drv.called, qt.IsTrue)
	for _, di := range drv.last {
		c.Assert(approxEqual(di, 0.5, 1e-3), qt.IsTrue)
	}
}

type fakeModel struct {
	currents [3]float32
	vdc      float32
}

func (f *fakeModel) PhaseCurrents() [3]float32 { return f.currents }
func (f *fakeModel) DCBusVoltage() float32     { return f.vdc }

type fakeDrive struct {
	called bool
	last   [3]float32
}

func (f *fakeDrive) Drive(d [3]float32) {
	f.called = true
	f.last = d
}
