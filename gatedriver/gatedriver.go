// Package gatedriver implements vhz.Drive for an SPI-configurable
// three-phase gate-driver IC: the class of chip (DRV8301-style) that
// sits between the MCU's PWM timer outputs and the inverter
// half-bridges on real V/Hz hardware, exposing gain and fault-status
// registers over SPI while taking its PWM inputs on dedicated pins.
package gatedriver

import "tinygo.org/x/vhzdrive/vhzmath"

// DriverError is a lightweight string-backed error, TinyGo-compatible:
// no fmt.Errorf machinery, just a comparable sentinel value.
type DriverError string

func (e DriverError) Error() string { return string(e) }

// ErrNotConfigured is returned by ReadFault and ClearFault when the
// Driver was built without a RegisterComm.
const ErrNotConfigured = DriverError("gatedriver: PWM/SPI not configured")

// ErrFault is returned by ReadFault when the driver's fault-status
// register reports a live fault (overcurrent, undervoltage, or
// overtemperature shutdown latched by the gate-driver IC itself,
// independent of anything the controller tracks in software).
var ErrFault = DriverError("gatedriver: fault bit set in status register")

// RegisterComm is the SPI configuration/diagnostics channel, separate
// from the PWM duty-cycle path: real gate-driver ICs multiplex gain
// and fault-status registers over SPI while taking PWM on dedicated
// pins, so RegisterComm never carries duty-ratio data.
type RegisterComm interface {
	ReadRegister(addr uint8) (uint16, error)
	WriteRegister(addr uint8, value uint16) error
}

// Gate-driver control/status register addresses (a representative
// DRV8301-class map — fault status, high-/low-side gate drive, and
// gate reset).
const (
	RegHSGateDrive uint8 = 0x02
	RegLSGateDrive uint8 = 0x03
	RegGateReset   uint8 = 0x04
	RegFaultStatus uint8 = 0x00
)

// PWMChannel is the three duty-cycle outputs the driver writes to,
// one per inverter leg.
type PWMChannel interface {
	Set(value uint32)
	Top() uint32
}

// Driver is a concrete vhz.Drive backed by three PWM channels (the
// duty-ratio path) plus an SPI RegisterComm (the configuration/fault
// path).
type Driver struct {
	channels [3]PWMChannel
	comm     RegisterComm
}

// NewDriver builds a Driver over three PWM channels (phase A, B, C)
// and an optional register-comm interface for gain/fault access. comm
// may be nil if the embedder doesn't need SPI diagnostics.
func NewDriver(channels [3]PWMChannel, comm RegisterComm) *Driver {
	return &Driver{channels: channels, comm: comm}
}

// Drive maps each duty ratio in [0, 1] onto its channel's duty
// register by multiplying by Top() and rounding. The resulting count is
// clamped to at most Top(), so ratios above 1 set the channel to Top();
// negative ratios are not handled, since converting a negative float32
// to uint32 gives an implementation-dependent value.
func (d *Driver) Drive(dutyRatios [3]float32) {
	for i, ch := range d.channels {
		if ch == nil {
			continue
		}
		top := ch.Top()
		count := uint32(dutyRatios[i]*float32(top) + 0.5)
		ch.Set(vhzmath.Clamp(count, 0, top))
	}
}

// ReadFault reads the gate driver's fault-status register over SPI
// and reports ErrFault if any fault bit is latched.
func (d *Driver) ReadFault() error {
	if d.comm == nil {
		return ErrNotConfigured
	}
	status, err := d.comm.ReadRegister(RegFaultStatus)
	if err != nil {
		return err
	}
	if status != 0 {
		return ErrFault
	}
	return nil
}

// ClearFault writes the gate-reset register to clear a latched fault.
func (d *Driver) ClearFault() error {
	if d.comm == nil {
		return ErrNotConfigured
	}
	return d.comm.WriteRegister(RegGateReset, 1)
}
