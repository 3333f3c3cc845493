package gatedriver

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

type fakeChannel struct {
	top uint32
	set uint32
}

func (f *fakeChannel) Top() uint32      { return f.top }
func (f *fakeChannel) Set(value uint32) { f.set = value }

func Test_Drive_scales_by_top(t *testing.T) {
	c := qt.New(t)

	a := &fakeChannel{top: 1000}
	b := &fakeChannel{top: 1000}
	cc := &fakeChannel{top: 1000}
	d := NewDriver([3]PWMChannel{a, b, cc}, nil)

	d.Drive([3]float32{0, 0.5, 1})

	c.Assert(a.set, qt.Equals, uint32(0))
	c.Assert(b.set, qt.Equals, uint32(500))
	c.Assert(cc.set, qt.Equals, uint32(1000))
}

func Test_Drive_skips_nil_channel(t *testing.T) {
	c := qt.New(t)

	a := &fakeChannel{top: 1000}
	d := NewDriver([3]PWMChannel{a, nil, nil}, nil)

	d.Drive([3]float32{0.25, 0.25, 0.25})
	c.Assert(a.set, qt.Equals, uint32(250))
}

type fakeComm struct {
	registers map[uint8]uint16
}

func newFakeComm() *fakeComm { return &fakeComm{registers: map[uint8]uint16{}} }

func (f *fakeComm) ReadRegister(addr uint8) (uint16, error) {
	return f.registers[addr], nil
}

func (f *fakeComm) WriteRegister(addr uint8, value uint16) error {
	f.registers[addr] = value
	return nil
}

func Test_ReadFault_no_fault(t *testing.T) {
	c := qt.New(t)

	comm := newFakeComm()
	d := NewDriver([3]PWMChannel{}, comm)
	c.Assert(d.ReadFault(), qt.IsNil)
}

func Test_ReadFault_reports_fault(t *testing.T) {
	c := qt.New(t)

	comm := newFakeComm()
	comm.registers[RegFaultStatus] = 0x01
	d := NewDriver([3]PWMChannel{}, comm)
	c.Assert(d.ReadFault(), qt.Equals, error(ErrFault))
}

func Test_ReadFault_not_configured(t *testing.T) {
	c := qt.New(t)

	d := NewDriver([3]PWMChannel{}, nil)
	c.Assert(d.ReadFault(), qt.Equals, error(ErrNotConfigured))
}

func Test_ClearFault_writes_reset_register(t *testing.T) {
	c := qt.New(t)

	comm := newFakeComm()
	d := NewDriver([3]PWMChannel{}, comm)
	c.Assert(d.ClearFault(), qt.IsNil)
	c.Assert(comm.registers[RegGateReset], qt.Equals, uint16(1))
}
