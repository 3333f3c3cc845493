//go:build tinygo

// Package currentsense implements vhz.Model over four SPI ADC
// channels: the three phase-current shunts and the DC-bus voltage
// divider. It is a thin external collaborator that turns raw ADC
// counts into the engineering-unit readings the controller consumes.
package currentsense

import "machine"

// SenseError is a package-level sentinel-error type: a plain string a
// caller can compare against, rather than a dynamically formatted
// error value.
type SenseError string

func (e SenseError) Error() string { return string(e) }

// ErrChannelFault is returned when a channel's ADC reports an
// out-of-range or disconnected reading.
const ErrChannelFault = SenseError("currentsense: channel fault")

// Channel reads one SPI ADC channel and linearly rescales the raw
// count into an engineering unit (amps or volts).
type Channel struct {
	bus machine.SPI
	cs  machine.Pin

	// FromMin/FromMax are the raw ADC count range; ToMin/ToMax are the
	// corresponding engineering-unit range (amps or volts).
	FromMin, FromMax float32
	ToMin, ToMax     float32
}

// NewChannel builds a Channel over an SPI bus and chip-select pin,
// rescaling raw counts in [fromMin, fromMax] onto [toMin, toMax].
func NewChannel(bus machine.SPI, cs machine.Pin, fromMin, fromMax, toMin, toMax float32) *Channel {
	return &Channel{bus: bus, cs: cs, FromMin: fromMin, FromMax: fromMax, ToMin: toMin, ToMax: toMax}
}

// Read performs one SPI transfer and returns the rescaled reading.
func (ch *Channel) Read() (float32, error) {
	tx := []byte{0x00, 0x00}
	rx := make([]byte, 2)

	ch.cs.Low()
	err := ch.bus.Tx(tx, rx)
	ch.cs.High()
	if err != nil {
		return 0, err
	}

	return decodeReading(rx[0], rx[1], ch.FromMin, ch.FromMax, ch.ToMin, ch.ToMax)
}

// Sensor implements vhz.Model over three phase-current channels and
// one DC-bus voltage channel.
type Sensor struct {
	Phases [3]*Channel
	DCBus  *Channel

	// lastCurrents/lastVDC hold the most recent successful readings,
	// returned on a channel fault so a single noisy sample doesn't
	// propagate a zero or NaN reading into the controller.
	lastCurrents [3]float32
	lastVDC      float32
}

// NewSensor builds a Sensor over three phase-current channels and one
// DC-bus voltage channel.
func NewSensor(phases [3]*Channel, dcBus *Channel) *Sensor {
	return &Sensor{Phases: phases, DCBus: dcBus}
}

// PhaseCurrents implements vhz.Model.
func (s *Sensor) PhaseCurrents() [3]float32 {
	for i, ch := range s.Phases {
		if v, err := ch.Read(); err == nil {
			s.lastCurrents[i] = v
		}
	}
	return s.lastCurrents
}

// DCBusVoltage implements vhz.Model.
func (s *Sensor) DCBusVoltage() float32 {
	if v, err := s.DCBus.Read(); err == nil {
		s.lastVDC = v
	}
	return s.lastVDC
}
