//go:build tinygo

package gatedriver

import "machine"

// SPIComm implements RegisterComm over SPI: a single chip-select pin
// framing a two-byte register transfer, modeled on the TI DRV8301 SPI
// format: the first byte carries the read/write flag in bit 7 and the
// register address shifted left by one, the second byte carries data.
type SPIComm struct {
	spi machine.SPI
	cs  machine.Pin
}

// NewSPIComm builds an SPIComm over spi, asserting cs around each
// transfer. The caller must have already configured spi and cs.
func NewSPIComm(spi machine.SPI, cs machine.Pin) *SPIComm {
	return &SPIComm{spi: spi, cs: cs}
}

// ReadRegister sends a read command for addr and returns the 16-bit
// register value.
func (c *SPIComm) ReadRegister(addr uint8) (uint16, error) {
	c.cs.Low()
	tx := []byte{0x80 | (addr << 1), 0x00}
	rx := make([]byte, 2)
	err := c.spi.Tx(tx, rx)
	c.cs.High()
	if err != nil {
		return 0, DriverError("gatedriver: SPI read failed")
	}
	return uint16(rx[0])<<8 | uint16(rx[1]), nil
}

// WriteRegister sends a write command storing value at addr. Only the
// low byte of value is transmitted; its upper 8 bits are dropped.
func (c *SPIComm) WriteRegister(addr uint8, value uint16) error {
	c.cs.Low()
	tx := []byte{addr << 1, byte(value)}
	err := c.spi.Tx(tx, nil)
	c.cs.High()
	if err != nil {
		return DriverError("gatedriver: SPI write failed")
	}
	return nil
}
