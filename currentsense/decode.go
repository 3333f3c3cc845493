package currentsense

// decodeReading interprets the two raw bytes an SPI ADC transfer
// returns and rescales the 15-bit count onto [toMin, toMax]. Split out
// of Channel.Read so it can be tested without a tinygo target or real
// SPI hardware.
func decodeReading(hi, lo byte, fromMin, fromMax, toMin, toMax float32) (float32, error) {
	// Bit 15 is a hard-wired validity flag on the reference ADC this
	// is modeled on.
	if hi&0x80 != 0 {
		return 0, ErrChannelFault
	}

	raw := float32(uint16(hi&0x7F)<<8 | uint16(lo))
	ratio := (raw - fromMin) / (fromMax - fromMin)
	return toMin + ratio*(toMax-toMin), nil
}
