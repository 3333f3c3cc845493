// Package ratelimiter implements a first-order slew-rate limiter on a
// scalar reference, used by the V/Hz controller to bound how fast the
// commanded electrical frequency can change between ticks.
package ratelimiter

// Limiter holds the state of a first-order rate limiter: the maximum
// allowed |dy/dt| and the last-emitted output.
type Limiter struct {
	Limit float32
	y     float32
}

// New returns a Limiter with zero-initialized output, clamping its
// output to change by at most limit per second.
func New(limit float32) *Limiter {
	return &Limiter{Limit: limit}
}

// Limit32 advances the limiter by one sample of period tS (seconds,
// must be > 0) towards input u and returns the new output:
//
//	rate = (u - y) / tS
//	y += clamp(rate, -limit, limit) * tS   (equivalently, y = u when |rate| <= limit)
func (l *Limiter) Limit32(tS, u float32) float32 {
	rate := (u - l.y) / tS

	switch {
	case rate > l.Limit:
		l.y += tS * l.Limit
	case rate < -l.Limit:
		l.y -= tS * l.Limit
	default:
		l.y = u
	}

	return l.y
}

// Y reports the limiter's last-emitted output without advancing it.
func (l *Limiter) Y() float32 {
	return l.y
}
