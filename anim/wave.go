package anim

import (
	"time"
)

// Wave is a triangular wave. Each step advances a counter which wraps at
// 2*Amplitude+1, and is folded back down after reaching Amplitude.
type Wave struct {
	Amplitude int
	v         int
}

// Step advances the counter by one.
func (w *Wave) Step() {
	w.v = (w.v + 1) % (2*w.Amplitude + 1)
}

// Level returns the current brightness, clamped to 0-255. A zero amplitude is
// always dark.
func (w *Wave) Level() uint8 {
	if w.Amplitude <= 0 {
		return 0
	}

	var l int
	if w.v < w.Amplitude {
		l = w.v
	} else {
		l = 2*w.Amplitude - 2 - w.v
	}

	return clamp(l)
}

func clamp(l int) uint8 {
	if l < 0 {
		return 0
	}
	if l > 255 {
		return 255
	}
	return uint8(l)
}

// glow is three independent waves, stepped together at most once per
// millisecond.
type glow struct {
	r, g, b Wave
	last    time.Duration
}

func newGlow(r, g, b int) glow {
	return glow{
		r: Wave{Amplitude: r},
		g: Wave{Amplitude: g},
		b: Wave{Amplitude: b},
	}
}

func (gl *glow) render(now time.Duration) Color {
	if now-gl.last >= glowStep {
		gl.r.Step()
		gl.g.Step()
		gl.b.Step()
		gl.last = now
	}

	return Color{
		R: gl.r.Level(),
		G: gl.g.Level(),
		B: gl.b.Level(),
	}
}

const (
	pairingStep   = 2 * time.Millisecond
	pairingWrap   = 511
	pairingPhases = 4
)

// Pairing is the breathing purple shown while waiting for the controller. It
// also drives the trailing dots of the "waiting to pair" message.
type Pairing struct {
	v    int
	last time.Duration
}

func (p *Pairing) Render(now time.Duration) (Color, int) {
	if now-p.last > pairingStep {
		p.v = (p.v + 1) % pairingWrap
		p.last = now
	}

	l := p.v
	if l >= 256 {
		l = 510 - l
	}

	return Color{R: uint8(l), B: uint8(l)}, (l / 17) % pairingPhases
}
