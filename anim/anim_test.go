package anim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const ms = time.Millisecond

func TestWaveShape(t *testing.T) {
	w := Wave{Amplitude: 256}

	type eg struct {
		steps int
		exp   uint8
	}

	// Cumulative steps from zero.
	examples := []eg{
		{0, 0},
		{1, 1},
		{255, 255},
		{256, 254},
		{257, 253},
		{510, 0},
		{511, 0},
		{512, 0},
		{513, 0}, // wrapped
		{514, 1},
	}

	n := 0
	for _, x := range examples {
		for ; n < x.steps; n++ {
			w.Step()
		}
		assert.Equal(t, x.exp, w.Level(), "steps=%d", x.steps)
	}
}

func TestZeroAmplitudeIsDark(t *testing.T) {
	w := Wave{}
	w.Step()
	w.Step()
	assert.Equal(t, uint8(0), w.Level())
}

func TestConstantStates(t *testing.T) {
	a := NewAnimator()
	for _, now := range []time.Duration{0, 7 * ms, 12345 * ms} {
		assert.Equal(t, Color{255, 0, 255}, a.Render(Idle, now))
		assert.Equal(t, Color{0, 0, 0}, a.Render(Closed, now))
	}
}

func TestGlowSteps(t *testing.T) {
	a := NewAnimator()

	// Nothing has elapsed yet.
	assert.Equal(t, Color{0, 0, 0}, a.Render(Attack, 0))

	for i := 1; i <= 10; i++ {
		a.Render(Attack, time.Duration(i)*ms)
	}
	assert.Equal(t, Color{10, 0, 10}, a.Render(Attack, 10*ms))

	// Rendering again within the same millisecond doesn't advance.
	assert.Equal(t, Color{10, 0, 10}, a.Render(Attack, 10*ms))
}

func TestGlowChannels(t *testing.T) {
	a := NewAnimator()
	for i := 1; i <= 5; i++ {
		a.Render(Blue, time.Duration(i)*ms)
		a.Render(All, time.Duration(i)*ms)
		a.Render(Turquoise, time.Duration(i)*ms)
	}

	assert.Equal(t, Color{0, 0, 5}, a.Render(Blue, 5*ms))
	assert.Equal(t, Color{5, 5, 5}, a.Render(All, 5*ms))
	assert.Equal(t, Color{0, 5, 5}, a.Render(Turquoise, 5*ms))

	// The attack counter didn't move while other states were active, so it
	// only takes a single step now.
	assert.Equal(t, Color{1, 0, 1}, a.Render(Attack, 5*ms))
}

func TestRedBlink(t *testing.T) {
	a := NewAnimator()

	type eg struct {
		at  time.Duration
		exp Color
	}

	examples := []eg{
		{0, Off},
		{4 * ms, Off},
		{5 * ms, Color{R: 255}},
		{49 * ms, Color{R: 255}},
		{50 * ms, Off},
		{54 * ms, Off},
		{55 * ms, Color{R: 255}},
		{60 * ms, Color{R: 255}},
		{100 * ms, Off},
	}

	for _, x := range examples {
		assert.Equal(t, x.exp, a.Render(Red, x.at), "at=%v", x.at)
	}
}

func TestRedBlinkPeriod(t *testing.T) {
	a := NewAnimator()

	on := 0
	offs := 0
	prev := a.Render(Red, 0)

	for i := 1; i < 1000; i++ {
		c := a.Render(Red, time.Duration(i)*ms)
		if c == (Color{R: 255}) {
			on++
		}

		// Count the start of each dropout.
		if c == Off && prev != Off {
			offs++
			assert.Equal(t, time.Duration(0), time.Duration(i)*ms%(50*ms), "dropout at %dms", i)
		}

		prev = c
	}

	// Twenty windows in a second, each dark for 5ms. The first dropout starts
	// at zero, so isn't counted as a transition.
	assert.Equal(t, 19, offs)
	assert.Equal(t, 900, on)
}

func TestPairing(t *testing.T) {
	p := Pairing{}

	c, phase := p.Render(0)
	assert.Equal(t, Color{}, c)
	assert.Equal(t, 0, phase)

	// Steps only when more than 2ms have passed.
	c, _ = p.Render(2 * ms)
	assert.Equal(t, uint8(0), c.R)
	c, _ = p.Render(3 * ms)
	assert.Equal(t, uint8(1), c.R)
	assert.Equal(t, c.R, c.B)

	// Walk up to the peak: 17 levels per phase.
	now := 3 * ms
	for i := 1; i < 34; i++ {
		now += 3 * ms
		c, phase = p.Render(now)
	}
	assert.Equal(t, uint8(34), c.R)
	assert.Equal(t, 2, phase)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "turquoise", Turquoise.String())
	assert.Equal(t, "State(99)", State(99).String())
}
