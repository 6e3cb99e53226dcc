// Package anim renders the status LED. Exactly one State is active at a time;
// each has its own color generator, driven by the clock.
package anim

import (
	"fmt"
	"time"
)

type State int

const (
	Idle State = iota
	Closed
	Attack
	Blue
	Red
	All
	Turquoise
)

var stateNames = map[State]string{
	Idle:      "idle",
	Closed:    "closed",
	Attack:    "attack",
	Blue:      "blue",
	Red:       "red",
	All:       "all",
	Turquoise: "turquoise",
}

func (s State) String() string {
	if n, ok := stateNames[s]; ok {
		return n
	}
	return fmt.Sprintf("State(%d)", int(s))
}

const (

	// Amplitude of the glowing animations. One full breath takes 2*256+1 steps.
	glowAmplitude = 256

	// Minimum time between two steps of a glow.
	glowStep = time.Millisecond

	// Red is on for most of each window, and off for one tick at its start.
	blinkWindow = 50 * time.Millisecond
	blinkOff    = 5 * time.Millisecond
)

type Color struct {
	R, G, B uint8
}

var (
	Purple = Color{R: 255, G: 0, B: 255}
	Off    = Color{}
)

func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Animator holds the counters of every state. Counters persist while their
// state is inactive, so returning to a state resumes where it left off.
type Animator struct {
	attack    glow
	blue      glow
	all       glow
	turquoise glow
	pairing   Pairing
}

func NewAnimator() *Animator {
	return &Animator{
		attack:    newGlow(glowAmplitude, 0, glowAmplitude),
		blue:      newGlow(0, 0, glowAmplitude),
		all:       newGlow(glowAmplitude, glowAmplitude, glowAmplitude),
		turquoise: newGlow(0, glowAmplitude, glowAmplitude),
	}
}

// Render returns the color of the given state at now. Rendering twice at the
// same time returns the same color.
func (a *Animator) Render(s State, now time.Duration) Color {
	switch s {
	case Idle:
		return Purple

	case Closed:
		return Off

	case Attack:
		return a.attack.render(now)

	case Blue:
		return a.blue.render(now)

	case Red:
		return blink(now)

	case All:
		return a.all.render(now)

	case Turquoise:
		return a.turquoise.render(now)

	default:
		panic(fmt.Sprintf("unknown animation state: %d", int(s)))
	}
}

// Pairing returns the pairing animation, and the phase (0-3) for the display.
func (a *Animator) Pairing(now time.Duration) (Color, int) {
	return a.pairing.Render(now)
}

// blink is solid red with a short dropout every window.
func blink(now time.Duration) Color {
	if now%blinkWindow < blinkOff {
		return Off
	}
	return Color{R: 255}
}
