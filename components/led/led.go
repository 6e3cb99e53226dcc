package led

import (
	"fmt"
	"time"

	"github.com/enveramboy/bahamut"
	"github.com/enveramboy/bahamut/anim"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "led",
})

// LED is a tri-color status light.
type LED interface {
	SetColor(r, g, b uint8) error
}

// Status renders the active animation onto the LED.
type Status struct {
	led  LED
	anim *anim.Animator

	// For logging transitions.
	last   anim.State
	paired bool
}

func New(l LED) *Status {
	return &Status{
		led:  l,
		anim: anim.NewAnimator(),
		last: anim.Idle,
	}
}

func (s *Status) Boot() error {
	log.Infof("booting with %T", s.led)
	return s.set(anim.Purple)
}

// Tick shows the pairing animation until the controller is connected, then
// whichever animation the controller chose. The pairing phase is left in the
// state for the display.
func (s *Status) Tick(now time.Time, state *bahamut.State) error {
	t := state.Since(now)
	var c anim.Color

	if !state.Paired {
		c, state.PairingPhase = s.anim.Pairing(t)
	} else {
		c = s.anim.Render(state.Animation, t)
	}

	if state.Paired != s.paired || state.Animation != s.last {
		log.Debugf("paired=%v animation=%s", state.Paired, state.Animation)
		s.paired = state.Paired
		s.last = state.Animation
	}

	return s.set(c)
}

func (s *Status) set(c anim.Color) error {
	err := s.led.SetColor(c.R, c.G, c.B)
	if err != nil {
		return fmt.Errorf("error setting color to %s: %s", c, err)
	}

	return nil
}

// Halt turns the LED off.
func (s *Status) Halt() error {
	return s.set(anim.Off)
}
