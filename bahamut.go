package bahamut

import (
	"time"

	"github.com/sirupsen/logrus"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "bahamut",
})

type Bahamut struct {
	Components []Component
	State      *State
}

// Component is a subsystem which is ticked once per frame, in the order that
// components were added. The order matters: each component may read what the
// previous ones wrote to the state during the same tick.
type Component interface {
	Boot() error
	Tick(now time.Time, state *State) error
}

// Halter is implemented by components which need to do something (cut servo
// torque, turn off the LED) before the process exits.
type Halter interface {
	Halt() error
}

// New creates a robot which booted at the given time.
func New(boot time.Time) *Bahamut {
	return &Bahamut{
		Components: []Component{},
		State:      NewState(boot),
	}
}

// Add registers a component to receive ticks every frame.
func (b *Bahamut) Add(c Component) {
	b.Components = append(b.Components, c)
}

// Boot calls Boot on each component, and stops at the first error.
func (b *Bahamut) Boot() error {
	for _, c := range b.Components {
		err := c.Boot()
		if err != nil {
			return err
		}
	}

	return nil
}

// Tick calls Tick on each component. A failing component doesn't stop the
// rest of the tick, since the later components (e.g. the servos) still need
// to be updated. The first error is returned.
func (b *Bahamut) Tick(now time.Time) error {
	var first error

	for _, c := range b.Components {
		err := c.Tick(now, b.State)
		if err != nil {
			log.Errorf("tick: %T: %s", c, err)
			if first == nil {
				first = err
			}
		}
	}

	return first
}

// Halt calls Halt on every component which implements it, in reverse order.
func (b *Bahamut) Halt() {
	for i := len(b.Components) - 1; i >= 0; i-- {
		if h, ok := b.Components[i].(Halter); ok {
			err := h.Halt()
			if err != nil {
				log.Errorf("halt: %T: %s", b.Components[i], err)
			}
		}
	}
}
