package body

import (
	"fmt"
	"time"

	"github.com/enveramboy/bahamut"
	"github.com/enveramboy/bahamut/joints"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "body",
})

// Actuator moves the joints. Angles are degrees, 0-180.
type Actuator interface {
	SetJointAngle(j joints.Joint, deg int) error
}

// Flusher is implemented by actuators which buffer moves, and start them all
// together once every joint has been set.
type Flusher interface {
	Flush() error
}

// Relaxer is implemented by actuators which can cut power to the joints.
type Relaxer interface {
	Relax() error
}

// Body commits the joint targets which the controller chose this tick.
type Body struct {
	act Actuator

	// The angles sent on the previous tick, for logging.
	last    [joints.Count]int
	started bool
}

func New(a Actuator) *Body {
	return &Body{
		act: a,
	}
}

func (b *Body) Boot() error {
	log.Infof("booting with %T", b.act)
	return nil
}

// Tick sends every joint, every tick, even if it hasn't changed.
func (b *Body) Tick(now time.Time, state *bahamut.State) error {
	if !state.Frame.Complete() {
		return fmt.Errorf("incomplete frame: %s", state.Frame)
	}

	angles := state.Frame.Angles()

	for _, j := range joints.All() {
		err := b.act.SetJointAngle(j, angles[j])
		if err != nil {
			return fmt.Errorf("error setting %s to %d: %s", j, angles[j], err)
		}
	}

	if f, ok := b.act.(Flusher); ok {
		err := f.Flush()
		if err != nil {
			return fmt.Errorf("error flushing: %s", err)
		}
	}

	if !b.started || angles != b.last {
		log.Debugf("joints: %s", state.Frame)
	}

	b.last = angles
	b.started = true
	return nil
}

// Halt relaxes the joints, if the actuator can.
func (b *Body) Halt() error {
	r, ok := b.act.(Relaxer)
	if !ok {
		return nil
	}

	log.Info("relaxing joints")
	return r.Relax()
}
