package controller

import (
	"time"

	"github.com/enveramboy/bahamut"
	"github.com/enveramboy/bahamut/anim"
	"github.com/enveramboy/bahamut/joints"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "controller",
})

// Controller reads the gamepad once per tick, and decides what the robot
// should be doing: the joint targets and the LED animation.
type Controller struct {
	src   Source
	edges Edges
}

func New(src Source) *Controller {
	return &Controller{
		src: src,
	}
}

func (c *Controller) Boot() error {
	log.Infof("booting with %T", c.src)
	return nil
}

func (c *Controller) Tick(now time.Time, state *bahamut.State) error {
	snap := c.src.Snapshot()

	if !snap.Connected {
		if state.Paired {
			log.Warn("controller disconnected")
		}

		state.Paired = false
		c.hold(state)
		return nil
	}

	if !state.Paired {
		log.Info("controller connected")

		// Buttons held while pairing don't count as presses.
		c.edges.Reset()
		c.edges.Run(snap.Held)
		state.Paired = true
	}

	snap.Edges = c.edges.Run(snap.Held)
	if snap.Edges.Any() {
		log.Debugf("pressed: %s", snap.Edges)
	}

	Dispatch(state, snap, state.Since(now))
	return nil
}

// hold keeps every joint at the resting pose while there's no controller.
func (c *Controller) hold(state *bahamut.State) {
	f := joints.Frame{}
	f.SetPose(state.Rest())
	state.Frame = f
	state.Animation = anim.Idle
}
