package bahamut

import (
	"time"

	"github.com/enveramboy/bahamut/anim"
	"github.com/enveramboy/bahamut/battery"
	"github.com/enveramboy/bahamut/joints"
	"github.com/enveramboy/bahamut/motion"
)

// State is everything which survives from one tick to the next. It is owned by
// the tick loop, and passed to each component in turn; components must not
// keep a reference to it between ticks or touch it from other goroutines.
type State struct {

	// The time at which the robot booted. All of the motion and animation
	// timing is measured from here.
	Boot time.Time

	// Whether the resting pose is crouched. Toggled by the controller.
	Crouched bool

	// The active LED animation. Only the controller writes this.
	Animation anim.State

	// Filtered battery level, and whether it's too low to move. Written by the
	// voltage monitor at the start of each tick.
	Charge battery.Bin
	Unsafe bool

	// Ramp channels and trigger times of the motion primitives.
	Motion *motion.Library

	// Joint targets for this tick. Complete once the controller is done.
	Frame joints.Frame

	// Whether the controller is connected. While false, the robot holds still
	// and shows the pairing animation.
	Paired bool

	// Pairing phase (0-3) for the display, while not paired.
	PairingPhase int

	// Components can set this to true to indicate that the robot should shut
	// down.
	Shutdown bool
}

// NewState returns the state at boot: resting (not crouched) and idle.
func NewState(boot time.Time) *State {
	return &State{
		Boot:      boot,
		Animation: anim.Idle,
		Charge:    battery.Full,
		Motion:    motion.NewLibrary(0),
	}
}

// Since returns the number of whole milliseconds from boot until now. This is
// the clock which every primitive and animation runs on.
func (s *State) Since(now time.Time) time.Duration {
	return now.Sub(s.Boot).Truncate(time.Millisecond)
}

// Rest returns the pose which unclaimed joints fall back to.
func (s *State) Rest() joints.Pose {
	return joints.Rest(s.Crouched)
}
