// Package motion is the library of motion primitives. Each primitive is a
// function of the clock (milliseconds since boot, as a Duration) which returns
// targets for the joints it claims. Unclaimed joints are left for the caller
// to backfill.
package motion

import (
	"time"

	"github.com/enveramboy/bahamut/anim"
	"github.com/enveramboy/bahamut/joints"
	"github.com/enveramboy/bahamut/ramp"
)

const (

	// Cycle time of the walking and turning gaits.
	WalkPeriod = 350 * time.Millisecond

	// Cycle time of the sidestepping gaits. Shorter, since the feet barely
	// leave the ground.
	SidestepPeriod = 250 * time.Millisecond

	// Total time of the four beats of each recovery.
	RecoveryDuration = 2100 * time.Millisecond

	// How long the recovery ramps take to ease back into the wide stance.
	recoveryEase = 1000 * time.Millisecond

	// Half-cycle of the oscillating taunt channels.
	tauntSwing = 1000 * time.Millisecond

	// How long Behold holds its first (raised) pose after the button edge.
	beholdRaise = 350 * time.Millisecond

	// How long Dust Off raises its fists after the button edge.
	dustOffRaise = 500 * time.Millisecond
)

// Result is the output of one primitive for one tick.
type Result struct {
	Frame joints.Frame

	// Animation replaces the LED state chosen by the dispatcher, if Lights is
	// true. Taunts use this to show their own color.
	Animation anim.State
	Lights    bool

	// Uncrouch asks the dispatcher to clear the crouch flag before the unclaimed
	// joints are backfilled.
	Uncrouch bool
}

func (r *Result) light(s anim.State) {
	r.Animation = s
	r.Lights = true
}

// Library holds the state which some of the primitives need between ticks:
// ramp channels, and the time at which each one-shot motion was triggered.
// It is owned by the robot state and only touched from the tick loop.
type Library struct {

	// Warming Up oscillates the arms forever, whether or not the taunt is
	// being performed.
	warmUp [joints.Count]ramp.Channel

	beholdStart time.Duration
	beholdWaist ramp.Channel

	dustOffStart time.Duration
	dustOff      [joints.Count]ramp.Channel

	backRecoveryStart  time.Duration
	backRecovery       [joints.Count]ramp.Channel
	frontRecoveryStart time.Duration
}

// NewLibrary creates a library with the continuous channels already swinging,
// starting at now.
func NewLibrary(now time.Duration) *Library {
	l := &Library{}
	w := joints.WideStance

	swing := func(c *ramp.Channel, from, to int) {
		c.Set(float64(from))
		c.Go(float64(to), tauntSwing, ramp.ForthAndBack, now)
	}

	swing(&l.warmUp[joints.RightShoulder], w.Angle(joints.RightShoulder), w.Angle(joints.RightShoulder)+70)
	swing(&l.warmUp[joints.RightBicep], w.Angle(joints.RightBicep), w.Angle(joints.RightBicep)-55)
	swing(&l.warmUp[joints.LeftShoulder], w.Angle(joints.LeftShoulder), w.Angle(joints.LeftShoulder)-70)
	swing(&l.warmUp[joints.LeftBicep], w.Angle(joints.LeftBicep), w.Angle(joints.LeftBicep)+55)

	swing(&l.beholdWaist, w.Angle(joints.Waist)-95, w.Angle(joints.Waist)+85)

	// The one-shot channels rest at the wide stance until armed, so holding a
	// button whose press was never seen samples a real pose.
	for _, j := range joints.All() {
		l.dustOff[j].Set(float64(w.Angle(j)))
		l.backRecovery[j].Set(float64(w.Angle(j)))
	}

	return l
}

// beatA returns true during the first half of a two-beat cycle.
func beatA(t, period time.Duration) bool {
	return t%period < period/2
}

// quartile returns which quarter (0-3) of a one-shot motion t falls into.
// Anything past the end is the last quarter, which holds forever.
func quartile(t, start, total time.Duration) int {
	e := t - start
	q := total / 4
	switch {
	case e < q:
		return 0
	case e < 2*q:
		return 1
	case e < 3*q:
		return 2
	default:
		return 3
	}
}
