package controller

import (
	"time"

	"github.com/enveramboy/bahamut"
	"github.com/enveramboy/bahamut/anim"
	"github.com/enveramboy/bahamut/joints"
	"github.com/enveramboy/bahamut/motion"
)

const (

	// Minimum combined deflection (|x|+|y|) of a stick before it counts.
	deadZone = 10
)

type move func(l *motion.Library, t time.Duration) motion.Result

func static(f func() motion.Result) move {
	return func(*motion.Library, time.Duration) motion.Result {
		return f()
	}
}

type binding struct {
	button Button
	move   move
}

// bindings are in priority order. When several buttons are held, every one is
// performed, and the later ones win for the joints they share.
var bindings = []binding{
	{Up, (*motion.Library).WarmingUp},
	{Right, (*motion.Library).Behold},
	{Down, (*motion.Library).DustOff},
	{Left, static(motion.GiveItYourAll)},
	{R1, static(motion.RightHook)},
	{L1, static(motion.LeftHook)},
	{R2, static(motion.RightSweep)},
	{L2, static(motion.LeftSweep)},
	{Circle, static(motion.RightShot)},
	{Square, static(motion.LeftShot)},
	{Select, func(l *motion.Library, t time.Duration) motion.Result {
		return l.BackRecovery(t, motion.RecoveryDuration)
	}},
	{Start, func(l *motion.Library, t time.Duration) motion.Result {
		return l.FrontRecovery(t, motion.RecoveryDuration)
	}},
}

// Dispatch turns one snapshot into the joint targets and LED animation for the
// tick at t (since boot), and writes them to the state. Every joint ends up
// with exactly one target.
func Dispatch(s *bahamut.State, in Snapshot, t time.Duration) {
	if in.Edges.Has(Cross) {
		s.Crouched = !s.Crouched
		log.Infof("crouched=%v", s.Crouched)
	}

	f := joints.Frame{}

	// Low battery overrides everything.
	if s.Unsafe {
		s.Animation = anim.Closed
		f.SetPose(s.Rest())
		s.Frame = f
		return
	}

	arm(s.Motion, in.Edges, t)

	switch {
	case in.Held.Any():
		s.Animation = anim.Attack

		for _, b := range bindings {
			if !in.Held.Has(b.button) {
				continue
			}

			r := b.move(s.Motion, t)
			f.Merge(r.Frame)

			if r.Lights {
				s.Animation = r.Animation
			}

			if r.Uncrouch {
				s.Crouched = false
			}
		}

	case in.LeftStick.magnitude() > deadZone || in.RightStick.magnitude() > deadZone:
		s.Animation = anim.Attack
		f.Merge(steer(in.LeftStick, in.RightStick, t).Frame)

	default:
		s.Animation = anim.Idle
	}

	f.Backfill(s.Rest())
	s.Frame = f
}

// arm records the trigger time of the motions which are measured from the
// moment their button went down.
func arm(l *motion.Library, edges Buttons, t time.Duration) {
	if edges.Has(Right) {
		l.ArmBehold(t)
	}

	if edges.Has(Down) {
		l.ArmDustOff(t)
	}

	if edges.Has(Select) {
		l.ArmBackRecovery(t)
	}

	if edges.Has(Start) {
		l.ArmFrontRecovery(t)
	}
}

// steer picks a gait from whichever stick is deflected further. The left stick
// walks (along its stronger axis) or turns; the right stick sidesteps.
func steer(ls, rs Stick, t time.Duration) motion.Result {
	if rs.magnitude() < ls.magnitude() {
		if abs(ls.Y) > abs(ls.X) {
			if ls.Y < 0 {
				return motion.Forward(t, motion.WalkPeriod)
			}
			return motion.Backward(t, motion.WalkPeriod)
		}

		// Pushing left turns right. The stick is mounted mirrored.
		if ls.X < 0 {
			return motion.TurnRight(t, motion.WalkPeriod)
		}
		return motion.TurnLeft(t, motion.WalkPeriod)
	}

	if rs.X < 0 {
		return motion.SidestepLeft(t, motion.SidestepPeriod)
	}
	return motion.SidestepRight(t, motion.SidestepPeriod)
}
