package controller

import (
	"testing"
	"time"

	"github.com/enveramboy/bahamut"
	"github.com/enveramboy/bahamut/anim"
	"github.com/enveramboy/bahamut/joints"
	"github.com/enveramboy/bahamut/motion"
	"github.com/stretchr/testify/assert"
)

func pose(f joints.Frame) joints.Pose {
	return joints.Pose(f.Angles())
}

func pressed(bs ...Button) Snapshot {
	return Snapshot{
		Held:      ButtonsOf(bs...),
		Edges:     ButtonsOf(bs...),
		Connected: true,
	}
}

func TestSafetyLatch(t *testing.T) {
	for _, crouched := range []bool{false, true} {
		s := bahamut.NewState(time.Now())
		s.Unsafe = true
		s.Crouched = crouched

		in := pressed(Up, R1, Select)
		in.LeftStick = Stick{X: 0, Y: -127}

		Dispatch(s, in, 500*time.Millisecond)
		assert.Equal(t, anim.Closed, s.Animation)
		assert.Equal(t, joints.Rest(crouched), pose(s.Frame))

		// Taunts would normally stand up, but nothing runs.
		assert.Equal(t, crouched, s.Crouched)
	}
}

func TestSafetyLatchStillToggles(t *testing.T) {
	s := bahamut.NewState(time.Now())
	s.Unsafe = true

	Dispatch(s, pressed(Cross), 0)
	assert.True(t, s.Crouched)
	assert.Equal(t, joints.Crouched, pose(s.Frame))
}

func TestUpAndDown(t *testing.T) {
	s := bahamut.NewState(time.Now())
	s.Crouched = true

	Dispatch(s, pressed(Up, Down), 1000*time.Millisecond)

	// Down comes later, so it wins the biceps and the LED.
	assert.Equal(t, anim.All, s.Animation)
	assert.False(t, s.Crouched)

	assert.Equal(t, joints.Pose{
		90,  // rs (warming up)
		145, // rb (dust off, just armed)
		90,  // ls (warming up)
		35,  // lb (dust off)
		95, 80, 60, 100, 100,
	}, pose(s.Frame))
}

func TestDeadZone(t *testing.T) {
	s := bahamut.NewState(time.Now())
	in := Snapshot{
		LeftStick: Stick{X: 5, Y: 5},
		Connected: true,
	}

	Dispatch(s, in, 100*time.Millisecond)
	assert.Equal(t, anim.Idle, s.Animation)
	assert.Equal(t, joints.WideStance, pose(s.Frame))

	s.Crouched = true
	Dispatch(s, in, 105*time.Millisecond)
	assert.Equal(t, joints.Crouched, pose(s.Frame))
}

func TestSticks(t *testing.T) {
	type eg struct {
		l, r Stick
		exp  motion.Result
	}

	at := 100 * time.Millisecond
	examples := []eg{
		{Stick{0, -100}, Stick{}, motion.Forward(at, motion.WalkPeriod)},
		{Stick{0, 100}, Stick{}, motion.Backward(at, motion.WalkPeriod)},
		{Stick{-100, 0}, Stick{}, motion.TurnRight(at, motion.WalkPeriod)},
		{Stick{100, 0}, Stick{}, motion.TurnLeft(at, motion.WalkPeriod)},
		{Stick{20, -40}, Stick{}, motion.Forward(at, motion.WalkPeriod)},
		{Stick{-40, 20}, Stick{}, motion.TurnRight(at, motion.WalkPeriod)},
		{Stick{}, Stick{-100, 0}, motion.SidestepLeft(at, motion.SidestepPeriod)},
		{Stick{}, Stick{100, 0}, motion.SidestepRight(at, motion.SidestepPeriod)},
		{Stick{50, 0}, Stick{0, -100}, motion.SidestepRight(at, motion.SidestepPeriod)},
		{Stick{0, -100}, Stick{-50, 0}, motion.Forward(at, motion.WalkPeriod)},

		// Just over the dead zone.
		{Stick{6, -5}, Stick{}, motion.TurnLeft(at, motion.WalkPeriod)},
	}

	for _, ex := range examples {
		s := bahamut.NewState(time.Now())
		Dispatch(s, Snapshot{LeftStick: ex.l, RightStick: ex.r, Connected: true}, at)

		exp := ex.exp.Frame
		exp.Backfill(joints.WideStance)

		assert.Equal(t, anim.Attack, s.Animation, "l=%v r=%v", ex.l, ex.r)
		assert.Equal(t, pose(exp), pose(s.Frame), "l=%v r=%v", ex.l, ex.r)
	}
}

func TestButtonsBeatSticks(t *testing.T) {
	s := bahamut.NewState(time.Now())
	in := pressed(R1)
	in.LeftStick = Stick{0, -127}

	Dispatch(s, in, 0)

	exp := motion.RightHook().Frame
	exp.Backfill(joints.WideStance)
	assert.Equal(t, pose(exp), pose(s.Frame))
	assert.Equal(t, anim.Attack, s.Animation)
}

func TestCrouchToggle(t *testing.T) {
	s := bahamut.NewState(time.Now())

	Dispatch(s, pressed(Cross), 0)
	assert.True(t, s.Crouched)
	assert.Equal(t, anim.Attack, s.Animation)
	assert.Equal(t, joints.Crouched, pose(s.Frame))

	// Still held, but no new edge.
	Dispatch(s, Snapshot{Held: ButtonsOf(Cross), Connected: true}, 5*time.Millisecond)
	assert.True(t, s.Crouched)

	Dispatch(s, Snapshot{Connected: true}, 10*time.Millisecond)
	assert.True(t, s.Crouched)
	assert.Equal(t, anim.Idle, s.Animation)

	Dispatch(s, pressed(Cross), 15*time.Millisecond)
	assert.False(t, s.Crouched)
	assert.Equal(t, joints.WideStance, pose(s.Frame))
}

func TestTaunts(t *testing.T) {
	type eg struct {
		button   Button
		anim     anim.State
		crouched bool
	}

	examples := []eg{
		{Up, anim.Blue, false},
		{Right, anim.Red, false},
		{Down, anim.All, false},
		{Left, anim.Turquoise, true},
	}

	for _, ex := range examples {
		s := bahamut.NewState(time.Now())
		s.Crouched = true

		Dispatch(s, pressed(ex.button), 0)
		assert.Equal(t, ex.anim, s.Animation, "button=%s", ex.button)
		assert.Equal(t, ex.crouched, s.Crouched, "button=%s", ex.button)

		// The hips are never claimed by a taunt.
		rh, _ := s.Frame.Angle(joints.RightHip)
		assert.Equal(t, joints.Rest(ex.crouched).Angle(joints.RightHip), rh, "button=%s", ex.button)
	}
}

func TestEveryJointCommitted(t *testing.T) {
	for b := Button(0); b < numButtons; b++ {
		s := bahamut.NewState(time.Now())
		Dispatch(s, pressed(b), 0)
		assert.True(t, s.Frame.Complete(), "button=%s", b)
	}
}

func TestRecoveryArmedOnEdge(t *testing.T) {
	s := bahamut.NewState(time.Now())

	Dispatch(s, pressed(Start), 3*time.Second)
	Dispatch(s, Snapshot{Held: ButtonsOf(Start), Connected: true}, 3*time.Second+motion.RecoveryDuration)

	assert.True(t, s.Motion.FrontRecoveryFinished(3*time.Second+motion.RecoveryDuration, motion.RecoveryDuration))
	assert.Equal(t, joints.Crouched, pose(s.Frame))
}
