package motion

import (
	"time"

	"github.com/enveramboy/bahamut/joints"
)

// The gaits claim every joint: joints which don't move are pinned to the
// gait's own base table, which isn't necessarily the resting pose.

// Forward walks by shifting the mass onto one side with the feet, then turning
// the waist towards that side.
func Forward(t, period time.Duration) Result {
	return walk(t, period, +45)
}

// Backward is Forward with the waist turning away from the shifted mass.
func Backward(t, period time.Duration) Result {
	return walk(t, period, -45)
}

func walk(t, period time.Duration, waist int) Result {
	r := Result{}
	p := joints.Standing
	r.Frame.SetPose(p)

	if beatA(t, period) {
		r.Frame.Offset(p, joints.LeftFoot, +25)
		r.Frame.Offset(p, joints.RightFoot, +25)
		r.Frame.Offset(p, joints.Waist, waist)
	} else {
		r.Frame.Offset(p, joints.LeftFoot, -25)
		r.Frame.Offset(p, joints.RightFoot, -25)
		r.Frame.Offset(p, joints.Waist, -waist)
	}

	return r
}

// TurnLeft turns in place: first raise the body on the feet and straighten
// the waist, then drop the body while twisting the waist left.
func TurnLeft(t, period time.Duration) Result {
	return turn(t, period, +80)
}

// TurnRight is TurnLeft with the waist twisting right.
func TurnRight(t, period time.Duration) Result {
	return turn(t, period, -80)
}

func turn(t, period time.Duration, waist int) Result {
	r := Result{}
	p := joints.WideStance
	r.Frame.SetPose(p)

	if beatA(t, period) {
		r.Frame.Offset(p, joints.LeftFoot, -20)
		r.Frame.Offset(p, joints.RightFoot, +20)
	} else {
		r.Frame.Offset(p, joints.Waist, waist)
	}

	return r
}

// SidestepLeft thrusts with the right hip and foot while the left side
// catches, then resets.
func SidestepLeft(t, period time.Duration) Result {
	r := Result{}
	p := joints.Standing
	r.Frame.SetPose(p)

	if beatA(t, period) {

		// Thrust
		r.Frame.Offset(p, joints.RightHip, +20)
		r.Frame.Offset(p, joints.RightFoot, -20)

		// Catch
		r.Frame.Offset(p, joints.LeftHip, -20)
		r.Frame.Offset(p, joints.LeftFoot, -20)
	}

	return r
}

// SidestepRight thrusts with the left hip and foot while the right side
// catches, then resets.
func SidestepRight(t, period time.Duration) Result {
	r := Result{}
	p := joints.Standing
	r.Frame.SetPose(p)

	if beatA(t, period) {
		r.Frame.Offset(p, joints.LeftHip, -20)
		r.Frame.Offset(p, joints.LeftFoot, +20)
		r.Frame.Offset(p, joints.RightHip, +20)
		r.Frame.Offset(p, joints.RightFoot, +20)
	}

	return r
}
