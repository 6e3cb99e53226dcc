package motion

import (
	"time"

	"github.com/enveramboy/bahamut/anim"
	"github.com/enveramboy/bahamut/joints"
	"github.com/enveramboy/bahamut/ramp"
)

// Note that the taunts drive their channels differently. Warming Up and the
// second half of Behold sample channels which have been swinging since boot,
// while Dust Off only retargets its channels on the button edge and then gives
// them a fixed window. This may not have been intentional, but it's how the
// robot has always moved, so keep them separate.

// WarmingUp stretches the arms back and forth. Blue, and stands up.
func (l *Library) WarmingUp(t time.Duration) Result {
	r := Result{Uncrouch: true}
	r.light(anim.Blue)

	for _, j := range []joints.Joint{joints.RightShoulder, joints.RightBicep, joints.LeftShoulder, joints.LeftBicep} {
		r.Frame.Set(j, l.warmUp[j].Int(t))
	}

	return r
}

// ArmBehold records the time at which the Behold button was pressed.
func (l *Library) ArmBehold(t time.Duration) {
	l.beholdStart = t
}

// Behold raises the body with the arms spread, then crashes down and sways the
// waist with the arms out. Blinks red, and stands up.
func (l *Library) Behold(t time.Duration) Result {
	r := Result{Uncrouch: true}
	r.light(anim.Red)
	p := joints.WideStance

	if t-l.beholdStart < beholdRaise {
		r.Frame.Offset(p, joints.RightFoot, +20)
		r.Frame.Offset(p, joints.LeftFoot, -20)
		r.Frame.Offset(p, joints.RightShoulder, +70)
		r.Frame.Offset(p, joints.LeftShoulder, -70)
		r.Frame.Offset(p, joints.RightBicep, -55)
		r.Frame.Offset(p, joints.LeftBicep, +55)
	} else {
		r.Frame.Offset(p, joints.RightShoulder, +50)
		r.Frame.Offset(p, joints.LeftShoulder, -50)
		r.Frame.Set(joints.Waist, l.beholdWaist.Int(t))
	}

	return r
}

// ArmDustOff snaps the Dust Off channels back to rest and starts raising the
// fists from t.
func (l *Library) ArmDustOff(t time.Duration) {
	l.dustOffStart = t
	p := joints.WideStance

	rb := &l.dustOff[joints.RightBicep]
	rb.Set(float64(p.Angle(joints.RightBicep)))
	rb.Go(float64(p.Angle(joints.RightBicep)+35), dustOffRaise, ramp.Once, t)

	lb := &l.dustOff[joints.LeftBicep]
	lb.Set(float64(p.Angle(joints.LeftBicep)))
	lb.Go(float64(p.Angle(joints.LeftBicep)-35), dustOffRaise, ramp.Once, t)
}

// DustOff raises the fists slowly, then drops them. All colors, and stands up.
func (l *Library) DustOff(t time.Duration) Result {
	r := Result{Uncrouch: true}
	r.light(anim.All)

	for _, j := range []joints.Joint{joints.RightBicep, joints.LeftBicep} {
		if t-l.dustOffStart < dustOffRaise {
			r.Frame.Set(j, l.dustOff[j].Int(t))
		} else {
			r.Frame.Set(j, joints.WideStance.Angle(j))
		}
	}

	return r
}

// GiveItYourAll beckons the opponent forwards. Turquoise. Unlike the other
// taunts, this one doesn't stand up.
func GiveItYourAll() Result {
	r := Result{}
	r.light(anim.Turquoise)
	p := joints.WideStance

	r.Frame.Offset(p, joints.RightShoulder, +70)
	r.Frame.Offset(p, joints.LeftShoulder, -70)
	r.Frame.Offset(p, joints.RightBicep, -55)
	r.Frame.Offset(p, joints.LeftBicep, -35)
	r.Frame.Offset(p, joints.Waist, +85)

	return r
}
