package motion

import (
	"time"

	"github.com/enveramboy/bahamut/joints"
	"github.com/enveramboy/bahamut/ramp"
)

// The recoveries are one-shot, four-beat motions measured from the time their
// button was pressed. After the fourth beat they hold their final pose until
// the button is released or pressed again; there is no "done" signal besides
// the optional Finished predicates.

// Where the back recovery channels are snapped to during the first beat. The
// shoulders start at ±30 even though the first three beats hold them at ±105,
// so they jump when the fourth beat begins.
var backRecoverySplit = map[joints.Joint]int{
	joints.RightShoulder: +30,
	joints.LeftShoulder:  -30,
	joints.RightBicep:    -145,
	joints.LeftBicep:     +145,
	joints.RightHip:      +50,
	joints.LeftHip:       -50,
	joints.RightFoot:     -80,
	joints.LeftFoot:      +80,
}

// ArmBackRecovery records the time at which the back recovery was triggered.
func (l *Library) ArmBackRecovery(t time.Duration) {
	l.backRecoveryStart = t
}

// BackRecovery stands up from lying on the back: split the legs, swing the
// biceps back to push the body forwards, bring the arms down, then ease into
// the wide stance.
func (l *Library) BackRecovery(t, total time.Duration) Result {
	r := Result{}
	p := joints.WideStance
	r.Frame.SetPose(p)

	switch quartile(t, l.backRecoveryStart, total) {
	case 0:
		for j, d := range backRecoverySplit {
			l.backRecovery[j].Set(float64(p.Angle(j) + d))
		}
		l.splitLegs(&r)

	case 1:
		l.splitLegs(&r)
		r.Frame.Offset(p, joints.RightBicep, -145)
		r.Frame.Offset(p, joints.LeftBicep, +145)

	case 2:
		for j := range backRecoverySplit {
			l.backRecovery[j].Go(float64(p.Angle(j)), recoveryEase, ramp.Once, t)
		}
		l.splitLegs(&r)
		r.Frame.Offset(p, joints.RightBicep, -145)
		r.Frame.Offset(p, joints.LeftBicep, +145)

	default:
		for j := range backRecoverySplit {
			r.Frame.Set(j, l.backRecovery[j].Int(t))
		}
	}

	return r
}

func (l *Library) splitLegs(r *Result) {
	p := joints.WideStance
	r.Frame.Offset(p, joints.RightShoulder, +105)
	r.Frame.Offset(p, joints.LeftShoulder, -105)
	r.Frame.Offset(p, joints.RightFoot, -80)
	r.Frame.Offset(p, joints.LeftFoot, +80)
	r.Frame.Offset(p, joints.RightHip, +50)
	r.Frame.Offset(p, joints.LeftHip, -50)
}

// BackRecoveryFinished returns true once all four beats have passed and the
// channels have settled.
func (l *Library) BackRecoveryFinished(t, total time.Duration) bool {
	if t-l.backRecoveryStart < total {
		return false
	}

	for j := range backRecoverySplit {
		if !l.backRecovery[j].Done(t) {
			return false
		}
	}

	return true
}

// ArmFrontRecovery records the time at which the front recovery was triggered.
func (l *Library) ArmFrontRecovery(t time.Duration) {
	l.frontRecoveryStart = t
}

// FrontRecovery stands up from lying on the front: split the legs, swing the
// biceps forwards to push the body back, bring the arms down, then crouch.
func (l *Library) FrontRecovery(t, total time.Duration) Result {
	r := Result{}
	p := joints.WideStance
	r.Frame.SetPose(p)

	switch quartile(t, l.frontRecoveryStart, total) {
	case 0:
		r.Frame.Offset(p, joints.RightShoulder, +105)
		r.Frame.Offset(p, joints.LeftShoulder, -105)
		r.Frame.Offset(p, joints.RightFoot, -80)
		r.Frame.Offset(p, joints.LeftFoot, +80)

	case 1:
		r.Frame.Offset(p, joints.RightShoulder, +105)
		r.Frame.Offset(p, joints.LeftShoulder, -105)
		r.Frame.Offset(p, joints.RightBicep, +35)
		r.Frame.Offset(p, joints.LeftBicep, -35)

	case 2:
		r.Frame.Offset(p, joints.RightShoulder, +30)
		r.Frame.Offset(p, joints.LeftShoulder, -30)
		r.Frame.Offset(p, joints.RightBicep, +35)
		r.Frame.Offset(p, joints.LeftBicep, -35)

	default:
		r.Frame.SetPose(joints.Crouched)
	}

	return r
}

// FrontRecoveryFinished returns true once all four beats have passed.
func (l *Library) FrontRecoveryFinished(t, total time.Duration) bool {
	return t-l.frontRecoveryStart >= total
}
