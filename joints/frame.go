package joints

import (
	"fmt"
	"strings"
)

// Frame is a (possibly partial) set of joint targets for a single tick. Only
// the joints in Claimed are meaningful; the others are zero until backfilled.
type Frame struct {
	angles  [Count]int
	claimed Set
}

// Set claims j and sets its target angle. Setting a joint twice overwrites the
// first value.
func (f *Frame) Set(j Joint, deg int) {
	f.claimed = f.claimed.With(j)
	f.angles[j] = deg
}

// SetPose claims every joint with the angles from the given pose.
func (f *Frame) SetPose(p Pose) {
	for _, j := range All() {
		f.Set(j, p.Angle(j))
	}
}

// Offset claims j and sets it to the given pose's angle plus delta.
func (f *Frame) Offset(p Pose, j Joint, delta int) {
	f.Set(j, p.Angle(j)+delta)
}

// Angle returns the target of j, and whether it has been claimed.
func (f Frame) Angle(j Joint) (int, bool) {
	return f.angles[j], f.claimed.Has(j)
}

// Claimed returns the set of joints with a target.
func (f Frame) Claimed() Set {
	return f.claimed
}

// Complete returns true if every joint has a target.
func (f Frame) Complete() bool {
	return f.claimed == Full
}

// Merge copies every joint claimed by ff into f, overwriting any target which
// f already had for the same joint. The last frame merged wins.
func (f *Frame) Merge(ff Frame) {
	for _, j := range All() {
		if ff.claimed.Has(j) {
			f.Set(j, ff.angles[j])
		}
	}
}

// Backfill sets every unclaimed joint to its angle in the given pose.
func (f *Frame) Backfill(p Pose) {
	for _, j := range All() {
		if !f.claimed.Has(j) {
			f.Set(j, p.Angle(j))
		}
	}
}

// Angles returns the targets of all joints. It panics if the frame hasn't been
// backfilled, since unclaimed joints have no meaningful value.
func (f Frame) Angles() [Count]int {
	if !f.Complete() {
		panic(fmt.Sprintf("incomplete frame: claimed=%s", f.claimed))
	}
	return f.angles
}

func (f Frame) String() string {
	parts := make([]string, 0, Count)
	for _, j := range All() {
		if f.claimed.Has(j) {
			parts = append(parts, fmt.Sprintf("%s=%d", j, f.angles[j]))
		}
	}
	return "Frame{" + strings.Join(parts, " ") + "}"
}
