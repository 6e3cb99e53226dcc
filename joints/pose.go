package joints

// Pose is a baseline angle (in degrees) for every joint. These are physical
// calibration values for this particular chassis; don't tidy them up.
type Pose [Count]int

var (

	// Standing is the neutral stance which the walking and sidestepping gaits
	// are measured from.
	Standing = Pose{20, 145, 160, 35, 95, 60, 40, 130, 130}

	// WideStance is the default resting pose when not crouched. The hips and
	// feet are splayed further than Standing.
	WideStance = Pose{20, 145, 160, 35, 95, 80, 60, 100, 100}

	// Crouched lowers the body by folding the hips and feet.
	Crouched = Pose{20, 145, 160, 35, 95, 135, 115, 45, 45}
)

// Angle returns the baseline angle of the given joint.
func (p Pose) Angle(j Joint) int {
	j.mustValid()
	return p[j]
}

// Baseline is the same as p.Angle(j), for callers which pass tables around.
func Baseline(p Pose, j Joint) int {
	return p.Angle(j)
}

// Rest returns the pose which unclaimed joints fall back to. Which one depends
// on whether the robot is currently crouched.
func Rest(crouched bool) Pose {
	if crouched {
		return Crouched
	}
	return WideStance
}
