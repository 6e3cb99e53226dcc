package motion

import (
	"github.com/enveramboy/bahamut/joints"
)

// Attacks are static poses, held for as long as the button is. They only claim
// the arm and waist joints they move.

func attack(offsets map[joints.Joint]int) Result {
	r := Result{}
	for j, d := range offsets {
		r.Frame.Offset(joints.WideStance, j, d)
	}
	return r
}

// RightSweep extends the right arm out wide and swings it.
func RightSweep() Result {
	return attack(map[joints.Joint]int{
		joints.RightShoulder: +70,
		joints.RightBicep:    -55,
		joints.Waist:         +85,
	})
}

// LeftSweep extends the left arm out wide and swings it.
func LeftSweep() Result {
	return attack(map[joints.Joint]int{
		joints.LeftShoulder: -70,
		joints.LeftBicep:    +55,
		joints.Waist:        -95,
	})
}

// RightHook swings the right arm half as far as a sweep, bent at the elbow.
func RightHook() Result {
	return attack(map[joints.Joint]int{
		joints.RightShoulder: +30,
		joints.RightBicep:    +35,
		joints.Waist:         +90,
	})
}

// LeftHook swings the left arm half as far as a sweep, bent at the elbow.
func LeftHook() Result {
	return attack(map[joints.Joint]int{
		joints.LeftShoulder: -30,
		joints.LeftBicep:    -35,
		joints.Waist:        -90,
	})
}

// RightShot extends the right arm to the side without turning.
func RightShot() Result {
	return attack(map[joints.Joint]int{
		joints.RightShoulder: +70,
		joints.RightBicep:    -55,
		joints.LeftBicep:     -35,
	})
}

// LeftShot extends the left arm to the side without turning.
func LeftShot() Result {
	return attack(map[joints.Joint]int{
		joints.LeftShoulder: -70,
		joints.LeftBicep:    +55,
		joints.RightBicep:   +35,
	})
}
