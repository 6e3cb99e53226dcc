package controller

import (
	"fmt"
	"strings"
)

// Button is one of the controller buttons which the robot responds to. The
// order here is the dispatch priority: when several are held, later buttons
// overwrite the joints of earlier ones.
type Button int

const (
	Up Button = iota
	Right
	Down
	Left
	R1
	L1
	R2
	L2
	Circle
	Square
	Select
	Start

	// Cross toggles the crouch. It also counts as "a button is held" (so the
	// LED shows the attack animation), but has no motion of its own.
	Cross

	numButtons = 13
)

var buttonNames = [numButtons]string{
	"up", "right", "down", "left",
	"r1", "l1", "r2", "l2",
	"circle", "square", "select", "start",
	"cross",
}

func (b Button) String() string {
	if b < 0 || b >= numButtons {
		return fmt.Sprintf("Button(%d)", int(b))
	}
	return buttonNames[b]
}

// Buttons is a set of buttons.
type Buttons uint16

// ButtonsOf returns a set containing the given buttons.
func ButtonsOf(bs ...Button) Buttons {
	var s Buttons
	for _, b := range bs {
		s |= 1 << uint(b)
	}
	return s
}

// Has returns true if b is in the set.
func (s Buttons) Has(b Button) bool {
	return s&(1<<uint(b)) != 0
}

// Any returns true if the set isn't empty.
func (s Buttons) Any() bool {
	return s != 0
}

func (s Buttons) String() string {
	parts := []string{}
	for b := Button(0); b < numButtons; b++ {
		if s.Has(b) {
			parts = append(parts, b.String())
		}
	}
	return "{" + strings.Join(parts, ",") + "}"
}

// Stick is the deflection of one analog stick. Each axis is roughly -127 to
// 127, with negative Y being forwards (up).
type Stick struct {
	X int
	Y int
}

// magnitude is the sum of the absolute deflection on both axes.
func (s Stick) magnitude() int {
	return abs(s.X) + abs(s.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Snapshot is the state of the controller for one tick. Sources fill in Held,
// the sticks and Connected; the controller component derives Edges.
type Snapshot struct {

	// Buttons which are currently down.
	Held Buttons

	// Buttons which went down since the previous tick. Every edge is also held.
	Edges Buttons

	LeftStick  Stick
	RightStick Stick

	// False while the controller is not paired. Nothing else in the snapshot
	// is meaningful then.
	Connected bool
}

func (s Snapshot) String() string {
	return fmt.Sprintf("Snapshot{held=%s edges=%s l=%v r=%v connected=%v}", s.Held, s.Edges, s.LeftStick, s.RightStick, s.Connected)
}

// Source supplies one snapshot per tick.
type Source interface {
	Snapshot() Snapshot
}
