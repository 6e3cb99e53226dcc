package joints

import (
	"fmt"
	"strings"
)

// Joint identifies one of the nine actuated joints. The numeric value doubles
// as the index into the pose tables and frames, so the order matters.
type Joint int

const (
	RightShoulder Joint = iota
	RightBicep
	LeftShoulder
	LeftBicep
	Waist
	RightHip
	RightFoot
	LeftHip
	LeftFoot

	// Count is the number of joints. The topology never changes at runtime.
	Count = 9
)

var names = [Count]string{
	"rs", "rb",
	"ls", "lb",
	"w",
	"rh", "rf",
	"lh", "lf",
}

// All returns every joint, in index order.
func All() [Count]Joint {
	return [Count]Joint{
		RightShoulder, RightBicep,
		LeftShoulder, LeftBicep,
		Waist,
		RightHip, RightFoot,
		LeftHip, LeftFoot,
	}
}

// Valid returns true if j is one of the nine joints.
func (j Joint) Valid() bool {
	return j >= 0 && j < Count
}

// mustValid panics on an unknown joint. There are exactly nine joints, so this
// can only be reached by a programming error.
func (j Joint) mustValid() {
	if !j.Valid() {
		panic(fmt.Sprintf("invalid joint: %d", int(j)))
	}
}

func (j Joint) String() string {
	if !j.Valid() {
		return fmt.Sprintf("Joint(%d)", int(j))
	}
	return names[j]
}

// Set is a bitmask of joints. A primitive returns the set of joints it claims
// alongside its targets, so that the rest can be backfilled.
type Set uint16

// Full is the set of all nine joints.
const Full Set = (1 << Count) - 1

// SetOf returns a set containing the given joints.
func SetOf(js ...Joint) Set {
	var s Set
	for _, j := range js {
		s = s.With(j)
	}
	return s
}

// With returns a copy of the set with j added.
func (s Set) With(j Joint) Set {
	j.mustValid()
	return s | (1 << uint(j))
}

// Has returns true if j is in the set.
func (s Set) Has(j Joint) bool {
	j.mustValid()
	return s&(1<<uint(j)) != 0
}

// Union returns the joints in either set.
func (s Set) Union(ss Set) Set {
	return s | ss
}

// Len returns the number of joints in the set.
func (s Set) Len() int {
	n := 0
	for _, j := range All() {
		if s.Has(j) {
			n++
		}
	}
	return n
}

func (s Set) String() string {
	parts := make([]string, 0, Count)
	for _, j := range All() {
		if s.Has(j) {
			parts = append(parts, j.String())
		}
	}
	return "{" + strings.Join(parts, ",") + "}"
}
