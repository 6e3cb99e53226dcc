package actuator

import (
	"sync"

	"github.com/enveramboy/bahamut/joints"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "fake/actuator",
})

// FakeActuator remembers the last angle of each joint.
type FakeActuator struct {
	mu      sync.Mutex
	angles  [joints.Count]int
	set     joints.Set
	flushes int
	relaxed bool
	err     error
}

func New() *FakeActuator {
	return &FakeActuator{}
}

// Fail makes every subsequent call return err.
func (a *FakeActuator) Fail(err error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.err = err
}

func (a *FakeActuator) SetJointAngle(j joints.Joint, deg int) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.err != nil {
		return a.err
	}

	a.angles[j] = deg
	a.set = a.set.With(j)
	a.relaxed = false
	return nil
}

func (a *FakeActuator) Flush() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.err != nil {
		return a.err
	}

	a.flushes++
	log.Debugf("flush #%d: %v", a.flushes, a.angles)
	return nil
}

func (a *FakeActuator) Relax() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.relaxed = true
	return nil
}

// Angles returns the last angle of every joint.
func (a *FakeActuator) Angles() [joints.Count]int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.angles
}

// Set returns the joints which have been moved at least once.
func (a *FakeActuator) Set() joints.Set {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.set
}

func (a *FakeActuator) Flushes() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.flushes
}

func (a *FakeActuator) Relaxed() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.relaxed
}
