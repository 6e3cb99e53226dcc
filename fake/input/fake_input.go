package input

import (
	"sync"

	"github.com/enveramboy/bahamut/components/controller"
)

// FakeInput returns whatever snapshot it was last given.
type FakeInput struct {
	mu   sync.Mutex
	snap controller.Snapshot
}

// New returns a source with nothing held. It starts connected, so the robot
// doesn't sit in the pairing animation forever.
func New() *FakeInput {
	return &FakeInput{
		snap: controller.Snapshot{Connected: true},
	}
}

// Hold replaces the held buttons. Edges are worked out by the controller.
func (i *FakeInput) Hold(bs ...controller.Button) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.snap.Held = controller.ButtonsOf(bs...)
}

func (i *FakeInput) Sticks(l, r controller.Stick) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.snap.LeftStick = l
	i.snap.RightStick = r
}

func (i *FakeInput) Connect(c bool) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.snap.Connected = c
}

func (i *FakeInput) Snapshot() controller.Snapshot {
	i.mu.Lock()
	defer i.mu.Unlock()
	s := i.snap
	s.Edges = 0
	return s
}
