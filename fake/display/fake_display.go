package display

import (
	"sync"

	"github.com/enveramboy/bahamut/battery"
)

// Shown is what the display is currently showing.
type Shown struct {
	Pairing bool
	Phase   int
	Charge  battery.Bin
	Visible bool
}

// FakeDisplay remembers the last thing it was asked to show.
type FakeDisplay struct {
	mu    sync.Mutex
	shown Shown
}

func New() *FakeDisplay {
	return &FakeDisplay{}
}

func (d *FakeDisplay) ShowCharge(bin battery.Bin, visible bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.shown = Shown{Charge: bin, Visible: visible}
	return nil
}

func (d *FakeDisplay) ShowPairing(phase int) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.shown = Shown{Pairing: true, Phase: phase}
	return nil
}

func (d *FakeDisplay) Shown() Shown {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.shown
}
