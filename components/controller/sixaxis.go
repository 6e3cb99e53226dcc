package controller

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/adammck/sixaxis"
)

const (

	// How long to wait before trying to open the device again, when the pad
	// isn't paired.
	reconnectDelay = time.Second
)

// Sixaxis reads a PS3 controller from a joystick event device (usually
// /dev/input/event0). The device only exists while the pad is paired, so it's
// reopened whenever it goes away.
type Sixaxis struct {
	path string

	mu   sync.Mutex
	sa   *sixaxis.SA
	done chan struct{}
	once sync.Once
}

// NewSixaxis returns a source reading from the device at path. Call Start to
// begin reading.
func NewSixaxis(path string) *Sixaxis {
	return &Sixaxis{
		path: path,
		done: make(chan struct{}),
	}
}

// Start launches the reader goroutine.
func (s *Sixaxis) Start() {
	go s.loop()
}

// Close stops reconnecting. The current reader stops when its device does.
func (s *Sixaxis) Close() error {
	s.once.Do(func() {
		close(s.done)
	})
	return nil
}

func (s *Sixaxis) loop() {
	for {
		select {
		case <-s.done:
			return
		default:
		}

		f, err := os.Open(s.path)
		if err != nil {
			log.Debugf("waiting for controller: %s", err)
			select {
			case <-s.done:
				return
			case <-time.After(reconnectDelay):
			}
			continue
		}

		s.read(f)
	}
}

// read runs the sixaxis decoder until the device goes away.
func (s *Sixaxis) read(r io.ReadCloser) {
	defer r.Close()

	sa := sixaxis.New(r)

	s.mu.Lock()
	s.sa = sa
	s.mu.Unlock()

	sa.Run()

	s.mu.Lock()
	s.sa = nil
	s.mu.Unlock()
}

// Snapshot copies the current state of the pad. The decoder writes its fields
// from its own goroutine without taking mu, so these reads race with it and a
// snapshot can mix two reports.
func (s *Sixaxis) Snapshot() Snapshot {
	s.mu.Lock()
	sa := s.sa
	s.mu.Unlock()

	if sa == nil {
		return Snapshot{}
	}

	pressure := []struct {
		b Button
		v int
	}{
		{Up, int(sa.Up)},
		{Right, int(sa.Right)},
		{Down, int(sa.Down)},
		{Left, int(sa.Left)},
		{R1, int(sa.R1)},
		{L1, int(sa.L1)},
		{R2, int(sa.R2)},
		{L2, int(sa.L2)},
		{Circle, int(sa.Circle)},
		{Square, int(sa.Square)},
		{Cross, int(sa.Cross)},
	}

	var held Buttons
	for _, p := range pressure {
		if p.v > 0 {
			held |= ButtonsOf(p.b)
		}
	}

	if sa.Select {
		held |= ButtonsOf(Select)
	}

	if sa.Start {
		held |= ButtonsOf(Start)
	}

	return Snapshot{
		Held:       held,
		LeftStick:  Stick{X: int(sa.LeftStick.X), Y: int(sa.LeftStick.Y)},
		RightStick: Stick{X: int(sa.RightStick.X), Y: int(sa.RightStick.Y)},
		Connected:  true,
	}
}
