package voltage

import (
	"errors"
	"sync"
)

// ErrNoSamples is returned by a scripted FakeVoltage which has run out.
var ErrNoSamples = errors.New("fake voltage: no samples left")

// FakeVoltage returns a fixed reading, or a scripted sequence of readings.
type FakeVoltage struct {
	mu      sync.Mutex
	reading int
	script  []int
	err     error
}

// New returns a sampler which always reads the given raw value.
func New(reading int) *FakeVoltage {
	return &FakeVoltage{reading: reading}
}

// Script returns a sampler which returns the given readings in order, then
// ErrNoSamples.
func Script(readings ...int) *FakeVoltage {
	return &FakeVoltage{script: readings, err: ErrNoSamples}
}

// Set changes the fixed reading, and clears any script or error.
func (s *FakeVoltage) Set(reading int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reading = reading
	s.script = nil
	s.err = nil
}

// Fail makes every subsequent sample return err, until Set is called.
func (s *FakeVoltage) Fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
	s.script = nil
}

func (s *FakeVoltage) Sample() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.script != nil {
		if len(s.script) == 0 {
			return 0, s.err
		}
		r := s.script[0]
		s.script = s.script[1:]
		return r, nil
	}

	if s.err != nil {
		return 0, s.err
	}

	return s.reading, nil
}
