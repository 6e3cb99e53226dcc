package voltage

import (
	"fmt"
	"time"

	"github.com/enveramboy/bahamut"
	"github.com/enveramboy/bahamut/battery"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "voltage",
})

// Sampler returns one raw ADC reading of the battery divider.
type Sampler interface {
	Sample() (int, error)
}

// Monitor samples the battery once per tick, and keeps the charge level and
// the safety latch in the state up to date. It must be the first component,
// so that the rest of the tick sees this tick's latch.
type Monitor struct {
	Sampler
	filter battery.Filter
	unsafe bool
}

func New(s Sampler) *Monitor {
	return &Monitor{
		Sampler: s,
	}
}

// Boot takes one reading to make sure that the sampler works. The reading is
// thrown away.
func (m *Monitor) Boot() error {
	_, err := m.Sample()
	if err != nil {
		return fmt.Errorf("error while sampling voltage: %s", err)
	}

	return nil
}

// Tick adds a sample to the filter and updates the charge bin and latch. If
// the sampler fails, the latch is recomputed from the samples we already have.
func (m *Monitor) Tick(now time.Time, state *bahamut.State) error {
	var err error

	val, sErr := m.Sample()
	if sErr != nil {
		err = fmt.Errorf("error while sampling voltage: %s", sErr)
	} else {
		m.filter.Add(val)
	}

	mean := m.filter.Mean()
	state.Charge = battery.Classify(mean)
	state.Unsafe = battery.Unsafe(mean)

	if state.Unsafe != m.unsafe {
		if state.Unsafe {
			log.Warnf("low voltage: mean=%0.1f, holding idle", mean)
		} else {
			log.Infof("voltage ok: mean=%0.1f", mean)
		}
		m.unsafe = state.Unsafe
	}

	return err
}

// Mean returns the current filtered reading.
func (m *Monitor) Mean() float64 {
	return m.filter.Mean()
}
