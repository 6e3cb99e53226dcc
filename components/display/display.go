package display

import (
	"fmt"
	"time"

	"github.com/enveramboy/bahamut"
	"github.com/enveramboy/bahamut/battery"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "display",
})

// Display shows the battery level once paired, and the pairing progress
// before that.
type Display interface {
	ShowCharge(bin battery.Bin, visible bool) error
	ShowPairing(phase int) error
}

type Status struct {
	d Display
}

func New(d Display) *Status {
	return &Status{
		d: d,
	}
}

func (s *Status) Boot() error {
	log.Infof("booting with %T", s.d)
	return nil
}

func (s *Status) Tick(now time.Time, state *bahamut.State) error {
	if !state.Paired {
		err := s.d.ShowPairing(state.PairingPhase)
		if err != nil {
			return fmt.Errorf("error showing pairing: %s", err)
		}

		return nil
	}

	t := state.Since(now)
	err := s.d.ShowCharge(state.Charge, state.Charge.Visible(t))
	if err != nil {
		return fmt.Errorf("error showing charge: %s", err)
	}

	return nil
}

// Log is a display which writes to the log whenever what it would show
// changes.
type Log struct {
	last string
}

func NewLog() *Log {
	return &Log{}
}

func (l *Log) ShowCharge(bin battery.Bin, visible bool) error {
	s := "battery: " + bin.String()
	if !visible {
		s = "battery: -"
	}

	l.show(s)
	return nil
}

func (l *Log) ShowPairing(phase int) error {
	l.show(fmt.Sprintf("pairing%s", dots[phase%len(dots)]))
	return nil
}

var dots = []string{"", ".", "..", "..."}

func (l *Log) show(s string) {
	if s == l.last {
		return
	}

	log.Info(s)
	l.last = s
}
