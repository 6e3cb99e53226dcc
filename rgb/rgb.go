// Package rgb drives a common-cathode RGB LED from three channels of a Linux
// PWM chip, through sysfs.
package rgb

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (

	// PWM period in nanoseconds (1kHz).
	period = 1000000

	// Usual location of the PWM chips.
	SysfsRoot = "/sys/class/pwm"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "rgb",
})

// LED is three PWM channels. Brightness is linear in duty cycle.
type LED struct {
	chip     string
	channels [3]int
	last     [3]uint8
	written  bool
}

// Open exports and enables the red, green and blue channels of the given chip
// (e.g. /sys/class/pwm/pwmchip0).
func Open(chip string, r, g, b int) (*LED, error) {
	l := &LED{
		chip:     chip,
		channels: [3]int{r, g, b},
	}

	for _, ch := range l.channels {
		err := l.export(ch)
		if err != nil {
			return nil, err
		}
	}

	return l, nil
}

func (l *LED) path(ch int, attr string) string {
	return filepath.Join(l.chip, fmt.Sprintf("pwm%d", ch), attr)
}

func (l *LED) write(path string, v int) error {
	err := os.WriteFile(path, []byte(strconv.Itoa(v)), 0)
	if err != nil {
		return errors.Wrapf(err, "writing %d to %s", v, path)
	}
	return nil
}

func (l *LED) export(ch int) error {
	if _, err := os.Stat(l.path(ch, "")); os.IsNotExist(err) {
		err = l.write(filepath.Join(l.chip, "export"), ch)
		if err != nil {
			return err
		}
	}

	// The duty cycle can't exceed the period, so zero it first in case the
	// channel was left on with a longer period.
	err := l.write(l.path(ch, "duty_cycle"), 0)
	if err != nil {
		return err
	}

	err = l.write(l.path(ch, "period"), period)
	if err != nil {
		return err
	}

	return l.write(l.path(ch, "enable"), 1)
}

// duty converts a brightness (0-255) to nanoseconds.
func duty(v uint8) int {
	return int(v) * period / 255
}

// SetColor changes the duty cycle of each channel. Channels which haven't
// changed aren't written.
func (l *LED) SetColor(r, g, b uint8) error {
	c := [3]uint8{r, g, b}

	for i, ch := range l.channels {
		if l.written && c[i] == l.last[i] {
			continue
		}

		err := l.write(l.path(ch, "duty_cycle"), duty(c[i]))
		if err != nil {
			return err
		}
	}

	l.last = c
	l.written = true
	return nil
}

// Close turns the LED off and disables the channels.
func (l *LED) Close() error {
	err := l.SetColor(0, 0, 0)
	if err != nil {
		return err
	}

	for _, ch := range l.channels {
		err = l.write(l.path(ch, "enable"), 0)
		if err != nil {
			return err
		}
	}

	log.Info("disabled")
	return nil
}
