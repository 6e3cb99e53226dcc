package main

import (
	"fmt"
	"io"

	"github.com/enveramboy/bahamut/components/body"
	"github.com/enveramboy/bahamut/components/controller"
	"github.com/enveramboy/bahamut/components/display"
	"github.com/enveramboy/bahamut/components/led"
	"github.com/enveramboy/bahamut/components/voltage"
	fakeactuator "github.com/enveramboy/bahamut/fake/actuator"
	fakeinput "github.com/enveramboy/bahamut/fake/input"
	fakeled "github.com/enveramboy/bahamut/fake/led"
	fakevoltage "github.com/enveramboy/bahamut/fake/voltage"
	"github.com/enveramboy/bahamut/maestro"
	"github.com/enveramboy/bahamut/rgb"
	"github.com/enveramboy/bahamut/servos"
	"github.com/urfave/cli"
)

const (

	// Reading used when there's no battery divider: comfortably full.
	fakeCharge = 3300

	maestroDevice = 12
)

// bot is the hardware which the components talk to.
type bot struct {
	actuator body.Actuator
	sampler  voltage.Sampler
	led      led.LED
	display  display.Display
	input    controller.Source

	// Closed in reverse order at exit.
	closers []io.Closer
}

func (b *bot) close() {
	for i := len(b.closers) - 1; i >= 0; i-- {
		err := b.closers[i].Close()
		if err != nil {
			log.Errorf("close: %T: %s", b.closers[i], err)
		}
	}
}

// openBot opens whichever hardware the flags ask for. On error, anything which
// was already opened is closed.
func openBot(c *cli.Context) (_ *bot, err error) {
	b := &bot{
		display: display.NewLog(),
	}

	defer func() {
		if err != nil {
			b.close()
		}
	}()

	switch d := c.GlobalString("driver"); d {
	case "maestro":
		log.Infof("opening maestro on %s", c.GlobalString("port"))
		m, closer, err := maestro.Open(c.GlobalString("port"), c.GlobalInt("baud"), maestroDevice, true)
		if err != nil {
			return nil, err
		}
		b.closers = append(b.closers, closer)
		b.actuator = m
		b.sampler = m

	case "servos":
		log.Infof("opening dynamixel bus on %s", c.GlobalString("port"))
		p, err := servos.Open(c.GlobalString("port"))
		if err != nil {
			return nil, err
		}
		b.closers = append(b.closers, p)
		b.actuator = p

	case "fake":
		b.actuator = fakeactuator.New()

	default:
		return nil, fmt.Errorf("unknown driver: %s", d)
	}

	if b.sampler == nil {
		if port := c.GlobalString("adc-port"); port != "" {
			log.Infof("opening maestro adc on %s", port)
			m, closer, err := maestro.Open(port, c.GlobalInt("baud"), maestroDevice, true)
			if err != nil {
				return nil, err
			}
			b.closers = append(b.closers, closer)
			b.sampler = m
		} else {
			log.Warn("no battery monitor; assuming full")
			b.sampler = fakevoltage.New(fakeCharge)
		}
	}

	if chip := c.GlobalString("led-chip"); chip != "" {
		l, err := rgb.Open(chip, 0, 1, 2)
		if err != nil {
			return nil, err
		}
		b.closers = append(b.closers, l)
		b.led = l
	} else {
		b.led = fakeled.New()
	}

	if dev := c.GlobalString("controller"); dev != "" {
		sa := controller.NewSixaxis(dev)
		sa.Start()
		b.closers = append(b.closers, sa)
		b.input = sa
	} else {
		log.Warn("no controller; standing still")
		b.input = fakeinput.New()
	}

	return b, nil
}
