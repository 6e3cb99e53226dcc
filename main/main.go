package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/enveramboy/bahamut"
	"github.com/enveramboy/bahamut/components/body"
	"github.com/enveramboy/bahamut/components/controller"
	"github.com/enveramboy/bahamut/components/display"
	"github.com/enveramboy/bahamut/components/led"
	"github.com/enveramboy/bahamut/components/voltage"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

const (
	tickInterval = 5 * time.Millisecond
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "main",
})

func main() {
	app := cli.NewApp()
	app.Name = "bahamut"
	app.Usage = "run the robot"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "driver",
			Value: "maestro",
			Usage: "joint driver: maestro, servos or fake",
		},
		cli.StringFlag{
			Name:  "port",
			Value: "/dev/ttyACM0",
			Usage: "serial port of the joint driver",
		},
		cli.IntFlag{
			Name:  "baud",
			Value: 115200,
			Usage: "baud rate of the maestro",
		},
		cli.StringFlag{
			Name:  "adc-port",
			Usage: "serial port of a maestro to read the battery from, if the joint driver can't",
		},
		cli.StringFlag{
			Name:  "controller",
			Value: "/dev/input/event0",
			Usage: "input device of the gamepad (empty for none)",
		},
		cli.StringFlag{
			Name:  "led-chip",
			Usage: "sysfs pwm chip of the status LED, e.g. /sys/class/pwm/pwmchip0",
		},
		cli.BoolFlag{
			Name:  "debug",
			Usage: "log every tick",
		},
	}

	app.Before = func(c *cli.Context) error {
		if c.GlobalBool("debug") {
			logrus.SetLevel(logrus.DebugLevel)
		}
		return nil
	}

	app.Commands = tools
	app.Action = run

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	hw, err := openBot(c)
	if err != nil {
		return err
	}
	defer hw.close()

	b := bahamut.New(time.Now())

	// Order matters: each component reads what the previous ones wrote.
	log.Info("creating components")
	b.Add(voltage.New(hw.sampler))
	b.Add(controller.New(hw.input))
	b.Add(body.New(hw.actuator))
	b.Add(led.New(hw.led))
	b.Add(display.New(hw.display))

	log.Info("booting components")
	err = b.Boot()
	if err != nil {
		return err
	}

	// Catch both SIGINT (ctrl+c) and SIGTERM (kill/systemd), to allow the robot
	// to power down its servos before exiting.
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	t := time.NewTicker(tickInterval)
	defer t.Stop()

	log.Info("starting loop")
	for !b.State.Shutdown {
		select {
		case now := <-t.C:
			b.Tick(now)

		case s := <-sig:
			log.Infof("caught %s, shutting down", s)
			b.State.Shutdown = true
		}
	}

	log.Info("halting")
	b.Halt()
	return nil
}
