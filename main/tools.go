package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/enveramboy/bahamut"
	"github.com/enveramboy/bahamut/anim"
	"github.com/enveramboy/bahamut/battery"
	"github.com/enveramboy/bahamut/components/body"
	"github.com/enveramboy/bahamut/components/led"
	"github.com/enveramboy/bahamut/joints"
	"github.com/urfave/cli"
)

// Commands for poking at the hardware without running the whole robot.
var tools = []cli.Command{
	{
		Name:   "relax",
		Usage:  "power down every joint",
		Action: relax,
	},
	{
		Name:      "pose",
		Usage:     "move every joint to one of the pose tables",
		ArgsUsage: "standing|wide|crouched",
		Action:    pose,
	},
	{
		Name:   "sweep",
		Usage:  "wiggle each joint in turn, to check the wiring",
		Action: sweep,
	},
	{
		Name:  "watch",
		Usage: "print the filtered battery reading",
		Flags: []cli.Flag{
			cli.IntFlag{
				Name:  "interval",
				Value: 1000,
				Usage: "the time between reads (ms)",
			},
		},
		Action: watch,
	},
	{
		Name:   "lights",
		Usage:  "show each LED animation for a few seconds",
		Action: lights,
	},
}

var poses = map[string]joints.Pose{
	"standing": joints.Standing,
	"wide":     joints.WideStance,
	"crouched": joints.Crouched,
}

// commit sends a whole frame through the body component.
func commit(b *body.Body, f joints.Frame) error {
	s := bahamut.NewState(time.Now())
	s.Frame = f
	return b.Tick(time.Now(), s)
}

func relax(c *cli.Context) error {
	hw, err := openBot(c)
	if err != nil {
		return err
	}
	defer hw.close()

	return body.New(hw.actuator).Halt()
}

func pose(c *cli.Context) error {
	p, ok := poses[c.Args().First()]
	if !ok {
		return fmt.Errorf("unknown pose: %q", c.Args().First())
	}

	hw, err := openBot(c)
	if err != nil {
		return err
	}
	defer hw.close()

	f := joints.Frame{}
	f.SetPose(p)
	return commit(body.New(hw.actuator), f)
}

func sweep(c *cli.Context) error {
	hw, err := openBot(c)
	if err != nil {
		return err
	}
	defer hw.close()

	b := body.New(hw.actuator)
	defer b.Halt()

	p := joints.WideStance
	for _, j := range joints.All() {
		fmt.Println(j)

		for _, d := range []int{-20, +20, 0} {
			f := joints.Frame{}
			f.SetPose(p)
			f.Offset(p, j, d)

			err = commit(b, f)
			if err != nil {
				return err
			}

			time.Sleep(500 * time.Millisecond)
		}
	}

	return nil
}

func watch(c *cli.Context) error {
	hw, err := openBot(c)
	if err != nil {
		return err
	}
	defer hw.close()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	t := time.NewTicker(time.Duration(c.Int("interval")) * time.Millisecond)
	defer t.Stop()

	f := battery.Filter{}
	first := true

	for {
		select {
		case <-sig:
			return nil

		case <-t.C:
			v, err := hw.sampler.Sample()
			if err != nil {
				return err
			}

			// Skip the startup transient.
			if first {
				f.Fill(v)
				first = false
			}

			mean := f.Add(v)
			fmt.Printf("raw=%d mean=%.1f bin=%s unsafe=%v\n", v, mean, battery.Classify(mean), battery.Unsafe(mean))
		}
	}
}

func lights(c *cli.Context) error {
	hw, err := openBot(c)
	if err != nil {
		return err
	}
	defer hw.close()

	l := led.New(hw.led)
	defer l.Halt()

	s := bahamut.NewState(time.Now())
	s.Paired = true

	t := time.NewTicker(tickInterval)
	defer t.Stop()

	for _, a := range []anim.State{anim.Idle, anim.Attack, anim.Blue, anim.Red, anim.All, anim.Turquoise, anim.Closed} {
		fmt.Println(a)
		s.Animation = a

		end := time.Now().Add(3 * time.Second)
		for now := range t.C {
			if now.After(end) {
				break
			}

			err = l.Tick(now, s)
			if err != nil {
				return err
			}
		}
	}

	return nil
}
