// Package ramp provides linear interpolation channels, used by the slower
// motions to ease joints from one angle to another.
//
// All times are offsets from an arbitrary epoch (normally boot), so that a
// channel is a pure function of the clock it is given.
package ramp

import (
	"fmt"
	"math"
	"time"
)

type Mode int

const (

	// Once interpolates from the start to the target, then holds the target.
	Once Mode = iota

	// ForthAndBack bounces between the start and the target forever, taking
	// the duration to travel in each direction.
	ForthAndBack
)

func (m Mode) String() string {
	switch m {
	case Once:
		return "once"
	case ForthAndBack:
		return "forth-and-back"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Channel is a single interpolated value. The zero value holds zero forever.
type Channel struct {

	// The most recently sampled (or snapped) value. Retargeting always starts
	// from here, not from the previous start.
	value float64

	start  float64
	target float64
	from   time.Duration
	dur    time.Duration
	mode   Mode
}

// Set snaps the channel to v immediately.
func (c *Channel) Set(v float64) {
	c.value = v
	c.start = v
	c.target = v
	c.dur = 0
	c.mode = Once
}

// Go starts interpolating from the current value to v over d, starting at now.
// A zero (or negative) duration is the same as Set.
func (c *Channel) Go(v float64, d time.Duration, mode Mode, now time.Duration) {
	if d <= 0 {
		c.Set(v)
		return
	}

	c.start = c.value
	c.target = v
	c.from = now
	c.dur = d
	c.mode = mode
}

// Update samples the channel at now, and returns the value.
func (c *Channel) Update(now time.Duration) float64 {
	c.value = c.at(now)
	return c.value
}

// Int is the same as Update, rounded to the nearest whole degree.
func (c *Channel) Int(now time.Duration) int {
	return int(math.Round(c.Update(now)))
}

// Value returns the most recently sampled value, without sampling again.
func (c *Channel) Value() float64 {
	return c.value
}

// Target returns the value which the channel is heading towards.
func (c *Channel) Target() float64 {
	return c.target
}

// Done returns true if a Once channel has reached its target. ForthAndBack
// channels are never done.
func (c *Channel) Done(now time.Duration) bool {
	if c.dur <= 0 {
		return true
	}
	return c.mode == Once && now-c.from >= c.dur
}

func (c *Channel) at(now time.Duration) float64 {
	if c.dur <= 0 {
		return c.target
	}

	e := now - c.from
	if e < 0 {
		e = 0
	}

	var r float64
	switch c.mode {
	case ForthAndBack:
		e = e % (2 * c.dur)
		if e <= c.dur {
			r = float64(e) / float64(c.dur)
		} else {
			r = float64(2*c.dur-e) / float64(c.dur)
		}

	default:
		if e >= c.dur {
			return c.target
		}
		r = float64(e) / float64(c.dur)
	}

	return c.start + (c.target-c.start)*r
}

func (c Channel) String() string {
	return fmt.Sprintf("Channel{value=%0.2f start=%0.2f target=%0.2f dur=%v mode=%s}", c.value, c.start, c.target, c.dur, c.mode)
}
