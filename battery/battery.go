// Package battery filters raw voltage samples and bins them into a charge
// level. Samples are raw ADC counts (0-4095) from the battery divider.
package battery

import (
	"fmt"
	"time"
)

const (

	// Number of samples in the moving average. At one sample per tick, this is
	// about half a second of history.
	K = 100

	// Bin thresholds, in raw counts.
	fullThreshold   = 3050
	twoBarThreshold = 2800

	// Below this mean, the robot is no longer safe to move. This is also the
	// bottom of the one-bar bin.
	SafeThreshold = 2550

	// The low bins blink on and off for this long each.
	blinkHalfPeriod = 1000 * time.Millisecond
)

// Bin is a discrete charge level.
type Bin int

const (
	Empty Bin = iota
	OneBar
	TwoBar
	Full
)

func (b Bin) String() string {
	switch b {
	case Empty:
		return "empty"
	case OneBar:
		return "one-bar"
	case TwoBar:
		return "two-bar"
	case Full:
		return "full"
	default:
		return fmt.Sprintf("Bin(%d)", int(b))
	}
}

// Classify returns the bin of the given (filtered) reading.
func Classify(mean float64) Bin {
	switch {
	case mean >= fullThreshold:
		return Full
	case mean >= twoBarThreshold:
		return TwoBar
	case mean >= SafeThreshold:
		return OneBar
	default:
		return Empty
	}
}

// Unsafe returns true if the (filtered) reading is too low to keep moving.
func Unsafe(mean float64) bool {
	return mean < SafeThreshold
}

// Blinks returns true if the given bin should be shown blinking.
func (b Bin) Blinks() bool {
	return b == OneBar || b == Empty
}

// Visible returns whether a bin should be shown at now. Blinking bins are
// shown for one second out of every two.
func (b Bin) Visible(now time.Duration) bool {
	if !b.Blinks() {
		return true
	}
	return now%(2*blinkHalfPeriod) < blinkHalfPeriod
}

// Filter is a moving average over the last K samples. The buffer starts out
// zeroed and isn't corrected for, so the mean reads low until K samples have
// been added.
type Filter struct {
	readings [K]int
	idx      int
	mean     float64
}

// Add overwrites the oldest sample, and returns the new mean.
func (f *Filter) Add(sample int) float64 {
	f.readings[f.idx] = sample
	f.idx = (f.idx + 1) % K

	sum := 0
	for _, r := range f.readings {
		sum += r
	}

	f.mean = float64(sum) / K
	return f.mean
}

// Mean returns the mean as of the last Add.
func (f *Filter) Mean() float64 {
	return f.mean
}

// Fill sets every slot to the given sample. Only useful for tests and fakes
// which don't want to wait out the startup transient.
func (f *Filter) Fill(sample int) {
	for i := range f.readings {
		f.readings[i] = sample
	}
	f.mean = float64(sample)
}
