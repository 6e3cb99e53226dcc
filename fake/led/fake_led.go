package led

import (
	"sync"

	"github.com/enveramboy/bahamut/anim"
)

// FakeLED remembers every color it was set to.
type FakeLED struct {
	mu      sync.Mutex
	history []anim.Color
	err     error
}

func New() *FakeLED {
	return &FakeLED{}
}

// Fail makes every subsequent call return err.
func (l *FakeLED) Fail(err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.err = err
}

func (l *FakeLED) SetColor(r, g, b uint8) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.err != nil {
		return l.err
	}

	l.history = append(l.history, anim.Color{R: r, G: g, B: b})
	return nil
}

// Color returns the current color, which is off until the first set.
func (l *FakeLED) Color() anim.Color {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.history) == 0 {
		return anim.Off
	}

	return l.history[len(l.history)-1]
}

func (l *FakeLED) History() []anim.Color {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]anim.Color{}, l.history...)
}
