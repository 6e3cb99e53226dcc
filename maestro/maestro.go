// Package maestro drives the joints and reads the battery through a Pololu
// Maestro servo controller.
//
// See: https://www.pololu.com/docs/pdf/0J40/maestro.pdf
package maestro

import (
	"bytes"
	"io"
	"sync"
	"time"

	"github.com/enveramboy/bahamut/joints"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/tarm/serial"
)

const (
	cmdSetTarget   = 0x84
	cmdGetPosition = 0x90
	cmdGetErrors   = 0xa1

	// Pulse widths (in microseconds) of 0 and 180 degrees. These match the
	// Arduino servo library, which the joint tables were tuned with.
	minPulse = 544
	maxPulse = 2400

	// Channel of the battery voltage divider, configured as an input.
	BatteryChannel = 11

	// Analog inputs read 0-1023. The battery thresholds are in 12-bit counts.
	adcScale = 4
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "maestro",
})

// Maestro is one controller. Joint j is on channel j.
type Maestro struct {
	mu      sync.Mutex
	port    io.ReadWriter
	device  uint8
	compact bool

	// SET TARGET commands waiting for Flush.
	pending bytes.Buffer
}

// Open opens the serial port at name, and returns the Maestro on it. Use the
// compact protocol unless there's more than one device on the line.
func Open(name string, baud int, device uint8, compact bool) (*Maestro, io.Closer, error) {
	port, err := serial.OpenPort(&serial.Config{
		Name:        name,
		Baud:        baud,
		ReadTimeout: 100 * time.Millisecond,
	})
	if err != nil {
		return nil, nil, errors.Wrapf(err, "opening %s", name)
	}

	return New(port, device, compact), port, nil
}

func New(port io.ReadWriter, device uint8, compact bool) *Maestro {
	return &Maestro{
		port:    port,
		device:  device,
		compact: compact,
	}
}

func lo(x uint16) byte {
	return byte(x & 0x7f)
}

func hi(x uint16) byte {
	return byte((x >> 7) & 0x7f)
}

func (m *Maestro) preamble(command uint8) []byte {
	if m.compact {
		return []byte{command}
	}
	return []byte{0xaa, m.device, command & 0x7f}
}

// target converts degrees to the unit of SET TARGET: quarter-microseconds.
func target(deg int) uint16 {
	if deg < 0 {
		deg = 0
	} else if deg > 180 {
		deg = 180
	}

	us := minPulse + deg*(maxPulse-minPulse)/180
	return uint16(us * 4)
}

// SetJointAngle queues a move. Nothing is sent until Flush.
func (m *Maestro) SetJointAngle(j joints.Joint, deg int) error {
	if !j.Valid() {
		return errors.Errorf("invalid joint: %d", int(j))
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	t := target(deg)
	m.pending.Write(m.preamble(cmdSetTarget))
	m.pending.Write([]byte{byte(j), lo(t), hi(t)})
	return nil
}

// Flush sends every queued move in a single write.
func (m *Maestro) Flush() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.pending.Len() == 0 {
		return nil
	}

	_, err := m.port.Write(m.pending.Bytes())
	m.pending.Reset()
	if err != nil {
		return errors.Wrap(err, "writing targets")
	}

	return nil
}

// Sample reads the battery channel, scaled to 12-bit counts.
func (m *Maestro) Sample() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cmd := append(m.preamble(cmdGetPosition), BatteryChannel)
	_, err := m.port.Write(cmd)
	if err != nil {
		return 0, errors.Wrap(err, "requesting battery channel")
	}

	buf := make([]byte, 2)
	_, err = io.ReadFull(m.port, buf)
	if err != nil {
		return 0, errors.Wrap(err, "reading battery channel")
	}

	v := int(buf[0]) | int(buf[1])<<8
	return v * adcScale, nil
}

// Errors returns the error register, which is cleared by reading it.
func (m *Maestro) Errors() (uint16, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, err := m.port.Write(m.preamble(cmdGetErrors))
	if err != nil {
		return 0, errors.Wrap(err, "requesting errors")
	}

	buf := make([]byte, 2)
	_, err = io.ReadFull(m.port, buf)
	if err != nil {
		return 0, errors.Wrap(err, "reading errors")
	}

	return (uint16(buf[0]) & 0x7f) + (uint16(buf[1])&0x7f)<<8, nil
}

// Relax stops sending pulses to every joint, so the servos go limp. Anything
// queued is discarded.
func (m *Maestro) Relax() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pending.Reset()

	cmd := []byte{}
	for _, j := range joints.All() {
		cmd = append(cmd, m.preamble(cmdSetTarget)...)
		cmd = append(cmd, byte(j), 0, 0)
	}

	_, err := m.port.Write(cmd)
	if err != nil {
		return errors.Wrap(err, "relaxing")
	}

	log.Info("relaxed all joints")
	return nil
}
