// Package servos drives the joints with Dynamixel AX servos on a shared bus.
package servos

import (
	"io"

	"github.com/adammck/dynamixel/network"
	v1 "github.com/adammck/dynamixel/protocol/v1"
	"github.com/adammck/dynamixel/servo"
	"github.com/adammck/dynamixel/servo/ax"
	"github.com/enveramboy/bahamut/joints"
	"github.com/jacobsa/go-serial/serial"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (

	// Joint j is servo firstID+j on the bus.
	firstID = 1

	// Joint angles are hobby-servo degrees (0-180, 90 centered). The AX servos
	// are centered on zero.
	center = 90
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "servos",
})

// Pool is one servo per joint.
type Pool struct {
	port    io.Closer
	network *network.Network
	proto   *v1.Proto1
	servos  [joints.Count]*servo.Servo

	// Servos which have been pinged, and so need powering down at shutdown,
	// even if something later failed.
	alive []*servo.Servo
}

// Open opens the serial port at portName, and returns a pool of every joint
// servo on the bus behind it.
func Open(portName string) (*Pool, error) {
	opts := serial.OpenOptions{
		PortName:              portName,
		BaudRate:              1000000,
		DataBits:              8,
		StopBits:              1,
		MinimumReadSize:       0,
		InterCharacterTimeout: 100,
	}

	port, err := serial.Open(opts)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", portName)
	}

	return New(port)
}

// New returns a pool of every joint servo on the bus behind port.
func New(port io.ReadWriteCloser) (*Pool, error) {
	n := network.New(port)
	p := &Pool{port: port, network: n, proto: v1.New(n)}

	for _, j := range joints.All() {
		s, err := p.add(firstID + int(j))
		if err != nil {
			p.Relax()
			return nil, errors.Wrapf(err, "servo for %s", j)
		}

		p.servos[j] = s
	}

	log.Infof("found %d servos", len(p.alive))
	return p, nil
}

// add sets up a servo with sensible defaults.
func (p *Pool) add(id int) (*servo.Servo, error) {
	s, err := ax.New(p.network, id)
	if err != nil {
		return nil, err
	}

	// Don't bother sending ACKs for writes. We must do this first, to ensure
	// that the servos are in the expected state before sending other commands.
	err = s.SetReturnLevel(1)
	if err != nil {
		return nil, errors.Wrap(err, "setting return level")
	}

	err = s.Ping()
	if err != nil {
		return nil, errors.Wrap(err, "pinging")
	}

	p.alive = append(p.alive, s)

	err = s.SetReturnDelayTime(0)
	if err != nil {
		return nil, errors.Wrap(err, "setting return delay")
	}

	err = s.SetTorqueEnable(true)
	if err != nil {
		return nil, errors.Wrap(err, "enabling torque")
	}

	err = s.SetMovingSpeed(1023)
	if err != nil {
		return nil, errors.Wrap(err, "setting move speed")
	}

	// Buffer all subsequent instructions. The ACTION command is issued by
	// Flush at the end of each tick. This is just an attribute of the servo; it
	// doesn't affect the actual control table, so doesn't need un-setting.
	s.SetBuffered(true)

	return s, nil
}

// SetJointAngle queues a move. Nothing happens until Flush.
func (p *Pool) SetJointAngle(j joints.Joint, deg int) error {
	s := p.servos[j]
	if s == nil {
		return errors.Errorf("no servo for %s", j)
	}

	err := s.MoveTo(float64(deg - center))
	if err != nil {
		return errors.Wrapf(err, "moving %s to %d", j, deg)
	}

	return nil
}

// Flush starts every queued move at once. ACTION is broadcast, so no servo
// replies to it.
func (p *Pool) Flush() error {
	err := p.proto.Action()
	if err != nil {
		return errors.Wrap(err, "sending action")
	}

	return nil
}

// Relax powers off every servo in the pool. This should be called before
// terminating the program, to ensure that servos don't stay powered up
// indefinitely.
func (p *Pool) Relax() error {
	var first error

	for _, s := range p.alive {
		s.SetBuffered(false)

		err := s.SetTorqueEnable(false)
		if err != nil && first == nil {
			first = errors.Wrap(err, "disabling torque")
		}

		s.SetLED(false)
	}

	return first
}

// Close closes the serial port. Relax first.
func (p *Pool) Close() error {
	return p.port.Close()
}
