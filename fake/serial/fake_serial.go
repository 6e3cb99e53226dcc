package serial

import (
	"bytes"
	"io"
	"sync"

	"github.com/sirupsen/logrus"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "fake/serial",
})

// FakeSerial records everything written to it, and replies with whatever has
// been queued with Reply.
type FakeSerial struct {
	mu      sync.Mutex
	written bytes.Buffer
	replies bytes.Buffer
	closed  bool
}

func New() *FakeSerial {
	return &FakeSerial{}
}

// Reply queues bytes to be returned by subsequent reads.
func (s *FakeSerial) Reply(p ...byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replies.Write(p)
}

// Written returns (and forgets) everything written since the last call.
func (s *FakeSerial) Written() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	b := append([]byte{}, s.written.Bytes()...)
	s.written.Reset()
	return b
}

func (s *FakeSerial) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Read returns queued replies, or io.EOF if there are none.
func (s *FakeSerial) Read(p []byte) (n int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	log.Debugf("read %d bytes", len(p))

	if s.replies.Len() == 0 {
		return 0, io.EOF
	}

	return s.replies.Read(p)
}

func (s *FakeSerial) Write(p []byte) (n int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	log.Debugf("write: %v", p)

	if s.closed {
		return 0, io.ErrClosedPipe
	}

	return s.written.Write(p)
}

func (s *FakeSerial) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	log.Debug("close")
	s.closed = true
	return nil
}
