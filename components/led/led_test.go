package led

import (
	"errors"
	"testing"
	"time"

	"github.com/enveramboy/bahamut"
	"github.com/enveramboy/bahamut/anim"
	fake "github.com/enveramboy/bahamut/fake/led"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderAnimation(t *testing.T) {
	l := fake.New()
	st := New(l)
	require.NoError(t, st.Boot())
	assert.Equal(t, anim.Purple, l.Color())

	s := bahamut.NewState(time.Now())
	s.Paired = true

	type eg struct {
		state anim.State
		at    time.Duration
		exp   anim.Color
	}

	examples := []eg{
		{anim.Idle, 0, anim.Purple},
		{anim.Closed, 5 * time.Millisecond, anim.Off},
		{anim.Red, 10 * time.Millisecond, anim.Color{R: 255}},
		{anim.Red, 60 * time.Millisecond, anim.Color{R: 255}},
		{anim.Red, 100 * time.Millisecond, anim.Off},
		{anim.Idle, 65 * time.Millisecond, anim.Purple},
	}

	for _, ex := range examples {
		s.Animation = ex.state
		require.NoError(t, st.Tick(s.Boot.Add(ex.at), s))
		assert.Equal(t, ex.exp, l.Color(), "state=%s at=%s", ex.state, ex.at)
	}
}

func TestPairing(t *testing.T) {
	l := fake.New()
	st := New(l)
	s := bahamut.NewState(time.Now())

	// Even if the controller picked something, pairing wins until connected.
	s.Animation = anim.Idle

	var ref anim.Pairing
	for i := 1; i <= 200; i++ {
		at := time.Duration(i) * 5 * time.Millisecond
		require.NoError(t, st.Tick(s.Boot.Add(at), s))

		c, phase := ref.Render(at)
		assert.Equal(t, c, l.Color(), "at=%s", at)
		assert.Equal(t, phase, s.PairingPhase, "at=%s", at)
	}

	s.Paired = true
	require.NoError(t, st.Tick(s.Boot.Add(time.Second+5*time.Millisecond), s))
	assert.Equal(t, anim.Purple, l.Color())
}

func TestHalt(t *testing.T) {
	l := fake.New()
	st := New(l)
	require.NoError(t, st.Boot())

	require.NoError(t, st.Halt())
	assert.Equal(t, anim.Off, l.Color())
}

func TestError(t *testing.T) {
	l := fake.New()
	l.Fail(errors.New("pwm gone"))
	st := New(l)

	assert.Error(t, st.Boot())
}
