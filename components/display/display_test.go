package display

import (
	"testing"
	"time"

	"github.com/enveramboy/bahamut"
	"github.com/enveramboy/bahamut/battery"
	fake "github.com/enveramboy/bahamut/fake/display"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShow(t *testing.T) {
	type eg struct {
		paired bool
		phase  int
		charge battery.Bin
		at     time.Duration
		exp    fake.Shown
	}

	examples := []eg{
		{false, 2, battery.Full, 0, fake.Shown{Pairing: true, Phase: 2}},
		{true, 2, battery.Full, 1500 * time.Millisecond, fake.Shown{Charge: battery.Full, Visible: true}},
		{true, 0, battery.OneBar, 500 * time.Millisecond, fake.Shown{Charge: battery.OneBar, Visible: true}},
		{true, 0, battery.OneBar, 1500 * time.Millisecond, fake.Shown{Charge: battery.OneBar, Visible: false}},
		{true, 0, battery.Empty, 2100 * time.Millisecond, fake.Shown{Charge: battery.Empty, Visible: true}},
	}

	for _, ex := range examples {
		d := fake.New()
		st := New(d)
		require.NoError(t, st.Boot())

		s := bahamut.NewState(time.Now())
		s.Paired = ex.paired
		s.PairingPhase = ex.phase
		s.Charge = ex.charge

		require.NoError(t, st.Tick(s.Boot.Add(ex.at), s))
		assert.Equal(t, ex.exp, d.Shown())
	}
}

func TestLog(t *testing.T) {
	l := NewLog()

	require.NoError(t, l.ShowPairing(3))
	assert.Equal(t, "pairing...", l.last)

	require.NoError(t, l.ShowCharge(battery.TwoBar, true))
	assert.Equal(t, "battery: "+battery.TwoBar.String(), l.last)

	require.NoError(t, l.ShowCharge(battery.OneBar, false))
	assert.Equal(t, "battery: -", l.last)
}
