package joints

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoseTables(t *testing.T) {
	type eg struct {
		joint    Joint
		standing int
		wide     int
		crouched int
	}

	examples := []eg{
		{RightShoulder, 20, 20, 20},
		{RightBicep, 145, 145, 145},
		{LeftShoulder, 160, 160, 160},
		{LeftBicep, 35, 35, 35},
		{Waist, 95, 95, 95},
		{RightHip, 60, 80, 135},
		{RightFoot, 40, 60, 115},
		{LeftHip, 130, 100, 45},
		{LeftFoot, 130, 100, 45},
	}

	for _, x := range examples {
		assert.Equal(t, x.standing, Baseline(Standing, x.joint), "standing %s", x.joint)
		assert.Equal(t, x.wide, Baseline(WideStance, x.joint), "wide %s", x.joint)
		assert.Equal(t, x.crouched, Baseline(Crouched, x.joint), "crouched %s", x.joint)
	}
}

func TestRest(t *testing.T) {
	assert.Equal(t, WideStance, Rest(false))
	assert.Equal(t, Crouched, Rest(true))
}

func TestSet(t *testing.T) {
	s := SetOf(Waist, LeftFoot)
	assert.True(t, s.Has(Waist))
	assert.True(t, s.Has(LeftFoot))
	assert.False(t, s.Has(RightFoot))
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, "{w,lf}", s.String())

	assert.Equal(t, Count, Full.Len())
	assert.Equal(t, Full, s.Union(Full))
}

func TestInvalidJointPanics(t *testing.T) {
	assert.Panics(t, func() { SetOf(Joint(Count)) })
	assert.Panics(t, func() { Standing.Angle(Joint(-1)) })
}

func TestFrameMergeLastWins(t *testing.T) {
	var a, b Frame
	a.Set(Waist, 10)
	a.Set(LeftFoot, 20)
	b.Set(Waist, 30)
	b.Set(RightFoot, 40)

	a.Merge(b)

	w, ok := a.Angle(Waist)
	assert.True(t, ok)
	assert.Equal(t, 30, w)

	lf, _ := a.Angle(LeftFoot)
	assert.Equal(t, 20, lf)

	rf, _ := a.Angle(RightFoot)
	assert.Equal(t, 40, rf)

	assert.Equal(t, SetOf(Waist, LeftFoot, RightFoot), a.Claimed())
}

func TestFrameBackfill(t *testing.T) {
	var f Frame
	f.Offset(Standing, Waist, 45)
	assert.False(t, f.Complete())
	assert.Panics(t, func() { f.Angles() })

	f.Backfill(Crouched)
	assert.True(t, f.Complete())

	angles := f.Angles()
	assert.Equal(t, 140, angles[Waist])
	assert.Equal(t, 135, angles[RightHip])
	assert.Equal(t, 45, angles[LeftFoot])
}
