package domain

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUpdate(t *testing.T) {
	tests := []struct {
		field string
		want  Update
	}{
		{FieldHeadingTrue, HeadingTrue(1.2)},
		{FieldHeadingMagnetic, HeadingMagnetic(1.2)},
		{FieldCourseOverGroundMagnetic, CourseOverGroundMagnetic(1.2)},
		{FieldSpeedOverGround, SpeedOverGround(1.2)},
		{FieldAirTemperature, AirTemperature(1.2)},
		{FieldRelativeHumidity, RelativeHumidity(1.2)},
	}
	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			u, ok := ParseUpdate(tt.field, 1.2)
			require.True(t, ok)
			assert.Equal(t, tt.want, u)
			assert.Equal(t, tt.field, u.Field())
		})
	}

	u, ok := ParseUpdate("navigation.rateOfTurn", 0.1)
	assert.False(t, ok)
	assert.Nil(t, u)
}

func TestTracker_Apply(t *testing.T) {
	tr := NewTracker()
	assert.Equal(t, VesselState{}, tr.Snapshot())
	assert.False(t, tr.HasHeading())
	assert.Error(t, tr.CheckReadiness(context.Background()))

	tr.Apply(HeadingTrue(0.5))
	tr.Apply(HeadingMagnetic(0.4))
	tr.Apply(SpeedOverGround(3))
	tr.Apply(AirTemperature(290))
	tr.Apply(RelativeHumidity(55))
	tr.Apply(HeadingTrue(0.6)) // last write wins

	s := tr.Snapshot()
	assert.Equal(t, 0.6, s.HeadingTrue)
	assert.Equal(t, 0.4, s.HeadingMagnetic)
	assert.Nil(t, s.CourseOverGroundMagnetic)
	assert.Equal(t, 0.4, s.MagneticReference())
	assert.Equal(t, 3.0, s.SpeedOverGround)
	assert.Equal(t, 290.0, s.AirTemperature)
	assert.Equal(t, 55.0, s.RelativeHumidity)
	assert.True(t, tr.HasHeading())
	assert.NoError(t, tr.CheckReadiness(context.Background()))

	tr.Apply(CourseOverGroundMagnetic(0.3))
	s = tr.Snapshot()
	require.NotNil(t, s.CourseOverGroundMagnetic)
	assert.Equal(t, 0.3, s.MagneticReference())
}

func TestTracker_SnapshotIsIndependent(t *testing.T) {
	tr := NewTracker()
	tr.Apply(CourseOverGroundMagnetic(1))

	s := tr.Snapshot()
	*s.CourseOverGroundMagnetic = 2
	s.HeadingTrue = 9

	again := tr.Snapshot()
	assert.Equal(t, 1.0, *again.CourseOverGroundMagnetic)
	assert.Equal(t, 0.0, again.HeadingTrue)
}

func TestTracker_SetAnchor(t *testing.T) {
	tr := NewTracker()
	tr.SetAnchor(true, 1.1)
	s := tr.Snapshot()
	assert.True(t, s.Anchored)
	assert.Equal(t, 1.1, s.AnchoredApparentBearing)

	tr.SetAnchor(false, 0)
	assert.False(t, tr.Snapshot().Anchored)
}

func TestTracker_ConcurrentUpdates(t *testing.T) {
	tr := NewTracker()
	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := range 200 {
				tr.Apply(SpeedOverGround(float64(i * j)))
				tr.Apply(CourseOverGroundMagnetic(float64(j)))
			}
		}()
		go func() {
			defer wg.Done()
			for range 200 {
				_ = tr.Snapshot()
			}
		}()
	}
	wg.Wait()
	assert.NotNil(t, tr.Snapshot().CourseOverGroundMagnetic)
}
