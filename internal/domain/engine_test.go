package domain

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freezeClock(t *testing.T) *clockwork.FakeClock {
	t.Helper()
	fc := clockwork.NewFakeClockAt(time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC))
	SetClock(fc)
	t.Cleanup(func() { SetClock(nil) })
	return fc
}

func TestEngine_Derive(t *testing.T) {
	fc := freezeClock(t)

	tr := NewTracker()
	tr.Apply(HeadingTrue(0))
	tr.Apply(SpeedOverGround(5))
	tr.Apply(AirTemperature(celsius(4)))
	tr.Apply(RelativeHumidity(70))

	e := NewEngine(tr, "")
	res := e.Derive(RawWindSample{Speed: 10, RelativeAngleDegrees: 90})

	assert.InDelta(t, 11.18, res.TrueSpeed, 0.005)
	assert.Equal(t, DefaultSourceTag, res.SourceTag)
	assert.Equal(t, fc.Now(), res.ComputedAt)
	require.NotNil(t, res.WindChillKelvin)
	assert.Nil(t, res.HeatIndexKelvin)
	assert.Equal(t, *res.WindChillKelvin, res.FeelsLikeKelvin)
}

func TestEngine_DeriveUsesCurrentState(t *testing.T) {
	freezeClock(t)

	tr := NewTracker()
	e := NewEngine(tr, "custom")

	first := e.Derive(RawWindSample{Speed: 6, RelativeAngleDegrees: 0})
	assert.Equal(t, 6.0, first.TrueSpeed)
	assert.Equal(t, "custom", first.SourceTag)

	// Vessel velocity is added back onto the apparent vector.
	tr.Apply(SpeedOverGround(2))
	second := e.Derive(RawWindSample{Speed: 6, RelativeAngleDegrees: 0})
	assert.InDelta(t, 8.0, second.TrueSpeed, 1e-9)
}

func TestDeriveFrom_Deterministic(t *testing.T) {
	freezeClock(t)

	state := VesselState{HeadingTrue: 2, HeadingMagnetic: 2.1, SpeedOverGround: 3, AirTemperature: celsius(30), RelativeHumidity: 65}
	sample := RawWindSample{Speed: 4, RelativeAngleDegrees: 200}

	assert.Equal(t, DeriveFrom(state, sample, "x"), DeriveFrom(state, sample, "x"))
}
