package domain

import "github.com/jonboulle/clockwork"

// DefaultSourceTag labels measurements derived by this service.
const DefaultSourceTag = "weatherflow.calculated"

// clock stamps ComputedAt on every result.
var clock = clockwork.NewRealClock()

// SetClock replaces the clock used to stamp results. nil restores real time.
func SetClock(c clockwork.Clock) {
	if c == nil {
		c = clockwork.NewRealClock()
	}
	clock = c
}

// Engine turns raw wind samples into true wind results against the tracked
// vessel state.
type Engine struct {
	tracker *Tracker
	source  string
}

// NewEngine creates an Engine reading from tracker. An empty source falls
// back to DefaultSourceTag.
func NewEngine(tracker *Tracker, source string) *Engine {
	if source == "" {
		source = DefaultSourceTag
	}
	return &Engine{tracker: tracker, source: source}
}

// Derive runs one sample through the resolver, solver and comfort
// calculator. The tracker is read exactly once.
func (e *Engine) Derive(sample RawWindSample) TrueWindResult {
	return DeriveFrom(e.tracker.Snapshot(), sample, e.source)
}

// DeriveFrom is Derive against an explicit state snapshot.
func DeriveFrom(state VesselState, sample RawWindSample, source string) TrueWindResult {
	aw := ResolveApparent(sample, state)
	res := SolveTrueWind(aw, state)

	comfort := ComputeComfort(aw.AirTemperature, state.RelativeHumidity, res.TrueSpeed)
	res.WindChillKelvin = comfort.WindChill
	res.HeatIndexKelvin = comfort.HeatIndex
	res.FeelsLikeKelvin = comfort.FeelsLike

	res.ComputedAt = clock.Now()
	res.SourceTag = source
	return res
}
