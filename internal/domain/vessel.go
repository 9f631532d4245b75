package domain

import (
	"context"
	"errors"
	"sync"
)

// VesselState is the latest known motion and ambient state of the vessel.
// Angles are radians, speeds m/s, temperature kelvin, humidity percent.
type VesselState struct {
	HeadingTrue     float64
	HeadingMagnetic float64
	// CourseOverGroundMagnetic is nil until a fix has been reported.
	CourseOverGroundMagnetic *float64
	SpeedOverGround          float64
	AirTemperature           float64
	RelativeHumidity         float64

	Anchored                bool
	AnchoredApparentBearing float64
}

// MagneticReference returns course over ground when known and heading
// magnetic otherwise.
func (s VesselState) MagneticReference() float64 {
	if s.CourseOverGroundMagnetic != nil {
		return *s.CourseOverGroundMagnetic
	}
	return s.HeadingMagnetic
}

// Update is a single field change reported by the navigation feed.
// The concrete types below are the only implementations.
type Update interface {
	Field() string
	isUpdate()
}

type (
	HeadingTrue              float64
	HeadingMagnetic          float64
	CourseOverGroundMagnetic float64
	SpeedOverGround          float64
	AirTemperature           float64
	RelativeHumidity         float64
)

// Navigation field names as emitted by the feed.
const (
	FieldHeadingTrue              = "headingTrue"
	FieldHeadingMagnetic          = "headingMagnetic"
	FieldCourseOverGroundMagnetic = "courseOverGroundMagnetic"
	FieldSpeedOverGround          = "speedOverGround"
	FieldAirTemperature           = "airTemperature"
	FieldRelativeHumidity         = "relativeHumidity"
)

func (HeadingTrue) Field() string              { return FieldHeadingTrue }
func (HeadingMagnetic) Field() string          { return FieldHeadingMagnetic }
func (CourseOverGroundMagnetic) Field() string { return FieldCourseOverGroundMagnetic }
func (SpeedOverGround) Field() string          { return FieldSpeedOverGround }
func (AirTemperature) Field() string           { return FieldAirTemperature }
func (RelativeHumidity) Field() string         { return FieldRelativeHumidity }

func (HeadingTrue) isUpdate()              {}
func (HeadingMagnetic) isUpdate()          {}
func (CourseOverGroundMagnetic) isUpdate() {}
func (SpeedOverGround) isUpdate()          {}
func (AirTemperature) isUpdate()           {}
func (RelativeHumidity) isUpdate()         {}

// ParseUpdate maps a feed field name onto its Update variant. The feed also
// carries fields this engine does not track; those report ok=false and are
// meant to be dropped without error.
func ParseUpdate(field string, value float64) (u Update, ok bool) {
	switch field {
	case FieldHeadingTrue:
		return HeadingTrue(value), true
	case FieldHeadingMagnetic:
		return HeadingMagnetic(value), true
	case FieldCourseOverGroundMagnetic:
		return CourseOverGroundMagnetic(value), true
	case FieldSpeedOverGround:
		return SpeedOverGround(value), true
	case FieldAirTemperature:
		return AirTemperature(value), true
	case FieldRelativeHumidity:
		return RelativeHumidity(value), true
	default:
		// Untracked field.
		return nil, false
	}
}

// Tracker owns the mutable vessel state. Writers go through Apply and
// SetAnchor; readers take a consistent copy with Snapshot.
type Tracker struct {
	mu         sync.RWMutex
	state      VesselState
	hasHeading bool
}

// NewTracker returns a tracker holding the zero state.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Apply stores one field update. Values are not range checked.
func (t *Tracker) Apply(u Update) {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch v := u.(type) {
	case HeadingTrue:
		t.state.HeadingTrue = float64(v)
		t.hasHeading = true
	case HeadingMagnetic:
		t.state.HeadingMagnetic = float64(v)
	case CourseOverGroundMagnetic:
		cog := float64(v)
		t.state.CourseOverGroundMagnetic = &cog
	case SpeedOverGround:
		t.state.SpeedOverGround = float64(v)
	case AirTemperature:
		t.state.AirTemperature = float64(v)
	case RelativeHumidity:
		t.state.RelativeHumidity = float64(v)
	}
}

// SetAnchor records the anchor-watch verdict and the apparent bearing the
// vessel is lying to.
func (t *Tracker) SetAnchor(anchored bool, apparentBearing float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state.Anchored = anchored
	t.state.AnchoredApparentBearing = apparentBearing
}

// Snapshot returns a copy of the current state that shares nothing with the tracker.
func (t *Tracker) Snapshot() VesselState {
	t.mu.RLock()
	defer t.mu.RUnlock()

	s := t.state
	if s.CourseOverGroundMagnetic != nil {
		cog := *s.CourseOverGroundMagnetic
		s.CourseOverGroundMagnetic = &cog
	}
	return s
}

// HasHeading reports whether a true heading has been received this session.
func (t *Tracker) HasHeading() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.hasHeading
}

// CheckReadiness fails until a true heading has been received, since every
// derivation before that uses a zero heading.
func (t *Tracker) CheckReadiness(_ context.Context) error {
	if !t.HasHeading() {
		return errors.New("no heading received yet")
	}
	return nil
}
