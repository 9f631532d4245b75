package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Message headers understood by the decoders.
const (
	HeaderKind      = "kind"
	HeaderSource    = "source"
	HeaderTimestamp = "timestamp"

	KindAnchor = "anchor"
)

// wireSample distinguishes a missing field from a zero value.
type wireSample struct {
	Speed *float64 `json:"speed"`
	Angle *float64 `json:"angle"`
}

// DecodeWindSample unmarshals a raw wind observation.
func DecodeWindSample(raw RawEvent) (RawWindSample, error) {
	var w wireSample
	if err := json.Unmarshal(raw.Value, &w); err != nil {
		return RawWindSample{}, fmt.Errorf("decode wind sample: %w", err)
	}
	if w.Speed == nil {
		return RawWindSample{}, errors.New("decode wind sample: missing speed")
	}
	if w.Angle == nil {
		return RawWindSample{}, errors.New("decode wind sample: missing angle")
	}
	return RawWindSample{Speed: *w.Speed, RelativeAngleDegrees: *w.Angle}, nil
}

// NavigationEvent is one decoded navigation message. Exactly one of Update
// and Anchor is set for tracked messages; both are nil for fields this engine
// does not track.
type NavigationEvent struct {
	Field  string
	Update Update
	Anchor *AnchorMessage
}

// Tracked reports whether the event changes vessel state.
func (e NavigationEvent) Tracked() bool {
	return e.Update != nil || e.Anchor != nil
}

// DecodeNavigation unmarshals a navigation feed message. Anchor-watch
// messages are selected by the kind header.
func DecodeNavigation(raw RawEvent) (NavigationEvent, error) {
	if raw.Headers[HeaderKind] == KindAnchor {
		var a AnchorMessage
		if err := json.Unmarshal(raw.Value, &a); err != nil {
			return NavigationEvent{}, fmt.Errorf("decode anchor message: %w", err)
		}
		return NavigationEvent{Field: KindAnchor, Anchor: &a}, nil
	}

	var m NavigationMessage
	if err := json.Unmarshal(raw.Value, &m); err != nil {
		return NavigationEvent{}, fmt.Errorf("decode navigation message: %w", err)
	}
	if m.Field == "" {
		return NavigationEvent{}, errors.New("decode navigation message: missing field")
	}
	if m.Value == nil {
		return NavigationEvent{}, fmt.Errorf("decode navigation message: missing value for %q", m.Field)
	}

	u, ok := ParseUpdate(m.Field, *m.Value)
	if !ok {
		return NavigationEvent{Field: m.Field}, nil
	}
	return NavigationEvent{Field: m.Field, Update: u}, nil
}

// SerializeDelta marshals a delta for the sink topic. Every delta shares the
// source tag as its key so they land on one partition in publication order.
func SerializeDelta(d Delta) (OutputEvent, error) {
	data, err := json.Marshal(d)
	if err != nil {
		return OutputEvent{}, fmt.Errorf("serialize delta: %w", err)
	}
	return OutputEvent{
		Key:   []byte(d.Source),
		Value: data,
		Headers: map[string]string{
			HeaderSource:    d.Source,
			HeaderTimestamp: d.Timestamp.UTC().Format(time.RFC3339Nano),
		},
	}, nil
}
