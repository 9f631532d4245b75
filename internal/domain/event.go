package domain

import (
	"context"
	"time"
)

// RawEvent represents an unprocessed message from a source topic.
type RawEvent struct {
	Key       []byte
	Value     []byte
	Headers   map[string]string
	Topic     string
	Partition int
	Offset    int64
	Timestamp time.Time
	Commit    func(ctx context.Context) error
}

// OutputEvent is the serialized form destined for the sink topic.
type OutputEvent struct {
	Key     []byte
	Value   []byte
	Headers map[string]string
}

// NavigationMessage is a field update from the navigation feed.
type NavigationMessage struct {
	Field string   `json:"field"`
	Value *float64 `json:"value"`
}

// AnchorMessage is the anchor-watch verdict. ApparentBearing is radians.
type AnchorMessage struct {
	Anchored        bool    `json:"anchored"`
	ApparentBearing float64 `json:"apparentBearing"`
}
