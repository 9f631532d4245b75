package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/couchcryptid/wind-etl/internal/domain"
	"github.com/couchcryptid/wind-etl/internal/observability"
)

// NavigationFeed applies navigation and anchor-watch messages to the vessel
// tracker. It runs alongside the Pipeline; the tracker serializes access.
type NavigationFeed struct {
	extractor BatchExtractor
	tracker   *domain.Tracker
	logger    *slog.Logger
	metrics   *observability.Metrics
	batchSize int
}

// NewNavigationFeed creates a feed that writes into tracker.
func NewNavigationFeed(e BatchExtractor, tracker *domain.Tracker, logger *slog.Logger, metrics *observability.Metrics, batchSize int) *NavigationFeed {
	return &NavigationFeed{
		extractor: e,
		tracker:   tracker,
		logger:    logger,
		metrics:   metrics,
		batchSize: batchSize,
	}
}

// Run consumes navigation messages until the context is cancelled.
func (f *NavigationFeed) Run(ctx context.Context) error {
	f.logger.Info("navigation feed started", "batch_size", f.batchSize)
	backoff := initialBackoff

	for {
		select {
		case <-ctx.Done():
			f.logger.Info("navigation feed stopping", "reason", ctx.Err())
			return nil
		default:
		}

		batch, err := f.extractor.ExtractBatch(ctx, f.batchSize)
		if err != nil && len(batch) == 0 {
			if ctx.Err() != nil {
				return nil
			}
			f.logger.Error("extract navigation batch failed", "error", err)
			if !backoffOrStop(ctx, &backoff) {
				return nil
			}
			continue
		}
		if err != nil {
			f.logger.Warn("extract navigation batch cut short, applying partial batch", "error", err, "size", len(batch))
		}
		backoff = initialBackoff

		for _, raw := range batch {
			f.Apply(raw)
			commitOffset(ctx, f.logger, raw)
		}
	}
}

// Apply decodes one message and writes it to the tracker.
func (f *NavigationFeed) Apply(raw domain.RawEvent) {
	ev, err := domain.DecodeNavigation(raw)
	if err != nil {
		f.logger.Warn("navigation decode failed, skipping message",
			"error", err,
			"topic", raw.Topic,
			"partition", raw.Partition,
			"offset", raw.Offset,
		)
		f.metrics.TransformErrors.Inc()
		return
	}

	switch {
	case ev.Anchor != nil:
		f.tracker.SetAnchor(ev.Anchor.Anchored, ev.Anchor.ApparentBearing)
		f.metrics.NavigationUpdates.WithLabelValues(domain.KindAnchor).Inc()
	case ev.Update != nil:
		f.tracker.Apply(ev.Update)
		f.metrics.NavigationUpdates.WithLabelValues(ev.Update.Field()).Inc()
	default:
		f.logger.Debug("ignoring untracked navigation field", "field", ev.Field)
		f.metrics.NavigationIgnored.Inc()
	}
	f.metrics.LastNavigationUpdate.Set(float64(time.Now().Unix()))
}
