package pipeline

import (
	"context"
	"log/slog"

	"github.com/couchcryptid/wind-etl/internal/domain"
	"github.com/couchcryptid/wind-etl/internal/observability"
)

// WindTransformer implements Transformer by running each decoded sample
// through the derivation engine.
type WindTransformer struct {
	engine  *domain.Engine
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewTransformer creates a WindTransformer deriving against engine.
func NewTransformer(engine *domain.Engine, logger *slog.Logger, metrics *observability.Metrics) *WindTransformer {
	return &WindTransformer{
		engine:  engine,
		logger:  logger,
		metrics: metrics,
	}
}

func (t *WindTransformer) Transform(_ context.Context, raw domain.RawEvent) (domain.OutputEvent, error) {
	sample, err := domain.DecodeWindSample(raw)
	if err != nil {
		return domain.OutputEvent{}, err
	}

	res := t.engine.Derive(sample)
	t.observe(res)
	t.logger.Debug("derived true wind",
		"offset", raw.Offset,
		"apparent_speed", res.ApparentSpeed,
		"true_speed", res.TrueSpeed,
		"direction_true", res.TrueDirectionTrueFrame,
	)

	return domain.SerializeDelta(domain.ToDelta(res))
}

func (t *WindTransformer) observe(res domain.TrueWindResult) {
	t.metrics.ApparentWindSpeed.Set(res.ApparentSpeed)
	t.metrics.TrueWindSpeed.Set(res.TrueSpeed)
	if res.WindChillKelvin != nil {
		t.metrics.ComfortMetrics.WithLabelValues("wind_chill").Inc()
	}
	if res.HeatIndexKelvin != nil {
		t.metrics.ComfortMetrics.WithLabelValues("heat_index").Inc()
	}
}
