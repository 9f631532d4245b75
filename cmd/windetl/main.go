package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "github.com/couchcryptid/wind-etl/internal/adapter/http"
	kafkaadapter "github.com/couchcryptid/wind-etl/internal/adapter/kafka"
	"github.com/couchcryptid/wind-etl/internal/config"
	"github.com/couchcryptid/wind-etl/internal/domain"
	"github.com/couchcryptid/wind-etl/internal/observability"
	"github.com/couchcryptid/wind-etl/internal/pipeline"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := observability.InitTracing(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to init tracing", "error", err)
		os.Exit(1)
	}

	tracker := domain.NewTracker()
	engine := domain.NewEngine(tracker, cfg.SourceTag)

	navReader := kafkaadapter.NewReader(cfg, cfg.KafkaNavigationTopic, logger)
	windReader := kafkaadapter.NewReader(cfg, cfg.KafkaWindTopic, logger)
	writer := kafkaadapter.NewWriter(cfg, logger)

	feed := pipeline.NewNavigationFeed(navReader, tracker, logger, metrics, cfg.BatchSize)
	transformer := pipeline.NewTransformer(engine, logger, metrics)
	p := pipeline.New(windReader, transformer, writer, logger, metrics, cfg.BatchSize)

	srv := httpadapter.NewServer(cfg.HTTPAddr, httpadapter.AllReady(tracker, p), tracker, logger)

	// Start HTTP server.
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	// Start navigation feed; it must run alongside the pipeline so headings
	// keep updating between samples.
	go func() {
		if err := feed.Run(ctx); err != nil {
			logger.Error("navigation feed error", "error", err)
		}
	}()

	// Start wind pipeline.
	go func() {
		if err := p.Run(ctx); err != nil {
			logger.Error("pipeline error", "error", err)
		}
	}()

	logger.Info("wind etl running",
		"wind_topic", cfg.KafkaWindTopic,
		"navigation_topic", cfg.KafkaNavigationTopic,
		"sink_topic", cfg.KafkaSinkTopic,
		"source", cfg.SourceTag,
	)

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if err := navReader.Close(); err != nil {
		logger.Error("kafka navigation reader close error", "error", err)
	}
	if err := windReader.Close(); err != nil {
		logger.Error("kafka wind reader close error", "error", err)
	}
	if err := writer.Close(); err != nil {
		logger.Error("kafka writer close error", "error", err)
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		logger.Error("tracing shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
}
