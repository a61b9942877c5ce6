package main

import (
	"context"
	"log"
	"os"

	"go.uber.org/zap"

	"terminwatch/internal/availability"
	"terminwatch/internal/config"
	"terminwatch/internal/fetch"
	"terminwatch/internal/logging"
	"terminwatch/internal/monitor"
	"terminwatch/internal/notify"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.FromEnv()
	logger, err := logging.NewLogger(cfg.LogDir, cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	channels := notify.FromConfig(cfg)
	logger.Info("monitor_start",
		zap.String("url", cfg.CheckURL),
		zap.Duration("request_timeout", cfg.RequestTimeout),
		zap.Duration("check_interval", cfg.CheckInterval), // owned by the external scheduler
		zap.Int("channels", len(channels)),
	)
	if len(channels) == 0 {
		logger.Warn("no_channels_configured")
	}

	r := &monitor.Runner{
		Logger: logger,
		Fetcher: &fetch.RetryFetcher{
			Inner:    fetch.NewHTTPFetcher(cfg.RequestTimeout),
			Attempts: cfg.RetryAttempts,
			Backoff:  cfg.RetryBackoff,
		},
		Parser:     availability.NewParser(cfg.Markers),
		Dispatcher: notify.NewDispatcher(logger, cfg.NotifyTimeout, channels),
		URL:        cfg.CheckURL,
	}

	res, err := r.Run(context.Background())
	if err != nil {
		return 1
	}

	logger.Info("monitor_done", zap.Bool("available", res.Available))
	return 0
}
