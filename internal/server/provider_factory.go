package server

import (
	"log/slog"

	"github.com/preston-bernstein/espn-scores/internal/config"
	"github.com/preston-bernstein/espn-scores/internal/fixture"
	"github.com/preston-bernstein/espn-scores/internal/metrics"
	"github.com/preston-bernstein/espn-scores/pkg/espn"
	"github.com/preston-bernstein/espn-scores/pkg/sports"
)

// fetcherFactory picks the scoreboard source named by config and hands it the
// shared logger and recorder.
type fetcherFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newFetcherFactory(logger *slog.Logger, metrics *metrics.Recorder) fetcherFactory {
	return fetcherFactory{logger: logger, metrics: metrics}
}

func (f fetcherFactory) build(cfg config.Config) sports.Fetcher {
	switch cfg.Provider {
	case config.ProviderFixture:
		return fixture.New()
	case config.ProviderESPN, "":
		espnCfg := espn.Config{
			BaseURL:   cfg.ESPN.BaseURL,
			UserAgent: cfg.ESPN.UserAgent,
			Timeout:   cfg.ESPN.Timeout,
			Logger:    f.logger,
		}
		if f.metrics != nil {
			espnCfg.Recorder = f.metrics
		}
		return espn.NewClient(espnCfg)
	default:
		if f.logger != nil {
			f.logger.Warn("unknown provider, falling back to fixture", slog.String("provider", cfg.Provider))
		}
		return fixture.New()
	}
}
