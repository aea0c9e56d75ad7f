package app

import (
	"log/slog"

	"github.com/preston-bernstein/nba-scorebox/internal/config"
	"github.com/preston-bernstein/nba-scorebox/internal/metrics"
	"github.com/preston-bernstein/nba-scorebox/internal/providers"
)

// providerFactory assembles the configured provider with the shared instrumentation wrapper.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.ScoreProvider {
	return providers.NewInstrumentedProvider(selectProvider(cfg, f.logger), f.logger, f.metrics, providerName(cfg))
}

// wrap instruments a provider supplied from outside the config (tests, embedding).
func (f providerFactory) wrap(cfg config.Config, provider providers.ScoreProvider) providers.ScoreProvider {
	return providers.NewInstrumentedProvider(provider, f.logger, f.metrics, cfg.Provider)
}
