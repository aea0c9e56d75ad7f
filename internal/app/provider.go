package app

import (
	"log/slog"

	"github.com/preston-bernstein/nba-scorebox/internal/config"
	"github.com/preston-bernstein/nba-scorebox/internal/logging"
	"github.com/preston-bernstein/nba-scorebox/internal/providers"
	"github.com/preston-bernstein/nba-scorebox/internal/providers/fixture"
	"github.com/preston-bernstein/nba-scorebox/internal/providers/nbalive"
)

const (
	providerNBALive = "nbalive"
	providerFixture = "fixture"
)

func selectProvider(cfg config.Config, logger *slog.Logger) providers.ScoreProvider {
	switch cfg.Provider {
	case providerNBALive, "":
		return nbalive.NewClient(nbalive.Config{
			URL:       cfg.Sources.ScoreboardURL,
			UserAgent: cfg.Sources.UserAgent,
			Timeout:   cfg.Sources.HTTPTimeout,
		})
	case providerFixture:
		return fixture.New()
	default:
		logging.Warn(logger, "unknown provider, falling back to fixture", slog.String(logging.FieldProvider, cfg.Provider))
		return fixture.New()
	}
}

// providerName is the label used in metrics and logs for the configured provider.
func providerName(cfg config.Config) string {
	switch cfg.Provider {
	case "":
		return providerNBALive
	case providerNBALive, providerFixture:
		return cfg.Provider
	default:
		return providerFixture
	}
}
