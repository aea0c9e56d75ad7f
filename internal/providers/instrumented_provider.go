package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/nba-scorebox/internal/domain/games"
	"github.com/preston-bernstein/nba-scorebox/internal/logging"
	"github.com/preston-bernstein/nba-scorebox/internal/metrics"
)

// instrumentedProvider records metrics and logs around a single upstream call.
type instrumentedProvider struct {
	inner        ScoreProvider
	logger       *slog.Logger
	metrics      *metrics.Recorder
	providerName string
	now          func() time.Time
}

// NewInstrumentedProvider wraps inner so every fetch is timed, counted and logged.
// It issues exactly one inner call per fetch; failures are returned as *FetchError.
func NewInstrumentedProvider(inner ScoreProvider, logger *slog.Logger, recorder *metrics.Recorder, providerName string) ScoreProvider {
	return &instrumentedProvider{
		inner:        inner,
		logger:       logger,
		metrics:      recorder,
		providerName: NormalizeName(providerName, inner),
		now:          time.Now,
	}
}

func (p *instrumentedProvider) FetchGames(ctx context.Context) ([]games.Summary, error) {
	if p.inner == nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, p.providerName, "provider unavailable")
		return nil, WrapFetchError(p.providerName, ErrProviderUnavailable)
	}

	start := p.now()
	summaries, err := p.inner.FetchGames(ctx)
	elapsed := p.now().Sub(start)
	p.metrics.RecordProviderAttempt(p.providerName, elapsed, err)

	if err != nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, p.providerName, "scoreboard fetch failed",
			slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
			slog.String("error", err.Error()),
		)
		return nil, WrapFetchError(p.providerName, err)
	}

	logWithProvider(ctx, p.logger, slog.LevelInfo, p.providerName, "scoreboard fetched",
		slog.Int(logging.FieldCount, len(summaries)),
		slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
	)
	return summaries, nil
}

// Name reports the provider name used for logs and metrics.
func (p *instrumentedProvider) Name() string {
	return p.providerName
}
