package providers

import (
	"context"

	"github.com/preston-bernstein/nba-scorebox/internal/domain/games"
)

// ScoreProvider fetches today's live scoreboard and normalizes it into summaries.
// Implementations must preserve the upstream game ordering and fail all-or-nothing:
// on error no partial list is returned.
type ScoreProvider interface {
	FetchGames(ctx context.Context) ([]games.Summary, error)
}
