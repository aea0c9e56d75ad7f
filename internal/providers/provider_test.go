package providers

import (
	"context"
	"testing"

	"github.com/preston-bernstein/nba-scorebox/internal/domain/games"
)

type testProvider struct{}

func (t *testProvider) FetchGames(ctx context.Context) ([]games.Summary, error) {
	_ = ctx
	return nil, nil
}

func TestScoreProviderInterfaceImplemented(t *testing.T) {
	var _ ScoreProvider = (*testProvider)(nil)
}
