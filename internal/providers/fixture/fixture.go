package fixture

import (
	"context"
	"time"

	"github.com/preston-bernstein/nba-scorebox/internal/domain/games"
	"github.com/preston-bernstein/nba-scorebox/internal/domain/teams"
)

const providerName = "fixture"

// Provider returns a static scoreboard useful for offline runs and demos.
type Provider struct {
	now func() time.Time
}

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{
		now: time.Now,
	}
}

// FetchGames returns a deterministic set of example games.
func (p *Provider) FetchGames(ctx context.Context) ([]games.Summary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := p.now().UTC().Truncate(time.Hour)

	return []games.Summary{
		{
			ID:         "fixture-1",
			Provider:   providerName,
			HomeTeam:   teams.Team{Code: "BOS", Name: "Celtics", City: "Boston"},
			AwayTeam:   teams.Team{Code: "MIA", Name: "Heat", City: "Miami"},
			Score:      games.Score{Home: 102, Away: 98},
			Status:     games.StatusFinal,
			StatusText: "Final",
			StartTime:  start.Add(-3 * time.Hour).Format(time.RFC3339),
		},
		{
			ID:         "fixture-2",
			Provider:   providerName,
			HomeTeam:   teams.Team{Code: "LAL", Name: "Lakers", City: "Los Angeles"},
			AwayTeam:   teams.Team{Code: "GSW", Name: "Warriors", City: "Golden State"},
			Score:      games.Score{Home: 77, Away: 80},
			Status:     games.StatusInProgress,
			StatusText: "Q3 5:12",
			StartTime:  start.Add(-1 * time.Hour).Format(time.RFC3339),
		},
		{
			ID:         "fixture-3",
			Provider:   providerName,
			HomeTeam:   teams.Team{Code: "DEN", Name: "Nuggets", City: "Denver"},
			AwayTeam:   teams.Team{Code: "PHX", Name: "Suns", City: "Phoenix"},
			Score:      games.Score{Home: 0, Away: 0},
			Status:     games.StatusScheduled,
			StatusText: "9:00 pm ET",
			StartTime:  start.Add(2 * time.Hour).Format(time.RFC3339),
		},
	}, nil
}
