package nbalive

import (
	"fmt"
	"strings"

	"github.com/preston-bernstein/nba-scorebox/internal/domain/games"
	"github.com/preston-bernstein/nba-scorebox/internal/domain/teams"
)

func mapGame(g gameResponse) games.Summary {
	return games.Summary{
		ID:       fmt.Sprintf("%s-%s", providerName, g.GameID),
		Provider: providerName,
		HomeTeam: mapTeam(g.HomeTeam),
		AwayTeam: mapTeam(g.AwayTeam),
		Score: games.Score{
			Home: clampScore(g.HomeTeam.Score),
			Away: clampScore(g.AwayTeam.Score),
		},
		Status:     mapStatus(g.GameStatus),
		StatusText: strings.TrimSpace(g.GameStatusText),
		StartTime:  g.GameTimeUTC,
	}
}

func mapTeam(t teamResponse) teams.Team {
	return teams.Team{
		Code: teams.NormalizeCode(t.TeamTricode),
		Name: strings.TrimSpace(t.TeamName),
		City: strings.TrimSpace(t.TeamCity),
	}
}

// The feed encodes 1 = not started, 2 = live, 3 = final.
func mapStatus(status int) games.GameStatus {
	switch status {
	case 2:
		return games.StatusInProgress
	case 3:
		return games.StatusFinal
	default:
		return games.StatusScheduled
	}
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	return score
}
