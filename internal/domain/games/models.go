package games

import (
	"fmt"

	"github.com/preston-bernstein/nba-scorebox/internal/domain/teams"
)

// GameStatus mirrors the feed's coarse lifecycle states.
type GameStatus string

const (
	StatusScheduled  GameStatus = "SCHEDULED"
	StatusInProgress GameStatus = "IN_PROGRESS"
	StatusFinal      GameStatus = "FINAL"
)

// Score captures home and away points.
type Score struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

// Summary is one game as shown on the score box. It lives for a single refresh.
type Summary struct {
	ID         string     `json:"id"`
	Provider   string     `json:"provider"`
	HomeTeam   teams.Team `json:"homeTeam"`
	AwayTeam   teams.Team `json:"awayTeam"`
	Score      Score      `json:"score"`
	Status     GameStatus `json:"status"`
	StatusText string     `json:"statusText"`
	StartTime  string     `json:"startTime,omitempty"`
}

// Line renders the summary as "Away 98 vs Home 102 (Final)".
func (s Summary) Line() string {
	return fmt.Sprintf("%s %d vs %s %d (%s)",
		s.AwayTeam.Name, s.Score.Away,
		s.HomeTeam.Name, s.Score.Home,
		s.StatusText,
	)
}
