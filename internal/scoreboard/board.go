package scoreboard

import (
	"time"

	"github.com/preston-bernstein/nba-scorebox/internal/domain/games"
	"github.com/preston-bernstein/nba-scorebox/internal/logos"
)

// State is the orchestrator's position in the refresh cycle.
type State int

const (
	StateIdle State = iota
	StateFetching
	StateRendered
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateFetching:
		return "fetching"
	case StateRendered:
		return "rendered"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Row is one rendered game: both logos plus the summary they belong to.
type Row struct {
	Game     games.Summary
	AwayLogo logos.Logo
	HomeLogo logos.Logo
}

// Text is the row's label, e.g. "Heat 98 vs Celtics 102 (Final)".
func (r Row) Text() string {
	return r.Game.Line()
}

// Board is the complete result of one refresh. It is never mutated after it
// is published; the next refresh replaces it wholesale.
type Board struct {
	State       State
	Rows        []Row
	Err         error
	RefreshID   string
	RefreshedAt time.Time
}

// Failed reports whether the board carries a fetch error instead of rows.
func (b Board) Failed() bool {
	return b.Err != nil
}

// ErrorText is the single line shown in place of the rows on failure.
func (b Board) ErrorText() string {
	if b.Err == nil {
		return ""
	}
	return "Error: " + b.Err.Error()
}

// Lines flattens the board into display lines: one per game, or exactly one error line.
func (b Board) Lines() []string {
	if b.Failed() {
		return []string{b.ErrorText()}
	}
	lines := make([]string, 0, len(b.Rows))
	for _, r := range b.Rows {
		lines = append(lines, r.Text())
	}
	return lines
}
