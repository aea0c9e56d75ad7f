package scoreboard

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/preston-bernstein/nba-scorebox/internal/domain/games"
	"github.com/preston-bernstein/nba-scorebox/internal/logging"
	"github.com/preston-bernstein/nba-scorebox/internal/logos"
	"github.com/preston-bernstein/nba-scorebox/internal/metrics"
	"github.com/preston-bernstein/nba-scorebox/internal/providers"
)

// LogoSource resolves a team code to a display-ready logo. It must not fail.
type LogoSource interface {
	Fetch(ctx context.Context, code string) logos.Logo
}

// Sink receives every board the orchestrator publishes.
type Sink interface {
	Replace(board Board)
}

// Orchestrator runs the refresh pipeline: scoreboard fetch, then two logo
// fetches per game, all sequential. It is the only writer to its Sink.
type Orchestrator struct {
	provider providers.ScoreProvider
	logos    LogoSource
	sink     Sink
	logger   *slog.Logger
	metrics  *metrics.Recorder
	now      func() time.Time
	newID    func() string

	refreshMu sync.Mutex

	stateMu sync.RWMutex
	state   State
}

// New wires an orchestrator. sink, logger and recorder may be nil.
func New(provider providers.ScoreProvider, logoSource LogoSource, sink Sink, logger *slog.Logger, recorder *metrics.Recorder) *Orchestrator {
	return &Orchestrator{
		provider: provider,
		logos:    logoSource,
		sink:     sink,
		logger:   logger,
		metrics:  recorder,
		now:      time.Now,
		newID:    uuid.NewString,
		state:    StateIdle,
	}
}

// State reports where the orchestrator currently is in the refresh cycle.
func (o *Orchestrator) State() State {
	o.stateMu.RLock()
	defer o.stateMu.RUnlock()
	return o.state
}

// Refresh performs one full refresh and returns the resulting board, which is
// either Rendered (zero or more rows) or Failed (error, no rows). Overlapping
// calls queue behind each other.
func (o *Orchestrator) Refresh(ctx context.Context) Board {
	o.refreshMu.Lock()
	defer o.refreshMu.Unlock()

	id := o.newID()
	logger := o.logger
	if logger != nil {
		logger = logger.With(slog.String(logging.FieldRefreshID, id))
	}
	ctx = logging.WithLogger(ctx, logger)

	start := o.now()
	o.setState(StateFetching)
	// Old rows go away before any network work starts.
	o.publish(Board{State: StateFetching, RefreshID: id, RefreshedAt: start})
	logging.Info(logger, "refresh started")

	board := o.build(ctx, id)
	board.RefreshedAt = o.now()

	o.publish(board)
	elapsed := board.RefreshedAt.Sub(start)
	o.metrics.RecordRefreshCycle(elapsed, board.Err)
	if board.Failed() {
		logging.Error(logger, "refresh failed", board.Err, slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()))
	} else {
		logging.Info(logger, "refresh rendered",
			slog.Int(logging.FieldCount, len(board.Rows)),
			slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
		)
	}

	o.setState(StateIdle)
	return board
}

func (o *Orchestrator) build(ctx context.Context, id string) Board {
	if o.provider == nil {
		o.setState(StateFailed)
		return Board{State: StateFailed, Err: providers.ErrProviderUnavailable, RefreshID: id}
	}

	summaries, err := o.provider.FetchGames(ctx)
	if err != nil {
		o.setState(StateFailed)
		return Board{State: StateFailed, Err: err, RefreshID: id}
	}

	rows := make([]Row, 0, len(summaries))
	for _, g := range summaries {
		rows = append(rows, o.buildRow(ctx, g))
	}
	o.setState(StateRendered)
	return Board{State: StateRendered, Rows: rows, RefreshID: id}
}

func (o *Orchestrator) buildRow(ctx context.Context, g games.Summary) Row {
	row := Row{Game: g}
	if o.logos == nil {
		return row
	}
	row.AwayLogo = o.logos.Fetch(ctx, g.AwayTeam.Code)
	row.HomeLogo = o.logos.Fetch(ctx, g.HomeTeam.Code)
	return row
}

func (o *Orchestrator) publish(board Board) {
	if o.sink != nil {
		o.sink.Replace(board)
	}
}

func (o *Orchestrator) setState(s State) {
	o.stateMu.Lock()
	defer o.stateMu.Unlock()
	o.state = s
}
