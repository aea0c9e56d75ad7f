package teststubs

import (
	"context"
	"sync/atomic"

	"github.com/preston-bernstein/nba-scorebox/internal/domain/games"
)

// StubProvider is a test double for providers.ScoreProvider.
type StubProvider struct {
	Games  []games.Summary
	Err    error
	Calls  atomic.Int32
	Notify chan struct{}
	// Block, when set, makes FetchGames wait until it is closed or ctx is done.
	Block chan struct{}
}

// FetchGames returns configured games and error while tracking calls.
func (s *StubProvider) FetchGames(ctx context.Context) ([]games.Summary, error) {
	s.Calls.Add(1)
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	if s.Block != nil {
		select {
		case <-s.Block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Games, nil
}

// StubBoardSink records every board published to it, in order.
type StubBoardSink[B any] struct {
	Published []B
}

// Replace appends the board to Published.
func (s *StubBoardSink[B]) Replace(board B) {
	s.Published = append(s.Published, board)
}
