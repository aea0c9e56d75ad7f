package store

import (
	"sync"

	"github.com/preston-bernstein/nba-scorebox/internal/scoreboard"
)

// BoardStore holds the board currently on screen. Boards are swapped whole;
// subscribers are notified synchronously, in registration order, on every swap.
type BoardStore struct {
	mu          sync.RWMutex
	board       scoreboard.Board
	subscribers []func(scoreboard.Board)
}

// NewBoardStore constructs a store holding an empty idle board.
func NewBoardStore() *BoardStore {
	return &BoardStore{}
}

// Current returns the board currently held.
func (s *BoardStore) Current() scoreboard.Board {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.board
}

// Replace swaps in a new board and notifies subscribers.
func (s *BoardStore) Replace(board scoreboard.Board) {
	board.Rows = append([]scoreboard.Row(nil), board.Rows...)

	s.mu.Lock()
	s.board = board
	subs := make([]func(scoreboard.Board), len(s.subscribers))
	copy(subs, s.subscribers)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(board)
	}
}

// Subscribe registers fn to be called with every new board.
func (s *BoardStore) Subscribe(fn func(scoreboard.Board)) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}
