package teststubs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/preston-bernstein/nba-scorebox/internal/domain/games"
)

func TestStubProviderReturnsConfiguredValues(t *testing.T) {
	p := &StubProvider{Games: []games.Summary{{ID: "g1"}}, Notify: make(chan struct{})}

	got, err := p.FetchGames(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(got) != 1 || got[0].ID != "g1" {
		t.Fatalf("unexpected games %+v", got)
	}
	select {
	case <-p.Notify:
	default:
		t.Fatalf("expected notify channel closed")
	}

	// Second call must not panic on an already closed notify channel.
	_, _ = p.FetchGames(context.Background())
	if p.Calls.Load() != 2 {
		t.Fatalf("expected 2 calls, got %d", p.Calls.Load())
	}
}

func TestStubProviderErrorSuppressesGames(t *testing.T) {
	p := &StubProvider{Games: []games.Summary{{ID: "g1"}}, Err: errors.New("boom")}
	got, err := p.FetchGames(context.Background())
	if err == nil || got != nil {
		t.Fatalf("expected error and no games, got %v %+v", err, got)
	}
}

func TestStubProviderBlockHonoursContext(t *testing.T) {
	p := &StubProvider{Block: make(chan struct{})}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	if _, err := p.FetchGames(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}

func TestStubBoardSinkRecordsInOrder(t *testing.T) {
	sink := &StubBoardSink[string]{}
	sink.Replace("a")
	sink.Replace("b")
	if len(sink.Published) != 2 || sink.Published[0] != "a" || sink.Published[1] != "b" {
		t.Fatalf("unexpected published %+v", sink.Published)
	}
}
