package providers

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/preston-bernstein/nba-scorebox/internal/domain/games"
	"github.com/preston-bernstein/nba-scorebox/internal/metrics"
	"github.com/preston-bernstein/nba-scorebox/internal/teststubs"
)

func TestInstrumentedProviderPassesGamesThrough(t *testing.T) {
	inner := &teststubs.StubProvider{Games: []games.Summary{{ID: "a"}, {ID: "b"}}}
	rec := metrics.NewRecorder()
	p := NewInstrumentedProvider(inner, nil, rec, "stub")

	got, err := p.FetchGames(context.Background())
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "b" {
		t.Fatalf("expected provider ordering preserved, got %+v", got)
	}
	if rec.ProviderCalls("stub") != 1 || rec.ProviderErrors("stub") != 0 {
		t.Fatalf("unexpected metrics %+v", rec.Snapshot("stub"))
	}
}

func TestInstrumentedProviderMakesSingleAttemptOnFailure(t *testing.T) {
	inner := &teststubs.StubProvider{Err: errors.New("connection reset")}
	rec := metrics.NewRecorder()
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	p := NewInstrumentedProvider(inner, logger, rec, "stub")

	got, err := p.FetchGames(context.Background())
	if got != nil {
		t.Fatalf("expected no partial list, got %+v", got)
	}
	fe, ok := AsFetchError(err)
	if !ok || fe.Provider != "stub" {
		t.Fatalf("expected FetchError tagged with provider, got %v", err)
	}
	if inner.Calls.Load() != 1 {
		t.Fatalf("expected exactly one upstream call, got %d", inner.Calls.Load())
	}
	if rec.ProviderErrors("stub") != 1 {
		t.Fatalf("expected error recorded")
	}
	if !strings.Contains(buf.String(), "scoreboard fetch failed") || !strings.Contains(buf.String(), "provider=stub") {
		t.Fatalf("expected failure log, got %q", buf.String())
	}
}

func TestInstrumentedProviderHandlesNilInner(t *testing.T) {
	p := NewInstrumentedProvider(nil, nil, nil, "")

	_, err := p.FetchGames(context.Background())
	if !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}

func TestInstrumentedProviderRecordsLatency(t *testing.T) {
	rec := metrics.NewRecorder()
	p := NewInstrumentedProvider(&teststubs.StubProvider{}, nil, rec, "clock").(*instrumentedProvider)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	calls := 0
	p.now = func() time.Time {
		calls++
		return base.Add(time.Duration(calls-1) * 25 * time.Millisecond)
	}

	if _, err := p.FetchGames(context.Background()); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if got := rec.LastCallLatency("clock"); got != 25*time.Millisecond {
		t.Fatalf("expected 25ms latency, got %s", got)
	}
}

func TestNormalizeName(t *testing.T) {
	if got := NormalizeName("NBALive", nil); got != "nbalive" {
		t.Fatalf("expected lower-cased name, got %s", got)
	}
	if got := NormalizeName("", &teststubs.StubProvider{}); !strings.Contains(got, "stubprovider") {
		t.Fatalf("expected derived name, got %s", got)
	}
	if got := NormalizeName("", nil); got != "provider" {
		t.Fatalf("expected fallback name, got %s", got)
	}
	if got := NewInstrumentedProvider(nil, nil, nil, "X").(*instrumentedProvider).Name(); got != "x" {
		t.Fatalf("expected Name accessor, got %s", got)
	}
}
