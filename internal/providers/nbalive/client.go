package nbalive

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/preston-bernstein/nba-scorebox/internal/domain/games"
	"github.com/preston-bernstein/nba-scorebox/internal/providers"
)

// Config controls how the client reaches the live scoreboard feed.
type Config struct {
	URL        string
	UserAgent  string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client fetches today's scoreboard from the NBA live data CDN.
type Client struct {
	url        string
	userAgent  string
	httpClient httpDoer
}

// NewClient constructs a live scoreboard client. A zero Timeout leaves requests unbounded.
func NewClient(cfg Config) *Client {
	return &Client{
		url:        normalizeURL(cfg.URL),
		userAgent:  resolveUserAgent(cfg.UserAgent),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
	}
}

// FetchGames issues one request for today's scoreboard and maps every game in feed order.
func (c *Client) FetchGames(ctx context.Context) ([]games.Summary, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, c.fail(0, errors.Wrap(err, "build scoreboard request"))
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.fail(0, errors.Wrap(err, "request scoreboard"))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, c.fail(resp.StatusCode, errors.Errorf("unexpected status: %s", strings.TrimSpace(string(body))))
	}

	var payload scoreboardEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, c.fail(0, errors.Wrap(err, "decode scoreboard"))
	}
	if payload.Scoreboard == nil {
		return nil, c.fail(0, errors.New("scoreboard missing from response"))
	}

	summaries := make([]games.Summary, 0, len(payload.Scoreboard.Games))
	for _, g := range payload.Scoreboard.Games {
		summaries = append(summaries, mapGame(g))
	}
	return summaries, nil
}

func (c *Client) fail(status int, err error) error {
	return &providers.FetchError{Provider: providerName, StatusCode: status, Err: err}
}
