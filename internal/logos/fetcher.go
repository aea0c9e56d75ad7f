package logos

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	_ "golang.org/x/image/webp"

	"github.com/preston-bernstein/nba-scorebox/internal/logging"
	"github.com/preston-bernstein/nba-scorebox/internal/metrics"
)

const (
	defaultBaseURL   = "https://a.espncdn.com/i/teamlogos/nba/500"
	defaultSize      = 100
	defaultUserAgent = "nba-scorebox/1.0"
	maxLogoBytes     = 4 << 20
)

var errEmptyCode = errors.New("empty team code")

// Config controls where logos come from and how large they are rendered.
type Config struct {
	BaseURL    string
	UserAgent  string
	Size       int
	Timeout    time.Duration
	HTTPClient *http.Client
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Fetcher downloads and scales team logos. It never caches: every call hits the CDN.
type Fetcher struct {
	baseURL    string
	userAgent  string
	size       int
	httpClient httpDoer
	logger     *slog.Logger
	metrics    *metrics.Recorder
	now        func() time.Time
}

// NewFetcher builds a Fetcher; zero values fall back to the ESPN CDN and a 100px box.
func NewFetcher(cfg Config, logger *slog.Logger, recorder *metrics.Recorder) *Fetcher {
	base := strings.TrimSuffix(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		base = defaultBaseURL
	}
	size := cfg.Size
	if size <= 0 {
		size = defaultSize
	}
	ua := cfg.UserAgent
	if strings.TrimSpace(ua) == "" {
		ua = defaultUserAgent
	}
	var doer httpDoer = &http.Client{Timeout: cfg.Timeout}
	if cfg.HTTPClient != nil {
		doer = cfg.HTTPClient
	}
	return &Fetcher{
		baseURL:    base,
		userAgent:  ua,
		size:       size,
		httpClient: doer,
		logger:     logger,
		metrics:    recorder,
		now:        time.Now,
	}
}

// URL returns the CDN address for a team code. Codes are case-insensitive.
func (f *Fetcher) URL(code string) string {
	return fmt.Sprintf("%s/%s.png", f.baseURL, strings.ToLower(strings.TrimSpace(code)))
}

// Size is the edge length of the square box logos are fitted into.
func (f *Fetcher) Size() int {
	return f.size
}

// Placeholder returns the blank logo used when a fetch fails.
func (f *Fetcher) Placeholder(code string) Logo {
	return Logo{Code: code, Image: Blank(f.size), Placeholder: true}
}

// Fetch downloads, decodes and scales the logo for code. Any failure is logged and
// absorbed: the caller always gets a usable Logo, a placeholder in the worst case.
func (f *Fetcher) Fetch(ctx context.Context, code string) Logo {
	start := f.now()
	img, err := f.download(ctx, code)
	f.metrics.RecordLogoFetch(f.now().Sub(start), err)

	if err != nil {
		if logger := logging.FromContext(ctx, f.logger); logger != nil {
			logger.Warn("logo fetch failed, using placeholder",
				slog.String(logging.FieldTeam, code),
				slog.String(logging.FieldURL, f.URL(code)),
				slog.String("error", err.Error()),
			)
		}
		return f.Placeholder(code)
	}
	return Logo{Code: code, Image: Fit(img, f.size)}
}

func (f *Fetcher) download(ctx context.Context, code string) (image.Image, error) {
	if strings.TrimSpace(code) == "" {
		return nil, errEmptyCode
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.URL(code), nil)
	if err != nil {
		return nil, errors.Wrap(err, "build logo request")
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "request logo")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("unexpected status %d", resp.StatusCode)
	}

	img, _, err := image.Decode(io.LimitReader(resp.Body, maxLogoBytes))
	if err != nil {
		return nil, errors.Wrap(err, "decode logo")
	}
	return img, nil
}
