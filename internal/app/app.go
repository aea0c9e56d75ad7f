package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"fyne.io/fyne/v2"
	"github.com/pkg/errors"

	"github.com/preston-bernstein/nba-scorebox/internal/config"
	statushttp "github.com/preston-bernstein/nba-scorebox/internal/http"
	"github.com/preston-bernstein/nba-scorebox/internal/http/middleware"
	"github.com/preston-bernstein/nba-scorebox/internal/logging"
	"github.com/preston-bernstein/nba-scorebox/internal/logos"
	"github.com/preston-bernstein/nba-scorebox/internal/metrics"
	"github.com/preston-bernstein/nba-scorebox/internal/providers"
	"github.com/preston-bernstein/nba-scorebox/internal/scoreboard"
	"github.com/preston-bernstein/nba-scorebox/internal/store"
	"github.com/preston-bernstein/nba-scorebox/internal/ui"
)

var metricsSetup = metrics.Setup

// App owns every long-lived component of the score box.
type App struct {
	cfg          config.Config
	logger       *slog.Logger
	metrics      *metrics.Recorder
	boards       *store.BoardStore
	orchestrator *scoreboard.Orchestrator
	statusServer httpServer
	metricsStop  func(context.Context) error
}

// New constructs the app with the provider named in cfg.
func New(cfg config.Config, logger *slog.Logger) *App {
	return newAppWithProvider(cfg, logger, nil)
}

func newAppWithProvider(cfg config.Config, logger *slog.Logger, provider providers.ScoreProvider) *App {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	recorder, metricsHandler, metricsShutdown := buildMetrics(cfg, logger)

	factory := newProviderFactory(logger, recorder)
	if provider == nil {
		provider = factory.build(cfg)
	} else {
		provider = factory.wrap(cfg, provider)
	}

	fetcher := logos.NewFetcher(logos.Config{
		BaseURL:   cfg.Sources.LogoBaseURL,
		UserAgent: cfg.Sources.UserAgent,
		Size:      cfg.Sources.LogoSize,
		Timeout:   cfg.Sources.HTTPTimeout,
	}, logger, recorder)

	boards := store.NewBoardStore()
	orch := scoreboard.New(provider, fetcher, boards, logger, recorder)

	return &App{
		cfg:          cfg,
		logger:       logger,
		metrics:      recorder,
		boards:       boards,
		orchestrator: orch,
		statusServer: buildStatusServer(cfg, boards, metricsHandler, logger, recorder),
		metricsStop:  metricsShutdown,
	}
}

// Refresh runs one refresh cycle and returns the published board.
func (a *App) Refresh(ctx context.Context) scoreboard.Board {
	return a.orchestrator.Refresh(ctx)
}

// Boards exposes the board store the window renders from.
func (a *App) Boards() *store.BoardStore {
	return a.boards
}

// RunHeadless performs a single refresh and writes the board's lines to out.
// A failed refresh still prints its error line and is returned as the error.
func (a *App) RunHeadless(ctx context.Context, out io.Writer) error {
	defer a.gracefulShutdown()

	board := a.Refresh(ctx)
	for _, line := range board.Lines() {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return errors.Wrap(err, "write scoreboard")
		}
	}
	if board.Failed() {
		return board.Err
	}
	return nil
}

// RunDesktop shows the score window on fyneApp and blocks until the window is
// closed or ctx is cancelled. One refresh is triggered as the window opens.
func (a *App) RunDesktop(ctx context.Context, fyneApp fyne.App) {
	ctx, cancel := context.WithCancel(ctx)
	a.startStatusServer()

	win := fyneApp.NewWindow(ui.Title)
	scoreWindow := ui.NewScoreWindow(ctx, win, a.orchestrator, a.boards, ui.Options{
		Width:    a.cfg.Window.Width,
		Height:   a.cfg.Window.Height,
		LogoSize: float32(a.cfg.Sources.LogoSize),
	}, a.logger)
	scoreWindow.TriggerRefresh()

	stopQuit := context.AfterFunc(ctx, fyneApp.Quit)
	win.ShowAndRun()
	stopQuit()

	if ctx.Err() != nil {
		logging.Info(a.logger, "shutdown signal received")
	}
	cancel()
	scoreWindow.Wait()
	a.gracefulShutdown()
}

// startStatusServer launches the status server; a failure to serve is logged
// and never takes the window down.
func (a *App) startStatusServer() {
	if a.statusServer == nil {
		return
	}
	logging.Info(a.logger, "status server starting", slog.String("addr", a.statusServer.Addr()))
	launchServer("status", a.statusServer, a.logger, nil)
}

func (a *App) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if a.statusServer != nil {
		if err := a.statusServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(a.logger, "status server shutdown failed", "error", err)
		}
	}

	if a.metricsStop != nil {
		if err := a.metricsStop(shutdownCtx); err != nil {
			logging.Warn(a.logger, "metrics shutdown failed", "error", err)
		}
	}

	logging.Info(a.logger, "shutdown complete")
}

func buildMetrics(cfg config.Config, logger *slog.Logger) (*metrics.Recorder, http.Handler, func(context.Context) error) {
	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "err", err)
		return metrics.NewRecorder(), nil, nil
	}
	return rec, handler, shutdown
}

// buildStatusServer serves /health and /metrics on the metrics port. It is only
// built when metrics are enabled and an exporter handler exists.
func buildStatusServer(cfg config.Config, boards *store.BoardStore, metricsHandler http.Handler, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	if !cfg.Metrics.Enabled || metricsHandler == nil {
		return nil
	}
	router := statushttp.NewRouter(statushttp.NewHandler(boards, logger), metricsHandler)
	return netHTTPServer{
		srv: &http.Server{
			Addr:         ":" + cfg.Metrics.Port,
			Handler:      middleware.LoggingMiddleware(logger, recorder, router),
			ReadTimeout:  readTimeout,
			WriteTimeout: writeTimeout,
			IdleTimeout:  idleTimeout,
		},
	}
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Warn(logger, name+" server failed", "error", err)
			if onError != nil {
				onError(err)
			}
		}
	}()
}
