package ui

import (
	"context"
	"log/slog"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/preston-bernstein/nba-scorebox/internal/logging"
	"github.com/preston-bernstein/nba-scorebox/internal/scoreboard"
)

const (
	Title           = "Live NBA Scores with Logos"
	defaultWidth    = 1000
	defaultHeight   = 800
	defaultLogoSize = 100
)

// Refresher runs one refresh and publishes its boards.
type Refresher interface {
	Refresh(ctx context.Context) scoreboard.Board
}

// BoardSource is where the window reads the board it renders.
type BoardSource interface {
	Current() scoreboard.Board
	Subscribe(fn func(scoreboard.Board))
}

// Options sizes the window and its logos.
type Options struct {
	Width    float32
	Height   float32
	LogoSize float32
}

// ScoreWindow is the single score box window: a Refresh button over a scrolling list of rows.
type ScoreWindow struct {
	ctx       context.Context
	window    fyne.Window
	refresher Refresher
	logger    *slog.Logger
	logoSize  float32

	button *widget.Button
	rows   *fyne.Container

	mu         sync.Mutex
	refreshing bool
	wg         sync.WaitGroup
}

// NewScoreWindow lays out win and subscribes it to boards. Refreshes triggered from
// the window run with ctx.
func NewScoreWindow(ctx context.Context, win fyne.Window, refresher Refresher, boards BoardSource, opts Options, logger *slog.Logger) *ScoreWindow {
	opts = withDefaults(opts)
	w := &ScoreWindow{
		ctx:       ctx,
		window:    win,
		refresher: refresher,
		logger:    logger,
		logoSize:  opts.LogoSize,
		rows:      container.NewVBox(),
	}
	w.button = widget.NewButton("Refresh", w.TriggerRefresh)

	win.SetTitle(Title)
	win.SetContent(container.NewBorder(w.button, nil, nil, nil, container.NewVScroll(w.rows)))
	win.Resize(fyne.NewSize(opts.Width, opts.Height))

	boards.Subscribe(w.Render)
	w.Render(boards.Current())
	return w
}

// Render replaces the list contents with board.
func (w *ScoreWindow) Render(board scoreboard.Board) {
	w.rows.Objects = boardObjects(board, w.logoSize)
	w.rows.Refresh()
}

// TriggerRefresh starts a refresh unless one is already running. The button stays
// disabled until it completes.
func (w *ScoreWindow) TriggerRefresh() {
	if !w.begin() {
		logging.Info(w.logger, "refresh already running, ignoring trigger")
		return
	}
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer w.end()
		w.refresher.Refresh(w.ctx)
	}()
}

// Wait blocks until any in-flight refresh started from the window has finished.
func (w *ScoreWindow) Wait() {
	w.wg.Wait()
}

// Rows exposes the list container (used by tests).
func (w *ScoreWindow) Rows() *fyne.Container {
	return w.rows
}

// Button exposes the refresh button (used by tests).
func (w *ScoreWindow) Button() *widget.Button {
	return w.button
}

func (w *ScoreWindow) begin() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.refreshing {
		return false
	}
	w.refreshing = true
	w.button.Disable()
	return true
}

func (w *ScoreWindow) end() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.refreshing = false
	w.button.Enable()
}

func withDefaults(opts Options) Options {
	if opts.Width <= 0 {
		opts.Width = defaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = defaultHeight
	}
	if opts.LogoSize <= 0 {
		opts.LogoSize = defaultLogoSize
	}
	return opts
}
