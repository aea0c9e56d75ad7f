package main

import (
	"context"
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"

	fyneapp "fyne.io/fyne/v2/app"

	"github.com/preston-bernstein/nba-scorebox/internal/app"
	"github.com/preston-bernstein/nba-scorebox/internal/config"
	"github.com/preston-bernstein/nba-scorebox/internal/logging"
)

const (
	appVersion = "dev"
	appID      = "com.prestonbernstein.nbascorebox"
)

func main() {
	if os.Getenv("SKIP_APP_RUN") == "1" {
		return
	}
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("scorebox", flag.ContinueOnError)
	flags.SetOutput(stderr)
	headless := flags.Bool("headless", false, "refresh once, print the rows and exit")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: cfg.Metrics.ServiceName,
		Version: appVersion,
		Output:  stderr,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := app.New(cfg, logger)
	if *headless {
		if err := a.RunHeadless(ctx, stdout); err != nil {
			return 1
		}
		return 0
	}

	a.RunDesktop(ctx, fyneapp.NewWithID(appID))
	return 0
}
