package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/snoopapp/snoop-client/internal/cli"
	"github.com/snoopapp/snoop-client/internal/config"
	"github.com/snoopapp/snoop-client/internal/gateway/rest"
	"github.com/snoopapp/snoop-client/internal/logger"
	"github.com/snoopapp/snoop-client/internal/model"
	"github.com/snoopapp/snoop-client/internal/service"
	"github.com/snoopapp/snoop-client/internal/store/file"
	"github.com/snoopapp/snoop-client/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	// .env is optional; real environments set variables directly
	_ = godotenv.Load()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	tokenStore, err := file.New(cfg.Session.TokenFile)
	if err != nil {
		logger.Fatal("failed to initialize token store", "error", err)
	}

	gateway := rest.NewClient(cfg.Server.URL, cfg.Server.Timeout, logger)

	sessionManager := service.NewSessionManager(gateway, tokenStore, token.NewInspector(), logger)
	habitRepo := service.NewHabitRepository(gateway, logger)
	progress := service.NewProgressAggregator(gateway, logger)
	creator := service.NewHabitCreationOrchestrator(habitRepo, gateway, logger)
	goals := service.NewGoalTracker(gateway, logger)

	app := cli.New(
		sessionManager,
		habitRepo,
		progress,
		creator,
		goals,
		reportingWindow(cfg),
		os.Stdin,
		os.Stdout,
	)

	logAppVersion()

	if err := app.Run(ctx); err != nil {
		logger.Fatal("app exited with error", "error", err)
	}
}

// reportingWindow builds the progress window from config. Year 0 means
// the current year; the default month reproduces the reference
// January reporting period.
func reportingWindow(cfg *config.Config) model.Window {
	year := cfg.Progress.Year
	if year == 0 {
		year = time.Now().Year()
	}

	month := time.Month(cfg.Progress.Month)
	if month < time.January || month > time.December {
		month = time.January
	}

	return model.MonthWindow(year, month)
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
