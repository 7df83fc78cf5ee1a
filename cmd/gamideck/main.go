package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/pkazancev/gamideck/internal/adapter"
	"github.com/pkazancev/gamideck/internal/client"
	"github.com/pkazancev/gamideck/internal/config"
	"github.com/pkazancev/gamideck/internal/logger"
	"github.com/pkazancev/gamideck/internal/service"
	"github.com/pkazancev/gamideck/internal/session"
	"github.com/pkazancev/gamideck/internal/store"
	"github.com/pkazancev/gamideck/internal/tui"
	"github.com/pkazancev/gamideck/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.New("gamideck")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	storages, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	sessionStore := session.NewStore(storages.SessionRepository, serverAdapter, serverAdapter, log)
	services := service.NewClientServices(serverAdapter, sessionStore, log)
	ui := tui.NewTUI(services, sessionStore, storages.SettingsRepository, log)

	jobs := workers.New(
		workers.NewSessionResync(sessionStore, workers.DefaultResyncInterval, log),
	)

	app := client.NewApp(sessionStore, ui, jobs, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
